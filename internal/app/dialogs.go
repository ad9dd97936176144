package app

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/feedview/internal/content"
	"github.com/atomicstack/feedview/internal/format/table"
	"github.com/atomicstack/feedview/internal/ui"
)

const appName = "feedview"

// NewRoot builds the feed list. Opening a feed shows its items and opening
// an item shows the article.
func NewRoot(provider content.Provider) (*ui.ListDialog, error) {
	feeds, err := provider.Feeds()
	if err != nil {
		return nil, fmt.Errorf("load feeds: %w", err)
	}
	unread, total := content.Counts(feeds)
	title := fmt.Sprintf("%s - Your Feeds (%d unread, %d total)", appName, unread, total)
	return ui.NewListDialog(title, feedRows(feeds), openFeed(provider, feeds)), nil
}

func openFeed(provider content.Provider, feeds []content.Feed) ui.OpenFunc {
	return func(index int, _ string) (ui.Dialog, error) {
		if index < 0 || index >= len(feeds) {
			return nil, nil
		}
		feed := feeds[index]
		items, err := provider.Items(feed.ID)
		if err != nil {
			return nil, fmt.Errorf("load items: %w", err)
		}
		title := fmt.Sprintf("%s - %s (%d unread, %d total)", appName, feed.Title, feed.Unread, feed.Total)
		return ui.NewListDialog(title, itemRows(items), openItem(provider, feed, items)), nil
	}
}

func openItem(provider content.Provider, feed content.Feed, items []content.Item) ui.OpenFunc {
	return func(index int, _ string) (ui.Dialog, error) {
		if index < 0 || index >= len(items) {
			return nil, nil
		}
		article, err := provider.Article(items[index].ID)
		if err != nil {
			return nil, fmt.Errorf("load article: %w", err)
		}
		title := fmt.Sprintf("%s - Article '%s' (%d unread, %d total)", appName, article.Title, feed.Unread, feed.Total)
		lines := append(article.Header(), article.Body...)
		return ui.NewDetailDialog(title, lines), nil
	}
}

// feedRows lays feeds out as "<n> <flag> (<unread>/<total>) <title>".
func feedRows(feeds []content.Feed) []string {
	rows := make([][]string, len(feeds))
	for i, f := range feeds {
		flag := " "
		if f.New {
			flag = "N"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			flag,
			fmt.Sprintf("(%d/%d)", f.Unread, f.Total),
			f.Title,
		}
	}
	return table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignRight, table.AlignLeft}, " ")
}

// itemRows lays items out as "<n> <flag> <date> <size> <title>".
func itemRows(items []content.Item) []string {
	rows := make([][]string, len(items))
	for i, item := range items {
		flag := " "
		if item.Unread {
			flag = "N"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			flag,
			item.Date,
			item.Size,
			item.Title,
		}
	}
	return table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignLeft}, " ")
}
