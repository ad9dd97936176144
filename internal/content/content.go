// Package content supplies the feeds, items and articles shown by the
// dialogs. Providers are read-only; the dialog core never mutates them.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a feed or item id is unknown.
var ErrNotFound = errors.New("not found")

// Feed is one subscription row.
type Feed struct {
	ID     string
	Title  string
	Unread int
	Total  int
	New    bool
}

// Item is one entry of a feed.
type Item struct {
	ID     string
	FeedID string
	Title  string
	Date   string
	Size   string
	Unread bool
}

// Article is the full text of an item.
type Article struct {
	Feed  string
	Title string
	Link  string
	Date  string
	Body  []string
}

// Header returns the article header lines followed by a blank separator.
func (a Article) Header() []string {
	return []string{
		"Feed: " + a.Feed,
		"Title: " + a.Title,
		"Link: " + a.Link,
		"Date: " + a.Date,
		"",
	}
}

// Provider is the contract dialogs use to fetch what they display.
type Provider interface {
	Feeds() ([]Feed, error)
	Items(feedID string) ([]Item, error)
	Article(itemID string) (Article, error)
}

// Counts sums unread and total counts across feeds.
func Counts(feeds []Feed) (unread, total int) {
	for _, f := range feeds {
		unread += f.Unread
		total += f.Total
	}
	return unread, total
}

func itemID(feedID string, n int) string {
	return fmt.Sprintf("%s:%d", feedID, n)
}

func splitItemID(id string) (feedID string, ok bool) {
	idx := strings.LastIndex(id, ":")
	if idx <= 0 || idx == len(id)-1 {
		return "", false
	}
	return id[:idx], true
}
