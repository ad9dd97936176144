package content

import (
	"fmt"
	"strings"
)

// Static serves a fixed set of feeds. Every feed carries the same items and
// every item the same article body.
type Static struct {
	feeds []Feed
	items []Item
	body  []string
	link  string
	date  string
}

var _ Provider = (*Static)(nil)

// NewStatic builds a provider from explicit data. items are templates whose
// FeedID and ID are filled in per feed.
func NewStatic(feeds []Feed, items []Item, body []string) *Static {
	return &Static{
		feeds: append([]Feed(nil), feeds...),
		items: append([]Item(nil), items...),
		body:  append([]string(nil), body...),
		link:  "https://example.com/an-interesting-article.html",
		date:  "Mon, 02 Mar 2004 05:06:07 +0800",
	}
}

// Sample returns the demo data set.
func Sample() *Static {
	return NewStatic(sampleFeeds, sampleItems, sampleBody)
}

func (s *Static) Feeds() ([]Feed, error) {
	return append([]Feed(nil), s.feeds...), nil
}

func (s *Static) Items(feedID string) ([]Item, error) {
	if _, ok := s.feed(feedID); !ok {
		return nil, fmt.Errorf("feed %q: %w", feedID, ErrNotFound)
	}
	out := make([]Item, len(s.items))
	for i, tmpl := range s.items {
		tmpl.FeedID = feedID
		tmpl.ID = itemID(feedID, i+1)
		out[i] = tmpl
	}
	return out, nil
}

func (s *Static) Article(id string) (Article, error) {
	feedID, ok := splitItemID(id)
	if !ok {
		return Article{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	feed, ok := s.feed(feedID)
	if !ok {
		return Article{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	items, err := s.Items(feedID)
	if err != nil {
		return Article{}, err
	}
	for _, item := range items {
		if item.ID != id {
			continue
		}
		return Article{
			Feed:  feed.Title,
			Title: item.Title,
			Link:  s.link,
			Date:  s.date,
			Body:  append([]string(nil), s.body...),
		}, nil
	}
	return Article{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
}

func (s *Static) feed(id string) (Feed, bool) {
	for _, f := range s.feeds {
		if strings.EqualFold(f.ID, id) {
			return f, true
		}
	}
	return Feed{}, false
}

var sampleFeeds = []Feed{
	{ID: "planet-debian", Title: "Planet Debian", Unread: 14, Total: 532},
	{ID: "dou", Title: "Интересное на ДОУ", Unread: 0, Total: 1},
	{ID: "franchino", Title: "Fabio Franchino’s blog", Unread: 23, Total: 4558, New: true},
	{ID: "prometheusmooc", Title: "@prometheusmooc on Twitter", Unread: 0, Total: 13},
	{ID: "dev-lawyer", Title: "/dev/lawyer", Unread: 12, Total: 482},
	{ID: "musings", Title: "non-O(n) musings", Unread: 3, Total: 148, New: true},
}

var sampleItems = []Item{
	{Title: "NVidia acquires Mellanox", Date: "Apr 28", Size: "3.9K"},
	{Title: "[$] Dumping kernel data structure with BPF", Date: "Apr 28", Size: "591"},
	{Title: "Wooden server rack", Date: "Apr 28", Size: "971"},
	{Title: "Trouble fully setting up baremetal homelab", Date: "Apr 28", Size: "2.2K"},
	{Title: "Looking for a very small server with 2 plus hot swap 3.5 inch driver I can install linux on.", Date: "Apr 28", Size: "548"},
	{Title: "VLAN and iOT devices", Date: "Apr 28", Size: "1.7K"},
}

var sampleBody = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Morbi non ante porttitor, commodo lorem vitae, cursus mauris. Mauris mattis, turpis id convallis posuere, erat ante pharetra velit, sed blandit enim augue in urna. Maecenas nisl risus, aliquam molestie semper quis, placerat sed diam. Etiam viverra leo accumsan, ornare urna ac, porta nisi.",
	"",
	"Phasellus ut nibh at urna pellentesque ultricies.",
	"",
	"Proin faucibus cursus libero quis semper. Nam vitae convallis sapien. Curabitur sollicitudin magna vitae felis finibus, nec tristique dui dignissim. Phasellus congue felis sed velit imperdiet, sed mattis odio dignissim: https://newsboat.org/releases/2.19/docs/newsboat.html?parameter1=first_value&parameter2=second_long_value&third_parameter=something_else_entirely_but_still_very_long. Fusce eu ex dui.",
	"",
	"Suspendisse pretium convallis orci, eget suscipit est dignissim in. Nulla facilisi. Ut pulvinar neque ut nisl maximus, a finibus tellus commodo. Vestibulum sit amet fringilla metus, vel rhoncus est. Aenean leo nunc, fringilla quis luctus sed, aliquam vitae nunc.",
	"",
	"In mattis ex mauris, quis sodales leo sodales vitae. Nam et enim lobortis, lobortis turpis id, mollis metus. Vivamus a rutrum mauris. Mauris volutpat eros purus, venenatis tempus magna convallis sed.",
	"",
	"Etiam eu luctus metus, vitae pulvinar dui. Donec in mauris ultrices, rhoncus nisl nec, condimentum arcu. Maecenas massa metus, sollicitudin vitae pretium at, efficitur eget ante.",
	"",
	"Phasellus varius ex non leo tristique, in ultricies lectus sodales. Vivamus efficitur convallis tellus, sit amet volutpat lorem ultricies at. Morbi luctus facilisis quam, at fringilla est tristique vel.",
}
