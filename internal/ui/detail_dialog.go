package ui

import (
	"strings"

	"github.com/atomicstack/feedview/internal/event"
	"github.com/atomicstack/feedview/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// DetailDialog shows read-only text, word-wrapped to the surface width and
// scrolled one wrapped row at a time.
type DetailDialog struct {
	id     string
	title  string
	lines  []string
	scroll int
	// Measured on the last render; before that every source line counts as
	// one row.
	total int
	rows  int
}

func NewDetailDialog(title string, lines []string) *DetailDialog {
	return &DetailDialog{
		id:    uuid.NewString(),
		title: title,
		lines: append([]string(nil), lines...),
		total: len(lines),
	}
}

func (d *DetailDialog) ID() string    { return d.id }
func (d *DetailDialog) Title() string { return d.title }
func (d *DetailDialog) dialog()       {}

// Scroll returns the first visible wrapped row.
func (d *DetailDialog) Scroll() int {
	return d.scroll
}

func (d *DetailDialog) handleKey(k event.Key, s *Stack) {
	prev := d.scroll
	switch {
	case key.Matches(k, detailKeys.Quit):
		s.PopSelf()
		return
	case key.Matches(k, detailKeys.Up):
		d.scrollTo(d.scroll - 1)
	case key.Matches(k, detailKeys.Down):
		d.scrollTo(d.scroll + 1)
	case key.Matches(k, detailKeys.PageUp):
		d.scrollTo(d.scroll - d.page())
	case key.Matches(k, detailKeys.PageDown):
		d.scrollTo(d.scroll + d.page())
	case key.Matches(k, detailKeys.Home):
		d.scrollTo(0)
	case key.Matches(k, detailKeys.End):
		d.scrollTo(d.total - d.page())
	}
	if d.scroll != prev {
		events.UI.Scroll(d.id, d.scroll)
	}
}

func (d *DetailDialog) page() int {
	if d.rows < 1 {
		return 1
	}
	return d.rows
}

func (d *DetailDialog) scrollTo(offset int) {
	if offset > d.total-1 {
		offset = d.total - 1
	}
	if offset < 0 {
		offset = 0
	}
	d.scroll = offset
}

func (d *DetailDialog) render(surf *Surface) {
	surf.SetTitle(d.title)
	surf.SetHints(detailKeys.Quit, detailKeys.Up, detailKeys.Down)
	d.rows = surf.ContentRows()

	wrapped := wrapLines(d.lines, surf.Width())
	d.total = len(wrapped)
	d.scrollTo(d.scroll)
	for i := d.scroll; i < len(wrapped) && i < d.scroll+d.rows; i++ {
		surf.AddRow(wrapped[i], RowBody)
	}
}

// wrapLines word-wraps each line to width and hard-wraps words that are
// still too long, such as URLs.
func wrapLines(lines []string, width int) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if width <= 0 || line == "" {
			out = append(out, line)
			continue
		}
		wrapped := wrap.String(wordwrap.String(line, width), width)
		out = append(out, strings.Split(wrapped, "\n")...)
	}
	return out
}
