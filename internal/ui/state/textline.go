package state

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TextLine is a single editable line with a cursor and a horizontal viewport.
// Positions are rune indices. The invariant
//
//	0 <= viewport <= cursor <= len(text)
//
// holds after every operation, and after VisibleSlice(w) the cursor sits at
// most w-1 columns right of the viewport, leaving the last column for the
// caret.
type TextLine struct {
	text     []rune
	cursor   int
	viewport int
}

// NewTextLine returns an editor holding s with the cursor at the end.
func NewTextLine(s string) *TextLine {
	t := &TextLine{}
	t.SetText(s)
	return t
}

func (t *TextLine) Text() string {
	return string(t.text)
}

func (t *TextLine) Len() int {
	return len(t.text)
}

func (t *TextLine) Cursor() int {
	return t.cursor
}

func (t *TextLine) Viewport() int {
	return t.viewport
}

// SetText replaces the contents, moves the cursor to the end and resets the
// viewport. The next VisibleSlice scrolls it back into view.
func (t *TextLine) SetText(s string) {
	t.text = []rune(s)
	t.cursor = len(t.text)
	t.viewport = 0
}

// InsertChar inserts r at the cursor and advances past it.
func (t *TextLine) InsertChar(r rune) {
	t.text = append(t.text, 0)
	copy(t.text[t.cursor+1:], t.text[t.cursor:])
	t.text[t.cursor] = r
	t.cursor++
	t.clamp()
}

// DeleteAtCursor removes the rune under the cursor. It is a no-op at the end
// of the text.
func (t *TextLine) DeleteAtCursor() bool {
	if t.cursor >= len(t.text) {
		return false
	}
	t.text = append(t.text[:t.cursor], t.text[t.cursor+1:]...)
	t.clamp()
	return true
}

// DeleteBeforeCursor removes the rune left of the cursor.
func (t *TextLine) DeleteBeforeCursor() bool {
	if t.cursor == 0 {
		return false
	}
	t.text = append(t.text[:t.cursor-1], t.text[t.cursor:]...)
	t.cursor--
	t.clamp()
	return true
}

// DeleteWordBackward removes the word preceding the cursor along with any
// whitespace between it and the cursor.
func (t *TextLine) DeleteWordBackward() bool {
	if t.cursor == 0 {
		return false
	}
	i := t.cursor
	for i > 0 && unicode.IsSpace(t.text[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(t.text[i-1]) {
		i--
	}
	t.text = append(t.text[:i], t.text[t.cursor:]...)
	t.cursor = i
	t.clamp()
	return true
}

// MoveLeft shifts the cursor n runes left, stopping at the start.
func (t *TextLine) MoveLeft(n int) {
	if n < 0 {
		n = 0
	}
	t.cursor -= n
	t.clamp()
}

// MoveRight shifts the cursor n runes right, stopping at the end.
func (t *TextLine) MoveRight(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(t.text)-t.cursor {
		n = len(t.text) - t.cursor
	}
	t.cursor += n
	t.clamp()
}

func (t *TextLine) MoveHome() {
	t.cursor = 0
	t.clamp()
}

func (t *TextLine) MoveEnd() {
	t.cursor = len(t.text)
	t.clamp()
}

// VisibleSlice scrolls the viewport so the cursor fits in width columns and
// returns the visible window of text. Widths below one are treated as one.
func (t *TextLine) VisibleSlice(width int) string {
	if width < 1 {
		width = 1
	}
	if diff := (t.cursor - t.viewport) - (width - 1); diff > 0 {
		t.viewport += diff
	}
	t.clamp()
	end := t.viewport + width
	if end > len(t.text) {
		end = len(t.text)
	}
	return string(t.text[t.viewport:end])
}

// VisibleCells is VisibleSlice measured in terminal cells: it also scrolls
// right until the text from the viewport to the cursor, plus the caret, fits
// in width cells, and returns as many runes as fit. The caret takes the width
// of the rune under it, or one cell at the end of the text.
func (t *TextLine) VisibleCells(width int) string {
	if width < 1 {
		width = 1
	}
	t.VisibleSlice(width)
	caret := 1
	if t.cursor < len(t.text) {
		caret = max(runewidth.RuneWidth(t.text[t.cursor]), 1)
	}
	for t.viewport < t.cursor && runewidth.StringWidth(string(t.text[t.viewport:t.cursor]))+caret > width {
		t.viewport++
	}
	end, cells := t.viewport, 0
	for end < len(t.text) {
		w := runewidth.RuneWidth(t.text[end])
		if cells+w > width {
			break
		}
		cells += w
		end++
	}
	return string(t.text[t.viewport:end])
}

// DisplayCursorOffset is the caret column relative to the viewport.
func (t *TextLine) DisplayCursorOffset() int {
	return t.cursor - t.viewport
}

func (t *TextLine) clamp() {
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.cursor > len(t.text) {
		t.cursor = len(t.text)
	}
	if t.viewport < 0 {
		t.viewport = 0
	}
	if t.viewport > t.cursor {
		t.viewport = t.cursor
	}
}
