package state

// List is an ordered set of labels with an optional selection. A non-empty
// list always has a selection inside its bounds; an empty list has none. The
// zero value is an empty list.
type List struct {
	items    []string
	selected int
	has      bool
}

// NewList returns a list holding items with the first one selected.
func NewList(items []string) *List {
	l := &List{}
	l.SetItems(items)
	return l
}

// SetItems replaces the contents and resets the selection to the first item.
func (l *List) SetItems(items []string) {
	l.items = append([]string(nil), items...)
	l.selected = 0
	l.has = len(l.items) > 0
}

// Items returns a copy of the labels in display order.
func (l *List) Items() []string {
	return append([]string(nil), l.items...)
}

func (l *List) Len() int {
	return len(l.items)
}

// Selected returns the selected index, or false when the list is empty.
func (l *List) Selected() (int, bool) {
	if !l.has {
		return 0, false
	}
	return l.selected, true
}

// Current returns the selected label.
func (l *List) Current() (string, bool) {
	idx, ok := l.Selected()
	if !ok {
		return "", false
	}
	return l.items[idx], true
}

// Next moves the selection down one row, stopping at the last item.
func (l *List) Next() bool {
	if len(l.items) == 0 {
		return false
	}
	if !l.has {
		l.selected, l.has = 0, true
		return true
	}
	return l.moveTo(l.selected + 1)
}

// Previous moves the selection up one row, stopping at the first item.
func (l *List) Previous() bool {
	if len(l.items) == 0 {
		return false
	}
	if !l.has {
		l.selected, l.has = 0, true
		return true
	}
	return l.moveTo(l.selected - 1)
}

// Select jumps to idx, clamped into range.
func (l *List) Select(idx int) bool {
	if len(l.items) == 0 {
		return false
	}
	return l.moveTo(idx)
}

// Home selects the first item.
func (l *List) Home() bool {
	return l.Select(0)
}

// End selects the last item.
func (l *List) End() bool {
	return l.Select(len(l.items) - 1)
}

// PageUp moves the selection up by the given page size.
func (l *List) PageUp(rows int) bool {
	return l.Select(l.selected - pageSize(rows, len(l.items)))
}

// PageDown moves the selection down by the given page size.
func (l *List) PageDown(rows int) bool {
	return l.Select(l.selected + pageSize(rows, len(l.items)))
}

func (l *List) moveTo(idx int) bool {
	if idx < 0 {
		idx = 0
	}
	if idx > len(l.items)-1 {
		idx = len(l.items) - 1
	}
	moved := !l.has || idx != l.selected
	l.selected, l.has = idx, true
	return moved
}

func pageSize(rows, total int) int {
	if rows <= 0 || rows > total {
		rows = total
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// EnsureVisible returns the scroll offset that keeps the selection inside a
// window of the given number of rows, starting from the previous offset.
func (l *List) EnsureVisible(rows, offset int) int {
	if len(l.items) == 0 || rows <= 0 {
		return 0
	}
	maxOffset := len(l.items) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if l.selected < offset {
		offset = l.selected
	}
	if upper := offset + rows - 1; l.selected > upper {
		offset = l.selected - rows + 1
	}
	return offset
}
