package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/feedview/internal/event"
	"github.com/atomicstack/feedview/internal/logging"
	"github.com/atomicstack/feedview/internal/logging/events"
	"github.com/atomicstack/feedview/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	"github.com/google/uuid"
)

const (
	commandPrompt = ":"
	quitCommand   = "quit"
	searchCommand = "search"
)

// Focus says whether a list dialog's keys drive the list or its command line.
// It is either Normal or CommandLine.
type Focus interface {
	focus()
}

// Normal routes keys to list navigation.
type Normal struct{}

// CommandLine routes keys to the embedded editor. The editor lives only as
// long as the focus does.
type CommandLine struct {
	Editor *state.TextLine
}

func (Normal) focus()      {}
func (CommandLine) focus() {}

// ListDialog shows a selectable list with an optional command line.
type ListDialog struct {
	id     string
	title  string
	list   *state.List
	offset int
	rows   int
	focus  Focus
	open   OpenFunc
}

// NewListDialog creates a list dialog. open may be nil for lists whose rows
// lead nowhere.
func NewListDialog(title string, items []string, open OpenFunc) *ListDialog {
	return &ListDialog{
		id:    uuid.NewString(),
		title: title,
		list:  state.NewList(items),
		focus: Normal{},
		open:  open,
	}
}

func (d *ListDialog) ID() string    { return d.id }
func (d *ListDialog) Title() string { return d.title }
func (d *ListDialog) dialog()       {}

// List exposes the embedded selection state.
func (d *ListDialog) List() *state.List {
	return d.list
}

// Focus reports the current focus.
func (d *ListDialog) Focus() Focus {
	return d.focus
}

func (d *ListDialog) handleKey(k event.Key, s *Stack) {
	if cl, ok := d.focus.(CommandLine); ok {
		d.handleCommandKey(k, cl.Editor, s)
		return
	}

	moved := false
	switch {
	case key.Matches(k, listKeys.Up):
		moved = d.list.Previous()
	case key.Matches(k, listKeys.Down):
		moved = d.list.Next()
	case key.Matches(k, listKeys.PageUp):
		moved = d.list.PageUp(d.rows)
	case key.Matches(k, listKeys.PageDown):
		moved = d.list.PageDown(d.rows)
	case key.Matches(k, listKeys.Home):
		moved = d.list.Home()
	case key.Matches(k, listKeys.End):
		moved = d.list.End()
	case key.Matches(k, listKeys.Open):
		d.openSelected(s)
	case key.Matches(k, listKeys.Quit):
		s.PopSelf()
	case key.Matches(k, listKeys.Command):
		d.focus = CommandLine{Editor: state.NewTextLine("")}
		events.CommandLine.Open(d.id)
	}
	if moved {
		idx, _ := d.list.Selected()
		events.UI.ListCursor(d.id, idx)
	}
}

func (d *ListDialog) openSelected(s *Stack) {
	if d.open == nil {
		return
	}
	idx, ok := d.list.Selected()
	if !ok {
		return
	}
	label, _ := d.list.Current()
	child, err := d.open(idx, label)
	if err != nil {
		logging.Error(fmt.Errorf("open %q: %w", label, err))
		return
	}
	if isNil(child) {
		return
	}
	events.UI.Open(d.id, idx, label)
	s.Push(child)
}

func (d *ListDialog) handleCommandKey(k event.Key, ed *state.TextLine, s *Stack) {
	switch {
	case key.Matches(k, commandKeys.Submit):
		d.submit(ed.Text(), s)
		return
	case key.Matches(k, commandKeys.Cancel):
		d.focus = Normal{}
		events.CommandLine.Cancel(d.id)
		return
	case key.Matches(k, commandKeys.Backspace):
		ed.DeleteBeforeCursor()
	case key.Matches(k, commandKeys.Delete):
		ed.DeleteAtCursor()
	case key.Matches(k, commandKeys.Left):
		ed.MoveLeft(1)
	case key.Matches(k, commandKeys.Right):
		ed.MoveRight(1)
	case key.Matches(k, commandKeys.Home):
		ed.MoveHome()
	case key.Matches(k, commandKeys.End):
		ed.MoveEnd()
	case key.Matches(k, commandKeys.DeleteWord):
		ed.DeleteWordBackward()
	default:
		r, ok := k.Printable()
		if !ok {
			return
		}
		ed.InsertChar(r)
	}
	events.CommandLine.Edit(d.id, ed.Text(), ed.Cursor())
}

// submit interprets the command line. "quit" requests shutdown and keeps the
// command line open; anything else returns to list focus.
func (d *ListDialog) submit(text string, s *Stack) {
	events.CommandLine.Submit(d.id, text)
	if text == quitCommand {
		s.SetQuit()
		return
	}
	d.focus = Normal{}
	d.runCommand(strings.TrimSpace(text))
}

func (d *ListDialog) runCommand(cmd string) {
	if cmd == "" {
		return
	}
	if n, err := strconv.Atoi(cmd); err == nil {
		if d.list.Select(n - 1) {
			idx, _ := d.list.Selected()
			events.UI.ListCursor(d.id, idx)
		}
		return
	}
	name, arg, _ := strings.Cut(cmd, " ")
	if name != searchCommand {
		return
	}
	if idx := state.BestMatch(d.list.Items(), arg); idx >= 0 && d.list.Select(idx) {
		events.UI.ListCursor(d.id, idx)
	}
}

func (d *ListDialog) hintBindings() []key.Binding {
	if _, ok := d.focus.(CommandLine); ok {
		return []key.Binding{commandKeys.Submit, commandKeys.Cancel}
	}
	bindings := []key.Binding{listKeys.Quit, listKeys.Up, listKeys.Down}
	if d.open != nil {
		bindings = append(bindings, listKeys.Open)
	}
	return append(bindings, listKeys.Command)
}

func (d *ListDialog) render(surf *Surface) {
	surf.SetTitle(d.title)
	surf.SetHints(d.hintBindings()...)
	if cl, ok := d.focus.(CommandLine); ok {
		surf.SetCommandLine(commandPrompt, cl.Editor)
	}
	d.rows = surf.ContentRows()
	items := d.list.Items()
	if len(items) == 0 {
		surf.AddRow("(no entries)", RowEmpty)
		return
	}
	d.offset = d.list.EnsureVisible(d.rows, d.offset)
	selected, _ := d.list.Selected()
	for i := d.offset; i < len(items) && i < d.offset+d.rows; i++ {
		kind := RowItem
		if i == selected {
			kind = RowSelected
		}
		surf.AddRow(items[i], kind)
	}
}
