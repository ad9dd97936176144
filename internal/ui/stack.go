package ui

import (
	"github.com/atomicstack/feedview/internal/event"
	"github.com/atomicstack/feedview/internal/logging/events"
)

// Stack owns the open dialogs. It always holds at least one entry; popping
// the last one sets the quit flag instead of emptying it. The current entry
// receives input and is drawn. Push and PopSelf make the most recently
// pushed entry current; the cycle operations rotate through entries.
type Stack struct {
	entries []Dialog
	current int
	quit    bool
	router  Router
}

// NewStack seeds the stack with root. A nil root is a programming error.
func NewStack(root Dialog, keys Keys) *Stack {
	if isNil(root) {
		panic("ui: stack requires a root dialog")
	}
	s := &Stack{
		entries: []Dialog{root},
		router:  NewRouter(keys),
	}
	events.Stack.Push(root.ID(), root.Title(), 1)
	return s
}

// Top returns the dialog that currently owns focus.
func (s *Stack) Top() Dialog {
	return s.entries[s.current]
}

func (s *Stack) Len() int {
	return len(s.entries)
}

// Index returns the position of the focused dialog.
func (s *Stack) Index() int {
	return s.current
}

// Router exposes the global key classification.
func (s *Stack) Router() Router {
	return s.router
}

// Push appends d and gives it focus. Nil dialogs are ignored.
func (s *Stack) Push(d Dialog) {
	if isNil(d) {
		return
	}
	s.entries = append(s.entries, d)
	s.current = len(s.entries) - 1
	events.Stack.Push(d.ID(), d.Title(), len(s.entries))
}

// PopSelf removes the focused dialog. On the last entry it requests quit and
// leaves the entry in place.
func (s *Stack) PopSelf() {
	top := s.Top()
	if len(s.entries) == 1 {
		s.SetQuit()
		return
	}
	s.entries = append(s.entries[:s.current], s.entries[s.current+1:]...)
	s.current = len(s.entries) - 1
	events.Stack.Pop(top.ID(), len(s.entries))
}

// CycleNext moves focus to the following entry, wrapping at the end.
func (s *Stack) CycleNext() {
	s.current = (s.current + 1) % len(s.entries)
	events.Stack.Cycle(s.Top().ID(), RouteCycleNext.String())
}

// CyclePrevious moves focus to the preceding entry, wrapping at the start.
func (s *Stack) CyclePrevious() {
	s.current = (s.current - 1 + len(s.entries)) % len(s.entries)
	events.Stack.Cycle(s.Top().ID(), RouteCyclePrevious.String())
}

func (s *Stack) ShouldQuit() bool {
	return s.quit
}

func (s *Stack) SetQuit() {
	if s.quit {
		return
	}
	s.quit = true
	events.Stack.Quit(s.Top().ID())
}

// Dispatch applies one event. Global chords are handled here, every other key
// goes to the focused dialog. Events after quit are ignored.
func (s *Stack) Dispatch(ev event.Event) {
	if s.quit {
		return
	}
	if ev.Kind == event.KindResize {
		events.Source.Resize(ev.Width, ev.Height)
		return
	}
	switch s.router.Route(ev.Key) {
	case RouteCycleNext:
		s.CycleNext()
	case RouteCyclePrevious:
		s.CyclePrevious()
	default:
		s.deliver(ev.Key)
	}
}

func (s *Stack) deliver(k event.Key) {
	switch d := s.Top().(type) {
	case *ListDialog:
		d.handleKey(k, s)
	case *DetailDialog:
		d.handleKey(k, s)
	}
}

// Render lays out the focused dialog in a width x height area.
func (s *Stack) Render(width, height int) Frame {
	surf := newSurface(width, height)
	switch d := s.Top().(type) {
	case *ListDialog:
		d.render(surf)
	case *DetailDialog:
		d.render(surf)
	}
	return surf.frame()
}
