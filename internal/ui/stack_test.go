package ui

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/feedview/internal/event"
	"github.com/atomicstack/feedview/internal/logging"
)

func quietLogs(t *testing.T) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "feedview.log"))
	t.Cleanup(func() { logging.Configure("") })
}

func newTestList(items ...string) *ListDialog {
	return NewListDialog("Test", items, nil)
}

func send(t *testing.T, s *Stack, names ...string) {
	t.Helper()
	for _, name := range names {
		k, err := event.ParseKey(name)
		if err != nil {
			t.Fatalf("parse key %q: %v", name, err)
		}
		s.Dispatch(event.KeyEvent(k))
	}
}

func typeText(s *Stack, text string) {
	for _, r := range text {
		s.Dispatch(event.KeyEvent(event.Char(r)))
	}
}

func TestNewStackRequiresRoot(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil root")
		}
	}()
	NewStack(nil, DefaultKeys())
}

func TestPushFocusesNewEntry(t *testing.T) {
	root := newTestList("a")
	s := NewStack(root, DefaultKeys())
	child := newTestList("b")
	s.Push(child)
	if s.Len() != 2 || s.Top() != child {
		t.Fatalf("expected child on top of 2 entries, got len=%d", s.Len())
	}
	s.Push(nil)
	s.Push((*DetailDialog)(nil))
	s.Push((*ListDialog)(nil))
	if s.Len() != 2 || s.Top() != child {
		t.Fatalf("expected nil pushes to be ignored, got len=%d", s.Len())
	}
}

func TestNewStackRejectsTypedNilRoot(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for typed nil root")
		}
	}()
	NewStack((*ListDialog)(nil), DefaultKeys())
}

func TestPopSelfOnLastEntrySetsQuit(t *testing.T) {
	root := newTestList("a")
	s := NewStack(root, DefaultKeys())
	s.PopSelf()
	if !s.ShouldQuit() {
		t.Fatalf("expected quit after popping the last dialog")
	}
	if s.Len() != 1 || s.Top() != root {
		t.Fatalf("expected root to remain, got len=%d", s.Len())
	}
}

func TestPopSelfRemovesFocusedEntry(t *testing.T) {
	root := newTestList("r")
	a := newTestList("a")
	b := newTestList("b")
	s := NewStack(root, DefaultKeys())
	s.Push(a)
	s.Push(b)
	s.CyclePrevious()
	if s.Top() != a {
		t.Fatalf("expected a focused after cycling back")
	}
	s.PopSelf()
	if s.Len() != 2 || s.Top() != b {
		t.Fatalf("expected b focused after removing a, len=%d", s.Len())
	}
	if s.ShouldQuit() {
		t.Fatalf("did not expect quit")
	}
}

func TestCycleWrapsAround(t *testing.T) {
	s := NewStack(newTestList("r"), DefaultKeys())
	s.Push(newTestList("a"))
	top := newTestList("b")
	s.Push(top)

	for i := 0; i < 3; i++ {
		s.CycleNext()
	}
	if s.Top() != top {
		t.Fatalf("expected three forward cycles to return to the top dialog")
	}
	s.CycleNext()
	if s.Index() != 0 {
		t.Fatalf("expected wrap to index 0, got %d", s.Index())
	}
	s.CyclePrevious()
	if s.Index() != 2 {
		t.Fatalf("expected wrap back to index 2, got %d", s.Index())
	}
}

func TestCycleSingleEntryStaysPut(t *testing.T) {
	root := newTestList("r")
	s := NewStack(root, DefaultKeys())
	s.CycleNext()
	s.CyclePrevious()
	if s.Top() != root || s.Index() != 0 {
		t.Fatalf("expected single entry to stay focused")
	}
}

func TestDispatchRoutesCycleChords(t *testing.T) {
	root := newTestList("r")
	child := newTestList("c")
	s := NewStack(root, DefaultKeys())
	s.Push(child)

	send(t, s, "ctrl+v")
	if s.Top() != root {
		t.Fatalf("expected ctrl+v to cycle forward to root")
	}
	send(t, s, "ctrl+g")
	if s.Top() != child {
		t.Fatalf("expected ctrl+g to cycle back to child")
	}
}

func TestDispatchCustomCycleKeys(t *testing.T) {
	root := newTestList("r")
	s := NewStack(root, Keys{Next: 'n', Previous: 'P'})
	child := newTestList("c")
	s.Push(child)

	send(t, s, "ctrl+v")
	if s.Top() != child {
		t.Fatalf("expected default chord to be delegated when keys are customised")
	}
	send(t, s, "ctrl+n")
	if s.Top() != root {
		t.Fatalf("expected ctrl+n to cycle")
	}
	send(t, s, "ctrl+p")
	if s.Top() != child {
		t.Fatalf("expected ctrl+p to cycle back")
	}
}

func TestRouterClassification(t *testing.T) {
	r := NewRouter(Keys{})
	cases := map[string]Route{
		"ctrl+v": RouteCycleNext,
		"ctrl+g": RouteCyclePrevious,
		"v":      RouteDelegate,
		"q":      RouteDelegate,
		"alt+v":  RouteDelegate,
		"enter":  RouteDelegate,
	}
	for name, want := range cases {
		k, err := event.ParseKey(name)
		if err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
		if got := r.Route(k); got != want {
			t.Fatalf("%s: expected %s, got %s", name, want, got)
		}
	}
	if len(r.Bindings()) != 2 {
		t.Fatalf("expected two global bindings")
	}
}

func TestDispatchIgnoredAfterQuit(t *testing.T) {
	root := newTestList("a", "b")
	s := NewStack(root, DefaultKeys())
	s.SetQuit()
	send(t, s, "down")
	if idx, _ := root.List().Selected(); idx != 0 {
		t.Fatalf("expected no key handling after quit, got selection %d", idx)
	}
}

func TestDispatchResizeIsNoOp(t *testing.T) {
	root := newTestList("a", "b")
	s := NewStack(root, DefaultKeys())
	s.Dispatch(event.ResizeEvent(100, 40))
	if s.Len() != 1 || s.ShouldQuit() {
		t.Fatalf("expected resize to leave the stack untouched")
	}
	if idx, _ := root.List().Selected(); idx != 0 {
		t.Fatalf("expected selection unchanged, got %d", idx)
	}
}

func TestDownDownEnterOpensThirdItem(t *testing.T) {
	var opened []int
	root := NewListDialog("Root", []string{"a", "b", "c"}, func(index int, label string) (Dialog, error) {
		opened = append(opened, index)
		return NewDetailDialog(label, []string{"body of " + label}), nil
	})
	s := NewStack(root, DefaultKeys())

	send(t, s, "down", "down")
	if idx, _ := root.List().Selected(); idx != 2 {
		t.Fatalf("expected selection 2, got %d", idx)
	}
	send(t, s, "enter")
	if s.Len() != 2 {
		t.Fatalf("expected child pushed, len=%d", s.Len())
	}
	detail, ok := s.Top().(*DetailDialog)
	if !ok || detail.Title() != "c" {
		t.Fatalf("expected detail dialog for c on top, got %#v", s.Top())
	}
	if len(opened) != 1 || opened[0] != 2 {
		t.Fatalf("expected open called once with index 2, got %v", opened)
	}
}
