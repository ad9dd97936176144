package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/feedview/internal/event"
	tea "github.com/charmbracelet/bubbletea"
)

func TestModelKeyNavigation(t *testing.T) {
	root := newTestList("a", "b", "c")
	h := NewHarness(NewModel(NewStack(root, DefaultKeys()), 40, 10, nil))

	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if idx, _ := root.List().Selected(); idx != 2 {
		t.Fatalf("expected selection 2, got %d", idx)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	if idx, _ := root.List().Selected(); idx != 1 {
		t.Fatalf("expected selection 1, got %d", idx)
	}
	if h.Quit() {
		t.Fatalf("did not expect quit")
	}
}

func TestModelCommandLineQuit(t *testing.T) {
	root := newTestList("a")
	h := NewHarness(NewModel(NewStack(root, DefaultKeys()), 40, 10, nil))

	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(":quit")})
	if cl := commandLine(t, root); cl.Editor.Text() != "quit" {
		t.Fatalf("expected pasted runes in the editor, got %q", cl.Editor.Text())
	}
	if h.Quit() {
		t.Fatalf("did not expect quit before enter")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if !h.Quit() {
		t.Fatalf("expected quit after submitting quit")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	root := newTestList("a")
	root2 := newTestList("b")
	stack := NewStack(root, DefaultKeys())
	stack.Push(root2)
	h := NewHarness(NewModel(stack, 40, 10, nil))

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !h.Quit() || !stack.ShouldQuit() {
		t.Fatalf("expected ctrl+c to quit regardless of stack depth")
	}
}

func TestModelCycleChords(t *testing.T) {
	root := newTestList("a")
	child := newTestList("b")
	stack := NewStack(root, DefaultKeys())
	stack.Push(child)
	h := NewHarness(NewModel(stack, 40, 10, nil))

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlV})
	if stack.Top() != root {
		t.Fatalf("expected ctrl+v to cycle to root")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlG})
	if stack.Top() != child {
		t.Fatalf("expected ctrl+g to cycle back to child")
	}
}

func TestModelWindowSize(t *testing.T) {
	stack := NewStack(newTestList("a"), DefaultKeys())
	h := NewHarness(NewModel(stack, 0, 0, nil))

	if f := h.Model().Frame(); f.Width != fallbackWidth || f.Height != fallbackHeight {
		t.Fatalf("expected fallback size, got %dx%d", f.Width, f.Height)
	}
	h.Send(tea.WindowSizeMsg{Width: 50, Height: 12})
	if f := h.Model().Frame(); f.Width != 50 || f.Height != 12 {
		t.Fatalf("expected terminal size, got %dx%d", f.Width, f.Height)
	}

	pinned := NewHarness(NewModel(stack, 30, 0, nil))
	pinned.Send(tea.WindowSizeMsg{Width: 50, Height: 12})
	if f := pinned.Model().Frame(); f.Width != 30 || f.Height != 12 {
		t.Fatalf("expected pinned width, got %dx%d", f.Width, f.Height)
	}
}

func TestModelDrainsScriptedSource(t *testing.T) {
	root := newTestList("a", "b", "c")
	src := event.NewQueue(event.Events(
		event.KeyEvent(event.Named(event.CodeDown)),
		event.ResizeEvent(60, 9),
		event.KeyEvent(event.Named(event.CodeDown)),
	))
	h := NewHarness(NewModel(NewStack(root, DefaultKeys()), 0, 0, src))

	if idx, _ := root.List().Selected(); idx != 2 {
		t.Fatalf("expected scripted keys to move selection to 2, got %d", idx)
	}
	if f := h.Model().Frame(); f.Width != 60 || f.Height != 9 {
		t.Fatalf("expected scripted resize, got %dx%d", f.Width, f.Height)
	}
	if h.Quit() {
		t.Fatalf("closing the script must not quit")
	}
}

func TestModelScriptedQuit(t *testing.T) {
	root := newTestList("a")
	src := event.NewQueue(event.Events(event.KeyEvent(event.Char('q'))))
	h := NewHarness(NewModel(NewStack(root, DefaultKeys()), 40, 10, src))
	if !h.Quit() {
		t.Fatalf("expected scripted q on the root to quit")
	}
}

func TestModelView(t *testing.T) {
	d := NewListDialog("Your Feeds", []string{"Planet Debian"}, nil)
	h := NewHarness(NewModel(NewStack(d, DefaultKeys()), 40, 5, nil))
	view := h.View()
	if !strings.Contains(view, "Your Feeds") || !strings.Contains(view, "Planet Debian") {
		t.Fatalf("expected title and item in view, got %q", view)
	}
	if got := len(strings.Split(view, "\n")); got != 5 {
		t.Fatalf("expected 5 rows, got %d", got)
	}
}
