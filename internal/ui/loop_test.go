package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/feedview/internal/event"
)

type recordingScreen struct {
	width, height int
	frames        []Frame
	err           error
}

func (r *recordingScreen) Size() (int, int) { return r.width, r.height }

func (r *recordingScreen) Draw(f Frame) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, f)
	return nil
}

func (r *recordingScreen) Resize(width, height int) {
	r.width, r.height = width, height
}

func keyEvents(t *testing.T, names ...string) []event.Event {
	t.Helper()
	out := make([]event.Event, 0, len(names))
	for _, name := range names {
		k, err := event.ParseKey(name)
		if err != nil {
			t.Fatalf("parse key %q: %v", name, err)
		}
		out = append(out, event.KeyEvent(k))
	}
	return out
}

func newOpeningRoot() *ListDialog {
	return NewListDialog("Root", []string{"a", "b"}, func(_ int, label string) (Dialog, error) {
		return NewDetailDialog("Detail "+label, []string{label}), nil
	})
}

func TestRunStopsOnQuit(t *testing.T) {
	stack := NewStack(newOpeningRoot(), DefaultKeys())
	src := event.NewQueue(event.Events(keyEvents(t, "down", "enter", "q", "q", "down")...))
	defer src.Stop()
	screen := &recordingScreen{width: 30, height: 6}

	if err := Run(context.Background(), stack, src, screen); err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}
	if !stack.ShouldQuit() {
		t.Fatalf("expected quit flag")
	}
	if len(screen.frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(screen.frames))
	}
	if got := screen.frames[2].Title; trimmed(got) != "Detail b" {
		t.Fatalf("expected detail frame after enter, got %q", got)
	}
	if got := screen.frames[3].Title; trimmed(got) != "Root" {
		t.Fatalf("expected root frame after pop, got %q", got)
	}
}

func TestRunReportsClosedSource(t *testing.T) {
	stack := NewStack(newTestList("a", "b"), DefaultKeys())
	src := event.NewQueue(event.Events(keyEvents(t, "down")...))
	screen := &recordingScreen{width: 20, height: 4}

	err := Run(context.Background(), stack, src, screen)
	if !errors.Is(err, ErrEventsClosed) || !errors.Is(err, event.ErrClosed) {
		t.Fatalf("expected closed-source error, got %v", err)
	}
	if stack.ShouldQuit() {
		t.Fatalf("closing the source must not look like quit")
	}
	if len(screen.frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(screen.frames))
	}
}

func TestRunHonoursContext(t *testing.T) {
	stack := NewStack(newTestList("a"), DefaultKeys())
	src := event.NewQueue(func(ctx context.Context, emit func(event.Event) bool) error {
		<-ctx.Done()
		return nil
	})
	defer src.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := Run(ctx, stack, src, &recordingScreen{width: 20, height: 4})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestRunPropagatesDrawErrors(t *testing.T) {
	stack := NewStack(newTestList("a"), DefaultKeys())
	src := event.NewQueue()
	boom := errors.New("boom")
	err := Run(context.Background(), stack, src, &recordingScreen{width: 20, height: 4, err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected draw error, got %v", err)
	}
}

func TestRunResizesScreen(t *testing.T) {
	stack := NewStack(newTestList("a"), DefaultKeys())
	evts := []event.Event{event.ResizeEvent(40, 8), event.ResizeEvent(0, 0)}
	evts = append(evts, keyEvents(t, "q")...)
	src := event.NewQueue(event.Events(evts...))
	screen := &recordingScreen{width: 20, height: 4}

	if err := Run(context.Background(), stack, src, screen); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(screen.frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(screen.frames))
	}
	if f := screen.frames[1]; f.Width != 40 || f.Height != 8 {
		t.Fatalf("expected resized frame, got %dx%d", f.Width, f.Height)
	}
	if f := screen.frames[2]; f.Width != 40 || f.Height != 8 {
		t.Fatalf("expected empty resize to be ignored, got %dx%d", f.Width, f.Height)
	}
}

func TestRunCyclesWithChords(t *testing.T) {
	stack := NewStack(newOpeningRoot(), DefaultKeys())
	src := event.NewQueue(event.Events(keyEvents(t, "enter", "ctrl+v", "ctrl+v", "ctrl+g")...))
	screen := &recordingScreen{width: 30, height: 5}

	if err := Run(context.Background(), stack, src, screen); !errors.Is(err, ErrEventsClosed) {
		t.Fatalf("expected closed source, got %v", err)
	}
	titles := make([]string, 0, len(screen.frames))
	for _, f := range screen.frames {
		titles = append(titles, trimmed(f.Title))
	}
	want := []string{"Root", "Detail a", "Root", "Detail a", "Root"}
	if len(titles) != len(want) {
		t.Fatalf("expected %d frames, got %q", len(want), titles)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("frame %d: expected %q, got %q", i, want[i], titles[i])
		}
	}
}
