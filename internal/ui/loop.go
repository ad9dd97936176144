package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/feedview/internal/event"
	"github.com/atomicstack/feedview/internal/logging/events"
)

// ErrEventsClosed is returned by Run when the event source closes before
// quit is requested.
var ErrEventsClosed = fmt.Errorf("ui: %w", event.ErrClosed)

// Screen is the drawable output of the core loop.
type Screen interface {
	Size() (width, height int)
	Draw(Frame) error
}

// Resizer is implemented by screens whose size follows resize events.
type Resizer interface {
	Resize(width, height int)
}

// Run drives stack from src until quit is requested, the source closes or
// ctx ends. Each iteration draws the focused dialog, waits for exactly one
// event and dispatches it.
func Run(ctx context.Context, stack *Stack, src event.Source, screen Screen) error {
	for {
		width, height := screen.Size()
		if err := screen.Draw(stack.Render(width, height)); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		ev, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, event.ErrClosed) {
				events.Source.Closed(nil)
				return ErrEventsClosed
			}
			return err
		}
		if ev.Kind == event.KindResize {
			if r, ok := screen.(Resizer); ok && ev.Width > 0 && ev.Height > 0 {
				r.Resize(ev.Width, ev.Height)
			}
		}
		stack.Dispatch(ev)
		if stack.ShouldQuit() {
			return nil
		}
	}
}
