// Package event defines the normalized input stream consumed by the dialog
// core: keys and terminal resizes, delivered one at a time through a blocking
// Source.
package event

import (
	"context"
	"errors"
	"fmt"
)

// Kind distinguishes the event variants.
type Kind int

const (
	KindKey Kind = iota
	KindResize
)

// Event is either a keypress or a terminal resize. Width and Height are
// optional on resize events; zero means the consumer should query the size.
type Event struct {
	Kind   Kind
	Key    Key
	Width  int
	Height int
}

// ErrClosed is returned by Source.Next once every producer has finished.
var ErrClosed = errors.New("event source closed")

// Source yields events in the order the producers observed them.
type Source interface {
	// Next blocks until an event is available, the source closes (ErrClosed)
	// or ctx is done.
	Next(ctx context.Context) (Event, error)
}

// KeyEvent wraps k in an Event.
func KeyEvent(k Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// ResizeEvent reports a new terminal size.
func ResizeEvent(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

func (e Event) String() string {
	if e.Kind == KindResize {
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	}
	return "key " + e.Key.String()
}
