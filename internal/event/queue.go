package event

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Producer emits events until it returns. emit reports false once the queue
// is shutting down, after which the producer should return promptly.
type Producer func(ctx context.Context, emit func(Event) bool) error

// Queue fans any number of producers into a single ordered hand-off channel.
// The channel closes once every producer has returned.
type Queue struct {
	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	done   chan struct{}
	err    error
}

// NewQueue starts one goroutine per producer.
func NewQueue(producers ...Producer) *Queue {
	base, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(base)
	q := &Queue{
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
		done:   make(chan struct{}),
	}
	for _, produce := range producers {
		produce := produce
		group.Go(func() error {
			return produce(ctx, q.emit)
		})
	}

	go func() {
		q.err = group.Wait()
		close(q.events)
		close(q.done)
	}()

	return q
}

func (q *Queue) emit(evt Event) bool {
	select {
	case <-q.ctx.Done():
		return false
	case q.events <- evt:
		return true
	}
}

// Next implements Source.
func (q *Queue) Next(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case evt, ok := <-q.events:
		if !ok {
			return Event{}, ErrClosed
		}
		return evt, nil
	}
}

// Stop asks producers to exit. Events already queued remain readable.
func (q *Queue) Stop() {
	q.cancel()
}

// Wait blocks until every producer has exited and returns the first producer
// error, if any.
func (q *Queue) Wait() error {
	<-q.done
	return q.err
}

// Err returns the first producer error once the queue has closed, nil before.
func (q *Queue) Err() error {
	select {
	case <-q.done:
		return q.err
	default:
		return nil
	}
}

// Events returns a producer that emits the given events in order.
func Events(evts ...Event) Producer {
	return func(ctx context.Context, emit func(Event) bool) error {
		for _, evt := range evts {
			if !emit(evt) {
				return nil
			}
		}
		return nil
	}
}
