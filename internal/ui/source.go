package ui

import (
	"context"
	"errors"

	"github.com/atomicstack/feedview/internal/event"
	"github.com/atomicstack/feedview/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForEvent(src event.Source) tea.Cmd {
	return func() tea.Msg {
		evt, err := src.Next(context.Background())
		if err != nil {
			return eventsDoneMsg{err: err}
		}
		return eventMsg{event: evt}
	}
}

type eventMsg struct {
	event event.Event
}

type eventsDoneMsg struct {
	err error
}

func (m *Model) handleEventMsg(msg tea.Msg) tea.Cmd {
	evtMsg, ok := msg.(eventMsg)
	if !ok {
		return nil
	}
	if evtMsg.event.Kind == event.KindResize {
		m.resize(evtMsg.event.Width, evtMsg.event.Height)
	}
	m.stack.Dispatch(evtMsg.event)
	if m.source == nil || m.stack.ShouldQuit() {
		return nil
	}
	return waitForEvent(m.source)
}

func (m *Model) handleEventsDoneMsg(msg tea.Msg) tea.Cmd {
	done, _ := msg.(eventsDoneMsg)
	var err error
	if !errors.Is(done.err, event.ErrClosed) {
		err = done.err
	}
	events.Source.Closed(err)
	m.source = nil
	return nil
}
