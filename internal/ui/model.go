package ui

import (
	"reflect"

	"github.com/atomicstack/feedview/internal/event"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type msgHandler func(tea.Msg) tea.Cmd

// Model adapts the dialog stack to a Bubble Tea program. Terminal keys and
// resizes arrive as tea messages; an optional scripted source is drained
// through the same Update path.
type Model struct {
	stack       *Stack
	source      event.Source
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	caret       cursor.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps stack. Positive width or height pin that dimension and
// ignore terminal resizes for it. source may be nil.
func NewModel(stack *Stack, width, height int, source event.Source) *Model {
	m := &Model{
		stack:  stack,
		source: source,
		caret:  newCaret(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Stack exposes the wrapped dialog stack.
func (m *Model) Stack() *Stack {
	return m.stack
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return waitForEvent(m.source)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	if m.stack.ShouldQuit() {
		return m, tea.Quit
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	return renderFrame(m.Frame(), &m.caret)
}

// Frame renders the focused dialog at the current size.
func (m *Model) Frame() Frame {
	width, height := m.width, m.height
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}
	return m.stack.Render(width, height)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(eventMsg{}):          m.handleEventMsg,
		reflect.TypeOf(eventsDoneMsg{}):     m.handleEventsDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		m.stack.SetQuit()
		return nil
	}
	for _, k := range event.FromKeyMsg(keyMsg) {
		m.stack.Dispatch(event.KeyEvent(k))
		if m.stack.ShouldQuit() {
			break
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.resize(resize.Width, resize.Height)
	m.stack.Dispatch(event.ResizeEvent(resize.Width, resize.Height))
	return nil
}

func (m *Model) resize(width, height int) {
	if !m.fixedWidth && width > 0 {
		m.width = width
	}
	if !m.fixedHeight && height > 0 {
		m.height = height
	}
}
