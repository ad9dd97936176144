package ui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Command  key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

type detailKeyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

type commandKeyMap struct {
	Submit     key.Binding
	Cancel     key.Binding
	Backspace  key.Binding
	Delete     key.Binding
	Left       key.Binding
	Right      key.Binding
	Home       key.Binding
	End        key.Binding
	DeleteWord key.Binding
}

var listKeys = listKeyMap{
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
	Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "Previous")),
	Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "Next")),
	Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Open")),
	Command:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "Command")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	Home:     key.NewBinding(key.WithKeys("home")),
	End:      key.NewBinding(key.WithKeys("end")),
}

var detailKeys = detailKeyMap{
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
	Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "Scroll up")),
	Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "Scroll down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	Home:     key.NewBinding(key.WithKeys("home")),
	End:      key.NewBinding(key.WithKeys("end")),
}

var commandKeys = commandKeyMap{
	Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Run")),
	Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Cancel")),
	Backspace:  key.NewBinding(key.WithKeys("backspace")),
	Delete:     key.NewBinding(key.WithKeys("delete")),
	Left:       key.NewBinding(key.WithKeys("left")),
	Right:      key.NewBinding(key.WithKeys("right")),
	Home:       key.NewBinding(key.WithKeys("home", "ctrl+a")),
	End:        key.NewBinding(key.WithKeys("end", "ctrl+e")),
	DeleteWord: key.NewBinding(key.WithKeys("ctrl+w")),
}
