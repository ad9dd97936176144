package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title        *lipgloss.Style
	Hints        *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Body         *lipgloss.Style
	Empty        *lipgloss.Style
	CommandText  *lipgloss.Style
	Cursor       *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Background(lipgloss.Color("4")).Bold(true),
	),
	Hints: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Background(lipgloss.Color("4")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	CommandText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
