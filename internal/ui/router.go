package ui

import (
	"unicode"

	"github.com/atomicstack/feedview/internal/event"
	"github.com/charmbracelet/bubbles/key"
)

// Keys selects the characters that, held with ctrl, cycle between dialogs.
type Keys struct {
	Next     rune
	Previous rune
}

// DefaultKeys returns ctrl+v / ctrl+g.
func DefaultKeys() Keys {
	return Keys{Next: 'v', Previous: 'g'}
}

// Route is the router's verdict for a key.
type Route int

const (
	RouteDelegate Route = iota
	RouteCycleNext
	RouteCyclePrevious
)

func (r Route) String() string {
	switch r {
	case RouteCycleNext:
		return "next"
	case RouteCyclePrevious:
		return "previous"
	default:
		return "delegate"
	}
}

// Router classifies keys into global stack commands before the top dialog
// sees them.
type Router struct {
	next     key.Binding
	previous key.Binding
}

// NewRouter builds a router for keys. Zero runes fall back to the defaults.
func NewRouter(keys Keys) Router {
	def := DefaultKeys()
	if keys.Next == 0 {
		keys.Next = def.Next
	}
	if keys.Previous == 0 {
		keys.Previous = def.Previous
	}
	next := "ctrl+" + string(unicode.ToLower(keys.Next))
	previous := "ctrl+" + string(unicode.ToLower(keys.Previous))
	return Router{
		next:     key.NewBinding(key.WithKeys(next), key.WithHelp(next, "next dialog")),
		previous: key.NewBinding(key.WithKeys(previous), key.WithHelp(previous, "previous dialog")),
	}
}

// Route classifies k.
func (r Router) Route(k event.Key) Route {
	switch {
	case key.Matches(k, r.next):
		return RouteCycleNext
	case key.Matches(k, r.previous):
		return RouteCyclePrevious
	default:
		return RouteDelegate
	}
}

// Bindings exposes the global bindings for help output.
func (r Router) Bindings() []key.Binding {
	return []key.Binding{r.next, r.previous}
}
