package ui

// Dialog is one modal screen on the stack. The set of variants is closed:
// *ListDialog and *DetailDialog. The stack switches on the concrete type to
// deliver keys and render.
type Dialog interface {
	ID() string
	Title() string
	dialog()
}

var (
	_ Dialog = (*ListDialog)(nil)
	_ Dialog = (*DetailDialog)(nil)
)

// OpenFunc builds the child dialog for the selected row of a list. Returning
// a nil dialog and nil error leaves the stack unchanged.
type OpenFunc func(index int, label string) (Dialog, error)

// isNil reports whether d is nil or holds a nil variant pointer.
func isNil(d Dialog) bool {
	switch v := d.(type) {
	case nil:
		return true
	case *ListDialog:
		return v == nil
	case *DetailDialog:
		return v == nil
	}
	return false
}
