// Package ui is the dialog core of feedview: a stack of modal dialogs sharing
// one screen and one ordered stream of input events.
//
// Event flow:
//   - An event.Source yields keys and resizes one at a time. Run (headless) or
//     Model.Update (Bubble Tea) hands each event to Stack.Dispatch.
//   - Dispatch asks the Router whether the key is a global chord (ctrl+next,
//     ctrl+previous cycle focus through the stack). Every other key goes to
//     the focused dialog, selected by a type switch over the closed Dialog
//     variants (*ListDialog, *DetailDialog).
//   - Dialogs mutate their own state (internal/ui/state.List,
//     internal/ui/state.TextLine) and may call back into the stack to push a
//     child, pop themselves or request quit.
//
// Stack invariants:
//   - The stack is seeded with a root dialog and never becomes empty.
//     Popping the last dialog sets the quit flag instead.
//   - Push and pop focus the most recently pushed entry; cycling wraps.
//
// Rendering:
//   - Stack.Render lays the focused dialog out into a Frame: title band,
//     content band, hints band and, while a list dialog's command line is
//     focused, a command band with a caret position. Frame.Lines gives plain
//     text; the Bubble Tea view and TextScreen style it with internal/theme.
package ui
