package event

import (
	tea "github.com/charmbracelet/bubbletea"
)

var teaNamed = map[tea.KeyType]Key{
	tea.KeyEnter:     Enter,
	tea.KeyTab:       Tab,
	tea.KeySpace:     Char(' '),
	tea.KeyBackspace: Named(CodeBackspace),
	tea.KeyCtrlH:     Named(CodeBackspace),
	tea.KeyEsc:       Named(CodeEsc),
	tea.KeyLeft:      Named(CodeLeft),
	tea.KeyRight:     Named(CodeRight),
	tea.KeyUp:        Named(CodeUp),
	tea.KeyDown:      Named(CodeDown),
	tea.KeyHome:      Named(CodeHome),
	tea.KeyEnd:       Named(CodeEnd),
	tea.KeyPgUp:      Named(CodePageUp),
	tea.KeyPgDown:    Named(CodePageDown),
	tea.KeyDelete:    Named(CodeDelete),
	tea.KeyInsert:    Named(CodeInsert),
}

var teaFunction = map[tea.KeyType]int{
	tea.KeyF1: 1, tea.KeyF2: 2, tea.KeyF3: 3, tea.KeyF4: 4, tea.KeyF5: 5,
	tea.KeyF6: 6, tea.KeyF7: 7, tea.KeyF8: 8, tea.KeyF9: 9, tea.KeyF10: 10,
	tea.KeyF11: 11, tea.KeyF12: 12, tea.KeyF13: 13, tea.KeyF14: 14, tea.KeyF15: 15,
	tea.KeyF16: 16, tea.KeyF17: 17, tea.KeyF18: 18, tea.KeyF19: 19, tea.KeyF20: 20,
}

// FromKeyMsg normalizes a Bubble Tea key message. Pasted or buffered input
// may carry several runes, so the result is a slice. Keys with no normalized
// form (shift+tab, ctrl+arrows) yield nil.
func FromKeyMsg(msg tea.KeyMsg) []Key {
	var keys []Key
	switch {
	case msg.Type == tea.KeyRunes:
		keys = make([]Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, Char(r))
		}
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		if k, ok := teaNamed[msg.Type]; ok {
			keys = []Key{k}
			break
		}
		keys = []Key{Ctrl(Char('a' + rune(msg.Type-tea.KeyCtrlA)))}
	default:
		if k, ok := teaNamed[msg.Type]; ok {
			keys = []Key{k}
		} else if n, ok := teaFunction[msg.Type]; ok {
			keys = []Key{Function(n)}
		}
	}
	if msg.Alt {
		for i, k := range keys {
			keys[i] = Alt(k)
		}
	}
	return keys
}
