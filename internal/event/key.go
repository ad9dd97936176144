package event

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Code identifies the kind of a normalized key.
type Code int

const (
	CodeChar Code = iota
	CodeBackspace
	CodeLeft
	CodeRight
	CodeUp
	CodeDown
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeDelete
	CodeInsert
	CodeF
	CodeAlt
	CodeCtrl
	CodeEsc
)

var codeNames = map[Code]string{
	CodeBackspace: "backspace",
	CodeLeft:      "left",
	CodeRight:     "right",
	CodeUp:        "up",
	CodeDown:      "down",
	CodeHome:      "home",
	CodeEnd:       "end",
	CodePageUp:    "pgup",
	CodePageDown:  "pgdown",
	CodeDelete:    "delete",
	CodeInsert:    "insert",
	CodeEsc:       "esc",
}

var namedCodes = map[string]Code{
	"backspace": CodeBackspace,
	"left":      CodeLeft,
	"right":     CodeRight,
	"up":        CodeUp,
	"down":      CodeDown,
	"home":      CodeHome,
	"end":       CodeEnd,
	"pgup":      CodePageUp,
	"pageup":    CodePageUp,
	"pgdown":    CodePageDown,
	"pagedown":  CodePageDown,
	"delete":    CodeDelete,
	"insert":    CodeInsert,
	"esc":       CodeEsc,
	"escape":    CodeEsc,
}

// Key is a keypress normalized away from any particular terminal library.
// Rune is set for CodeChar, F for CodeF, and Mod wraps the modified key for
// CodeAlt and CodeCtrl.
type Key struct {
	Code Code
	Rune rune
	F    int
	Mod  *Key
}

var (
	// Enter is delivered as a newline character.
	Enter = Char('\n')
	Tab   = Char('\t')
)

// Char returns the key for a printable or control character.
func Char(r rune) Key {
	return Key{Code: CodeChar, Rune: r}
}

// Named returns a navigation/editing key without payload.
func Named(code Code) Key {
	return Key{Code: code}
}

// Function returns the function key Fn.
func Function(n int) Key {
	return Key{Code: CodeF, F: n}
}

// Ctrl wraps k with the control modifier.
func Ctrl(k Key) Key {
	return Key{Code: CodeCtrl, Mod: &k}
}

// Alt wraps k with the alt modifier.
func Alt(k Key) Key {
	return Key{Code: CodeAlt, Mod: &k}
}

// IsEnter reports whether k is the enter key.
func (k Key) IsEnter() bool {
	return k.Code == CodeChar && k.Rune == '\n'
}

// Printable returns the character for plain printable keys.
func (k Key) Printable() (rune, bool) {
	if k.Code != CodeChar || !unicode.IsPrint(k.Rune) {
		return 0, false
	}
	return k.Rune, true
}

// Equal compares keys including their modifier chain.
func (k Key) Equal(other Key) bool {
	if k.Code != other.Code || k.Rune != other.Rune || k.F != other.F {
		return false
	}
	if k.Mod == nil || other.Mod == nil {
		return k.Mod == nil && other.Mod == nil
	}
	return k.Mod.Equal(*other.Mod)
}

// String renders the key using Bubble Tea's naming ("ctrl+v", "enter", "up"),
// which lets bubbles/key bindings match normalized keys directly.
func (k Key) String() string {
	switch k.Code {
	case CodeChar:
		switch k.Rune {
		case '\n':
			return "enter"
		case '\t':
			return "tab"
		}
		return string(k.Rune)
	case CodeF:
		return "f" + strconv.Itoa(k.F)
	case CodeCtrl, CodeAlt:
		prefix := "ctrl+"
		if k.Code == CodeAlt {
			prefix = "alt+"
		}
		if k.Mod == nil {
			return strings.TrimSuffix(prefix, "+")
		}
		return prefix + k.Mod.String()
	}
	if name, ok := codeNames[k.Code]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k.Code))
}

// ParseKey converts a key name as produced by Key.String (plus a few aliases
// such as "space" and "return") back into a Key.
func ParseKey(name string) (Key, error) {
	if name == "" {
		return Key{}, fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Char(r), nil
	}
	lower := strings.ToLower(name)
	switch lower {
	case "enter", "return":
		return Enter, nil
	case "tab":
		return Tab, nil
	case "space":
		return Char(' '), nil
	}
	if code, ok := namedCodes[lower]; ok {
		return Named(code), nil
	}
	if rest, ok := cutPrefixFold(name, "ctrl+"); ok {
		inner, err := ParseKey(rest)
		if err != nil {
			return Key{}, fmt.Errorf("parse %q: %w", name, err)
		}
		return Ctrl(inner), nil
	}
	if rest, ok := cutPrefixFold(name, "alt+"); ok {
		inner, err := ParseKey(rest)
		if err != nil {
			return Key{}, fmt.Errorf("parse %q: %w", name, err)
		}
		return Alt(inner), nil
	}
	if strings.HasPrefix(lower, "f") {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n > 0 {
			return Function(n), nil
		}
	}
	return Key{}, fmt.Errorf("unknown key %q", name)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
