// Package key models keyboard input independent of the terminal library.
// Events are comparable values so keymaps can use them directly as map keys.
package key

import "strings"

// Key represents a keyboard key. Character keys use KeyRune with the
// character in Event.Rune.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeySpace

	// KeyRune is used for character keys (letters, numbers, punctuation).
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	case KeyRune:
		return "rune"
	default:
		return "none"
	}
}

// keyNames maps lowercase spec names to keys for parsing.
var keyNames = map[string]Key{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pagedown":  KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"space":     KeySpace,
}

// Modifier is a bitmask of modifier keys.
type Modifier uint8

const (
	// ModNone means no modifiers.
	ModNone Modifier = 0
	// ModCtrl is the Control key.
	ModCtrl Modifier = 1 << iota
	// ModAlt is the Alt/Option key.
	ModAlt
	// ModShift is the Shift key.
	ModShift
)

// Has returns true if the modifier m is set.
func (mods Modifier) Has(m Modifier) bool {
	return mods&m != 0
}

// With returns the mask with m added.
func (mods Modifier) With(m Modifier) Modifier {
	return mods | m
}

// String returns the canonical "ctrl+alt+shift" prefix form.
func (mods Modifier) String() string {
	var parts []string
	if mods.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if mods.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if mods.Has(ModShift) {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// Event is a single key press with modifiers.
type Event struct {
	Key  Key
	Rune rune
	Mods Modifier
}

// String returns the canonical spec form of the event, e.g. "alt+down"
// or "shift+alt+up" or "q".
func (e Event) String() string {
	var name string
	if e.Key == KeyRune {
		name = string(e.Rune)
	} else {
		name = e.Key.String()
	}
	if e.Mods == ModNone {
		return name
	}
	return e.Mods.String() + "+" + name
}

// IsRune returns true for a plain character key with no ctrl/alt.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && !e.Mods.Has(ModCtrl) && !e.Mods.Has(ModAlt)
}
