package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "Q", "/"
//   - Named keys: "enter", "escape", "down", "space"
//   - With modifiers: "ctrl+d", "alt+down", "shift+alt+up"
//
// Names are case-insensitive; the canonical form is Event.String().
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")

	// A bare "+" binding is the plus character, not a modifier separator.
	if spec == "+" {
		return Event{Key: KeyRune, Rune: '+'}, nil
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "c":
			mods = mods.With(ModCtrl)
		case "alt", "a", "meta", "m":
			mods = mods.With(ModAlt)
		case "shift", "s":
			mods = mods.With(ModShift)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	if keyPart == "" {
		return Event{}, fmt.Errorf("%w: missing key in %q", ErrInvalidSpec, spec)
	}

	if k, ok := keyNames[strings.ToLower(keyPart)]; ok {
		return Event{Key: k, Mods: mods}, nil
	}

	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		return Event{Key: KeyRune, Rune: r, Mods: mods}, nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a spec and panics on error. For default bindings only.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic(fmt.Sprintf("key: bad binding spec %q: %v", spec, err))
	}
	return e
}
