// Package keymap maps key chords to action names. Bindings come from the
// built-in defaults plus an optional user keymap file; user bindings
// override defaults for the same chord.
package keymap

import (
	"fmt"

	"github.com/dshills/blocknav/internal/input"
	"github.com/dshills/blocknav/internal/input/key"
)

// Binding is a single key-to-action mapping.
type Binding struct {
	// Keys is the chord spec, e.g. "alt+down".
	Keys string `yaml:"keys"`

	// Action is the command identifier, e.g. "block.moveDown".
	Action string `yaml:"action"`
}

// Keymap resolves key events to actions.
type Keymap struct {
	name     string
	bindings map[key.Event]string
}

// New creates an empty keymap.
func New(name string) *Keymap {
	return &Keymap{
		name:     name,
		bindings: make(map[key.Event]string),
	}
}

// Name returns the keymap identifier.
func (k *Keymap) Name() string {
	return k.name
}

// Bind adds a binding, replacing any existing binding for the same chord.
func (k *Keymap) Bind(keys, action string) error {
	ev, err := key.Parse(keys)
	if err != nil {
		return fmt.Errorf("binding %q: %w", keys, err)
	}
	k.bindings[ev] = action
	return nil
}

// MustBind adds a binding and panics on a bad spec. For defaults only.
func (k *Keymap) MustBind(keys, action string) {
	if err := k.Bind(keys, action); err != nil {
		panic(err)
	}
}

// Lookup resolves a key event to an action.
func (k *Keymap) Lookup(ev key.Event) (input.Action, bool) {
	name, ok := k.bindings[ev]
	if !ok {
		return input.Action{}, false
	}
	return input.NewAction(name), true
}

// Merge overlays other's bindings on top of this keymap.
func (k *Keymap) Merge(other *Keymap) {
	if other == nil {
		return
	}
	for ev, action := range other.bindings {
		k.bindings[ev] = action
	}
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}
