// Package input defines the action vocabulary produced by key handling and
// consumed by the dispatcher.
package input

// Action is a named command resolved from a key binding.
type Action struct {
	// Name is the command identifier (e.g., "block.moveDown").
	Name string

	// Count is the repeat count from a digit prefix (1 if not specified).
	Count int
}

// NewAction creates an action with the default count.
func NewAction(name string) Action {
	return Action{Name: name, Count: 1}
}

// WithCount returns a copy of the action with the specified count.
func (a Action) WithCount(count int) Action {
	if count < 1 {
		count = 1
	}
	a.Count = count
	return a
}

// GetCount returns the action count, never less than 1.
func (a Action) GetCount() int {
	if a.Count < 1 {
		return 1
	}
	return a.Count
}
