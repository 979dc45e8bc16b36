package cursor

import (
	"fmt"

	"github.com/dshills/blocknav/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Selection represents a span of selected text.
// Anchor is where the selection started; Head is the current cursor position.
// When Anchor == Head, this represents a cursor with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor Point // Where selection started
	Head   Point // Current cursor position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Point) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// Cursor creates a selection representing just a cursor (no extent).
func Cursor(p Point) Selection {
	return Selection{Anchor: p, Head: p}
}

// AtLine creates a cursor at column 0 of the given line.
func AtLine(line int) Selection {
	return Cursor(buffer.LineStart(line))
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor.Equals(s.Head)
}

// Start returns the earlier endpoint in document order.
func (s Selection) Start() Point {
	if s.Anchor.After(s.Head) {
		return s.Head
	}
	return s.Anchor
}

// End returns the later endpoint in document order.
func (s Selection) End() Point {
	if s.Anchor.After(s.Head) {
		return s.Anchor
	}
	return s.Head
}

// IsForward returns true if the selection extends forward (head >= anchor).
func (s Selection) IsForward() bool {
	return !s.Head.Before(s.Anchor)
}

// MoveTo returns a new collapsed selection (cursor) at the given point.
func (s Selection) MoveTo(p Point) Selection {
	return Selection{Anchor: p, Head: p}
}

// Extend returns a new selection with the head moved to the given point.
// The anchor remains fixed.
func (s Selection) Extend(p Point) Selection {
	return Selection{Anchor: s.Anchor, Head: p}
}

// Collapse collapses the selection to a cursor at the head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head}
}

// Lines returns the inclusive line range the selection spans.
func (s Selection) Lines() buffer.LineRange {
	return buffer.LineRange{Start: s.Start().Line, End: s.End().Line}
}

// ContainsLine returns true if the given line falls within the selection span.
func (s Selection) ContainsLine(line int) bool {
	return s.Lines().Contains(line)
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor.Equals(other.Anchor) && s.Head.Equals(other.Head)
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Head)
	}
	return fmt.Sprintf("Selection(%s..%s)", s.Anchor, s.Head)
}

// ExtendAnchor returns the endpoint that stays fixed when the selection is
// extended by a line-wise motion. If the head sits on the selection's last
// line the selection is growing downward and the start stays fixed;
// otherwise it is growing upward and the end stays fixed. Repeated
// extend-selection commands therefore keep a single fixed anchor no matter
// which direction was used first.
func ExtendAnchor(s Selection) Point {
	if s.Head.Line == s.End().Line {
		return s.Start()
	}
	return s.End()
}
