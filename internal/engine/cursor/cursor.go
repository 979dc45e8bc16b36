// Package cursor provides the selection model: a Point-based anchor/head
// pair plus the mutable holder the event loop and handlers share.
package cursor

// Set holds the editor's current selection. The document is read-only so a
// single primary selection is all the state there is; multi-cursor is
// deliberately unsupported.
type Set struct {
	primary Selection
}

// NewSet creates a cursor set with the cursor at the origin.
func NewSet() *Set {
	return &Set{}
}

// Primary returns the current selection.
func (s *Set) Primary() Selection {
	return s.primary
}

// SetPrimary replaces the current selection.
func (s *Set) SetPrimary(sel Selection) {
	s.primary = sel
}

// HasSelection returns true if the selection has extent.
func (s *Set) HasSelection() bool {
	return !s.primary.IsEmpty()
}

// ClampLines clamps both endpoints of the selection to [0, maxLine].
// Stale positions can arrive after a buffer reload; clamping beats crashing.
func (s *Set) ClampLines(maxLine int) {
	if maxLine < 0 {
		maxLine = 0
	}
	clamp := func(p Point) Point {
		if p.Line < 0 {
			p.Line = 0
			p.Column = 0
		}
		if p.Line > maxLine {
			p.Line = maxLine
			p.Column = 0
		}
		return p
	}
	s.primary.Anchor = clamp(s.primary.Anchor)
	s.primary.Head = clamp(s.primary.Head)
}
