// Package fold tracks folded (hidden) line regions and derives the
// visible-line ranges the navigator consumes. A folded region hides the
// lines below its header; the header line stays visible so the fold can be
// reopened from it.
package fold

import (
	"sort"

	"github.com/dshills/blocknav/internal/engine/buffer"
)

// Set holds the currently folded regions. Regions are kept normalized,
// disjoint, and in ascending order.
type Set struct {
	regions []buffer.LineRange
}

// NewSet creates an empty fold set.
func NewSet() *Set {
	return &Set{}
}

// Fold hides the given line range. Inverted input is normalized and
// regions that touch an existing fold are merged into it.
func (s *Set) Fold(r buffer.LineRange) {
	r = r.Normalize()
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End < r.Start {
		return
	}

	merged := r
	kept := s.regions[:0]
	for _, existing := range s.regions {
		if merged.Overlaps(existing) {
			merged = merged.Merge(existing)
		} else {
			kept = append(kept, existing)
		}
	}
	s.regions = append(kept, merged)
	sort.Slice(s.regions, func(i, j int) bool {
		return s.regions[i].Start < s.regions[j].Start
	})
}

// UnfoldAt removes the region containing the given line.
// Returns true if a region was removed.
func (s *Set) UnfoldAt(line int) bool {
	for i, r := range s.regions {
		if r.Contains(line) {
			s.regions = append(s.regions[:i], s.regions[i+1:]...)
			return true
		}
	}
	return false
}

// FoldedAt returns the region containing the given line, if any.
func (s *Set) FoldedAt(line int) (buffer.LineRange, bool) {
	for _, r := range s.regions {
		if r.Contains(line) {
			return r, true
		}
	}
	return buffer.LineRange{}, false
}

// IsFolded returns true if the line is inside a folded region.
func (s *Set) IsFolded(line int) bool {
	_, ok := s.FoldedAt(line)
	return ok
}

// Clear removes all folds.
func (s *Set) Clear() {
	s.regions = nil
}

// Count returns the number of folded regions.
func (s *Set) Count() int {
	return len(s.regions)
}

// Regions returns a copy of the folded regions in ascending order.
func (s *Set) Regions() []buffer.LineRange {
	out := make([]buffer.LineRange, len(s.regions))
	copy(out, s.regions)
	return out
}

// VisibleRanges returns the complement of the folded regions over a
// document of lineCount lines: the ascending, disjoint, inclusive
// intervals of visible lines. Nil is returned when nothing is folded,
// the navigator's convention for "no visibility restriction".
func (s *Set) VisibleRanges(lineCount int) []buffer.LineRange {
	if len(s.regions) == 0 || lineCount <= 0 {
		return nil
	}

	var out []buffer.LineRange
	next := 0
	for _, r := range s.regions {
		if r.Start > lineCount-1 {
			break
		}
		if r.Start > next {
			out = append(out, buffer.LineRange{Start: next, End: r.Start - 1})
		}
		if r.End+1 > next {
			next = r.End + 1
		}
	}
	if next <= lineCount-1 {
		out = append(out, buffer.LineRange{Start: next, End: lineCount - 1})
	}
	if len(out) == 0 {
		// Everything folded; report the whole document visible rather than
		// an impossible empty view.
		return nil
	}
	return out
}
