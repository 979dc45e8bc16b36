package buffer

import "fmt"

// Point is a position in the document as (line, column).
// Lines and columns are 0-indexed.
type Point struct {
	Line   int
	Column int
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Column)
}

// Before returns true if p comes before other in document order.
func (p Point) Before(other Point) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// After returns true if p comes after other in document order.
func (p Point) After(other Point) bool {
	return other.Before(p)
}

// Equals returns true if both points are the same position.
func (p Point) Equals(other Point) bool {
	return p.Line == other.Line && p.Column == other.Column
}

// Compare returns -1 if p < other, 0 if equal, 1 if p > other.
func (p Point) Compare(other Point) int {
	switch {
	case p.Before(other):
		return -1
	case p.After(other):
		return 1
	default:
		return 0
	}
}

// LineStart returns the point at column 0 of the given line.
func LineStart(line int) Point {
	if line < 0 {
		line = 0
	}
	return Point{Line: line}
}

// LineRange is an inclusive interval of line indices [Start, End].
type LineRange struct {
	Start int
	End   int
}

// Normalize returns the range with Start <= End.
func (r LineRange) Normalize() LineRange {
	if r.End < r.Start {
		return LineRange{Start: r.End, End: r.Start}
	}
	return r
}

// Contains returns true if line falls within the range, inclusive.
// Malformed ranges (End < Start) are normalized before the test.
func (r LineRange) Contains(line int) bool {
	n := r.Normalize()
	return line >= n.Start && line <= n.End
}

// Len returns the number of lines covered by the range.
func (r LineRange) Len() int {
	n := r.Normalize()
	return n.End - n.Start + 1
}

// Overlaps returns true if the two ranges share at least one line,
// or are directly adjacent.
func (r LineRange) Overlaps(other LineRange) bool {
	a, b := r.Normalize(), other.Normalize()
	return a.Start <= b.End+1 && b.Start <= a.End+1
}

// Merge returns the smallest range covering both r and other.
func (r LineRange) Merge(other LineRange) LineRange {
	a, b := r.Normalize(), other.Normalize()
	if b.Start < a.Start {
		a.Start = b.Start
	}
	if b.End > a.End {
		a.End = b.End
	}
	return a
}

// String returns a string representation of the range.
func (r LineRange) String() string {
	return fmt.Sprintf("[%d,%d]", r.Start, r.End)
}
