package navigate

import "github.com/dshills/blocknav/internal/engine/buffer"

// Visible returns true if the line is visible under the given ranges.
// Nil or empty ranges mean no folding information is available and every
// line is treated as visible. Ranges are scanned defensively: they are not
// assumed to be sorted, and inverted ranges are normalized.
func Visible(line int, ranges []buffer.LineRange) bool {
	if len(ranges) == 0 {
		return true
	}
	for _, r := range ranges {
		if r.Contains(line) {
			return true
		}
	}
	return false
}

// skipHidden walks from line by step (+1 or -1) while the line is hidden,
// stopping at boundary. It returns the first visible line reached, or
// boundary if the hidden run extends that far. The content of hidden lines
// is never inspected.
func skipHidden(line, step, boundary int, ranges []buffer.LineRange) int {
	for line != boundary && !Visible(line, ranges) {
		line += step
	}
	return line
}
