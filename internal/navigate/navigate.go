package navigate

import "github.com/dshills/blocknav/internal/engine/buffer"

// Document is the read-only line view the navigator operates on.
// *buffer.Buffer satisfies it; tests supply lightweight fakes.
type Document interface {
	LineCount() int
	Line(i int) buffer.LineInfo
}

// Direction selects the search direction.
type Direction uint8

const (
	// Up searches toward line 0.
	Up Direction = iota
	// Down searches toward the last line.
	Down
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Target computes the line the cursor should land on when jumping one
// block in the given direction. The current line is clamped into range
// before dispatch; at a document boundary the boundary itself is returned,
// a normal terminal state rather than an error. Empty documents yield 0.
func Target(doc Document, current int, dir Direction, ranges []buffer.LineRange) int {
	count := doc.LineCount()
	if count == 0 {
		return 0
	}
	if current < 0 {
		current = 0
	}
	if current > count-1 {
		current = count - 1
	}

	boundary := count - 1
	if dir == Up {
		boundary = 0
	}
	if current == boundary {
		return current
	}

	if dir == Up {
		return PrevBlockStart(doc, current, boundary, ranges)
	}
	return NextBlockStart(doc, current, boundary, ranges)
}

// NextBlockStart finds the first line of the next block at or below from,
// never passing boundary. It first advances to the last line of the block
// containing from, then scans downward skipping blank runs, hidden runs,
// and standalone closing delimiters until it reaches a landable line or
// the boundary.
func NextBlockStart(doc Document, from, boundary int, ranges []buffer.LineRange) int {
	line := from

	// Skip to the end of the current block. Starting on a blank line means
	// we are already in the gap before the next block.
	if !doc.Line(line).Blank {
		for line+1 <= boundary && Visible(line+1, ranges) && !doc.Line(line+1).Blank {
			line++
		}
	}

	for {
		line++
		if line > boundary {
			return boundary
		}
		if !Visible(line, ranges) {
			line = skipHidden(line, +1, boundary, ranges)
		}
		info := doc.Line(line)
		if Visible(line, ranges) && !info.Blank && !IsClosingDelimiterLine(info.Text) {
			return line
		}
		// Blank, still hidden at the boundary, or a closing delimiter that
		// opens the next visible range: keep scanning.
	}
}

// PrevBlockStart finds the first line of the previous block at or above
// from, never passing boundary. The search is two-phase: first land
// anywhere inside the previous block, then rescan to that block's first
// line. Stopping at the first non-blank line when moving up would land
// mid-block or on a trailing closing brace; landing on the first line
// regardless of direction is the navigator's contract.
func PrevBlockStart(doc Document, from, boundary int, ranges []buffer.LineRange) int {
	line := from
	if !doc.Line(line).Blank {
		line = blockStart(doc, line, boundary, ranges)
	}

	for {
		line--
		if line < boundary {
			return boundary
		}
		if !Visible(line, ranges) {
			line = skipHidden(line, -1, boundary, ranges)
			if !Visible(line, ranges) {
				// Hidden run reaches the boundary.
				return boundary
			}
		}
		info := doc.Line(line)
		if info.Blank || IsClosingDelimiterLine(info.Text) {
			// A lone closing brace belongs to the block above it; keep
			// scanning backward for that block's real content.
			continue
		}
		return blockStart(doc, line, boundary, ranges)
	}
}

// blockStart walks backward from a line inside a block to the block's
// first line. Closing-delimiter lines do not start a block, so the walk
// passes over them the same way it passes over content lines.
func blockStart(doc Document, line, boundary int, ranges []buffer.LineRange) int {
	for line-1 >= boundary && Visible(line-1, ranges) && !doc.Line(line-1).Blank &&
		!IsClosingDelimiterLine(doc.Line(line-1).Text) {
		line--
	}
	return line
}
