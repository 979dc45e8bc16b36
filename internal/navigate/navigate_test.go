package navigate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/blocknav/internal/engine/buffer"
	"github.com/dshills/blocknav/internal/navigate"
)

func doc(lines ...string) *buffer.Buffer {
	text := ""
	for i, l := range lines {
		if i > 0 {
			text += "\n"
		}
		text += l
	}
	return buffer.New(text)
}

func ranges(rs ...[2]int) []buffer.LineRange {
	out := make([]buffer.LineRange, 0, len(rs))
	for _, r := range rs {
		out = append(out, buffer.LineRange{Start: r[0], End: r[1]})
	}
	return out
}

func TestIsClosingDelimiterLine(t *testing.T) {
	for _, s := range []string{"}", "]", ")", "};", "];", ");", "});", "})", "]);", "])", "  });  ", "\t}"} {
		assert.True(t, navigate.IsClosingDelimiterLine(s), "%q should be a closing delimiter line", s)
	}
	for _, s := range []string{"", "{", "}}", "}; // done", "foo()", ");)", "})) ", "end"} {
		assert.False(t, navigate.IsClosingDelimiterLine(s), "%q should not be a closing delimiter line", s)
	}
}

func TestVisible(t *testing.T) {
	assert.True(t, navigate.Visible(5, nil), "nil ranges mean everything visible")
	assert.True(t, navigate.Visible(5, []buffer.LineRange{}), "empty ranges mean everything visible")

	rs := ranges([2]int{0, 2}, [2]int{6, 9})
	assert.True(t, navigate.Visible(0, rs))
	assert.True(t, navigate.Visible(2, rs))
	assert.True(t, navigate.Visible(6, rs))
	assert.False(t, navigate.Visible(3, rs))
	assert.False(t, navigate.Visible(5, rs))
	assert.False(t, navigate.Visible(-1, rs))
	assert.False(t, navigate.Visible(100, rs))

	// Unsorted and inverted ranges still work.
	messy := []buffer.LineRange{{Start: 9, End: 6}, {Start: 0, End: 2}}
	assert.True(t, navigate.Visible(7, messy))
	assert.True(t, navigate.Visible(1, messy))
	assert.False(t, navigate.Visible(4, messy))
}

func TestTargetBoundaryIdempotence(t *testing.T) {
	d := doc("a", "", "b", "", "c")

	assert.Equal(t, 0, navigate.Target(d, 0, navigate.Up, nil))
	assert.Equal(t, 4, navigate.Target(d, 4, navigate.Down, nil))
}

func TestTargetSingleBlock(t *testing.T) {
	// No blank lines: one block spans the document, so either direction
	// resolves to the boundary.
	d := doc("one", "two", "three", "four")

	assert.Equal(t, 3, navigate.Target(d, 1, navigate.Down, nil))
	assert.Equal(t, 0, navigate.Target(d, 2, navigate.Up, nil))
}

func TestTargetScenarioA(t *testing.T) {
	d := doc("a", "", "b", "", "c")

	got := navigate.Target(d, 0, navigate.Down, nil)
	require.Equal(t, 2, got, "first jump down")

	got = navigate.Target(d, got, navigate.Down, nil)
	require.Equal(t, 4, got, "second jump down")
}

func TestTargetScenarioB(t *testing.T) {
	// Folded function body: only the header, the closing brace and the
	// following code are visible. The brace is skipped, landing directly
	// on the next real block.
	d := doc("f(){", "", "}", "", "g();")
	vis := ranges([2]int{0, 0}, [2]int{2, 4})

	assert.Equal(t, 4, navigate.Target(d, 0, navigate.Down, vis))
}

func TestTargetSymmetry(t *testing.T) {
	// Blocks separated by exactly one blank line: down then up returns to
	// the same first line.
	d := doc("a1", "a2", "", "b1", "b2", "", "c1")

	for _, start := range []int{0, 3} {
		down := navigate.Target(d, start, navigate.Down, nil)
		back := navigate.Target(d, down, navigate.Up, nil)
		assert.Equal(t, start, back, "down from %d then up", start)
	}
}

func TestTargetUpLandsOnBlockStart(t *testing.T) {
	// Moving up from below must land on the previous block's first line,
	// not its last.
	d := doc("x1", "x2", "x3", "", "y")

	assert.Equal(t, 0, navigate.Target(d, 4, navigate.Up, nil))
}

func TestTargetUpSkipsClosingBrace(t *testing.T) {
	d := doc("func f() {", "\tbody", "}", "", "after")

	// The closing brace belongs to the block above it; moving up lands on
	// the block's first line.
	assert.Equal(t, 0, navigate.Target(d, 4, navigate.Up, nil))
}

func TestTargetDownSkipsClosingBrace(t *testing.T) {
	d := doc("a", "", "});", "", "b")

	assert.Equal(t, 4, navigate.Target(d, 0, navigate.Down, nil))
}

func TestTargetClampsOutOfRange(t *testing.T) {
	d := doc("a", "", "b")

	// Stale host positions are clamped, never rejected.
	assert.Equal(t, 2, navigate.Target(d, 99, navigate.Down, nil))
	assert.Equal(t, 0, navigate.Target(d, -3, navigate.Up, nil))
	assert.Equal(t, 2, navigate.Target(d, -3, navigate.Down, nil))
}

func TestTargetEmptyDocument(t *testing.T) {
	empty := buffer.New("")

	assert.Equal(t, 0, navigate.Target(empty, 0, navigate.Down, nil))
	assert.Equal(t, 0, navigate.Target(empty, 5, navigate.Up, nil))
}

func TestCollapsedRegionOpacity(t *testing.T) {
	// Lines [3,6] are hidden. No jump from any line may land strictly
	// inside the hidden region.
	lines := []string{"a", "", "b", "h1", "", "h2", "h3", "", "c"}
	d := doc(lines...)
	vis := ranges([2]int{0, 2}, [2]int{7, 8})

	for from := 0; from < len(lines); from++ {
		for _, dir := range []navigate.Direction{navigate.Up, navigate.Down} {
			got := navigate.Target(d, from, dir, vis)
			assert.Falsef(t, got >= 3 && got <= 6,
				"Target(%d, %s) = %d landed inside hidden region", from, dir, got)
		}
	}
}

func TestTargetDownIntoTrailingHiddenRun(t *testing.T) {
	// Hidden run extends to the last line: jump resolves to the boundary.
	d := doc("a", "", "h1", "h2")
	vis := ranges([2]int{0, 1})

	assert.Equal(t, 3, navigate.Target(d, 0, navigate.Down, vis))
}

func TestTargetUpIntoLeadingHiddenRun(t *testing.T) {
	d := doc("h1", "h2", "", "a")
	vis := ranges([2]int{2, 3})

	assert.Equal(t, 0, navigate.Target(d, 3, navigate.Up, vis))
}

func TestTargetDownMultipleBlankLines(t *testing.T) {
	d := doc("a", "", "", "", "b")

	assert.Equal(t, 4, navigate.Target(d, 0, navigate.Down, nil))
}

func TestTargetFromBlankLine(t *testing.T) {
	d := doc("a", "", "b", "c")

	// Starting in the gap: down lands on the next block's first line.
	assert.Equal(t, 2, navigate.Target(d, 1, navigate.Down, nil))
	// Up from the gap lands on the previous block's first line.
	assert.Equal(t, 0, navigate.Target(d, 1, navigate.Up, nil))
}

func TestTargetNoNextBlock(t *testing.T) {
	d := doc("a", "b", "", "")

	// No block below: resolve to the boundary silently.
	assert.Equal(t, 3, navigate.Target(d, 0, navigate.Down, nil))
}

func TestTargetUpTwoPhase(t *testing.T) {
	// Up always lands on the previous block's first line: from mid-block
	// the search first exits the current block, then rescans to the start
	// of the block above it.
	d := doc("p1", "p2", "", "q1", "q2", "q3")

	assert.Equal(t, 0, navigate.Target(d, 5, navigate.Up, nil))
	assert.Equal(t, 0, navigate.Target(d, 3, navigate.Up, nil))
}
