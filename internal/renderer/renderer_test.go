package renderer

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/blocknav/internal/engine/buffer"
	"github.com/dshills/blocknav/internal/engine/cursor"
	"github.com/dshills/blocknav/internal/fold"
)

func newTestRenderer(t *testing.T, text string) (*Renderer, *fold.Set, *cursor.Set) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(40, 10)

	buf := buffer.New(text)
	cursors := cursor.NewSet()
	folds := fold.NewSet()
	r := NewWithScreen(screen, buf, cursors, folds, Options{TabWidth: 4})
	t.Cleanup(r.Shutdown)
	return r, folds, cursors
}

func TestVisibleLinesSkipFolds(t *testing.T) {
	r, folds, _ := newTestRenderer(t, "a\nb\nc\nd\ne")
	folds.Fold(buffer.LineRange{Start: 1, End: 3})

	got := r.visibleLines()
	want := []int{0, 4}
	if len(got) != len(want) {
		t.Fatalf("visibleLines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visibleLines()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRowOf(t *testing.T) {
	lines := []int{0, 4, 5, 9}

	tests := []struct {
		line int
		want int
	}{
		{0, 0},
		{4, 1},
		{9, 3},
		{2, 0},  // folded: nearest preceding visible row
		{7, 2},  // folded: nearest preceding visible row
		{99, 3}, // past the end clamps to the last row
	}

	for _, tt := range tests {
		if got := rowOf(lines, tt.line); got != tt.want {
			t.Errorf("rowOf(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestVisibleLineRange(t *testing.T) {
	r, _, _ := newTestRenderer(t, "a\nb\nc")

	first, last := r.VisibleLineRange()
	if first != 0 || last != 2 {
		t.Errorf("VisibleLineRange() = (%d,%d), want (0,2)", first, last)
	}
}

func TestScrollIntoViewMapsThroughFolds(t *testing.T) {
	text := ""
	for i := 0; i < 50; i++ {
		if i > 0 {
			text += "\n"
		}
		text += "line"
	}
	r, folds, _ := newTestRenderer(t, text)
	folds.Fold(buffer.LineRange{Start: 5, End: 40})

	// Line 45 is visual row 9 once the fold collapses 36 lines away, so
	// the viewport only scrolls by one row on a 9-row screen.
	r.ScrollIntoView(45)
	if r.view.Top() != 1 {
		t.Errorf("Top() = %d, want 1", r.view.Top())
	}
}

func TestDrawDoesNotPanic(t *testing.T) {
	r, folds, cursors := newTestRenderer(t, "func f() {\n\tbody\n}\n\nnext")
	folds.Fold(buffer.LineRange{Start: 1, End: 2})
	cursors.SetPrimary(cursor.NewSelection(buffer.LineStart(0), buffer.LineStart(4)))

	r.Draw()
	r.Resize()
	r.Draw()
}

func TestFoldMarkStyleOnlyOnAppendedSuffix(t *testing.T) {
	// The fold header's own content ends with the placeholder text; only
	// the suffix appended for the fold gets the mark style.
	r, folds, _ := newTestRenderer(t, "a ···\nhidden\nafter")
	folds.Fold(buffer.LineRange{Start: 1, End: 1})
	r.Draw()

	// Row 0 cells: "a ··· ···" with the content ending at column 4.
	for _, col := range []int{0, 2, 4} {
		if _, _, style, _ := r.screen.GetContent(col, 0); style != styleDefault {
			t.Errorf("content cell %d styled as fold mark", col)
		}
	}
	for _, col := range []int{6, 8} {
		if _, _, style, _ := r.screen.GetContent(col, 0); style != styleFoldMark {
			t.Errorf("placeholder cell %d not styled as fold mark", col)
		}
	}
}
