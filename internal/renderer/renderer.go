// Package renderer draws the document on a tcell terminal screen: a
// viewport over the visible (unfolded) lines, selection highlight, fold
// placeholders, and a status line.
package renderer

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/blocknav/internal/engine/buffer"
	"github.com/dshills/blocknav/internal/engine/cursor"
	"github.com/dshills/blocknav/internal/fold"
)

const statusHeight = 1

// Styles used by the renderer.
var (
	styleDefault   = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleFoldMark  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus    = tcell.StyleDefault.Reverse(true).Bold(true)
)

// Options configures the renderer.
type Options struct {
	// TabWidth is the display width of a tab character.
	TabWidth int

	// FoldPlaceholder is appended to a fold header line.
	FoldPlaceholder string

	// ScrollMargin is the number of context rows kept around the cursor.
	ScrollMargin int
}

// Renderer owns the terminal screen and draws editor state onto it.
type Renderer struct {
	screen  tcell.Screen
	view    *Viewport
	buf     *buffer.Buffer
	cursors *cursor.Set
	folds   *fold.Set
	opts    Options
}

// New creates a renderer on a fresh tcell screen.
func New(buf *buffer.Buffer, cursors *cursor.Set, folds *fold.Set, opts Options) (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newWithScreen(screen, buf, cursors, folds, opts), nil
}

// NewWithScreen creates a renderer on an existing screen. Used by tests
// with tcell's simulation screen.
func NewWithScreen(screen tcell.Screen, buf *buffer.Buffer, cursors *cursor.Set, folds *fold.Set, opts Options) *Renderer {
	return newWithScreen(screen, buf, cursors, folds, opts)
}

func newWithScreen(screen tcell.Screen, buf *buffer.Buffer, cursors *cursor.Set, folds *fold.Set, opts Options) *Renderer {
	if opts.TabWidth < 1 {
		opts.TabWidth = 4
	}
	if opts.FoldPlaceholder == "" {
		opts.FoldPlaceholder = "···"
	}
	_, h := screen.Size()
	return &Renderer{
		screen:  screen,
		view:    NewViewport(max(1, h-statusHeight), opts.ScrollMargin),
		buf:     buf,
		cursors: cursors,
		folds:   folds,
		opts:    opts,
	}
}

// Shutdown restores the terminal.
func (r *Renderer) Shutdown() {
	r.screen.Fini()
}

// PollEvent returns the next terminal event.
func (r *Renderer) PollEvent() tcell.Event {
	return r.screen.PollEvent()
}

// Interrupt wakes up a blocked PollEvent.
func (r *Renderer) Interrupt() {
	r.screen.PostEvent(tcell.NewEventInterrupt(nil)) //nolint:errcheck // queue full means a wakeup is already pending
}

// Resize updates the viewport after a terminal resize event.
func (r *Renderer) Resize() {
	_, h := r.screen.Size()
	r.view.Resize(max(1, h-statusHeight))
	r.screen.Sync()
}

// visibleLines returns the document lines currently not hidden by folds,
// in order. The fold header (the line above a folded region) is visible.
func (r *Renderer) visibleLines() []int {
	count := r.buf.LineCount()
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		if !r.folds.IsFolded(i) {
			out = append(out, i)
		}
	}
	if len(out) == 0 {
		// Everything folded; fall back to showing the document.
		for i := 0; i < count; i++ {
			out = append(out, i)
		}
	}
	return out
}

// rowOf returns the visual row of a document line, or the nearest
// preceding visible row when the line itself is folded.
func rowOf(lines []int, line int) int {
	row := 0
	for i, l := range lines {
		if l > line {
			break
		}
		row = i
	}
	return row
}

// ScrollIntoView scrolls the viewport so the document line is on screen.
func (r *Renderer) ScrollIntoView(line int) {
	lines := r.visibleLines()
	r.view.EnsureVisible(rowOf(lines, line), len(lines))
}

// VisibleLineRange returns the first and last document lines on screen.
func (r *Renderer) VisibleLineRange() (first, last int) {
	lines := r.visibleLines()
	start, end := r.view.Rows(len(lines))
	if end <= start {
		return 0, 0
	}
	return lines[start], lines[end-1]
}

// Draw renders the full screen.
func (r *Renderer) Draw() {
	r.screen.Clear()

	lines := r.visibleLines()
	sel := r.cursors.Primary()
	start, end := r.view.Rows(len(lines))
	width, _ := r.screen.Size()

	for row := start; row < end; row++ {
		line := lines[row]
		y := row - r.view.Top()

		style := styleDefault
		if !sel.IsEmpty() && sel.ContainsLine(line) {
			style = styleSelection
		}

		text := r.expandTabs(r.buf.LineText(line))
		if _, folded := r.folds.FoldedAt(line + 1); folded {
			mark := len(text)
			text += " " + r.opts.FoldPlaceholder
			r.drawText(0, y, width, text, style, styleFoldMark, mark)
		} else {
			r.drawText(0, y, width, text, style, style, -1)
		}

		if sel.Head.Line == line {
			r.screen.ShowCursor(0, y)
		}
	}

	r.drawStatus()
	r.screen.Show()
}

// drawText writes a line of text, switching to markStyle after the byte
// offset mark. mark is where the line's own content ends and the appended
// fold placeholder begins; mark < 0 draws the whole line in style.
func (r *Renderer) drawText(x, y, width int, text string, style, markStyle tcell.Style, mark int) {
	col := x
	for i, ch := range text {
		if col >= width {
			break
		}
		st := style
		if mark >= 0 && i > mark {
			st = markStyle
		}
		r.screen.SetContent(col, y, ch, nil, st)
		col += runewidth.RuneWidth(ch)
	}
}

// expandTabs replaces tabs with spaces to the configured tab width.
func (r *Renderer) expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, ch := range s {
		if ch == '\t' {
			n := r.opts.TabWidth - col%r.opts.TabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(ch)
		col += runewidth.RuneWidth(ch)
	}
	return b.String()
}

// drawStatus renders the status line: file name, cursor position, folds.
func (r *Renderer) drawStatus() {
	width, height := r.screen.Size()
	y := height - 1
	if y < 0 {
		return
	}

	name := r.buf.Path()
	if name == "" {
		name = "[stdin]"
	}
	sel := r.cursors.Primary()
	status := fmt.Sprintf(" %s  %d/%d", name, sel.Head.Line+1, r.buf.LineCount())
	if !sel.IsEmpty() {
		lines := sel.Lines()
		status += fmt.Sprintf("  [%d lines selected]", lines.Len())
	}
	if n := r.folds.Count(); n > 0 {
		status += fmt.Sprintf("  [%d folds]", n)
	}

	col := 0
	for _, ch := range status {
		if col >= width {
			break
		}
		r.screen.SetContent(col, y, ch, nil, styleStatus)
		col += runewidth.RuneWidth(ch)
	}
	for ; col < width; col++ {
		r.screen.SetContent(col, y, ' ', nil, styleStatus)
	}
}
