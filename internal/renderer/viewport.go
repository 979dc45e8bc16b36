package renderer

// Viewport tracks which slice of the visible rows is on screen. It works
// in visual rows (folded regions collapsed away), not document lines; the
// renderer maps between the two.
type Viewport struct {
	top    int // first visual row on screen
	height int // rows available for text
	margin int // context rows kept around the cursor
}

// NewViewport creates a viewport with the given text height and scroll
// margin.
func NewViewport(height, margin int) *Viewport {
	if height < 1 {
		height = 1
	}
	if margin < 0 {
		margin = 0
	}
	return &Viewport{height: height, margin: margin}
}

// Top returns the first visual row on screen.
func (v *Viewport) Top() int {
	return v.top
}

// Height returns the number of text rows.
func (v *Viewport) Height() int {
	return v.height
}

// Resize updates the text height, keeping the top row stable.
func (v *Viewport) Resize(height int) {
	if height < 1 {
		height = 1
	}
	v.height = height
}

// EnsureVisible scrolls the minimum distance so that row is on screen
// with the configured margin, clamped to [0, total). The margin shrinks
// when the viewport is too small to honor it.
func (v *Viewport) EnsureVisible(row, total int) {
	if total <= 0 {
		v.top = 0
		return
	}
	if row < 0 {
		row = 0
	}
	if row > total-1 {
		row = total - 1
	}

	margin := v.margin
	if 2*margin >= v.height {
		margin = 0
	}

	if row < v.top+margin {
		v.top = row - margin
	} else if row > v.top+v.height-1-margin {
		v.top = row - v.height + 1 + margin
	}

	if v.top > total-v.height {
		v.top = total - v.height
	}
	if v.top < 0 {
		v.top = 0
	}
}

// Rows returns the half-open interval [start, end) of visual rows on
// screen for the given total row count.
func (v *Viewport) Rows(total int) (start, end int) {
	start = v.top
	end = v.top + v.height
	if end > total {
		end = total
	}
	if start > end {
		start = end
	}
	return start, end
}
