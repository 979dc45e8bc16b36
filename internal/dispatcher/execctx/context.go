// Package execctx provides the execution context for action handlers.
package execctx

import (
	"errors"

	"github.com/dshills/blocknav/internal/engine/buffer"
	"github.com/dshills/blocknav/internal/engine/cursor"
)

// Validation errors returned by handlers when the context is incomplete.
var (
	ErrMissingDocument = errors.New("execution context missing document")
	ErrMissingCursors  = errors.New("execution context missing cursors")
	ErrMissingFolds    = errors.New("execution context missing folds")
)

// DocumentView is the read-only line view handlers operate on.
type DocumentView interface {
	LineCount() int
	Line(i int) buffer.LineInfo
}

// CursorManager abstracts selection state for handlers.
type CursorManager interface {
	Primary() cursor.Selection
	SetPrimary(sel cursor.Selection)
	HasSelection() bool
}

// FoldManager abstracts fold state for handlers.
type FoldManager interface {
	Fold(r buffer.LineRange)
	UnfoldAt(line int) bool
	FoldedAt(line int) (buffer.LineRange, bool)
	Clear()
	VisibleRanges(lineCount int) []buffer.LineRange
}

// ExecutionContext carries the editor state a handler needs. Every command
// takes a fresh context built from current state; nothing persists between
// invocations.
type ExecutionContext struct {
	// Doc is the document snapshot.
	Doc DocumentView

	// Cursors holds selection state.
	Cursors CursorManager

	// Folds holds fold state.
	Folds FoldManager

	// Count is the repeat count (1 if not specified).
	Count int
}

// New creates an execution context with defaults.
func New() *ExecutionContext {
	return &ExecutionContext{Count: 1}
}

// WithDoc sets the document view.
func (ctx *ExecutionContext) WithDoc(doc DocumentView) *ExecutionContext {
	ctx.Doc = doc
	return ctx
}

// WithCursors sets the cursor manager.
func (ctx *ExecutionContext) WithCursors(c CursorManager) *ExecutionContext {
	ctx.Cursors = c
	return ctx
}

// WithFolds sets the fold manager.
func (ctx *ExecutionContext) WithFolds(f FoldManager) *ExecutionContext {
	ctx.Folds = f
	return ctx
}

// WithCount sets the repeat count.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	ctx.Count = count
	return ctx
}

// GetCount returns the repeat count, never less than 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count < 1 {
		return 1
	}
	return ctx.Count
}

// VisibleRanges returns the current visible-line ranges, or nil when no
// fold manager is attached (everything visible).
func (ctx *ExecutionContext) VisibleRanges() []buffer.LineRange {
	if ctx.Folds == nil || ctx.Doc == nil {
		return nil
	}
	return ctx.Folds.VisibleRanges(ctx.Doc.LineCount())
}
