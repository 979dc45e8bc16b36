// Package fold provides handlers for folding and unfolding block regions.
package fold

import (
	"github.com/dshills/blocknav/internal/dispatcher/execctx"
	"github.com/dshills/blocknav/internal/dispatcher/handler"
	"github.com/dshills/blocknav/internal/engine/buffer"
	"github.com/dshills/blocknav/internal/input"
)

// Action names for fold operations.
const (
	ActionToggle  = "fold.toggle"
	ActionOpen    = "fold.open"
	ActionOpenAll = "fold.openAll"
)

// Handler implements namespace-based fold handling.
type Handler struct{}

// NewHandler creates a new fold handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the fold namespace.
func (h *Handler) Namespace() string {
	return "fold"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionToggle, ActionOpen, ActionOpenAll:
		return true
	}
	return false
}

// HandleAction processes a fold action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Doc == nil {
		return handler.Error(execctx.ErrMissingDocument)
	}
	if ctx.Cursors == nil {
		return handler.Error(execctx.ErrMissingCursors)
	}
	if ctx.Folds == nil {
		return handler.Error(execctx.ErrMissingFolds)
	}

	switch action.Name {
	case ActionToggle:
		return h.toggle(ctx)
	case ActionOpen:
		return h.open(ctx)
	case ActionOpenAll:
		ctx.Folds.Clear()
		return handler.Success().WithRedraw()
	default:
		return handler.Errorf("unknown fold action: %s", action.Name)
	}
}

// toggle folds the block under the cursor, hiding everything below the
// cursor line through the block's last line. If the line below the cursor
// is already folded, the fold is opened instead.
func (h *Handler) toggle(ctx *execctx.ExecutionContext) handler.Result {
	line := ctx.Cursors.Primary().Head.Line

	// Cursor on a fold header: reopen.
	if _, ok := ctx.Folds.FoldedAt(line + 1); ok {
		ctx.Folds.UnfoldAt(line + 1)
		return handler.Success().WithRedraw().WithMessage("fold opened")
	}

	if ctx.Doc.Line(line).Blank {
		return handler.NoOp().WithMessage("nothing to fold")
	}

	end := blockEnd(ctx.Doc, line)
	if end <= line {
		return handler.NoOp().WithMessage("block too small to fold")
	}

	ctx.Folds.Fold(buffer.LineRange{Start: line + 1, End: end})
	return handler.Success().WithRedraw().WithMessage("fold closed")
}

// open unfolds the region at or directly below the cursor line.
func (h *Handler) open(ctx *execctx.ExecutionContext) handler.Result {
	line := ctx.Cursors.Primary().Head.Line
	if ctx.Folds.UnfoldAt(line) || ctx.Folds.UnfoldAt(line+1) {
		return handler.Success().WithRedraw()
	}
	return handler.NoOp().WithMessage("no fold here")
}

// blockEnd returns the last line of the block containing line.
func blockEnd(doc execctx.DocumentView, line int) int {
	last := doc.LineCount() - 1
	for line+1 <= last && !doc.Line(line+1).Blank {
		line++
	}
	return line
}
