// Package block provides handlers for block-wise cursor navigation: the
// move and select variants in each direction.
package block

import (
	"github.com/dshills/blocknav/internal/dispatcher/execctx"
	"github.com/dshills/blocknav/internal/dispatcher/handler"
	"github.com/dshills/blocknav/internal/engine/buffer"
	"github.com/dshills/blocknav/internal/engine/cursor"
	"github.com/dshills/blocknav/internal/input"
	"github.com/dshills/blocknav/internal/navigate"
)

// Action names for block navigation.
const (
	ActionMoveUp     = "block.moveUp"
	ActionMoveDown   = "block.moveDown"
	ActionSelectUp   = "block.selectUp"
	ActionSelectDown = "block.selectDown"
)

// Handler implements namespace-based block navigation handling.
type Handler struct{}

// NewHandler creates a new block navigation handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the block namespace.
func (h *Handler) Namespace() string {
	return "block"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionMoveUp, ActionMoveDown, ActionSelectUp, ActionSelectDown:
		return true
	}
	return false
}

// HandleAction processes a block navigation action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Doc == nil {
		return handler.Error(execctx.ErrMissingDocument)
	}
	if ctx.Cursors == nil {
		return handler.Error(execctx.ErrMissingCursors)
	}

	count := ctx.GetCount()
	if action.Count > 1 {
		count = action.Count
	}

	switch action.Name {
	case ActionMoveUp:
		return h.move(ctx, navigate.Up, count)
	case ActionMoveDown:
		return h.move(ctx, navigate.Down, count)
	case ActionSelectUp:
		return h.sel(ctx, navigate.Up, count)
	case ActionSelectDown:
		return h.sel(ctx, navigate.Down, count)
	default:
		return handler.Errorf("unknown block action: %s", action.Name)
	}
}

// move jumps the cursor count blocks in the given direction and collapses
// any selection to a zero-width cursor at column 0 of the target line.
func (h *Handler) move(ctx *execctx.ExecutionContext, dir navigate.Direction, count int) handler.Result {
	target := h.target(ctx, dir, count)

	sel := ctx.Cursors.Primary()
	next := sel.MoveTo(buffer.LineStart(target))
	if next.Equals(sel) {
		return handler.NoOp()
	}

	ctx.Cursors.SetPrimary(next)
	return handler.Success().WithScrollTo(target).WithRedraw()
}

// sel extends the selection count blocks in the given direction. The
// anchor is recomputed from the existing selection so repeated extends in
// either order keep growing from one fixed end.
func (h *Handler) sel(ctx *execctx.ExecutionContext, dir navigate.Direction, count int) handler.Result {
	target := h.target(ctx, dir, count)

	sel := ctx.Cursors.Primary()
	anchor := cursor.ExtendAnchor(sel)
	next := cursor.NewSelection(anchor, buffer.LineStart(target))
	if next.Equals(sel) {
		return handler.NoOp()
	}

	ctx.Cursors.SetPrimary(next)
	return handler.Success().WithScrollTo(target).WithRedraw()
}

// target runs the block search count times from the current head line.
func (h *Handler) target(ctx *execctx.ExecutionContext, dir navigate.Direction, count int) int {
	ranges := ctx.VisibleRanges()
	line := ctx.Cursors.Primary().Head.Line

	for i := 0; i < count; i++ {
		next := navigate.Target(ctx.Doc, line, dir, ranges)
		if next == line {
			break
		}
		line = next
	}
	return line
}
