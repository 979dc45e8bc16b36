package fold_test

import (
	"strings"
	"testing"

	"github.com/dshills/blocknav/internal/dispatcher/execctx"
	"github.com/dshills/blocknav/internal/dispatcher/handler"
	foldhandler "github.com/dshills/blocknav/internal/dispatcher/handlers/fold"
	"github.com/dshills/blocknav/internal/engine/buffer"
	"github.com/dshills/blocknav/internal/engine/cursor"
	"github.com/dshills/blocknav/internal/fold"
	"github.com/dshills/blocknav/internal/input"
)

func newCtx(lines ...string) (*execctx.ExecutionContext, *cursor.Set, *fold.Set) {
	buf := buffer.New(strings.Join(lines, "\n"))
	cursors := cursor.NewSet()
	folds := fold.NewSet()
	ctx := execctx.New().WithDoc(buf).WithCursors(cursors).WithFolds(folds)
	return ctx, cursors, folds
}

func TestToggleFoldsBlockBelowCursor(t *testing.T) {
	ctx, _, folds := newCtx("func f() {", "\ta", "\tb", "}", "", "next")
	h := foldhandler.NewHandler()

	res := h.HandleAction(input.NewAction(foldhandler.ActionToggle), ctx)
	if !res.IsOK() {
		t.Fatalf("unexpected result: %+v", res)
	}

	// Header stays visible, the rest of the block is hidden.
	if folds.IsFolded(0) {
		t.Error("header line should stay visible")
	}
	for line := 1; line <= 3; line++ {
		if !folds.IsFolded(line) {
			t.Errorf("line %d should be folded", line)
		}
	}
	if folds.IsFolded(5) {
		t.Error("line past the block should stay visible")
	}
}

func TestToggleReopens(t *testing.T) {
	ctx, _, folds := newCtx("func f() {", "\ta", "}")
	h := foldhandler.NewHandler()

	h.HandleAction(input.NewAction(foldhandler.ActionToggle), ctx)
	if folds.Count() != 1 {
		t.Fatal("expected one folded region")
	}

	h.HandleAction(input.NewAction(foldhandler.ActionToggle), ctx)
	if folds.Count() != 0 {
		t.Error("second toggle should reopen the fold")
	}
}

func TestToggleOnBlankLineIsNoOp(t *testing.T) {
	ctx, cursors, folds := newCtx("a", "", "b")
	cursors.SetPrimary(cursor.AtLine(1))
	h := foldhandler.NewHandler()

	res := h.HandleAction(input.NewAction(foldhandler.ActionToggle), ctx)
	if res.Status != handler.StatusNoOp {
		t.Errorf("Status = %v, want no-op", res.Status)
	}
	if folds.Count() != 0 {
		t.Error("no fold should be created from a blank line")
	}
}

func TestToggleSingleLineBlockIsNoOp(t *testing.T) {
	ctx, _, folds := newCtx("lonely", "", "b")
	h := foldhandler.NewHandler()

	res := h.HandleAction(input.NewAction(foldhandler.ActionToggle), ctx)
	if res.Status != handler.StatusNoOp {
		t.Errorf("Status = %v, want no-op", res.Status)
	}
	if folds.Count() != 0 {
		t.Error("single-line block should not fold")
	}
}

func TestOpenAll(t *testing.T) {
	ctx, cursors, folds := newCtx("a1", "a2", "", "b1", "b2")
	h := foldhandler.NewHandler()

	h.HandleAction(input.NewAction(foldhandler.ActionToggle), ctx)
	cursors.SetPrimary(cursor.AtLine(3))
	h.HandleAction(input.NewAction(foldhandler.ActionToggle), ctx)
	if folds.Count() != 2 {
		t.Fatalf("Count = %d, want 2", folds.Count())
	}

	res := h.HandleAction(input.NewAction(foldhandler.ActionOpenAll), ctx)
	if !res.IsOK() {
		t.Fatalf("unexpected result: %+v", res)
	}
	if folds.Count() != 0 {
		t.Error("openAll should clear every fold")
	}
}

func TestOpenWithoutFoldIsNoOp(t *testing.T) {
	ctx, _, _ := newCtx("a", "b")
	h := foldhandler.NewHandler()

	res := h.HandleAction(input.NewAction(foldhandler.ActionOpen), ctx)
	if res.Status != handler.StatusNoOp {
		t.Errorf("Status = %v, want no-op", res.Status)
	}
}
