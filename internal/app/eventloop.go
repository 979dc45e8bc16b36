package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/blocknav/internal/dispatcher/execctx"
	"github.com/dshills/blocknav/internal/input"
	"github.com/dshills/blocknav/internal/input/key"
	"github.com/dshills/blocknav/internal/input/keymap"
)

// loop is the main event loop. It runs on a single goroutine; every piece
// of mutable state (selection, folds, pending count, keymap) is touched
// only here.
func (a *App) loop() error {
	a.render.Draw()

	for {
		ev := a.render.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if err := a.handleKey(key.FromTcell(ev)); err != nil {
				return err
			}

		case *tcell.EventResize:
			a.render.Resize()
			a.render.Draw()

		case *tcell.EventInterrupt:
			a.drainReloads()
			a.render.Draw()

		case nil:
			// Screen finalized under us.
			return nil
		}
	}
}

// handleKey resolves one key event to an action and applies it.
func (a *App) handleKey(ev key.Event) error {
	if ev.Key == key.KeyNone {
		return nil
	}

	// Digit prefix accumulates a repeat count for the next action,
	// unless the digit itself is bound.
	if ev.IsRune() && ev.Rune >= '0' && ev.Rune <= '9' {
		if _, bound := a.keys.Lookup(ev); !bound {
			if !(a.pendingCount == 0 && ev.Rune == '0') {
				a.pendingCount = a.pendingCount*10 + int(ev.Rune-'0')
				return nil
			}
		}
	}

	action, ok := a.keys.Lookup(ev)
	if !ok {
		a.pendingCount = 0
		return nil
	}

	count := a.pendingCount
	a.pendingCount = 0
	if count > 0 {
		action = action.WithCount(count)
	}

	return a.execute(action)
}

// execute dispatches a resolved action and applies its result.
func (a *App) execute(action input.Action) error {
	// Application-level actions bypass the dispatcher.
	switch action.Name {
	case "app.quit":
		a.logger.Info("quit")
		return ErrQuit
	case "app.clearSelection":
		a.cursors.SetPrimary(a.cursors.Primary().Collapse())
		a.render.Draw()
		return nil
	}

	ctx := execctx.New().
		WithDoc(a.buf).
		WithCursors(a.cursors).
		WithFolds(a.folds).
		WithCount(action.GetCount())

	res := a.disp.Dispatch(action, ctx)
	if res.IsError() {
		a.logger.Error("action failed", "action", action.Name, "err", res.Error)
		return nil
	}
	a.logger.Debug("action", "name", action.Name, "count", action.GetCount(),
		"status", res.Status, "cursor", a.cursors.Primary())

	if res.ViewUpdate.ScrollTo != nil {
		a.render.ScrollIntoView(*res.ViewUpdate.ScrollTo)
	}
	if res.ViewUpdate.Redraw {
		a.render.Draw()
	}
	return nil
}

// drainReloads applies any pending keymap reloads on the loop goroutine.
func (a *App) drainReloads() {
	for {
		select {
		case path := <-a.reloads:
			keys, err := keymap.Load(a.cfg.KeymapPath)
			if err != nil {
				a.logger.Warn("keymap reload failed", "path", path, "err", err)
				continue
			}
			a.keys = keys
			a.logger.Info("keymap reloaded", "path", path)
		default:
			return
		}
	}
}
