// Package handler provides the handler interface and result types for
// action dispatch.
package handler

import (
	"github.com/dshills/blocknav/internal/dispatcher/execctx"
	"github.com/dshills/blocknav/internal/input"
)

// NamespaceHandler handles all actions within a namespace, the prefix
// before the first dot (e.g., "block" in "block.moveDown").
type NamespaceHandler interface {
	// HandleAction handles an action within this namespace.
	HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Namespace returns the namespace prefix (e.g., "block", "fold").
	Namespace() string
}
