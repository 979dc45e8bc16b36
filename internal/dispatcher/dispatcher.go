// Package dispatcher routes named actions to their namespace handlers.
package dispatcher

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/blocknav/internal/dispatcher/execctx"
	"github.com/dshills/blocknav/internal/dispatcher/handler"
	"github.com/dshills/blocknav/internal/input"
)

// Dispatcher routes actions by namespace. Registration happens during
// startup; dispatch is serial (one key event at a time), the mutex only
// guards against a registration racing a dispatch.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]handler.NamespaceHandler
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]handler.NamespaceHandler),
	}
}

// Register adds a namespace handler. Registering a namespace twice
// replaces the earlier handler.
func (d *Dispatcher) Register(h handler.NamespaceHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[h.Namespace()] = h
}

// Namespaces returns the registered namespace names.
func (d *Dispatcher) Namespaces() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]string, 0, len(d.handlers))
	for ns := range d.handlers {
		out = append(out, ns)
	}
	return out
}

// Dispatch routes an action to its namespace handler.
func (d *Dispatcher) Dispatch(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	ns := namespaceOf(action.Name)
	if ns == "" {
		return handler.Errorf("malformed action name: %q", action.Name)
	}

	d.mu.RLock()
	h, ok := d.handlers[ns]
	d.mu.RUnlock()

	if !ok {
		return handler.Errorf("no handler for namespace %q", ns)
	}
	if !h.CanHandle(action.Name) {
		return handler.Error(fmt.Errorf("handler %q cannot handle action %q", ns, action.Name))
	}
	return h.HandleAction(action, ctx)
}

// namespaceOf extracts the namespace prefix from an action name.
func namespaceOf(name string) string {
	i := strings.Index(name, ".")
	if i <= 0 {
		return ""
	}
	return name[:i]
}
