// Package bridge maps host-callable operation names to handlers.
//
// The front-end reaches the shell through whatever call mechanism the runtime
// provides; that mechanism only needs to forward a name and a Call here.
package bridge

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"sageflow/internal/infrastructure/errors"
	"sageflow/internal/infrastructure/logging"
)

// Operation names exposed to the front-end
const (
	OpGetAppVersion   = "get_app_version"
	OpShowAboutDialog = "show_about_dialog"
)

// Call carries the implicit arguments the bridge supplies to a handler
type Call struct {
	// Window is the logical name of the window the call came from
	Window string
}

// Handler serves one host-callable operation
type Handler func(ctx context.Context, call Call) (any, error)

// Dispatcher is the operation table. Handlers are registered once at startup.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	logger   logging.Logger
}

// NewDispatcher creates an empty dispatch table
func NewDispatcher(logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Dispatcher{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Register adds a handler under name. Empty names, nil handlers and
// duplicate registrations are rejected.
func (d *Dispatcher) Register(name string, handler Handler) error {
	if name == "" {
		return errors.NewHostError("register",
			fmt.Errorf("operation name is empty"),
			errors.ErrCodeInvalidArgument)
	}
	if handler == nil {
		return errors.NewHostErrorWithContext("register",
			fmt.Errorf("handler is nil"),
			errors.ErrCodeInvalidArgument,
			map[string]string{"operation": name})
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.handlers[name]; exists {
		return errors.NewHostErrorWithContext("register",
			fmt.Errorf("operation %q already registered", name),
			errors.ErrCodeInvalidArgument,
			map[string]string{"operation": name})
	}
	d.handlers[name] = handler
	return nil
}

// Invoke dispatches call to the handler registered under name
func (d *Dispatcher) Invoke(ctx context.Context, name string, call Call) (any, error) {
	d.mu.RLock()
	handler, ok := d.handlers[name]
	d.mu.RUnlock()

	if !ok {
		err := errors.NewHostErrorWithContext("invoke",
			fmt.Errorf("unknown operation %q", name),
			errors.ErrCodeUnknownOperation,
			map[string]string{"operation": name})
		logging.LogHostError(d.logger, err, name, nil)
		return nil, err
	}

	start := time.Now()
	result, err := handler(ctx, call)
	if err != nil {
		logging.LogHostError(d.logger, err, name, map[string]interface{}{
			"window": call.Window,
		})
		return nil, err
	}

	logging.LogOperation(d.logger, name, time.Since(start), map[string]interface{}{
		"window": call.Window,
	})
	return result, nil
}

// Operations lists the registered operation names in sorted order
func (d *Dispatcher) Operations() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
