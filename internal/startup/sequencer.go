// Package startup makes the main window visible once the runtime is up.
package startup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sageflow/internal/infrastructure/errors"
	"sageflow/internal/infrastructure/logging"
	"sageflow/internal/window"
)

// State of the startup sequence
type State int

const (
	StateInitializing State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Sequencer runs the setup steps against an injected window registry.
type Sequencer struct {
	mu       sync.Mutex
	state    State
	registry window.Registry
	mainName string
	logger   logging.Logger
}

// NewSequencer creates a sequencer in the Initializing state
func NewSequencer(registry window.Registry, mainName string, logger logging.Logger) *Sequencer {
	if mainName == "" {
		mainName = window.MainWindowName
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Sequencer{
		state:    StateInitializing,
		registry: registry,
		mainName: mainName,
		logger:   logger,
	}
}

// State returns the current state
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Run resolves the main window, shows it and moves to Ready. A nil return
// tells the runtime setup finished. Any error is a startup fault: the main
// window is looked up once under its configured name only.
func (s *Sequencer) Run(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateReady {
		s.logger.Debug("Startup sequence already completed", "window", s.mainName)
		return nil
	}

	start := time.Now()

	if s.registry == nil {
		return errors.NewHostErrorWithContext("startup",
			fmt.Errorf("no window registry"),
			errors.ErrCodeWindowNotFound,
			map[string]string{"window": s.mainName, "step": "lookup"})
	}

	if err := ctx.Err(); err != nil {
		return errors.NewHostError("startup", err, errors.ErrCodeInternal)
	}

	win, err := s.registry.Window(s.mainName)
	if err != nil {
		return errors.NewHostErrorWithContext("startup",
			err,
			errors.ErrCodeWindowNotFound,
			map[string]string{"window": s.mainName, "step": "lookup"})
	}
	if win == nil {
		return errors.NewHostErrorWithContext("startup",
			fmt.Errorf("registry returned no window for %q", s.mainName),
			errors.ErrCodeWindowNotFound,
			map[string]string{"window": s.mainName, "step": "lookup"})
	}

	if err := win.Show(); err != nil {
		return errors.NewHostErrorWithContext("startup",
			err,
			errors.ErrCodeWindowShow,
			map[string]string{"window": s.mainName, "step": "show"})
	}

	s.state = StateReady
	logging.LogOperation(s.logger, "startup", time.Since(start), map[string]interface{}{
		"window": s.mainName,
		"state":  s.state.String(),
	})
	return nil
}
