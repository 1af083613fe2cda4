package app

import (
	"context"
	"fmt"
	"os"
	"sync"

	"sageflow/internal/about"
	"sageflow/internal/bridge"
	"sageflow/internal/config"
	"sageflow/internal/infrastructure/errors"
	"sageflow/internal/infrastructure/logging"
	"sageflow/internal/platform"
	"sageflow/internal/startup"
	"sageflow/internal/version"
	"sageflow/internal/window"
)

// RegistryFactory builds the window registry from the runtime context handed to Startup
type RegistryFactory func(ctx context.Context, mainName string) window.Registry

// Options carries the collaborators of App. Zero values select the Wails
// runtime, the platform fault reporter and os.Exit.
type Options struct {
	Config   *config.Config
	Logger   logging.Logger
	Registry RegistryFactory
	Reporter platform.FaultReporter
	Exit     func(code int)
}

// App is the host shell bound to the Wails runtime
type App struct {
	ctx       context.Context
	config    *config.Config
	logger    logging.Logger
	dispatch  *bridge.Dispatcher
	presenter *about.Presenter

	newRegistry RegistryFactory
	reporter    platform.FaultReporter
	exit        func(code int)

	mu        sync.RWMutex
	registry  window.Registry
	sequencer *startup.Sequencer
}

// NewApp creates the shell and registers the host-callable operations
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = cfg.Logger()
	}

	newRegistry := opts.Registry
	if newRegistry == nil {
		newRegistry = func(ctx context.Context, mainName string) window.Registry {
			return window.NewWailsRegistry(ctx, mainName)
		}
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = platform.NewFaultReporter()
	}

	exit := opts.Exit
	if exit == nil {
		exit = os.Exit
	}

	product := about.DefaultProduct
	product.AppName = cfg.AppName
	product.ProductName = cfg.ProductName

	a := &App{
		config:      cfg,
		logger:      logger,
		dispatch:    bridge.NewDispatcher(logger),
		presenter:   about.NewPresenter(product, version.Get, logger),
		newRegistry: newRegistry,
		reporter:    reporter,
		exit:        exit,
	}

	if err := a.registerOperations(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) registerOperations() error {
	if err := a.dispatch.Register(bridge.OpGetAppVersion, a.handleGetAppVersion); err != nil {
		return err
	}
	return a.dispatch.Register(bridge.OpShowAboutDialog, a.handleShowAboutDialog)
}

func (a *App) handleGetAppVersion(ctx context.Context, call bridge.Call) (any, error) {
	return version.Get(), nil
}

func (a *App) handleShowAboutDialog(ctx context.Context, call bridge.Call) (any, error) {
	registry := a.windowRegistry()
	if registry == nil {
		return nil, errors.NewHostErrorWithContext(bridge.OpShowAboutDialog,
			fmt.Errorf("runtime not started"),
			errors.ErrCodeInternal,
			map[string]string{"window": call.Window})
	}

	win, err := registry.Window(call.Window)
	if err != nil {
		return nil, err
	}
	return nil, a.presenter.Show(ctx, win)
}

// Startup is called by the runtime once core services are available. It
// shows the main window; a startup fault terminates the process.
func (a *App) Startup(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	a.registry = a.newRegistry(ctx, a.config.MainWindow)
	a.sequencer = startup.NewSequencer(a.registry, a.config.MainWindow, a.logger)
	sequencer := a.sequencer
	a.mu.Unlock()

	info := version.Info()
	a.logger.Info("Starting SageFlow host shell",
		"version", info.Version,
		"commit", info.Commit,
		"environment", a.config.Environment)

	if err := sequencer.Run(ctx); err != nil {
		a.abort(err)
		return
	}

	a.logger.Info("Application started successfully", "window", a.config.MainWindow)
}

// abort logs the startup fault, reports it natively and exits
func (a *App) abort(err error) {
	logging.LogHostError(a.logger, err, "startup", map[string]interface{}{
		"fatal": true,
	})

	title := fmt.Sprintf("%s failed to start", a.config.AppName)
	if reportErr := a.reporter.ReportFault(title, err.Error()); reportErr != nil {
		a.logger.Warn("Failed to report startup fault", "error", reportErr.Error())
	}

	a.exit(1)
}

// DomReady is called after front-end resources have been loaded
func (a *App) DomReady(ctx context.Context) {
	a.logger.Debug("Front-end loaded")
}

// BeforeClose is called when the application is about to quit
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	return false
}

// Shutdown is called at application termination
func (a *App) Shutdown(ctx context.Context) {
	a.logger.Info("Application shutdown completed")
}

// GetAppVersion returns the application version to the front-end
func (a *App) GetAppVersion() string {
	result, err := a.dispatch.Invoke(a.context(), bridge.OpGetAppVersion, bridge.Call{Window: a.config.MainWindow})
	if err != nil {
		return version.Get()
	}
	v, ok := result.(string)
	if !ok {
		return version.Get()
	}
	return v
}

// ShowAboutDialog shows the about dialog over the main window. A returned
// error rejects the front-end's call.
func (a *App) ShowAboutDialog() error {
	_, err := a.dispatch.Invoke(a.context(), bridge.OpShowAboutDialog, bridge.Call{Window: a.config.MainWindow})
	return err
}

func (a *App) context() context.Context {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

func (a *App) windowRegistry() window.Registry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.registry
}
