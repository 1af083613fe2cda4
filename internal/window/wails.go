package window

import (
	"context"
	"fmt"

	"sageflow/internal/infrastructure/errors"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// WailsRegistry exposes the Wails runtime window as a Registry.
// Wails v2 runs a single window per process, registered under mainName.
type WailsRegistry struct {
	ctx      context.Context
	mainName string
}

// NewWailsRegistry creates a registry bound to the runtime context handed to OnStartup
func NewWailsRegistry(ctx context.Context, mainName string) *WailsRegistry {
	if mainName == "" {
		mainName = MainWindowName
	}
	return &WailsRegistry{ctx: ctx, mainName: mainName}
}

// Window returns the runtime window registered under name
func (r *WailsRegistry) Window(name string) (Window, error) {
	if r.ctx == nil {
		return nil, errors.NewHostErrorWithContext("window_lookup",
			fmt.Errorf("runtime context not available"),
			errors.ErrCodeInternal,
			map[string]string{"window": name})
	}
	if name != r.mainName {
		return nil, errors.NewHostErrorWithContext("window_lookup",
			fmt.Errorf("no window registered as %q", name),
			errors.ErrCodeWindowNotFound,
			map[string]string{"window": name})
	}
	return &wailsWindow{ctx: r.ctx, name: name}, nil
}

type wailsWindow struct {
	ctx  context.Context
	name string
}

func (w *wailsWindow) Name() string {
	return w.name
}

func (w *wailsWindow) Show() error {
	runtime.WindowShow(w.ctx)
	return nil
}

func (w *wailsWindow) MessageDialog(title, message string) error {
	_, err := runtime.MessageDialog(w.ctx, runtime.MessageDialogOptions{
		Type:    runtime.InfoDialog,
		Title:   title,
		Message: message,
	})
	if err != nil {
		return errors.NewHostErrorWithContext("message_dialog",
			err,
			errors.ErrCodeDialog,
			map[string]string{"window": w.name, "title": title})
	}
	return nil
}
