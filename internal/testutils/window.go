package testutils

import (
	"fmt"
	"sync"

	"sageflow/internal/infrastructure/errors"
	"sageflow/internal/window"
)

// DialogRequest records a single MessageDialog call
type DialogRequest struct {
	Window  string
	Title   string
	Message string
}

// FakeWindow is an in-memory window that records what the shell asked of it.
type FakeWindow struct {
	mu sync.Mutex

	name      string
	visible   bool
	showCount int
	dialogs   []DialogRequest

	// ShowErr and DialogErr are returned from Show and MessageDialog when set
	ShowErr   error
	DialogErr error
}

// NewFakeWindow creates a hidden window registered under name
func NewFakeWindow(name string) *FakeWindow {
	return &FakeWindow{name: name}
}

func (w *FakeWindow) Name() string {
	return w.name
}

func (w *FakeWindow) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.ShowErr != nil {
		return w.ShowErr
	}
	w.visible = true
	w.showCount++
	return nil
}

func (w *FakeWindow) MessageDialog(title, message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.DialogErr != nil {
		return w.DialogErr
	}
	w.dialogs = append(w.dialogs, DialogRequest{Window: w.name, Title: title, Message: message})
	return nil
}

// Visible reports the visibility flag
func (w *FakeWindow) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// ShowCount returns how many times Show succeeded
func (w *FakeWindow) ShowCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.showCount
}

// Dialogs returns a copy of the recorded dialog requests
func (w *FakeWindow) Dialogs() []DialogRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]DialogRequest, len(w.dialogs))
	copy(out, w.dialogs)
	return out
}

// FakeRegistry is a window.Registry backed by a map
type FakeRegistry struct {
	mu      sync.Mutex
	windows map[string]*FakeWindow
	lookups []string
}

var _ window.Registry = (*FakeRegistry)(nil)

// NewFakeRegistry creates a registry containing the given windows
func NewFakeRegistry(windows ...*FakeWindow) *FakeRegistry {
	r := &FakeRegistry{windows: make(map[string]*FakeWindow)}
	for _, w := range windows {
		r.windows[w.Name()] = w
	}
	return r
}

// Window resolves name, failing with WINDOW_NOT_FOUND like the runtime registry
func (r *FakeRegistry) Window(name string) (window.Window, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lookups = append(r.lookups, name)
	w, ok := r.windows[name]
	if !ok {
		return nil, errors.NewHostErrorWithContext("window_lookup",
			fmt.Errorf("no window registered as %q", name),
			errors.ErrCodeWindowNotFound,
			map[string]string{"window": name})
	}
	return w, nil
}

// Lookups returns the names requested so far, in order
func (r *FakeRegistry) Lookups() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lookups))
	copy(out, r.lookups)
	return out
}
