// Package window is the seam between the host shell and the windowing runtime.
//
// The shell never reaches for runtime globals directly; startup and the about
// dialog receive a Registry and resolve windows by logical name through it.
package window

// MainWindowName is the logical name of the single top-level window.
const MainWindowName = "main"

// Window is a runtime-owned top-level window borrowed by the shell.
type Window interface {
	// Name returns the logical name the window is registered under
	Name() string
	// Show makes the window visible
	Show() error
	// MessageDialog displays an informational dialog modal to this window
	MessageDialog(title, message string) error
}

// Registry resolves windows by logical name.
type Registry interface {
	Window(name string) (Window, error)
}
