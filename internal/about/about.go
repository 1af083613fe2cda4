// Package about builds and presents the static "About" dialog.
package about

import (
	"context"
	"fmt"
	"time"

	"sageflow/internal/infrastructure/errors"
	"sageflow/internal/infrastructure/logging"
	"sageflow/internal/window"
)

const messageTemplate = "%s\n\nVersion: %s\n\n%s\n\n%s"

// Product describes the application as shown in the about dialog
type Product struct {
	AppName     string // short name used in the dialog title
	ProductName string
	Description string
	Copyright   string
}

// DefaultProduct is the SageFlow product description
var DefaultProduct = Product{
	AppName:     "SageFlow",
	ProductName: "SageFlow Accounting",
	Description: "Modern accounting software for Ethiopian businesses.",
	Copyright:   "© 2026 SageFlow",
}

// Message formats the dialog body for the given version
func (p Product) Message(version string) string {
	return fmt.Sprintf(messageTemplate, p.ProductName, version, p.Description, p.Copyright)
}

// Title returns the dialog title
func (p Product) Title() string {
	return "About " + p.AppName
}

// Message formats the default product's dialog body for the given version
func Message(version string) string {
	return DefaultProduct.Message(version)
}

// Presenter shows the about dialog anchored to a window
type Presenter struct {
	product Product
	version func() string
	logger  logging.Logger
}

// NewPresenter creates a presenter. version is called on every Show so the
// dialog always reflects the same value the version operation reports.
func NewPresenter(product Product, version func() string, logger logging.Logger) *Presenter {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Presenter{
		product: product,
		version: version,
		logger:  logger,
	}
}

// Show requests exactly one modal dialog on win.
func (p *Presenter) Show(ctx context.Context, win window.Window) error {
	if win == nil {
		return errors.NewHostError("show_about_dialog",
			fmt.Errorf("no window to anchor the dialog to"),
			errors.ErrCodeInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return errors.NewHostError("show_about_dialog", err, errors.ErrCodeInternal)
	}

	start := time.Now()
	message := p.product.Message(p.version())

	if err := win.MessageDialog(p.product.Title(), message); err != nil {
		if errors.CodeOf(err) != errors.ErrCodeUnknown {
			return err
		}
		return errors.NewHostErrorWithContext("show_about_dialog",
			err,
			errors.ErrCodeDialog,
			map[string]string{"window": win.Name()})
	}

	logging.LogOperation(p.logger, "show_about_dialog", time.Since(start), map[string]interface{}{
		"window": win.Name(),
	})
	return nil
}
