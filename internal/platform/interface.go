package platform

// FaultReporter tells the user about a fault that happens before the
// webview is visible, when the front-end cannot show it.
type FaultReporter interface {
	ReportFault(title, message string) error
}
