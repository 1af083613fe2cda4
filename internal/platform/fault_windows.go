//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// WindowsReporter shows a native error message box
type WindowsReporter struct{}

// NewFaultReporter creates the FaultReporter for Windows
func NewFaultReporter() FaultReporter {
	return &WindowsReporter{}
}

// ReportFault blocks until the user dismisses the message box
func (r *WindowsReporter) ReportFault(title, message string) error {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("encode fault title: %w", err)
	}
	messagePtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return fmt.Errorf("encode fault message: %w", err)
	}

	if _, err := windows.MessageBox(0, messagePtr, titlePtr, windows.MB_OK|windows.MB_ICONERROR|windows.MB_SETFOREGROUND); err != nil {
		return fmt.Errorf("show fault message box: %w", err)
	}
	return nil
}
