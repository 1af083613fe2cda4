//go:build !windows

package platform

import (
	"fmt"
	"io"
	"os"
)

// StreamReporter writes faults to a stream. Launching from a terminal or a
// desktop session log is where macOS and Linux users find them.
type StreamReporter struct {
	w io.Writer
}

// NewFaultReporter creates the FaultReporter for this platform
func NewFaultReporter() FaultReporter {
	return &StreamReporter{w: os.Stderr}
}

// NewStreamReporter creates a reporter writing to w
func NewStreamReporter(w io.Writer) *StreamReporter {
	return &StreamReporter{w: w}
}

func (r *StreamReporter) ReportFault(title, message string) error {
	_, err := fmt.Fprintf(r.w, "%s: %s\n", title, message)
	return err
}
