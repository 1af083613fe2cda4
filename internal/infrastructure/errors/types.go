package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode classifies failures raised by the host shell
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeWindowNotFound
	ErrCodeWindowShow
	ErrCodeDialog
	ErrCodeUnknownOperation
	ErrCodeInvalidArgument
	ErrCodeInternal
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeWindowNotFound:
		return "WINDOW_NOT_FOUND"
	case ErrCodeWindowShow:
		return "WINDOW_SHOW"
	case ErrCodeDialog:
		return "DIALOG"
	case ErrCodeUnknownOperation:
		return "UNKNOWN_OPERATION"
	case ErrCodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case ErrCodeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// HostError is a classified failure of a startup step or a host call
type HostError struct {
	Op        string            // operation name
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *HostError) Error() string {
	if e == nil {
		return "host error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "host error" + contextStr
}

func (e *HostError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements error matching for errors.Is
func (e *HostError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*HostError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *HostError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetContext returns the error context (for logging interface compatibility)
func (e *HostError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *HostError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// IsFatal reports whether the error must abort the process.
func (e *HostError) IsFatal() bool {
	if e == nil {
		return false
	}
	return e.Code == ErrCodeWindowNotFound || e.Code == ErrCodeWindowShow
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe once the error has been handed to another goroutine.
func (e *HostError) WithContext(key, value string) *HostError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewHostError creates a new host error with the given parameters
func NewHostError(op string, err error, code ErrorCode) *HostError {
	return &HostError{
		Op:        op,
		Err:       err,
		Code:      code,
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewHostErrorWithContext creates a new host error with additional context
func NewHostErrorWithContext(op string, err error, code ErrorCode, context map[string]string) *HostError {
	hostErr := NewHostError(op, err, code)
	if context != nil {
		hostErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			hostErr.Context[k] = v
		}
	}
	return hostErr
}

// CodeOf returns the classification of err, or ErrCodeUnknown if err is not a HostError
func CodeOf(err error) ErrorCode {
	var hostErr *HostError
	if errors.As(err, &hostErr) {
		return hostErr.Code
	}
	return ErrCodeUnknown
}

// IsWindowNotFound checks if the error is a "window not found" error
func IsWindowNotFound(err error) bool {
	return CodeOf(err) == ErrCodeWindowNotFound
}

// IsWindowShow checks if the error is a failed window show
func IsWindowShow(err error) bool {
	return CodeOf(err) == ErrCodeWindowShow
}

// IsDialog checks if the error is a failed dialog display
func IsDialog(err error) bool {
	return CodeOf(err) == ErrCodeDialog
}

// IsUnknownOperation checks if the error is a dispatch to an unregistered operation
func IsUnknownOperation(err error) bool {
	return CodeOf(err) == ErrCodeUnknownOperation
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return CodeOf(err) == ErrCodeInvalidArgument
}

// IsInternal checks if the error is an internal/API misuse error
func IsInternal(err error) bool {
	return CodeOf(err) == ErrCodeInternal
}

// IsFatal checks if the error must abort startup
func IsFatal(err error) bool {
	var hostErr *HostError
	if errors.As(err, &hostErr) {
		return hostErr.IsFatal()
	}
	return false
}
