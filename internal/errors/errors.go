// Package errors defines stable error codes for the verdict tool surface.
// The comparator itself never errors; these codes cover the CLI and suite
// plumbing around it.
package errors

import "fmt"

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ModeUnknown indicates a requested comparison mode is not registered
	ModeUnknown ErrorCode = "MODE_UNKNOWN"
	// InputUnreadable indicates an expected/actual source could not be read
	InputUnreadable ErrorCode = "INPUT_UNREADABLE"
	// SuiteInvalid indicates an evaluation suite file failed to parse
	SuiteInvalid ErrorCode = "SUITE_INVALID"
	// ConfigInvalid indicates a malformed configuration file
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// VerdictError carries a stable code alongside the message so callers can
// branch on failure class without string matching.
type VerdictError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	cause   error
}

// New creates a VerdictError without a cause.
func New(code ErrorCode, message string) *VerdictError {
	return &VerdictError{Code: code, Message: message}
}

// Wrap creates a VerdictError wrapping an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *VerdictError {
	return &VerdictError{Code: code, Message: message, cause: cause}
}

func (e *VerdictError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *VerdictError) Unwrap() error {
	return e.cause
}
