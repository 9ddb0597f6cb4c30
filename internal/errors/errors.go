package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorRender   = 2   // Indicates the report itself could not be rendered.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// OperationError records the failure of one monitored explorer operation.
// It never escapes the dashboard's execution loop; it is surfaced inline and
// kept on the operation's result.
type OperationError struct {
	// Operation is the display name of the failing operation.
	Operation string
	// Cause is the error returned (or the panic recovered) from the collaborator.
	Cause error
}

// Error returns "<operation>: <cause>".
func (e OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Cause)
}

// Unwrap returns the original cause, allowing errors.Is and errors.As to
// inspect the collaborator's error.
func (e OperationError) Unwrap() error { return e.Cause }

// RenderError signals that the dashboard's own reporting machinery (chart or
// table construction, surface output) failed. It is not recovered: a failed
// render stops the report.
type RenderError struct {
	// Component names the part of the report that failed (e.g. "chart").
	Component string
	// Cause is the underlying failure.
	Cause error
}

// Error returns a formatted message describing the render failure.
func (e RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Component, e.Cause)
}

// Unwrap returns the underlying cause.
func (e RenderError) Unwrap() error { return e.Cause }

// NewRenderError builds a RenderError whose cause is a formatted message.
func NewRenderError(component, format string, a ...any) error {
	return RenderError{Component: component, Cause: fmt.Errorf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error returned by the application to its exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	var valErr ValidationError
	var renderErr RenderError
	switch {
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ExitErrorConfig
	case errors.As(err, &renderErr):
		return ExitErrorRender
	default:
		return ExitErrorGeneric
	}
}
