// Package errors provides error types with actionable suggestions for flow.
// Errors carry a kind, contextual details and a hint for resolving them.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrStorage indicates the prompt store could not be read or written.
	ErrStorage = errors.New("storage error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
	// ErrResolution indicates a template variable could not be resolved.
	ErrResolution = errors.New("resolution error")
	// ErrTerminal indicates the terminal session could not be acquired or restored.
	ErrTerminal = errors.New("terminal session error")
	// ErrClipboard indicates the clipboard is not usable.
	ErrClipboard = errors.New("clipboard error")
	// ErrInvalid indicates invalid user input.
	ErrInvalid = errors.New("invalid input")
)

// FlowError is the base error type for flow errors.
// It wraps an underlying error and provides additional context.
type FlowError struct {
	// Kind is the category of error (e.g., ErrConfig, ErrResolution).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// DocLink is a URL to relevant documentation.
	DocLink string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, alias).
	Details map[string]string
}

// Error implements the error interface.
func (e *FlowError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *FlowError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches the target.
func (e *FlowError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with suggestions and doc links.
func (e *FlowError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	if e.DocLink != "" {
		sb.WriteString("\n📚 Documentation: ")
		sb.WriteString(e.DocLink)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *FlowError) WithDetails(key, value string) *FlowError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *FlowError) WithCause(cause error) *FlowError {
	e.Cause = cause
	return e
}

// New creates a new FlowError with the given kind and message.
func New(kind error, message string) *FlowError {
	return &FlowError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *FlowError {
	return &FlowError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *FlowError {
	return &FlowError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// As returns the first FlowError in err's chain.
func As(err error) (*FlowError, bool) {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
