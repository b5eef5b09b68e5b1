package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestFlowError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FlowError
		expected string
	}{
		{
			name:     "simple message",
			err:      New(ErrNotFound, "prompt missing"),
			expected: "prompt missing",
		},
		{
			name: "with cause",
			err: &FlowError{
				Kind:    ErrConfig,
				Message: "config error",
				Cause:   errors.New("parse error"),
			},
			expected: "config error: parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFlowError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrStorage, "wrapped error")

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause, should return Kind
	errNoWrap := New(ErrResolution, "no cause")
	unwrapped = errors.Unwrap(errNoWrap)
	if !errors.Is(unwrapped, ErrResolution) {
		t.Errorf("Unwrap() should return Kind when no cause")
	}
}

func TestFlowError_Is(t *testing.T) {
	err := New(ErrResolution, "query failed")

	if !errors.Is(err, ErrResolution) {
		t.Error("errors.Is should return true for matching Kind")
	}
	if errors.Is(err, ErrConfig) {
		t.Error("errors.Is should return false for non-matching Kind")
	}

	wrapped := Wrap(err, ErrTerminal, "wrapped")
	if !errors.Is(wrapped, ErrTerminal) {
		t.Error("errors.Is should return true for wrapped error Kind")
	}
	if !errors.Is(wrapped, ErrResolution) {
		t.Error("errors.Is should see the Kind of a wrapped FlowError")
	}
}

func TestFlowError_Format(t *testing.T) {
	err := &FlowError{
		Kind:       ErrNotFound,
		Message:    "prompt not found",
		Suggestion: "Run 'flow list'",
		DocLink:    "https://example.com/docs",
		Details: map[string]string{
			"alias": "review",
			"path":  "/tmp/prompts.json",
		},
	}

	formatted := err.Format()

	for _, want := range []string{
		"Error: prompt not found",
		"💡 Suggestion:",
		"Run 'flow list'",
		"📚 Documentation:",
		"https://example.com/docs",
		"alias: review",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() should contain %q, got:\n%s", want, formatted)
		}
	}

	// Details are sorted by key.
	if strings.Index(formatted, "alias:") > strings.Index(formatted, "path:") {
		t.Error("Format() should list details in key order")
	}
}

func TestFlowError_WithDetails(t *testing.T) {
	err := New(ErrConfig, "config error")
	err.WithDetails("file", "config.yaml").WithDetails("line", "42")

	if err.Details["file"] != "config.yaml" {
		t.Error("WithDetails should set key")
	}
	if err.Details["line"] != "42" {
		t.Error("WithDetails should allow chaining")
	}
}

func TestFlowError_WithCause(t *testing.T) {
	cause := errors.New("root cause")
	err := New(ErrClipboard, "clipboard error").WithCause(cause)

	if !errors.Is(err.Cause, cause) {
		t.Error("WithCause should set cause")
	}
}

func TestWithSuggestion(t *testing.T) {
	err := WithSuggestion(ErrInvalid, "bad alias", "Use letters only")

	if err.Suggestion != "Use letters only" {
		t.Error("WithSuggestion should set Suggestion")
	}
}

func TestAs(t *testing.T) {
	inner := PromptNotFound("x")
	outer := errors.Join(errors.New("context"), inner)

	got, ok := As(outer)
	if !ok {
		t.Fatal("As should find the FlowError in the chain")
	}
	if got != inner {
		t.Error("As should return the inner FlowError")
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Error("As should report false for plain errors")
	}
}
