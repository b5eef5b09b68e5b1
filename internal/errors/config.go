// Package errors provides error types for flow.
// This file contains configuration and storage errors.
package errors

import (
	"fmt"
	"strings"
)

// DocLink points at the configuration section of the README.
const DocLink = "https://github.com/wexinc/flow#configuration"

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *FlowError {
	return &FlowError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes

Print the effective configuration with:
  flow config show`,
		DocLink: DocLink,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *FlowError {
	suggestion := fmt.Sprintf("Fix the %q field in config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &FlowError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// StoreReadError creates an error for an unreadable prompts file.
func StoreReadError(path string, cause error) *FlowError {
	return &FlowError{
		Kind:    ErrStorage,
		Message: "failed to read prompts",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the file is valid JSON of the form {\"prompts\": [...]}.",
	}
}

// StoreWriteError creates an error for a prompts file that could not be written.
func StoreWriteError(path string, cause error) *FlowError {
	return &FlowError{
		Kind:    ErrStorage,
		Message: "failed to save prompts",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
	}
}
