// Package errors provides error types for flow.
// This file contains prompt, resolution and terminal errors.
package errors

import "fmt"

// PromptNotFound creates an error when no stored prompt has the alias.
func PromptNotFound(alias string) *FlowError {
	return &FlowError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("prompt with alias '%s' not found", alias),
		Details: map[string]string{
			"alias": alias,
		},
		Suggestion: "Run `flow list` to see available prompts.",
	}
}

// NoPrompts creates an error when the store is empty.
func NoPrompts() *FlowError {
	return &FlowError{
		Kind:       ErrNotFound,
		Message:    "no prompts found",
		Suggestion: "Run `flow add` to create one.",
	}
}

// DuplicateAlias creates an error when a prompt with the alias already exists.
func DuplicateAlias(alias string) *FlowError {
	return &FlowError{
		Kind:    ErrInvalid,
		Message: fmt.Sprintf("a prompt with alias '%s' already exists", alias),
		Details: map[string]string{
			"alias": alias,
		},
		Suggestion: "Choose a different alias with --alias.",
	}
}

// EmptyTemplate creates an error when the edited template has no content.
func EmptyTemplate() *FlowError {
	return &FlowError{
		Kind:       ErrInvalid,
		Message:    "aborted: empty template",
		Suggestion: "Lines starting with # are ignored; write at least one other line.",
	}
}

// ResolutionFailed creates an error for a variable whose value could not be obtained.
func ResolutionFailed(variable string, cause error) *FlowError {
	return &FlowError{
		Kind:    ErrResolution,
		Message: fmt.Sprintf("could not resolve value for '%s'", variable),
		Cause:   cause,
		Details: map[string]string{
			"variable": variable,
		},
	}
}

// TerminalSession creates an error for a failed terminal display session.
func TerminalSession(cause error) *FlowError {
	return &FlowError{
		Kind:    ErrTerminal,
		Message: "terminal session failed",
		Cause:   cause,
		Suggestion: `If the terminal was left in a bad state, run:
  reset`,
	}
}

// NoTerminal creates an error when an interactive terminal is required but absent.
func NoTerminal() *FlowError {
	return &FlowError{
		Kind:       ErrTerminal,
		Message:    "no interactive terminal available",
		Suggestion: "Run this command from a terminal, or use `flow use <alias> --print` with piped input.",
	}
}

// ClipboardUnavailable creates an error when the rendered prompt cannot be copied.
func ClipboardUnavailable(cause error) *FlowError {
	return &FlowError{
		Kind:    ErrClipboard,
		Message: "could not copy to clipboard",
		Cause:   cause,
		Suggestion: `Use --print to write the prompt to stdout instead, or set:
  use:
    output: print`,
	}
}
