package tui

import (
	"context"

	flowerrors "github.com/wexinc/flow/internal/errors"
	"github.com/wexinc/flow/internal/prompt"
)

// Select runs the selector over prompts in session and returns the chosen
// alias. ok is false when the user cancelled or was interrupted. A failed
// session is returned as a terminal error with ok false.
func Select(ctx context.Context, session Session, prompts []prompt.Prompt, opts Options) (alias string, ok bool, err error) {
	logger := opts.logger()
	model := NewSelectorModel(prompts, opts)
	logger.Debug("selector started", "prompts", len(prompts))

	final, err := session.Run(ctx, model)
	if err != nil {
		if interrupted(ctx, err) {
			logger.Debug("selector interrupted")
			return "", false, nil
		}
		logger.Error("selector session failed", "error", err)
		return "", false, flowerrors.TerminalSession(err)
	}

	if m, isSelector := final.(*SelectorModel); isSelector {
		model = m
	}
	alias, ok = model.Selector().Alias()
	logger.Debug("selector finished", "outcome", model.Selector().Outcome().String(), "alias", alias)
	return alias, ok, nil
}

// Find runs the fuzzy finder over prompts in session and returns the chosen
// alias, with the same contract as Select.
func Find(ctx context.Context, session Session, prompts []prompt.Prompt, opts Options) (alias string, ok bool, err error) {
	logger := opts.logger()
	model := NewFinderModel(prompts, opts)

	final, err := session.Run(ctx, model)
	if err != nil {
		if interrupted(ctx, err) {
			return "", false, nil
		}
		logger.Error("finder session failed", "error", err)
		return "", false, flowerrors.TerminalSession(err)
	}

	if m, isFinder := final.(*FinderModel); isFinder {
		model = m
	}
	alias, ok = model.Alias()
	logger.Debug("finder finished", "outcome", model.Outcome().String(), "alias", alias)
	return alias, ok, nil
}
