package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wexinc/flow/internal/config"
	flowerrors "github.com/wexinc/flow/internal/errors"
	"github.com/wexinc/flow/internal/prompt"
	"github.com/wexinc/flow/internal/tui"
)

// pickFunc runs an interactive picker over prompts.
type pickFunc func(ctx context.Context, session tui.Session, prompts []prompt.Prompt, opts tui.Options) (string, bool, error)

func newUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse prompts full screen and use one",
		Long: `Browse stored prompts with a live preview.

Use the arrow keys to move, enter to use the highlighted prompt and q or esc
to leave. The rendered prompt is copied to the clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.browse(cmd, tui.Select, false)
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Fuzzy search prompts and use one",
		Long: `Search stored prompts by alias and description.

Type to filter, use the arrow keys to move, enter to use the highlighted
prompt and esc to leave. The rendered prompt is copied to the clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.browse(cmd, tui.Find, true)
		},
	}
}

// browse lets the user pick a prompt with pick and then uses it. Terminal
// failures are reported and end the command without a selection. With
// skipEmpty an empty store prints a hint instead of opening the screen.
func (a *app) browse(cmd *cobra.Command, pick pickFunc, skipEmpty bool) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	prompts := store.Prompts()
	if skipEmpty && len(prompts) == 0 {
		writeTable(cmd.OutOrStdout(), prompts)
		return nil
	}

	session, err := a.env.newSession()
	if err != nil {
		return a.noSelection(cmd, err)
	}

	alias, ok, err := pick(cmd.Context(), session, prompts, a.tuiOptions())
	if err != nil {
		return a.noSelection(cmd, err)
	}
	if !ok {
		return nil
	}

	p, found := store.Get(alias)
	if !found {
		return flowerrors.PromptNotFound(alias)
	}
	return a.use(cmd, p, config.OutputClipboard)
}

func (a *app) noSelection(cmd *cobra.Command, err error) error {
	if !errors.Is(err, flowerrors.ErrTerminal) {
		return err
	}
	a.log().Warn("terminal session unavailable", "error", err)
	printError(cmd.ErrOrStderr(), err)
	fmt.Fprintln(cmd.ErrOrStderr(), "No prompt selected.")
	return nil
}
