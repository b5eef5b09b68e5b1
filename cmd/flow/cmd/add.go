package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wexinc/flow/internal/ask"
	"github.com/wexinc/flow/internal/logging"
	"github.com/wexinc/flow/internal/prompt"
)

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new prompt template",
		Long: `Create a new prompt template.

You are asked for an alias, a description and tags, then your editor opens
for the template body. Lines starting with # are ignored.

Examples:
  flow add
  flow add --alias review --tags code,review`,
		Args: cobra.NoArgs,
		RunE: a.runAdd,
	}
	cmd.Flags().StringP("alias", "a", "", "Alias of the new prompt")
	cmd.Flags().StringP("tags", "t", "", "Comma separated tags")
	return cmd
}

func (a *app) runAdd(cmd *cobra.Command, _ []string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}

	driver, closeDriver, err := a.env.newDriver()
	if err != nil {
		return err
	}
	defer closeDriver()

	alias, _ := cmd.Flags().GetString("alias")
	opts := ask.FormOptions{
		Alias:         alias,
		EditorCommand: a.cfg.Editor.Command,
		Exists:        store.Exists,
	}
	if cmd.Flags().Changed("tags") {
		tags, _ := cmd.Flags().GetString("tags")
		opts.Tags = prompt.ParseTags(tags)
	}

	p, err := ask.AddForm(cmd.Context(), driver, opts)
	if err != nil {
		return err
	}

	saved, err := store.Add(p)
	if err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return err
	}

	logging.Info("prompt added", "alias", saved.Alias, "id", saved.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "✔ Saved prompt '%s'\n", saved.Alias)
	return nil
}
