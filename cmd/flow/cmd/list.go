package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wexinc/flow/internal/prompt"
)

// descriptionWidth is the number of description characters shown by ls.
const descriptionWidth = 37

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List stored prompts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			writeTable(cmd.OutOrStdout(), store.Prompts())
			return nil
		},
	}
}

// writeTable prints prompts as aligned columns.
func writeTable(w io.Writer, prompts []prompt.Prompt) {
	if len(prompts) == 0 {
		fmt.Fprintln(w, "No prompts found. Run `flow add` to create one.")
		return
	}

	fmt.Fprintf(w, "%-15s %-40s %-20s\n", "ALIAS", "DESCRIPTION", "TAGS")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, p := range prompts {
		fmt.Fprintf(w, "%-15s %-40s %-20s\n", p.Alias, shorten(p.Description, descriptionWidth), p.TagString())
	}
}

// shorten cuts s to max runes followed by "..." when it is longer.
func shorten(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
