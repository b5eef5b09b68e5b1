package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/flow/internal/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for flow.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  flow version          # Show detailed version info
  flow version --json   # Machine readable output`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipSetup,
		RunE:              runVersion,
	}
	cmd.Flags().Bool("json", false, "Print version information as JSON")
	return cmd
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.NewInfo(Version, Commit, Date)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out, err := info.JSON()
		if err != nil {
			return err
		}
		cmd.Println(out)
		return nil
	}

	cmd.Println(info.FullString())
	return nil
}
