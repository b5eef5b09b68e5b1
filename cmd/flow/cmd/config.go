package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wexinc/flow/internal/config"
	flowerrors "github.com/wexinc/flow/internal/errors"
)

func newConfigCmd(a *app) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	initC := &cobra.Command{
		Use:   "init",
		Short: "Write a config.yaml with the default settings",
		Long: `Write a config.yaml with the default settings to the flow configuration
directory ($FLOW_CONFIG_DIR, or "flowprompt" in your user config directory).`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipSetup,
		RunE:              runConfigInit,
	}
	initC.Flags().BoolP("force", "f", false, "Overwrite an existing config.yaml")

	cfgCmd.AddCommand(show, initC)
	return cfgCmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")

	dir, err := config.Dir()
	if err != nil {
		return flowerrors.Wrap(err, flowerrors.ErrConfig, "could not locate the configuration directory")
	}
	path := filepath.Join(dir, config.DefaultConfigFile)

	if _, err := os.Stat(path); err == nil && !force {
		return flowerrors.WithSuggestion(flowerrors.ErrInvalid,
			fmt.Sprintf("config file already exists: %s", path),
			"Use --force to overwrite it.")
	}

	if err := config.NewConfig().WriteFile(path); err != nil {
		return flowerrors.Wrap(err, flowerrors.ErrConfig, "failed to write config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✔ Wrote %s\n", path)
	return nil
}

// configError turns a load failure into a flow error with a suggestion.
func configError(err error) error {
	var loadErr *config.LoadError
	if !errors.As(err, &loadErr) {
		return flowerrors.Wrap(err, flowerrors.ErrConfig, "failed to load configuration")
	}

	var validation config.ValidationErrors
	if errors.As(loadErr.Err, &validation) && len(validation) > 0 {
		first := validation[0]
		return flowerrors.ConfigValidationError(first.Field, first.Message, first.Options).WithCause(err)
	}
	return flowerrors.ConfigParseError(loadErr.Path, loadErr.Err)
}
