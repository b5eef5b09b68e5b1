// Package cmd provides the CLI commands for flow.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/wexinc/flow/internal/ask"
	"github.com/wexinc/flow/internal/config"
	flowerrors "github.com/wexinc/flow/internal/errors"
	"github.com/wexinc/flow/internal/logging"
	"github.com/wexinc/flow/internal/output"
	"github.com/wexinc/flow/internal/prompt"
	"github.com/wexinc/flow/internal/tui"
)

// Version information - set via ldflags at build time in main.go.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// env holds the terminal-facing collaborators of the commands.
type env struct {
	newSession func() (tui.Session, error)
	newDriver  func() (ask.Driver, func() error, error)
	newSink    func(mode config.OutputMode, stdout, stderr io.Writer) output.Sink
}

func defaultEnv() *env {
	return &env{
		newSession: func() (tui.Session, error) {
			if !tui.HasTerminal() {
				return nil, flowerrors.NoTerminal()
			}
			return tui.NewTerminalSession(), nil
		},
		newDriver: func() (ask.Driver, func() error, error) {
			stdio, closeFn, err := ask.Terminal()
			if err != nil {
				return nil, nil, err
			}
			return ask.NewSurveyDriver(stdio), closeFn, nil
		},
		newSink: output.ForMode,
	}
}

// app is the state shared by the commands of one invocation.
type app struct {
	env     *env
	verbose bool
	cfg     *config.Config
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = NewRootCmd()

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultEnv())
}

func newRootCmd(e *env) *cobra.Command {
	a := &app{env: e}

	root := &cobra.Command{
		Use:   "flow",
		Short: "Manage and render prompt templates",
		Long: `flow stores prompt templates under short aliases and renders them on demand.

Templates contain {{placeholders}}. When a prompt is used, {{input}} is filled
from piped stdin and every other placeholder is asked for interactively. The
result is copied to the clipboard or printed.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.Version = versionString()
	root.SetVersionTemplate("flow {{.Version}}\n")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Mirror debug logs to stderr")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newUseCmd(a),
		newSearchCmd(a),
		newUICmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}

// setup loads the configuration and starts the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	dir, err := config.Dir()
	if err != nil {
		return flowerrors.Wrap(err, flowerrors.ErrConfig, "could not locate the configuration directory")
	}

	cfg, err := config.LoadFromDir(dir)
	if err != nil {
		return configError(err)
	}
	a.cfg = cfg
	a.startLogger(cmd.ErrOrStderr())

	ctx := logging.WithCommand(cmd.Context(), cmd.Name())
	cmd.SetContext(ctx)
	a.log().WithContext(ctx).Debug("command started", "config_dir", dir, "store", cfg.Store.Path)
	return nil
}

// startLogger replaces the global logger. Failure to open the log file
// never fails the command.
func (a *app) startLogger(stderr io.Writer) {
	level, err := logging.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	if a.verbose {
		level = logging.LevelDebug
	}

	lc := &logging.Config{
		Level:       level,
		LogDir:      a.cfg.Log.Dir,
		MaxLogFiles: a.cfg.Log.MaxFiles,
		MaxLogAge:   time.Duration(a.cfg.Log.MaxAgeDays) * 24 * time.Hour,
		Console:     a.verbose,
		JSONFormat:  a.cfg.Log.JSON,
	}

	_ = logging.CloseGlobal()
	if err := logging.InitGlobal(lc); err != nil {
		if !a.verbose {
			logging.SetGlobal(logging.NewNoop())
			return
		}
		logging.SetGlobal(logging.NewWithWriter(stderr, lc))
		logging.Warn("could not open log file", "error", err)
	}
}

// log returns the process logger, a no-op logger until setup has run.
func (*app) log() *logging.Logger {
	return logging.Global()
}

// openStore loads the prompt store named by the configuration.
func (a *app) openStore() (*prompt.Store, error) {
	store, err := prompt.Open(a.cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	a.log().Debug("store opened", "path", store.Path(), "prompts", store.Count())
	return store, nil
}

func (a *app) tuiOptions() tui.Options {
	return tui.Options{
		ShowBanner: a.cfg.UI.Banner,
		ListWidth:  a.cfg.UI.ListWidth,
		Logger:     a.log(),
	}
}

// skipSetup is used by commands that must run without a valid config.
func skipSetup(*cobra.Command, []string) error {
	return nil
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	rootCmd.Version = versionString()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logging.Error("command failed", "error", err)
	}
	_ = logging.CloseGlobal()

	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// printError writes err to w, with suggestions for flow errors.
func printError(w io.Writer, err error) {
	if fe, ok := flowerrors.As(err); ok {
		fmt.Fprint(w, fe.Format())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
