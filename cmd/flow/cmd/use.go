package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wexinc/flow/internal/ask"
	"github.com/wexinc/flow/internal/config"
	"github.com/wexinc/flow/internal/engine"
	flowerrors "github.com/wexinc/flow/internal/errors"
	"github.com/wexinc/flow/internal/logging"
	"github.com/wexinc/flow/internal/prompt"
)

func newUseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <alias>",
		Short: "Render a prompt and copy or print it",
		Long: `Render the prompt stored under alias.

{{input}} is taken from piped stdin when there is any; every other
placeholder is asked for in alphabetical order. The result goes to the
clipboard unless --print is given or use.output is "print".

Examples:
  flow use greet
  git diff | flow use review --print`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if store.Count() == 0 {
				return flowerrors.NoPrompts()
			}
			p, ok := store.Get(args[0])
			if !ok {
				return flowerrors.PromptNotFound(args[0])
			}

			mode := a.cfg.Use.Output
			if printFlag, _ := cmd.Flags().GetBool("print"); printFlag {
				mode = config.OutputPrint
			}
			return a.use(cmd, p, mode)
		},
	}
	cmd.Flags().BoolP("print", "p", false, "Print the result to stdout instead of copying it")
	return cmd
}

// use renders p and delivers the result according to mode.
func (a *app) use(cmd *cobra.Command, p prompt.Prompt, mode config.OutputMode) error {
	ctx := logging.WithAlias(cmd.Context(), p.Alias)
	logger := logging.With("output", string(mode)).WithContext(ctx)

	querier := &lazyQuerier{open: a.env.newDriver}
	defer querier.Close()

	eng := engine.New(engine.NewInput(cmd.InOrStdin()), querier)
	eng.SetLogger(logger)

	text, err := eng.Process(ctx, p.Template)
	if err != nil {
		return err
	}

	logger.Debug("prompt rendered", "bytes", len(text))
	sink := a.env.newSink(mode, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return sink.Deliver(p.Alias, text)
}

// lazyQuerier opens the terminal only when a value is actually asked for,
// so templates fed entirely from stdin work without a terminal.
type lazyQuerier struct {
	open    func() (ask.Driver, func() error, error)
	querier *ask.Querier
	close   func() error
}

func (q *lazyQuerier) Query(ctx context.Context, name string) (string, error) {
	if q.querier == nil {
		driver, closeFn, err := q.open()
		if err != nil {
			return "", err
		}
		q.querier = ask.NewQuerier(driver)
		q.close = closeFn
	}
	return q.querier.Query(ctx, name)
}

// Close releases the terminal if it was opened.
func (q *lazyQuerier) Close() error {
	if q.close == nil {
		return nil
	}
	return q.close()
}
