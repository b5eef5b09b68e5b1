package engine

import (
	"context"

	"github.com/wexinc/flow/internal/logging"
)

// Engine turns a template into final text.
type Engine struct {
	resolver *Resolver
	logger   *logging.Logger
}

// New creates an Engine that reads piped input from input and queries the
// user through querier.
func New(input Input, querier Querier) *Engine {
	return &Engine{
		resolver: NewResolver(input, querier),
		logger:   logging.NewNoop(),
	}
}

// SetLogger sets the logger for the engine and its resolver.
func (e *Engine) SetLogger(logger *logging.Logger) {
	if logger == nil {
		logger = logging.NewNoop()
	}
	e.logger = logger
	e.resolver.SetLogger(logger)
}

// Process scans template, resolves its variables and renders the result.
// Resolution errors are returned as-is and no output is produced.
func (e *Engine) Process(ctx context.Context, template string) (string, error) {
	vars := Scan(template)
	e.logger.Debug("scanned template", "variables", len(vars))

	binding, err := e.resolver.Resolve(ctx, vars)
	if err != nil {
		return "", err
	}

	return Render(template, binding), nil
}
