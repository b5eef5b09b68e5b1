package engine

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"

	flowerrors "github.com/wexinc/flow/internal/errors"
	"github.com/wexinc/flow/internal/logging"
)

// InputVariable is the variable name bound from piped input when available.
const InputVariable = "input"

// ErrNoQuerier is the cause reported when a variable needs a value but no
// interactive query is configured.
var ErrNoQuerier = errors.New("no interactive query configured")

// Querier obtains a value for a variable from the user.
type Querier interface {
	Query(ctx context.Context, name string) (string, error)
}

// QueryFunc adapts a function to the Querier interface.
type QueryFunc func(ctx context.Context, name string) (string, error)

// Query calls f.
func (f QueryFunc) Query(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}

// Resolver binds a value to every variable of a template.
type Resolver struct {
	input   Input
	querier Querier
	logger  *logging.Logger
}

// NewResolver creates a Resolver reading piped input from input and asking
// querier for everything else.
func NewResolver(input Input, querier Querier) *Resolver {
	if input == nil {
		input = NoInput()
	}
	return &Resolver{
		input:   input,
		querier: querier,
		logger:  logging.NewNoop(),
	}
}

// SetLogger sets the logger used for resolution diagnostics.
func (r *Resolver) SetLogger(logger *logging.Logger) {
	if logger == nil {
		logger = logging.NewNoop()
	}
	r.logger = logger
}

// Resolve returns a Binding covering every name in vars.
//
// If "input" is among the names and the input channel is redirected, the
// piped content with one trailing newline stripped is bound to it, unless
// that leaves it empty. Every other name is queried in lexicographic order
// and the answer bound verbatim. The first failed query, or cancellation of
// ctx while reading the piped input, aborts resolution and no partial
// binding is returned.
func (r *Resolver) Resolve(ctx context.Context, vars []string) (Binding, error) {
	names := append([]string(nil), vars...)
	sort.Strings(names)
	names = dedupe(names)

	binding := make(Binding, len(names))

	if containsSorted(names, InputVariable) && !r.input.IsTerminal() {
		value, ok, err := r.readPiped(ctx)
		if err != nil {
			return nil, flowerrors.ResolutionFailed(InputVariable, err)
		}
		if ok {
			binding[InputVariable] = value
			r.logger.Debug("bound variable from piped input", "variable", InputVariable, "bytes", len(value))
		}
	}

	for _, name := range names {
		if _, ok := binding[name]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, flowerrors.ResolutionFailed(name, err)
		}
		if r.querier == nil {
			return nil, flowerrors.ResolutionFailed(name, ErrNoQuerier)
		}

		value, err := r.querier.Query(ctx, name)
		if err != nil {
			r.logger.Debug("query failed", "variable", name, "error", err)
			return nil, flowerrors.ResolutionFailed(name, err)
		}
		binding[name] = value
	}

	return binding, nil
}

type readResult struct {
	data []byte
	err  error
}

// readPiped drains the input channel. A read failure is logged and treated
// as if nothing was piped. Cancellation of ctx during the read is returned
// as an error and whatever was read is discarded.
func (r *Resolver) readPiped(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	done := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(r.input)
		done <- readResult{data: data, err: err}
	}()

	var res readResult
	select {
	case <-ctx.Done():
		r.logger.Debug("piped read interrupted", "error", ctx.Err())
		return "", false, ctx.Err()
	case res = <-done:
	}
	// An interrupt can end the writer and close the pipe before Done fires.
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if res.err != nil {
		r.logger.Warn("failed to read piped input", "error", res.err)
		return "", false, nil
	}
	value := trimNewline(string(res.data))
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

// trimNewline removes one trailing "\n" or "\r\n".
func trimNewline(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s
	}
	s = s[:len(s)-1]
	return strings.TrimSuffix(s, "\r")
}

func containsSorted(names []string, name string) bool {
	i := sort.SearchStrings(names, name)
	return i < len(names) && names[i] == name
}
