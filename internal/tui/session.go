package tui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Session runs a model against a display until the model quits.
type Session interface {
	Run(ctx context.Context, model tea.Model) (tea.Model, error)
}

// TerminalSession runs models full screen on a real terminal. The terminal
// mode is saved before the program starts and restored on every return
// path, including panics and errors.
type TerminalSession struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminalSession creates a session on stdin and stdout.
func NewTerminalSession() *TerminalSession {
	return &TerminalSession{In: os.Stdin, Out: os.Stdout}
}

// Run implements Session.
func (s *TerminalSession) Run(ctx context.Context, model tea.Model) (result tea.Model, err error) {
	if restore := saveTerminal(s.In); restore != nil {
		defer func() {
			if rerr := restore(); rerr != nil && err == nil {
				err = rerr
			}
		}()
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if s.In != nil {
		opts = append(opts, tea.WithInput(s.In))
	}
	if s.Out != nil {
		opts = append(opts, tea.WithOutput(s.Out))
	}

	return tea.NewProgram(model, opts...).Run()
}

// saveTerminal captures the mode of r when it is a terminal and returns a
// function restoring it.
func saveTerminal(r io.Reader) func() error {
	f, ok := r.(*os.File)
	if !ok {
		return nil
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	state, err := term.GetState(fd)
	if err != nil {
		return nil
	}
	return func() error {
		return term.Restore(fd, state)
	}
}

// HasTerminal reports whether stdin and stdout are both terminals.
func HasTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// interrupted reports whether err is the result of a process interrupt or a
// cancelled context rather than a terminal failure.
func interrupted(ctx context.Context, err error) bool {
	if errors.Is(err, tea.ErrInterrupted) {
		return true
	}
	return errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil
}
