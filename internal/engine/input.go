package engine

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Input is the piped input channel consulted for the "input" variable.
type Input interface {
	io.Reader
	// IsTerminal reports whether the channel is attached to an interactive
	// terminal, in which case nothing is read from it.
	IsTerminal() bool
}

// fileInput is an Input backed by a file descriptor such as os.Stdin.
type fileInput struct {
	*os.File
}

func (f fileInput) IsTerminal() bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// readerInput is an Input over an arbitrary reader, always treated as
// redirected.
type readerInput struct {
	io.Reader
}

func (readerInput) IsTerminal() bool {
	return false
}

// terminalInput is an Input with nothing piped into it.
type terminalInput struct{}

func (terminalInput) Read([]byte) (int, error) { return 0, io.EOF }

func (terminalInput) IsTerminal() bool { return true }

// NewInput wraps r as an Input. Files are checked with isatty; any other
// reader counts as redirected input. A nil reader means no piped input.
func NewInput(r io.Reader) Input {
	switch v := r.(type) {
	case nil:
		return terminalInput{}
	case Input:
		return v
	case *os.File:
		return fileInput{File: v}
	default:
		return readerInput{Reader: v}
	}
}

// Stdin returns the process's standard input as an Input.
func Stdin() Input {
	return NewInput(os.Stdin)
}

// NoInput returns an Input that is interactive and never read.
func NoInput() Input {
	return terminalInput{}
}
