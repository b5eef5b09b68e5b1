// Package output delivers a rendered prompt to its destination.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/wexinc/flow/internal/config"
	flowerrors "github.com/wexinc/flow/internal/errors"
	"github.com/wexinc/flow/internal/logging"
)

// Sink receives the final text of a rendered prompt.
type Sink interface {
	Deliver(alias, text string) error
}

// Writer prints the rendered text followed by a newline.
type Writer struct {
	w io.Writer
}

// NewWriter creates a sink printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Deliver writes text to the underlying writer.
func (s *Writer) Deliver(_ string, text string) error {
	_, err := fmt.Fprintln(s.w, text)
	return err
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Clipboard copies the rendered text to the system clipboard and confirms on
// the notice writer.
type Clipboard struct {
	notice io.Writer
}

// NewClipboard creates a clipboard sink confirming on notice.
func NewClipboard(notice io.Writer) *Clipboard {
	return &Clipboard{notice: notice}
}

// Deliver copies text to the clipboard.
func (s *Clipboard) Deliver(alias, text string) error {
	if clipboard.Unsupported {
		return flowerrors.ClipboardUnavailable(errors.New("no clipboard utility found"))
	}
	if err := writeClipboard(text); err != nil {
		logging.Debug("clipboard write failed", "alias", alias, "error", err)
		return flowerrors.ClipboardUnavailable(err)
	}
	logging.Debug("copied to clipboard", "alias", alias, "bytes", len(text))
	if s.notice != nil {
		fmt.Fprintf(s.notice, "✔ Copied '%s' prompt to clipboard\n", alias)
	}
	return nil
}

// ForMode returns the sink configured by mode: stdout for print, the
// clipboard otherwise.
func ForMode(mode config.OutputMode, stdout, stderr io.Writer) Sink {
	if mode == config.OutputPrint {
		return NewWriter(stdout)
	}
	return NewClipboard(stderr)
}
