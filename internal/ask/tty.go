package ask

import (
	"os"

	"golang.org/x/term"

	flowerrors "github.com/wexinc/flow/internal/errors"
	"github.com/wexinc/flow/internal/logging"
)

// ttyPath is the controlling terminal device.
var ttyPath = "/dev/tty"

// Terminal returns streams for interactive questions. When stdin is a
// terminal it is used directly with drawing on stderr. Otherwise stdin
// carries piped data, so the controlling terminal is opened instead. The
// returned close function releases whatever was opened.
func Terminal() (Stdio, func() error, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return StderrStdio(), func() error { return nil }, nil
	}

	tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		logging.Warn("controlling terminal unavailable", "path", ttyPath, "error", err)
		return Stdio{}, nil, flowerrors.NoTerminal().WithCause(err)
	}
	logging.Debug("asking on controlling terminal", "path", ttyPath)
	return Stdio{In: tty, Out: tty, Err: tty}, tty.Close, nil
}
