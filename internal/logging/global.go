package logging

import "sync"

// The process logger is installed once per command by the CLI and read by
// packages that have no logger of their own (store, clipboard, terminal).
var (
	processMu     sync.RWMutex
	processLogger *Logger
	discard       = NewNoop()
)

// Global returns the process logger. Before InitGlobal or SetGlobal, and
// after CloseGlobal, it discards everything.
func Global() *Logger {
	processMu.RLock()
	defer processMu.RUnlock()
	if processLogger == nil {
		return discard
	}
	return processLogger
}

// SetGlobal installs l as the process logger. Nil restores the discarding logger.
func SetGlobal(l *Logger) {
	processMu.Lock()
	processLogger = l
	processMu.Unlock()
}

// InitGlobal creates a logger from config and installs it.
// A nil config uses DefaultConfig.
func InitGlobal(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	SetGlobal(l)
	return nil
}

// CloseGlobal closes the process logger's file and uninstalls it.
func CloseGlobal() error {
	processMu.Lock()
	l := processLogger
	processLogger = nil
	processMu.Unlock()

	if l == nil {
		return nil
	}
	return l.Close()
}

// Debug logs on the process logger.
func Debug(msg string, args ...any) { Global().Debug(msg, args...) }

// Info logs on the process logger.
func Info(msg string, args ...any) { Global().Info(msg, args...) }

// Warn logs on the process logger.
func Warn(msg string, args ...any) { Global().Warn(msg, args...) }

// Error logs on the process logger.
func Error(msg string, args ...any) { Global().Error(msg, args...) }

// With returns the process logger with args attached.
func With(args ...any) *Logger { return Global().With(args...) }
