// Package config provides configuration data structures for flow.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the complete flow configuration loaded from config.yaml.
type Config struct {
	Store  StoreConfig  `yaml:"store"  mapstructure:"store"`
	Use    UseConfig    `yaml:"use"    mapstructure:"use"`
	UI     UIConfig     `yaml:"ui"     mapstructure:"ui"`
	Editor EditorConfig `yaml:"editor" mapstructure:"editor"`
	Log    LogConfig    `yaml:"log"    mapstructure:"log"`
}

// StoreConfig configures where prompts are kept.
type StoreConfig struct {
	// Path is the prompts JSON file. Empty means <config dir>/prompts.json.
	Path string `yaml:"path" mapstructure:"path"`
}

// OutputMode defines where `flow use` delivers the rendered prompt.
type OutputMode string

const (
	// OutputClipboard copies the rendered prompt to the system clipboard.
	OutputClipboard OutputMode = "clipboard"
	// OutputPrint writes the rendered prompt to stdout.
	OutputPrint OutputMode = "print"
)

// UseConfig configures the use command.
type UseConfig struct {
	// Output is the default destination (default: clipboard).
	Output OutputMode `yaml:"output" mapstructure:"output"`
}

// UIConfig configures the interactive selector.
type UIConfig struct {
	// Banner shows the block-letter banner above the panes (default: true).
	Banner bool `yaml:"banner" mapstructure:"banner"`
	// ListWidth is the alias pane width in percent of the screen (default: 30).
	ListWidth int `yaml:"list_width" mapstructure:"list_width"`
}

// EditorConfig configures the editor opened by `flow add`.
type EditorConfig struct {
	// Command is the editor binary. Empty means $VISUAL, then $EDITOR, then vim.
	Command string `yaml:"command" mapstructure:"command"`
}

// LogConfig configures the log files.
type LogConfig struct {
	// Level is debug, info, warn or error (default: info).
	Level string `yaml:"level" mapstructure:"level"`
	// Dir is the log directory. Empty means <config dir>/logs.
	Dir string `yaml:"dir" mapstructure:"dir"`
	// MaxFiles is the number of log files kept (default: 10).
	MaxFiles int `yaml:"max_files" mapstructure:"max_files"`
	// MaxAgeDays removes log files older than this many days (default: 7).
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`
	// JSON writes JSON lines instead of text.
	JSON bool `yaml:"json" mapstructure:"json"`
}

// Default values.
const (
	DefaultDirName       = "flowprompt"
	DefaultStoreFilename = "prompts.json"
	DefaultConfigFile    = "config.yaml"
	DefaultLogDirName    = "logs"
	DefaultListWidth     = 30
	DefaultLogLevel      = "info"
	DefaultMaxLogFiles   = 10
	DefaultMaxLogAgeDays = 7

	// DirEnv overrides the configuration directory.
	DirEnv = "FLOW_CONFIG_DIR"
)

// Dir returns the flow configuration directory.
// FLOW_CONFIG_DIR wins; otherwise it is "flowprompt" under the user config dir.
func Dir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}
	return filepath.Join(base, DefaultDirName), nil
}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Use: UseConfig{
			Output: OutputClipboard,
		},
		UI: UIConfig{
			Banner:    true,
			ListWidth: DefaultListWidth,
		},
		Log: LogConfig{
			Level:      DefaultLogLevel,
			MaxFiles:   DefaultMaxLogFiles,
			MaxAgeDays: DefaultMaxLogAgeDays,
		},
	}
}

// ApplyDefaults fills in unset fields after loading from file.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Use.Output == "" {
		c.Use.Output = defaults.Use.Output
	}
	if c.UI.ListWidth == 0 {
		c.UI.ListWidth = defaults.UI.ListWidth
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = defaults.Log.MaxAgeDays
	}
}

// ResolvePaths fills the store and log paths that default to locations
// inside dir.
func (c *Config) ResolvePaths(dir string) {
	if c.Store.Path == "" {
		c.Store.Path = filepath.Join(dir, DefaultStoreFilename)
	}
	if c.Log.Dir == "" {
		c.Log.Dir = filepath.Join(dir, DefaultLogDirName)
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	Options []string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Use.Output != "" {
		switch c.Use.Output {
		case OutputClipboard, OutputPrint:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "use.output",
				Message: "must be 'clipboard' or 'print'",
				Options: []string{string(OutputClipboard), string(OutputPrint)},
			})
		}
	}

	if c.UI.ListWidth != 0 && (c.UI.ListWidth < 10 || c.UI.ListWidth > 90) {
		errs = append(errs, &ValidationError{
			Field:   "ui.list_width",
			Message: "must be between 10 and 90",
		})
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
		// valid
	default:
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
			Options: []string{"debug", "info", "warn", "error"},
		})
	}

	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}
	if c.Log.MaxAgeDays < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_age_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
