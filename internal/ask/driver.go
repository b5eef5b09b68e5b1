// Package ask asks the user for values on the terminal.
package ask

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a question.
var ErrAborted = errors.New("aborted by user")

// InputConfig configures a single line question.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// EditorConfig configures a question answered in an external editor.
type EditorConfig struct {
	Message  string
	Default  string
	Command  string
	FileName string
}

// Driver abstracts the terminal questions so callers can be tested without a
// real terminal.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Editor(ctx context.Context, cfg EditorConfig) (string, error)
}

// Stdio is the set of streams questions are asked on.
type Stdio struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err io.Writer
}

// StderrStdio asks on stdin and draws on stderr, keeping stdout free for
// command output.
func StderrStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stderr, Err: os.Stderr}
}

type surveyDriver struct {
	stdio Stdio
}

// NewSurveyDriver returns a Driver backed by survey.
func NewSurveyDriver(stdio Stdio) Driver {
	return &surveyDriver{stdio: stdio}
}

func (d *surveyDriver) opts() []survey.AskOpt {
	if d.stdio.In == nil || d.stdio.Out == nil {
		return nil
	}
	errOut := d.stdio.Err
	if errOut == nil {
		errOut = d.stdio.Out
	}
	return []survey.AskOpt{survey.WithStdio(d.stdio.In, d.stdio.Out, errOut)}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	opts := d.opts()
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(stringValidator(cfg.Validator)))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Editor(ctx context.Context, cfg EditorConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Editor{
		Message:       cfg.Message,
		Default:       cfg.Default,
		HideDefault:   true,
		AppendDefault: true,
		Editor:        cfg.Command,
		FileName:      cfg.FileName,
	}
	if err := survey.AskOne(prompt, &out, d.opts()...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func stringValidator(fn func(string) error) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		return fn(s)
	}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
