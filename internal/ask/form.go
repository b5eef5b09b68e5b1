package ask

import (
	"context"
	"errors"
	"strings"

	flowerrors "github.com/wexinc/flow/internal/errors"
	"github.com/wexinc/flow/internal/prompt"
)

// TemplateHint seeds the editor when writing a new template.
const TemplateHint = "# Enter your prompt template here. Lines starting with # are ignored."

// FormOptions controls which fields AddForm asks for.
type FormOptions struct {
	// Alias skips the alias question when set.
	Alias string
	// Tags skips the tags question when non-nil.
	Tags []string
	// EditorCommand overrides the editor used for the template.
	EditorCommand string
	// Exists reports whether an alias is already taken.
	Exists func(alias string) bool
}

// AddForm asks for the fields of a new prompt. The template is written in
// an editor; comment lines are removed and an empty result is rejected.
func AddForm(ctx context.Context, d Driver, opts FormOptions) (prompt.Prompt, error) {
	var p prompt.Prompt

	alias := strings.TrimSpace(opts.Alias)
	if alias == "" {
		answer, err := d.Input(ctx, InputConfig{
			Message:   "Alias (short name):",
			Validator: aliasValidator(opts.Exists),
		})
		if err != nil {
			return p, err
		}
		alias = strings.TrimSpace(answer)
	} else if opts.Exists != nil && opts.Exists(alias) {
		return p, flowerrors.DuplicateAlias(alias)
	}
	p.Alias = alias

	description, err := d.Input(ctx, InputConfig{Message: "Description:"})
	if err != nil {
		return p, err
	}
	p.Description = strings.TrimSpace(description)

	if opts.Tags != nil {
		p.Tags = opts.Tags
	} else {
		tags, err := d.Input(ctx, InputConfig{
			Message: "Tags (comma separated):",
			Help:    "For example: coding, review",
		})
		if err != nil {
			return p, err
		}
		p.Tags = prompt.ParseTags(tags)
	}

	text, err := d.Editor(ctx, EditorConfig{
		Message:  "Template (opens your editor):",
		Default:  TemplateHint,
		Command:  opts.EditorCommand,
		FileName: "*.md",
	})
	if err != nil {
		return p, err
	}
	p.Template = prompt.CleanTemplate(text)
	if p.Template == "" {
		return p, flowerrors.EmptyTemplate()
	}

	return p, nil
}

var errAliasRequired = errors.New("alias is required")

func aliasValidator(exists func(string) bool) func(string) error {
	return func(s string) error {
		alias := strings.TrimSpace(s)
		if alias == "" {
			return errAliasRequired
		}
		if strings.ContainsAny(alias, " \t") {
			return errors.New("alias must not contain spaces")
		}
		if exists != nil && exists(alias) {
			return flowerrors.DuplicateAlias(alias)
		}
		return nil
	}
}
