package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/wexinc/flow/internal/prompt"
	"github.com/wexinc/flow/internal/tui/styles"
)

// EmptyPreviewText is shown when there is no prompt to preview.
const EmptyPreviewText = "No Prompts Found"

// Preview shows every field of one prompt. The template body is never
// cut; when it is taller than the pane the preview scrolls.
type Preview struct {
	viewport viewport.Model
	prompt   *prompt.Prompt
	shown    string
	width    int
	height   int
}

// NewPreview creates an empty Preview.
func NewPreview() *Preview {
	return &Preview{viewport: viewport.New(0, 0)}
}

// SetPrompt sets the prompt to show; nil shows the empty text.
// Switching to another prompt scrolls back to the top.
func (p *Preview) SetPrompt(pr *prompt.Prompt) {
	p.prompt = pr
	id := ""
	if pr != nil {
		id = pr.ID + "\x00" + pr.Alias
	}
	if id != p.shown {
		p.shown = id
		p.refresh()
		p.viewport.GotoTop()
		return
	}
	p.refresh()
}

// SetSize sets the visible width and height. Zero means unlimited.
func (p *Preview) SetSize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	p.viewport.Width = width
	p.viewport.Height = height
	p.refresh()
}

// ScrollDown moves the template down by n lines.
func (p *Preview) ScrollDown(n int) {
	p.viewport.LineDown(n)
}

// ScrollUp moves the template up by n lines.
func (p *Preview) ScrollUp(n int) {
	p.viewport.LineUp(n)
}

// Offset returns the index of the first visible line.
func (p *Preview) Offset() int {
	return p.viewport.YOffset
}

// Lines returns the unstyled preview content, one entry per line.
func (p *Preview) Lines() []string {
	if p.prompt == nil {
		return []string{EmptyPreviewText}
	}
	lines := []string{
		"Alias: " + p.prompt.Alias,
		"Description: " + p.prompt.Description,
		"Tags: " + p.prompt.TagString(),
		"",
		"Template:",
	}
	return append(lines, strings.Split(p.prompt.Template, "\n")...)
}

// View renders the preview.
func (p *Preview) View() string {
	if p.height <= 0 {
		return p.content()
	}
	return p.viewport.View()
}

func (p *Preview) refresh() {
	p.viewport.SetContent(p.content())
}

func (p *Preview) content() string {
	if p.prompt == nil {
		return styles.EmptyStyle.Render(EmptyPreviewText)
	}

	field := func(label, value string) string {
		return styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(p.clip(value, len(label)+2))
	}
	lines := []string{
		field("Alias", p.prompt.Alias),
		field("Description", p.prompt.Description),
		field("Tags", p.prompt.TagString()),
		"",
		styles.LabelStyle.Render("Template:"),
	}
	for _, line := range strings.Split(p.prompt.Template, "\n") {
		lines = append(lines, styles.TemplateStyle.Render(p.clip(line, 0)))
	}
	return strings.Join(lines, "\n")
}

func (p *Preview) clip(s string, used int) string {
	if p.width <= 0 {
		return s
	}
	return truncate(s, p.width-used)
}
