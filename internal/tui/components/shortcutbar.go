package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/flow/internal/tui/styles"
)

// ShortcutBar displays the enabled key bindings of the current screen.
type ShortcutBar struct {
	bindings []key.Binding
	width    int
	centered bool
}

// NewShortcutBar creates a ShortcutBar for the given bindings.
func NewShortcutBar(bindings ...key.Binding) *ShortcutBar {
	return &ShortcutBar{bindings: bindings}
}

// SetBindings replaces all bindings.
func (s *ShortcutBar) SetBindings(bindings ...key.Binding) {
	s.bindings = bindings
}

// SetWidth sets the bar width for alignment.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// SetCentered controls whether the bar content is centered.
func (s *ShortcutBar) SetCentered(centered bool) {
	s.centered = centered
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	var parts []string
	for _, b := range s.bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, styles.KeyStyle.Render(h.Key)+styles.HelpStyle.Render(" "+h.Desc))
	}
	if len(parts) == 0 {
		return ""
	}

	sep := lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
	content := strings.Join(parts, sep)

	if s.centered && s.width > 0 {
		return lipgloss.NewStyle().
			Width(s.width).
			Align(lipgloss.Center).
			Render(content)
	}
	return content
}
