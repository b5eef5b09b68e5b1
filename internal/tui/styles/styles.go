// Package styles provides Lip Gloss styles for the flow TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#C026D3") // Magenta
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Banner styles.
var (
	// BannerStyle renders the block-letter banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Pane styles.
var (
	// PaneStyle is a bordered pane.
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedPaneStyle is the pane holding the cursor.
	FocusedPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	// PaneTitleStyle is for the title drawn above a pane.
	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true)
)

// List styles.
var (
	// ItemStyle is an unhighlighted list entry.
	ItemStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// HighlightStyle is the highlighted list entry.
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// MatchStyle marks characters matched by a fuzzy search.
	MatchStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Underline(true)
)

// Preview styles.
var (
	// LabelStyle is for field labels in the preview pane.
	LabelStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// ValueStyle is for field values in the preview pane.
	ValueStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// TemplateStyle is for the template body.
	TemplateStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// EmptyStyle is for placeholder text in empty panes.
	EmptyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)
)

// Text styles.
var (
	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)
)

// Shortcut bar styles.
var (
	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)
