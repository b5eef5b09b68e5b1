// Package tui provides the terminal user interface for flow: the prompt
// selector and the fuzzy finder.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/flow/internal/logging"
	"github.com/wexinc/flow/internal/prompt"
	"github.com/wexinc/flow/internal/tui/components"
)

// Pane titles.
const (
	ListTitle    = " Prompts "
	PreviewTitle = " Preview "
)

// DefaultListWidth is the share of the width given to the alias list, in
// percent.
const DefaultListWidth = 30

// Options configures the selector and finder screens.
type Options struct {
	// ShowBanner draws the title art above the panes.
	ShowBanner bool
	// ListWidth is the alias list width in percent of the terminal.
	ListWidth int
	// Logger receives DEBUG transitions. Nil disables logging.
	Logger *logging.Logger
}

func (o Options) logger() *logging.Logger {
	if o.Logger == nil {
		return logging.NewNoop()
	}
	return o.Logger
}

func (o Options) listWidth() int {
	if o.ListWidth < 10 || o.ListWidth > 90 {
		return DefaultListWidth
	}
	return o.ListWidth
}

// SelectorModel is the Bubble Tea model driving a Selector.
type SelectorModel struct {
	selector  *Selector
	keys      selectorKeys
	banner    *components.Banner
	list      *components.List
	preview   *components.Preview
	shortcuts *components.ShortcutBar
	opts      Options
	logger    *logging.Logger

	width  int
	height int
}

// NewSelectorModel creates the selector screen over prompts.
func NewSelectorModel(prompts []prompt.Prompt, opts Options) *SelectorModel {
	keys := newSelectorKeys()
	m := &SelectorModel{
		selector:  NewSelector(prompts),
		keys:      keys,
		banner:    components.NewBanner(),
		list:      components.NewList(),
		preview:   components.NewPreview(),
		shortcuts: components.NewShortcutBar(keys.bindings()...),
		opts:      opts,
		logger:    opts.logger(),
	}
	m.banner.SetVisible(opts.ShowBanner)
	m.list.SetEmptyText("No prompts")
	m.list.SetLabels(m.selector.Aliases())
	m.shortcuts.SetCentered(true)
	m.sync()
	return m
}

// Selector returns the underlying state.
func (m *SelectorModel) Selector() *Selector {
	return m.selector
}

// Init implements tea.Model.
func (m *SelectorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if n := m.keys.scroll(msg); n != 0 {
			if n > 0 {
				m.preview.ScrollDown(n)
			} else {
				m.preview.ScrollUp(-n)
			}
			return m, nil
		}
		k := m.keys.classify(msg)
		before := m.selector.Index()
		outcome := m.selector.Apply(k)
		m.logger.Debug("selector key",
			"key", k.String(),
			"from", before,
			"to", m.selector.Index(),
			"outcome", outcome.String(),
		)
		m.sync()
		if outcome != Active {
			return m, tea.Quit
		}
	}
	return m, nil
}

// sync pushes the selector state into the view components.
func (m *SelectorModel) sync() {
	m.list.SetSelected(m.selector.Index())
	if p, ok := m.selector.Highlighted(); ok {
		m.preview.SetPrompt(&p)
	} else {
		m.preview.SetPrompt(nil)
	}
}

// View implements tea.Model.
func (m *SelectorModel) View() string {
	if m.selector.Outcome() != Active {
		return ""
	}

	width, height := m.width, m.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	m.banner.SetSize(width, height)
	m.shortcuts.SetWidth(width)

	bannerView := m.banner.View()
	footer := m.shortcuts.View()

	paneHeight := height - lipgloss.Height(footer)
	if bannerView != "" {
		paneHeight -= lipgloss.Height(bannerView)
	}
	if paneHeight < 4 {
		paneHeight = 4
	}

	leftWidth := width * m.opts.listWidth() / 100
	rightWidth := width - leftWidth

	// Border, padding and title take three lines and four columns.
	m.list.SetSize(leftWidth-4, paneHeight-3)
	m.preview.SetSize(rightWidth-4, paneHeight-3)

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Pane(ListTitle, m.list.View(), leftWidth, paneHeight, true),
		components.Pane(PreviewTitle, m.preview.View(), rightWidth, paneHeight, false),
	)

	sections := []string{}
	if bannerView != "" {
		sections = append(sections, bannerView)
	}
	sections = append(sections, panes, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
