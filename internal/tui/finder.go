package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/wexinc/flow/internal/logging"
	"github.com/wexinc/flow/internal/prompt"
	"github.com/wexinc/flow/internal/tui/components"
)

// SearchLine is the text a prompt is matched against in the finder.
func SearchLine(p prompt.Prompt) string {
	if p.Description == "" {
		return p.Alias
	}
	return p.Alias + " | " + p.Description
}

// finderResult is one visible row: an index into the prompts and the
// matched byte offsets of its search line.
type finderResult struct {
	index   int
	matched []int
}

// FinderModel is a fuzzy finder over prompts.
type FinderModel struct {
	prompts []prompt.Prompt
	lines   []string
	results []finderResult
	cursor  int
	outcome Outcome
	chosen  string

	input     textinput.Model
	keys      finderKeys
	list      *components.List
	preview   *components.Preview
	shortcuts *components.ShortcutBar
	opts      Options
	logger    *logging.Logger

	width  int
	height int
}

// NewFinderModel creates a finder with an empty query listing every prompt.
func NewFinderModel(prompts []prompt.Prompt, opts Options) *FinderModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type to search"
	input.Focus()

	keys := newFinderKeys()
	m := &FinderModel{
		input:     input,
		keys:      keys,
		list:      components.NewList(),
		preview:   components.NewPreview(),
		shortcuts: components.NewShortcutBar(keys.bindings()...),
		opts:      opts,
		logger:    opts.logger(),
	}
	for _, p := range prompts {
		m.prompts = append(m.prompts, p.Clone())
		m.lines = append(m.lines, SearchLine(p))
	}
	m.list.SetEmptyText("No matches")
	m.shortcuts.SetCentered(true)
	m.filter()
	return m
}

// Query returns the current search text.
func (m *FinderModel) Query() string {
	return m.input.Value()
}

// Outcome returns the current outcome.
func (m *FinderModel) Outcome() Outcome {
	return m.outcome
}

// Alias returns the picked alias once the outcome is Selected.
func (m *FinderModel) Alias() (string, bool) {
	if m.outcome != Selected {
		return "", false
	}
	return m.chosen, true
}

// Matches returns the aliases currently listed, best match first.
func (m *FinderModel) Matches() []string {
	aliases := make([]string, len(m.results))
	for i, r := range m.results {
		aliases[i] = m.prompts[r.index].Alias
	}
	return aliases
}

// filter recomputes the results for the current query and resets the
// cursor to the best match.
func (m *FinderModel) filter() {
	m.results = m.results[:0]
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		for i := range m.prompts {
			m.results = append(m.results, finderResult{index: i})
		}
	} else {
		for _, match := range fuzzy.Find(query, m.lines) {
			m.results = append(m.results, finderResult{index: match.Index, matched: match.MatchedIndexes})
		}
	}

	m.cursor = NoSelection
	if len(m.results) > 0 {
		m.cursor = 0
	}

	items := make([]components.ListItem, len(m.results))
	for i, r := range m.results {
		items[i] = components.ListItem{Label: m.lines[r.index], Matched: r.matched}
	}
	m.list.SetItems(items)
	m.sync()
}

func (m *FinderModel) sync() {
	m.list.SetSelected(m.cursor)
	if m.cursor == NoSelection {
		m.preview.SetPrompt(nil)
		return
	}
	p := m.prompts[m.results[m.cursor].index]
	m.preview.SetPrompt(&p)
}

// Init implements tea.Model.
func (m *FinderModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *FinderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.outcome != Active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		n := len(m.results)
		switch m.keys.classify(msg) {
		case KeyUp:
			if n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
				m.sync()
			}
			return m, nil
		case KeyDown:
			if n > 0 {
				m.cursor = (m.cursor + 1) % n
				m.sync()
			}
			return m, nil
		case KeyEnter:
			if m.cursor == NoSelection {
				return m, nil
			}
			m.outcome = Selected
			m.chosen = m.prompts[m.results[m.cursor].index].Alias
			m.logger.Debug("finder picked", "alias", m.chosen, "query", m.input.Value())
			return m, tea.Quit
		case KeyCancel:
			m.outcome = Cancelled
			return m, tea.Quit
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.filter()
	}
	return m, cmd
}

// View implements tea.Model.
func (m *FinderModel) View() string {
	if m.outcome != Active {
		return ""
	}

	width, height := m.width, m.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	m.shortcuts.SetWidth(width)
	inputView := m.input.View()
	footer := m.shortcuts.View()

	paneHeight := height - lipgloss.Height(inputView) - lipgloss.Height(footer)
	if paneHeight < 4 {
		paneHeight = 4
	}
	leftWidth := width * m.opts.listWidth() / 100
	if leftWidth < 2*width/5 {
		leftWidth = 2 * width / 5
	}
	rightWidth := width - leftWidth

	m.list.SetSize(leftWidth-4, paneHeight-3)
	m.preview.SetSize(rightWidth-4, paneHeight-3)

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Pane(ListTitle, m.list.View(), leftWidth, paneHeight, true),
		components.Pane(PreviewTitle, m.preview.View(), rightWidth, paneHeight, false),
	)
	return lipgloss.JoinVertical(lipgloss.Left, inputView, panes, footer)
}
