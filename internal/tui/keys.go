package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// previewScrollStep is the number of preview lines moved per scroll key.
const previewScrollStep = 3

// selectorKeys are the bindings of the selector screen.
type selectorKeys struct {
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
	Cancel     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

func newSelectorKeys() selectorKeys {
	return selectorKeys{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "use"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

// scroll returns the preview scroll for msg: negative up, positive down,
// zero for keys that do not scroll.
func (k selectorKeys) scroll(msg tea.KeyMsg) int {
	switch {
	case key.Matches(msg, k.ScrollUp):
		return -previewScrollStep
	case key.Matches(msg, k.ScrollDown):
		return previewScrollStep
	default:
		return 0
	}
}

// classify maps a key message to a selector Key.
func (k selectorKeys) classify(msg tea.KeyMsg) Key {
	switch {
	case key.Matches(msg, k.Up):
		return KeyUp
	case key.Matches(msg, k.Down):
		return KeyDown
	case key.Matches(msg, k.Enter):
		return KeyEnter
	case key.Matches(msg, k.Cancel):
		return KeyCancel
	default:
		return KeyOther
	}
}

func (k selectorKeys) bindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.ScrollDown, k.Cancel}
}

// finderKeys are the bindings of the search screen. Letters go to the query,
// so q does not cancel here.
type finderKeys struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Cancel key.Binding
}

func newFinderKeys() finderKeys {
	return finderKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "use"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k finderKeys) classify(msg tea.KeyMsg) Key {
	switch {
	case key.Matches(msg, k.Up):
		return KeyUp
	case key.Matches(msg, k.Down):
		return KeyDown
	case key.Matches(msg, k.Enter):
		return KeyEnter
	case key.Matches(msg, k.Cancel):
		return KeyCancel
	default:
		return KeyOther
	}
}

func (k finderKeys) bindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Cancel}
}
