package tui

import (
	"github.com/wexinc/flow/internal/prompt"
)

// Key is a key event as the selector understands it.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyCancel
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyCancel:
		return "cancel"
	default:
		return "other"
	}
}

// Outcome is the state of a selector session.
type Outcome int

const (
	// Active means the user is still browsing.
	Active Outcome = iota
	// Selected means the user picked the highlighted prompt.
	Selected
	// Cancelled means the user left without picking.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Cancelled:
		return "cancelled"
	default:
		return "active"
	}
}

// NoSelection is the index when nothing is highlighted.
const NoSelection = -1

// Selector is the browsing state over a snapshot of prompts.
//
// The highlighted index stays within [0, len) while there are prompts and
// is NoSelection otherwise. Once the outcome is Selected or Cancelled the
// state no longer changes.
type Selector struct {
	prompts []prompt.Prompt
	index   int
	outcome Outcome
	chosen  string
}

// NewSelector creates an Active selector over a copy of prompts with the
// first entry highlighted.
func NewSelector(prompts []prompt.Prompt) *Selector {
	snapshot := make([]prompt.Prompt, len(prompts))
	for i, p := range prompts {
		snapshot[i] = p.Clone()
	}

	index := NoSelection
	if len(snapshot) > 0 {
		index = 0
	}
	return &Selector{prompts: snapshot, index: index}
}

// Apply performs the transition for k and returns the resulting outcome.
func (s *Selector) Apply(k Key) Outcome {
	if s.outcome != Active {
		return s.outcome
	}

	n := len(s.prompts)
	switch k {
	case KeyDown:
		if n > 0 {
			s.index = (s.index + 1) % n
		}
	case KeyUp:
		if n > 0 {
			s.index = (s.index - 1 + n) % n
		}
	case KeyEnter:
		if n > 0 {
			s.outcome = Selected
			s.chosen = s.prompts[s.index].Alias
		}
	case KeyCancel:
		s.outcome = Cancelled
	}
	return s.outcome
}

// Index returns the highlighted index or NoSelection.
func (s *Selector) Index() int {
	return s.index
}

// Outcome returns the current outcome.
func (s *Selector) Outcome() Outcome {
	return s.outcome
}

// Alias returns the selected alias once the outcome is Selected.
func (s *Selector) Alias() (string, bool) {
	if s.outcome != Selected {
		return "", false
	}
	return s.chosen, true
}

// Highlighted returns the highlighted prompt, if any.
func (s *Selector) Highlighted() (prompt.Prompt, bool) {
	if s.index == NoSelection {
		return prompt.Prompt{}, false
	}
	return s.prompts[s.index], true
}

// Aliases returns the aliases in display order.
func (s *Selector) Aliases() []string {
	aliases := make([]string, len(s.prompts))
	for i, p := range s.prompts {
		aliases[i] = p.Alias
	}
	return aliases
}

// Len returns the number of prompts.
func (s *Selector) Len() int {
	return len(s.prompts)
}
