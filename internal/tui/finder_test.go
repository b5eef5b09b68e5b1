package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/wexinc/flow/internal/prompt"
)

func finderPrompts() []prompt.Prompt {
	return []prompt.Prompt{
		{Alias: "review", Description: "Review a pull request"},
		{Alias: "summarize", Description: "Summarize text"},
		{Alias: "translate", Description: ""},
	}
}

func TestSearchLine(t *testing.T) {
	if got := SearchLine(prompt.Prompt{Alias: "a", Description: "d"}); got != "a | d" {
		t.Errorf("SearchLine() = %q", got)
	}
	if got := SearchLine(prompt.Prompt{Alias: "a"}); got != "a" {
		t.Errorf("SearchLine() without description = %q", got)
	}
}

func TestFinderListsAllInitially(t *testing.T) {
	m := NewFinderModel(finderPrompts(), Options{})
	if diff := cmp.Diff([]string{"review", "summarize", "translate"}, m.Matches()); diff != "" {
		t.Errorf("Matches() mismatch (-want +got):\n%s", diff)
	}
}

func TestFinderFilters(t *testing.T) {
	m := NewFinderModel(finderPrompts(), Options{})
	for _, r := range "sum" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.Query() != "sum" {
		t.Fatalf("Query() = %q, want sum", m.Query())
	}
	got := m.Matches()
	if len(got) == 0 || got[0] != "summarize" {
		t.Errorf("Matches() = %v, want summarize first", got)
	}

	for range "sum" {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	if len(m.Matches()) != 3 {
		t.Errorf("clearing the query should list everything, got %v", m.Matches())
	}
}

func TestFinderNoMatches(t *testing.T) {
	m := NewFinderModel(finderPrompts(), Options{})
	m.Update(runes("zzzz"))
	if len(m.Matches()) != 0 {
		t.Fatalf("Matches() = %v, want none", m.Matches())
	}
	m.Update(keyEnter)
	if m.Outcome() != Active {
		t.Error("enter with no match should not select")
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		keys      []tea.Msg
		wantAlias string
		wantOK    bool
	}{
		{
			name:      "enter picks best match",
			keys:      []tea.Msg{runes("tr"), keyEnter},
			wantAlias: "translate",
			wantOK:    true,
		},
		{
			name:      "navigation wraps",
			keys:      []tea.Msg{keyUp, keyEnter},
			wantAlias: "translate",
			wantOK:    true,
		},
		{
			name:      "down moves",
			keys:      []tea.Msg{keyDown, keyEnter},
			wantAlias: "summarize",
			wantOK:    true,
		},
		{
			name:   "q is typed not cancel",
			keys:   []tea.Msg{runes("q"), keyEsc},
			wantOK: false,
		},
		{
			name:   "ctrl+c cancels",
			keys:   []tea.Msg{keyCtrlC, keyEnter},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &scriptedSession{keys: tt.keys}
			alias, ok, err := Find(context.Background(), session, finderPrompts(), Options{})
			if err != nil {
				t.Fatalf("Find() error = %v", err)
			}
			if ok != tt.wantOK || alias != tt.wantAlias {
				t.Errorf("Find() = %q, %v; want %q, %v", alias, ok, tt.wantAlias, tt.wantOK)
			}
		})
	}
}
