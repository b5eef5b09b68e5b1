package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/flow/internal/tui/styles"
)

// HighlightMarker precedes the highlighted entry.
const HighlightMarker = ">> "

// ListItem is one entry of a List.
type ListItem struct {
	Label string
	// Matched holds byte offsets into Label to emphasise.
	Matched []int
}

// List is a scrollable single column list with one highlighted entry.
type List struct {
	items       []ListItem
	selected    int
	height      int
	width       int
	scrollStart int
	empty       string
}

// NewList creates an empty List.
func NewList() *List {
	return &List{
		selected: -1,
		height:   10,
		empty:    "Nothing to show",
	}
}

// SetItems replaces the entries.
func (l *List) SetItems(items []ListItem) {
	l.items = items
	l.updateScroll()
}

// SetLabels replaces the entries with plain labels.
func (l *List) SetLabels(labels []string) {
	items := make([]ListItem, len(labels))
	for i, label := range labels {
		items[i] = ListItem{Label: label}
	}
	l.SetItems(items)
}

// SetSelected sets the highlighted index; -1 highlights nothing.
func (l *List) SetSelected(index int) {
	l.selected = index
	l.updateScroll()
}

// SetEmptyText sets the text shown when there are no entries.
func (l *List) SetEmptyText(text string) {
	l.empty = text
}

// SetSize sets the visible width and height.
func (l *List) SetSize(width, height int) {
	l.width = width
	if height < 1 {
		height = 1
	}
	l.height = height
	l.updateScroll()
}

// updateScroll keeps the highlighted entry visible.
func (l *List) updateScroll() {
	if l.selected < 0 {
		l.scrollStart = 0
		return
	}
	if l.selected < l.scrollStart {
		l.scrollStart = l.selected
	}
	if l.selected >= l.scrollStart+l.height {
		l.scrollStart = l.selected - l.height + 1
	}
	if l.scrollStart < 0 {
		l.scrollStart = 0
	}
}

// View renders the visible entries.
func (l *List) View() string {
	if len(l.items) == 0 {
		return styles.EmptyStyle.Render(l.empty)
	}

	end := l.scrollStart + l.height
	if end > len(l.items) {
		end = len(l.items)
	}

	lines := make([]string, 0, end-l.scrollStart)
	for i := l.scrollStart; i < end; i++ {
		lines = append(lines, l.renderItem(l.items[i], i == l.selected))
	}
	return strings.Join(lines, "\n")
}

func (l *List) renderItem(item ListItem, highlighted bool) string {
	label := item.Label
	if l.width > 0 {
		label = truncate(label, l.width-lipgloss.Width(HighlightMarker))
	}
	label = emphasise(label, item.Matched)

	if highlighted {
		return styles.HighlightStyle.Render(HighlightMarker + label)
	}
	return strings.Repeat(" ", lipgloss.Width(HighlightMarker)) + styles.ItemStyle.Render(label)
}

// emphasise styles the bytes of s at the given offsets.
func emphasise(s string, offsets []int) string {
	if len(offsets) == 0 {
		return s
	}
	marked := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		marked[o] = true
	}
	var sb strings.Builder
	for i, r := range s {
		if marked[i] {
			sb.WriteString(styles.MatchStyle.Render(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// truncate shortens s to at most max runes, ending in "…" when cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
