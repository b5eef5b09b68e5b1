package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/flow/internal/tui/styles"
)

// Pane draws body inside a rounded border with title on the first line.
// width and height are the outer size including the border.
func Pane(title, body string, width, height int, focused bool) string {
	style := styles.PaneStyle
	if focused {
		style = styles.FocusedPaneStyle
	}

	frameW, frameH := style.GetFrameSize()
	innerW := width - frameW
	innerH := height - frameH
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	content := lipgloss.JoinVertical(lipgloss.Left, styles.PaneTitleStyle.Render(title), body)
	return style.
		Width(innerW + style.GetHorizontalPadding()).
		Height(innerH).
		MaxHeight(height).
		Render(content)
}
