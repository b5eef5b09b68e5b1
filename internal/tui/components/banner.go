// Package components provides reusable TUI components for flow.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/flow/internal/tui/styles"
)

// BannerArt is the block-letter title.
const BannerArt = `███████╗██╗      ██████╗ ██╗    ██╗██████╗ ██████╗  ██████╗ ███╗   ███╗██████╗ ████████╗
██╔════╝██║     ██╔═══██╗██║    ██║██╔══██╗██╔══██╗██╔═══██╗████╗ ████║██╔══██╗╚══██╔══╝
█████╗  ██║     ██║   ██║██║ █╗ ██║██████╔╝██████╔╝██║   ██║██╔████╔██║██████╔╝   ██║
██╔══╝  ██║     ██║   ██║██║███╗██║██╔═══╝ ██╔══██╗██║   ██║██║╚██╔╝██║██╔═══╝    ██║
██║     ███████╗╚██████╔╝╚███╔███╔╝██║     ██║  ██║╚██████╔╝██║ ╚═╝ ██║██║        ██║
╚═╝     ╚══════╝ ╚═════╝  ╚══╝╚══╝ ╚═╝     ╚═╝  ╚═╝ ╚═════╝ ╚═╝     ╚═╝╚═╝        ╚═╝`

// minBannerRoom is the terminal height needed besides the banner to draw it.
const minBannerRoom = 12

// Banner draws the title art centred above the panes.
type Banner struct {
	width   int
	height  int
	visible bool
}

// NewBanner creates a visible Banner.
func NewBanner() *Banner {
	return &Banner{visible: true}
}

// SetVisible shows or hides the banner.
func (b *Banner) SetVisible(visible bool) {
	b.visible = visible
}

// SetSize sets the terminal size the banner is drawn in.
func (b *Banner) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Height returns the number of lines View occupies.
func (b *Banner) Height() int {
	if !b.shown() {
		return 0
	}
	return strings.Count(BannerArt, "\n") + 1
}

func (b *Banner) shown() bool {
	if !b.visible {
		return false
	}
	if b.height == 0 {
		return true
	}
	art := strings.Count(BannerArt, "\n") + 1
	if b.height < art+minBannerRoom {
		return false
	}
	return b.width == 0 || b.width >= lipgloss.Width(BannerArt)
}

// View renders the banner, or nothing when hidden or out of room.
func (b *Banner) View() string {
	if !b.shown() {
		return ""
	}
	style := styles.BannerStyle
	if b.width > 0 {
		style = style.Width(b.width).Align(lipgloss.Center)
	}
	return style.Render(BannerArt)
}
