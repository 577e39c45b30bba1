package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/econplay/econquiz/internal/ui/theme"
)

const bannerArt = `
███████╗ ██████╗ ██████╗ ███╗   ██╗ ██████╗ ██╗   ██╗██╗███████╗
██╔════╝██╔════╝██╔═══██╗████╗  ██║██╔═══██╗██║   ██║██║╚══███╔╝
█████╗  ██║     ██║   ██║██╔██╗ ██║██║   ██║██║   ██║██║  ███╔╝
██╔══╝  ██║     ██║   ██║██║╚██╗██║██║▄▄ ██║██║   ██║██║ ███╔╝
███████╗╚██████╗╚██████╔╝██║ ╚████║╚██████╔╝╚██████╔╝██║███████╗
╚══════╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝ ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "E C O N Q U I Z"

// RenderBanner returns the ECONQUIZ banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 68 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 68 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
