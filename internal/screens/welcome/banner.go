package welcome

import (
	"charm.land/lipgloss/v2"

	"finmentor/internal/ui/theme"
)

const bannerArt = `
███████╗██╗███╗   ██╗███╗   ███╗███████╗███╗   ██╗████████╗ ██████╗ ██████╗
██╔════╝██║████╗  ██║████╗ ████║██╔════╝████╗  ██║╚══██╔══╝██╔═══██╗██╔══██╗
█████╗  ██║██╔██╗ ██║██╔████╔██║█████╗  ██╔██╗ ██║   ██║   ██║   ██║██████╔╝
██╔══╝  ██║██║╚██╗██║██║╚██╔╝██║██╔══╝  ██║╚██╗██║   ██║   ██║   ██║██╔══██╗
██║     ██║██║ ╚████║██║ ╚═╝ ██║███████╗██║ ╚████║   ██║   ╚██████╔╝██║  ██║
╚═╝     ╚═╝╚═╝  ╚═══╝╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝`

const bannerCompact = "F I N M E N T O R"

// RenderBanner returns the FINMENTOR banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the full art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 78 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
