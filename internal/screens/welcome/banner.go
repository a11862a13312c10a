package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/Rakshit-11/CareerFinder/internal/ui/theme"
)

const bannerArt = `
  ██████╗ █████╗ ██████╗ ███████╗███████╗██████╗
 ██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝██╔══██╗
 ██║     ███████║██████╔╝█████╗  █████╗  ██████╔╝
 ██║     ██╔══██║██╔══██╗██╔══╝  ██╔══╝  ██╔══██╗
 ╚██████╗██║  ██║██║  ██║███████╗███████╗██║  ██║
  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝
 ███████╗██╗███╗   ██╗██████╗ ███████╗██████╗
 ██╔════╝██║████╗  ██║██╔══██╗██╔════╝██╔══██╗
 █████╗  ██║██╔██╗ ██║██║  ██║█████╗  ██████╔╝
 ██╔══╝  ██║██║╚██╗██║██║  ██║██╔══╝  ██╔══██╗
 ██║     ██║██║ ╚████║██████╔╝███████╗██║  ██║
 ╚═╝     ╚═╝╚═╝  ╚═══╝╚═════╝ ╚══════╝╚═╝  ╚═╝`

const bannerCompact = "C A R E E R F I N D E R"

// RenderBanner returns the CAREERFINDER banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 52 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
