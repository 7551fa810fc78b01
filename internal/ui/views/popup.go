package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{styles: styles}
}

// RenderPopupOverlay draws a popup centered over the main content. The
// background is desaturated so the overlay reads as the primary surface;
// rows covered by the popup are replaced whole, which keeps the result
// stable across terminals without cell-level compositing.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, width, height int) string {
	styledPopup := pr.styles.Popup.Render(popupContent)

	popupLines := strings.Split(styledPopup, "\n")
	modalH := len(popupLines)
	if modalH > height-2 {
		popupLines = popupLines[:height-2]
		modalH = len(popupLines)
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	base = base[:height]

	for i, pl := range popupLines {
		row := y + i
		if row >= len(base) {
			break
		}
		base[row] = lipgloss.PlaceHorizontal(width, lipgloss.Center, pl)
	}

	return strings.Join(base, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		plain := ansiRE.ReplaceAllString(line, "")
		out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
	}
	return strings.Join(out, "\n")
}
