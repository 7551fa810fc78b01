package views

import (
	"deckle/internal/domain"
)

// SidebarRenderer renders the section outline. The active section marker
// is the navigation-highlight consumer of the scroll tracker.
type SidebarRenderer struct {
	styles *Styles
}

// NewSidebarRenderer creates a sidebar renderer
func NewSidebarRenderer(styles *Styles) *SidebarRenderer {
	return &SidebarRenderer{styles: styles}
}

// Render returns one row per section, sized to the given height
func (sr *SidebarRenderer) Render(sections []domain.Fragment, activeID string, height int) []string {
	var rows []string
	rows = append(rows, sr.styles.Dim.Render("Outline"))
	for _, sec := range sections {
		marker := "  "
		style := sr.styles.SidebarItem
		if sec.ID == activeID {
			marker = "> "
			style = sr.styles.ActiveItem
		}
		rows = append(rows, marker+style.Render(truncate(sec.Title, 18)))
		if len(rows) >= height {
			break
		}
	}
	return rows
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
