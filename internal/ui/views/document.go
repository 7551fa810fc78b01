package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"deckle/internal/domain"
	"deckle/internal/ui/services/scroll"
)

// DocumentRenderer turns the fragment list into styled rows and records
// where each section lands, which is the geometry the scroll tracker reads.
type DocumentRenderer struct {
	styles *Styles
}

// NewDocumentRenderer creates a document renderer
func NewDocumentRenderer(styles *Styles) *DocumentRenderer {
	return &DocumentRenderer{styles: styles}
}

// Layout renders the whole document at the given width. It returns the
// rows and the top row of every section in document order.
func (dr *DocumentRenderer) Layout(doc *domain.Document, width int) ([]string, []scroll.SectionOffset) {
	if doc == nil {
		return nil, nil
	}
	if width < 20 {
		width = 20
	}

	var lines []string
	var offsets []scroll.SectionOffset

	if doc.Meta.Title != "" {
		lines = append(lines, dr.styles.Title.Render(doc.Meta.Title))
		if doc.Meta.Author != "" {
			byline := doc.Meta.Author
			if doc.Meta.Date != "" {
				byline += " · " + doc.Meta.Date
			}
			lines = append(lines, dr.styles.Dim.Render(byline))
		}
		lines = append(lines, "")
	}

	for _, f := range doc.Fragments {
		switch f.Type {
		case domain.FragmentSection:
			offsets = append(offsets, scroll.SectionOffset{ID: f.ID, Top: len(lines)})
			lines = append(lines, dr.styles.Section.Render(f.Title))
			lines = dr.appendBody(lines, f.Body, width, "")
			lines = append(lines, "")

		case domain.FragmentSpeaker, domain.FragmentConcept:
			tag := "concept"
			if f.Type == domain.FragmentSpeaker {
				tag = "speaker"
			}
			header := dr.styles.CardTitle.Render(f.Title) + " " + dr.styles.CardTag.Render("("+tag+")")
			lines = append(lines, "  "+header)
			lines = dr.appendBody(lines, f.Body, width, "  ")
			lines = append(lines, "")
		}
	}

	return lines, offsets
}

// Slide renders a single section (with its cards) as a standalone slide
func (dr *DocumentRenderer) Slide(doc *domain.Document, sectionID string, width int) []string {
	if doc == nil {
		return nil
	}
	var lines []string
	inSection := false
	for _, f := range doc.Fragments {
		if f.IsSection() {
			if inSection {
				break
			}
			if f.ID == sectionID {
				inSection = true
				lines = append(lines, dr.styles.Section.Render(f.Title), "")
				lines = dr.appendBody(lines, f.Body, width, "")
			}
			continue
		}
		if inSection && f.Parent == sectionID {
			lines = append(lines, "")
			lines = append(lines, "  "+dr.styles.CardTitle.Render(f.Title))
			lines = dr.appendBody(lines, f.Body, width, "  ")
		}
	}
	return lines
}

func (dr *DocumentRenderer) appendBody(lines []string, body string, width int, indent string) []string {
	if body == "" {
		return lines
	}
	wrapped := lipgloss.NewStyle().Width(width - len(indent)).Render(body)
	for _, l := range strings.Split(wrapped, "\n") {
		lines = append(lines, indent+dr.styles.Body.Render(l))
	}
	return lines
}
