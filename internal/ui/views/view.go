package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"deckle/internal/domain"
	"deckle/internal/search"
	"deckle/internal/ui/services/modal"
	"deckle/internal/ui/services/scroll"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Document       *domain.Document
	DocLines       []string
	Offset         int
	ViewportHeight int

	Sections      []domain.Fragment
	Snapshot      scroll.Snapshot
	SidebarHidden bool
	ShowProgress  bool
	StatusMessage string

	SlideshowActive bool
	SlideIndex      int
	SlideCount      int
	CurrentSlideID  string

	SearchPhase     modal.Phase
	HelpPhase       modal.Phase
	SearchInput     string
	SearchQuery     string
	SearchResults   []search.Entry
	SelectedResult  int
}

// Renderer handles all view rendering
type Renderer struct {
	styles   *Styles
	document *DocumentRenderer
	sidebar  *SidebarRenderer
	popup    *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:   styles,
		document: NewDocumentRenderer(styles),
		sidebar:  NewSidebarRenderer(styles),
		popup:    NewPopupRenderer(styles),
	}
}

// Styles exposes the style set for callers that render fragments directly
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Document returns the document renderer used for layout
func (r *Renderer) Document() *DocumentRenderer {
	return r.document
}

// Render produces the full frame
func (r *Renderer) Render(vs ViewState) string {
	if vs.Width == 0 {
		return "loading..."
	}

	var body string
	if vs.SlideshowActive {
		body = r.renderSlide(vs)
	} else {
		body = r.renderScroll(vs)
	}

	frame := r.renderHeader(vs) + "\n" + body + "\n" + r.renderFooter(vs)

	// Modal overlays sit on top of whatever mode the page is in
	if vs.SearchPhase == modal.Opening || vs.SearchPhase == modal.Visible {
		frame = r.popup.RenderPopupOverlay(frame, r.renderSearchModal(vs), vs.Width, vs.Height)
	} else if vs.HelpPhase == modal.Opening || vs.HelpPhase == modal.Visible {
		frame = r.popup.RenderPopupOverlay(frame, r.renderHelpModal(), vs.Width, vs.Height)
	}

	return frame
}

func (r *Renderer) renderHeader(vs ViewState) string {
	title := "deckle"
	if vs.Document != nil && vs.Document.Meta.Title != "" {
		title = vs.Document.Meta.Title
	}
	left := r.styles.Title.Render(title)

	right := ""
	if vs.SlideshowActive {
		right = r.styles.SlideCounter.Render(fmt.Sprintf("%d/%d", vs.SlideIndex+1, vs.SlideCount))
	} else if vs.Snapshot.ActiveSectionID != "" {
		right = r.styles.Dim.Render(vs.Snapshot.ActiveSectionID)
	}

	gap := vs.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderScroll(vs ViewState) string {
	rows := viewportRows(vs.DocLines, vs.Offset, vs.ViewportHeight)
	doc := strings.Join(rows, "\n")

	if vs.SidebarHidden {
		return doc
	}

	sidebarRows := r.sidebar.Render(vs.Sections, vs.Snapshot.ActiveSectionID, vs.ViewportHeight)
	sidebar := r.styles.Sidebar.Render(strings.Join(sidebarRows, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, doc)
}

func (r *Renderer) renderSlide(vs ViewState) string {
	lines := r.document.Slide(vs.Document, vs.CurrentSlideID, vs.Width-4)
	slide := strings.Join(lines, "\n")

	dots := make([]string, 0, vs.SlideCount)
	for i := 0; i < vs.SlideCount; i++ {
		if i == vs.SlideIndex {
			dots = append(dots, r.styles.SlideCounter.Render("●"))
		} else {
			dots = append(dots, r.styles.Dim.Render("·"))
		}
	}
	indicator := strings.Join(dots, " ")

	content := slide + "\n\n" + indicator
	return lipgloss.Place(vs.Width, vs.ViewportHeight, lipgloss.Center, lipgloss.Center, content)
}

func (r *Renderer) renderFooter(vs ViewState) string {
	var parts []string

	if vs.ShowProgress && !vs.SlideshowActive {
		parts = append(parts, r.renderProgressBar(vs.Snapshot.ProgressPercent, 20))
	}
	if vs.Snapshot.ShowBackToTop && !vs.SlideshowActive {
		parts = append(parts, r.styles.Dim.Render("gg back to top"))
	}
	if vs.StatusMessage != "" {
		parts = append(parts, r.styles.Status.Render(vs.StatusMessage))
	}

	hints := "ctrl+k search · t outline · s slides · ? help · q quit"
	if vs.SlideshowActive {
		hints = "←/→ navigate · esc exit slides"
	}
	parts = append(parts, r.styles.Help.Render(hints))

	return strings.Join(parts, "  ")
}

func (r *Renderer) renderProgressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := r.styles.ProgressFill.Render(strings.Repeat("█", filled)) +
		r.styles.Progress.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, percent)
}

const maxVisibleResults = 8

func (r *Renderer) renderSearchModal(vs ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Section.Render("Search"))
	b.WriteString("\n")
	b.WriteString(vs.SearchInput)
	b.WriteString("\n\n")

	switch {
	case len([]rune(strings.TrimSpace(vs.SearchQuery))) < search.MinQueryLen:
		b.WriteString(r.styles.Dim.Render("Type at least 2 characters"))
	case len(vs.SearchResults) == 0:
		b.WriteString(r.styles.Dim.Render("No matches"))
	default:
		mark := func(s string) string { return r.styles.Match.Render(s) }
		for i, e := range vs.SearchResults {
			if i >= maxVisibleResults {
				b.WriteString(r.styles.Dim.Render(fmt.Sprintf("… %d more", len(vs.SearchResults)-maxVisibleResults)))
				break
			}
			row := fmt.Sprintf("%s  %s",
				search.Highlight(e.Title, strings.TrimSpace(vs.SearchQuery), mark),
				r.styles.CardTag.Render(string(e.Type)))
			if i == vs.SelectedResult {
				row = r.styles.SelectedRow.Render("> " + row)
			} else {
				row = "  " + row
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) renderHelpModal() string {
	key := r.styles.CardTitle.Render
	desc := r.styles.Body.Render

	var b strings.Builder
	b.WriteString(r.styles.Section.Render("Keys"))
	b.WriteString("\n\n")
	rows := []struct{ k, d string }{
		{"ctrl+k", "open search"},
		{"esc", "close panels / exit slides"},
		{"t", "toggle outline sidebar"},
		{"s", "toggle slideshow"},
		{"←/→ ↑/↓", "previous/next slide (in slideshow)"},
		{"j/k ↑/↓", "scroll"},
		{"gg/G", "top / bottom"},
		{"?", "this panel"},
		{"q", "quit"},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n", key(fmt.Sprintf("%-9s", row.k)), desc(row.d)))
	}
	return b.String()
}

// viewportRows slices the document rows to the visible window
func viewportRows(lines []string, offset, height int) []string {
	if height < 1 {
		height = 1
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(lines) {
		offset = len(lines)
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	out := make([]string, 0, height)
	out = append(out, lines[offset:end]...)
	for len(out) < height {
		out = append(out, "")
	}
	return out
}
