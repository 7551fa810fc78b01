package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckle/internal/domain"
)

func sampleDocument() *domain.Document {
	return &domain.Document{
		Meta: domain.Meta{Title: "How AI Changed My Workflow", Author: "Dan Shipper", Date: "2026-08-01"},
		Fragments: []domain.Fragment{
			{ID: "overview", Type: domain.FragmentSection, Title: "Overview", Body: "A talk about working with AI tools."},
			{ID: "speakers", Type: domain.FragmentSection, Title: "Speakers"},
			{ID: "dan-shipper", Type: domain.FragmentSpeaker, Title: "Dan Shipper", Body: "CEO of Every.", Parent: "speakers"},
			{ID: "closing", Type: domain.FragmentSection, Title: "Closing", Body: "Questions welcome."},
		},
	}
}

func TestLayoutRecordsSectionRowsInOrder(t *testing.T) {
	dr := NewDocumentRenderer(NewStyles())
	lines, offsets := dr.Layout(sampleDocument(), 80)

	require.Len(t, offsets, 3)
	assert.Equal(t, "overview", offsets[0].ID)
	assert.Equal(t, "speakers", offsets[1].ID)
	assert.Equal(t, "closing", offsets[2].ID)

	// Offsets are strictly increasing and inside the rendered rows
	for i, off := range offsets {
		if i > 0 {
			assert.Greater(t, off.Top, offsets[i-1].Top)
		}
		require.Less(t, off.Top, len(lines))
		assert.Contains(t, lines[off.Top], stripTitle(sampleDocument(), off.ID))
	}
}

func stripTitle(doc *domain.Document, id string) string {
	f, _ := doc.FragmentByID(id)
	return f.Title
}

func TestLayoutStartsWithTitleAndByline(t *testing.T) {
	dr := NewDocumentRenderer(NewStyles())
	lines, offsets := dr.Layout(sampleDocument(), 80)

	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "How AI Changed My Workflow")
	assert.Contains(t, lines[1], "Dan Shipper")
	// First section never lands on row zero when the document has a title
	assert.Greater(t, offsets[0].Top, 0)
}

func TestLayoutNilDocument(t *testing.T) {
	dr := NewDocumentRenderer(NewStyles())
	lines, offsets := dr.Layout(nil, 80)
	assert.Nil(t, lines)
	assert.Nil(t, offsets)
}

func TestSlideRendersOnlyItsSection(t *testing.T) {
	dr := NewDocumentRenderer(NewStyles())
	lines := dr.Slide(sampleDocument(), "speakers", 80)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Speakers")
	assert.Contains(t, joined, "Dan Shipper")
	assert.NotContains(t, joined, "Overview")
	assert.NotContains(t, joined, "Closing")
}

func TestSlideUnknownSectionIsEmpty(t *testing.T) {
	dr := NewDocumentRenderer(NewStyles())
	assert.Empty(t, dr.Slide(sampleDocument(), "no-such-section", 80))
}

func TestSidebarMarksActiveSection(t *testing.T) {
	sr := NewSidebarRenderer(NewStyles())
	rows := sr.Render(sampleDocument().Sections(), "speakers", 10)

	require.Len(t, rows, 4) // header + three sections
	assert.Contains(t, rows[0], "Outline")
	assert.True(t, strings.HasPrefix(rows[2], "> "))
	assert.True(t, strings.HasPrefix(rows[1], "  "))
	assert.True(t, strings.HasPrefix(rows[3], "  "))
}

func TestSidebarTruncatesLongTitles(t *testing.T) {
	sr := NewSidebarRenderer(NewStyles())
	sections := []domain.Fragment{
		{ID: "s", Type: domain.FragmentSection, Title: "A Very Long Section Title That Overflows"},
	}
	rows := sr.Render(sections, "", 10)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], "…")
	assert.NotContains(t, rows[1], "Overflows")
}

func TestViewportRowsWindowAndPadding(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}

	rows := viewportRows(lines, 1, 3)
	assert.Equal(t, []string{"b", "c", "d"}, rows)

	// Window past the end pads with blanks to keep the frame height stable
	rows = viewportRows(lines, 4, 3)
	assert.Equal(t, []string{"e", "", ""}, rows)

	// Degenerate inputs clamp instead of panicking
	rows = viewportRows(lines, -5, 2)
	assert.Equal(t, []string{"a", "b"}, rows)
	rows = viewportRows(lines, 99, 2)
	assert.Equal(t, []string{"", ""}, rows)
}

func TestRenderShowsSlideCounterInSlideshow(t *testing.T) {
	r := NewRenderer()
	doc := sampleDocument()
	docLines, _ := r.Document().Layout(doc, 60)

	vs := ViewState{
		Width:           80,
		Height:          24,
		Document:        doc,
		DocLines:        docLines,
		ViewportHeight:  22,
		Sections:        doc.Sections(),
		SlideshowActive: true,
		SlideIndex:      1,
		SlideCount:      3,
		CurrentSlideID:  "speakers",
		SidebarHidden:   true,
	}
	out := r.Render(vs)
	assert.Contains(t, out, "2/3")
	assert.Contains(t, out, "esc exit slides")
}

func TestRenderBeforeFirstResize(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "loading...", r.Render(ViewState{}))
}
