package state

import (
	"deckle/internal/domain"
	"deckle/internal/search"
	"deckle/internal/ui/services/scroll"
)

// AppState contains all the application state that is not owned by a
// dedicated service. The slideshow deck and the modal phases live in their
// controllers; everything here is owned by the model.
type AppState struct {
	// Document data
	Path     string
	Document *domain.Document
	Index    []search.Entry

	// Rendered layout
	DocLines       []string // styled document rows
	SectionOffsets []scroll.SectionOffset

	// Viewport state
	Offset         int // first visible document row
	ViewportHeight int
	ViewportWidth  int

	// UI state
	SidebarHidden bool
	ShowProgress  bool
	Snapshot      scroll.Snapshot // last scroll-derived state
	StatusMessage string

	// Search state
	SearchQuery    string
	SearchResults  []search.Entry
	SelectedResult int
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default, updated on first WindowSizeMsg
	}
}

// SetDocument installs a freshly parsed document and rebuilds the search
// index. Layout offsets are recomputed separately by the renderer.
func (s *AppState) SetDocument(doc *domain.Document) {
	s.Document = doc
	s.Index = search.Build(doc.Fragments)
	s.refreshResults()
}

// SetQuery updates the search query and re-runs the matcher
func (s *AppState) SetQuery(query string) {
	s.SearchQuery = query
	s.refreshResults()
}

func (s *AppState) refreshResults() {
	s.SearchResults = search.Search(s.Index, s.SearchQuery)
	if s.SelectedResult >= len(s.SearchResults) {
		s.SelectedResult = 0
	}
}

// MoveResult moves the result selection, clamping at the list edges
func (s *AppState) MoveResult(delta int) {
	if len(s.SearchResults) == 0 {
		s.SelectedResult = 0
		return
	}
	i := s.SelectedResult + delta
	if i < 0 {
		i = 0
	}
	if i > len(s.SearchResults)-1 {
		i = len(s.SearchResults) - 1
	}
	s.SelectedResult = i
}

// SelectedEntry returns the currently selected search result
func (s *AppState) SelectedEntry() (search.Entry, bool) {
	if s.SelectedResult < 0 || s.SelectedResult >= len(s.SearchResults) {
		return search.Entry{}, false
	}
	return s.SearchResults[s.SelectedResult], true
}

// SectionTop returns the rendered row of a section, resolving the ID
// against the current layout. ok is false for stale IDs.
func (s *AppState) SectionTop(id string) (int, bool) {
	for _, sec := range s.SectionOffsets {
		if sec.ID == id {
			return sec.Top, true
		}
	}
	return 0, false
}

// Sections returns the section fragments of the current document
func (s *AppState) Sections() []domain.Fragment {
	if s.Document == nil {
		return nil
	}
	return s.Document.Sections()
}
