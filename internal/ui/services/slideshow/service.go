package slideshow

import (
	"deckle/internal/domain"
)

// Service re-presents the document's sections as a deck of discrete steps.
// Every operation is a no-op, never an error, when the deck is empty; an
// out-of-range Goto saturates at the deck edges so key repeat clamps
// instead of wrapping or failing.
type Service struct {
	state State
}

// NewService creates an inactive slideshow controller
func NewService() *Service {
	return &Service{}
}

// Enter activates the slideshow. The deck is rebuilt from the sections
// passed in (document order) so late-rendered content is picked up, and the
// index seats on activeID — the section the scroll tracker currently
// reports — or 0 when none is active.
func (s *Service) Enter(sections []domain.Fragment, activeID string) {
	s.state.Slides = s.state.Slides[:0]
	for _, sec := range sections {
		if sec.IsSection() {
			s.state.Slides = append(s.state.Slides, sec.ID)
		}
	}

	s.state.Index = 0
	for i, id := range s.state.Slides {
		if id == activeID {
			s.state.Index = i
			break
		}
	}
	s.state.Active = true
}

// Exit deactivates the slideshow. Nothing is remembered; re-entering
// recomputes the deck and index.
func (s *Service) Exit() {
	s.state.Active = false
	s.state.Slides = nil
	s.state.Index = 0
}

// Toggle enters when inactive and exits when active. Two calls with no
// intervening fragment changes restore the original Active value.
func (s *Service) Toggle(sections []domain.Fragment, activeID string) {
	if s.state.Active {
		s.Exit()
		return
	}
	s.Enter(sections, activeID)
}

// Goto moves to the slide at index, clamped into the deck bounds. It
// returns the section ID to scroll into view; ok is false when the deck is
// empty or the slideshow is inactive.
func (s *Service) Goto(index int) (string, bool) {
	if !s.state.Active || len(s.state.Slides) == 0 {
		return "", false
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.state.Slides)-1 {
		index = len(s.state.Slides) - 1
	}
	s.state.Index = index
	return s.state.Slides[index], true
}

// Next advances one slide, saturating at the end of the deck
func (s *Service) Next() (string, bool) {
	return s.Goto(s.state.Index + 1)
}

// Prev steps back one slide, saturating at the start of the deck
func (s *Service) Prev() (string, bool) {
	return s.Goto(s.state.Index - 1)
}

// Active reports whether the slideshow is running
func (s *Service) Active() bool {
	return s.state.Active
}

// Index returns the current slide position
func (s *Service) Index() int {
	return s.state.Index
}

// Count returns the deck size
func (s *Service) Count() int {
	return len(s.state.Slides)
}

// CurrentID returns the section ID of the current slide, or "" for an
// empty deck
func (s *Service) CurrentID() string {
	if len(s.state.Slides) == 0 {
		return ""
	}
	return s.state.Slides[s.state.Index]
}
