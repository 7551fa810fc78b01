package scroll

// Service derives the active section, reading progress and back-to-top
// visibility from document geometry. It never touches fragments or the
// screen; callers feed it row geometry and read snapshots back. Snapshot
// has no failure path.
type Service struct {
	sections   []SectionOffset
	docHeight  int
	viewHeight int

	activationOffset int
	backToTopOffset  int
}

// NewService creates a scroll tracker with the default thresholds
func NewService() *Service {
	return &Service{
		activationOffset: DefaultActivationOffset,
		backToTopOffset:  DefaultBackToTopOffset,
	}
}

// SetThresholds overrides the activation and back-to-top row offsets.
// Non-positive values keep the defaults.
func (s *Service) SetThresholds(activation, backToTop int) {
	if activation > 0 {
		s.activationOffset = activation
	}
	if backToTop > 0 {
		s.backToTopOffset = backToTop
	}
}

// SetGeometry replaces the tracked layout. Sections must be in document
// order; callers re-feed geometry whenever the document or viewport changes.
func (s *Service) SetGeometry(sections []SectionOffset, docHeight, viewHeight int) {
	s.sections = sections
	s.docHeight = docHeight
	s.viewHeight = viewHeight
}

// Sections returns the tracked section offsets in document order
func (s *Service) Sections() []SectionOffset {
	return s.sections
}

// MaxOffset returns the largest useful scroll offset for the geometry
func (s *Service) MaxOffset() int {
	max := s.docHeight - s.viewHeight
	if max < 0 {
		return 0
	}
	return max
}

// Snapshot computes the scroll-derived state for the given offset.
//
// The active section is the last one, in document order, whose top row has
// crossed the activation line near the viewport top. Deliberate: when
// sections are packed closer together than the activation offset, the
// later section wins.
func (s *Service) Snapshot(offset int) Snapshot {
	snap := Snapshot{}

	line := offset + s.activationOffset
	for _, sec := range s.sections {
		if sec.Top <= line {
			snap.ActiveSectionID = sec.ID
		}
	}

	// Degenerate geometry (document shorter than viewport) reports 0,
	// never NaN or Inf
	scrollable := s.docHeight - s.viewHeight
	if scrollable > 0 {
		p := 100 * float64(offset) / float64(scrollable)
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		snap.ProgressPercent = p
	}

	snap.ShowBackToTop = offset > s.backToTopOffset
	return snap
}
