package modal

// Service owns one independent state machine per modal identifier. No one
// else mutates modal phases; the keyboard router only reads them. Unknown
// identifiers make every operation a silent no-op.
type Service struct {
	phases map[string]Phase
	gens   map[string]int
}

// NewService creates a modal manager for the given identifiers, all Hidden
func NewService(ids ...string) *Service {
	s := &Service{
		phases: make(map[string]Phase, len(ids)),
		gens:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		s.phases[id] = Hidden
	}
	return s
}

// Phase returns the current phase of a modal; unknown IDs read as Hidden
func (s *Service) Phase(id string) Phase {
	return s.phases[id]
}

// AnyVisible reports whether any modal is away from Hidden. Page scrolling
// stays suspended while this holds.
func (s *Service) AnyVisible() bool {
	for _, p := range s.phases {
		if p != Hidden {
			return true
		}
	}
	return false
}

// Open moves a Hidden modal to Opening and schedules the settle into
// Visible on the next render frame. ok is false when the modal is unknown
// or already on its way up.
func (s *Service) Open(id string) (Transition, bool) {
	p, known := s.phases[id]
	if !known || p == Visible || p == Opening {
		return Transition{}, false
	}
	s.phases[id] = Opening
	s.gens[id]++
	return Transition{ID: id, Gen: s.gens[id], To: Visible, After: OpenSettle}, true
}

// Close moves a Visible or Opening modal to Closing and schedules the drop
// to Hidden after the animation window. Closing an already-Hidden modal is
// an idempotent no-op.
func (s *Service) Close(id string) (Transition, bool) {
	p, known := s.phases[id]
	if !known || p == Hidden || p == Closing {
		return Transition{}, false
	}
	s.phases[id] = Closing
	s.gens[id]++
	return Transition{ID: id, Gen: s.gens[id], To: Hidden, After: CloseWindow}, true
}

// CloseAll closes every known modal. This is the global dismiss: already
// hidden modals stay hidden, the rest get their scheduled drop.
func (s *Service) CloseAll() []Transition {
	var out []Transition
	for id := range s.phases {
		if t, ok := s.Close(id); ok {
			out = append(out, t)
		}
	}
	return out
}

// Advance applies a scheduled transition when its generation is still
// current. A stale generation means a later Open/Close superseded the
// timer, so the tick is dropped — two timers never race for the same
// phase.
func (s *Service) Advance(t Transition) bool {
	if s.gens[t.ID] != t.Gen {
		return false
	}
	if _, known := s.phases[t.ID]; !known {
		return false
	}
	s.phases[t.ID] = t.To
	return true
}
