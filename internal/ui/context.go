package ui

// inputContext exposes read-only model state to the keyboard router. The
// router never mutates slideshow or modal state through it.
type inputContext struct {
	m *Model
}

func (c inputContext) SlideshowActive() bool {
	return c.m.slideshow.Active()
}

func (c inputContext) AnyModalOpen() bool {
	return c.m.modals.AnyVisible()
}

func (c inputContext) ResultCount() int {
	return len(c.m.state.SearchResults)
}
