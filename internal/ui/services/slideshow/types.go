package slideshow

// State is the slideshow deck state. Slides holds section IDs in document
// order; Index is always within [0, len(Slides)-1] while Slides is
// non-empty. The deck is re-derived on every Enter, never carried across
// sessions.
type State struct {
	Slides []string
	Index  int
	Active bool
}
