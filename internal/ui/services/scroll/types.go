package scroll

// SectionOffset places one section in the rendered document
type SectionOffset struct {
	ID  string
	Top int // first row of the section heading
}

// Snapshot is the scroll-derived view state for one tracking tick. It is
// recomputed from geometry on demand and discarded after use.
type Snapshot struct {
	ActiveSectionID string // empty when no section has crossed the activation line
	ProgressPercent float64
	ShowBackToTop   bool
}

// Default thresholds, in rendered rows. They are the terminal analogue of
// the web layout's 100px activation line and 300px back-to-top distance.
const (
	DefaultActivationOffset = 3
	DefaultBackToTopOffset  = 10
)
