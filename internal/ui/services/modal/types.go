package modal

import "time"

// Phase is the lifecycle phase of one modal. Opening and Closing are
// transient, time-bounded phases driven by scheduled transitions; Hidden
// and Visible are stable.
type Phase int

const (
	Hidden Phase = iota
	Opening
	Visible
	Closing
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Visible:
		return "visible"
	case Closing:
		return "closing"
	default:
		return "hidden"
	}
}

// Transition is a scheduled phase change. The caller turns it into a timer
// (a tea.Tick in the UI) and feeds it back through Advance after After has
// elapsed. Gen invalidates timers that a later Open/Close superseded.
type Transition struct {
	ID    string
	Gen   int
	To    Phase
	After time.Duration
}

// Animation windows. Opening settles on the next render frame so entry
// styling starts from a consistent layout; Closing holds for the exit
// animation before the modal reaches Hidden.
const (
	OpenSettle  = 16 * time.Millisecond
	CloseWindow = 200 * time.Millisecond
)
