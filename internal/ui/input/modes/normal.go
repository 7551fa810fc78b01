package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"deckle/internal/ui/input/types"
)

// NormalMode is the global dispatch table. Single printable shortcuts
// ("t", "s") only exist here; while the search input has focus the router
// runs SearchMode instead, so typing can never trip them. Ctrl+K and
// Escape are handled in both modes and are never suppressed.
type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyCtrlK:
		return []types.Action{
			types.OpenSearchAction{},
			types.ChangeModeAction{Mode: types.ModeSearch},
		}, true

	case tea.KeyEsc:
		// Global dismiss first; when nothing is up, Esc leaves the slideshow
		if ctx.AnyModalOpen() {
			return []types.Action{types.CloseModalsAction{}}, true
		}
		if ctx.SlideshowActive() {
			return []types.Action{types.ExitSlideshowAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case tea.KeyUp:
		if ctx.SlideshowActive() {
			return []types.Action{types.SlideNavAction{Delta: -1}}, true
		}
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case tea.KeyDown:
		if ctx.SlideshowActive() {
			return []types.Action{types.SlideNavAction{Delta: 1}}, true
		}
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case tea.KeyLeft:
		if ctx.SlideshowActive() {
			return []types.Action{types.SlideNavAction{Delta: -1}}, true
		}
		return nil, false

	case tea.KeyRight:
		if ctx.SlideshowActive() {
			return []types.Action{types.SlideNavAction{Delta: 1}}, true
		}
		return nil, false

	case tea.KeyPgUp:
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.ScrollAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.ScrollAction{Direction: "end"}}, true
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		if ctx.SlideshowActive() {
			return []types.Action{types.SlideNavAction{Delta: 1}}, true
		}
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case "k":
		if ctx.SlideshowActive() {
			return []types.Action{types.SlideNavAction{Delta: -1}}, true
		}
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case "t":
		return []types.Action{types.ToggleSidebarAction{}}, true

	case "s":
		return []types.Action{types.ToggleSlideshowAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.ScrollAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true // consume the key but don't do anything

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.ScrollAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG {
			m.lastKeyWasG = false
		}
	}

	// Unrecognized keys are ignored, no default-prevention
	return nil, false
}
