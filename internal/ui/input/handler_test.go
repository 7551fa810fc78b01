package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckle/internal/ui/input/types"
)

type fakeContext struct {
	slideshow bool
	modalOpen bool
	results   int
}

func (c *fakeContext) SlideshowActive() bool { return c.slideshow }
func (c *fakeContext) AnyModalOpen() bool    { return c.modalOpen }
func (c *fakeContext) ResultCount() int      { return c.results }

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func actionTypes(actions []types.Action) []string {
	var out []string
	for _, a := range actions {
		out = append(out, a.Type())
	}
	return out
}

func TestCtrlKOpensSearchAndFocusesInput(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlK}, &fakeContext{})

	assert.Contains(t, actionTypes(actions), "open_search")
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.True(t, h.TextInput().Focused(), "search input should take focus")
}

func TestPrintableShortcutsDispatchInNormalMode(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(keyRune('t'), &fakeContext{})
	assert.Equal(t, []string{"toggle_sidebar"}, actionTypes(actions))

	actions, _ = h.HandleKey(keyRune('s'), &fakeContext{})
	assert.Equal(t, []string{"toggle_slideshow"}, actionTypes(actions))
}

func TestPrintableShortcutsSuppressedWhileTyping(t *testing.T) {
	h := New()
	h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlK}, &fakeContext{})
	require.Equal(t, types.ModeSearch, h.CurrentMode())

	// "t" and "s" are plain text while the search input has focus
	actions, _ := h.HandleKey(keyRune('t'), &fakeContext{})
	assert.Equal(t, []string{"update_query"}, actionTypes(actions))

	actions, _ = h.HandleKey(keyRune('s'), &fakeContext{})
	assert.Equal(t, []string{"update_query"}, actionTypes(actions))
	assert.Equal(t, "ts", h.TextInput().Value())
}

func TestEscapeNeverSuppressed(t *testing.T) {
	h := New()
	h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlK}, &fakeContext{})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, &fakeContext{modalOpen: true})
	assert.Contains(t, actionTypes(actions), "close_modals")
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.False(t, h.TextInput().Focused())
}

func TestEscapeClosesModalsBeforeSlideshow(t *testing.T) {
	h := New()

	// Modal up: global dismiss
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, &fakeContext{modalOpen: true, slideshow: true})
	assert.Equal(t, []string{"close_modals"}, actionTypes(actions))

	// Nothing up but slideshow running: exit slideshow
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, &fakeContext{slideshow: true})
	assert.Equal(t, []string{"exit_slideshow"}, actionTypes(actions))

	// Nothing at all: consumed, no action
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, &fakeContext{})
	assert.Empty(t, actions)
}

func TestArrowsNavigateSlidesOnlyWhileActive(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, &fakeContext{slideshow: true})
	require.Len(t, actions, 1)
	assert.Equal(t, types.SlideNavAction{Delta: 1}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, &fakeContext{slideshow: true})
	require.Len(t, actions, 1)
	assert.Equal(t, types.SlideNavAction{Delta: -1}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, &fakeContext{slideshow: true})
	require.Len(t, actions, 1)
	assert.Equal(t, types.SlideNavAction{Delta: 1}, actions[0])

	// Slideshow inactive: left/right fall through untouched (default action)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, &fakeContext{})
	assert.Empty(t, actions)

	// Up/down scroll the viewport instead
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, &fakeContext{})
	require.Len(t, actions, 1)
	assert.Equal(t, types.ScrollAction{Direction: "down"}, actions[0])
}

func TestEnterJumpsToResultAndClosesSearch(t *testing.T) {
	h := New()
	h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlK}, &fakeContext{})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, &fakeContext{results: 2})
	got := actionTypes(actions)
	assert.Contains(t, got, "jump_to_result")
	assert.Contains(t, got, "close_modals")
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestEnterWithNoResultsStaysInSearch(t *testing.T) {
	h := New()
	h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlK}, &fakeContext{})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, &fakeContext{results: 0})
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
}

func TestUnrecognizedKeysAreIgnored(t *testing.T) {
	h := New()
	actions, cmd := h.HandleKey(keyRune('x'), &fakeContext{})
	assert.Empty(t, actions)
	assert.Nil(t, cmd)
}
