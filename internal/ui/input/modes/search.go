package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"deckle/internal/ui/input/types"
)

// SearchMode is active while the search modal's input has focus. Printable
// keys land in the text input, which is exactly the focus guard: "t" and
// "s" are typed characters here, never shortcuts.
type SearchMode struct {
	textInput *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyCtrlK:
		// Already open and focused; swallow so it doesn't type a control rune
		return nil, true

	case tea.KeyEsc:
		return []types.Action{
			types.CloseModalsAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case tea.KeyEnter:
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{
			types.JumpToResultAction{},
			types.CloseModalsAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case tea.KeyUp:
		return []types.Action{types.MoveResultAction{Delta: -1}}, true

	case tea.KeyDown:
		return []types.Action{types.MoveResultAction{Delta: 1}}, true
	}

	// Let the main handler feed the key to the text input
	return nil, false
}
