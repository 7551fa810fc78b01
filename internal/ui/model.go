package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"deckle/internal/config"
	"deckle/internal/content"
	"deckle/internal/domain"
	"deckle/internal/eventbus"
	"deckle/internal/ratelimit"
	"deckle/internal/ui/input"
	inputtypes "deckle/internal/ui/input/types"
	"deckle/internal/ui/services/modal"
	"deckle/internal/ui/services/scroll"
	"deckle/internal/ui/services/slideshow"
	"deckle/internal/ui/state"
	"deckle/internal/ui/views"
)

// Modal identifiers
const (
	ModalSearch = "search"
	ModalHelp   = "help"
)

// Scroll snapshots are recomputed at most this often while scrolling
const snapshotInterval = 100 * time.Millisecond

// Resize bursts settle for this long before the document is re-laid out
const resizeSettle = 150 * time.Millisecond

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	width  int
	height int

	// Controllers; each owns its piece of state exclusively
	slideshow *slideshow.Service
	modals    *modal.Service
	scroll    *scroll.Service

	renderer     *views.Renderer
	inputHandler *input.Handler

	refreshSnapshot func() // throttled scroll-tracker tick
	resizeDebounce  *ratelimit.Debouncer

	// Program reference for messages originating outside the loop
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, doc *domain.Document, path string) *Model {
	appState := state.NewAppState()
	appState.Path = path
	appState.SidebarHidden = cfg.UISettings.SidebarHidden
	appState.ShowProgress = cfg.UISettings.ShowProgress

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		slideshow:    slideshow.NewService(),
		modals:       modal.NewService(ModalSearch, ModalHelp),
		scroll:       scroll.NewService(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
	}
	m.scroll.SetThresholds(cfg.Scroll.ActivationOffset, cfg.Scroll.BackToTopOffset)

	m.refreshSnapshot = ratelimit.Throttle(snapshotInterval, m.snapshotNow)
	m.resizeDebounce = ratelimit.NewDebouncer(resizeSettle, func() {
		if m.program != nil {
			m.program.Send(relayoutMsg{})
		}
	})

	if doc != nil {
		appState.SetDocument(doc)
	}
	return m
}

// SetProgram sets the program reference for out-of-loop messages
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		first := m.width == 0
		m.width = msg.Width
		m.height = msg.Height
		if first {
			// First size arrives before anything is on screen; lay out now
			m.relayout()
		} else {
			m.resizeDebounce.Call()
		}
		return m, nil

	case relayoutMsg:
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		ctx := inputContext{m: m}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)
		actionCmd := m.applyActions(actions)
		return m, tea.Batch(cmd, actionCmd)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case modalAdvanceMsg:
		m.modals.Advance(msg.tr)
		return m, nil

	case documentLoadedMsg:
		if msg.err != nil {
			log.Printf("Document reload failed: %v", msg.err)
			m.state.StatusMessage = "reload failed"
			return m, nil
		}
		m.state.SetDocument(msg.doc)
		m.state.StatusMessage = "document reloaded"
		m.bus.Publish(eventbus.DocumentLoadedEvent{Path: m.state.Path, Document: msg.doc})
		m.relayout()
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)
	}

	// Cursor blink and other text input housekeeping
	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleEvent(e eventbus.DomainEvent) tea.Cmd {
	switch ev := e.(type) {
	case eventbus.DocumentChangedEvent:
		// The content layer re-rendered; pick the new tree up
		return loadDocumentCmd(ev.Path)
	case eventbus.ErrorEvent:
		m.state.StatusMessage = ev.Message
	}
	return nil
}

// loadDocumentCmd re-parses the document off the UI loop
func loadDocumentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := content.Load(path)
		return documentLoadedMsg{doc: doc, err: err}
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	// Wheel input is page scrolling: suspended under modals, frozen in
	// slideshow mode
	if m.modals.AnyVisible() || m.slideshow.Active() {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
	}
}

func (m *Model) applyActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd

	for _, action := range actions {
		switch a := action.(type) {
		case inputtypes.ScrollAction:
			m.handleScroll(a.Direction)

		case inputtypes.OpenSearchAction:
			m.state.SetQuery("")
			m.state.SelectedResult = 0
			if tr, ok := m.modals.Open(ModalSearch); ok {
				cmds = append(cmds, advanceCmd(tr))
			}

		case inputtypes.CloseModalsAction:
			for _, tr := range m.modals.CloseAll() {
				cmds = append(cmds, advanceCmd(tr))
			}

		case inputtypes.ToggleHelpAction:
			if m.modals.Phase(ModalHelp) == modal.Hidden {
				if tr, ok := m.modals.Open(ModalHelp); ok {
					cmds = append(cmds, advanceCmd(tr))
				}
			} else if tr, ok := m.modals.Close(ModalHelp); ok {
				cmds = append(cmds, advanceCmd(tr))
			}

		case inputtypes.ToggleSidebarAction:
			m.state.SidebarHidden = !m.state.SidebarHidden
			// Mirrored into the config so the quit-time save persists it
			m.config.UISettings.SidebarHidden = m.state.SidebarHidden
			m.relayout()

		case inputtypes.ToggleSlideshowAction:
			m.toggleSlideshow()

		case inputtypes.ExitSlideshowAction:
			if m.slideshow.Active() {
				m.exitSlideshow()
			}

		case inputtypes.SlideNavAction:
			var id string
			var ok bool
			if a.Delta > 0 {
				id, ok = m.slideshow.Next()
			} else {
				id, ok = m.slideshow.Prev()
			}
			if ok {
				m.scrollToSection(id)
			}

		case inputtypes.MoveResultAction:
			m.state.MoveResult(a.Delta)

		case inputtypes.JumpToResultAction:
			m.jumpToSelectedResult()

		case inputtypes.UpdateQueryAction:
			m.state.SetQuery(a.Text)

		case inputtypes.QuitAction:
			cmds = append(cmds, tea.Quit)
		}
	}

	return tea.Batch(cmds...)
}

// advanceCmd turns a scheduled modal transition into a timer message
func advanceCmd(tr modal.Transition) tea.Cmd {
	return tea.Tick(tr.After, func(time.Time) tea.Msg {
		return modalAdvanceMsg{tr: tr}
	})
}

func (m *Model) handleScroll(direction string) {
	// Page scroll is suspended while any modal is up, and frozen in
	// slideshow mode
	if m.modals.AnyVisible() || m.slideshow.Active() {
		return
	}

	page := m.viewportHeight() - 1
	if page < 1 {
		page = 1
	}

	switch direction {
	case "up":
		m.scrollBy(-1)
	case "down":
		m.scrollBy(1)
	case "pageup":
		m.scrollBy(-page)
	case "pagedown":
		m.scrollBy(page)
	case "home":
		m.state.Offset = 0
		m.snapshotNow()
	case "end":
		m.state.Offset = m.scroll.MaxOffset()
		m.snapshotNow()
	}
}

func (m *Model) scrollBy(delta int) {
	offset := m.state.Offset + delta
	if offset < 0 {
		offset = 0
	}
	if max := m.scroll.MaxOffset(); offset > max {
		offset = max
	}
	m.state.Offset = offset
	m.refreshSnapshot()
}

func (m *Model) toggleSlideshow() {
	if m.slideshow.Active() {
		m.exitSlideshow()
		return
	}
	// The deck is re-derived on every entry so late-rendered sections are
	// picked up
	m.slideshow.Enter(m.state.Sections(), m.state.Snapshot.ActiveSectionID)
}

func (m *Model) exitSlideshow() {
	id := m.slideshow.CurrentID()
	m.slideshow.Exit()
	// Land the scroll view on the slide that was showing
	m.scrollToSection(id)
}

// scrollToSection scrolls a section into view. Unknown or stale IDs are a
// silent no-op.
func (m *Model) scrollToSection(id string) {
	top, ok := m.state.SectionTop(id)
	if !ok {
		return
	}
	if max := m.scroll.MaxOffset(); top > max {
		top = max
	}
	m.state.Offset = top
	m.snapshotNow()
}

func (m *Model) jumpToSelectedResult() {
	entry, ok := m.state.SelectedEntry()
	if !ok {
		return
	}
	// Re-resolve the fragment at use time; the content layer may have
	// re-rendered since the index was built
	frag, ok := m.state.Document.FragmentByID(entry.ID)
	if !ok {
		return
	}
	target := frag.ID
	if frag.Parent != "" {
		target = frag.Parent
	}

	if m.slideshow.Active() {
		for i, sec := range m.state.Sections() {
			if sec.ID == target {
				if id, ok := m.slideshow.Goto(i); ok {
					m.scrollToSection(id)
				}
				return
			}
		}
		return
	}
	m.scrollToSection(target)
}

func (m *Model) viewportHeight() int {
	// Header and footer each keep a row
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) docWidth() int {
	w := m.width - 2
	if !m.state.SidebarHidden {
		w -= 22 // outline column
	}
	if w < 20 {
		w = 20
	}
	return w
}

// relayout re-renders the document rows and re-feeds geometry to the
// scroll tracker
func (m *Model) relayout() {
	if m.state.Document == nil || m.width == 0 {
		return
	}
	lines, offsets := m.renderer.Document().Layout(m.state.Document, m.docWidth())
	m.state.DocLines = lines
	m.state.SectionOffsets = offsets
	m.state.ViewportHeight = m.viewportHeight()
	m.state.ViewportWidth = m.width
	m.scroll.SetGeometry(offsets, len(lines), m.state.ViewportHeight)

	if max := m.scroll.MaxOffset(); m.state.Offset > max {
		m.state.Offset = max
	}
	m.snapshotNow()
}

// snapshotNow recomputes the scroll-derived state immediately. Scroll
// paths go through the throttled wrapper instead; while the slideshow is
// active the snapshot is frozen.
func (m *Model) snapshotNow() {
	if m.slideshow.Active() {
		return
	}
	m.state.Snapshot = m.scroll.Snapshot(m.state.Offset)
}

// View renders the UI
func (m *Model) View() string {
	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Document:       m.state.Document,
		DocLines:       m.state.DocLines,
		Offset:         m.state.Offset,
		ViewportHeight: m.viewportHeight(),
		Sections:       m.state.Sections(),
		Snapshot:       m.state.Snapshot,
		SidebarHidden:  m.state.SidebarHidden,
		ShowProgress:   m.state.ShowProgress,
		StatusMessage:  m.state.StatusMessage,

		SlideshowActive: m.slideshow.Active(),
		SlideIndex:      m.slideshow.Index(),
		SlideCount:      m.slideshow.Count(),
		CurrentSlideID:  m.slideshow.CurrentID(),

		SearchPhase:    m.modals.Phase(ModalSearch),
		HelpPhase:      m.modals.Phase(ModalHelp),
		SearchInput:    m.inputHandler.TextInput().View(),
		SearchQuery:    m.state.SearchQuery,
		SearchResults:  m.state.SearchResults,
		SelectedResult: m.state.SelectedResult,
	}
	return m.renderer.Render(vs)
}
