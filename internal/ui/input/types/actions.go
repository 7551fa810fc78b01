package types

// Viewport scrolling actions
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a ScrollAction) Type() string { return "scroll" }

// Modal actions
type OpenSearchAction struct{}

func (a OpenSearchAction) Type() string { return "open_search" }

type CloseModalsAction struct{}

func (a CloseModalsAction) Type() string { return "close_modals" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// Sidebar and slideshow actions
type ToggleSidebarAction struct{}

func (a ToggleSidebarAction) Type() string { return "toggle_sidebar" }

type ToggleSlideshowAction struct{}

func (a ToggleSlideshowAction) Type() string { return "toggle_slideshow" }

type ExitSlideshowAction struct{}

func (a ExitSlideshowAction) Type() string { return "exit_slideshow" }

type SlideNavAction struct {
	Delta int // +1 next, -1 prev
}

func (a SlideNavAction) Type() string { return "slide_nav" }

// Search result actions
type MoveResultAction struct {
	Delta int
}

func (a MoveResultAction) Type() string { return "move_result" }

type JumpToResultAction struct{}

func (a JumpToResultAction) Type() string { return "jump_to_result" }

// Text input actions
type UpdateQueryAction struct {
	Text string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Quit actions
type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
