package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Section      lipgloss.Style
	CardTitle    lipgloss.Style
	CardTag      lipgloss.Style
	Body         lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Sidebar      lipgloss.Style
	SidebarItem  lipgloss.Style
	ActiveItem   lipgloss.Style
	Progress     lipgloss.Style
	ProgressFill lipgloss.Style
	SlideCounter lipgloss.Style
	Popup        lipgloss.Style
	Match        lipgloss.Style
	SelectedRow  lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		CardTag:      lipgloss.NewStyle().Faint(true).Italic(true),
		Body:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Sidebar:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingRight(1),
		SidebarItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ActiveItem:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		Progress:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		ProgressFill: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		SlideCounter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectedRow: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
