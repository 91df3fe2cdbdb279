package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Dim             lipgloss.Style
	Status          lipgloss.Style
	StatusError     lipgloss.Style
	Help            lipgloss.Style
	Counter         lipgloss.Style
	CounterEmpty    lipgloss.Style
	FindPrompt      lipgloss.Style
	Match           lipgloss.Style
	ActiveMatch     lipgloss.Style
	SidebarBorder   lipgloss.Style
	SidebarTitle    lipgloss.Style
	SidebarItem     lipgloss.Style
	SidebarSelected lipgloss.Style
	Scroll          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:         lipgloss.NewStyle().Faint(true),
		Counter:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		CounterEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		FindPrompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Match: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("250")),
		ActiveMatch: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("220")).
			Bold(true),
		SidebarBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("241")),
		SidebarTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		SidebarItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SidebarSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("39")),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
