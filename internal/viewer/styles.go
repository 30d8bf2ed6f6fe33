package viewer

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	colorGreen  = lipgloss.Color("42")
	colorYellow = lipgloss.Color("214")
	colorRed    = lipgloss.Color("196")
	colorCyan   = lipgloss.Color("45")
	colorGray   = lipgloss.Color("245")
	colorWhite  = lipgloss.Color("255")
)

// Styles defines the visual styles for the report viewer
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Sortable  lipgloss.Style
	Text      lipgloss.Style
	Group     lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGray),

		Sortable: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorCyan),

		Text: lipgloss.NewStyle().
			Foreground(colorWhite),

		Group: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen),

		Muted: lipgloss.NewStyle().
			Foreground(colorGray),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("236")).
			Foreground(colorWhite),

		StatusBar: lipgloss.NewStyle().
			Foreground(colorGray),

		HelpBar: lipgloss.NewStyle().
			Foreground(colorGray),

		Error: lipgloss.NewStyle().
			Foreground(colorRed),

		Info: lipgloss.NewStyle().
			Foreground(colorYellow),
	}
}
