package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the chrome colors around the message pane. Message level
// tags keep their own fixed styles.
type Theme struct {
	Surface string
	Text    string
	Muted   string
	Accent  string
	Warning string
	Danger  string
}

// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
var defaultTheme = Theme{
	Surface: "#192330", // bg1
	Text:    "#cdcecf", // fg1
	Muted:   "#738091", // comment
	Accent:  "#719cd6", // blue
	Warning: "#dbc074", // yellow
	Danger:  "#c94f6d", // red
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	MutedText lipgloss.Style
	Error     lipgloss.Style
	Prompt    lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Title: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		MutedText: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),

		Error: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),
	}
}
