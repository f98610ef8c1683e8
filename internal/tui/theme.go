package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Result   lipgloss.Style
	Card     lipgloss.Style
}

// NewTheme builds the session theme. accent is an ANSI 256 index or a
// "#rrggbb" hex color; empty falls back to the default accent.
func NewTheme(accent string) Theme {
	if accent == "" {
		accent = "63"
	}
	color := lipgloss.Color(accent)

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Result:   lipgloss.NewStyle().Bold(true).Foreground(color),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(color),
	}
}
