// Package render formats game, calculator and to-do output for the terminal.
package render

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Accent      = lipgloss.Color("#8BC34A")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
	Muted       = lipgloss.Color("#6b7280")
)

// Styles groups the lipgloss styles used by the renderers
type Styles struct {
	Title   lipgloss.Style
	Banner  lipgloss.Style
	Bold    lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the styles used by the sus console
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(Info),
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Accent).
			Padding(0, 4).
			Align(lipgloss.Center),
		Bold:    lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(Muted),
		Success: lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(Destructive),
		Warning: lipgloss.NewStyle().Foreground(Warning),
	}
}
