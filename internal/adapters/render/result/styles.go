package result

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title          lipgloss.Style
	header         lipgloss.Style
	panel          lipgloss.Style
	narrative      lipgloss.Style
	section        lipgloss.Style
	interpretation lipgloss.Style
	empty          lipgloss.Style
	footer         lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:          lipgloss.NewStyle().Bold(true),
		header:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		panel:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1),
		narrative:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:        lipgloss.NewStyle().MarginTop(1),
		interpretation: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		empty:          lipgloss.NewStyle().Faint(true),
		footer:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
	}
}
