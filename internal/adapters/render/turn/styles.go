package turn

import "github.com/charmbracelet/lipgloss"

type styles struct {
	answer    lipgloss.Style
	verb      lipgloss.Style
	target    lipgloss.Style
	detail    lipgloss.Style
	cancelled lipgloss.Style
	errKind   lipgloss.Style
	errDetail lipgloss.Style
}

func newStyles() styles {
	return styles{
		answer:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		verb:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		target:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		cancelled: lipgloss.NewStyle().Faint(true),
		errKind:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		errDetail: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
