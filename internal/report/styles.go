package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	drift  lipgloss.Style
	border lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		header: r.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center),
		cell:   r.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		drift:  r.NewStyle().Padding(0, 1).Align(lipgloss.Right).Bold(true).Foreground(lipgloss.ANSIColor(1)),
		border: r.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}
