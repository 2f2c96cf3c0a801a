package tui

import "github.com/charmbracelet/lipgloss"

type cellClass int

const (
	classScreen cellClass = iota
	classWidget
	classDim
	classTooltip
	classTooltipTitle
)

type styles struct {
	byClass map[cellClass]lipgloss.Style
	title   lipgloss.Style
	status  lipgloss.Style
}

func newStyles(backdrop string) styles {
	return styles{
		byClass: map[cellClass]lipgloss.Style{
			classScreen:       lipgloss.NewStyle(),
			classWidget:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			classDim:          lipgloss.NewStyle().Faint(true).Background(lipgloss.Color(backdrop)),
			classTooltip:      lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
			classTooltipTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Background(lipgloss.Color("62")),
		},
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

func (s styles) render(class cellClass, text string) string {
	style, ok := s.byClass[class]
	if !ok {
		return text
	}
	return style.Render(text)
}
