package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/walkthrough/internal/application/navigation"
	domain "github.com/alexisbeaulieu97/walkthrough/internal/domain/overlay"
	"github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"
)

const (
	tooltipMaxWidth = 36
	tooltipMinWidth = 10
	tooltipMargin   = 1
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading tour..."
	}

	status := m.styles.status.Render(m.statusLine())
	if view := m.navigator.View(); view.Visible {
		status = m.progress.View(view.StepNumber, view.Total) + "  " + status
	}

	sections := []string{
		m.compose().render(m.styles),
		status,
		m.help.View(m.keys),
	}
	return strings.Join(sections, "\n")
}

// compose draws the screen, the dimming bands and the tooltip.
func (m Model) compose() *canvas {
	layout := m.layout()
	c := newCanvas(int(layout.Width), int(layout.Height))
	m.drawWidgets(c, layout)

	view := m.navigator.View()
	if !view.Visible || view.Current == nil {
		return c
	}

	highlight := tour.Rect{X: layout.Width / 2, Y: layout.Height / 2}
	if geometry, ok := m.controller.Geometry(); ok {
		for _, band := range geometry.Bands() {
			c.shade(band, classDim)
		}
		highlight = geometry.Highlight
	}
	m.drawTooltip(c, layout, highlight, view)
	return c
}

func (m Model) drawWidgets(c *canvas, layout tour.Size) {
	// Widget regions are logical; mirror them the same way the highlight is.
	placement := domain.Engine{Direction: m.controller.Engine().Direction}
	for _, w := range m.widgets {
		if !w.mounted {
			continue
		}
		rect := placement.Highlight(w.def.Target.Rect(), layout)
		c.box(rect, classWidget)
		x0, y0, x1, _ := c.bounds(rect)
		label := truncate(w.label(), x1-x0-2)
		c.text(x0+1, y0+1, label, classWidget)
		if w.presses > 0 {
			c.text(x0+1, y0+2, truncate(fmt.Sprintf("pressed %d", w.presses), x1-x0-2), classWidget)
		}
	}
}

func (m Model) drawTooltip(c *canvas, layout tour.Size, highlight tour.Rect, view navigation.View) {
	width := tooltipMaxWidth
	if limit := int(layout.Width) - 4; limit < width {
		width = limit
	}
	if width < tooltipMinWidth {
		width = tooltipMinWidth
	}

	lines := tooltipLines(view, width)
	size := tour.Size{Width: float64(width + 4), Height: float64(len(lines) + 2)}
	rect := domain.PlaceTooltip(highlight, layout, size, tooltipMargin, m.controller.Engine().Direction)

	c.fill(rect, classTooltip)
	c.box(rect, classTooltip)
	x0, y0, _, _ := c.bounds(rect)
	for i, line := range lines {
		class := classTooltip
		if i == 0 {
			class = classTooltipTitle
		}
		c.text(x0+2, y0+1+i, line, class)
	}
}

// tooltipLines returns the title, the wrapped step text and the controls.
func tooltipLines(view navigation.View, width int) []string {
	title := fmt.Sprintf("Step %d/%d", view.StepNumber, view.Total)
	if view.StepNumber == 0 {
		title = fmt.Sprintf("Step ?/%d", view.Total)
	}
	lines := []string{title}

	wrapped := lipgloss.NewStyle().Width(width).Render(view.Current.Text)
	for _, line := range strings.Split(wrapped, "\n") {
		lines = append(lines, strings.TrimRight(line, " "))
	}

	lines = append(lines, "", truncate(controlsLine(view), width))
	return lines
}

func controlsLine(view navigation.View) string {
	controls := []string{"[esc] skip"}
	if !view.IsFirstStep {
		controls = append(controls, "[←] prev")
	}
	switch {
	case view.HasNext:
		controls = append(controls, "[→] next")
	case view.IsLastStep:
		controls = append(controls, "[→] finish")
	}
	return strings.Join(controls, "  ")
}

func (m Model) statusLine() string {
	view := m.navigator.View()
	var parts []string
	switch {
	case m.navigator.Starting():
		parts = append(parts, "waiting for steps to register")
	case view.Visible:
		parts = append(parts, m.tour.Name)
	case m.session.stops > 0:
		parts = append(parts, "tour finished: press r to restart")
	default:
		parts = append(parts, "tour idle: press r to start")
	}
	if m.session.lastEvent != "" {
		parts = append(parts, fmt.Sprintf("event %s %s", m.session.lastEvent, m.session.lastStep))
	}
	if m.session.notice != "" {
		parts = append(parts, m.session.notice)
	} else if recent := m.logs.Recent(1); len(recent) > 0 {
		parts = append(parts, recent[0])
	}
	if skipped := m.controller.Skipped(); skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d overlay updates skipped", skipped))
	}
	return strings.Join(parts, " | ")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
