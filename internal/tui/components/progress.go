// Package components holds small presentational pieces shared by the tour host.
package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 20

// Progress renders how far the viewer is through the tour.
type Progress struct {
	bar progress.Model
}

// NewProgress creates a progress bar of the given width in cells.
func NewProgress(width int) Progress {
	if width <= 0 {
		width = defaultBarWidth
	}
	bar := progress.New(progress.WithSolidFill("62"), progress.WithoutPercentage())
	bar.Width = width
	return Progress{bar: bar}
}

// View renders "step/total" followed by the bar. A step of zero means the
// current step is not part of the traversal and renders as "?".
func (p Progress) View(step, total int) string {
	ratio := 0.0
	if total > 0 {
		ratio = math.Min(1.0, float64(step)/float64(total))
	}
	position := fmt.Sprintf("%d/%d", step, total)
	if step == 0 {
		position = fmt.Sprintf("?/%d", total)
	}
	label := lipgloss.NewStyle().Bold(true).Render(position)
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
