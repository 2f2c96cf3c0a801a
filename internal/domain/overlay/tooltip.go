package overlay

import "github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"

// PlaceTooltip positions a tooltip of the given size next to highlight: below
// it when there is room, otherwise above it, otherwise pinned to the bottom of
// the viewport. The tooltip is aligned with the highlight's start edge and
// kept inside the viewport horizontally.
func PlaceTooltip(highlight tour.Rect, layout tour.Size, tooltip tour.Size, margin float64, dir Direction) tour.Rect {
	placed := tour.Rect{Width: tooltip.Width, Height: tooltip.Height}

	below := highlight.Bottom() + margin
	above := highlight.Y - margin - tooltip.Height
	switch {
	case below+tooltip.Height <= layout.Height:
		placed.Y = below
	case above >= 0:
		placed.Y = above
	default:
		placed.Y = layout.Height - tooltip.Height
	}

	if dir == RightToLeft {
		placed.X = highlight.Right() - tooltip.Width
	} else {
		placed.X = highlight.X
	}
	placed.X = clamp(placed.X, 0, layout.Width-tooltip.Width)
	placed.Y = clamp(placed.Y, 0, layout.Height-tooltip.Height)
	return placed
}
