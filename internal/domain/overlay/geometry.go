// Package overlay computes the highlighted hole and the four dimming bands
// drawn around a tour target, and interpolates between successive geometries.
package overlay

import (
	"context"
	"math"

	"github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"
)

// Direction is the writing direction used to map logical start/end edges to
// physical left/right.
type Direction int

const (
	// LeftToRight maps the start edge to the left.
	LeftToRight Direction = iota
	// RightToLeft maps the start edge to the right.
	RightToLeft
)

// ParseDirection maps "ltr" and "rtl" to a Direction. Anything else is LeftToRight.
func ParseDirection(value string) Direction {
	if value == "rtl" {
		return RightToLeft
	}
	return LeftToRight
}

// Geometry is the highlighted hole and the bands that tile the rest of the viewport.
// All rectangles are in physical coordinates.
type Geometry struct {
	Highlight tour.Rect
	Top       tour.Rect
	Bottom    tour.Rect
	// Start spans from the start edge to the highlight, End from the
	// highlight to the end edge. Both are bounded to the highlight's row.
	Start tour.Rect
	End   tour.Rect
}

// Bands returns the dimming bands as top, bottom, start, end.
func (g Geometry) Bands() [4]tour.Rect {
	return [4]tour.Rect{g.Top, g.Bottom, g.Start, g.End}
}

// Engine turns target measurements into overlay geometry.
type Engine struct {
	// Padding inflates the highlight by Padding/2 on every side.
	Padding float64
	// VerticalOffset shifts the highlight down, e.g. to account for a status bar.
	VerticalOffset float64
	Direction      Direction
}

// Highlight returns the padded hole for a measured target. In right-to-left
// layouts the measured x is an offset from the right edge.
func (e Engine) Highlight(measured tour.Rect, layout tour.Size) tour.Rect {
	x := measured.X
	if e.Direction == RightToLeft {
		x = layout.Width - (measured.X + measured.Width)
	}
	return tour.Rect{
		X:      x - e.Padding/2,
		Y:      measured.Y - e.Padding/2 + e.VerticalOffset,
		Width:  measured.Width + e.Padding,
		Height: measured.Height + e.Padding,
	}
}

// Bands computes the four dimming rectangles around highlight. Extents that
// would be negative for a target outside the viewport clamp to zero.
func (e Engine) Bands(highlight tour.Rect, layout tour.Size) Geometry {
	top := clamp(highlight.Y, 0, layout.Height)
	bottom := clamp(highlight.Bottom(), top, layout.Height)
	left := clamp(highlight.X, 0, layout.Width)
	right := clamp(highlight.Right(), left, layout.Width)
	rowHeight := bottom - top

	leftBand := tour.Rect{X: 0, Y: top, Width: left, Height: rowHeight}
	rightBand := tour.Rect{X: right, Y: top, Width: layout.Width - right, Height: rowHeight}

	g := Geometry{
		Highlight: highlight,
		Top:       tour.Rect{X: 0, Y: 0, Width: layout.Width, Height: top},
		Bottom:    tour.Rect{X: 0, Y: bottom, Width: layout.Width, Height: layout.Height - bottom},
		Start:     leftBand,
		End:       rightBand,
	}
	if e.Direction == RightToLeft {
		g.Start, g.End = rightBand, leftBand
	}
	return g
}

// Compute returns the geometry for a measured target. It reports false when
// either the measurement or the layout is empty so the caller can skip the
// visual update for this frame.
func (e Engine) Compute(measured tour.Rect, layout tour.Size) (Geometry, bool) {
	if measured.Width <= 0 && measured.Height <= 0 {
		return Geometry{}, false
	}
	if layout.Empty() {
		return Geometry{}, false
	}
	return e.Bands(e.Highlight(measured, layout), layout), true
}

// Measure asks target for its bounds and computes the geometry. Any
// measurement error reports false.
func (e Engine) Measure(ctx context.Context, target tour.Target, layout tour.Size) (Geometry, bool) {
	if target == nil {
		return Geometry{}, false
	}
	measured, err := target.Measure(ctx)
	if err != nil {
		return Geometry{}, false
	}
	return e.Compute(measured, layout)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
