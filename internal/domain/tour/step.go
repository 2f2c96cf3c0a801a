package tour

import "context"

// Rect is an axis-aligned box in host coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Size is the width and height of a container layout.
type Size struct {
	Width  float64
	Height float64
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Target is a host UI element that can report its bounding box. Measure
// returns ErrMeasurementUnavailable when the element has not been laid out yet.
type Target interface {
	Measure(ctx context.Context) (Rect, error)
}

// TargetFunc adapts a function to the Target interface.
type TargetFunc func(ctx context.Context) (Rect, error)

// Measure implements Target.
func (f TargetFunc) Measure(ctx context.Context) (Rect, error) {
	return f(ctx)
}

// Step describes one stop in a guided tour.
type Step struct {
	Name   string
	Order  int
	Text   string
	Target Target
	// OnSelect is invoked when the highlighted region is pressed.
	OnSelect func()
}
