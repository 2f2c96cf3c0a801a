package overlay

import "strings"

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear progresses at a constant rate.
func Linear(t float64) float64 { return t }

// EaseInQuad accelerates from zero velocity.
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad decelerates to zero velocity.
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EaseInOutQuad accelerates until halfway, then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseOutCubic decelerates to zero velocity, more sharply than EaseOutQuad.
func EaseOutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// EaseInOutCubic is the cubic variant of EaseInOutQuad.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

var easings = map[string]Easing{
	"linear":            Linear,
	"ease-in":           EaseInQuad,
	"ease-out":          EaseOutQuad,
	"ease-in-out":       EaseInOutQuad,
	"ease-out-cubic":    EaseOutCubic,
	"ease-in-out-cubic": EaseInOutCubic,
}

// EasingByName resolves a configured easing name.
func EasingByName(name string) (Easing, bool) {
	fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// EasingNames lists the names accepted by EasingByName.
func EasingNames() []string {
	return []string{"linear", "ease-in", "ease-out", "ease-in-out", "ease-out-cubic", "ease-in-out-cubic"}
}
