package overlay

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"
)

// Mode selects how the Animator interpolates between highlights.
type Mode int

const (
	// Tween interpolates over a fixed duration with an easing function.
	Tween Mode = iota
	// Spring follows a damped harmonic oscillator until it settles.
	Spring
)

// ParseMode maps "tween" and "spring" to a Mode. Anything else is Tween.
func ParseMode(value string) Mode {
	if value == "spring" {
		return Spring
	}
	return Tween
}

const settleThreshold = 0.01

// AnimatorOptions configures highlight transitions.
type AnimatorOptions struct {
	Animated bool
	Mode     Mode
	Duration time.Duration
	Easing   Easing
	// FPS, Frequency and Damping parameterise the spring mode.
	FPS       int
	Frequency float64
	Damping   float64
}

// DefaultAnimatorOptions returns a 300ms ease-in-out tween.
func DefaultAnimatorOptions() AnimatorOptions {
	return AnimatorOptions{
		Animated:  true,
		Mode:      Tween,
		Duration:  300 * time.Millisecond,
		Easing:    EaseInOutQuad,
		FPS:       60,
		Frequency: 6.0,
		Damping:   0.8,
	}
}

// Animator moves the highlight from one rectangle to another. The host's
// frame loop drives it through Advance; a MoveTo issued while a transition
// is in flight supersedes it, starting from the current interpolated value.
type Animator struct {
	opts AnimatorOptions

	current tour.Rect
	placed  bool

	from    tour.Rect
	to      tour.Rect
	elapsed time.Duration
	active  bool

	spring   harmonica.Spring
	velocity [4]float64
}

// NewAnimator constructs an Animator.
func NewAnimator(opts AnimatorOptions) *Animator {
	if opts.Easing == nil {
		opts.Easing = Linear
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	a := &Animator{opts: opts}
	if opts.Mode == Spring {
		a.spring = harmonica.NewSpring(harmonica.FPS(opts.FPS), opts.Frequency, opts.Damping)
	}
	return a
}

// MoveTo sets a new target rectangle. The first placement, and every
// placement when animation is disabled, is applied immediately.
func (a *Animator) MoveTo(target tour.Rect) {
	if !a.placed || !a.opts.Animated || (a.opts.Mode == Tween && a.opts.Duration <= 0) {
		a.current = target
		a.to = target
		a.placed = true
		a.active = false
		a.velocity = [4]float64{}
		return
	}
	a.from = a.current
	a.to = target
	a.elapsed = 0
	a.active = true
}

// Advance moves the transition forward by dt and returns the current
// rectangle and whether a transition is still in flight.
func (a *Animator) Advance(dt time.Duration) (tour.Rect, bool) {
	if !a.active {
		return a.current, false
	}
	if a.opts.Mode == Spring {
		a.stepSpring()
	} else {
		a.stepTween(dt)
	}
	return a.current, a.active
}

// Current returns the rectangle to draw this frame.
func (a *Animator) Current() (tour.Rect, bool) {
	return a.current, a.placed
}

// Target returns the rectangle the animator is heading to.
func (a *Animator) Target() tour.Rect {
	return a.to
}

// Animating reports whether a transition is in flight.
func (a *Animator) Animating() bool {
	return a.active
}

// Reset forgets the current placement so the next MoveTo is immediate.
func (a *Animator) Reset() {
	*a = Animator{opts: a.opts, spring: a.spring}
}

func (a *Animator) stepTween(dt time.Duration) {
	a.elapsed += dt
	if a.elapsed >= a.opts.Duration {
		a.current = a.to
		a.active = false
		return
	}
	progress := a.opts.Easing(float64(a.elapsed) / float64(a.opts.Duration))
	a.current = lerp(a.from, a.to, progress)
}

func (a *Animator) stepSpring() {
	pos := toArray(a.current)
	target := toArray(a.to)
	settled := true
	for i := range pos {
		pos[i], a.velocity[i] = a.spring.Update(pos[i], a.velocity[i], target[i])
		if math.Abs(pos[i]-target[i]) > settleThreshold || math.Abs(a.velocity[i]) > settleThreshold {
			settled = false
		}
	}
	if settled {
		a.current = a.to
		a.velocity = [4]float64{}
		a.active = false
		return
	}
	a.current = fromArray(pos)
}

func lerp(from, to tour.Rect, t float64) tour.Rect {
	mix := func(a, b float64) float64 { return a + (b-a)*t }
	return tour.Rect{
		X:      mix(from.X, to.X),
		Y:      mix(from.Y, to.Y),
		Width:  mix(from.Width, to.Width),
		Height: mix(from.Height, to.Height),
	}
}

func toArray(r tour.Rect) [4]float64 {
	return [4]float64{r.X, r.Y, r.Width, r.Height}
}

func fromArray(v [4]float64) tour.Rect {
	return tour.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
}
