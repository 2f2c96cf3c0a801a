package config

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/walkthrough/internal/domain/overlay"
	"github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"
)

// Defaults applied to omitted settings.
const (
	DefaultDurationMS    = 300
	DefaultEasing        = "ease-in-out"
	DefaultTransition    = "tween"
	DefaultDirection     = "ltr"
	DefaultMaxStartTries = 120
	DefaultFPS           = 60
	DefaultBackdrop      = "236"
	DefaultFrequency     = 6.0
	DefaultDamping       = 0.8
)

// Tour is a tour definition document.
type Tour struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	StartAt     string   `yaml:"start_at,omitempty" validate:"omitempty,step_name"`
	Settings    Settings `yaml:"settings,omitempty"`
	Steps       []Step   `yaml:"steps" validate:"required,min=1,dive"`
}

// Settings controls overlay geometry, transitions and start behaviour.
type Settings struct {
	Padding        float64 `yaml:"padding,omitempty" validate:"min=0,max=100"`
	VerticalOffset float64 `yaml:"vertical_offset,omitempty"`
	Animated       *bool   `yaml:"animated,omitempty"`
	Transition     string  `yaml:"transition,omitempty" validate:"omitempty,oneof=tween spring"`
	DurationMS     int     `yaml:"duration_ms,omitempty" validate:"min=0,max=10000"`
	Easing         string  `yaml:"easing,omitempty" validate:"omitempty,easing"`
	Frequency      float64 `yaml:"frequency,omitempty" validate:"min=0,max=60"`
	Damping        float64 `yaml:"damping,omitempty" validate:"min=0,max=10"`
	Direction      string  `yaml:"direction,omitempty" validate:"omitempty,oneof=ltr rtl"`
	MaxStartTries  int     `yaml:"max_start_tries,omitempty" validate:"min=0,max=10000"`
	FPS            int     `yaml:"fps,omitempty" validate:"min=0,max=240"`
	BackdropColor  string  `yaml:"backdrop_color,omitempty"`
}

// Step describes one stop of the tour and the on-screen region of the host
// element it points at.
type Step struct {
	Name   string `yaml:"name" validate:"required,step_name"`
	Order  int    `yaml:"order"`
	Text   string `yaml:"text" validate:"required"`
	Label  string `yaml:"label,omitempty"`
	Target Region `yaml:"target"`
}

// Region is the bounding box of a host element in terminal cells.
type Region struct {
	X      int `yaml:"x" validate:"min=0"`
	Y      int `yaml:"y" validate:"min=0"`
	Width  int `yaml:"width" validate:"min=1"`
	Height int `yaml:"height" validate:"min=1"`
}

// Rect converts the region to a tour rectangle.
func (r Region) Rect() tour.Rect {
	return tour.Rect{X: float64(r.X), Y: float64(r.Y), Width: float64(r.Width), Height: float64(r.Height)}
}

// ApplyDefaults fills omitted settings.
func (t *Tour) ApplyDefaults() {
	s := &t.Settings
	if s.Animated == nil {
		animated := true
		s.Animated = &animated
	}
	if s.Transition == "" {
		s.Transition = DefaultTransition
	}
	if s.DurationMS == 0 {
		s.DurationMS = DefaultDurationMS
	}
	if s.Easing == "" {
		s.Easing = DefaultEasing
	}
	if s.Frequency == 0 {
		s.Frequency = DefaultFrequency
	}
	if s.Damping == 0 {
		s.Damping = DefaultDamping
	}
	if s.Direction == "" {
		s.Direction = DefaultDirection
	}
	if s.MaxStartTries == 0 {
		s.MaxStartTries = DefaultMaxStartTries
	}
	if s.FPS == 0 {
		s.FPS = DefaultFPS
	}
	if s.BackdropColor == "" {
		s.BackdropColor = DefaultBackdrop
	}
}

// Engine returns the overlay geometry engine configured by the settings.
func (s Settings) Engine() overlay.Engine {
	return overlay.Engine{
		Padding:        s.Padding,
		VerticalOffset: s.VerticalOffset,
		Direction:      overlay.ParseDirection(s.Direction),
	}
}

// AnimatorOptions returns the transition options configured by the settings.
func (s Settings) AnimatorOptions() overlay.AnimatorOptions {
	opts := overlay.DefaultAnimatorOptions()
	if s.Animated != nil {
		opts.Animated = *s.Animated
	}
	opts.Mode = overlay.ParseMode(s.Transition)
	if s.DurationMS > 0 {
		opts.Duration = time.Duration(s.DurationMS) * time.Millisecond
	}
	if easing, ok := overlay.EasingByName(s.Easing); ok {
		opts.Easing = easing
	}
	if s.FPS > 0 {
		opts.FPS = s.FPS
	}
	if s.Frequency > 0 {
		opts.Frequency = s.Frequency
	}
	if s.Damping > 0 {
		opts.Damping = s.Damping
	}
	return opts
}

// FrameInterval is the duration of one host frame.
func (s Settings) FrameInterval() time.Duration {
	fps := s.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// TourStep converts the definition into a registry step measured by target.
// A nil target measures the declared region.
func (s Step) TourStep(target tour.Target) tour.Step {
	if target == nil {
		region := s.Target.Rect()
		target = tour.TargetFunc(func(context.Context) (tour.Rect, error) {
			return region, nil
		})
	}
	return tour.Step{Name: s.Name, Order: s.Order, Text: s.Text, Target: target}
}

// Registry registers every step against its declared region, in definition order.
func (t *Tour) Registry() *tour.Registry {
	registry := tour.NewRegistry()
	if t == nil {
		return registry
	}
	for _, step := range t.Steps {
		registry.Register(step.TourStep(nil))
	}
	return registry
}
