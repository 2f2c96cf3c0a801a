// Package overlay connects the navigator to the geometry engine: it measures
// step targets, feeds the animator, and hands the host the geometry to draw.
package overlay

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/walkthrough/internal/application/navigation"
	domain "github.com/alexisbeaulieu97/walkthrough/internal/domain/overlay"
	"github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"
	"github.com/alexisbeaulieu97/walkthrough/internal/ports"
	walkthrougherrors "github.com/alexisbeaulieu97/walkthrough/pkg/errors"
)

// Controller implements navigation.Mover.
type Controller struct {
	engine   domain.Engine
	animator *domain.Animator
	layout   tour.Size
	logger   ports.Logger
	skipped  int
}

// NewController creates a Controller for the given engine and transition settings.
func NewController(engine domain.Engine, opts domain.AnimatorOptions, logger ports.Logger) *Controller {
	if logger != nil {
		logger = logger.With("component", "overlay")
	}
	return &Controller{
		engine:   engine,
		animator: domain.NewAnimator(opts),
		logger:   logger,
	}
}

// SetLayout records the container viewport size.
func (c *Controller) SetLayout(layout tour.Size) {
	c.layout = layout
}

// Layout returns the container viewport size.
func (c *Controller) Layout() tour.Size {
	return c.layout
}

// Engine returns the geometry engine.
func (c *Controller) Engine() domain.Engine {
	return c.engine
}

// MoveTo measures step's target and starts moving the highlight to it. When
// the target cannot be measured yet the update is skipped.
func (c *Controller) MoveTo(ctx context.Context, step tour.Step) {
	if step.Target == nil {
		c.skip(ctx, step, tour.ErrMeasurementUnavailable)
		return
	}
	measured, err := step.Target.Measure(ctx)
	if err != nil {
		c.skip(ctx, step, err)
		return
	}
	g, ok := c.engine.Compute(measured, c.layout)
	if !ok {
		c.skip(ctx, step, tour.ErrMeasurementUnavailable)
		return
	}
	c.animator.MoveTo(g.Highlight)
	if c.logger != nil {
		c.logger.Debug(ctx, "overlay moving", "step", step.Name,
			"x", g.Highlight.X, "y", g.Highlight.Y, "width", g.Highlight.Width, "height", g.Highlight.Height)
	}
}

// Advance drives the transition by one frame of duration dt. It reports
// whether a transition is still in flight.
func (c *Controller) Advance(dt time.Duration) bool {
	_, running := c.animator.Advance(dt)
	return running
}

// Animating reports whether a transition is in flight.
func (c *Controller) Animating() bool {
	return c.animator.Animating()
}

// Geometry returns the geometry to draw this frame, derived from the
// animator's current highlight. It reports false until a target has been
// measured successfully.
func (c *Controller) Geometry() (domain.Geometry, bool) {
	highlight, placed := c.animator.Current()
	if !placed || c.layout.Empty() {
		return domain.Geometry{}, false
	}
	return c.engine.Bands(highlight, c.layout), true
}

// Skipped returns how many moves were skipped because a target could not be measured.
func (c *Controller) Skipped() int {
	return c.skipped
}

// Reset forgets the current highlight.
func (c *Controller) Reset() {
	c.animator.Reset()
}

func (c *Controller) skip(ctx context.Context, step tour.Step, err error) {
	c.skipped++
	if c.logger != nil {
		c.logger.Debug(ctx, "overlay update skipped", "error", walkthrougherrors.NewStepError(step.Name, err))
	}
}

var _ navigation.Mover = (*Controller)(nil)
