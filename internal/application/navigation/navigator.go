// Package navigation drives a guided tour: it owns the current step, the
// overlay visibility, and the Idle/Running/Stopped lifecycle.
package navigation

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"
	"github.com/alexisbeaulieu97/walkthrough/internal/ports"
	walkthrougherrors "github.com/alexisbeaulieu97/walkthrough/pkg/errors"
)

// DefaultMaxStartTries bounds how many frames Start waits for steps to
// register. At 60fps this is two seconds.
const DefaultMaxStartTries = 120

// Mover moves the overlay highlight to a step's target. Implementations
// measure the target and may skip the visual update when it is not laid out.
type Mover interface {
	MoveTo(ctx context.Context, step tour.Step)
}

// Capability is handed to mounted host elements so they can register their
// step and query the current step without reaching for ambient state.
type Capability interface {
	Register(step tour.Step)
	Unregister(name string)
	CurrentStep() (tour.Step, bool)
}

// Options wires a Navigator to its collaborators.
type Options struct {
	Registry      *tour.Registry
	Scheduler     ports.FrameScheduler
	Publisher     ports.EventPublisher
	Mover         Mover
	Logger        ports.Logger
	MaxStartTries int
}

// Navigator is the tour's navigation state machine. It is driven from the
// host's UI thread and is not safe for concurrent use.
type Navigator struct {
	registry      *tour.Registry
	scheduler     ports.FrameScheduler
	publisher     ports.EventPublisher
	mover         Mover
	logger        ports.Logger
	maxStartTries int

	current   *tour.Step
	visible   bool
	lifecycle Lifecycle
	history   []string

	startPending bool
	startFrom    string
	startTries   int
	generation   uint64
}

// New constructs a Navigator in the Idle state.
func New(opts Options) (*Navigator, error) {
	if opts.Registry == nil {
		return nil, errors.New("navigation: registry is required")
	}
	if opts.Scheduler == nil {
		return nil, errors.New("navigation: frame scheduler is required")
	}
	var logger ports.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "navigator")
	}
	maxTries := opts.MaxStartTries
	if maxTries <= 0 {
		maxTries = DefaultMaxStartTries
	}
	return &Navigator{
		registry:      opts.Registry,
		scheduler:     opts.Scheduler,
		publisher:     opts.Publisher,
		mover:         opts.Mover,
		logger:        logger,
		maxStartTries: maxTries,
	}, nil
}

// Register implements Capability.
func (n *Navigator) Register(step tour.Step) {
	n.registry.Register(step)
}

// Unregister implements Capability.
func (n *Navigator) Unregister(name string) {
	n.registry.Unregister(name)
}

// CurrentStep implements Capability.
func (n *Navigator) CurrentStep() (tour.Step, bool) {
	if n.current == nil {
		return tour.Step{}, false
	}
	return *n.current, true
}

// Start begins the tour at the named step, or at the first step when from is
// empty or not registered. If no step is registered yet, Start retries on the
// following frames and gives up silently after MaxStartTries attempts. A Start
// issued while a retry is pending only replaces the requested step.
func (n *Navigator) Start(ctx context.Context, from string) {
	n.startFrom = from
	if n.startPending {
		return
	}
	n.startPending = true
	n.startTries = 0
	n.tryStart(ctx, n.generation)
}

// Starting reports whether Start is waiting for steps to register.
func (n *Navigator) Starting() bool {
	return n.startPending
}

func (n *Navigator) tryStart(ctx context.Context, generation uint64) {
	if generation != n.generation || !n.startPending {
		return
	}

	step, ok := n.resolveStart(n.startFrom)
	if !ok {
		if n.startTries >= n.maxStartTries {
			n.startTries = 0
			n.startPending = false
			if n.logger != nil {
				n.logger.Warn(ctx, "tour start aborted",
					"attempts", n.maxStartTries,
					"error", walkthrougherrors.NewStepError(n.startFrom, tour.ErrStartTimeout))
			}
			return
		}
		n.startTries++
		n.scheduler.NextFrame(func() { n.tryStart(ctx, generation) })
		return
	}

	tries := n.startTries
	n.startPending = false
	n.startTries = 0
	n.lifecycle = Running
	n.current = &step
	n.history = append(n.history, step.Name)
	n.move(ctx, step)
	n.visible = true
	if n.logger != nil {
		n.logger.Info(ctx, "tour started", "step", step.Name, "frames_waited", tries)
	}
	n.publish(ctx, Event{Type: ports.EventStart, Step: &step})
	n.publish(ctx, Event{Type: ports.EventStepChange, Step: &step})
}

func (n *Navigator) resolveStart(from string) (tour.Step, bool) {
	if from != "" {
		if step, ok := n.registry.ByName(from); ok {
			return step, true
		}
	}
	return n.registry.First()
}

// Stop hides the overlay and ends a running tour. It also cancels a pending
// start. The registry is left untouched. It reports whether a running tour
// was stopped.
func (n *Navigator) Stop(ctx context.Context) bool {
	n.cancelStart()
	if n.lifecycle != Running {
		return false
	}
	n.lifecycle = Stopped
	n.visible = false
	if n.logger != nil {
		n.logger.Info(ctx, "tour stopped", "visited", len(n.history))
	}
	n.publish(ctx, Event{Type: ports.EventStop, Step: n.current})
	return true
}

// Next moves to the following step. At the last step it does nothing.
func (n *Navigator) Next(ctx context.Context) (tour.Step, bool) {
	ref, ok := n.reference(ctx)
	if !ok {
		return tour.Step{}, false
	}
	step, ok := n.registry.Next(ref)
	if !ok {
		if n.logger != nil {
			n.logger.Debug(ctx, "already at last step", "step", ref.Name)
		}
		return tour.Step{}, false
	}
	n.setCurrent(ctx, step)
	return step, true
}

// Prev moves to the preceding step. At the first step it does nothing.
func (n *Navigator) Prev(ctx context.Context) (tour.Step, bool) {
	ref, ok := n.reference(ctx)
	if !ok {
		return tour.Step{}, false
	}
	step, ok := n.registry.Prev(ref)
	if !ok {
		if n.logger != nil {
			n.logger.Debug(ctx, "already at first step", "step", ref.Name)
		}
		return tour.Step{}, false
	}
	n.setCurrent(ctx, step)
	return step, true
}

// JumpToName walks forward from the first step until it reaches name. It does
// nothing when name is not part of the traversal.
func (n *Navigator) JumpToName(ctx context.Context, name string) (tour.Step, bool) {
	step, ok := n.registry.First()
	for ok && step.Name != name {
		step, ok = n.registry.Next(step)
	}
	if !ok {
		if n.logger != nil {
			n.logger.Debug(ctx, "jump target not registered",
				"error", walkthrougherrors.NewStepError(name, tour.ErrStepNotFound))
		}
		return tour.Step{}, false
	}
	n.setCurrent(ctx, step)
	return step, true
}

// Refresh re-measures the current step and moves the overlay to it, e.g.
// after the host layout changed.
func (n *Navigator) Refresh(ctx context.Context) bool {
	if n.current == nil {
		return false
	}
	step, ok := n.registry.ByName(n.current.Name)
	if !ok {
		return false
	}
	n.move(ctx, step)
	return true
}

// Select invokes the current step's OnSelect callback.
func (n *Navigator) Select(ctx context.Context) bool {
	if n.current == nil {
		return false
	}
	step, ok := n.registry.ByName(n.current.Name)
	if !ok || step.OnSelect == nil {
		return false
	}
	if n.logger != nil {
		n.logger.Debug(ctx, "step selected", "step", step.Name)
	}
	step.OnSelect()
	return true
}

// Detach tears the session down: the registry stops accepting changes, any
// pending start is cancelled, and the navigator returns to Idle.
func (n *Navigator) Detach() {
	n.cancelStart()
	n.registry.Detach()
	n.current = nil
	n.visible = false
	n.lifecycle = Idle
}

// State returns a snapshot of the navigation state.
func (n *Navigator) State() State {
	var current *tour.Step
	if n.current != nil {
		step := *n.current
		current = &step
	}
	return State{Current: current, Visible: n.visible, Lifecycle: n.lifecycle}
}

// View returns the state enriched with the flags the tooltip needs.
func (n *Navigator) View() View {
	state := n.State()
	view := View{
		Current:   state.Current,
		Visible:   state.Visible,
		Lifecycle: state.Lifecycle,
		Total:     n.registry.Len(),
	}
	if state.Current == nil {
		return view
	}
	step, ok := n.registry.ByName(state.Current.Name)
	if !ok {
		return view
	}
	view.StepNumber = n.registry.Position(step)
	_, view.HasNext = n.registry.Next(step)
	_, view.HasPrev = n.registry.Prev(step)
	view.IsFirstStep = !view.HasPrev
	view.IsLastStep = !view.HasNext
	return view
}

// History returns the names of the steps visited, in order.
func (n *Navigator) History() []string {
	return append([]string(nil), n.history...)
}

// reference resolves the step navigation is relative to: the current step
// while it is still registered, otherwise the first step.
func (n *Navigator) reference(ctx context.Context) (tour.Step, bool) {
	if n.current != nil {
		if step, ok := n.registry.ByName(n.current.Name); ok {
			return step, true
		}
		if n.logger != nil {
			n.logger.Debug(ctx, "resolving from first step",
				"error", walkthrougherrors.NewStepError(n.current.Name, tour.ErrStaleStep))
		}
	}
	return n.registry.First()
}

func (n *Navigator) setCurrent(ctx context.Context, step tour.Step) {
	n.current = &step
	n.history = append(n.history, step.Name)
	if n.logger != nil {
		n.logger.Debug(ctx, "step changed", "step", step.Name, "order", step.Order)
	}
	n.publish(ctx, Event{Type: ports.EventStepChange, Step: &step})
	n.move(ctx, step)
}

func (n *Navigator) move(ctx context.Context, step tour.Step) {
	if n.mover != nil {
		n.mover.MoveTo(ctx, step)
	}
}

func (n *Navigator) publish(ctx context.Context, event Event) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		if n.logger != nil {
			n.logger.Warn(ctx, "publish tour event failed", "event_type", event.Type, "error", err)
		}
	}
}

func (n *Navigator) cancelStart() {
	n.generation++
	n.startPending = false
	n.startTries = 0
}

var _ Capability = (*Navigator)(nil)
