package navigation

import "github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"

// Lifecycle is the phase of a tour session.
type Lifecycle int

const (
	// Idle means no step is active and the overlay is hidden.
	Idle Lifecycle = iota
	// Running means a step is active.
	Running
	// Stopped is terminal for a run; the overlay is hidden and history is kept.
	Stopped
)

func (l Lifecycle) String() string {
	switch l {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "idle"
	}
}

// State is a snapshot of the navigator.
type State struct {
	Current   *tour.Step
	Visible   bool
	Lifecycle Lifecycle
}

// View is what the presentation layer needs to render the tooltip and its controls.
type View struct {
	Current     *tour.Step
	Visible     bool
	Lifecycle   Lifecycle
	IsFirstStep bool
	IsLastStep  bool
	HasNext     bool
	HasPrev     bool
	StepNumber  int
	Total       int
}
