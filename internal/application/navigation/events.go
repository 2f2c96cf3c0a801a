package navigation

import (
	"github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"
	"github.com/alexisbeaulieu97/walkthrough/internal/ports"
)

// Event is the DomainEvent published by the Navigator. Subscribers that need
// the step itself can type-assert to Event.
type Event struct {
	Type string
	Step *tour.Step
}

// EventType implements ports.DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements ports.DomainEvent.
func (e Event) Payload() interface{} {
	if e.Step == nil {
		return nil
	}
	return map[string]interface{}{
		"step":  e.Step.Name,
		"order": e.Step.Order,
		"text":  e.Step.Text,
	}
}

// StepFromEvent extracts the step carried by a navigation event.
func StepFromEvent(event ports.DomainEvent) (tour.Step, bool) {
	ev, ok := event.(Event)
	if !ok || ev.Step == nil {
		return tour.Step{}, false
	}
	return *ev.Step, true
}

var _ ports.DomainEvent = Event{}
