package ports

import "context"

const (
	// EventStart is emitted when a tour session resolves its first step and becomes visible.
	EventStart = "start"
	// EventStop is emitted when a running tour is stopped or skipped.
	EventStop = "stop"
	// EventStepChange is emitted whenever the current step changes.
	EventStepChange = "stepChange"
)

// DomainEvent represents a significant occurrence within the tour. Events
// carry structured payloads that subscribers can use for logging, UI updates,
// or analytics.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after all handlers ran. Ordering relative to
// overlay animation completion is not guaranteed.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. A returned error is
// logged by the publisher and delivery continues with remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers invoke Unsubscribe to
// stop receiving events.
type Subscription interface {
	Unsubscribe()
}
