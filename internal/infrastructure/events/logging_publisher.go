package events

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/walkthrough/internal/ports"
)

// AllEvents subscribes a handler to every event type.
const AllEvents = "*"

// LoggingPublisher is an in-process publish/subscribe bus that also writes
// every event as a structured log entry.
type LoggingPublisher struct {
	logger ports.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewLoggingPublisher creates an event publisher that writes each event as a structured log entry.
func NewLoggingPublisher(logger ports.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: logger,
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish logs the event and delivers it to its subscribers, then to
// wildcard subscribers. Handler errors are logged and do not stop delivery.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.EventType()]...)
	handlers = append(handlers, p.subs[AllEvents]...)
	p.mu.RUnlock()

	if p.logger != nil {
		fields := []interface{}{"event_type", event.EventType()}
		switch payload := event.Payload().(type) {
		case map[string]interface{}:
			keys := make([]string, 0, len(payload))
			for key := range payload {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fields = append(fields, key, payload[key])
			}
		case nil:
		default:
			fields = append(fields, "payload", payload)
		}
		p.logger.Info(ctx, "tour event", fields...)
	}

	for _, entry := range handlers {
		handler := entry.handler
		if handler == nil {
			continue
		}
		if err := handler(ctx, event); err != nil && p.logger != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "error", err)
		}
	}

	return nil
}

// Subscribe registers a handler for the provided event type, or for every
// event when eventType is AllEvents.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return noopSubscription{}, nil
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return &subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					next := make([]subscriptionEntry, 0, len(handlers)-1)
					next = append(next, handlers[:i]...)
					p.subs[eventType] = append(next, handlers[i+1:]...)
					break
				}
			}
		},
	}, nil
}

// Subscribers returns the number of handlers registered for eventType.
func (p *LoggingPublisher) Subscribers(eventType string) int {
	if p == nil {
		return 0
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subs[eventType])
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	if s.cancel != nil {
		s.once.Do(s.cancel)
	}
}

type subscriptionEntry struct {
	id      int
	handler ports.EventHandler
}

var _ ports.EventPublisher = (*LoggingPublisher)(nil)
