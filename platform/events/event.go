// Package events is the in-process publish/subscribe layer. Event types
// themselves live in internal/events.
package events

import (
	"context"
	"time"
)

// Event is anything published on a Bus. EventName is the subscription key.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the publish timestamp.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent stamps an event with the current UTC time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now().UTC()}
}

// Handler consumes events for the names it was subscribed to.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc lets a plain function subscribe.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error { return f(ctx, event) }

// Bus fans events out to subscribers.
type Bus interface {
	// Publish returns immediately; handlers run on their own goroutines and
	// failures are only logged.
	Publish(ctx context.Context, event Event)

	// PublishSync runs every handler before returning and joins their errors.
	PublishSync(ctx context.Context, event Event) error

	Subscribe(eventName string, handler Handler)
}
