package bus

import (
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/entitystore/internal/core/models"
)

// EventBus is a thread-safe, in-process pub/sub bus for component lifecycle events.
//
// Key characteristics:
// - Type-based fan-out: handlers subscribe by EventType, or to every type with SubscribeAll.
// - Synchronous delivery: Publish calls handlers in the caller goroutine.
// - Error aggregation: handler errors are joined and returned from Publish.
type EventBus interface {
	// Publish delivers the event synchronously to all active subscribers of event.Type.
	Publish(event Event) error
	// Subscribe registers a handler for one event type.
	Subscribe(eventType EventType, handler EventHandler) (Subscription, error)
	// SubscribeAll registers a handler for every event type.
	SubscribeAll(handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. It is safe to call with nil.
	Unsubscribe(Subscription) error
	// PublishAsync publishes in a separate goroutine; the channel receives the joined
	// handler error (or nil) and is then closed.
	PublishAsync(event Event) <-chan error
	// GetMetrics returns a snapshot of delivery counters.
	GetMetrics() Metrics
}

type EventType string

const (
	ComponentAdded   EventType = "component.added"
	ComponentRemoved EventType = "component.removed"
	ComponentSaved   EventType = "component.saved"
	EntityDestroyed  EventType = "entity.destroyed"
)

// Event describes a change to committed component state. Handlers treat it as read-only.
type Event struct {
	Type   EventType
	Entity models.EntityID
	Kind   models.Kind
	// View is the committing view, uuid.Nil for events not caused by a view.
	View uuid.UUID
	// Properties lists the property names a save wrote or cleared, sorted.
	Properties []string
	Timestamp  time.Time
}

type EventHandler func(Event) error

type Subscription interface {
	ID() string
	EventType() EventType
	IsActive() bool
	Cancel() error
}

type Metrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	SubscribersActive uint64
}
