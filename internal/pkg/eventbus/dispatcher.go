// Package eventbus provides a synchronous in-process event dispatcher.
// It is an observer list, not a message bus: subscribers run on the
// publishing goroutine, in registration order. The dispatcher is
// constructed explicitly and injected where needed; there is no
// package-level singleton, so tests can build isolated instances.
package eventbus

import (
	"context"
	"errors"
	"sync"
	"time"

	"heim/internal/pkg/logger"
)

// Event is a domain event carried through the dispatcher.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// Handler reacts to a published event. A handler error does not stop
// delivery to later handlers.
type Handler func(ctx context.Context, event Event) error

// Dispatcher delivers events to subscribers synchronously.
// Subscription normally happens once at composition time; publishing
// happens per request, so the handler map is guarded for concurrent
// readers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
}

func NewDispatcher(log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for the named event. Handlers fire in
// registration order.
func (d *Dispatcher) Subscribe(eventName string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Publish delivers the events to all subscribed handlers. Events are
// published after the owning transaction has committed, so handler
// errors are logged rather than propagated: failing the request at
// that point would misreport persisted state.
func (d *Dispatcher) Publish(ctx context.Context, events ...Event) {
	for _, event := range events {
		d.mu.RLock()
		handlers := d.handlers[event.EventName()]
		d.mu.RUnlock()

		var errsJoined []error
		for _, handler := range handlers {
			if err := handler(ctx, event); err != nil {
				errsJoined = append(errsJoined, err)
			}
		}
		if len(errsJoined) > 0 {
			d.log.Error("event handler failed",
				"event", event.EventName(),
				"error", errors.Join(errsJoined...),
			)
		}
	}
}
