// Package eventbus provides an in-memory event bus for order lifecycle
// events.
package eventbus

import (
	"context"
	"log"
	"sync"

	"github.com/example/securecam-store/domain/order"
)

// EventHandler is a function that handles order events.
type EventHandler func(event order.Event)

// EventBus provides publish-subscribe functionality for order events.
type EventBus struct {
	handlers map[order.EventType][]EventHandler
	mu       sync.RWMutex
}

// New creates a new EventBus.
func New() *EventBus {
	return &EventBus{
		handlers: make(map[order.EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type.
func (eb *EventBus) Subscribe(eventType order.EventType, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
	log.Printf("[eventbus] Subscribed to %s", eventType)
}

// SubscribeAll registers a handler for all order event types.
func (eb *EventBus) SubscribeAll(handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eventTypes := []order.EventType{
		order.EventTypeOrderCreated,
		order.EventTypeStatusChanged,
		order.EventTypeTechnicianAssigned,
		order.EventTypeFeedbackRecorded,
	}

	for _, et := range eventTypes {
		eb.handlers[et] = append(eb.handlers[et], handler)
	}
	log.Println("[eventbus] Subscribed to all event types")
}

// Publish publishes an event to all registered handlers. Handlers run
// asynchronously so slow consumers never block the publisher.
func (eb *EventBus) Publish(_ context.Context, event order.Event) {
	eb.mu.RLock()
	handlers := eb.handlers[event.Type]
	eb.mu.RUnlock()

	for _, handler := range handlers {
		go func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[eventbus] Handler panic for %s: %v", event.Type, r)
				}
			}()
			h(event)
		}(handler)
	}
}

// HandlerCount returns the number of handlers for a specific event type.
func (eb *EventBus) HandlerCount(eventType order.EventType) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.handlers[eventType])
}
