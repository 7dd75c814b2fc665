// internal/pkg/bus/bus.go
package bus

import (
	"sync"
)

// Topics carried by the change propagation bus. Payload is the affected
// user id for cart changes (empty for session carts) and empty for stock
// changes, where subscribers are expected to re-read the ledger anyway.
const (
	TopicStockChanged = "stock:change"
	TopicCartChanged  = "cart:change"
)

// Handler receives the payload of a published change
type Handler func(payload string)

// Bus broadcasts change signals to every currently-registered subscriber.
// Delivery is at-least-once with no ordering guarantee between topics and no
// replay for late subscribers. Unsubscribing is the caller's responsibility
// on teardown.
type Bus interface {
	// Publish delivers payload to all current subscribers of topic.
	Publish(topic, payload string)

	// Subscribe registers fn for topic and returns the function that
	// removes the registration.
	Subscribe(topic string, fn Handler) (unsubscribe func())
}

// Emitter is the in-process Bus. Handlers run synchronously on the
// publishing goroutine, which keeps test assertions deterministic.
type Emitter struct {
	mu       sync.Mutex
	nextID   int
	handlers map[string]map[int]Handler
}

// NewEmitter creates an in-process bus
func NewEmitter() *Emitter {
	return &Emitter{
		handlers: make(map[string]map[int]Handler),
	}
}

// Publish invokes every handler currently registered for topic
func (e *Emitter) Publish(topic, payload string) {
	e.mu.Lock()
	registered := make([]Handler, 0, len(e.handlers[topic]))
	for _, fn := range e.handlers[topic] {
		registered = append(registered, fn)
	}
	e.mu.Unlock()

	for _, fn := range registered {
		fn(payload)
	}
}

// Subscribe registers fn for topic
func (e *Emitter) Subscribe(topic string, fn Handler) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handlers[topic] == nil {
		e.handlers[topic] = make(map[int]Handler)
	}

	id := e.nextID
	e.nextID++
	e.handlers[topic][id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.handlers[topic], id)
	}
}
