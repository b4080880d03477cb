package observe

import "sync"

// Emitter is a typed event stream. Subscribers are invoked synchronously,
// in registration order, on every Fire.
type Emitter[T any] struct {
	mu      sync.Mutex
	nextID  uint64
	entries []emitterEntry[T]
}

type emitterEntry[T any] struct {
	id uint64
	fn func(T)
}

// NewEmitter creates an emitter with no subscribers.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// Subscribe registers a listener for fired events.
func (e *Emitter[T]) Subscribe(fn func(T)) *Subscription {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.entries = append(e.entries, emitterEntry[T]{id: id, fn: fn})
	e.mu.Unlock()

	return newSubscription(func() { e.remove(id) })
}

// Fire delivers an event to every subscriber.
// Listeners are invoked outside the lock.
func (e *Emitter[T]) Fire(event T) {
	e.mu.Lock()
	snapshot := make([]func(T), len(e.entries))
	for i, entry := range e.entries {
		snapshot[i] = entry.fn
	}
	e.mu.Unlock()

	for _, fn := range snapshot {
		fn(event)
	}
}

func (e *Emitter[T]) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, entry := range e.entries {
		if entry.id == id {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return
		}
	}
}

// CounterFromEmitter returns a counter bumped once per event fired by e.
// The bridging subscription is owned by store.
func CounterFromEmitter[T any](store *Store, e *Emitter[T]) *Counter {
	c := NewCounter()
	sub := e.Subscribe(func(T) { c.Increment() })
	if store != nil {
		store.Add(sub)
	}
	return c
}
