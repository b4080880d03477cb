package observe

import "sync"

// Observable is a readable reactive value.
type Observable[T any] interface {
	// Get returns the current value.
	Get() T

	// Observe registers a callback invoked whenever the value changes.
	Observe(fn func()) *Subscription
}

// source is the observer registry shared by observable implementations.
// Observers are kept in registration order so notification is deterministic.
type source struct {
	mu      sync.Mutex
	nextID  uint64
	entries []sourceEntry
}

type sourceEntry struct {
	id uint64
	fn func()
}

func (s *source) observe(fn func()) *Subscription {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.entries = append(s.entries, sourceEntry{id: id, fn: fn})
	s.mu.Unlock()

	return newSubscription(func() { s.remove(id) })
}

func (s *source) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// notify calls every observer in registration order.
// Observers are invoked outside the lock.
func (s *source) notify() {
	s.mu.Lock()
	snapshot := make([]func(), len(s.entries))
	for i, e := range s.entries {
		snapshot[i] = e.fn
	}
	s.mu.Unlock()

	for _, fn := range snapshot {
		fn()
	}
}

// Value is a writable observable value.
type Value[T any] struct {
	src source
	mu  sync.Mutex
	v   T
}

// NewValue creates a value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.v
}

// Set replaces the value and notifies observers.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.v = value
	v.mu.Unlock()
	v.src.notify()
}

// Observe registers a callback invoked on every Set.
func (v *Value[T]) Observe(fn func()) *Subscription {
	return v.src.observe(fn)
}

// Counter is a monotonically increasing observable counter. It bridges
// external completion events into the reactive graph: each event bumps the
// counter once, invalidating every computation that read it.
type Counter struct {
	src source
	mu  sync.Mutex
	n   uint64
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Get returns the current count.
func (c *Counter) Get() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// Increment bumps the counter and notifies observers.
func (c *Counter) Increment() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
	c.src.notify()
}

// Observe registers a callback invoked on every Increment.
func (c *Counter) Observe(fn func()) *Subscription {
	return c.src.observe(fn)
}
