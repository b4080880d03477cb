package observe

import "sync"

// Derived is a computed observable value. It recomputes lazily: an
// invalidated dependency marks the value dirty and notifies observers, but
// the computation only re-runs when a reader pulls the value again.
// Recomputation is serialized: concurrent pulls never overlap, and a
// dependency write landing during a run leaves the value dirty so the next
// pull recomputes with the newer inputs.
type Derived[T any] struct {
	src       source
	mu        sync.Mutex
	computeMu sync.Mutex
	compute   func(*Track) T
	deps      *depSet
	runStore  *Store
	value     T
	epoch     uint64
	valid     bool
	disposed  bool
}

// NewDerived creates a derived value from a computation. Dependencies are
// tracked automatically through the Track passed to compute. The derived
// value is owned by store.
func NewDerived[T any](store *Store, compute func(t *Track) T) *Derived[T] {
	d := &Derived[T]{compute: compute, deps: newDepSet()}
	if store != nil {
		store.Add(d)
	}
	return d
}

// Get returns the current value, recomputing it if a dependency changed
// since the last pull.
func (d *Derived[T]) Get() T {
	d.mu.Lock()
	if d.valid || d.disposed {
		v := d.value
		d.mu.Unlock()
		return v
	}
	d.mu.Unlock()

	d.computeMu.Lock()

	// Another pull may have recomputed while we waited for the lock.
	d.mu.Lock()
	if d.valid || d.disposed {
		v := d.value
		d.mu.Unlock()
		d.computeMu.Unlock()
		return v
	}
	start := d.epoch
	prev := d.runStore
	d.runStore = NewStore()
	store := d.runStore
	d.mu.Unlock()

	if prev != nil {
		prev.Dispose()
	}

	d.deps.begin()
	v := d.compute(&Track{deps: d.deps, invalidate: d.invalidate, store: store})
	d.deps.end()

	d.mu.Lock()
	dirty := false
	if !d.disposed {
		d.value = v
		// A dependency write during the run leaves the value dirty for
		// the next pull.
		d.valid = d.epoch == start
		dirty = !d.valid
	}
	d.mu.Unlock()
	d.computeMu.Unlock()

	if dirty {
		d.src.notify()
	}
	return v
}

// Observe registers a callback invoked when the value becomes dirty.
func (d *Derived[T]) Observe(fn func()) *Subscription {
	return d.src.observe(fn)
}

func (d *Derived[T]) invalidate() {
	d.mu.Lock()
	d.epoch++
	wasValid := d.valid
	d.valid = false
	d.mu.Unlock()

	if wasValid {
		d.src.notify()
	}
}

// Dispose releases the dependency subscriptions and the last run's scope.
// After disposal Get returns the last computed value without recomputing.
func (d *Derived[T]) Dispose() {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return
	}
	d.disposed = true
	store := d.runStore
	d.runStore = nil
	d.mu.Unlock()

	// Wait for an in-flight recomputation before severing its dependencies.
	d.computeMu.Lock()
	d.deps.clear()
	d.computeMu.Unlock()

	if store != nil {
		store.Dispose()
	}
}
