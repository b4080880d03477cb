package observe

import "sync"

// watchable is the untyped subscription surface shared by observables.
type watchable interface {
	Observe(fn func()) *Subscription
}

// depSet tracks which observables a computation read during its last run,
// keeping exactly one subscription per dependency and dropping subscriptions
// to observables the latest run no longer read. Runs of one computation are
// serialized by their owner; the mutex covers disposal racing a run.
type depSet struct {
	mu   sync.Mutex
	subs map[watchable]*Subscription
	seen map[watchable]bool
}

func newDepSet() *depSet {
	return &depSet{subs: make(map[watchable]*Subscription)}
}

func (d *depSet) begin() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = make(map[watchable]bool)
}

func (d *depSet) track(w watchable, invalidate func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen == nil {
		d.seen = make(map[watchable]bool)
	}
	d.seen[w] = true
	if _, ok := d.subs[w]; ok {
		return
	}
	d.subs[w] = w.Observe(invalidate)
}

func (d *depSet) end() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for w, sub := range d.subs {
		if !d.seen[w] {
			sub.Unsubscribe()
			delete(d.subs, w)
		}
	}
	d.seen = nil
}

func (d *depSet) clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for w, sub := range d.subs {
		sub.Unsubscribe()
		delete(d.subs, w)
	}
}

// Track records the dependencies of a single computation run and carries the
// run's disposable scope. A Track is only valid for the duration of the run
// it was created for.
type Track struct {
	deps       *depSet
	invalidate func()
	store      *Store
}

// Store returns the disposable scope for the current run. Everything added
// to it is released before the next run of the same computation begins, and
// on disposal of the computation itself.
func (t *Track) Store() *Store {
	return t.store
}

// Read returns the observable's current value and records it as a dependency
// of the running computation. A nil Track performs a plain read.
func Read[T any](t *Track, obs Observable[T]) T {
	if t != nil {
		t.deps.track(obs, t.invalidate)
	}
	return obs.Get()
}

// Runner is a side-effecting computation that re-executes whenever one of
// the observables it read changes.
type Runner struct {
	mu       sync.Mutex
	fn       func(*Track)
	deps     *depSet
	runStore *Store
	running  bool
	queued   bool
	disposed bool
}

// Autorun runs fn immediately and re-runs it whenever a dependency read
// through its Track changes. Re-entrant invalidations arriving during a run
// are queued and flushed after the run completes; runs of the same computation
// never overlap. The runner is owned by store.
func Autorun(store *Store, fn func(t *Track)) *Runner {
	r := &Runner{fn: fn, deps: newDepSet()}
	if store != nil {
		store.Add(r)
	}
	r.invalidate()
	return r
}

func (r *Runner) invalidate() {
	r.mu.Lock()
	if r.disposed {
		r.mu.Unlock()
		return
	}
	if r.running {
		r.queued = true
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	for {
		r.runOnce()

		r.mu.Lock()
		if r.queued && !r.disposed {
			r.queued = false
			r.mu.Unlock()
			continue
		}
		r.running = false
		r.mu.Unlock()
		return
	}
}

func (r *Runner) runOnce() {
	r.mu.Lock()
	prev := r.runStore
	r.runStore = NewStore()
	store := r.runStore
	r.mu.Unlock()

	// The previous run's scope is released before the next run begins.
	if prev != nil {
		prev.Dispose()
	}

	r.deps.begin()
	r.fn(&Track{deps: r.deps, invalidate: r.invalidate, store: store})
	r.deps.end()
}

// Dispose stops the runner, releases its dependency subscriptions, and
// disposes the scope of its last run. No further runs occur after disposal.
func (r *Runner) Dispose() {
	r.mu.Lock()
	if r.disposed {
		r.mu.Unlock()
		return
	}
	r.disposed = true
	store := r.runStore
	r.runStore = nil
	r.mu.Unlock()

	r.deps.clear()
	if store != nil {
		store.Dispose()
	}
}
