package observe

import "sync"

// Disposable releases a held resource.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a function to the Disposable interface.
type DisposeFunc func()

// Dispose calls the function.
func (f DisposeFunc) Dispose() {
	f()
}

// Subscription represents an active observer registration.
// Unsubscribing more than once is safe.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func newSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

// Dispose implements Disposable so a subscription can be owned by a Store.
func (s *Subscription) Dispose() {
	s.Unsubscribe()
}

// Store owns an ordered collection of disposables and releases them
// deterministically, in reverse registration order, when disposed.
// Adding to an already-disposed store disposes the item immediately.
type Store struct {
	mu       sync.Mutex
	items    []Disposable
	disposed bool
}

// NewStore creates an empty disposable store.
func NewStore() *Store {
	return &Store{}
}

// Add registers a disposable with the store.
func (st *Store) Add(d Disposable) {
	if d == nil {
		return
	}
	st.mu.Lock()
	if st.disposed {
		st.mu.Unlock()
		d.Dispose()
		return
	}
	st.items = append(st.items, d)
	st.mu.Unlock()
}

// AddFunc registers a cleanup function with the store.
func (st *Store) AddFunc(fn func()) {
	st.Add(DisposeFunc(fn))
}

// Dispose releases all registered disposables in reverse order.
// It is safe to call Dispose multiple times.
func (st *Store) Dispose() {
	st.mu.Lock()
	if st.disposed {
		st.mu.Unlock()
		return
	}
	st.disposed = true
	items := st.items
	st.items = nil
	st.mu.Unlock()

	for i := len(items) - 1; i >= 0; i-- {
		items[i].Dispose()
	}
}

// IsDisposed returns true if the store has been disposed.
func (st *Store) IsDisposed() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.disposed
}
