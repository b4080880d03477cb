// Package observe provides the reactive-value primitives used by the inline
// diff overlay: writable observable values, derived (computed) values with
// automatic dependency tracking, monotonic counters bridging external events,
// typed event emitters, and disposable scopes for deterministic teardown.
//
// Recomputation is synchronous, ordered, and non-overlapping: a write to an
// observed value re-runs every computation that read it before the write
// returns, and writes arriving while a computation is running are queued and
// flushed after the current run completes.
package observe
