// Package store is the façade and wiring layer spec.md §2 calls the
// "remaining ≈10%": it owns one [node.Store], one [subscribe.Coordinator],
// and exposes Read/ReadQuery/Write/WriteQuery/Observe/Tx over them
// (spec.md §6 "External interfaces").
//
// Write notifies the subscription coordinator synchronously, after the
// node store's root index has already been updated — see
// subscribe.doc.go for why this module delivers notifications
// synchronously rather than deferring to an implicit task queue.
package store
