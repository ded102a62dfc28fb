// Package write implements the write engine (spec.md §4.3): a
// selection-directed descent through an incoming data tree that
// materializes and updates graph nodes, merging by entity key and
// collecting the set of subscribers a transaction must wake.
//
// Write is the single entry point; writeSelectionSet, writeField, and
// writeArrayNode are its internal recursive steps and are not exported —
// callers only ever drive a write from its root selection.
package write
