// Package read implements the read engine (spec.md §4.4): lazy,
// query-shaped views over the node store. An [Object] exposes exactly the
// fields named in its selection set (through matching fragments); an
// [Array] projects an array node's elements through the same nested
// selection. Neither type exposes a mutator — rejecting every mutation
// (spec.md §7) is simply the absence of a Set/Delete method.
package read
