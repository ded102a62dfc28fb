// Package node implements the normalized graph node store: the mapping
// from store key to node, the parallel optimistic index, node creation,
// and parent-linked copy-on-write.
//
// A [Node] holds a data map from field store name to either a scalar
// value, a reference to a child node, or (via the same reference slot) an
// array node — an array node is an ordinary *Node whose keys are the
// string forms of a dense run of non-negative integers starting at "0".
//
// Within one transaction, at most one live version of a logical node
// exists; [Node.Set] mutates it in place. Across transactions, a node is
// immutable — any change produces a new node linked from the old one via
// newerBaseVersion or newerOptimisticVersion, and [Store] is responsible
// for keeping its two indices pointed at the current head of each chain.
//
// This package assumes the single-threaded cooperative scheduling model:
// all operations run to completion without interleaving, so neither
// [Store] nor [Node] takes any lock. A host driving this package from
// multiple goroutines must serialize its own calls; the store façade
// takes no lock either.
package node
