package node

import (
	"context"
	"log/slog"

	"github.com/simon-lentz/graphcache/cacheerr"
	"github.com/simon-lentz/graphcache/internal/trace"
)

// parentLink is one incoming edge recorded on a child node (spec.md §3
// "parents": "an unordered multiset of (parentNode, keyInParent)
// back-links").
type parentLink struct {
	parent      *Node
	keyInParent string
}

// Node is the fundamental unit of the graph (spec.md §3 "Graph node"). An
// array node is represented by the same type with isArray set; its keys
// are the string forms of a dense run of non-negative integers.
type Node struct {
	store *Store

	id           string // store key this node is indexed under, "" if none
	isArray      bool
	data         map[string]Entry
	parents      []parentLink
	txID         int64
	isOptimistic bool

	newerBaseVersion       *Node
	newerOptimisticVersion *Node

	subscribers           map[SubscriberHandle]struct{}
	optimisticSubscribers map[SubscriberHandle]struct{}
}

// ID returns the store key this node is registered under, or "" if it has
// none (an embedded, non-normalizable object).
func (n *Node) ID() string { return n.id }

// IsArray reports whether this node is an array node.
func (n *Node) IsArray() bool { return n.isArray }

// SetID attaches (or changes) the store key this node is registered
// under. The write engine calls this once a data object's store key is
// known (spec.md §4.3 "if data has a store key, attach indexEntry").
func (n *Node) SetID(id string) { n.id = id }

// head follows the forward-version chain relevant to tx's visibility and
// returns the live node to operate on (spec.md §4.2 step 1: "If a newer
// forward version for the relevant visibility exists, delegate to it").
func (n *Node) head(tx *Transaction) *Node {
	cur := n
	for {
		var next *Node
		if tx.IsOptimistic {
			next = cur.newerOptimisticVersion
		} else {
			next = cur.newerBaseVersion
		}
		if next == nil {
			return cur
		}
		cur = next
	}
}

// Get performs a raw field lookup with no projection semantics (spec.md
// §4.2 "get(key) → value").
func (n *Node) Get(key string) (Entry, bool) {
	e, ok := n.data[key]
	return e, ok
}

// Len reports the number of fields held directly on this node. For an
// array node this is its element count.
func (n *Node) Len() int { return len(n.data) }

// AddParent registers a back-link from this node to a parent under the
// given key (spec.md §3 invariant 5).
func (n *Node) AddParent(parent *Node, keyInParent string) {
	n.parents = append(n.parents, parentLink{parent: parent, keyInParent: keyInParent})
}

// Set implements the node store's four-step write contract (spec.md
// §4.2). It never mutates n directly when a copy-on-write is required;
// the returned *Node is the one callers must use going forward.
func (n *Node) Set(key string, value Entry, tx *Transaction) *Node {
	// Step 1: delegate to the newer head if this version has been
	// superseded for tx's visibility.
	head := n.head(tx)
	if head != n {
		return head.Set(key, value, tx)
	}

	// Step 2: referential short-circuit.
	if existing, ok := n.data[key]; ok && existing.equal(value) {
		return n
	}

	// Step 3: same-transaction in-place mutation.
	if n.txID == tx.ID {
		n.data[key] = value
		return n
	}

	// Step 4: copy-on-write.
	next := &Node{
		store:        n.store,
		id:           n.id,
		isArray:      n.isArray,
		data:         cloneData(n.data),
		txID:         tx.ID,
		isOptimistic: tx.IsOptimistic,
	}
	next.data[key] = value
	// Subscriber buckets carry onto the new head exactly like parents and
	// the index registration do below: a handle registered before this
	// write must still be reachable from whichever node becomes the live
	// head after it, or a later write would have nothing left to wake.
	next.subscribers = n.subscribers
	next.optimisticSubscribers = n.optimisticSubscribers
	next.adoptParents(n, tx)

	trace.Debug(context.Background(), n.logger(), "graphcache.node.set: copy-on-write",
		slog.String("key", key), slog.Int64("tx", tx.ID), slog.String("id", n.id))

	n.attachEligibleSubscribers(tx)
	if tx.IsOptimistic {
		n.newerOptimisticVersion = next
	} else {
		n.newerBaseVersion = next
	}

	if next.id != "" {
		if n.store == nil {
			corruptIndex("node carries a store key but has no owning store")
		}
		n.store.rehead(next.id, next, tx.IsOptimistic)
	}

	return next
}

// adoptParents re-points every incoming edge of previous at the receiver,
// copy-on-writing each parent in turn (spec.md §4.2 "adoptParents"). The
// index registration is carried over by [Node.Set], which copies
// previous's id onto the new node and re-points the index at it.
func (n *Node) adoptParents(previous *Node, tx *Transaction) {
	n.parents = make([]parentLink, 0, len(previous.parents))
	for _, link := range previous.parents {
		newParent := link.parent.Set(link.keyInParent, Ref(n), tx)
		n.parents = append(n.parents, parentLink{parent: newParent, keyInParent: link.keyInParent})
	}
}

// attachEligibleSubscribers moves n's subscribers into tx's pending
// notification set, per the eligibility rule in spec.md §4.2: an
// optimistic transaction only wakes optimistic subscribers; a
// non-optimistic transaction wakes both buckets.
func (n *Node) attachEligibleSubscribers(tx *Transaction) {
	for sub := range n.optimisticSubscribers {
		tx.markPending(sub)
	}
	if !tx.IsOptimistic {
		for sub := range n.subscribers {
			tx.markPending(sub)
		}
	}
}

// Subscribe registers sub on this node's base bucket, or its optimistic
// bucket when optimistic is true (spec.md §4.2 "subscribe").
func (n *Node) Subscribe(sub SubscriberHandle, optimistic bool) {
	if optimistic {
		if n.optimisticSubscribers == nil {
			n.optimisticSubscribers = make(map[SubscriberHandle]struct{})
		}
		n.optimisticSubscribers[sub] = struct{}{}
		return
	}
	if n.subscribers == nil {
		n.subscribers = make(map[SubscriberHandle]struct{})
	}
	n.subscribers[sub] = struct{}{}
}

// Unsubscribe removes sub from both subscriber buckets. It is a no-op if
// sub is not present in either (spec.md §5 "implementations must tolerate
// a missing entry").
func (n *Node) Unsubscribe(sub SubscriberHandle) {
	delete(n.subscribers, sub)
	delete(n.optimisticSubscribers, sub)
}

func (n *Node) logger() *slog.Logger {
	if n.store == nil {
		return nil
	}
	return n.store.logger
}

func cloneData(data map[string]Entry) map[string]Entry {
	next := make(map[string]Entry, len(data)+1)
	for k, v := range data {
		next[k] = v
	}
	return next
}

// corruptIndex panics with an [cacheerr.InternalError], reserved for
// invariants the write engine must never be able to violate (spec.md §3
// invariant 4: "exactly one index entry exists at any time").
func corruptIndex(msg string) {
	panic(cacheerr.WrapPanic(msg, cacheerr.KindCorruptIndex))
}
