package node

import "log/slog"

// Store owns the two node indices (spec.md §3 "indexEntry", §4.2
// contract), mints nodes stamped with a transaction's id and optimism
// flag, and hands out the monotonically increasing transaction ids that
// give writes a total order (spec.md §5 "Ordering guarantees"). The
// subscriber-notification loop itself lives in the subscribe package,
// driven by the store façade, which holds a *Store.
type Store struct {
	baseIndex       map[string]*Node
	optimisticIndex map[string]*Node

	txCounter int64
	logger    *slog.Logger
}

// Option configures a [Store].
type Option func(*Store)

// WithLogger enables debug logging for node-store operations (copy-on-write
// chain growth, index re-pointing).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// NewStore constructs an empty node store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		baseIndex:       make(map[string]*Node),
		optimisticIndex: make(map[string]*Node),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewNode mints a node stamped with tx's id and optimism flag (spec.md
// §4.2 "newNode(transaction, initialData?) → node"). initialData may be
// nil.
func (s *Store) NewNode(tx *Transaction, initialData map[string]Entry, isArray bool) *Node {
	data := initialData
	if data == nil {
		data = make(map[string]Entry)
	} else {
		data = cloneData(data)
	}
	return &Node{
		store:        s,
		isArray:      isArray,
		data:         data,
		txID:         tx.ID,
		isOptimistic: tx.IsOptimistic,
	}
}

// NextTransaction allocates the next transaction in the store's total
// order (spec.md §4.3 "Transaction boundary": "allocate a transaction
// {id = ++counter, isOptimistic, subscribersToNotify = ∅}").
func (s *Store) NextTransaction(isOptimistic bool) *Transaction {
	s.txCounter++
	return NewTransaction(s.txCounter, isOptimistic)
}

// GetByKey resolves a store key to its current head node (spec.md §4.2
// "getByKey(key, visibility)"). In optimistic visibility, the optimistic
// index is consulted first, falling back to the base index.
func (s *Store) GetByKey(key string, optimistic bool) (*Node, bool) {
	if optimistic {
		if n, ok := s.optimisticIndex[key]; ok {
			return n, true
		}
	}
	n, ok := s.baseIndex[key]
	return n, ok
}

// Index registers n as the head of the base chain for key, and — when n
// was minted by an optimistic write — additionally as the head of the
// optimistic chain (spec.md §4.3 "after all selections, if data has a
// store key, attach indexEntry ... register it in the appropriate
// index(es): base always; optimistic additionally when the write is
// optimistic").
func (s *Store) Index(key string, n *Node) {
	n.SetID(key)
	s.baseIndex[key] = n
	if n.isOptimistic {
		s.optimisticIndex[key] = n
	}
}

// rehead re-points the index entry for key at next, following a
// copy-on-write (spec.md §4.2 "adoptParents ... re-point the appropriate
// index at the new head"). It is called by [Node.Set] once it has minted
// a new version of a node that carries a store key.
func (s *Store) rehead(key string, next *Node, optimistic bool) {
	if optimistic {
		s.optimisticIndex[key] = next
		return
	}
	s.baseIndex[key] = next
}

// RootByID resolves a root node for read/subscribe (spec.md §4.4 step 1):
// optimistic visibility consults the optimistic index first, else the
// base index; a caller that wants base-only visibility must pass
// optimistic=false even if the node was originally minted optimistically.
func (s *Store) RootByID(rootID string, optimistic bool) (*Node, bool) {
	return s.GetByKey(rootID, optimistic)
}

// IndexRoot registers n as a root under rootID, exactly like [Store.Index]
// but named for the write engine's root-specific call site (spec.md §4.3
// "update the appropriate root index entry").
func (s *Store) IndexRoot(rootID string, n *Node, optimistic bool) {
	n.SetID(rootID)
	if optimistic {
		s.optimisticIndex[rootID] = n
		return
	}
	s.baseIndex[rootID] = n
}
