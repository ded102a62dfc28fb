package node

// SubscriberHandle identifies a registered subscriber. It is an opaque
// comparable value so this package need not depend on the subscribe
// package's concrete subscriber type — subscribe mints handles (backed by
// a uuid) and passes them through [Node.Subscribe] unchanged.
type SubscriberHandle any

// Transaction is a single logical write: a monotonic id, an optimism
// flag, and the set of subscribers this write has touched so far (spec.md
// §4.3 "Transaction boundary"). A Transaction spans the full recursion of
// one top-level write call; [Node.Set] accumulates into Pending as it
// copy-on-writes nodes whose old version had eligible subscribers.
type Transaction struct {
	ID           int64
	IsOptimistic bool
	Pending      map[SubscriberHandle]struct{}
}

// NewTransaction allocates a transaction with the given id. Callers
// (the store façade) are responsible for minting ids from a single
// monotonic counter so writes are totally ordered (spec.md §5).
func NewTransaction(id int64, isOptimistic bool) *Transaction {
	return &Transaction{
		ID:           id,
		IsOptimistic: isOptimistic,
		Pending:      make(map[SubscriberHandle]struct{}),
	}
}

// markPending records that sub must be notified once this transaction
// commits.
func (tx *Transaction) markPending(sub SubscriberHandle) {
	tx.Pending[sub] = struct{}{}
}
