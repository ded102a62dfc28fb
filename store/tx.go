package store

import "github.com/simon-lentz/graphcache/cacheerr"

// Tx is the handle returned by [Store.Tx]. Full write-ahead-log rollback
// is out of scope (spec.md §9 Open Question, resolved in DESIGN.md):
// Commit is a no-op because callback's writes already landed through the
// normal write path, and Rollback always fails.
type Tx struct{}

// Tx runs callback(s) synchronously and returns a handle over the writes
// it performed (spec.md §6 "tx(callback)"). A callback error aborts
// before a handle is returned; writes already applied before the error
// are not undone.
func (s *Store) Tx(callback func(*Store) error) (*Tx, error) {
	if err := callback(s); err != nil {
		return nil, err
	}
	return &Tx{}, nil
}

// Commit is a no-op: writes performed inside the Tx callback are already
// committed as they happen.
func (t *Tx) Commit() error { return nil }

// Rollback always fails; see [cacheerr.ErrRollbackUnsupported].
func (t *Tx) Rollback() error { return cacheerr.ErrRollbackUnsupported }
