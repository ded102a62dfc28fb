package node

import "github.com/simon-lentz/graphcache/selast"

// DefaultRootID is the root key a read/write/observe call targets when no
// explicit RootID is supplied (spec.md §6 "Root identifier convention").
const DefaultRootID = "QUERY"

// Context carries the per-call parameters shared by read, write, and
// observe (spec.md §6): the variable bindings a query's arguments may
// reference, which root to address, and whether to operate against the
// optimistic overlay.
type Context struct {
	Variables  map[string]any
	RootID     string
	Optimistic bool

	// CaseInsensitiveTypenames opts into storekey.WithCaseInsensitiveTypenames
	// for this call (SPEC_FULL.md §4 "Text normalization").
	CaseInsensitiveTypenames bool

	// Supertypes resolves fragment type conditions naming an interface or
	// union (spec.md §9 "Fragment typing"). Nil preserves the concrete-only
	// matching policy.
	Supertypes selast.Supertypes
}

// ResolveRootID resolves the context's root id, defaulting to
// [DefaultRootID] when RootID is unset.
func (c Context) ResolveRootID() string {
	if c.RootID == "" {
		return DefaultRootID
	}
	return c.RootID
}
