// Package graphcache provides an in-process, normalized, query-shaped
// object cache for GraphQL-style clients.
//
// Writing a query response normalizes every object into a flat node store
// keyed by type and id; reading a query re-projects that store back into a
// view shaped exactly like the query's selection set. Writes are
// copy-on-write across transactions. An optimistic write updates a separate
// optimistic root chain that base-layer reads do not consult; no operation
// discards an optimistic write once applied. Every subscriber watching an
// affected root is notified when the write returns.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no dependencies outside this tier):
//	  - cacheerr: Sentinel errors and typed error values
//	  - immutable: Read-only wrappers for safely shared scalar data
//	  - selast: A minimal GraphQL selection-set AST and store-name derivation
//	  - storekey: Entity store-key derivation from typename/id/keying rules
//
//	Core library tier:
//	  - node: The copy-on-write normalized node store
//	  - write: Normalizing a data tree into the node store
//	  - read: Projecting a lazy, query-shaped view out of the node store
//	  - subscribe: Per-root subscriber registration and notification
//
//	Facade tier:
//	  - store: The public Store type wiring the above into one API
//
//	Adapter tier:
//	  - adapter/jsontree: Loading a JSON/JSONC byte slice into the data
//	    tree write.Write expects
//
// # Entry Points
//
//	import "github.com/simon-lentz/graphcache/store"
//
//	s := store.New(store.WithLogger(logger))
//	changed, err := s.WriteQuery(ctx, query, data, variables)
//	view, ok, err := s.ReadQuery(ctx, query, variables)
//	unsubscribe, err := s.Observe(ctx, query, node.Context{}, subscribe.Subscriber{
//	    Next: func(v *read.Object) { /* ... */ },
//	})
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/simon-lentz/graphcache/cacheerr]: Sentinel and typed errors
//   - [github.com/simon-lentz/graphcache/immutable]: Read-only data wrappers
//   - [github.com/simon-lentz/graphcache/selast]: Selection-set AST and store names
//   - [github.com/simon-lentz/graphcache/storekey]: Entity key derivation
//   - [github.com/simon-lentz/graphcache/node]: The copy-on-write node store
//   - [github.com/simon-lentz/graphcache/write]: Data-tree normalization
//   - [github.com/simon-lentz/graphcache/read]: Query-shaped view projection
//   - [github.com/simon-lentz/graphcache/subscribe]: Subscription notification
//   - [github.com/simon-lentz/graphcache/store]: The public facade
//   - [github.com/simon-lentz/graphcache/adapter/jsontree]: JSON/JSONC data loading
package graphcache
