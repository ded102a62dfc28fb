// Package selast is the selection AST adapter: a thin abstraction over a
// schema-typed query's selection tree.
//
// Query parsing and printing are out of scope for this module (spec.md §1
// treats them as an external collaborator's concern). selast instead
// exposes the selection tree as plain, directly constructible Go types —
// [Document], [OperationDefinition], [FragmentDefinition], [SelectionSet],
// and the three [Selection] variants ([Field], [InlineFragment],
// [FragmentSpread]) — and the handful of operations the write and read
// engines need on top of them:
//
//   - [Operation] extracts the document's single operation, failing with
//     the document pretty-printed into the error when none is present.
//   - [FragmentMap] builds a name → definition map for a document.
//   - [ResolveFragment] resolves a named fragment spread against that map.
//   - [Matches] implements the fragment type-condition gating policy:
//     untyped fragments always match; typed fragments match on concrete
//     __typename equality, with an optional supertype table for the
//     interface/union gap spec.md §9 documents as unresolved.
//   - [StoreName] computes a field's canonical store name, folding in
//     argument serialization (spec.md §3).
//   - [Print] pretty-prints a document for error messages.
package selast
