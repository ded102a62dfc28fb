// Package storekey derives the canonical store key under which a
// normalizable object is indexed in the graph (spec.md §3 "Store key").
//
// A store key is computed from a data object's reserved fields, in order:
// an explicit opaque identity field __id; else the pair (__typename, id);
// else the object carries no store key and is not normalizable — it lives
// only embedded under its parent.
package storekey
