package read

import (
	"context"
	"log/slog"

	"github.com/simon-lentz/graphcache/internal/trace"
	"github.com/simon-lentz/graphcache/node"
	"github.com/simon-lentz/graphcache/selast"
	"github.com/simon-lentz/graphcache/storekey"
)

// Object is a lazy, query-shaped view over a graph node (spec.md §4.4
// "object view"). It exposes exactly the field names appearing in its
// selection set, through whichever fragments match the node's current
// __typename.
type Object struct {
	r      *info
	n      *node.Node
	selSet selast.SelectionSet
}

// info threads the per-read context (variable bindings, the document's
// fragment map, the optional supertype table, and a logger for projection
// anomalies) through every view minted from one [Read] call.
type info struct {
	variables  map[string]any
	fragments  map[string]*selast.FragmentDefinition
	supertypes selast.Supertypes
	logger     *slog.Logger
}

func (r *info) object(n *node.Node, selSet selast.SelectionSet) *Object {
	return &Object{r: r, n: n, selSet: selSet}
}

// Typename returns the node's __typename field, or "" if it has none.
func (o *Object) Typename() string {
	return o.typename()
}

func (o *Object) typename() string {
	e, ok := o.n.Get(storekey.FieldTypename)
	if !ok || !e.IsScalar() {
		return ""
	}
	s, _ := e.Value().String()
	return s
}

// Keys enumerates the field names (by alias) this view's selection set
// names through matching fragments, in selection order with duplicates
// removed (spec.md §4.4 "enumerates only the field names appearing in its
// selection set").
func (o *Object) Keys() []string {
	seen := make(map[string]struct{})
	var keys []string
	walkFields(o.selSet, o.typename(), o.r.fragments, o.r.supertypes, func(f *selast.Field) bool {
		k := f.Alias()
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
		return false
	})
	return keys
}

// Get projects field name (by alias) through its matching selection. The
// second return is false when name is not selected, or when the
// underlying store entry is an "unexpected undefined" — a projection
// anomaly logged via [trace.Warn] rather than failed (spec.md §4.4, §7
// "Projection anomalies").
func (o *Object) Get(name string) (Value, bool) {
	f, ok := o.resolveField(name)
	if !ok {
		return Value{}, false
	}

	storeName, err := selast.StoreName(f, o.r.variables)
	if err != nil {
		trace.Warn(context.Background(), o.r.logger, "graphcache.read.read: unresolvable store name",
			slog.String("field", name), slog.String("error", err.Error()))
		return Value{}, false
	}

	entry, ok := o.n.Get(storeName)
	if !ok {
		trace.Warn(context.Background(), o.r.logger, "graphcache.read.read: unexpected undefined",
			slog.String("field", name), slog.String("store_name", storeName))
		return Value{}, false
	}

	return project(o.r, entry, f), true
}

func (o *Object) resolveField(alias string) (*selast.Field, bool) {
	var found *selast.Field
	walkFields(o.selSet, o.typename(), o.r.fragments, o.r.supertypes, func(f *selast.Field) bool {
		if f.Alias() == alias {
			found = f
			return true
		}
		return false
	})
	return found, found != nil
}

// project maps a raw store entry to the view-layer Value for selection f
// (spec.md §4.4 field-by-field projection rules).
func project(r *info, entry node.Entry, f *selast.Field) Value {
	if entry.IsScalar() {
		v := entry.Value().Unwrap()
		if v == nil {
			return Value{Kind: KindNull}
		}
		return Value{Kind: KindScalar, Scalar: v}
	}

	child := entry.Node()
	if child == nil {
		return Value{Kind: KindNull}
	}
	if child.IsArray() {
		return Value{Kind: KindArray, Array: r.array(child, f.SelectionSet)}
	}
	return Value{Kind: KindObject, Object: r.object(child, f.SelectionSet)}
}
