package write

import (
	"fmt"
	"strconv"

	"github.com/simon-lentz/graphcache/node"
)

// childNode returns the node currently referenced at key on n, or nil if
// there is none or the slot holds a scalar. Callers pass this as the
// "current child (if any)" working node for a recursive writeSelectionSet
// (spec.md §4.3 "writeField").
func childNode(n *node.Node, key string) *node.Node {
	e, ok := n.Get(key)
	if !ok || e.IsScalar() {
		return nil
	}
	return e.Node()
}

// existingArrayChild returns the array node already referenced at
// storeName on parent when one exists, else mints a fresh array node
// (spec.md §4.3 "writeArrayNode: reuse the current child if it is an
// array node; else mint a fresh array node").
func existingArrayChild(store *node.Store, tx *node.Transaction, parent *node.Node, storeName string) *node.Node {
	if e, ok := parent.Get(storeName); ok && !e.IsScalar() && e.Node().IsArray() {
		return e.Node()
	}
	return store.NewNode(tx, nil, true)
}

// typenameOf extracts the reserved __typename field for fragment matching
// (spec.md §4.1 "Fragment matching policy"). Absent or non-string values
// yield "", which matches no type condition.
func typenameOf(data map[string]any) string {
	if v, ok := data["__typename"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// indexKey renders an array index as the dense integer-string key an
// array node's field store names use (spec.md §3 "Array node").
func indexKey(i int) string {
	return strconv.Itoa(i)
}

func unexpectedShapeError(field string, got any) error {
	return fmt.Errorf("write: field %q: expected an object, got %T", field, got)
}
