package node

import (
	"reflect"

	"github.com/simon-lentz/graphcache/immutable"
)

// Entry is the sum type held in a Node's data map: either a scalar value
// (wrapped for ownership safety) or a reference to a child/array node.
type Entry struct {
	isScalar bool
	scalar   immutable.Value
	ref      *Node
}

// Scalar wraps v and returns the entry form the write engine passes to
// [Node.Set] for a leaf field (spec.md §4.3 "scalar write"). v is cloned
// so the caller's data tree may be reused or mutated freely afterward.
//
// v is cloned raw rather than through [immutable.WrapClone]: a scalar
// field is an atomic, opaque value even when it happens to be a JSON
// array or object (spec.md §3 "opaque JSON object treated as an atomic
// scalar", §4.4 "scalar passthrough, including array scalars") — it must
// read back as a plain Go slice/map, not a navigable, per-element-wrapped
// collection type.
func Scalar(v any) Entry {
	return Entry{isScalar: true, scalar: immutable.WrapCloneRaw(v)}
}

// Ref wraps a reference to a child or array node, the entry form used for
// object- and array-valued fields.
func Ref(n *Node) Entry {
	return Entry{ref: n}
}

// equal reports whether two entries represent the same logical value for
// the purposes of the node store's referential short-circuit (spec.md
// §4.2 step 2): scalars compare by deep value equality, references by
// pointer identity.
func (e Entry) equal(other Entry) bool {
	if e.isScalar != other.isScalar {
		return false
	}
	if e.isScalar {
		return reflect.DeepEqual(e.scalar.Unwrap(), other.scalar.Unwrap())
	}
	return e.ref == other.ref
}

// IsScalar reports whether the entry holds a scalar value rather than a
// node reference.
func (e Entry) IsScalar() bool { return e.isScalar }

// Value returns the wrapped scalar value. Valid only when [Entry.IsScalar]
// is true.
func (e Entry) Value() immutable.Value { return e.scalar }

// Node returns the referenced child or array node. Valid only when
// [Entry.IsScalar] is false.
func (e Entry) Node() *Node { return e.ref }
