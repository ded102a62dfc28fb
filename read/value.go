package read

// ValueKind discriminates the syntactic shape of a projected field or
// array slot (spec.md §4.4).
type ValueKind int

const (
	// KindNull is an explicit null, or a reference field whose node is
	// absent.
	KindNull ValueKind = iota
	// KindScalar is a passthrough scalar, including a scalar-typed array
	// (spec.md §4.4 "scalar passthrough, including array scalars").
	KindScalar
	// KindObject is a nested object view.
	KindObject
	// KindArray is a nested array view.
	KindArray
)

// Value is a single projected field or array slot.
type Value struct {
	Kind   ValueKind
	Scalar any
	Object *Object
	Array  *Array
}
