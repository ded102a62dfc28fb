package selast

// Document is a parsed query document: one or more operations plus the
// fragment definitions they may spread.
//
// Document is produced by an external collaborator (a query parser); this
// package never constructs one from source text.
type Document struct {
	Operations []*OperationDefinition
	Fragments  []*FragmentDefinition
}

// OperationDefinition is a single query/mutation/subscription operation.
// The cache only reads and writes against the root SelectionSet; the
// Name is used solely for diagnostics and printing.
type OperationDefinition struct {
	Name         string
	SelectionSet SelectionSet
}

// FragmentDefinition is a named, reusable selection subtree. TypeCondition
// is empty for a fragment with no "on Type" clause, in which case it
// always matches (see [Matches]).
type FragmentDefinition struct {
	Name          string
	TypeCondition string
	SelectionSet  SelectionSet
}

// SelectionSet is an ordered list of selections: field selections and
// fragment branches (inline or named).
type SelectionSet []Selection

// Selection is the sum type enumerated by a selection set: [Field],
// [InlineFragment], or [FragmentSpread].
type Selection interface {
	isSelection()
}

// Field selects a single named field, optionally aliased, optionally
// parameterized by arguments, optionally with a nested selection set.
//
// A Field with a nil SelectionSet is a leaf (spec.md "scalar" field,
// including a scalar-typed array — the write/read engines never descend
// element-by-element into such a field).
type Field struct {
	FieldName    string
	FieldAlias   string // empty when unaliased
	Arguments    []Argument
	SelectionSet SelectionSet // nil for scalar fields
}

func (*Field) isSelection() {}

// Name returns the field's underlying schema name (never the alias). This
// is the name used to compute the field's store name.
func (f *Field) Name() string { return f.FieldName }

// Alias returns the field's response key: the alias if present, else the
// name. This is the key used to read the source value out of an incoming
// data object and the key under which the read engine exposes the field.
func (f *Field) Alias() string {
	if f.FieldAlias != "" {
		return f.FieldAlias
	}
	return f.FieldName
}

// HasSelectionSet reports whether the field has a nested selection set
// (i.e., is not a scalar leaf per spec.md §4.3/§4.4).
func (f *Field) HasSelectionSet() bool {
	return f.SelectionSet != nil
}

// InlineFragment is a fragment branch inlined at the point of use,
// optionally gated by a type condition.
type InlineFragment struct {
	TypeCondition string // empty means "always matches"
	SelectionSet  SelectionSet
}

func (*InlineFragment) isSelection() {}

// FragmentSpread references a named fragment definition. It must be
// resolved against a document's fragment map (see [ResolveFragment])
// before its selection set can be walked.
type FragmentSpread struct {
	Name string
}

func (*FragmentSpread) isSelection() {}
