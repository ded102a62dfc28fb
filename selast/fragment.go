package selast

import "github.com/simon-lentz/graphcache/cacheerr"

// FragmentMap indexes a document's fragment definitions by name.
func FragmentMap(doc *Document) map[string]*FragmentDefinition {
	m := make(map[string]*FragmentDefinition, len(doc.Fragments))
	for _, frag := range doc.Fragments {
		m[frag.Name] = frag
	}
	return m
}

// ResolveFragment resolves a named fragment spread against a fragment map.
// An unknown name yields a [cacheerr.FragmentNotFoundError], which the
// write engine reports as a write-time error (spec.md §7).
func ResolveFragment(fragments map[string]*FragmentDefinition, spread *FragmentSpread) (*FragmentDefinition, error) {
	def, ok := fragments[spread.Name]
	if !ok {
		return nil, &cacheerr.FragmentNotFoundError{Name: spread.Name}
	}
	return def, nil
}

// Supertypes maps an interface or union type name to the concrete types
// that implement it. It is the optional hook spec.md §9 describes for
// resolving the "Fragment typing" open question; a nil table preserves
// spec.md's original concrete-__typename-only policy.
type Supertypes map[string][]string

// Matches reports whether a fragment with the given type condition gates
// open for an object whose __typename is typename (spec.md §4.1
// "Fragment matching policy").
//
// An empty typeCondition always matches. A non-empty typeCondition matches
// when it equals typename exactly, or — when supertypes is non-nil — when
// typeCondition names an interface/union that supertypes records typename
// as implementing. Without a supertypes table, matching an interface or
// union type condition always reports false, per spec.md §9's documented
// gap.
func Matches(typeCondition, typename string, supertypes Supertypes) bool {
	if typeCondition == "" {
		return true
	}
	if typeCondition == typename {
		return true
	}
	if supertypes == nil {
		return false
	}
	for _, implementor := range supertypes[typeCondition] {
		if implementor == typename {
			return true
		}
	}
	return false
}
