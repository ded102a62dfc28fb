package read

import "github.com/simon-lentz/graphcache/selast"

// walkFields invokes visit for every Field selection reachable through
// selSet, descending into inline and named fragment branches whose type
// condition matches typename (spec.md §4.4 "union of all matching
// fragments"). visit returning true stops the walk and propagates the
// stop upward.
//
// A named fragment spread that fails to resolve is skipped rather than
// failing the read: the write engine already fails fast on an unresolved
// fragment (spec.md §7), so a store never holds data written through one.
func walkFields(selSet selast.SelectionSet, typename string, fragments map[string]*selast.FragmentDefinition, supertypes selast.Supertypes, visit func(*selast.Field) bool) bool {
	for _, sel := range selSet {
		switch s := sel.(type) {
		case *selast.Field:
			if visit(s) {
				return true
			}
		case *selast.InlineFragment:
			if selast.Matches(s.TypeCondition, typename, supertypes) {
				if walkFields(s.SelectionSet, typename, fragments, supertypes, visit) {
					return true
				}
			}
		case *selast.FragmentSpread:
			def, ok := fragments[s.Name]
			if !ok {
				continue
			}
			if selast.Matches(def.TypeCondition, typename, supertypes) {
				if walkFields(def.SelectionSet, typename, fragments, supertypes, visit) {
					return true
				}
			}
		}
	}
	return false
}
