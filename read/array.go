package read

import (
	"strconv"

	"github.com/simon-lentz/graphcache/node"
	"github.com/simon-lentz/graphcache/selast"
)

// Array is a lazy view over an array node, projecting each object-valued
// slot through the same nested selection set (spec.md §4.4 "array view").
type Array struct {
	r      *info
	n      *node.Node
	selSet selast.SelectionSet
}

func (r *info) array(n *node.Node, selSet selast.SelectionSet) *Array {
	return &Array{r: r, n: n, selSet: selSet}
}

// Len reports the number of elements.
func (a *Array) Len() int { return a.n.Len() }

// At projects element i. The second return is false when no slot exists
// at that index.
func (a *Array) At(i int) (Value, bool) {
	entry, ok := a.n.Get(strconv.Itoa(i))
	if !ok {
		return Value{}, false
	}

	if entry.IsScalar() {
		v := entry.Value().Unwrap()
		if v == nil {
			return Value{Kind: KindNull}, true
		}
		return Value{Kind: KindScalar, Scalar: v}, true
	}

	child := entry.Node()
	if child == nil {
		return Value{Kind: KindNull}, true
	}
	if child.IsArray() {
		return Value{Kind: KindArray, Array: a.r.array(child, a.selSet)}, true
	}
	return Value{Kind: KindObject, Object: a.r.object(child, a.selSet)}, true
}
