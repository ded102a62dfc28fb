package selast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simon-lentz/graphcache/cacheerr"
	"github.com/simon-lentz/graphcache/selast"
)

func TestFragmentMap(t *testing.T) {
	frag := &selast.FragmentDefinition{Name: "TodoFields", TypeCondition: "Todo"}
	doc := &selast.Document{Fragments: []*selast.FragmentDefinition{frag}}

	m := selast.FragmentMap(doc)

	assert.Same(t, frag, m["TodoFields"])
}

func TestResolveFragment_Found(t *testing.T) {
	frag := &selast.FragmentDefinition{Name: "TodoFields"}
	m := map[string]*selast.FragmentDefinition{"TodoFields": frag}

	resolved, err := selast.ResolveFragment(m, &selast.FragmentSpread{Name: "TodoFields"})

	require.NoError(t, err)
	assert.Same(t, frag, resolved)
}

func TestResolveFragment_NotFound(t *testing.T) {
	_, err := selast.ResolveFragment(nil, &selast.FragmentSpread{Name: "Missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, cacheerr.ErrFragmentNotFound)
}

func TestMatches_EmptyConditionAlwaysMatches(t *testing.T) {
	assert.True(t, selast.Matches("", "Todo", nil))
}

func TestMatches_ExactType(t *testing.T) {
	assert.True(t, selast.Matches("Todo", "Todo", nil))
	assert.False(t, selast.Matches("Todo", "Note", nil))
}

func TestMatches_InterfaceWithoutSupertypes(t *testing.T) {
	assert.False(t, selast.Matches("Node", "Todo", nil))
}

func TestMatches_InterfaceWithSupertypes(t *testing.T) {
	supertypes := selast.Supertypes{"Node": {"Todo", "Note"}}

	assert.True(t, selast.Matches("Node", "Todo", supertypes))
	assert.False(t, selast.Matches("Node", "Widget", supertypes))
}
