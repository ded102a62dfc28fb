package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simon-lentz/graphcache/node"
)

func TestNextTransaction_Monotonic(t *testing.T) {
	s := node.NewStore()

	tx1 := s.NextTransaction(false)
	tx2 := s.NextTransaction(false)
	tx3 := s.NextTransaction(true)

	assert.Less(t, tx1.ID, tx2.ID)
	assert.Less(t, tx2.ID, tx3.ID)
}

func TestGetByKey_OptimisticFallsBackToBase(t *testing.T) {
	s := node.NewStore()
	tx := s.NextTransaction(false)
	n := s.NewNode(tx, nil, false)
	s.Index("Stack:5", n)

	got, ok := s.GetByKey("Stack:5", true)

	require.True(t, ok)
	assert.Same(t, n, got)
}

func TestGetByKey_OptimisticPrefersOptimisticIndex(t *testing.T) {
	s := node.NewStore()
	baseTx := s.NextTransaction(false)
	base := s.NewNode(baseTx, nil, false)
	s.Index("Stack:5", base)

	optTx := s.NextTransaction(true)
	opt := s.NewNode(optTx, nil, false)
	s.Index("Stack:5", opt)

	got, ok := s.GetByKey("Stack:5", true)
	require.True(t, ok)
	assert.Same(t, opt, got)

	baseGot, ok := s.GetByKey("Stack:5", false)
	require.True(t, ok)
	assert.Same(t, opt, baseGot, "Index registers an optimistic node in the base index as well")
}

func TestIndexRoot_OnlyRelevantChain(t *testing.T) {
	s := node.NewStore()
	tx := s.NextTransaction(false)
	n := s.NewNode(tx, nil, false)
	s.IndexRoot("QUERY", n, false)

	_, hasOptimistic := s.GetByKey("QUERY", true)
	assert.True(t, hasOptimistic, "without an optimistic chain, optimistic reads fall back to base")

	optTx := s.NextTransaction(true)
	optRoot := s.NewNode(optTx, nil, false)
	s.IndexRoot("QUERY", optRoot, true)

	base, _ := s.GetByKey("QUERY", false)
	assert.NotSame(t, optRoot, base, "an optimistic-only root update must not disturb the base chain")
}
