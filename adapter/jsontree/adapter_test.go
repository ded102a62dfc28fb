package jsontree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simon-lentz/graphcache/adapter/jsontree"
)

func TestParse_StrictJSON(t *testing.T) {
	tree, err := jsontree.Parse([]byte(`{"id": "5", "count": 3, "ratio": 1.5}`))

	require.NoError(t, err)
	assert.Equal(t, "5", tree["id"])
	assert.Equal(t, int64(3), tree["count"])
	assert.Equal(t, 1.5, tree["ratio"])
}

func TestParse_JSONCCommentsAndTrailingCommas(t *testing.T) {
	input := []byte(`{
		// a comment
		"name": "Stack 5",
		"tags": ["a", "b",],
	}`)

	tree, err := jsontree.Parse(input)

	require.NoError(t, err)
	assert.Equal(t, "Stack 5", tree["name"])
	assert.Equal(t, []any{"a", "b"}, tree["tags"])
}

func TestParse_StrictRejectsComments(t *testing.T) {
	input := []byte(`{
		// a comment
		"name": "Stack 5"
	}`)

	_, err := jsontree.Parse(input, jsontree.Strict())

	require.Error(t, err)
}

func TestParse_NestedObjectsNormalized(t *testing.T) {
	tree, err := jsontree.Parse([]byte(`{"stack": {"id": "5", "zettelis": [{"id": "2"}]}}`))

	require.NoError(t, err)
	stack, ok := tree["stack"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "5", stack["id"])

	zettelis, ok := stack["zettelis"].([]any)
	require.True(t, ok)
	first, ok := zettelis[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2", first["id"])
}
