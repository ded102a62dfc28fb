package selast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simon-lentz/graphcache/cacheerr"
	"github.com/simon-lentz/graphcache/selast"
)

func TestStoreName_NoArguments(t *testing.T) {
	f := &selast.Field{FieldName: "todos"}

	name, err := selast.StoreName(f, nil)

	require.NoError(t, err)
	assert.Equal(t, "todos", name)
}

func TestStoreName_ScalarArguments_SortedByName(t *testing.T) {
	f := &selast.Field{
		FieldName: "todos",
		Arguments: []selast.Argument{
			{Name: "limit", Value: selast.IntValue(10)},
			{Name: "done", Value: selast.BoolValue(true)},
		},
	}

	name, err := selast.StoreName(f, nil)

	require.NoError(t, err)
	assert.Equal(t, "todos(done: true, limit: 10)", name)
}

func TestStoreName_VariableArgument(t *testing.T) {
	f := &selast.Field{
		FieldName: "todos",
		Arguments: []selast.Argument{
			{Name: "limit", Value: selast.VariableValue("max")},
		},
	}

	name, err := selast.StoreName(f, map[string]any{"max": 5})

	require.NoError(t, err)
	assert.Equal(t, "todos(limit: 5)", name)
}

func TestStoreName_UnboundVariable(t *testing.T) {
	f := &selast.Field{
		FieldName: "todos",
		Arguments: []selast.Argument{
			{Name: "limit", Value: selast.VariableValue("max")},
		},
	}

	_, err := selast.StoreName(f, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, cacheerr.ErrNilVariable)
}

func TestStoreName_ListArgument_CanonicalByDefault(t *testing.T) {
	f := &selast.Field{
		FieldName: "todos",
		Arguments: []selast.Argument{
			{Name: "ids", Value: selast.ListValue(selast.IntValue(1), selast.IntValue(2))},
		},
	}

	name, err := selast.StoreName(f, nil)

	require.NoError(t, err)
	assert.Equal(t, "todos(ids: [1, 2])", name)
}

func TestStoreName_ListArgument_StrictRejects(t *testing.T) {
	f := &selast.Field{
		FieldName: "todos",
		Arguments: []selast.Argument{
			{Name: "ids", Value: selast.ListValue(selast.IntValue(1))},
		},
	}

	_, err := selast.StoreName(f, nil, selast.StrictArguments())

	require.Error(t, err)
	assert.ErrorIs(t, err, cacheerr.ErrListArgument)
}

func TestStoreName_ObjectArgument_SortsFields(t *testing.T) {
	f := &selast.Field{
		FieldName: "todos",
		Arguments: []selast.Argument{
			{Name: "filter", Value: selast.ObjectValue(
				selast.ObjectField{Name: "z", Value: selast.StringValue("last")},
				selast.ObjectField{Name: "a", Value: selast.StringValue("first")},
			)},
		},
	}

	name, err := selast.StoreName(f, nil)

	require.NoError(t, err)
	assert.Equal(t, `todos(filter: {a: "first", z: "last"})`, name)
}

func TestStoreName_ObjectArgument_StrictRejects(t *testing.T) {
	f := &selast.Field{
		FieldName: "todos",
		Arguments: []selast.Argument{
			{Name: "filter", Value: selast.ObjectValue(selast.ObjectField{Name: "a", Value: selast.NullValue()})},
		},
	}

	_, err := selast.StoreName(f, nil, selast.StrictArguments())

	require.Error(t, err)
	assert.ErrorIs(t, err, cacheerr.ErrObjectArgument)
}
