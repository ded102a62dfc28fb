package storekey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simon-lentz/graphcache/storekey"
)

func TestOf_ExplicitID(t *testing.T) {
	key, ok := storekey.Of(map[string]any{"__id": "custom-key-1"})

	assert.True(t, ok)
	assert.Equal(t, "custom-key-1", key)
}

func TestOf_TypenameAndID(t *testing.T) {
	key, ok := storekey.Of(map[string]any{"__typename": "Stack", "id": "5"})

	assert.True(t, ok)
	assert.Equal(t, "Stack:5", key)
}

func TestOf_NumericID(t *testing.T) {
	key, ok := storekey.Of(map[string]any{"__typename": "Zetteli", "id": float64(111)})

	assert.True(t, ok)
	assert.Equal(t, "Zetteli:111", key)
}

func TestOf_MissingBoth(t *testing.T) {
	_, ok := storekey.Of(map[string]any{"name": "Stack 5"})

	assert.False(t, ok)
}

func TestOf_TypenameWithoutID(t *testing.T) {
	_, ok := storekey.Of(map[string]any{"__typename": "Stack"})

	assert.False(t, ok)
}

func TestOf_ExplicitIDTakesPriority(t *testing.T) {
	key, ok := storekey.Of(map[string]any{
		"__id":       "override",
		"__typename": "Stack",
		"id":         "5",
	})

	assert.True(t, ok)
	assert.Equal(t, "override", key)
}

func TestOf_CaseInsensitiveTypenames(t *testing.T) {
	key, ok := storekey.Of(
		map[string]any{"__typename": "STACK", "id": "5"},
		storekey.WithCaseInsensitiveTypenames(),
	)

	assert.True(t, ok)
	assert.Equal(t, "stack:5", key)
}

func TestOf_CaseSensitiveByDefault(t *testing.T) {
	lower, _ := storekey.Of(map[string]any{"__typename": "stack", "id": "5"})
	upper, _ := storekey.Of(map[string]any{"__typename": "STACK", "id": "5"})

	assert.NotEqual(t, lower, upper)
}
