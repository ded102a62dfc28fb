package selast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simon-lentz/graphcache/selast"
)

func TestPrint_FieldWithAliasAndArguments(t *testing.T) {
	doc := &selast.Document{
		Operations: []*selast.OperationDefinition{
			{
				Name: "GetTodo",
				SelectionSet: selast.SelectionSet{
					&selast.Field{
						FieldName:  "todo",
						FieldAlias: "firstTodo",
						Arguments:  []selast.Argument{{Name: "id", Value: selast.IntValue(1)}},
						SelectionSet: selast.SelectionSet{
							&selast.Field{FieldName: "id"},
							&selast.Field{FieldName: "title"},
						},
					},
				},
			},
		},
	}

	out := selast.Print(doc)

	assert.Contains(t, out, "query GetTodo")
	assert.Contains(t, out, "firstTodo: todo(id: 1)")
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "title")
}

func TestPrint_FragmentSpreadAndInlineFragment(t *testing.T) {
	doc := &selast.Document{
		Operations: []*selast.OperationDefinition{
			{
				SelectionSet: selast.SelectionSet{
					&selast.FragmentSpread{Name: "TodoFields"},
					&selast.InlineFragment{
						TypeCondition: "Note",
						SelectionSet:  selast.SelectionSet{&selast.Field{FieldName: "body"}},
					},
				},
			},
		},
		Fragments: []*selast.FragmentDefinition{
			{
				Name:          "TodoFields",
				TypeCondition: "Todo",
				SelectionSet:  selast.SelectionSet{&selast.Field{FieldName: "done"}},
			},
		},
	}

	out := selast.Print(doc)

	assert.Contains(t, out, "...TodoFields")
	assert.Contains(t, out, "... on Note")
	assert.Contains(t, out, "fragment TodoFields on Todo")
}
