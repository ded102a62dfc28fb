package selast

import (
	"strconv"
	"strings"
)

// Print pretty-prints a document in a GraphQL-like textual form, used to
// render a query into an error message (spec.md §6). It is a best-effort
// rendering for diagnostics, not a round-trippable serialization — query
// printing proper is out of scope per spec.md §1.
func Print(doc *Document) string {
	var b strings.Builder
	for i, op := range doc.Operations {
		if i > 0 {
			b.WriteString("\n")
		}
		printOperation(&b, op)
	}
	for _, frag := range doc.Fragments {
		b.WriteString("\n")
		printFragment(&b, frag)
	}
	return b.String()
}

func printOperation(b *strings.Builder, op *OperationDefinition) {
	b.WriteString("query")
	if op.Name != "" {
		b.WriteString(" ")
		b.WriteString(op.Name)
	}
	b.WriteString(" ")
	printSelectionSet(b, op.SelectionSet, 0)
}

func printFragment(b *strings.Builder, frag *FragmentDefinition) {
	b.WriteString("fragment ")
	b.WriteString(frag.Name)
	if frag.TypeCondition != "" {
		b.WriteString(" on ")
		b.WriteString(frag.TypeCondition)
	}
	b.WriteString(" ")
	printSelectionSet(b, frag.SelectionSet, 0)
}

func printSelectionSet(b *strings.Builder, set SelectionSet, indent int) {
	b.WriteString("{\n")
	pad := strings.Repeat("  ", indent+1)
	for _, sel := range set {
		b.WriteString(pad)
		printSelection(b, sel, indent+1)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString("}")
}

func printSelection(b *strings.Builder, sel Selection, indent int) {
	switch s := sel.(type) {
	case *Field:
		if s.FieldAlias != "" {
			b.WriteString(s.FieldAlias)
			b.WriteString(": ")
		}
		b.WriteString(s.FieldName)
		if len(s.Arguments) > 0 {
			b.WriteString(printArguments(s.Arguments))
		}
		if s.SelectionSet != nil {
			b.WriteString(" ")
			printSelectionSet(b, s.SelectionSet, indent)
		}
	case *InlineFragment:
		b.WriteString("...")
		if s.TypeCondition != "" {
			b.WriteString(" on ")
			b.WriteString(s.TypeCondition)
		}
		b.WriteString(" ")
		printSelectionSet(b, s.SelectionSet, indent)
	case *FragmentSpread:
		b.WriteString("...")
		b.WriteString(s.Name)
	}
}

func printArguments(args []Argument) string {
	var b strings.Builder
	b.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Name)
		b.WriteString(": ")
		b.WriteString(printValue(arg.Value))
	}
	b.WriteString(")")
	return b.String()
}

func printValue(v Value) string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.Str)
	case KindEnum:
		return v.Str
	case KindVariable:
		return "$" + v.Str
	case KindList:
		parts := make([]string, len(v.List))
		for i, item := range v.List {
			parts[i] = printValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		parts := make([]string, len(v.Object))
		for i, f := range v.Object {
			parts[i] = f.Name + ": " + printValue(f.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<?>"
	}
}
