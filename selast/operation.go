package selast

import "github.com/simon-lentz/graphcache/cacheerr"

// Operation extracts a document's single operation selection (spec.md
// §4.1). A document with zero operations fails with the document
// pretty-printed into the error, per spec.md §6 ("pretty-printed from the
// AST"). This module only ever writes/reads against one operation per
// call, so a document carrying more than one operation uses the first.
func Operation(doc *Document) (*OperationDefinition, error) {
	if len(doc.Operations) == 0 {
		return nil, &cacheerr.NoOperationError{Printed: Print(doc)}
	}
	return doc.Operations[0], nil
}
