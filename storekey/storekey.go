package storekey

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Reserved data-tree keys (spec.md §6 "Reserved data keys").
const (
	FieldID       = "__id"
	FieldTypename = "__typename"
	FieldEntityID = "id"
)

// Option configures [Of].
type Option func(*config)

type config struct {
	fold *cases.Caser
}

// WithCaseInsensitiveTypenames folds __typename through Unicode case
// folding before it is joined into a "<__typename>:<id>" store key. The
// default is exact, case-sensitive comparison, matching the original
// source's strict equality check on __typename (see SPEC_FULL.md §4
// "Text normalization").
func WithCaseInsensitiveTypenames() Option {
	return func(c *config) {
		fold := cases.Fold()
		c.fold = &fold
	}
}

// Of derives the store key for a data object, given as a mapping from
// field name to raw value (pre-write-engine-normalization — this is the
// caller's source data tree, not a graph node's data map).
//
// Of returns ("", false) when the object carries neither __id nor a
// complete (__typename, id) pair; such an object is not normalizable and
// the caller must embed it by value under its parent instead of indexing
// it.
func Of(data map[string]any, opts ...Option) (string, bool) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if id, ok := data[FieldID]; ok {
		if s, ok := stringify(id); ok {
			return s, true
		}
	}

	typename, hasTypename := data[FieldTypename]
	entityID, hasID := data[FieldEntityID]
	if !hasTypename || !hasID {
		return "", false
	}

	typenameStr, ok := stringify(typename)
	if !ok {
		return "", false
	}
	if cfg.fold != nil {
		typenameStr = cfg.fold.String(typenameStr)
	}
	idStr, ok := stringify(entityID)
	if !ok {
		return "", false
	}

	return fmt.Sprintf("%s:%s", typenameStr, idStr), true
}

// stringify renders a raw JSON-decoded scalar as the string form used in a
// store key. Objects, arrays, and nil never participate in a store key.
func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	case float64:
		return trimFloat(t), true
	case int:
		return fmt.Sprintf("%d", t), true
	case int64:
		return fmt.Sprintf("%d", t), true
	case bool:
		return fmt.Sprintf("%t", t), true
	default:
		return "", false
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
