package selast

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/simon-lentz/graphcache/cacheerr"
)

// StoreNameOption configures [StoreName].
type StoreNameOption func(*storeNameConfig)

type storeNameConfig struct {
	strict bool
}

// StrictArguments restores spec.md's original fail-fast behavior for
// list- and object-valued arguments instead of this module's canonical
// serialization extension (see SPEC_FULL.md §6.1).
func StrictArguments() StoreNameOption {
	return func(c *storeNameConfig) { c.strict = true }
}

// StoreName computes the canonical field store name (spec.md §3): the
// field's underlying name when it has no arguments, else
// "<name>(<arg1>: <v1>, <arg2>: <v2>, ...)" with arguments ordered by
// name for determinism and each vᵢ rendered per [renderValue].
//
// variables supplies the bindings referenced by [KindVariable] argument
// values; a reference to an unbound variable fails with a
// [cacheerr.VariableNotFoundError].
func StoreName(field *Field, variables map[string]any, opts ...StoreNameOption) (string, error) {
	if len(field.Arguments) == 0 {
		return field.Name(), nil
	}

	cfg := storeNameConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	args := make([]Argument, len(field.Arguments))
	copy(args, field.Arguments)
	sort.Slice(args, func(i, j int) bool { return args[i].Name < args[j].Name })

	parts := make([]string, 0, len(args))
	for _, arg := range args {
		rendered, err := renderValue(arg.Value, variables, cfg.strict)
		if err != nil {
			return "", fmt.Errorf("field %q, argument %q: %w", field.Name(), arg.Name, err)
		}
		parts = append(parts, arg.Name+": "+rendered)
	}

	return field.Name() + "(" + strings.Join(parts, ", ") + ")", nil
}

// renderValue produces the syntactic rendering of a single argument value
// used as a store-name suffix component (spec.md §3, extended per
// SPEC_FULL.md §6.1).
func renderValue(v Value, variables map[string]any, strict bool) (string, error) {
	switch v.Kind {
	case KindNull:
		return "null", nil
	case KindBool:
		return strconv.FormatBool(v.Bool), nil
	case KindInt:
		return strconv.FormatInt(v.Int, 10), nil
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64), nil
	case KindString:
		return strconv.Quote(v.Str), nil
	case KindEnum:
		return v.Str, nil
	case KindVariable:
		bound, ok := variables[v.Str]
		if !ok {
			return "", &cacheerr.VariableNotFoundError{Name: v.Str}
		}
		encoded, err := json.Marshal(bound)
		if err != nil {
			return "", fmt.Errorf("encoding variable $%s: %w", v.Str, err)
		}
		return string(encoded), nil
	case KindList:
		if strict {
			return "", &cacheerr.ListArgumentError{}
		}
		return renderList(v.List, variables, strict)
	case KindObject:
		if strict {
			return "", &cacheerr.ObjectArgumentError{}
		}
		return renderObject(v.Object, variables, strict)
	default:
		return "", fmt.Errorf("selast: unknown value kind %d", v.Kind)
	}
}

// renderList canonically serializes a list argument: elements in their
// original order, each rendered recursively.
func renderList(items []Value, variables map[string]any, strict bool) (string, error) {
	parts := make([]string, len(items))
	for i, item := range items {
		rendered, err := renderValue(item, variables, strict)
		if err != nil {
			return "", err
		}
		parts[i] = rendered
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

// renderObject canonically serializes an object argument: fields sorted
// by name so that two syntactically different-but-equivalent object
// literals produce the same store name.
func renderObject(fields []ObjectField, variables map[string]any, strict bool) (string, error) {
	sorted := make([]ObjectField, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	parts := make([]string, len(sorted))
	for i, f := range sorted {
		rendered, err := renderValue(f.Value, variables, strict)
		if err != nil {
			return "", err
		}
		parts[i] = f.Name + ": " + rendered
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}
