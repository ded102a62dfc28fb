package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
)

// ParseOption configures [Parse].
type ParseOption func(*config)

type config struct {
	strict bool
}

// Strict disables JSONC preprocessing, requiring data to already be
// strict JSON (matching the teacher adapter's strictJSON flag).
func Strict() ParseOption {
	return func(c *config) { c.strict = true }
}

// Parse decodes data into the nested map[string]any/[]any/scalar tree
// write.Write consumes. By default data is treated as JSONC — comments
// and trailing commas are stripped via jsonc.ToJSON before decoding, as
// the teacher's adapter/json package does. JSON numbers are normalized to
// int64 or float64 so the write engine's scalar comparisons (spec.md
// §4.2 step 2, reflect.DeepEqual) see ordinary Go numeric types rather
// than json.Number.
func Parse(data []byte, opts ...ParseOption) (map[string]any, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	processed := data
	if !cfg.strict {
		processed = jsonc.ToJSON(data)
	}

	dec := json.NewDecoder(bytes.NewReader(processed))
	dec.UseNumber()

	var tree map[string]any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("jsontree: decoding data tree: %w", err)
	}

	normalizeNumbers(tree)
	return tree, nil
}

func normalizeNumbers(m map[string]any) {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case json.Number:
		if !strings.Contains(val.String(), ".") {
			if i, err := val.Int64(); err == nil {
				return i
			}
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		normalizeNumbers(val)
		return val
	case []any:
		for i, elem := range val {
			val[i] = normalizeValue(elem)
		}
		return val
	default:
		return v
	}
}
