// Command graphcachedemo loads a JSON/JSONC data fixture, writes it into
// a fresh store under a fixed demo query (spec.md §8 scenario S1's
// shape), reads it back, and prints the resulting view as JSON. It
// exercises adapter/jsontree, selast, and store end-to-end without a
// real GraphQL transport.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/simon-lentz/graphcache/adapter/jsontree"
	"github.com/simon-lentz/graphcache/read"
	"github.com/simon-lentz/graphcache/selast"
	"github.com/simon-lentz/graphcache/store"
)

var (
	dataPath = flag.String("data", "", "path to a JSON/JSONC data fixture to write into the cache")
	verbose  = flag.Bool("verbose", false, "enable debug-level operation logging")
)

func main() {
	flag.Parse()

	if *dataPath == "" {
		log.Fatal("graphcachedemo: -data is required")
	}

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("graphcachedemo: reading %s: %v", *dataPath, err)
	}

	data, err := jsontree.Parse(raw)
	if err != nil {
		log.Fatalf("graphcachedemo: parsing data tree: %v", err)
	}

	query := demoQuery()
	s := store.New(store.WithLogger(logger))
	ctx := context.Background()

	if _, err := s.WriteQuery(ctx, query, data, nil); err != nil {
		log.Fatalf("graphcachedemo: write: %v", err)
	}

	view, ok, err := s.ReadQuery(ctx, query, nil)
	if err != nil {
		log.Fatalf("graphcachedemo: read: %v", err)
	}
	if !ok {
		log.Fatal("graphcachedemo: read returned nothing")
	}

	printed, err := json.MarshalIndent(objectToJSON(view), "", "  ")
	if err != nil {
		log.Fatalf("graphcachedemo: marshaling view: %v", err)
	}
	fmt.Println(string(printed))
}

// demoQuery mirrors spec.md §8 scenario S1: allStacks with nested
// zettelis.
func demoQuery() *selast.Document {
	zetteliFields := selast.SelectionSet{
		field("id", nil), field("__typename", nil), field("tags", nil), field("body", nil),
	}
	stackFields := selast.SelectionSet{
		field("id", nil), field("__typename", nil), field("name", nil),
		field("zettelis", zetteliFields),
	}
	return &selast.Document{
		Operations: []*selast.OperationDefinition{{
			Name:         "Demo",
			SelectionSet: selast.SelectionSet{field("allStacks", stackFields)},
		}},
	}
}

func field(name string, sel selast.SelectionSet) *selast.Field {
	return &selast.Field{FieldName: name, SelectionSet: sel}
}

// objectToJSON walks exactly the keys obj enumerates (spec.md §4.4
// "enumerates only the field names appearing in its selection set"),
// producing a plain JSON-able value.
func objectToJSON(obj *read.Object) map[string]any {
	keys := obj.Keys()
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		v, ok := obj.Get(k)
		if !ok {
			out[k] = nil
			continue
		}
		out[k] = valueToJSON(v)
	}
	return out
}

func valueToJSON(v read.Value) any {
	switch v.Kind {
	case read.KindNull:
		return nil
	case read.KindScalar:
		return v.Scalar
	case read.KindObject:
		return objectToJSON(v.Object)
	case read.KindArray:
		arr := make([]any, v.Array.Len())
		for i := range arr {
			el, ok := v.Array.At(i)
			if !ok {
				continue
			}
			arr[i] = valueToJSON(el)
		}
		return arr
	default:
		return nil
	}
}
