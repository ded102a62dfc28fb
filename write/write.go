package write

import (
	"context"
	"log/slog"

	"github.com/simon-lentz/graphcache/cacheerr"
	"github.com/simon-lentz/graphcache/internal/trace"
	"github.com/simon-lentz/graphcache/node"
	"github.com/simon-lentz/graphcache/selast"
	"github.com/simon-lentz/graphcache/storekey"
)

// Result reports what a write changed (spec.md §6 "write(...) → boolean")
// and the set of subscribers whose pinned node was touched, for the store
// façade to deliver notifications to (spec.md §4.3
// "Transaction boundary").
type Result struct {
	Changed bool
	Pending map[node.SubscriberHandle]struct{}
}

// info threads the per-write context through the recursive descent:
// variable bindings for store-name computation, the document's fragment
// map, and the optional interface/union supertype table.
type info struct {
	variables    map[string]any
	fragments    map[string]*selast.FragmentDefinition
	supertypes   selast.Supertypes
	storekeyOpts []storekey.Option
}

// Write descends query's operation selection into data, materializing or
// updating graph nodes in store, and returns whether the store's root for
// wctx actually changed (spec.md §4.3, §6).
func Write(ctx context.Context, store *node.Store, logger *slog.Logger, query *selast.Document, data map[string]any, wctx node.Context) (Result, error) {
	op := trace.Begin(ctx, logger, "graphcache.write.write", slog.String("root_id", wctx.ResolveRootID()))

	operation, err := selast.Operation(query)
	if err != nil {
		op.End(err)
		return Result{}, err
	}

	w := &info{
		variables:  wctx.Variables,
		fragments:  selast.FragmentMap(query),
		supertypes: wctx.Supertypes,
	}
	if wctx.CaseInsensitiveTypenames {
		w.storekeyOpts = []storekey.Option{storekey.WithCaseInsensitiveTypenames()}
	}

	tx := store.NextTransaction(wctx.Optimistic)
	rootID := wctx.ResolveRootID()

	existingRoot, hadRoot := store.RootByID(rootID, wctx.Optimistic)
	var working *node.Node
	if hadRoot {
		working = existingRoot
	}

	newRoot, err := w.writeSelectionSet(store, tx, working, operation.SelectionSet, data)
	if err != nil {
		op.End(err)
		return Result{}, err
	}

	if hadRoot && newRoot == existingRoot {
		trace.Debug(ctx, logger, "graphcache.write.write: unchanged", slog.String("root_id", rootID))
		op.End(nil, slog.Bool("changed", false))
		return Result{Changed: false, Pending: tx.Pending}, nil
	}

	store.IndexRoot(rootID, newRoot, wctx.Optimistic)
	op.End(nil, slog.Bool("changed", true), slog.Int("notify", len(tx.Pending)))
	return Result{Changed: true, Pending: tx.Pending}, nil
}

// writeSelectionSet materializes data into working (or an existing/fresh
// node when working is nil), driving one selection set (spec.md §4.3
// "writeSelectionSet").
func (w *info) writeSelectionSet(store *node.Store, tx *node.Transaction, working *node.Node, selSet selast.SelectionSet, data map[string]any) (*node.Node, error) {
	if working == nil {
		working = w.resolveWorkingNode(store, tx, data)
	}

	for _, sel := range selSet {
		var err error
		switch s := sel.(type) {
		case *selast.Field:
			working, err = w.writeFieldSelection(store, tx, working, s, data)
		case *selast.InlineFragment:
			working, err = w.writeFragmentBranch(store, tx, working, s.TypeCondition, s.SelectionSet, data)
		case *selast.FragmentSpread:
			def, resolveErr := selast.ResolveFragment(w.fragments, s)
			if resolveErr != nil {
				return nil, resolveErr
			}
			working, err = w.writeFragmentBranch(store, tx, working, def.TypeCondition, def.SelectionSet, data)
		}
		if err != nil {
			return nil, err
		}
	}

	if key, ok := storekey.Of(data, w.storekeyOpts...); ok {
		store.Index(key, working)
	}
	return working, nil
}

func (w *info) writeFieldSelection(store *node.Store, tx *node.Transaction, working *node.Node, field *selast.Field, data map[string]any) (*node.Node, error) {
	raw, ok := data[field.Alias()]
	if !ok {
		return nil, &cacheerr.MissingFieldError{Field: field.Alias()}
	}
	return w.writeField(store, tx, working, field, raw)
}

func (w *info) writeFragmentBranch(store *node.Store, tx *node.Transaction, working *node.Node, typeCondition string, selSet selast.SelectionSet, data map[string]any) (*node.Node, error) {
	if !selast.Matches(typeCondition, typenameOf(data), w.supertypes) {
		return working, nil
	}
	return w.writeSelectionSet(store, tx, working, selSet, data)
}

// resolveWorkingNode picks the node a selection set is about to write
// into: the existing indexed node for data's store key when one exists,
// else a freshly minted node (spec.md §4.3 "writeSelectionSet: choose a
// working node").
func (w *info) resolveWorkingNode(store *node.Store, tx *node.Transaction, data map[string]any) *node.Node {
	if key, ok := storekey.Of(data, w.storekeyOpts...); ok {
		if existing, found := store.GetByKey(key, tx.IsOptimistic); found {
			return existing
		}
	}
	return store.NewNode(tx, nil, false)
}

// writeField implements spec.md §4.3 "writeField".
func (w *info) writeField(store *node.Store, tx *node.Transaction, n *node.Node, field *selast.Field, d any) (*node.Node, error) {
	storeName, err := selast.StoreName(field, w.variables)
	if err != nil {
		return nil, err
	}

	if !field.HasSelectionSet() || d == nil {
		return n.Set(storeName, node.Scalar(d), tx), nil
	}

	if arr, ok := d.([]any); ok {
		return w.writeArrayNode(store, tx, n, storeName, field, arr)
	}

	obj, ok := d.(map[string]any)
	if !ok {
		return nil, unexpectedShapeError(field.Name(), d)
	}

	child, err := w.writeSelectionSet(store, tx, childNode(n, storeName), field.SelectionSet, obj)
	if err != nil {
		return nil, err
	}
	parentAfterSet := n.Set(storeName, node.Ref(child), tx)
	child.AddParent(parentAfterSet, storeName)
	return parentAfterSet, nil
}

// writeArrayNode implements spec.md §4.3 "writeArrayNode", recursing on
// itself for nested arrays (same field selection reused at every depth).
func (w *info) writeArrayNode(store *node.Store, tx *node.Transaction, parent *node.Node, storeName string, field *selast.Field, arrayData []any) (*node.Node, error) {
	arrNode := existingArrayChild(store, tx, parent, storeName)

	for i, el := range arrayData {
		key := indexKey(i)

		if nested, ok := el.([]any); ok {
			updated, err := w.writeArrayNode(store, tx, arrNode, key, field, nested)
			if err != nil {
				return nil, err
			}
			arrNode = updated
			continue
		}

		if el == nil {
			arrNode = arrNode.Set(key, node.Scalar(nil), tx)
			continue
		}

		obj, ok := el.(map[string]any)
		if !ok {
			return nil, unexpectedShapeError(field.Name(), el)
		}
		child, err := w.writeSelectionSet(store, tx, childNode(arrNode, key), field.SelectionSet, obj)
		if err != nil {
			return nil, err
		}
		arrNode = arrNode.Set(key, node.Ref(child), tx)
		child.AddParent(arrNode, key)
	}

	parentAfterSet := parent.Set(storeName, node.Ref(arrNode), tx)
	arrNode.AddParent(parentAfterSet, storeName)
	return parentAfterSet, nil
}
