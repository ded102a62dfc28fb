package read

import (
	"context"
	"log/slog"

	"github.com/simon-lentz/graphcache/internal/trace"
	"github.com/simon-lentz/graphcache/node"
	"github.com/simon-lentz/graphcache/selast"
)

// Read resolves rctx's root node and returns an object view parameterized
// by query's operation selection set (spec.md §4.4 steps 1-2). The second
// return is false when the root does not exist — a plain "nothing"
// result, not an error (spec.md §4.4 step 1, contrasted with subscribe's
// stricter failure in §4.5).
func Read(ctx context.Context, store *node.Store, logger *slog.Logger, query *selast.Document, rctx node.Context) (*Object, bool, error) {
	op := trace.Begin(ctx, logger, "graphcache.read.read", slog.String("root_id", rctx.ResolveRootID()))

	operation, err := selast.Operation(query)
	if err != nil {
		op.End(err)
		return nil, false, err
	}

	root, found := store.RootByID(rctx.ResolveRootID(), rctx.Optimistic)
	if !found {
		op.End(nil, slog.Bool("found", false))
		return nil, false, nil
	}

	r := &info{
		variables:  rctx.Variables,
		fragments:  selast.FragmentMap(query),
		supertypes: rctx.Supertypes,
		logger:     logger,
	}

	op.End(nil, slog.Bool("found", true))
	return r.object(root, operation.SelectionSet), true, nil
}

// ReadQuery is a convenience wrapper over [Read] for the common case of a
// base (non-optimistic), default-root read parameterized only by
// variables (spec.md §6 "readQuery(query, variables?)").
func ReadQuery(ctx context.Context, store *node.Store, logger *slog.Logger, query *selast.Document, variables map[string]any) (*Object, bool, error) {
	return Read(ctx, store, logger, query, node.Context{Variables: variables})
}
