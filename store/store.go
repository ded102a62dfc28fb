package store

import (
	"context"
	"log/slog"

	"github.com/simon-lentz/graphcache/internal/trace"
	"github.com/simon-lentz/graphcache/node"
	"github.com/simon-lentz/graphcache/read"
	"github.com/simon-lentz/graphcache/selast"
	"github.com/simon-lentz/graphcache/subscribe"
	"github.com/simon-lentz/graphcache/write"
)

// Store is the public entry point for this module: one normalized node
// store, one subscription coordinator, wired together (spec.md §6).
type Store struct {
	nodes         *node.Store
	logger        *slog.Logger
	defaultRootID string
	clock         func() int64
	coord         *subscribe.Coordinator
}

// New constructs a Store.
func New(opts ...Option) *Store {
	cfg := config{rootID: node.DefaultRootID}
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes := node.NewStore(node.WithLogger(cfg.logger))
	return &Store{
		nodes:         nodes,
		logger:        cfg.logger,
		defaultRootID: cfg.rootID,
		clock:         cfg.clock,
		coord:         subscribe.NewCoordinator(nodes, cfg.logger),
	}
}

func (s *Store) resolve(ctx node.Context) node.Context {
	if ctx.RootID == "" {
		ctx.RootID = s.defaultRootID
	}
	return ctx
}

func (s *Store) clockAttrs() []slog.Attr {
	if s.clock == nil {
		return nil
	}
	return []slog.Attr{slog.Int64("clock", s.clock())}
}

// Read resolves a view over rctx's root (spec.md §6 "read(query, context?)").
func (s *Store) Read(ctx context.Context, query *selast.Document, rctx node.Context) (*read.Object, bool, error) {
	return read.Read(ctx, s.nodes, s.logger, query, s.resolve(rctx))
}

// ReadQuery is the variables-only convenience wrapper (spec.md §6
// "readQuery(query, variables?)").
func (s *Store) ReadQuery(ctx context.Context, query *selast.Document, variables map[string]any) (*read.Object, bool, error) {
	return s.Read(ctx, query, node.Context{Variables: variables})
}

// Write materializes data into the store and notifies every subscriber
// the write's transaction touched (spec.md §6 "write(query, dataTree,
// context?) → boolean").
func (s *Store) Write(ctx context.Context, query *selast.Document, data map[string]any, wctx node.Context) (bool, error) {
	op := trace.Begin(ctx, s.logger, "graphcache.store.write", s.clockAttrs()...)

	result, err := write.Write(ctx, s.nodes, s.logger, query, data, s.resolve(wctx))
	if err != nil {
		op.End(err)
		return false, err
	}

	s.coord.Notify(ctx, result.Pending)
	op.End(nil, slog.Bool("changed", result.Changed), slog.Int("notified", len(result.Pending)))
	return result.Changed, nil
}

// WriteQuery is the convenience wrapper over Write (spec.md §6
// "writeQuery(query, { data }, variables?)").
func (s *Store) WriteQuery(ctx context.Context, query *selast.Document, data map[string]any, variables map[string]any) (bool, error) {
	return s.Write(ctx, query, data, node.Context{Variables: variables})
}

// Observe registers sub against octx's root and returns an unsubscribe
// function (spec.md §6 "observe(query, context?)", §4.5).
func (s *Store) Observe(ctx context.Context, query *selast.Document, octx node.Context, sub subscribe.Subscriber) (unsubscribe func(), err error) {
	op := trace.Begin(ctx, s.logger, "graphcache.store.observe", s.clockAttrs()...)
	unsubscribe, err = s.coord.Observe(ctx, query, s.resolve(octx), sub)
	op.End(err)
	return unsubscribe, err
}
