package subscribe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/simon-lentz/graphcache/cacheerr"
	"github.com/simon-lentz/graphcache/internal/trace"
	"github.com/simon-lentz/graphcache/node"
	"github.com/simon-lentz/graphcache/read"
	"github.com/simon-lentz/graphcache/selast"
)

// Subscriber is the callback pair a subscription delivers through
// (spec.md §4.5 "{ next, error?, complete? }"; complete has no
// equivalent here since this module has no explicit stream-completion
// signal).
type Subscriber struct {
	Next  func(*read.Object)
	Error func(error)
}

// registration is what the active-subscriber table records per handle
// (spec.md §4.5 step 3: "(subscriber → { query, context })").
type registration struct {
	query *selast.Document
	ctx   node.Context
	sub   Subscriber
}

// Coordinator owns the active-subscriber table for one store (spec.md
// §4.5). It is not safe for concurrent use, matching the single-threaded
// cooperative model spec.md §5 assumes for the whole cache.
type Coordinator struct {
	store  *node.Store
	logger *slog.Logger
	active map[node.SubscriberHandle]registration
}

// NewCoordinator constructs a coordinator bound to store.
func NewCoordinator(store *node.Store, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		store:  store,
		logger: logger,
		active: make(map[node.SubscriberHandle]registration),
	}
}

// Observe resolves octx's root, registers sub against it, records the
// active entry, and delivers the first read before returning (spec.md
// §4.5 steps 1-4). It returns an unsubscribe function (step 5). A missing root fails
// synchronously, unlike [read.Read]'s "nothing" result.
func (c *Coordinator) Observe(ctx context.Context, query *selast.Document, octx node.Context, sub Subscriber) (unsubscribe func(), err error) {
	op := trace.Begin(ctx, c.logger, "graphcache.subscribe.observe", slog.String("root_id", octx.ResolveRootID()))

	if _, err := selast.Operation(query); err != nil {
		op.End(err)
		return nil, err
	}

	root, ok := c.store.RootByID(octx.ResolveRootID(), octx.Optimistic)
	if !ok {
		notFound := &cacheerr.NodeNotFoundError{RootID: octx.ResolveRootID()}
		op.End(notFound)
		return nil, notFound
	}

	handle := node.SubscriberHandle(uuid.New())
	root.Subscribe(handle, octx.Optimistic)
	c.active[handle] = registration{query: query, ctx: octx, sub: sub}

	c.deliverOne(ctx, handle)

	op.End(nil)
	return func() {
		delete(c.active, handle)
		root.Unsubscribe(handle)
	}, nil
}

// Notify re-reads and delivers every handle in pending (spec.md §4.3's
// per-transaction pending-subscriber set). Delivery is synchronous:
// Notify returns only after every pending subscriber has been called.
// Call it once per write, after the write's root index update has landed.
func (c *Coordinator) Notify(ctx context.Context, pending map[node.SubscriberHandle]struct{}) {
	for handle := range pending {
		c.deliverOne(ctx, handle)
	}
}

func (c *Coordinator) deliverOne(ctx context.Context, handle node.SubscriberHandle) {
	reg, ok := c.active[handle]
	if !ok {
		// Unsubscribed between scheduling and delivery; spec.md §5
		// requires tolerating a missing entry and skipping delivery.
		return
	}

	view, found, err := read.Read(ctx, c.store, c.logger, reg.query, reg.ctx)
	if err != nil {
		if reg.sub.Error != nil {
			reg.sub.Error(err)
		}
		return
	}
	if !found {
		if reg.sub.Error != nil {
			reg.sub.Error(&cacheerr.NodeNotFoundError{RootID: reg.ctx.ResolveRootID()})
		}
		return
	}
	if reg.sub.Next != nil {
		reg.sub.Next(view)
	}
}
