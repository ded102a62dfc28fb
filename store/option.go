package store

import "log/slog"

// Option configures a [Store], following the teacher's functional-options
// pattern (graph.GraphOption).
type Option func(*config)

type config struct {
	logger *slog.Logger
	rootID string
	clock  func() int64
}

// WithLogger enables operation-boundary logging across the node, write,
// read, and subscribe layers.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithRootID overrides the default root identifier (spec.md §6 "Root
// identifier convention": default "QUERY") a call uses when its context
// leaves RootID unset.
func WithRootID(rootID string) Option {
	return func(c *config) { c.rootID = rootID }
}

// WithClock supplies a monotonic counter the store stamps onto its own
// operation-boundary trace logs (graphcache.store.write/graphcache.store.observe),
// letting a host correlate cache activity with its own logical clock
// without the store needing to know what that clock measures.
func WithClock(clock func() int64) Option {
	return func(c *config) { c.clock = clock }
}
