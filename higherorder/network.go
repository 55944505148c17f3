// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: HigherOrderNetwork facade: parameters, k-path cache, graph dispatch.

package higherorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/honet/core"
	"github.com/katalvlaran/honet/kpath"
	"github.com/katalvlaran/honet/temporal"
)

const (
	// NotComputed is the k-path count reported before extraction.
	NotComputed = -1

	// DefaultOrder is the order restored by ResetOrder.
	DefaultOrder = 1

	// DefaultMaxTimeDiff is the delta used when none is configured: links
	// must be directly consecutive, (u,v;t) then (v,w;t+1).
	DefaultMaxTimeDiff int64 = 1
)

// Sentinel errors for facade configuration.
var (
	// ErrNilStream indicates New was called without a stream.
	ErrNilStream = errors.New("higherorder: stream is nil")

	// ErrBadOrder indicates an order < 1.
	ErrBadOrder = errors.New("higherorder: order must be >= 1")

	// ErrBadDelta indicates a maximum time difference < 1.
	ErrBadDelta = errors.New("higherorder: maxTimeDiff must be >= 1")
)

// Option configures a Network in New.
type Option func(n *Network)

// WithMaxTimeDiff sets delta, the maximum time difference between
// consecutive links of a time-respecting path. Validated by New.
func WithMaxTimeDiff(delta int64) Option {
	return func(n *Network) { n.delta = delta }
}

// WithLogger installs the logger used for milestone events
// (parameter changes, extraction, graph construction).
func WithLogger(l zerolog.Logger) Option {
	return func(n *Network) { n.log = l }
}

// pathCache holds extracted k-paths. count == NotComputed marks it empty.
type pathCache struct {
	paths []kpath.Path
	count int
}

func emptyCache() pathCache { return pathCache{count: NotComputed} }

func (c pathCache) populated() bool { return c.count != NotComputed }

// Network is the aggregated order-k view of a temporal stream.
type Network struct {
	stream temporal.Stream
	order  int
	delta  int64
	cache  pathCache
	log    zerolog.Logger
}

// New returns a Network of the given order over s.
//
// Errors:
//   - ErrNilStream if s is nil.
//   - ErrBadOrder if order < 1.
//   - ErrBadDelta if WithMaxTimeDiff supplied delta < 1.
func New(s temporal.Stream, order int, opts ...Option) (*Network, error) {
	if s == nil {
		return nil, ErrNilStream
	}
	n := &Network{
		stream: s,
		order:  order,
		delta:  DefaultMaxTimeDiff,
		cache:  emptyCache(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.order < 1 {
		return nil, ErrBadOrder
	}
	if n.delta < 1 {
		return nil, ErrBadDelta
	}

	return n, nil
}

// Order returns k, the order of the aggregate network.
func (n *Network) Order() int { return n.order }

// MaxTimeDiff returns delta.
func (n *Network) MaxTimeDiff() int64 { return n.delta }

// SetOrder changes the order. A different value clears the cache; the
// current value is a no-op.
func (n *Network) SetOrder(k int) error {
	if k < 1 {
		return ErrBadOrder
	}
	if k == n.order {
		return nil
	}
	n.log.Info().Int("from", n.order).Int("to", k).Msg("changing order of aggregated network")
	n.order = k
	n.ClearCache()

	return nil
}

// ResetOrder restores DefaultOrder.
func (n *Network) ResetOrder() { _ = n.SetOrder(DefaultOrder) }

// SetMaxTimeDiff changes delta. A different value clears the cache; the
// current value is a no-op.
//
// For (u,v;3) and (v,w;7) a path u→v→w is inferred for every delta ≥ 4 and
// for no delta < 4.
func (n *Network) SetMaxTimeDiff(delta int64) error {
	if delta < 1 {
		return ErrBadDelta
	}
	if delta == n.delta {
		return nil
	}
	n.log.Info().Int64("from", n.delta).Int64("to", delta).Msg("changing maximal time difference")
	n.delta = delta
	n.ClearCache()

	return nil
}

// ResetMaxTimeDiff restores DefaultMaxTimeDiff.
func (n *Network) ResetMaxTimeDiff() { _ = n.SetMaxTimeDiff(DefaultMaxTimeDiff) }

// ClearCache drops cached k-paths; KPathCount reports NotComputed afterwards.
func (n *Network) ClearCache() {
	n.cache = emptyCache()
	n.log.Debug().Msg("cache cleared")
}

// KPathCount returns the number of cached k-paths, or NotComputed if they
// have not been extracted since the last invalidation. It never extracts.
func (n *Network) KPathCount() int { return n.cache.count }

// ExtractKPaths extracts k-paths for the current order and delta and
// replaces the cache. The returned slice is shared with the cache and must
// not be modified.
func (n *Network) ExtractKPaths() ([]kpath.Path, error) {
	paths, err := n.extract(n.delta, "kpaths")
	if err != nil {
		return nil, err
	}
	n.cache = pathCache{paths: paths, count: len(paths)}

	return paths, nil
}

// KPaths returns the cached k-paths, extracting them on first use.
// The returned slice must not be modified.
func (n *Network) KPaths() ([]kpath.Path, error) {
	if n.cache.populated() {
		return n.cache.paths, nil
	}

	return n.ExtractKPaths()
}

// PathCount returns the number of k-paths, extracting them on first use.
func (n *Network) PathCount() (int, error) {
	paths, err := n.KPaths()
	if err != nil {
		return 0, err
	}

	return len(paths), nil
}

// Graph returns the order-k aggregate network built from the cached
// k-paths. The graph is rebuilt on every call.
//
// Errors: ErrOrderTooLow if order < 2.
func (n *Network) Graph() (*core.Graph, error) {
	if n.order < 2 {
		return nil, ErrOrderTooLow
	}
	n.log.Info().Int("order", n.order).Msg("constructing k-th-order aggregate network")

	paths, err := n.KPaths()
	if err != nil {
		return nil, err
	}

	return n.build(paths)
}

// NullGraph returns the order-k null model: the aggregate network of all
// k-paths obtained when delta spans the whole observation period. The path
// cache is neither read nor written.
//
// Errors: ErrOrderTooLow if order < 2.
func (n *Network) NullGraph() (*core.Graph, error) {
	if n.order < 2 {
		return nil, ErrOrderTooLow
	}
	n.log.Info().Int("order", n.order).Msg("constructing null model of k-th-order aggregate network")

	paths, err := n.extract(n.NullMaxTimeDiff(), "null kpaths")
	if err != nil {
		return nil, err
	}

	return n.build(paths)
}

// NullMaxTimeDiff returns the delta used by NullGraph: the length of the
// observation period, at least 1.
func (n *Network) NullMaxTimeDiff() int64 {
	return max(temporal.Span(n.stream), 1)
}

// Summary returns a short human-readable description of the network.
func (n *Network) Summary() string {
	var b strings.Builder
	b.WriteString("Higher order network\n")
	fmt.Fprintf(&b, "  order: %d\n", n.order)
	fmt.Fprintf(&b, "  delta: %d\n", n.delta)
	if n.cache.populated() {
		fmt.Fprintf(&b, "  k-paths: %d extracted\n", n.cache.count)
	} else {
		b.WriteString("  k-paths: not yet extracted\n")
	}

	return b.String()
}

// extract runs the extractor with the current order and the given delta,
// logging start and end.
func (n *Network) extract(delta int64, what string) ([]kpath.Path, error) {
	n.log.Info().Str("what", what).Int("order", n.order).Int64("delta", delta).Msg("extracting")
	start := time.Now()

	paths, err := kpath.Extract(n.stream, n.order, delta)
	if err != nil {
		return nil, fmt.Errorf("higherorder: extracting %s: %w", what, err)
	}

	n.log.Info().
		Str("what", what).
		Int("count", len(paths)).
		Dur("elapsed", time.Since(start)).
		Msg("extraction finished")

	return paths, nil
}

func (n *Network) build(paths []kpath.Path) (*core.Graph, error) {
	g, err := Build(paths, n.order, n.stream.Separator())
	if err != nil {
		return nil, err
	}
	n.log.Info().Int("vertices", g.VertexCount()).Int("edges", g.EdgeCount()).Msg("finished")

	return g, nil
}
