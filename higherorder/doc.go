// SPDX-License-Identifier: MIT

// Package higherorder folds time-respecting k-paths into order-k aggregate
// networks.
//
// In an order-k network every vertex is a k-gram, the composite key of k
// consecutive node IDs joined by the stream separator, and every edge links
// two k-grams that overlap by k-1 positions:
//
//	path  a → b → c        (order 2)
//	edge  "a,b" → "b,c"    weight += path weight
//
// Two entry points are provided:
//
//   - Build(paths, order, sep) is the stateless builder.
//   - Network is a facade over a temporal.Stream owning order, delta and a
//     cache of extracted k-paths. Graph() and NullGraph() rebuild a fresh
//     core.Graph on every call; only the path set is cached.
//
// Cache rules:
//
//   - KPathCount() reports NotComputed (-1) until paths are extracted; an
//     empty extraction reports 0.
//   - SetOrder / SetMaxTimeDiff with a new value clear the cache; with the
//     current value they are no-ops.
//   - KPaths(), PathCount() and Graph() extract on first use.
//
// The null model (NullGraph) re-extracts with delta spanning the whole
// observation period, leaving only chronological order as a constraint; its
// edge set is a superset of Graph()'s. Comparing the two tells whether the
// configured delta induces non-Markovian structure.
//
// Errors:
//
//   - ErrNilStream   stream is nil (New).
//   - ErrBadOrder    order < 1 (New, SetOrder).
//   - ErrBadDelta    delta < 1 (New, SetMaxTimeDiff).
//   - ErrOrderTooLow order < 2 when building a graph.
//   - ErrPathLength  a path is not order+1 nodes long (Build).
//
// A Network is not safe for concurrent use; use one instance per goroutine.
// Instances may share one read-only stream.
package higherorder
