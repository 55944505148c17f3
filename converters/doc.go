// SPDX-License-Identifier: MIT

// Package converters provides adapters between core.Graph and gonum:
//   - gonum/graph/simple (WeightedDirectedGraph)
//   - gonum/mat (dense weighted adjacency matrix)
//
// Use converters to hand higher-order networks to gonum's path, centrality
// and linear-algebra routines. Vertex names travel through a NodeIndex,
// which maps composite k-gram keys to dense int64 node IDs 0..V-1 in sorted
// key order.
package converters
