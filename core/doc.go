// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, weighted, directed in-memory Graph
// that every higher-order aggregate network is materialized into.
//
// A Graph G = (V, E) stores:
//
//   - Vertices keyed by string ID (for higher-order graphs: a k-gram key,
//     e.g. "a,b" for order 2 with separator ",").
//   - At most one directed edge per ordered pair (from, to); repeating the pair
//     through AddWeight accumulates weight on the existing edge.
//   - float64 edge weights (probability mass carried by k-paths).
//
// Storage layout:
//
//	vertices[id]             = *Vertex
//	edges[edgeID]            = *Edge
//	adjacencyList[from][to]  = edgeID
//
// Determinism:
//
//   - Vertices() is sorted lexicographically.
//   - Edges() is sorted by insertion sequence ("e1", "e2", …).
//   - OutEdges(id) and NeighborIDs(id) are sorted by target ID.
//
// Configuration (GraphOption):
//
//	– WithLoops()   permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – NaN, infinite or negative weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – AddEdge on an ordered pair that already has an edge
//
// Concurrency:
//
//	Separate sync.RWMutex locks guard the vertex catalog (muVert) and the
//	edge catalog plus adjacency (muEdgeAdj). Lock order is muVert → muEdgeAdj.
package core
