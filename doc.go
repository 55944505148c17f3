// SPDX-License-Identifier: MIT

// Package honet builds higher-order aggregate networks from temporal
// networks: time-stamped link streams (u, v; t).
//
// A k-th order network has (k-1)-grams of nodes as vertices and one edge
// per observed k-path, so it keeps the order in which links were used
// instead of flattening time away. Paths are only inferred between links at
// most delta time units apart; the null model drops that bound.
//
// Everything is organized under small subpackages:
//
//	core/        thread-safe weighted directed Graph with string vertices
//	temporal/    in-memory link stream + edge-list reader
//	kpath/       sliding-window k-path extraction with fractional weights
//	higherorder/ aggregate network builder + cached Network facade
//	converters/  core.Graph → gonum graph / dense adjacency matrix
//	cmd/honet    CLI: paths, graph, compare
//
// Quick ASCII example, order 2, delta 1:
//
//	a→b@1  b→c@2  c→d@3      ⇒      (a,b) ──1──▶ (b,c) ──1──▶ (c,d)
//
//	go get github.com/katalvlaran/honet
package honet
