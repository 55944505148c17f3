// SPDX-License-Identifier: MIT

// Package temporal models the time-stamped link stream a higher-order
// network is aggregated from.
//
// A temporal network is a set of directed links (source, target; t) active at
// discrete integer timestamps. The Stream interface exposes exactly what the
// k-path extractor reads:
//
//	Timestamps()            ascending, duplicate-free timestamps
//	EdgesAt(t)              all links active at t
//	OutEdgesAt(t, source)   links active at t leaving source
//	Separator()             token joining node IDs into composite k-gram keys
//
// Network is the in-memory implementation. It is filled with AddEdge or read
// from a whitespace- or delimiter-separated edge list with ReadEdgeList:
//
//	# comments and blank lines are skipped
//	source target time
//	a      b      1
//	b      c      2
//
// The header is optional; its columns may appear in any order.
//
// Self-loop links (source == target) are stored as observed; consumers that
// build paths skip them.
//
// Network is safe for concurrent readers once loading has finished.
package temporal
