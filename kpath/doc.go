// SPDX-License-Identifier: MIT

// Package kpath extracts weighted time-respecting paths of fixed length
// ("k-paths") from a temporal.Stream.
//
// A k-path of order k is a walk of exactly k links (k+1 nodes) whose
// consecutive links are active in successive, overlapping time windows of
// width delta. Extraction slides an anchor over the timestamps:
//
//	anchor t          seeds    = links active in [t, t+delta)
//	step s = 1..k-1   extend   = links active in [t+s, t+s+delta)
//	next anchor       first timestamp ≥ t+delta
//
// Every seed (u,v) opens the prefix [u,v] terminating at v. Each step
// appends a successor m to every live prefix ending at n for each link
// (n,m) in the step window, never following a self-loop. Prefixes that reach
// k+1 nodes on the last step are emitted with weight
//
//	w = 1 / (E × M)
//
// where E is the number of (non-loop) links leaving the prefix's
// second-to-last node in the step window and M is the number of live
// prefixes ending at that node. This is the probability a uniform random
// walker assigns to the path, shared among the M competing prefixes, so the
// emitted mass per node and window sums to one.
//
// Identical node sequences within one anchor window are merged (weights
// summed); equal sequences from different windows are reported separately.
//
// Complexity:
//
//   - Time:   O(T · B^k) where T is the number of anchors and B the branching
//     factor of valid continuations inside one window.
//   - Memory: O(B^k) for one window's prefixes; nothing survives a window.
//
// Errors:
//
//   - ErrNilStream if the stream is nil.
//   - ErrBadOrder  if order < 1.
//   - ErrBadDelta  if delta < 1.
package kpath
