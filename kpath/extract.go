// SPDX-License-Identifier: MIT
//
// File: extract.go
// Role: Sliding-window k-path extraction.
// Determinism:
//   - Windows are processed in timestamp order; within a step, terminal
//     nodes are visited in lexicographic order and links in stream order.
// Memory:
//   - frontier/next maps form a per-window arena; they are cleared, not
//     reallocated, between anchors.

package kpath

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/honet/temporal"
)

// Sentinel errors returned by Extract.
var (
	// ErrNilStream indicates a nil temporal stream.
	ErrNilStream = errors.New("kpath: stream is nil")

	// ErrBadOrder indicates order < 1.
	ErrBadOrder = errors.New("kpath: order must be >= 1")

	// ErrBadDelta indicates delta < 1.
	ErrBadDelta = errors.New("kpath: delta must be >= 1")
)

// prefix is a partial path under construction; its last node is the key it
// is filed under in the frontier.
type prefix []string

// extractor carries the state of one Extract call.
type extractor struct {
	stream temporal.Stream
	sep    string
	order  int
	delta  int64
	times  []int64

	frontier map[string][]prefix // terminal node → live prefixes
	next     map[string][]prefix // staged: extended only in the following step
	seen     map[string]int      // path key → index in out, current window only

	out []Path
}

// Extract returns all k-paths of the given order in s for the maximum time
// difference delta.
//
// Validation happens once, before any window is processed. Sparse or empty
// windows contribute nothing. An order of 1 has no extension step and
// therefore yields no paths.
//
// Self-loops are neither seeds nor successors and do not count towards E:
// a→b@1 followed by b→b@2 and b→c@2 yields a→b→c with weight 1, not 1/2.
// This keeps the weight leaving every non-dead-end prefix equal to 1.
//
// Each extension step extends only the prefixes that existed when the step
// began. A prefix created during step s waits for step s+1, even if its new
// terminal node is visited later in the same step. This makes M, and
// therefore every weight, independent of visiting order.
//
// The returned slice is freshly allocated and owned by the caller.
func Extract(s temporal.Stream, order int, delta int64) ([]Path, error) {
	if s == nil {
		return nil, ErrNilStream
	}
	if order < 1 {
		return nil, ErrBadOrder
	}
	if delta < 1 {
		return nil, ErrBadDelta
	}

	x := &extractor{
		stream:   s,
		sep:      s.Separator(),
		order:    order,
		delta:    delta,
		times:    s.Timestamps(),
		frontier: make(map[string][]prefix),
		next:     make(map[string][]prefix),
		seen:     make(map[string]int),
		out:      make([]Path, 0),
	}
	if order == 1 || len(x.times) == 0 {
		return x.out, nil
	}
	x.run()

	return x.out, nil
}

// run walks the anchors. A timestamp earlier than the cursor is skipped, so
// only one window is opened per delta-sized stride.
func (x *extractor) run() {
	cursor := x.times[0]
	var t int64
	for _, t = range x.times {
		if t < cursor {
			continue
		}
		cursor = x.windowEnd(t)
		x.window(t)
	}
}

// window builds and extends all prefixes anchored at t, emitting finished
// paths, then discards every prefix.
func (x *extractor) window(t int64) {
	clear(x.frontier)
	clear(x.seen)

	// seeds: every non-loop link active in [t, t+delta)
	x.eachTimestamp(t, func(ts int64) {
		for _, e := range x.stream.EdgesAt(ts) {
			if e.IsLoop() {
				continue
			}
			x.frontier[e.Target] = append(x.frontier[e.Target], prefix{e.Source, e.Target})
		}
	})

	for step := 1; step < x.order && len(x.frontier) > 0; step++ {
		final := step+1 == x.order
		from := t + int64(step)
		clear(x.next)

		for _, node := range sortedNodes(x.frontier) {
			live := x.frontier[node]
			succ := x.successors(node, from)
			if len(succ) == 0 {
				continue
			}
			w := 1 / (float64(len(succ)) * float64(len(live)))

			for _, m := range succ {
				for _, p := range live {
					ext := make(prefix, len(p)+1)
					copy(ext, p)
					ext[len(p)] = m
					if final {
						x.emit(ext, w)
					} else {
						x.next[m] = append(x.next[m], ext)
					}
				}
			}
		}

		x.frontier, x.next = x.next, x.frontier
	}
}

// successors returns the targets of non-loop links leaving node in
// [from, from+delta), one entry per link (repeated links count repeatedly).
func (x *extractor) successors(node string, from int64) []string {
	var succ []string
	x.eachTimestamp(from, func(ts int64) {
		for _, e := range x.stream.OutEdgesAt(ts, node) {
			if e.IsLoop() {
				continue
			}
			succ = append(succ, e.Target)
		}
	})

	return succ
}

// emit records a finished path, merging it with an identical sequence
// already emitted in the current window.
func (x *extractor) emit(nodes prefix, w float64) {
	key := Path{Nodes: nodes}.Key(x.sep)
	if i, ok := x.seen[key]; ok {
		x.out[i].Weight += w
		return
	}
	x.seen[key] = len(x.out)
	x.out = append(x.out, Path{Nodes: nodes, Weight: w})
}

// eachTimestamp calls fn for every stream timestamp in [from, from+delta).
func (x *extractor) eachTimestamp(from int64, fn func(ts int64)) {
	lo := sort.Search(len(x.times), func(i int) bool { return x.times[i] >= from })
	end := x.windowEnd(from)
	for i := lo; i < len(x.times) && x.times[i] < end; i++ {
		fn(x.times[i])
	}
}

// windowEnd returns from+delta, saturating instead of overflowing.
func (x *extractor) windowEnd(from int64) int64 {
	if from > math.MaxInt64-x.delta {
		return math.MaxInt64
	}

	return from + x.delta
}

func sortedNodes(m map[string][]prefix) []string {
	nodes := make([]string, 0, len(m))
	for n := range m {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	return nodes
}
