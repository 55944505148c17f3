// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Stream contract and the in-memory Network implementation.
// Determinism:
//   - Timestamps() is ascending; EdgesAt/OutEdgesAt preserve insertion order.
//   - Nodes() is sorted lexicographically.
// Concurrency:
//   - AddEdge under write lock; all queries under read lock.

package temporal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DefaultSeparator joins node IDs into composite higher-order keys.
const DefaultSeparator = ","

// Sentinel errors for temporal network construction.
var (
	// ErrEmptyNodeID indicates a link with an empty source or target.
	ErrEmptyNodeID = errors.New("temporal: node ID is empty")

	// ErrSeparatorInNodeID indicates a node ID containing the key separator,
	// which would make composite keys ambiguous.
	ErrSeparatorInNodeID = errors.New("temporal: node ID contains separator")
)

// Edge is a directed link (Source → Target) active at Time.
type Edge struct {
	Source string
	Target string
	Time   int64
}

// IsLoop reports whether the link starts and ends at the same node.
func (e Edge) IsLoop() bool { return e.Source == e.Target }

// Stream is the read-only view of a temporal network consumed by the
// k-path extractor.
type Stream interface {
	// Timestamps returns all timestamps with at least one link, ascending
	// and duplicate-free.
	Timestamps() []int64

	// EdgesAt returns the links active at t (nil if none).
	EdgesAt(t int64) []Edge

	// OutEdgesAt returns the links active at t leaving source (nil if none).
	OutEdgesAt(t int64, source string) []Edge

	// Separator returns the token used to join node IDs into composite keys.
	// It never occurs inside a node ID.
	Separator() string
}

// Span returns the length of the observation period of s, last-first+1,
// or 0 when s has no timestamps.
func Span(s Stream) int64 {
	ts := s.Timestamps()
	if len(ts) == 0 {
		return 0
	}

	return ts[len(ts)-1] - ts[0] + 1
}

// Option configures a Network before creation.
type Option func(n *Network)

// WithSeparator sets the composite-key separator (default ",").
// An empty sep is ignored.
func WithSeparator(sep string) Option {
	return func(n *Network) {
		if sep != "" {
			n.separator = sep
		}
	}
}

// Network is an in-memory temporal network implementing Stream.
type Network struct {
	mu sync.RWMutex

	separator string

	times    []int64                    // ascending distinct timestamps
	byTime   map[int64][]Edge           // t → links
	bySource map[int64]map[string][]Edge // t → source → links
	nodes    map[string]struct{}
	count    int
}

// NewNetwork creates an empty Network.
func NewNetwork(opts ...Option) *Network {
	n := &Network{
		separator: DefaultSeparator,
		byTime:    make(map[int64][]Edge),
		bySource:  make(map[int64]map[string][]Edge),
		nodes:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// AddEdge records the link (source → target; t).
//
// Errors:
//   - ErrEmptyNodeID if source or target is empty.
//   - ErrSeparatorInNodeID if either ID contains the separator.
//
// Complexity: O(log T) for a new timestamp (T distinct timestamps), O(1) otherwise.
func (n *Network) AddEdge(source, target string, t int64) error {
	if source == "" || target == "" {
		return ErrEmptyNodeID
	}
	if strings.Contains(source, n.separator) || strings.Contains(target, n.separator) {
		return fmt.Errorf("%w: %q -> %q", ErrSeparatorInNodeID, source, target)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	e := Edge{Source: source, Target: target, Time: t}
	if _, seen := n.byTime[t]; !seen {
		i := sort.Search(len(n.times), func(i int) bool { return n.times[i] >= t })
		n.times = append(n.times, 0)
		copy(n.times[i+1:], n.times[i:])
		n.times[i] = t
		n.bySource[t] = make(map[string][]Edge)
	}
	n.byTime[t] = append(n.byTime[t], e)
	n.bySource[t][source] = append(n.bySource[t][source], e)
	n.nodes[source] = struct{}{}
	n.nodes[target] = struct{}{}
	n.count++

	return nil
}

// Timestamps returns a copy of the ascending timestamp sequence.
func (n *Network) Timestamps() []int64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]int64, len(n.times))
	copy(out, n.times)

	return out
}

// EdgesAt returns the links active at t.
func (n *Network) EdgesAt(t int64) []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.byTime[t]
}

// OutEdgesAt returns the links active at t leaving source.
func (n *Network) OutEdgesAt(t int64, source string) []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.bySource[t][source]
}

// Separator returns the composite-key separator.
func (n *Network) Separator() string { return n.separator }

// EdgeCount returns the number of recorded links, self-loops included.
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.count
}

// Nodes returns all node IDs seen as source or target, sorted.
func (n *Network) Nodes() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, 0, len(n.nodes))
	for id := range n.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// ObservationSpan returns last-first+1 over all timestamps, or 0 when empty.
func (n *Network) ObservationSpan() int64 { return Span(n) }
