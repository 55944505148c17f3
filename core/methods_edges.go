// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddWeight/HasEdge/EdgeBetween/GetEdge/Edges/EdgeCount,
//       plus TotalWeight. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order (Edge.ID sequence).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from → to with the given weight and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject an existing (from,to) pair.
//  4. Generate eid, store edge, link adjacency.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if err := g.validateEdge(from, to, weight); err != nil {
		return "", err
	}
	if err := g.ensureEndpoints(from, to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.adjacencyList[from][to]; ok {
		return "", ErrMultiEdgeNotAllowed
	}

	return g.insertEdge(from, to, weight), nil
}

// AddWeight adds weight to the edge from → to, creating the edge (and its
// endpoints) on first use. It returns the ID of the edge carrying the sum.
//
// This is the accumulation primitive used to fold many k-paths onto one
// higher-order edge: repeated calls for the same ordered pair never create
// parallel edges.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddWeight(from, to string, weight float64) (string, error) {
	if err := g.validateEdge(from, to, weight); err != nil {
		return "", err
	}
	if err := g.ensureEndpoints(from, to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if eid, ok := g.adjacencyList[from][to]; ok {
		g.edges[eid].Weight += weight
		return eid, nil
	}

	return g.insertEdge(from, to, weight), nil
}

// HasEdge reports whether an edge from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacencyList[from][to]

	return ok
}

// EdgeBetween returns the edge from → to, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacencyList[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// GetEdge returns the Edge with the given edgeID, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in creation order (stable, deterministic).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var sum float64
	var e *Edge
	for _, e = range g.edges {
		sum += e.Weight
	}

	return sum
}

// validateEdge checks IDs, weight and loop policy; it touches no locked state
// except the immutable allowLoops flag.
func (g *Graph) validateEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	return nil
}

func (g *Graph) ensureEndpoints(from, to string) error {
	if err := g.AddVertex(from); err != nil {
		return err
	}

	return g.AddVertex(to)
}

// insertEdge stores a new edge. Must be called under muEdgeAdj write lock.
func (g *Graph) insertEdge(from, to string, weight float64) string {
	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]string)
	}
	g.adjacencyList[from][to] = eid

	return eid
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal).
// Safe for concurrent callers.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence of an ID produced by nextEdgeID.
func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[1:], 10, 64)

	return n
}
