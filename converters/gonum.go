// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/honet/core"
)

var (
	// ErrNilGraph indicates a nil graph argument.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrNilIndex indicates a nil NodeIndex argument.
	ErrNilIndex = errors.New("converters: node index is nil")

	// ErrUnknownNode indicates a gonum node ID absent from the NodeIndex.
	ErrUnknownNode = errors.New("converters: node ID not in index")
)

// NodeIndex maps vertex names to dense gonum node IDs and back.
type NodeIndex struct {
	ids   map[string]int64
	names []string
}

// NewNodeIndex assigns IDs 0..len(names)-1 in the given order.
func NewNodeIndex(names []string) *NodeIndex {
	ix := &NodeIndex{ids: make(map[string]int64, len(names)), names: append([]string(nil), names...)}
	for i, name := range ix.names {
		ix.ids[name] = int64(i)
	}

	return ix
}

// ID returns the node ID for name.
func (ix *NodeIndex) ID(name string) (int64, bool) {
	id, ok := ix.ids[name]
	return id, ok
}

// Name returns the vertex name for a node ID.
func (ix *NodeIndex) Name(id int64) (string, bool) {
	if id < 0 || id >= int64(len(ix.names)) {
		return "", false
	}

	return ix.names[id], true
}

// Len returns the number of indexed vertices.
func (ix *NodeIndex) Len() int { return len(ix.names) }

// ToGonum copies g into a gonum WeightedDirectedGraph. Node IDs follow
// g.Vertices() order; self and absent weights are both 0, which is the
// natural neutral element for transition-matrix style consumers.
//
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.WeightedDirectedGraph, *NodeIndex, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	ix := NewNodeIndex(g.Vertices())
	wg := simple.NewWeightedDirectedGraph(0, 0)
	for i := range ix.names {
		wg.AddNode(simple.Node(int64(i)))
	}

	for _, e := range g.Edges() {
		from, fok := ix.ID(e.From)
		to, tok := ix.ID(e.To)
		if !fok || !tok {
			return nil, nil, fmt.Errorf("converters: edge %s (%s → %s) references unknown vertex", e.ID, e.From, e.To)
		}
		if from == to {
			// simple graphs cannot hold self edges; loops land on the matrix diagonal only
			continue
		}
		wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(from), T: simple.Node(to), W: e.Weight})
	}

	return wg, ix, nil
}

// FromGonum rebuilds a core.Graph from any weighted directed gonum graph,
// naming vertices through ix.
//
// Errors: ErrNilGraph, ErrNilIndex, ErrUnknownNode (wrapped), or core errors.
func FromGonum(wg graph.WeightedDirected, ix *NodeIndex) (*core.Graph, error) {
	if wg == nil {
		return nil, ErrNilGraph
	}
	if ix == nil {
		return nil, ErrNilIndex
	}

	g := core.NewGraph()
	nodes := wg.Nodes()
	for nodes.Next() {
		u := nodes.Node().ID()
		from, ok := ix.Name(u)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownNode, u)
		}
		if err := g.AddVertex(from); err != nil {
			return nil, err
		}

		succ := wg.From(u)
		for succ.Next() {
			v := succ.Node().ID()
			to, ok := ix.Name(v)
			if !ok {
				return nil, fmt.Errorf("%w: %d", ErrUnknownNode, v)
			}
			w := wg.WeightedEdge(u, v).Weight()
			if _, err := g.AddWeight(from, to, w); err != nil {
				return nil, fmt.Errorf("converters: %s → %s: %w", from, to, err)
			}
		}
	}

	return g, nil
}

// AdjacencyMatrix returns the V×V weighted adjacency matrix of g with rows
// and columns ordered by the returned NodeIndex. Entry (i, j) is the weight
// of edge i → j, 0 if absent. An empty graph yields a nil matrix, since
// gonum has no zero-sized Dense.
func AdjacencyMatrix(g *core.Graph) (*mat.Dense, *NodeIndex, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	ix := NewNodeIndex(g.Vertices())
	if ix.Len() == 0 {
		return nil, ix, nil
	}
	m := mat.NewDense(ix.Len(), ix.Len(), nil)
	for _, e := range g.Edges() {
		i, _ := ix.ID(e.From)
		j, _ := ix.ID(e.To)
		m.Set(int(i), int(j), e.Weight)
	}

	return m, ix, nil
}
