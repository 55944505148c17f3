// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/honet/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
)

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(""))
}

func TestAddVertex_Empty(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestVertex_Lookup(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))

	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	assert.Equal(t, VertexA, v.ID)
	assert.NotNil(t, v.Metadata)

	_, err = g.Vertex(VertexB)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Vertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge(VertexA, VertexB, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
	assert.Equal(t, []string{VertexA, VertexB}, g.Vertices())
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA), "edges are directed")
}

func TestAddEdge_Rejections(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", VertexB, 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexA, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = g.AddEdge(VertexA, VertexB, w)
		assert.ErrorIs(t, err, core.ErrBadWeight)
	}

	_, err = g.AddEdge(VertexA, VertexB, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexB, 1)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestWithLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge(VertexA, VertexA, 1)
	require.NoError(t, err)
	assert.True(t, g.Stats().AllowsLoops)
}

func TestAddWeight_Accumulates(t *testing.T) {
	g := core.NewGraph()
	first, err := g.AddWeight(VertexA, VertexB, 0.25)
	require.NoError(t, err)
	second, err := g.AddWeight(VertexA, VertexB, 0.5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, g.EdgeCount())

	e, err := g.EdgeBetween(VertexA, VertexB)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, e.Weight, 1e-12)
	assert.InDelta(t, 0.75, g.TotalWeight(), 1e-12)
}

func TestEdgeBetween_Missing(t *testing.T) {
	g := core.NewGraph()
	_, err := g.EdgeBetween(VertexA, VertexB)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.GetEdge("e42")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestEdges_CreationOrder(t *testing.T) {
	g := core.NewGraph()
	// more than nine edges so that lexical and numeric ID order differ
	const n = 12
	for i := 0; i < n; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%d", i), "hub", 1)
		require.NoError(t, err)
	}
	_, err := g.AddWeight("v3", "hub", 1)
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, n)
	for i, e := range edges {
		assert.Equal(t, fmt.Sprintf("v%d", i), e.From)
		assert.Equal(t, fmt.Sprintf("e%d", i+1), e.ID)
	}
}

func TestOutEdges_SortedByTarget(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexC, 1)
	_, _ = g.AddEdge(VertexA, VertexB, 2)
	_, _ = g.AddEdge(VertexB, VertexA, 3)

	ids, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexC}, ids)

	_, err = g.OutEdges("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	in, out, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 2, out)
}

func TestStats(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddWeight(VertexA, VertexB, 1)
	_, _ = g.AddWeight(VertexB, VertexC, 2)
	s := g.Stats()
	assert.Equal(t, 3, s.VertexCount)
	assert.Equal(t, 2, s.EdgeCount)
	assert.InDelta(t, 3.0, s.TotalWeight, 1e-12)
	assert.False(t, s.AllowsLoops)
}

func TestAddWeight_Concurrent(t *testing.T) {
	const workers, rounds = 16, 100
	g := core.NewGraph()

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				_, _ = g.AddWeight(VertexA, VertexB, 1)
			}
		}()
	}
	wg.Wait()

	e, err := g.EdgeBetween(VertexA, VertexB)
	require.NoError(t, err)
	assert.Equal(t, float64(workers*rounds), e.Weight)
	assert.Equal(t, 1, g.EdgeCount())
}
