// SPDX-License-Identifier: MIT

package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/honet/converters"
	"github.com/katalvlaran/honet/core"
	"github.com/katalvlaran/honet/higherorder"
	"github.com/katalvlaran/honet/temporal"
)

// secondOrder builds the order-2 network of a small branching stream.
func secondOrder(t *testing.T) *core.Graph {
	t.Helper()
	s := temporal.NewNetwork()
	require.NoError(t, s.AddEdge("a", "b", 1))
	require.NoError(t, s.AddEdge("b", "c", 2))
	require.NoError(t, s.AddEdge("b", "d", 2))
	require.NoError(t, s.AddEdge("c", "a", 3))

	n, err := higherorder.New(s, 2)
	require.NoError(t, err)
	g, err := n.Graph()
	require.NoError(t, err)

	return g
}

func TestToGonum_PreservesNamesAndWeights(t *testing.T) {
	g := secondOrder(t)
	wg, ix, err := converters.ToGonum(g)
	require.NoError(t, err)

	assert.Equal(t, g.VertexCount(), wg.Nodes().Len())
	assert.Equal(t, g.VertexCount(), ix.Len())

	for _, e := range g.Edges() {
		u, ok := ix.ID(e.From)
		require.True(t, ok)
		v, ok := ix.ID(e.To)
		require.True(t, ok)
		w, ok := wg.Weight(u, v)
		require.True(t, ok, "missing %s → %s", e.From, e.To)
		assert.InDelta(t, e.Weight, w, 1e-12)

		name, ok := ix.Name(u)
		require.True(t, ok)
		assert.Equal(t, e.From, name)
	}
}

func TestGonum_RoundTrip(t *testing.T) {
	g := secondOrder(t)
	wg, ix, err := converters.ToGonum(g)
	require.NoError(t, err)

	back, err := converters.FromGonum(wg, ix)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
	for _, e := range g.Edges() {
		got, err := back.EdgeBetween(e.From, e.To)
		require.NoError(t, err)
		assert.InDelta(t, e.Weight, got.Weight, 1e-12)
	}
}

func TestAdjacencyMatrix(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddWeight("a,b", "b,c", 0.5)
	_, _ = g.AddWeight("b,c", "c,a", 1)

	m, ix, err := converters.AdjacencyMatrix(g)
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)

	ab, _ := ix.ID("a,b")
	bc, _ := ix.ID("b,c")
	ca, _ := ix.ID("c,a")
	assert.Equal(t, 0.5, m.At(int(ab), int(bc)))
	assert.Equal(t, 1.0, m.At(int(bc), int(ca)))
	assert.Equal(t, 0.0, m.At(int(ca), int(ab)))

	empty, eix, err := converters.AdjacencyMatrix(core.NewGraph())
	require.NoError(t, err)
	assert.Nil(t, empty)
	assert.Zero(t, eix.Len())
}

func TestConverters_NilInputs(t *testing.T) {
	_, _, err := converters.ToGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
	_, _, err = converters.AdjacencyMatrix(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
	_, err = converters.FromGonum(nil, converters.NewNodeIndex(nil))
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	wg, _, err := converters.ToGonum(core.NewGraph())
	require.NoError(t, err)
	_, err = converters.FromGonum(wg, nil)
	assert.ErrorIs(t, err, converters.ErrNilIndex)
}

func TestFromGonum_UnknownNode(t *testing.T) {
	g := secondOrder(t)
	wg, _, err := converters.ToGonum(g)
	require.NoError(t, err)

	_, err = converters.FromGonum(wg, converters.NewNodeIndex([]string{"only"}))
	assert.ErrorIs(t, err, converters.ErrUnknownNode)
}
