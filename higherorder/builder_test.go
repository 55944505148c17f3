// SPDX-License-Identifier: MIT

package higherorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/honet/core"
	"github.com/katalvlaran/honet/higherorder"
	"github.com/katalvlaran/honet/kpath"
)

const eps = 1e-12

// edgeWeights flattens g into "from→to" → weight.
func edgeWeights(g *core.Graph) map[string]float64 {
	out := make(map[string]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		out[e.From+"→"+e.To] = e.Weight
	}

	return out
}

func TestBuild_OrderTwo(t *testing.T) {
	paths := []kpath.Path{
		{Nodes: []string{"a", "b", "c"}, Weight: 1},
		{Nodes: []string{"b", "c", "d"}, Weight: 1},
	}
	g, err := higherorder.Build(paths, 2, ",")
	require.NoError(t, err)

	assert.Equal(t, []string{"a,b", "b,c", "c,d"}, g.Vertices())
	w := edgeWeights(g)
	require.Len(t, w, 2)
	assert.InDelta(t, 1.0, w["a,b→b,c"], eps)
	assert.InDelta(t, 1.0, w["b,c→c,d"], eps)
}

func TestBuild_SumsAcrossPaths(t *testing.T) {
	paths := []kpath.Path{
		{Nodes: []string{"a", "b", "c"}, Weight: 0.25},
		{Nodes: []string{"a", "b", "c"}, Weight: 0.5},
		{Nodes: []string{"x", "b", "c"}, Weight: 1},
	}
	g, err := higherorder.Build(paths, 2, ",")
	require.NoError(t, err)

	w := edgeWeights(g)
	assert.InDelta(t, 0.75, w["a,b→b,c"], eps)
	assert.InDelta(t, 1.0, w["x,b→b,c"], eps)
	assert.Equal(t, 2, g.EdgeCount(), "no parallel edges")
	assert.Equal(t, 3, g.VertexCount())
}

func TestBuild_OrderThreeKeys(t *testing.T) {
	paths := []kpath.Path{{Nodes: []string{"a", "b", "c", "d"}, Weight: 0.5}}
	g, err := higherorder.Build(paths, 3, "|")
	require.NoError(t, err)

	assert.Equal(t, []string{"a|b|c", "b|c|d"}, g.Vertices())
	assert.True(t, g.HasEdge("a|b|c", "b|c|d"))
}

func TestBuild_Empty(t *testing.T) {
	g, err := higherorder.Build(nil, 2, ",")
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestBuild_Errors(t *testing.T) {
	_, err := higherorder.Build(nil, 1, ",")
	assert.ErrorIs(t, err, higherorder.ErrOrderTooLow)

	_, err = higherorder.Build([]kpath.Path{{Nodes: []string{"a", "b"}, Weight: 1}}, 2, ",")
	assert.ErrorIs(t, err, higherorder.ErrPathLength)

	_, err = higherorder.Build([]kpath.Path{{Nodes: []string{"a", "b", "c"}, Weight: -1}}, 2, ",")
	assert.ErrorIs(t, err, core.ErrBadWeight)
}
