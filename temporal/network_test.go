// SPDX-License-Identifier: MIT

package temporal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/honet/temporal"
)

func TestNetwork_TimestampsSortedAndDistinct(t *testing.T) {
	n := temporal.NewNetwork()
	require.NoError(t, n.AddEdge("c", "d", 3))
	require.NoError(t, n.AddEdge("a", "b", 1))
	require.NoError(t, n.AddEdge("b", "c", 2))
	require.NoError(t, n.AddEdge("b", "a", 1))

	assert.Equal(t, []int64{1, 2, 3}, n.Timestamps())
	assert.Equal(t, 4, n.EdgeCount())
	assert.Equal(t, []string{"a", "b", "c", "d"}, n.Nodes())
	assert.Equal(t, int64(3), n.ObservationSpan())
}

func TestNetwork_EdgeLookups(t *testing.T) {
	n := temporal.NewNetwork()
	require.NoError(t, n.AddEdge("a", "b", 5))
	require.NoError(t, n.AddEdge("a", "c", 5))
	require.NoError(t, n.AddEdge("b", "c", 5))

	assert.Len(t, n.EdgesAt(5), 3)
	assert.Equal(t, []temporal.Edge{
		{Source: "a", Target: "b", Time: 5},
		{Source: "a", Target: "c", Time: 5},
	}, n.OutEdgesAt(5, "a"))
	assert.Empty(t, n.OutEdgesAt(5, "c"))
	assert.Empty(t, n.EdgesAt(6))
	assert.Empty(t, n.OutEdgesAt(6, "a"))
}

func TestNetwork_Rejections(t *testing.T) {
	n := temporal.NewNetwork()
	assert.ErrorIs(t, n.AddEdge("", "b", 1), temporal.ErrEmptyNodeID)
	assert.ErrorIs(t, n.AddEdge("a,x", "b", 1), temporal.ErrSeparatorInNodeID)

	custom := temporal.NewNetwork(temporal.WithSeparator("|"))
	assert.Equal(t, "|", custom.Separator())
	assert.NoError(t, custom.AddEdge("a,x", "b", 1))
	assert.ErrorIs(t, custom.AddEdge("a|x", "b", 1), temporal.ErrSeparatorInNodeID)

	assert.Equal(t, temporal.DefaultSeparator, temporal.NewNetwork(temporal.WithSeparator("")).Separator())
}

func TestNetwork_SelfLoopsStored(t *testing.T) {
	n := temporal.NewNetwork()
	require.NoError(t, n.AddEdge("a", "a", 1))
	edges := n.EdgesAt(1)
	require.Len(t, edges, 1)
	assert.True(t, edges[0].IsLoop())
}

func TestSpan_Empty(t *testing.T) {
	assert.Equal(t, int64(0), temporal.Span(temporal.NewNetwork()))
}

func TestReadEdgeList_NoHeader(t *testing.T) {
	in := `
# fixture
a b 1
b c 2

c d 3
`
	n, err := temporal.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, n.Timestamps())
	assert.Equal(t, 3, n.EdgeCount())
}

func TestReadEdgeList_HeaderAnyOrder(t *testing.T) {
	in := "time;node2;node1\n10;b;a\n11;c;b\n"
	n, err := temporal.ReadEdgeList(strings.NewReader(in), temporal.WithDelimiter(";"))
	require.NoError(t, err)
	assert.Equal(t, []temporal.Edge{{Source: "a", Target: "b", Time: 10}}, n.EdgesAt(10))
	assert.Equal(t, []temporal.Edge{{Source: "b", Target: "c", Time: 11}}, n.EdgesAt(11))
}

func TestReadEdgeList_ForwardsSeparator(t *testing.T) {
	n, err := temporal.ReadEdgeList(strings.NewReader("a,1 b,2 7\n"),
		temporal.WithNetworkOptions(temporal.WithSeparator("|")))
	require.NoError(t, err)
	assert.Equal(t, "|", n.Separator())
	assert.Equal(t, []string{"a,1", "b,2"}, n.Nodes())
}

func TestReadEdgeList_BadRecords(t *testing.T) {
	cases := map[string]string{
		"short":      "a b\n",
		"bad time":   "a b 1\nb c x\n",
		"bad header": "foo bar baz\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := temporal.ReadEdgeList(strings.NewReader(in))
			assert.ErrorIs(t, err, temporal.ErrBadRecord)
		})
	}
}

func TestReadEdgeList_LineNumberInError(t *testing.T) {
	_, err := temporal.ReadEdgeList(strings.NewReader("a b 1\n\na b nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
