package graphbackend_test

import (
	"testing"

	"github.com/katalvlaran/graphfind/graph"
	"github.com/katalvlaran/graphfind/graphbackend"
	"github.com/stretchr/testify/require"
)

func TestDirectedAddEdgeAndAdjacency(t *testing.T) {
	g := graphbackend.New[string, int](graphbackend.WithDirected(true))
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")

	ab, err := g.AddEdge(a, b, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, 2)
	require.NoError(t, err)

	require.Equal(t, []graph.EdgeID{ab}, g.OutgoingEdges(a))
	require.Empty(t, g.IncomingEdges(a))
	require.ElementsMatch(t, []graph.EdgeID{ab}, g.IncomingEdges(b))
	require.Len(t, g.AdjacentEdges(b), 2)

	from, to := g.AdjacentNodes(ab)
	require.Equal(t, a, from)
	require.Equal(t, b, to)
}

func TestUndirectedIncomingEqualsOutgoingEqualsAdjacent(t *testing.T) {
	g := graphbackend.New[string, int](graphbackend.WithDirected(false))
	a := g.AddNode("a")
	b := g.AddNode("b")
	ab, err := g.AddEdge(a, b, 1)
	require.NoError(t, err)

	require.ElementsMatch(t, g.IncomingEdges(a), g.OutgoingEdges(a))
	require.ElementsMatch(t, g.IncomingEdges(a), g.AdjacentEdges(a))
	require.Contains(t, g.AdjacentEdges(a), ab)
	require.Contains(t, g.AdjacentEdges(b), ab)
	require.True(t, g.HasEdge(a, b))
	require.True(t, g.HasEdge(b, a))
}

func TestLoopAndMultiEdgePolicy(t *testing.T) {
	g := graphbackend.New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")

	_, err := g.AddEdge(a, a, 0)
	require.ErrorIs(t, err, graphbackend.ErrLoopNotAllowed)

	_, err = g.AddEdge(a, b, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, 2)
	require.ErrorIs(t, err, graphbackend.ErrMultiEdgeNotAllowed)

	multi := graphbackend.New[string, int](graphbackend.WithMultiEdges(), graphbackend.WithLoops())
	m1 := multi.AddNode("a")
	_, err = multi.AddEdge(m1, m1, 9)
	require.NoError(t, err)
	_, err = multi.AddEdge(m1, m1, 10)
	require.NoError(t, err)
	require.Equal(t, 2, multi.CountEdges())
}

func TestNodeWeightPanicsOnUnknownReference(t *testing.T) {
	g := graphbackend.New[string, int]()
	require.Panics(t, func() { g.NodeWeight(graph.NodeID(999)) })
}
