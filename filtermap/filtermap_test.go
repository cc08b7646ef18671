package filtermap_test

import (
	"testing"

	"github.com/katalvlaran/graphfind/filtermap"
	"github.com/katalvlaran/graphfind/graph"
	"github.com/katalvlaran/graphfind/graphbackend"
	"github.com/stretchr/testify/require"
)

func buildBase(t *testing.T) (*graphbackend.Graph[string, int], graph.NodeID, graph.NodeID, graph.NodeID, graph.EdgeID, graph.EdgeID) {
	t.Helper()
	base := graphbackend.New[string, int](graphbackend.WithDirected(true))
	a := base.AddNode("a")
	b := base.AddNode("b")
	c := base.AddNode("c")
	ab, err := base.AddEdge(a, b, 1)
	require.NoError(t, err)
	bc, err := base.AddEdge(b, c, 2)
	require.NoError(t, err)

	return base, a, b, c, ab, bc
}

func TestWeightFilterDropsNodeAndIncidentEdges(t *testing.T) {
	base, a, b, c, _, _ := buildBase(t)

	view := filtermap.WeightFilter[graph.NodeID, graph.EdgeID, string, int](
		base,
		func(w string) bool { return w != "b" },
		func(w int) bool { return true },
	)

	require.ElementsMatch(t, []graph.NodeID{a, c}, view.Nodes())
	require.Empty(t, view.Edges())
	require.Equal(t, 2, view.CountNodes())
	require.Equal(t, 0, view.CountEdges())
}

func TestWeightMapTransformsWithoutDropping(t *testing.T) {
	base, a, b, c, ab, bc := buildBase(t)

	view := filtermap.WeightMap[graph.NodeID, graph.EdgeID, string, int, string, int](
		base,
		func(w string) string { return w + "!" },
		func(w int) int { return w * 10 },
	)

	require.ElementsMatch(t, []graph.NodeID{a, b, c}, view.Nodes())
	require.ElementsMatch(t, []graph.EdgeID{ab, bc}, view.Edges())
	require.Equal(t, "a!", view.NodeWeight(a))
	require.Equal(t, 10, view.EdgeWeight(ab))
}

func TestGeneralFilterMapSeesBaseStructure(t *testing.T) {
	base, a, b, _, ab, _ := buildBase(t)

	view := filtermap.GeneralFilterMap[graph.NodeID, graph.EdgeID, string, int, int, int](
		base,
		func(g *graphbackend.Graph[string, int], n graph.NodeID) (int, bool) {
			return len(g.OutgoingEdges(n)), g.NodeWeight(n) != "c"
		},
		func(g *graphbackend.Graph[string, int], e graph.EdgeID) (int, bool) { return 0, true },
	)

	require.Equal(t, 1, view.NodeWeight(a))
	require.Equal(t, 1, view.NodeWeight(b))
	require.ElementsMatch(t, []graph.EdgeID{ab}, view.Edges())
}

func TestNewPanicsOnDanglingEdge(t *testing.T) {
	base, a, b, _, ab, _ := buildBase(t)

	require.Panics(t, func() {
		filtermap.New[graph.NodeID, graph.EdgeID, string, int, string, int](
			base,
			map[graph.NodeID]string{a: "a"},
			map[graph.EdgeID]int{ab: 1},
		)
	})

	require.NotPanics(t, func() {
		filtermap.New[graph.NodeID, graph.EdgeID, string, int, string, int](
			base,
			map[graph.NodeID]string{a: "a", b: "b"},
			map[graph.EdgeID]int{ab: 1},
		)
	})
}

func TestViewPanicsOnOutOfViewReference(t *testing.T) {
	base, a, b, c, _, _ := buildBase(t)

	view := filtermap.WeightFilter[graph.NodeID, graph.EdgeID, string, int](
		base,
		func(w string) bool { return w != "b" },
		func(w int) bool { return true },
	)

	require.NotPanics(t, func() { view.AdjacentEdges(a) })
	require.NotPanics(t, func() { view.AdjacentEdges(c) })
	require.Panics(t, func() { view.AdjacentEdges(b) })
}
