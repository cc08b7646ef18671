package match_test

import (
	"testing"

	"github.com/katalvlaran/graphfind/graph"
	"github.com/katalvlaran/graphfind/graphbackend"
	"github.com/katalvlaran/graphfind/match"
	"github.com/katalvlaran/graphfind/pattern"
	"github.com/stretchr/testify/require"
)

func nineNodeGraph() *graphbackend.Graph[string, string] {
	g := graphbackend.New[string, string](graphbackend.WithDirected(true))
	for _, w := range []string{"stefan", "yves", "fabian", "jurassic-park", "holiday-special", "killer-macros", "fight-club", "bechdel-test", "uke-group"} {
		g.AddNode(w)
	}

	return g
}

func TestEmptyPatternYieldsNoResults(t *testing.T) {
	base := nineNodeGraph()
	p := pattern.New[string, string]()

	results := match.Eval[string, string](p, base)
	require.Empty(t, results)
}

func TestSingleNodeAnyPatternMatchesEveryNode(t *testing.T) {
	base := nineNodeGraph()
	p := pattern.New[string, string]()
	n := p.AddNode(func(string) bool { return true })

	results := match.Eval[string, string](p, base)
	require.Len(t, results, 9)
	for _, r := range results {
		require.Equal(t, 1, r.CountNodes())
		require.Contains(t, r.Nodes(), n)
	}
}

func TestPatternLargerThanBaseYieldsNoResults(t *testing.T) {
	base := graphbackend.New[int, string](graphbackend.WithDirected(true), graphbackend.WithLoops())
	idx := base.AddNode(4)
	_, err := base.AddEdge(idx, idx, "equals")
	require.NoError(t, err)

	p := pattern.New[int, string]()
	p.AddNode(func(i int) bool { return i > 0 })
	p.AddNode(func(i int) bool { return i > 0 })

	results := match.Eval[int, string](p, base)
	require.Empty(t, results)
}

func TestSecondNodeNeverSatisfiableYieldsNoResults(t *testing.T) {
	base := graphbackend.New[int, string](graphbackend.WithDirected(true))
	base.AddNode(1)
	base.AddNode(2)

	p := pattern.New[int, string]()
	p.AddNode(func(i int) bool { return i > 0 })
	p.AddNode(func(i int) bool { return i == 999 })

	results := match.Eval[int, string](p, base)
	require.Empty(t, results)
}

func TestDiamondSingleEdgeMatchesEveryEdge(t *testing.T) {
	base := graphbackend.New[int, int](graphbackend.WithDirected(true))
	n0 := base.AddNode(0)
	n1 := base.AddNode(1)
	n2 := base.AddNode(2)
	n3 := base.AddNode(3)
	mustAddEdge(t, base, n0, n1, 0)
	mustAddEdge(t, base, n0, n2, 1)
	mustAddEdge(t, base, n1, n3, 2)
	mustAddEdge(t, base, n2, n3, 3)

	p := pattern.New[int, int]()
	pn1 := p.AddNode(func(int) bool { return true })
	pn2 := p.AddNode(func(int) bool { return true })
	pe := p.AddEdge(pn1, pn2, func(int) bool { return true })

	results := match.Eval[int, int](p, base)
	require.Len(t, results, 4)
	for _, r := range results {
		require.Len(t, r.Edges(), 1)
		a, b := r.AdjacentNodes(pe)
		require.Equal(t, pn1, a)
		require.Equal(t, pn2, b)
	}
}

func mustAddEdge[WN, WE any](t *testing.T, g *graphbackend.Graph[WN, WE], from, to graph.NodeID, w WE) graph.EdgeID {
	t.Helper()
	id, err := g.AddEdge(from, to, w)
	require.NoError(t, err)

	return id
}

func TestThreeStarInSixStarFindsAllPermutations(t *testing.T) {
	base := graphbackend.New[int, int](graphbackend.WithDirected(true))
	center := base.AddNode(0)
	leaves := make([]graph.NodeID, 6)
	for i := 0; i < 6; i++ {
		leaves[i] = base.AddNode(i + 1)
		mustAddEdge(t, base, center, leaves[i], i+1)
	}

	p := pattern.New[int, int]()
	pCenter := p.AddNode(func(int) bool { return true })
	pLeaf1 := p.AddNode(func(int) bool { return true })
	pLeaf2 := p.AddNode(func(int) bool { return true })
	pLeaf3 := p.AddNode(func(int) bool { return true })
	e1 := p.AddEdge(pCenter, pLeaf1, func(int) bool { return true })
	e2 := p.AddEdge(pCenter, pLeaf2, func(int) bool { return true })
	e3 := p.AddEdge(pCenter, pLeaf3, func(int) bool { return true })

	results := match.Eval[int, int](p, base)
	require.Len(t, results, 120) // 6!/3!

	for _, r := range results {
		require.Equal(t, 4, r.CountNodes())
		require.Equal(t, 3, r.CountEdges())
		require.Equal(t, 0, r.NodeWeight(pCenter))
		require.Equal(t, e1, r.IncomingEdges(pLeaf1)[0])
		require.Equal(t, e2, r.IncomingEdges(pLeaf2)[0])
		require.Equal(t, e3, r.IncomingEdges(pLeaf3)[0])
	}
}

func TestEvenWeightEdgeFiltersHalfTheStar(t *testing.T) {
	base := graphbackend.New[int, int](graphbackend.WithDirected(true))
	center := base.AddNode(0)
	for i := 1; i <= 6; i++ {
		leaf := base.AddNode(i)
		mustAddEdge(t, base, center, leaf, i)
	}

	p := pattern.New[int, int]()
	pCenter := p.AddNode(func(int) bool { return true })
	pLeaf := p.AddNode(func(int) bool { return true })
	p.AddEdge(pCenter, pLeaf, func(w int) bool { return w%2 == 0 })

	results := match.Eval[int, int](p, base)
	require.Len(t, results, 3)
}

func TestHiddenNodeRequiredButNotReported(t *testing.T) {
	base := graphbackend.New[string, int](graphbackend.WithDirected(true))
	a := base.AddNode("a")
	b := base.AddNode("b")
	c := base.AddNode("c")
	mustAddEdge(t, base, a, b, 1)
	mustAddEdge(t, base, b, c, 1)

	p := pattern.New[string, int]()
	pa := p.AddNode(func(w string) bool { return w == "a" })
	hidden := p.AddHiddenNode(func(w string) bool { return w == "b" })
	p.AddHiddenEdge(pa, hidden, func(int) bool { return true })

	results := match.Eval[string, int](p, base)
	require.Len(t, results, 1)
	require.Equal(t, []graph.NodeID{pa}, results[0].Nodes())
	require.Empty(t, results[0].Edges())
}

func TestHiddenNodeAbsentYieldsNoResults(t *testing.T) {
	base := graphbackend.New[string, int](graphbackend.WithDirected(true))
	base.AddNode("a")

	p := pattern.New[string, int]()
	pa := p.AddNode(func(w string) bool { return w == "a" })
	hidden := p.AddHiddenNode(func(w string) bool { return w == "does-not-exist" })
	p.AddHiddenEdge(pa, hidden, func(int) bool { return true })

	results := match.Eval[string, int](p, base)
	require.Empty(t, results)
}

func TestSelfLoopSizeMismatchIsInfeasible(t *testing.T) {
	base := graphbackend.New[int, string](graphbackend.WithDirected(true), graphbackend.WithLoops())
	idx := base.AddNode(1)
	mustAddEdge(t, base, idx, idx, "loop")

	p := pattern.New[int, string]()
	a := p.AddNode(func(int) bool { return true })
	b := p.AddNode(func(int) bool { return true })
	p.AddEdge(a, b, func(string) bool { return true })

	results := match.Eval[int, string](p, base)
	require.Empty(t, results)
}

func TestHiddenNodeWithMultipleCandidatesReportsOneResult(t *testing.T) {
	base := graphbackend.New[string, int](graphbackend.WithDirected(true))
	a := base.AddNode("a")
	for _, leaf := range []string{"x", "y", "z"} {
		leafID := base.AddNode(leaf)
		mustAddEdge(t, base, a, leafID, 1)
	}

	p := pattern.New[string, int]()
	pa := p.AddNode(func(w string) bool { return w == "a" })
	hidden := p.AddHiddenNode(func(string) bool { return true })
	p.AddHiddenEdge(pa, hidden, func(int) bool { return true })

	results := match.Eval[string, int](p, base)
	require.Len(t, results, 1)
	require.Equal(t, []graph.NodeID{pa}, results[0].Nodes())
}

func TestMismatchedDirectednessPanics(t *testing.T) {
	base := graphbackend.New[int, int](graphbackend.WithDirected(false))
	p := pattern.New[int, int]()

	require.Panics(t, func() { match.Eval[int, int](p, base) })
}
