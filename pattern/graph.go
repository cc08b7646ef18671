// File: graph.go
// Role: Graph, the builder and storage for a pattern.

package pattern

import (
	"fmt"

	"github.com/katalvlaran/graphfind/graph"
	"github.com/katalvlaran/graphfind/graphbackend"
)

// Graph is a pattern: a specification of the subgraphs a search looks for,
// expressed as predicates over a base graph's node and edge weights.
//
// WN and WE are the weight types of the base graphs this pattern can be
// evaluated against. A Graph is always directed, so it can only be matched
// against a directed base graph: match.Eval panics when given an
// undirected one.
type Graph[WN, WE any] struct {
	backend *graphbackend.Graph[*Element[WN], *Element[WE]]
}

// New creates an empty pattern.
func New[WN, WE any]() *Graph[WN, WE] {
	return &Graph[WN, WE]{
		backend: graphbackend.New[*Element[WN], *Element[WE]](
			graphbackend.WithDirected(true),
			graphbackend.WithMultiEdges(),
			graphbackend.WithLoops(),
		),
	}
}

// AddNode adds a node that must be matched for a search to succeed and
// that appears in the result graph.
func (g *Graph[WN, WE]) AddNode(condition func(WN) bool) graph.NodeID {
	return g.backend.AddNode(newElement(condition, true))
}

// AddHiddenNode adds a node that must be matched for a search to succeed
// but that does not appear in the result graph.
func (g *Graph[WN, WE]) AddHiddenNode(condition func(WN) bool) graph.NodeID {
	return g.backend.AddNode(newElement(condition, false))
}

// AddEdge adds an edge that appears in the result graph. Panics if either
// endpoint is a hidden node — hidden endpoints may only be reached through
// AddHiddenEdge.
func (g *Graph[WN, WE]) AddEdge(from, to graph.NodeID, condition func(WE) bool) graph.EdgeID {
	g.requireVisible(from)
	g.requireVisible(to)

	id, err := g.backend.AddEdge(from, to, newElement(condition, true))
	if err != nil {
		panic(err)
	}

	return id
}

// AddHiddenEdge adds an edge that must be matched for a search to succeed
// but that does not appear in the result graph. Unlike AddEdge, either
// endpoint may be hidden.
func (g *Graph[WN, WE]) AddHiddenEdge(from, to graph.NodeID, condition func(WE) bool) graph.EdgeID {
	id, err := g.backend.AddEdge(from, to, newElement(condition, false))
	if err != nil {
		panic(err)
	}

	return id
}

func (g *Graph[WN, WE]) requireVisible(n graph.NodeID) {
	if !g.backend.NodeWeight(n).Visible() {
		panic(fmt.Sprintf("pattern: node %v is hidden, use AddHiddenEdge", n))
	}
}

// Element returns the pattern element stored at n, for callers that need
// to inspect visibility or test a candidate directly.
func (g *Graph[WN, WE]) Element(n graph.NodeID) *Element[WN] { return g.backend.NodeWeight(n) }

// EdgeElement returns the pattern element stored at e.
func (g *Graph[WN, WE]) EdgeElement(e graph.EdgeID) *Element[WE] { return g.backend.EdgeWeight(e) }

// IsDirected always reports true: pattern graphs are directed regardless
// of the base graph they are matched against.
func (g *Graph[WN, WE]) IsDirected() bool { return g.backend.IsDirected() }

// IsDirectedEdge forwards to the backend.
func (g *Graph[WN, WE]) IsDirectedEdge(e graph.EdgeID) bool { return g.backend.IsDirectedEdge(e) }

// Nodes forwards to the backend.
func (g *Graph[WN, WE]) Nodes() []graph.NodeID { return g.backend.Nodes() }

// Edges forwards to the backend.
func (g *Graph[WN, WE]) Edges() []graph.EdgeID { return g.backend.Edges() }

// NodeWeights forwards to the backend.
func (g *Graph[WN, WE]) NodeWeights() []*Element[WN] { return g.backend.NodeWeights() }

// EdgeWeights forwards to the backend.
func (g *Graph[WN, WE]) EdgeWeights() []*Element[WE] { return g.backend.EdgeWeights() }

// CountNodes forwards to the backend.
func (g *Graph[WN, WE]) CountNodes() int { return g.backend.CountNodes() }

// CountEdges forwards to the backend.
func (g *Graph[WN, WE]) CountEdges() int { return g.backend.CountEdges() }

// NodeWeight forwards to the backend.
func (g *Graph[WN, WE]) NodeWeight(n graph.NodeID) *Element[WN] { return g.backend.NodeWeight(n) }

// EdgeWeight forwards to the backend.
func (g *Graph[WN, WE]) EdgeWeight(e graph.EdgeID) *Element[WE] { return g.backend.EdgeWeight(e) }

// AdjacentEdges forwards to the backend.
func (g *Graph[WN, WE]) AdjacentEdges(n graph.NodeID) []graph.EdgeID {
	return g.backend.AdjacentEdges(n)
}

// IncomingEdges forwards to the backend.
func (g *Graph[WN, WE]) IncomingEdges(n graph.NodeID) []graph.EdgeID {
	return g.backend.IncomingEdges(n)
}

// OutgoingEdges forwards to the backend.
func (g *Graph[WN, WE]) OutgoingEdges(n graph.NodeID) []graph.EdgeID {
	return g.backend.OutgoingEdges(n)
}

// AdjacentNodes forwards to the backend.
func (g *Graph[WN, WE]) AdjacentNodes(e graph.EdgeID) (graph.NodeID, graph.NodeID) {
	return g.backend.AdjacentNodes(e)
}
