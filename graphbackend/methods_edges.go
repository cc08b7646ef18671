// File: methods_edges.go
// Role: edge lifecycle.
//
// AddEdge enforces the two construction-time invariants a mutable builder
// needs to validate deterministically: loop policy and multi-edge policy.
// Both are recoverable errors, unlike the programmer-error panics in
// pattern and match — misusing a builder is an ordinary, expected failure
// mode, not a precondition violation.

package graphbackend

import "github.com/katalvlaran/graphfind/graph"

// AddEdge creates an edge from -> to with the given weight and returns its
// reference. Directedness is the graph's global setting: there is no
// per-edge override, every edge in a Graph shares the same orientation.
//
// Returns ErrNodeNotFound if either endpoint is unknown, ErrLoopNotAllowed
// if from == to and loops are disabled, or ErrMultiEdgeNotAllowed if an
// edge between from and to already exists and multi-edges are disabled.
//
// Complexity: O(1) amortized when multi-edges are allowed; otherwise the
// parallel-edge check scans the edges already attached to the endpoints.
func (g *Graph[WN, WE]) AddEdge(from, to graph.NodeID, weight WE) (graph.EdgeID, error) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return 0, ErrNodeNotFound
	}
	if from == to && !g.cfg.allowLoops {
		return 0, ErrLoopNotAllowed
	}
	if !g.cfg.allowMulti && g.hasEdgeBetween(from, to) {
		return 0, ErrMultiEdgeNotAllowed
	}

	id := g.ids.NextEdge()
	g.edges[id] = weight
	g.ends[id] = endpoints{from: from, to: to}
	g.edgeOrder = append(g.edgeOrder, id)

	g.adjOut[from][id] = struct{}{}
	g.adjIn[to][id] = struct{}{}
	if !g.cfg.directed {
		g.adjOut[to][id] = struct{}{}
		g.adjIn[from][id] = struct{}{}
	}

	return id, nil
}

// HasEdge reports whether any edge from -> to exists. For an undirected
// graph this is symmetric: HasEdge(a,b) == HasEdge(b,a).
func (g *Graph[WN, WE]) HasEdge(from, to graph.NodeID) bool {
	return g.hasEdgeBetween(from, to)
}

func (g *Graph[WN, WE]) hasEdgeBetween(from, to graph.NodeID) bool {
	for id := range g.adjOut[from] {
		if g.ends[id].to == to {
			return true
		}
	}
	if !g.cfg.directed {
		for id := range g.adjOut[to] {
			if g.ends[id].to == from {
				return true
			}
		}
	}

	return false
}
