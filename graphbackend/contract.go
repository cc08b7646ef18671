// File: contract.go
// Role: implements graph.Graph[graph.NodeID, graph.EdgeID, WN, WE].

package graphbackend

import "github.com/katalvlaran/graphfind/graph"

// IsDirected reports the graph's global orientation.
func (g *Graph[WN, WE]) IsDirected() bool { return g.cfg.directed }

// IsDirectedEdge reports whether e is directed. Every edge in a
// graphbackend.Graph shares the graph's global orientation; mixed
// per-edge directedness is not supported.
func (g *Graph[WN, WE]) IsDirectedEdge(e graph.EdgeID) bool {
	g.mustHaveEdge(e)

	return g.cfg.directed
}

// Nodes returns every node reference, in insertion order.
func (g *Graph[WN, WE]) Nodes() []graph.NodeID {
	out := make([]graph.NodeID, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// Edges returns every edge reference, in insertion order.
func (g *Graph[WN, WE]) Edges() []graph.EdgeID {
	out := make([]graph.EdgeID, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// NodeWeights returns the weight of every node, in the same order as Nodes.
func (g *Graph[WN, WE]) NodeWeights() []WN {
	out := make([]WN, len(g.nodeOrder))
	for i, id := range g.nodeOrder {
		out[i] = g.nodes[id]
	}

	return out
}

// EdgeWeights returns the weight of every edge, in the same order as Edges.
func (g *Graph[WN, WE]) EdgeWeights() []WE {
	out := make([]WE, len(g.edgeOrder))
	for i, id := range g.edgeOrder {
		out[i] = g.edges[id]
	}

	return out
}

// CountNodes returns the number of nodes.
func (g *Graph[WN, WE]) CountNodes() int { return len(g.nodes) }

// CountEdges returns the number of edges.
func (g *Graph[WN, WE]) CountEdges() int { return len(g.edges) }

// NodeWeight returns the weight of node n. Panics if n is unknown.
func (g *Graph[WN, WE]) NodeWeight(n graph.NodeID) WN {
	w, ok := g.nodes[n]
	if !ok {
		panic(ErrNodeNotFound.Error())
	}

	return w
}

// EdgeWeight returns the weight of edge e. Panics if e is unknown.
func (g *Graph[WN, WE]) EdgeWeight(e graph.EdgeID) WE {
	w, ok := g.edges[e]
	if !ok {
		panic(ErrEdgeNotFound.Error())
	}

	return w
}

// AdjacentEdges returns every edge touching n, deduplicated.
func (g *Graph[WN, WE]) AdjacentEdges(n graph.NodeID) []graph.EdgeID {
	g.mustHaveNode(n)

	seen := make(map[graph.EdgeID]struct{}, len(g.adjOut[n])+len(g.adjIn[n]))
	for id := range g.adjOut[n] {
		seen[id] = struct{}{}
	}
	for id := range g.adjIn[n] {
		seen[id] = struct{}{}
	}

	out := make([]graph.EdgeID, 0, len(seen))
	for _, id := range g.edgeOrder {
		if _, ok := seen[id]; ok {
			out = append(out, id)
		}
	}

	return out
}

// IncomingEdges returns every edge whose target is n. For an undirected
// graph this equals AdjacentEdges(n).
func (g *Graph[WN, WE]) IncomingEdges(n graph.NodeID) []graph.EdgeID {
	g.mustHaveNode(n)

	return g.orderedSubset(g.adjIn[n])
}

// OutgoingEdges returns every edge whose source is n. For an undirected
// graph this equals AdjacentEdges(n).
func (g *Graph[WN, WE]) OutgoingEdges(n graph.NodeID) []graph.EdgeID {
	g.mustHaveNode(n)

	return g.orderedSubset(g.adjOut[n])
}

// AdjacentNodes returns the (source, target) endpoints of e. Panics if e is
// unknown.
func (g *Graph[WN, WE]) AdjacentNodes(e graph.EdgeID) (graph.NodeID, graph.NodeID) {
	ends, ok := g.ends[e]
	if !ok {
		panic(ErrEdgeNotFound.Error())
	}

	return ends.from, ends.to
}

func (g *Graph[WN, WE]) orderedSubset(set map[graph.EdgeID]struct{}) []graph.EdgeID {
	out := make([]graph.EdgeID, 0, len(set))
	for _, id := range g.edgeOrder {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}

	return out
}

func (g *Graph[WN, WE]) mustHaveNode(n graph.NodeID) {
	if !g.HasNode(n) {
		panic(ErrNodeNotFound.Error())
	}
}

func (g *Graph[WN, WE]) mustHaveEdge(e graph.EdgeID) {
	if _, ok := g.ends[e]; !ok {
		panic(ErrEdgeNotFound.Error())
	}
}
