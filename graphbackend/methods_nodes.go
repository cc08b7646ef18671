// File: methods_nodes.go
// Role: node lifecycle.

package graphbackend

import "github.com/katalvlaran/graphfind/graph"

// AddNode inserts a new node with the given weight and returns its
// reference.
//
// Complexity: O(1).
func (g *Graph[WN, WE]) AddNode(weight WN) graph.NodeID {
	id := g.ids.NextNode()
	g.nodes[id] = weight
	g.nodeOrder = append(g.nodeOrder, id)
	g.adjOut[id] = make(map[graph.EdgeID]struct{})
	g.adjIn[id] = make(map[graph.EdgeID]struct{})

	return id
}

// HasNode reports whether id was issued by this graph and is still present.
func (g *Graph[WN, WE]) HasNode(id graph.NodeID) bool {
	_, ok := g.nodes[id]

	return ok
}
