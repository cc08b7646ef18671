// File: filtermap.go
// Role: the FilterMap type and its graph.Graph implementation.

package filtermap

import (
	"fmt"

	"github.com/katalvlaran/graphfind/graph"
)

// FilterMap is a borrowed view over a base graph G. Its node/edge sets are
// exactly the keys of nodeMap/edgeMap; its weights are whatever those maps
// hold, independent of the base graph's own weights.
//
// N and E are the base graph's reference types; BWN/BWE its weight types;
// WN/WE this view's weight types.
type FilterMap[N, E comparable, BWN, BWE, WN, WE any, G graph.Graph[N, E, BWN, BWE]] struct {
	base     G
	nodeMap  map[N]WN
	edgeMap  map[E]WE
}

// New is the raw constructor: it takes node_map and edge_map directly and
// checks endpoint closure (invariant 2 — every edge in edge_map has both
// endpoints in node_map) eagerly. Violating it is a programmer error and
// panics.
func New[N, E comparable, BWN, BWE, WN, WE any, G graph.Graph[N, E, BWN, BWE]](
	base G,
	nodeMap map[N]WN,
	edgeMap map[E]WE,
) *FilterMap[N, E, BWN, BWE, WN, WE, G] {
	for e := range edgeMap {
		a, b := base.AdjacentNodes(e)
		if _, ok := nodeMap[a]; !ok {
			panic(fmt.Sprintf("filtermap: edge %v references node %v absent from node_map", e, a))
		}
		if _, ok := nodeMap[b]; !ok {
			panic(fmt.Sprintf("filtermap: edge %v references node %v absent from node_map", e, b))
		}
	}

	return &FilterMap[N, E, BWN, BWE, WN, WE, G]{base: base, nodeMap: nodeMap, edgeMap: edgeMap}
}

// IsDirected forwards to the base graph.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) IsDirected() bool {
	return f.base.IsDirected()
}

// IsDirectedEdge forwards to the base graph. Panics if e is not in this
// view.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) IsDirectedEdge(e E) bool {
	f.mustHaveEdge(e)

	return f.base.IsDirectedEdge(e)
}

// Nodes returns the view's node set, in the base graph's enumeration order.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) Nodes() []N {
	out := make([]N, 0, len(f.nodeMap))
	for _, n := range f.base.Nodes() {
		if _, ok := f.nodeMap[n]; ok {
			out = append(out, n)
		}
	}

	return out
}

// Edges returns the view's edge set, in the base graph's enumeration order.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) Edges() []E {
	out := make([]E, 0, len(f.edgeMap))
	for _, e := range f.base.Edges() {
		if _, ok := f.edgeMap[e]; ok {
			out = append(out, e)
		}
	}

	return out
}

// NodeWeights returns the weight of every node, in the same order as Nodes.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) NodeWeights() []WN {
	nodes := f.Nodes()
	out := make([]WN, len(nodes))
	for i, n := range nodes {
		out[i] = f.nodeMap[n]
	}

	return out
}

// EdgeWeights returns the weight of every edge, in the same order as Edges.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) EdgeWeights() []WE {
	edges := f.Edges()
	out := make([]WE, len(edges))
	for i, e := range edges {
		out[i] = f.edgeMap[e]
	}

	return out
}

// CountNodes returns len(node_map).
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) CountNodes() int { return len(f.nodeMap) }

// CountEdges returns len(edge_map).
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) CountEdges() int { return len(f.edgeMap) }

// NodeWeight returns the view's weight for n. Panics if n is not in this
// view.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) NodeWeight(n N) WN {
	w, ok := f.nodeMap[n]
	if !ok {
		panic(fmt.Sprintf("filtermap: node %v not in view", n))
	}

	return w
}

// EdgeWeight returns the view's weight for e. Panics if e is not in this
// view.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) EdgeWeight(e E) WE {
	w, ok := f.edgeMap[e]
	if !ok {
		panic(fmt.Sprintf("filtermap: edge %v not in view", e))
	}

	return w
}

// AdjacentEdges forwards to the base graph and filters by edge_map
// membership. Panics if n is not in this view.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) AdjacentEdges(n N) []E {
	f.mustHaveNode(n)

	return f.filterEdges(f.base.AdjacentEdges(n))
}

// IncomingEdges forwards to the base graph and filters by edge_map
// membership. Panics if n is not in this view.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) IncomingEdges(n N) []E {
	f.mustHaveNode(n)

	return f.filterEdges(f.base.IncomingEdges(n))
}

// OutgoingEdges forwards to the base graph and filters by edge_map
// membership. Panics if n is not in this view.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) OutgoingEdges(n N) []E {
	f.mustHaveNode(n)

	return f.filterEdges(f.base.OutgoingEdges(n))
}

// AdjacentNodes forwards to the base graph and asserts both endpoints are
// present in this view — guaranteed by the endpoint-closure check every
// constructor performs, but re-asserted here as a cheap sanity check.
func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) AdjacentNodes(e E) (N, N) {
	f.mustHaveEdge(e)
	a, b := f.base.AdjacentNodes(e)
	f.mustHaveNode(a)
	f.mustHaveNode(b)

	return a, b
}

func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) filterEdges(candidates []E) []E {
	out := make([]E, 0, len(candidates))
	for _, e := range candidates {
		if _, ok := f.edgeMap[e]; ok {
			out = append(out, e)
		}
	}

	return out
}

func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) mustHaveNode(n N) {
	if _, ok := f.nodeMap[n]; !ok {
		panic(fmt.Sprintf("filtermap: node %v not in view", n))
	}
}

func (f *FilterMap[N, E, BWN, BWE, WN, WE, G]) mustHaveEdge(e E) {
	if _, ok := f.edgeMap[e]; !ok {
		panic(fmt.Sprintf("filtermap: edge %v not in view", e))
	}
}
