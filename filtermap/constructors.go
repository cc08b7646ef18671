// File: constructors.go
// Role: the functional constructors for FilterMap, from most general to
// most convenient.

package filtermap

import "github.com/katalvlaran/graphfind/graph"

// GeneralFilterMap derives a view from base, applying nodeFn and edgeFn to
// every node and edge in turn. Each closure sees the base graph and a
// reference, and returns (weight, true) to keep the element under that
// weight, or (_, false) to drop it. An edge is dropped automatically if
// either endpoint was dropped, before edgeFn is even consulted.
func GeneralFilterMap[N, E comparable, BWN, BWE, WN, WE any, G graph.Graph[N, E, BWN, BWE]](
	base G,
	nodeFn func(G, N) (WN, bool),
	edgeFn func(G, E) (WE, bool),
) *FilterMap[N, E, BWN, BWE, WN, WE, G] {
	nodeMap := make(map[N]WN)
	for _, n := range base.Nodes() {
		if w, ok := nodeFn(base, n); ok {
			nodeMap[n] = w
		}
	}

	edgeMap := make(map[E]WE)
	for _, e := range base.Edges() {
		a, b := base.AdjacentNodes(e)
		if _, ok := nodeMap[a]; !ok {
			continue
		}
		if _, ok := nodeMap[b]; !ok {
			continue
		}
		if w, ok := edgeFn(base, e); ok {
			edgeMap[e] = w
		}
	}

	return &FilterMap[N, E, BWN, BWE, WN, WE, G]{base: base, nodeMap: nodeMap, edgeMap: edgeMap}
}

// WeightFilterMap is GeneralFilterMap for the common case where the
// transformation only needs the element's own weight, not the base graph
// structure.
func WeightFilterMap[N, E comparable, BWN, BWE, WN, WE any, G graph.Graph[N, E, BWN, BWE]](
	base G,
	nodeFn func(BWN) (WN, bool),
	edgeFn func(BWE) (WE, bool),
) *FilterMap[N, E, BWN, BWE, WN, WE, G] {
	return GeneralFilterMap[N, E, BWN, BWE, WN, WE](
		base,
		func(g G, n N) (WN, bool) { return nodeFn(g.NodeWeight(n)) },
		func(g G, e E) (WE, bool) { return edgeFn(g.EdgeWeight(e)) },
	)
}

// WeightMap transforms every weight without dropping any element.
func WeightMap[N, E comparable, BWN, BWE, WN, WE any, G graph.Graph[N, E, BWN, BWE]](
	base G,
	nodeFn func(BWN) WN,
	edgeFn func(BWE) WE,
) *FilterMap[N, E, BWN, BWE, WN, WE, G] {
	return WeightFilterMap[N, E, BWN, BWE, WN, WE](
		base,
		func(w BWN) (WN, bool) { return nodeFn(w), true },
		func(w BWE) (WE, bool) { return edgeFn(w), true },
	)
}

// WeightFilter keeps only the nodes and edges whose weight satisfies the
// given predicate, passing weights through unchanged.
func WeightFilter[N, E comparable, BWN, BWE any, G graph.Graph[N, E, BWN, BWE]](
	base G,
	nodePred func(BWN) bool,
	edgePred func(BWE) bool,
) *FilterMap[N, E, BWN, BWE, BWN, BWE, G] {
	return WeightFilterMap[N, E, BWN, BWE, BWN, BWE](
		base,
		func(w BWN) (BWN, bool) { return w, nodePred(w) },
		func(w BWE) (BWE, bool) { return w, edgePred(w) },
	)
}
