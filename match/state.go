// File: state.go
// Role: State, the VF2 bookkeeping structure, and its field-level helpers.

package match

import (
	"github.com/katalvlaran/graphfind/filtermap"
	"github.com/katalvlaran/graphfind/graph"
	"github.com/katalvlaran/graphfind/pattern"
)

// State holds everything a single matching run needs. WN/WE are the base
// graph's weight types; NB/EB its reference types; B its concrete type.
type State[WN, WE any, NB, EB comparable, B graph.Graph[NB, EB, WN, WE]] struct {
	pattern *pattern.Graph[WN, WE]
	base    B

	results []*filtermap.FilterMap[graph.NodeID, graph.EdgeID, *pattern.Element[WN], *pattern.Element[WE], WN, WE, *pattern.Graph[WN, WE]]

	// core12/core21 form the current correspondence mu, pattern node <->
	// base node, kept as two maps since NB need not be ordered.
	core12 map[graph.NodeID]NB
	core21 map[NB]graph.NodeID

	// outP/outB map a node to the depth at which it entered the outgoing
	// frontier; inP/inB do the same for the incoming frontier. A node's
	// first insertion wins — see setFrontier.
	outP map[graph.NodeID]int
	outB map[NB]int
	inP  map[graph.NodeID]int
	inB  map[NB]int

	// visibleCount is the number of non-hidden pattern nodes; reaching it
	// at some depth means the current partial match already covers every
	// node the caller wants to see, and deeper matches only add hidden
	// nodes — see the early-unwind check in search.
	visibleCount int
}

// newState builds an empty State for matching p against base.
func newState[WN, WE any, NB, EB comparable, B graph.Graph[NB, EB, WN, WE]](
	p *pattern.Graph[WN, WE],
	base B,
) *State[WN, WE, NB, EB, B] {
	visible := 0
	for _, n := range p.Nodes() {
		if p.NodeWeight(n).Visible() {
			visible++
		}
	}

	return &State[WN, WE, NB, EB, B]{
		pattern:      p,
		base:         base,
		core12:       make(map[graph.NodeID]NB),
		core21:       make(map[NB]graph.NodeID),
		outP:         make(map[graph.NodeID]int),
		outB:         make(map[NB]int),
		inP:          make(map[graph.NodeID]int),
		inB:          make(map[NB]int),
		visibleCount: visible,
	}
}

// otherEndpoint returns the endpoint of e that isn't from. For a loop it
// returns from itself.
func otherEndpoint[N, E comparable, WNx, WEx any, G graph.Graph[N, E, WNx, WEx]](g G, e E, from N) N {
	a, b := g.AdjacentNodes(e)
	if a == from {
		return b
	}

	return a
}

// outgoingNodes returns, for every outgoing edge of n, the node on its
// other end.
func outgoingNodes[N, E comparable, WNx, WEx any, G graph.Graph[N, E, WNx, WEx]](g G, n N) []N {
	edges := g.OutgoingEdges(n)
	out := make([]N, len(edges))
	for i, e := range edges {
		out[i] = otherEndpoint[N, E, WNx, WEx](g, e, n)
	}

	return out
}

// incomingNodes returns, for every incoming edge of n, the node on its
// other end.
func incomingNodes[N, E comparable, WNx, WEx any, G graph.Graph[N, E, WNx, WEx]](g G, n N) []N {
	edges := g.IncomingEdges(n)
	out := make([]N, len(edges))
	for i, e := range edges {
		out[i] = otherEndpoint[N, E, WNx, WEx](g, e, n)
	}

	return out
}

// setFrontier records depth for k, unless k is already recorded — the
// first depth at which a node becomes reachable is the one that must be
// undone when backtracking past it.
func setFrontier[K comparable](m map[K]int, k K, depth int) {
	if _, ok := m[k]; !ok {
		m[k] = depth
	}
}

// clearFrontier removes k from m, but only if it was inserted at exactly
// depth — a node inserted at an earlier depth is still needed by an
// ancestor frame and must survive this unwind.
func clearFrontier[K comparable](m map[K]int, k K, depth int) {
	if d, ok := m[k]; ok && d == depth {
		delete(m, k)
	}
}

// compareNodeOrder orders pattern nodes so that visible nodes are
// considered before hidden ones, and ties broken by reference order. Used
// to pick a deterministic, set-semantics-preserving candidate at each
// search step.
func compareNodeOrder[WN, WE any](p *pattern.Graph[WN, WE], n1, n2 graph.NodeID) int {
	v1 := p.NodeWeight(n1).Visible()
	v2 := p.NodeWeight(n2).Visible()
	switch {
	case v1 && !v2:
		return -1
	case !v1 && v2:
		return 1
	case n1 < n2:
		return -1
	case n1 > n2:
		return 1
	default:
		return 0
	}
}
