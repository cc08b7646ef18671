// File: eval.go
// Role: Eval, the package's sole exported entry point.

package match

import (
	"github.com/katalvlaran/graphfind/filtermap"
	"github.com/katalvlaran/graphfind/graph"
	"github.com/katalvlaran/graphfind/pattern"
)

// Eval finds every way p can be embedded into base and returns one result
// view per match. A result's node and edge sets are p's visible elements;
// their weights come from the matched base-graph elements.
//
// Eval never mutates base or p. If p has no nodes, or p needs more nodes
// or edges than base has, it returns nil without visiting base at all.
//
// Panics if p and base disagree on directedness — mixing a directed
// pattern with an undirected base graph (or vice versa) is a programmer
// error, not a result with zero matches.
func Eval[WN, WE any, NB, EB comparable, B graph.Graph[NB, EB, WN, WE]](
	p *pattern.Graph[WN, WE],
	base B,
) []*filtermap.FilterMap[graph.NodeID, graph.EdgeID, *pattern.Element[WN], *pattern.Element[WE], WN, WE, *pattern.Graph[WN, WE]] {
	if p.IsDirected() != base.IsDirected() {
		panic("match: pattern and base graph disagree on directedness")
	}

	s := newState[WN, WE, NB, EB](p, base)
	s.runQuery()

	return s.results
}
