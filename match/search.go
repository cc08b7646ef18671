// File: search.go
// Role: candidate selection, feasibility testing, and the recursive search.

package match

import (
	"github.com/katalvlaran/graphfind/filtermap"
	"github.com/katalvlaran/graphfind/graph"
	"github.com/katalvlaran/graphfind/pattern"
)

// findUnmatchedNeighbors picks the least (by compareNodeOrder) unmatched
// pattern node among the keys of patternFrontier, and every unmatched base
// node among the keys of baseFrontier. When findIgnored is false and the
// chosen pattern node is hidden, it is discarded (found becomes false) —
// this is what keeps hidden nodes from anchoring a result before every
// visible node has been placed.
func (s *State[WN, WE, NB, EB, B]) findUnmatchedNeighbors(
	patternFrontier map[graph.NodeID]int,
	baseFrontier map[NB]int,
	findIgnored bool,
) (graph.NodeID, bool, []NB) {
	var best graph.NodeID
	found := false
	for n := range patternFrontier {
		if _, matched := s.core12[n]; matched {
			continue
		}
		if !found || compareNodeOrder(s.pattern, n, best) < 0 {
			best = n
			found = true
		}
	}
	if found && !findIgnored && !s.pattern.NodeWeight(best).Visible() {
		found = false
	}

	candidates := make([]NB, 0, len(baseFrontier))
	for _, m := range s.base.Nodes() {
		if _, inFrontier := baseFrontier[m]; !inFrontier {
			continue
		}
		if _, matched := s.core21[m]; !matched {
			candidates = append(candidates, m)
		}
	}

	return best, found, candidates
}

// findUnmatchedUnconnectedNodes is the fallback candidate source used once
// neither frontier yields a usable pattern node: every remaining pattern
// and base node, regardless of adjacency to the current match.
func (s *State[WN, WE, NB, EB, B]) findUnmatchedUnconnectedNodes() (graph.NodeID, bool, []NB) {
	var best graph.NodeID
	found := false
	for _, n := range s.pattern.Nodes() {
		if _, matched := s.core12[n]; matched {
			continue
		}
		if !found || compareNodeOrder(s.pattern, n, best) < 0 {
			best = n
			found = true
		}
	}

	candidates := make([]NB, 0)
	for _, m := range s.base.Nodes() {
		if _, matched := s.core21[m]; !matched {
			candidates = append(candidates, m)
		}
	}

	return best, found, candidates
}

// assign extends the correspondence with n <-> m, recording depth as the
// frontier-entry depth for n, m, and their immediate neighbors that aren't
// already in a frontier.
func (s *State[WN, WE, NB, EB, B]) assign(n graph.NodeID, m NB, depth int) {
	s.core12[n] = m
	s.core21[m] = n

	setFrontier(s.outP, n, depth)
	setFrontier(s.outB, m, depth)
	setFrontier(s.inP, n, depth)
	setFrontier(s.inB, m, depth)

	for _, nOut := range outgoingNodes[graph.NodeID, graph.EdgeID](s.pattern, n) {
		setFrontier(s.outP, nOut, depth)
	}
	for _, mOut := range outgoingNodes[NB, EB](s.base, m) {
		setFrontier(s.outB, mOut, depth)
	}
	for _, nIn := range incomingNodes[graph.NodeID, graph.EdgeID](s.pattern, n) {
		setFrontier(s.inP, nIn, depth)
	}
	for _, mIn := range incomingNodes[NB, EB](s.base, m) {
		setFrontier(s.inB, mIn, depth)
	}
}

// unassign is assign's inverse.
func (s *State[WN, WE, NB, EB, B]) unassign(n graph.NodeID, m NB, depth int) {
	delete(s.core12, n)
	delete(s.core21, m)

	clearFrontier(s.outP, n, depth)
	clearFrontier(s.outB, m, depth)
	clearFrontier(s.inP, n, depth)
	clearFrontier(s.inB, m, depth)

	for _, nOut := range outgoingNodes[graph.NodeID, graph.EdgeID](s.pattern, n) {
		clearFrontier(s.outP, nOut, depth)
	}
	for _, mOut := range outgoingNodes[NB, EB](s.base, m) {
		clearFrontier(s.outB, mOut, depth)
	}
	for _, nIn := range incomingNodes[graph.NodeID, graph.EdgeID](s.pattern, n) {
		clearFrontier(s.inP, nIn, depth)
	}
	for _, mIn := range incomingNodes[NB, EB](s.base, m) {
		clearFrontier(s.inB, mIn, depth)
	}
}

// isValidMatching runs the four VF2 feasibility checks for candidate pair
// (n, m): semantic compatibility of the node itself, structural
// compatibility of already-matched predecessors and successors, and
// semantic compatibility of the edges connecting to them.
func (s *State[WN, WE, NB, EB, B]) isValidMatching(n graph.NodeID, m NB) bool {
	return s.checkNodeSemantics(n, m) &&
		s.checkPredecessorRelation(n, m) &&
		s.checkSuccessorRelation(n, m) &&
		s.checkEdgeSemantics(n, m)
}

func (s *State[WN, WE, NB, EB, B]) checkNodeSemantics(n graph.NodeID, m NB) bool {
	return s.pattern.NodeWeight(n).Matches(s.base.NodeWeight(m))
}

func (s *State[WN, WE, NB, EB, B]) checkPredecessorRelation(n graph.NodeID, m NB) bool {
	mPreds := make(map[NB]struct{})
	for _, mPred := range incomingNodes[NB, EB](s.base, m) {
		if _, matched := s.core21[mPred]; matched {
			mPreds[mPred] = struct{}{}
		}
	}

	for _, nPred := range incomingNodes[graph.NodeID, graph.EdgeID](s.pattern, n) {
		mCandidate, matched := s.core12[nPred]
		if !matched {
			continue
		}
		if _, ok := mPreds[mCandidate]; !ok {
			return false
		}
	}

	return true
}

func (s *State[WN, WE, NB, EB, B]) checkSuccessorRelation(n graph.NodeID, m NB) bool {
	mSuccs := make(map[NB]struct{})
	for _, mSucc := range outgoingNodes[NB, EB](s.base, m) {
		if _, matched := s.core21[mSucc]; matched {
			mSuccs[mSucc] = struct{}{}
		}
	}

	for _, nSucc := range outgoingNodes[graph.NodeID, graph.EdgeID](s.pattern, n) {
		mCandidate, matched := s.core12[nSucc]
		if !matched {
			continue
		}
		if _, ok := mSuccs[mCandidate]; !ok {
			return false
		}
	}

	return true
}

func (s *State[WN, WE, NB, EB, B]) checkEdgeSemantics(n graph.NodeID, m NB) bool {
	mSuccEdges := make(map[NB]EB)
	for _, e2 := range s.base.OutgoingEdges(m) {
		mSuccEdges[otherEndpoint[NB, EB](s.base, e2, m)] = e2
	}
	for _, e := range s.pattern.OutgoingEdges(n) {
		nSucc := otherEndpoint[graph.NodeID, graph.EdgeID](s.pattern, e, n)
		mSucc, matched := s.core12[nSucc]
		if !matched {
			continue
		}
		e2, ok := mSuccEdges[mSucc]
		if !ok || !s.pattern.EdgeElement(e).Matches(s.base.EdgeWeight(e2)) {
			return false
		}
	}

	mPredEdges := make(map[NB]EB)
	for _, e2 := range s.base.IncomingEdges(m) {
		mPredEdges[otherEndpoint[NB, EB](s.base, e2, m)] = e2
	}
	for _, e := range s.pattern.IncomingEdges(n) {
		nPred := otherEndpoint[graph.NodeID, graph.EdgeID](s.pattern, e, n)
		mPred, matched := s.core12[nPred]
		if !matched {
			continue
		}
		e2, ok := mPredEdges[mPred]
		if !ok || !s.pattern.EdgeElement(e).Matches(s.base.EdgeWeight(e2)) {
			return false
		}
	}

	return true
}

// produceGraph snapshots the current (complete) correspondence into a
// result view over the base graph's data, keyed by pattern references, and
// appends it to results. Hidden nodes and edges are omitted.
func (s *State[WN, WE, NB, EB, B]) produceGraph() {
	nodeMap := make(map[graph.NodeID]WN, len(s.core12))
	for n, m := range s.core12 {
		if s.pattern.NodeWeight(n).Visible() {
			nodeMap[n] = s.base.NodeWeight(m)
		}
	}

	edgeMap := make(map[graph.EdgeID]WE)
	for n, m := range s.core12 {
		mSuccEdges := make(map[NB]EB)
		for _, e2 := range s.base.OutgoingEdges(m) {
			mSuccEdges[otherEndpoint[NB, EB](s.base, e2, m)] = e2
		}
		for _, e := range s.pattern.OutgoingEdges(n) {
			if !s.pattern.EdgeElement(e).Visible() {
				continue
			}
			nSucc := otherEndpoint[graph.NodeID, graph.EdgeID](s.pattern, e, n)
			mSucc, matched := s.core12[nSucc]
			if !matched {
				continue
			}
			if e2, ok := mSuccEdges[mSucc]; ok {
				edgeMap[e] = s.base.EdgeWeight(e2)
			}
		}
	}

	s.results = append(s.results, filtermap.New[graph.NodeID, graph.EdgeID, *pattern.Element[WN], *pattern.Element[WE], WN, WE](
		s.pattern, nodeMap, edgeMap,
	))
}

// search is the recursive heart of the algorithm. depth counts how many
// pattern nodes have been assigned so far. It returns the depth the caller
// should unwind to: either depth itself (keep searching siblings), or a
// value <= the caller's own depth when a hidden-node-only tail has already
// produced every result reachable from the current visible prefix and
// further siblings at this level would only repeat it.
func (s *State[WN, WE, NB, EB, B]) search(depth int) int {
	if depth == s.pattern.CountNodes() {
		s.produceGraph()

		return s.visibleCount
	}

	findIgnored := depth >= s.visibleCount
	n, ok, candidates := s.findUnmatchedNeighbors(s.outP, s.outB, findIgnored)
	if !ok || len(candidates) == 0 {
		n, ok, candidates = s.findUnmatchedNeighbors(s.inP, s.inB, findIgnored)
	}
	if !ok || len(candidates) == 0 {
		n, ok, candidates = s.findUnmatchedUnconnectedNodes()
	}
	if !ok {
		return depth
	}

	for _, m := range candidates {
		s.assign(n, m, depth)
		if s.isValidMatching(n, m) {
			next := s.search(depth + 1)
			if next == s.visibleCount && next <= depth {
				s.unassign(n, m, depth)

				return next
			}
		}
		s.unassign(n, m, depth)
	}

	return depth
}

// runQuery checks the cheap necessary conditions for any match to exist,
// then launches the search at depth 0.
func (s *State[WN, WE, NB, EB, B]) runQuery() {
	if s.pattern.CountNodes() == 0 ||
		s.pattern.CountNodes() > s.base.CountNodes() ||
		s.pattern.CountEdges() > s.base.CountEdges() {
		return
	}
	s.search(0)
}
