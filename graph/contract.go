// File: contract.go
// Role: the generic Graph interface every base graph, filter-map view, and
// pattern graph in this module satisfies.

package graph

// Graph is the capability set a backend must implement to be usable as a
// base graph for pattern matching, or to back a pattern graph itself.
//
// N and E are the graph's node and edge reference types: opaque, comparable
// handles valid only within the graph that issued them. WN and WE are the
// node and edge weight types.
type Graph[N, E comparable, WN, WE any] interface {
	// IsDirected reports whether this graph is globally directed. A graph
	// is either globally directed or globally undirected; mixed
	// orientations are not supported by this contract.
	IsDirected() bool

	// IsDirectedEdge reports whether edge e is directed. For a globally
	// directed graph this is always true; for undirected, always false.
	IsDirectedEdge(e E) bool

	// Nodes returns every node reference in the graph. The slice is
	// deterministic across calls on an unchanged graph.
	Nodes() []N

	// Edges returns every edge reference in the graph, deterministically.
	Edges() []E

	// NodeWeights returns the weight of every node, in the same order as
	// Nodes.
	NodeWeights() []WN

	// EdgeWeights returns the weight of every edge, in the same order as
	// Edges.
	EdgeWeights() []WE

	// CountNodes returns the number of nodes. Equivalent to len(Nodes())
	// but may be cheaper.
	CountNodes() int

	// CountEdges returns the number of edges. Equivalent to len(Edges())
	// but may be cheaper.
	CountEdges() int

	// NodeWeight returns the weight of node n. Panics if n was not issued
	// by this graph.
	NodeWeight(n N) WN

	// EdgeWeight returns the weight of edge e. Panics if e was not issued
	// by this graph.
	EdgeWeight(e E) WE

	// AdjacentEdges returns every edge touching n. For a directed graph
	// this is the union of incoming and outgoing edges.
	AdjacentEdges(n N) []E

	// IncomingEdges returns every edge whose target is n. For an
	// undirected graph this equals AdjacentEdges(n).
	IncomingEdges(n N) []E

	// OutgoingEdges returns every edge whose source is n. For an
	// undirected graph this equals AdjacentEdges(n).
	OutgoingEdges(n N) []E

	// AdjacentNodes returns the (source, target) endpoints of e. Panics if
	// e was not issued by this graph.
	AdjacentNodes(e E) (N, N)
}
