// Package graphbackend provides a minimal in-memory adjacency-list Graph
// implementation, generic over node and edge weight types.
//
// It is not part of the pattern-matching algorithm — match works against
// any graph.Graph and does not import this package. pattern stores its
// nodes and edges in a graphbackend.Graph, and filtermap refers to it only
// in a compile-time interface check. graphbackend also gives tests,
// examples, and godoc a concrete graph to run match.Eval against.
//
// A Graph is either globally directed or globally undirected (set at
// construction via WithDirected), optionally permits parallel edges
// (WithMultiEdges) and self-loops (WithLoops). Node and edge references are
// graph.NodeID/graph.EdgeID, assigned in insertion order.
//
// A Graph carries no mutex: callers build it single-threaded, then hand it
// to match.Eval as a read-only base graph for the duration of one search.
// There is no concurrent access to guard against.
package graphbackend
