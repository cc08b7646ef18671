// File: types.go
// Role: Graph struct, GraphOption, sentinel errors, constructor.

package graphbackend

import (
	"errors"

	"github.com/katalvlaran/graphfind/graph"
)

// Sentinel errors for graphbackend mutation.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graphbackend: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graphbackend: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are
	// disabled.
	ErrLoopNotAllowed = errors.New("graphbackend: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graphbackend: multi-edges not allowed")
)

// GraphOption configures a Graph before use.
type GraphOption func(cfg *config)

type config struct {
	directed   bool
	allowMulti bool
	allowLoops bool
}

// WithDirected sets whether edges are directed (true) or undirected
// (false). Undirected is the default.
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithMultiEdges permits parallel edges between the same two nodes.
func WithMultiEdges() GraphOption {
	return func(c *config) { c.allowMulti = true }
}

// WithLoops permits self-loop edges (From == To).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

type endpoints struct {
	from, to graph.NodeID
}

// Graph is an in-memory, adjacency-list-backed graph.Graph implementation
// generic over node weight WN and edge weight WE.
type Graph[WN, WE any] struct {
	cfg config
	ids graph.IDSource

	nodeOrder []graph.NodeID
	nodes     map[graph.NodeID]WN

	edgeOrder []graph.EdgeID
	edges     map[graph.EdgeID]WE
	ends      map[graph.EdgeID]endpoints

	// adjOut[n] holds every edge whose source is n; adjIn[n] holds every
	// edge whose target is n. For an undirected graph AddEdge mirrors each
	// edge into both endpoints' adjOut and adjIn, so adjOut[n] == adjIn[n]
	// for every node — exactly the contract's
	// "incoming_edges == outgoing_edges == adjacent_edges" rule.
	adjOut map[graph.NodeID]map[graph.EdgeID]struct{}
	adjIn  map[graph.NodeID]map[graph.EdgeID]struct{}
}

// New creates an empty Graph. By default the graph is undirected, forbids
// self-loops, and forbids parallel edges.
func New[WN, WE any](opts ...GraphOption) *Graph[WN, WE] {
	g := &Graph[WN, WE]{
		nodes:  make(map[graph.NodeID]WN),
		edges:  make(map[graph.EdgeID]WE),
		ends:   make(map[graph.EdgeID]endpoints),
		adjOut: make(map[graph.NodeID]map[graph.EdgeID]struct{}),
		adjIn:  make(map[graph.NodeID]map[graph.EdgeID]struct{}),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}
