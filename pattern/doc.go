// Package pattern implements pattern graphs: specifications of the
// subgraphs a search is looking for.
//
// A pattern graph is itself a graph.Graph, but its node and edge weights
// are Elements — a predicate plus a visibility flag — rather than ordinary
// data. Building one is a two-step act per node/edge: supply a predicate
// that decides whether a candidate base-graph element matches, and decide
// whether a match should be reported in the result (visible) or merely
// required to exist (hidden).
//
// Visible edges may only connect visible nodes; connecting a hidden node
// with AddEdge is a programmer error and panics, mirroring AddHiddenEdge
// being the only way to attach an edge to a hidden endpoint.
package pattern
