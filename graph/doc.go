// Package graph defines the abstract contract that every graph in this
// module satisfies: base graphs supplied by callers, filter-map views, and
// pattern graphs alike.
//
// The contract is deliberately small. It exposes directedness, global
// enumeration of nodes/edges and their weights, weight lookup, and
// adjacency. Nothing in this package knows how a graph is stored; it only
// describes what can be asked of one.
//
// Reference types (the type parameters N and E) must be comparable, and a
// graph's own operations must return them deterministically across calls on
// an unchanged graph — beyond that, this package imposes no ordering.
// graphbackend and pattern both choose NodeID/EdgeID, the integer reference
// types defined here, but a caller's own backend is free to use any
// comparable type (string IDs, pointers, whatever already identifies a node
// in their storage).
//
// Invalid-reference access (a NodeID/EdgeID not produced by the graph it is
// passed to) is a programmer error: implementations panic rather than
// return an error, matching the rest of this module's error-handling
// convention for preconditions a caller controls.
package graph
