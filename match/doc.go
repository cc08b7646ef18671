// Package match implements subgraph pattern matching: given a pattern.Graph
// and a base graph, it finds every way to embed the pattern into the base
// graph and reports each as a view over the base graph's data.
//
// The algorithm is VF2 (Cordella, Foggia, Sansone & Vento, 2004), adapted
// to enumerate all matches rather than stop at the first, and to treat some
// pattern elements as hidden: required for a match but absent from the
// reported result. State carries the bookkeeping the algorithm needs
// (the current partial correspondence, and the depth at which each
// candidate node entered the frontier); Eval drives it to completion.
//
// There is exactly one exported entry point, Eval. Everything else in this
// package exists to make that one call correct.
package match
