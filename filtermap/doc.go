// Package filtermap implements FilterMap, a borrowed view over a base graph
// that restricts its node/edge sets and rewrites their weights. The view's
// node and edge maps are computed once, when it is constructed.
//
// A FilterMap is itself a graph.Graph: its reference types are the base
// graph's, membership is key presence in its node/edge maps, and weight
// lookup returns whatever the map holds rather than re-deriving it on every
// call. Constructing a FilterMap never mutates the base graph.
//
// The five constructors trade generality for convenience:
//
//   - GeneralFilterMap: node_fn/edge_fn see the base graph and a reference, and may
//     drop an element by returning false.
//   - WeightFilterMap: node_fn/edge_fn see only the base weight.
//   - WeightMap: like WeightFilterMap, but never drops an element.
//   - WeightFilter: predicates only decide membership; weights pass through
//     unchanged.
//   - New: the raw constructor. Callers who already have node_map/edge_map
//     in hand use this directly; endpoint closure (invariant 2 — every edge
//     in edge_map has both endpoints in node_map) is checked eagerly and
//     violations panic.
//
// match.Eval returns its results as FilterMap views over the pattern graph,
// which is the reason this package sits below match in the dependency
// graph rather than the other way around.
package filtermap
