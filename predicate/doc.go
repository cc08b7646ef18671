// Package predicate provides small combinators for building the condition
// functions pattern.Graph's AddNode/AddEdge family take.
//
// Go has no pattern-matching syntax to borrow a macro from, so these
// combinators lean on ordinary closures and generics instead: All and Any
// combine predicates, Not inverts one, Field adapts a predicate on some
// projection of a weight to the weight itself, and Equal/In cover the
// common case of testing against one or several comparable values.
package predicate
