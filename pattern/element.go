// File: element.go
// Role: Element, the weight type stored at every pattern node and edge.

package pattern

// Element is the weight a pattern graph stores at each of its nodes and
// edges. It never holds base-graph data itself — it holds a predicate over
// that data, plus whether a match should surface in the result.
type Element[W any] struct {
	predicate func(W) bool
	visible   bool
}

// newElement builds an Element from a predicate and a visibility flag.
func newElement[W any](predicate func(W) bool, visible bool) *Element[W] {
	return &Element[W]{predicate: predicate, visible: visible}
}

// Visible reports whether a match of this element should appear in the
// result graph. Hidden elements are still required to exist for a match to
// succeed; they simply don't surface in it.
func (e *Element[W]) Visible() bool { return e.visible }

// Matches tests whether w satisfies this element's predicate.
func (e *Element[W]) Matches(w W) bool { return e.predicate(w) }
