// File: ids.go
// Role: stable integer reference types, recommended by the design notes as
// the simplest deterministic NodeRef/EdgeRef implementation.

package graph

import "fmt"

// NodeID is a node reference backed by a monotonically assigned integer.
// NodeID values are only meaningful relative to the IDSource (or graph)
// that produced them.
type NodeID uint64

// String renders NodeID for diagnostics and test failure messages.
func (n NodeID) String() string {
	return fmt.Sprintf("n%d", uint64(n))
}

// EdgeID is an edge reference backed by a monotonically assigned integer.
type EdgeID uint64

// String renders EdgeID for diagnostics and test failure messages.
func (e EdgeID) String() string {
	return fmt.Sprintf("e%d", uint64(e))
}

// IDSource hands out strictly increasing NodeID/EdgeID values. The zero
// value is ready to use and starts at 1, so the zero NodeID/EdgeID can be
// reserved as an "unset" sentinel by callers that want one.
type IDSource struct {
	nextNode uint64
	nextEdge uint64
}

// NextNode returns the next unused NodeID.
func (s *IDSource) NextNode() NodeID {
	s.nextNode++

	return NodeID(s.nextNode)
}

// NextEdge returns the next unused EdgeID.
func (s *IDSource) NextEdge() EdgeID {
	s.nextEdge++

	return EdgeID(s.nextEdge)
}
