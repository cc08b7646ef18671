package pattern

import "github.com/katalvlaran/graphfind/graph"

var _ graph.Graph[graph.NodeID, graph.EdgeID, *Element[int], *Element[int]] = (*Graph[int, int])(nil)
