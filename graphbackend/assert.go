package graphbackend

import "github.com/katalvlaran/graphfind/graph"

var _ graph.Graph[graph.NodeID, graph.EdgeID, int, int] = (*Graph[int, int])(nil)
