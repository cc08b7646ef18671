package filtermap

import (
	"github.com/katalvlaran/graphfind/graph"
	"github.com/katalvlaran/graphfind/graphbackend"
)

var _ graph.Graph[graph.NodeID, graph.EdgeID, int, int] = (*FilterMap[
	graph.NodeID, graph.EdgeID, int, int, int, int, *graphbackend.Graph[int, int],
])(nil)
