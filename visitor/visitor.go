// Package visitor names the optional-callback vocabulary algorithms in this
// module dispatch to: bfs.Run, dfs.Run, dijkstra.ShortestPaths and
// bellmanford.ShortestPaths each accept any value, check it with
// Dispatch's type assertion at every event site, and call only the
// methods present. A
// visitor providing none of them compiles (and runs) exactly as if no
// visitor had been passed.
//
// There is exactly one method per event, taking a VertexDesc/EdgeDesc;
// no overloading across descriptor- and id-accepting forms.
package visitor

import "github.com/stdgraph/graphkit/core"

// Vertex is the optional interface for every vertex-indexed event a
// traversal algorithm may fire. Implement only the methods you need; the
// rest are never called (checked with a local interface assertion at each
// call site, not reflection).
type Vertex[I core.Id] interface {
	OnInitializeVertex(u core.VertexDesc[I])
	OnDiscoverVertex(u core.VertexDesc[I])
	OnExamineVertex(u core.VertexDesc[I])
	OnFinishVertex(u core.VertexDesc[I])
	OnStartVertex(u core.VertexDesc[I])
}

// Initializer, Discoverer, Examiner, Finisher, Starter are the per-method
// slices of Vertex: an algorithm checks for each individually so a visitor
// implementing only OnDiscoverVertex still gets called.
type (
	Initializer[I core.Id] interface {
		OnInitializeVertex(u core.VertexDesc[I])
	}
	Discoverer[I core.Id] interface {
		OnDiscoverVertex(u core.VertexDesc[I])
	}
	Examiner[I core.Id] interface {
		OnExamineVertex(u core.VertexDesc[I])
	}
	Finisher[I core.Id] interface {
		OnFinishVertex(u core.VertexDesc[I])
	}
	Starter[I core.Id] interface {
		OnStartVertex(u core.VertexDesc[I])
	}
)

// Edge events.
type (
	EdgeExaminer[I core.Id] interface {
		OnExamineEdge(e core.EdgeDesc[I])
	}
	TreeEdger[I core.Id] interface {
		OnTreeEdge(e core.EdgeDesc[I])
	}
	BackEdger[I core.Id] interface {
		OnBackEdge(e core.EdgeDesc[I])
	}
	ForwardOrCrossEdger[I core.Id] interface {
		OnForwardOrCrossEdge(e core.EdgeDesc[I])
	}
	EdgeFinisher[I core.Id] interface {
		OnFinishEdge(e core.EdgeDesc[I])
	}
)

// Relaxation events, fired by dijkstra/bellmanford.
type (
	EdgeRelaxed[I core.Id] interface {
		OnEdgeRelaxed(e core.EdgeDesc[I])
	}
	EdgeNotRelaxed[I core.Id] interface {
		OnEdgeNotRelaxed(e core.EdgeDesc[I])
	}
	EdgeMinimized[I core.Id] interface {
		OnEdgeMinimized(e core.EdgeDesc[I])
	}
	EdgeNotMinimized[I core.Id] interface {
		OnEdgeNotMinimized(e core.EdgeDesc[I])
	}
)

// Dispatch calls fn(v) if visitor implements the interface V, and is a
// no-op otherwise. Algorithms call this once per event site so the
// dispatch cascade stays a single readable line instead of a repeated
// type-assertion idiom at every call site.
func Dispatch[V any](visitor any, fn func(V)) {
	if v, ok := visitor.(V); ok {
		fn(v)
	}
}
