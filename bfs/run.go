package bfs

import (
	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/visitor"
)

// Run is the visitor-driven BFS algorithm: it fires OnInitializeVertex for
// every vertex in the graph (in Vertices() order), then
// OnStartVertex/OnDiscoverVertex/
// OnExamineVertex/OnTreeEdge/OnFinishVertex as the walk proceeds from
// sources. A visitor may implement any subset of these; unimplemented
// events are simply never dispatched.
//
// Run always performs a full traversal (it does not expose Cancel); use
// NewVerticesBFS/NewEdgesBFS directly for cooperative cancellation.
func Run[I core.Id, G Graph[I]](g G, visitorv any, sources ...core.VertexDesc[I]) {
	visited := make(map[I]bool)

	for u := range g.Vertices() {
		visitor.Dispatch[visitor.Initializer[I]](visitorv, func(v visitor.Initializer[I]) {
			v.OnInitializeVertex(u)
		})
	}

	var queue []qitem[I]
	for _, s := range sources {
		id := core.VertexId[I](s)
		if visited[id] {
			continue
		}
		visited[id] = true
		queue = append(queue, qitem[I]{desc: s, depth: 0})
		visitor.Dispatch[visitor.Discoverer[I]](visitorv, func(v visitor.Discoverer[I]) {
			v.OnDiscoverVertex(s)
		})
		visitor.Dispatch[visitor.Starter[I]](visitorv, func(v visitor.Starter[I]) {
			v.OnStartVertex(s)
		})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		visitor.Dispatch[visitor.Examiner[I]](visitorv, func(v visitor.Examiner[I]) {
			v.OnExamineVertex(item.desc)
		})

		for e := range g.Edges(item.desc) {
			visitor.Dispatch[visitor.EdgeExaminer[I]](visitorv, func(v visitor.EdgeExaminer[I]) {
				v.OnExamineEdge(e)
			})
			tid := core.TargetId[I](g, e)
			if visited[tid] {
				continue
			}
			td, ok := core.FindVertex[I](g, tid)
			if !ok {
				continue
			}
			visited[tid] = true
			visitor.Dispatch[visitor.TreeEdger[I]](visitorv, func(v visitor.TreeEdger[I]) {
				v.OnTreeEdge(e)
			})
			visitor.Dispatch[visitor.Discoverer[I]](visitorv, func(v visitor.Discoverer[I]) {
				v.OnDiscoverVertex(td)
			})
			queue = append(queue, qitem[I]{desc: td, depth: item.depth + 1})
		}

		visitor.Dispatch[visitor.Finisher[I]](visitorv, func(v visitor.Finisher[I]) {
			v.OnFinishVertex(item.desc)
		})
	}
}
