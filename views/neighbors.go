package views

import (
	"iter"

	"github.com/stdgraph/graphkit/core"
)

// Neighbors is like Incidence but resolves each edge's target through
// core.FindVertex, yielding core.NeighborData{Target, Desc} with Desc a
// full VertexDesc rather than an EdgeDesc. find_vertex is invoked once per
// step — O(1) for an indexed container's FindVertex override, O(V) worst
// case on the linear-scan default.
//
// A target id that core.FindVertex cannot resolve is silently skipped:
// this can only happen if the caller's container violates the edge
// endpoint validity invariant (every target_id names an existing
// vertex), which is a container bug, not a condition views needs to
// surface per-element.
func Neighbors[I core.Id, G interface {
	core.VertexRanger[I]
	core.EdgeRanger[I]
}](g G, u core.VertexDesc[I]) iter.Seq[core.NeighborData[I]] {
	return func(yield func(core.NeighborData[I]) bool) {
		for e := range g.Edges(u) {
			tid := core.TargetId[I](g, e)
			td, ok := core.FindVertex[I](g, tid)
			if !ok {
				continue
			}
			if !yield(core.NeighborData[I]{Target: tid, Desc: td}) {
				return
			}
		}
	}
}

// NeighborsFunc is Neighbors with a per-element computed value. vvf
// receives the graph and the resolved target's descriptor.
func NeighborsFunc[I core.Id, VV any, G interface {
	core.VertexRanger[I]
	core.EdgeRanger[I]
}](g G, u core.VertexDesc[I], vvf func(G, core.VertexDesc[I]) VV) iter.Seq[core.NeighborDataV[I, VV]] {
	return func(yield func(core.NeighborDataV[I, VV]) bool) {
		for e := range g.Edges(u) {
			tid := core.TargetId[I](g, e)
			td, ok := core.FindVertex[I](g, tid)
			if !ok {
				continue
			}
			rec := core.NeighborDataV[I, VV]{Target: tid, Desc: td, Value: vvf(g, td)}
			if !yield(rec) {
				return
			}
		}
	}
}

// InNeighbors is Neighbors over u's incoming edges.
func InNeighbors[I core.Id, G interface {
	core.VertexRanger[I]
	core.InEdgeRanger[I]
}](g G, u core.VertexDesc[I]) iter.Seq[core.NeighborData[I]] {
	return func(yield func(core.NeighborData[I]) bool) {
		for e := range g.InEdges(u) {
			sid := core.SourceId[I](g, e)
			sd, ok := core.FindVertex[I](g, sid)
			if !ok {
				continue
			}
			if !yield(core.NeighborData[I]{Target: sid, Desc: sd}) {
				return
			}
		}
	}
}
