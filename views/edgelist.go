package views

import (
	"iter"

	"github.com/stdgraph/graphkit/core"
)

// EdgeList flattens the two-level vertex/edge structure: it walks
// Vertices() in order and, for each, walks its outgoing Edges(), yielding
// core.SourcedEdgeData{Source, Target, Desc}. Vertices with no outgoing
// edges are skipped transparently — the cost of skipping leading
// zero-degree vertices is paid once at the start of iteration and
// amortizes to O(1) per subsequent step.
func EdgeList[I core.Id, G interface {
	core.VertexRanger[I]
	core.EdgeRanger[I]
}](g G) iter.Seq[core.SourcedEdgeData[I]] {
	return func(yield func(core.SourcedEdgeData[I]) bool) {
		for u := range g.Vertices() {
			uid := core.VertexId[I](u)
			for e := range g.Edges(u) {
				rec := core.SourcedEdgeData[I]{Source: uid, Target: core.TargetId[I](g, e), Desc: e}
				if !yield(rec) {
					return
				}
			}
		}
	}
}

// EdgeListFunc is EdgeList with a per-element computed value.
func EdgeListFunc[I core.Id, EV any, G interface {
	core.VertexRanger[I]
	core.EdgeRanger[I]
}](g G, evf func(G, core.EdgeDesc[I]) EV) iter.Seq[core.SourcedEdgeDataV[I, EV]] {
	return func(yield func(core.SourcedEdgeDataV[I, EV]) bool) {
		for u := range g.Vertices() {
			uid := core.VertexId[I](u)
			for e := range g.Edges(u) {
				rec := core.SourcedEdgeDataV[I, EV]{
					Source: uid,
					Target: core.TargetId[I](g, e),
					Desc:   e,
					Value:  evf(g, e),
				}
				if !yield(rec) {
					return
				}
			}
		}
	}
}

// InEdgeList is EdgeList driven by each vertex's incoming edges instead of
// its outgoing ones; Source/Target are still named from the edge's own
// perspective (Source is the far endpoint, Target is the vertex being
// walked), so InEdgeList(g) and EdgeList(g) on the same bidirectional
// graph yield the same set of records in general, just discovered via a
// different per-vertex walk order.
func InEdgeList[I core.Id, G interface {
	core.VertexRanger[I]
	core.InEdgeRanger[I]
}](g G) iter.Seq[core.SourcedEdgeData[I]] {
	return func(yield func(core.SourcedEdgeData[I]) bool) {
		for v := range g.Vertices() {
			for e := range g.InEdges(v) {
				rec := core.SourcedEdgeData[I]{Source: core.SourceId[I](g, e), Target: core.VertexId[I](v), Desc: e}
				if !yield(rec) {
					return
				}
			}
		}
	}
}

// Sized reports whether EdgeList(g) can be counted in O(1): true iff g
// implements core.EdgeCounter, never true off the default O(V)
// degree-summation fallback.
func Sized[G any](g G) bool {
	_, ok := any(g).(core.EdgeCounter)
	return ok
}
