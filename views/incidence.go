package views

import (
	"iter"

	"github.com/stdgraph/graphkit/core"
)

// Incidence iterates u's outgoing edges, yielding core.EdgeData{Target,
// Desc}. u must be a valid descriptor obtained from g itself; passing a
// descriptor from a different graph leaves the result undefined.
//
// Sized when the underlying edge store is sized (core.Degree(g,u) is
// O(1)); callers wanting a count should call core.Degree directly rather
// than draining the sequence.
func Incidence[I core.Id, G core.EdgeRanger[I]](g G, u core.VertexDesc[I]) iter.Seq[core.EdgeData[I]] {
	return func(yield func(core.EdgeData[I]) bool) {
		for e := range g.Edges(u) {
			rec := core.EdgeData[I]{Target: core.TargetId[I](g, e), Desc: e}
			if !yield(rec) {
				return
			}
		}
	}
}

// IncidenceFunc is Incidence with a per-element computed value. evf is
// called exactly once per dereference and must be pure: it receives the
// graph and the edge descriptor currently being yielded.
func IncidenceFunc[I core.Id, EV any, G core.EdgeRanger[I]](g G, u core.VertexDesc[I], evf func(G, core.EdgeDesc[I]) EV) iter.Seq[core.EdgeDataV[I, EV]] {
	return func(yield func(core.EdgeDataV[I, EV]) bool) {
		for e := range g.Edges(u) {
			rec := core.EdgeDataV[I, EV]{Target: core.TargetId[I](g, e), Desc: e, Value: evf(g, e)}
			if !yield(rec) {
				return
			}
		}
	}
}

// InIncidence is Incidence over u's incoming edges, requiring g to be
// bidirectional (core.InEdgeRanger).
func InIncidence[I core.Id, G core.InEdgeRanger[I]](g G, u core.VertexDesc[I]) iter.Seq[core.EdgeData[I]] {
	return func(yield func(core.EdgeData[I]) bool) {
		for e := range g.InEdges(u) {
			rec := core.EdgeData[I]{Target: core.SourceId[I](g, e), Desc: e}
			if !yield(rec) {
				return
			}
		}
	}
}
