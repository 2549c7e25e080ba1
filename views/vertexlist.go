package views

import (
	"iter"

	"github.com/stdgraph/graphkit/core"
)

// VertexList iterates Vertices(), yielding core.VertexData{Id, Desc}.
func VertexList[I core.Id, G core.VertexRanger[I]](g G) iter.Seq[core.VertexData[I]] {
	return func(yield func(core.VertexData[I]) bool) {
		for u := range g.Vertices() {
			if !yield(core.VertexData[I]{Id: core.VertexId[I](u), Desc: u}) {
				return
			}
		}
	}
}

// VertexListFunc is VertexList with a per-element computed value.
func VertexListFunc[I core.Id, VV any, G core.VertexRanger[I]](g G, vvf func(G, core.VertexDesc[I]) VV) iter.Seq[core.VertexDataV[I, VV]] {
	return func(yield func(core.VertexDataV[I, VV]) bool) {
		for u := range g.Vertices() {
			rec := core.VertexDataV[I, VV]{Id: core.VertexId[I](u), Desc: u, Value: vvf(g, u)}
			if !yield(rec) {
				return
			}
		}
	}
}
