// Package dense implements one conforming graph container: a dense,
// index-backed adjacency list over integer vertex ids in [0, N). It
// exercises the index_adjacency_list shape of the customization-point
// contract — random-access FindVertex, O(1) NumVertices, an O(1)
// running edge counter — and is the fast path every CPO default tier in
// core/ exists to be skipped by.
//
// The container is build-once/read-many: algorithms and views never
// mutate a graph while running, so no locking is needed.
package dense

import (
	"iter"

	"github.com/stdgraph/graphkit/core"
)

type halfEdge[EV any] struct {
	target int
	value  EV
}

// inRef is a reverse-index entry: it names the out-edge that produced this
// incoming half-edge by (source vertex, position within out[source]), so
// EdgeDesc.Pos() always means "position within the owning out row" no
// matter whether the descriptor was produced by Edges or InEdges — EdgeValue
// can then always resolve through g.out[e.RawSource()][e.Pos()].
type inRef struct {
	source int
	outPos int
}

// Graph is a directed, index-backed adjacency list. VV/EV/GV are the
// vertex/edge/graph payload types; instantiate with struct{} for any of
// them to mean "absent" (see core/cpo_vertex.go's VertexValuer doc).
type Graph[VV, EV, GV any] struct {
	directed bool
	bidir    bool
	gval     GV
	vval     []VV
	out      [][]halfEdge[EV]
	in       [][]inRef // populated only when bidir
	numEdges int
}

// New creates a Graph with n vertices (ids 0..n-1), no edges.
// directed selects whether AddEdge mirrors a reverse half-edge;
// bidirectional additionally maintains an InEdges-queryable reverse
// index distinct from that mirror (meaningful chiefly for directed
// graphs, where the mirror is not added but the reverse index still is).
func New[VV, EV, GV any](n int, directed, bidirectional bool) *Graph[VV, EV, GV] {
	g := &Graph[VV, EV, GV]{
		directed: directed,
		bidir:    bidirectional,
		vval:     make([]VV, n),
		out:      make([][]halfEdge[EV], n),
	}
	if bidirectional {
		g.in = make([][]inRef, n)
	}
	return g
}

// SetGraphValue sets the whole-graph payload.
func (g *Graph[VV, EV, GV]) SetGraphValue(v GV) { g.gval = v }

// SetVertexValue sets the payload stored at vertex u.
func (g *Graph[VV, EV, GV]) SetVertexValue(u int, v VV) { g.vval[u] = v }

// AddEdge appends a half-edge u->v with payload ev. If the graph is
// undirected (directed==false) it also appends the mirror v->u. If the
// graph is bidirectional, the reverse index used by InEdges is updated
// regardless of directedness.
func (g *Graph[VV, EV, GV]) AddEdge(u, v int, ev EV) {
	uPos := len(g.out[u])
	g.out[u] = append(g.out[u], halfEdge[EV]{target: v, value: ev})
	g.numEdges++
	if g.bidir {
		g.in[v] = append(g.in[v], inRef{source: u, outPos: uPos})
	}
	if !g.directed && u != v {
		vPos := len(g.out[v])
		g.out[v] = append(g.out[v], halfEdge[EV]{target: u, value: ev})
		g.numEdges++
		if g.bidir {
			g.in[u] = append(g.in[u], inRef{source: v, outPos: vPos})
		}
	}
}

// Vertices implements core.VertexRanger[int].
func (g *Graph[VV, EV, GV]) Vertices() iter.Seq[core.VertexDesc[int]] {
	return func(yield func(core.VertexDesc[int]) bool) {
		for i := range g.out {
			if !yield(core.NewVertexDesc(i)) {
				return
			}
		}
	}
}

// NumVertices implements core.VertexCounter.
func (g *Graph[VV, EV, GV]) NumVertices() int { return len(g.out) }

// FindVertex implements core.VertexFinder[int].
func (g *Graph[VV, EV, GV]) FindVertex(id int) (core.VertexDesc[int], bool) {
	if id < 0 || id >= len(g.out) {
		return core.VertexDesc[int]{}, false
	}
	return core.NewVertexDesc(id), true
}

// Edges implements core.EdgeRanger[int].
func (g *Graph[VV, EV, GV]) Edges(u core.VertexDesc[int]) iter.Seq[core.EdgeDesc[int]] {
	row := g.out[u.Id()]
	return func(yield func(core.EdgeDesc[int]) bool) {
		for i, e := range row {
			if !yield(core.NewEdgeDesc(u.Id(), e.target, i)) {
				return
			}
		}
	}
}

// InEdges implements core.InEdgeRanger[int]; only usable when the graph
// was constructed with bidirectional=true.
func (g *Graph[VV, EV, GV]) InEdges(v core.VertexDesc[int]) iter.Seq[core.EdgeDesc[int]] {
	row := g.in[v.Id()]
	return func(yield func(core.EdgeDesc[int]) bool) {
		for _, ref := range row {
			if !yield(core.NewEdgeDesc(ref.source, v.Id(), ref.outPos)) {
				return
			}
		}
	}
}

// NumEdges implements core.EdgeCounter.
func (g *Graph[VV, EV, GV]) NumEdges() int { return g.numEdges }

// NumEdgesAt implements core.VertexEdgeCounter[int].
func (g *Graph[VV, EV, GV]) NumEdgesAt(u core.VertexDesc[int]) int { return len(g.out[u.Id()]) }

// VertexValue implements core.VertexValuer[int,VV].
func (g *Graph[VV, EV, GV]) VertexValue(u core.VertexDesc[int]) VV { return g.vval[u.Id()] }

// EdgeValue implements core.EdgeValuer[int,EV].
func (g *Graph[VV, EV, GV]) EdgeValue(e core.EdgeDesc[int]) EV {
	return g.out[e.RawSource()][e.Pos()].value
}

// GraphValue implements core.GraphValuer[GV].
func (g *Graph[VV, EV, GV]) GraphValue() GV { return g.gval }
