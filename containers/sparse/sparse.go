// Package sparse implements the second conforming container: a
// map-backed adjacency list over arbitrary comparable vertex ids (string,
// in practice). Unlike containers/dense it has no random-access fast
// path for FindVertex (a map lookup is its fast path instead) and
// demonstrates a container that overrides the edge target-id accessor rather
// than relying on the descriptor's embedded fields, exercising the
// EdgeTargetOverrider tier of the CPO cascade (core/cpo_edge.go).
//
// The container is build-once/read-many: populate it with AddVertex and
// AddEdge, then hand it to views and algorithms, which only read.
package sparse

import (
	"iter"

	"github.com/stdgraph/graphkit/core"
)

type entry[EV any] struct {
	target I
	value  EV
}

// I is this container's vertex id type. Kept as a local alias (rather
// than a type parameter) because sparse exists to demonstrate the
// string/sparse-id half of the container family; containers/dense
// already demonstrates the integer/index half generically.
type I = string

// Graph is a directed, map-backed adjacency list keyed by arbitrary
// string ids.
type Graph[VV, EV, GV any] struct {
	directed bool
	gval     GV
	ids      []I // insertion order, for deterministic Vertices()
	vval     map[I]VV
	out      map[I][]entry[EV]
	in       map[I][]I // reverse adjacency: target -> sources, for InEdges
	bidir    bool
}

// New creates an empty sparse Graph.
func New[VV, EV, GV any](directed, bidirectional bool) *Graph[VV, EV, GV] {
	g := &Graph[VV, EV, GV]{
		directed: directed,
		bidir:    bidirectional,
		vval:     make(map[I]VV),
		out:      make(map[I][]entry[EV]),
	}
	if bidirectional {
		g.in = make(map[I][]I)
	}
	return g
}

// AddVertex registers id (idempotent) with payload v.
func (g *Graph[VV, EV, GV]) AddVertex(id I, v VV) {
	if _, ok := g.out[id]; !ok {
		g.ids = append(g.ids, id)
		g.out[id] = nil
	}
	g.vval[id] = v
}

// AddEdge appends a half-edge from->to with payload ev. Both endpoints
// must already exist via AddVertex.
func (g *Graph[VV, EV, GV]) AddEdge(from, to I, ev EV) {
	g.out[from] = append(g.out[from], entry[EV]{target: to, value: ev})
	if !g.directed && from != to {
		g.out[to] = append(g.out[to], entry[EV]{target: from, value: ev})
	}
	if g.bidir {
		g.in[to] = append(g.in[to], from)
		if !g.directed && from != to {
			g.in[from] = append(g.in[from], to)
		}
	}
}

// SetGraphValue sets the whole-graph payload.
func (g *Graph[VV, EV, GV]) SetGraphValue(v GV) { g.gval = v }

// Vertices implements core.VertexRanger[I].
func (g *Graph[VV, EV, GV]) Vertices() iter.Seq[core.VertexDesc[I]] {
	return func(yield func(core.VertexDesc[I]) bool) {
		for _, id := range g.ids {
			if !yield(core.NewVertexDesc(id)) {
				return
			}
		}
	}
}

// FindVertex implements core.VertexFinder[I] (map lookup, the fast path
// this container has in place of dense's index bounds check).
func (g *Graph[VV, EV, GV]) FindVertex(id I) (core.VertexDesc[I], bool) {
	if _, ok := g.out[id]; !ok {
		return core.VertexDesc[I]{}, false
	}
	return core.NewVertexDesc(id), true
}

// Edges implements core.EdgeRanger[I].
func (g *Graph[VV, EV, GV]) Edges(u core.VertexDesc[I]) iter.Seq[core.EdgeDesc[I]] {
	row := g.out[u.Id()]
	return func(yield func(core.EdgeDesc[I]) bool) {
		for i, e := range row {
			if !yield(core.NewEdgeDesc(u.Id(), e.target, i)) {
				return
			}
		}
	}
}

// InEdges implements core.InEdgeRanger[I]. Because sparse's reverse index
// only tracks source ids (not the producing out-position), it resolves
// the position by a bounded scan of the source's out row rather than
// dense's O(1) back-reference — a deliberate contrast showing that a
// conforming container need not choose the cheapest possible bidirectional
// representation to satisfy the contract.
func (g *Graph[VV, EV, GV]) InEdges(v core.VertexDesc[I]) iter.Seq[core.EdgeDesc[I]] {
	sources := g.in[v.Id()]
	return func(yield func(core.EdgeDesc[I]) bool) {
		for _, s := range sources {
			for i, e := range g.out[s] {
				if e.target == v.Id() {
					if !yield(core.NewEdgeDesc(s, v.Id(), i)) {
						return
					}
					break
				}
			}
		}
	}
}

// VertexValue implements core.VertexValuer[I,VV].
func (g *Graph[VV, EV, GV]) VertexValue(u core.VertexDesc[I]) VV { return g.vval[u.Id()] }

// GraphValue implements core.GraphValuer[GV].
func (g *Graph[VV, EV, GV]) GraphValue() GV { return g.gval }

// TargetId implements core.EdgeTargetOverrider[I]: rather than trusting
// the id the descriptor was constructed with, it re-reads the stored
// entry by (source, pos) every time, demonstrating the override tier
// winning over the struct-field default.
func (g *Graph[VV, EV, GV]) TargetId(e core.EdgeDesc[I]) I {
	return g.out[e.RawSource()][e.Pos()].target
}

// EdgeValue implements core.EdgeValuer[I,EV].
func (g *Graph[VV, EV, GV]) EdgeValue(e core.EdgeDesc[I]) EV {
	return g.out[e.RawSource()][e.Pos()].value
}

// NumVertices implements core.VertexCounter.
func (g *Graph[VV, EV, GV]) NumVertices() int { return len(g.ids) }
