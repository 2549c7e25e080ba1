package bfs

import (
	"iter"

	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/search"
)

// Graph is the bound every BFS view and Run require: enough to enumerate
// vertices (for find_vertex's default tier) and a vertex's outgoing edges.
type Graph[I core.Id] interface {
	core.VertexRanger[I]
	core.EdgeRanger[I]
}

type qitem[I core.Id] struct {
	desc  core.VertexDesc[I]
	depth int
}

// VerticesBFS is the vertices_bfs search view: a single-pass, queue-backed
// range of core.VertexData in breadth-first order from one or more seed
// vertices.
type VerticesBFS[I core.Id, G Graph[I]] struct {
	g          G
	queue      []qitem[I]
	visited    map[I]bool
	depth      map[I]int
	numVisited int
	sig        search.Signal
}

// NewVerticesBFS constructs a view seeded from sources, each at depth 0.
func NewVerticesBFS[I core.Id, G Graph[I]](g G, sources ...core.VertexDesc[I]) *VerticesBFS[I, G] {
	v := &VerticesBFS[I, G]{g: g, visited: map[I]bool{}, depth: map[I]int{}}
	for _, s := range sources {
		id := core.VertexId[I](s)
		if v.visited[id] {
			continue
		}
		v.visited[id] = true
		v.depth[id] = 0
		v.queue = append(v.queue, qitem[I]{desc: s, depth: 0})
	}
	return v
}

// Cancel influences further iteration: search.CancelAll stops immediately,
// search.CancelBranch suppresses expanding the vertex most recently
// yielded (its unvisited neighbors are not enqueued; already-enqueued
// peers are unaffected). The signal is consumed by the next step.
func (v *VerticesBFS[I, G]) Cancel(sig search.Signal) { v.sig = sig }

// NumVisited returns the number of vertices dequeued so far, incremented
// by stepping the view (not by constructing it).
func (v *VerticesBFS[I, G]) NumVisited() int { return v.numVisited }

// DepthOf returns the BFS tree depth recorded for id, if id has been
// discovered.
func (v *VerticesBFS[I, G]) DepthOf(id I) (int, bool) {
	d, ok := v.depth[id]
	return d, ok
}

// All returns the single-pass range of visited vertices in level order.
func (v *VerticesBFS[I, G]) All() iter.Seq[core.VertexData[I]] {
	return func(yield func(core.VertexData[I]) bool) {
		for len(v.queue) > 0 {
			if v.sig == search.CancelAll {
				return
			}
			item := v.queue[0]
			v.queue = v.queue[1:]
			v.numVisited++

			if !yield(core.VertexData[I]{Id: core.VertexId[I](item.desc), Desc: item.desc}) {
				return
			}
			if v.sig == search.CancelAll {
				return
			}
			branchCancelled := v.sig == search.CancelBranch
			v.sig = search.Continue
			if branchCancelled {
				continue
			}

			for e := range v.g.Edges(item.desc) {
				tid := core.TargetId[I](v.g, e)
				if v.visited[tid] {
					continue
				}
				td, ok := core.FindVertex[I](v.g, tid)
				if !ok {
					continue
				}
				v.visited[tid] = true
				v.depth[tid] = item.depth + 1
				v.queue = append(v.queue, qitem[I]{desc: td, depth: item.depth + 1})
			}
		}
	}
}

// EdgesBFS is the edges_bfs search view: like VerticesBFS but yields the
// tree edge that discovered each non-seed vertex instead of the vertex
// itself. Seed vertices produce no record (they have no discovering
// edge).
type EdgesBFS[I core.Id, G Graph[I]] struct {
	inner *VerticesBFS[I, G]
}

// NewEdgesBFS constructs the edge-yielding counterpart of NewVerticesBFS.
func NewEdgesBFS[I core.Id, G Graph[I]](g G, sources ...core.VertexDesc[I]) *EdgesBFS[I, G] {
	return &EdgesBFS[I, G]{inner: NewVerticesBFS[I](g, sources...)}
}

// Cancel delegates to the underlying VerticesBFS.
func (v *EdgesBFS[I, G]) Cancel(sig search.Signal) { v.inner.Cancel(sig) }

// NumVisited delegates to the underlying VerticesBFS.
func (v *EdgesBFS[I, G]) NumVisited() int { return v.inner.NumVisited() }

// All returns the single-pass range of tree edges in discovery order.
func (v *EdgesBFS[I, G]) All() iter.Seq[core.SourcedEdgeData[I]] {
	g := v.inner.g
	return func(yield func(core.SourcedEdgeData[I]) bool) {
		for len(v.inner.queue) > 0 {
			if v.inner.sig == search.CancelAll {
				return
			}
			item := v.inner.queue[0]
			v.inner.queue = v.inner.queue[1:]
			v.inner.numVisited++

			branchCancelled := v.inner.sig == search.CancelBranch
			v.inner.sig = search.Continue
			if branchCancelled {
				continue
			}

			for e := range g.Edges(item.desc) {
				tid := core.TargetId[I](g, e)
				if v.inner.visited[tid] {
					continue
				}
				td, ok := core.FindVertex[I](g, tid)
				if !ok {
					continue
				}
				v.inner.visited[tid] = true
				v.inner.depth[tid] = item.depth + 1
				v.inner.queue = append(v.inner.queue, qitem[I]{desc: td, depth: item.depth + 1})

				rec := core.SourcedEdgeData[I]{Source: core.VertexId[I](item.desc), Target: tid, Desc: e}
				if !yield(rec) {
					return
				}
				if v.inner.sig == search.CancelAll {
					return
				}
			}
		}
	}
}
