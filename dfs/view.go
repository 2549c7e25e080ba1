package dfs

import (
	"iter"

	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/search"
)

// Graph is the bound every DFS view and Run require.
type Graph[I core.Id] interface {
	core.VertexRanger[I]
	core.EdgeRanger[I]
}

// Three-color scheme: white is the zero value (absent from the color
// map), gray means on the explicit DFS stack, black means finished.
type color = uint8

const (
	white color = iota
	gray
	black
)

// frame holds one stack entry: the vertex being explored and a pulled
// (resumable) view of its outgoing edges, so the stack can be stepped one
// edge at a time instead of recursing.
type frame[I core.Id] struct {
	desc core.VertexDesc[I]
	next func() (core.EdgeDesc[I], bool)
	stop func()
}

// EdgeKind classifies an edge examined by EdgesDFS at the moment it is
// yielded, per the three-color scheme.
type EdgeKind int

const (
	// TreeEdge leads to a white (undiscovered) vertex.
	TreeEdge EdgeKind = iota
	// BackEdge leads to a gray (on-stack) vertex — a cycle indicator.
	BackEdge
	// ForwardOrCrossEdge leads to a black (finished) vertex.
	ForwardOrCrossEdge
)

// EdgeRecord is yielded by EdgesDFS.
type EdgeRecord[I core.Id] struct {
	Source I
	Target I
	Desc   core.EdgeDesc[I]
	Kind   EdgeKind
}

// VerticesDFS is the vertices_dfs search view: a single-pass, explicit
// stack-of-frames range of core.VertexData in depth-first preorder from
// one or more seed vertices.
type VerticesDFS[I core.Id, G Graph[I]] struct {
	g          G
	color      map[I]color
	stack      []frame[I]
	pending    []core.VertexDesc[I]
	numVisited int
	sig        search.Signal
}

// NewVerticesDFS constructs a view seeded from sources; sources after the
// first reachable one act as additional roots for a forest walk once the
// first root's component is exhausted.
func NewVerticesDFS[I core.Id, G Graph[I]](g G, sources ...core.VertexDesc[I]) *VerticesDFS[I, G] {
	return &VerticesDFS[I, G]{g: g, color: map[I]color{}, pending: sources}
}

// Cancel influences further iteration: search.CancelAll ends it
// immediately, search.CancelBranch pops the current frame before its
// children are expanded (already-pushed ancestors are unaffected).
func (v *VerticesDFS[I, G]) Cancel(sig search.Signal) { v.sig = sig }

// NumVisited returns the number of vertices discovered (pushed) so far.
func (v *VerticesDFS[I, G]) NumVisited() int { return v.numVisited }

func (v *VerticesDFS[I, G]) push(d core.VertexDesc[I]) {
	next, stop := iter.Pull(v.g.Edges(d))
	v.stack = append(v.stack, frame[I]{desc: d, next: next, stop: stop})
	v.color[core.VertexId[I](d)] = gray
}

func (v *VerticesDFS[I, G]) pop() {
	top := v.stack[len(v.stack)-1]
	top.stop()
	v.color[core.VertexId[I](top.desc)] = black
	v.stack = v.stack[:len(v.stack)-1]
}

func (v *VerticesDFS[I, G]) closeAll() {
	for _, f := range v.stack {
		f.stop()
	}
	v.stack = nil
}

// All returns the single-pass range of discovered vertices in
// depth-first preorder.
func (v *VerticesDFS[I, G]) All() iter.Seq[core.VertexData[I]] {
	return func(yield func(core.VertexData[I]) bool) {
		for {
			if v.sig == search.CancelAll {
				v.closeAll()
				return
			}
			if len(v.stack) == 0 {
				if len(v.pending) == 0 {
					return
				}
				src := v.pending[0]
				v.pending = v.pending[1:]
				if v.color[core.VertexId[I](src)] != white {
					continue
				}
				v.push(src)
				v.numVisited++
				if !yield(core.VertexData[I]{Id: core.VertexId[I](src), Desc: src}) {
					v.closeAll()
					return
				}
				if v.sig == search.CancelAll {
					v.closeAll()
					return
				}
				if v.sig == search.CancelBranch {
					v.sig = search.Continue
					v.pop()
				}
				continue
			}

			top := &v.stack[len(v.stack)-1]
			e, ok := top.next()
			if !ok {
				v.pop()
				continue
			}
			tid := core.TargetId[I](v.g, e)
			if v.color[tid] != white {
				continue
			}
			td, found := core.FindVertex[I](v.g, tid)
			if !found {
				continue
			}
			v.push(td)
			v.numVisited++
			if !yield(core.VertexData[I]{Id: tid, Desc: td}) {
				v.closeAll()
				return
			}
			if v.sig == search.CancelAll {
				v.closeAll()
				return
			}
			if v.sig == search.CancelBranch {
				v.sig = search.Continue
				v.pop()
			}
		}
	}
}

// EdgesDFS is the edges_dfs search view: it yields every edge examined,
// classified as tree/back/forward-or-cross at the moment it is yielded —
// classification happens before any cancellation check, which only
// suppresses pushing a tree edge's target afterward.
type EdgesDFS[I core.Id, G Graph[I]] struct {
	g          G
	color      map[I]color
	stack      []frame[I]
	pending    []core.VertexDesc[I]
	numVisited int
	sig        search.Signal
}

// NewEdgesDFS constructs the edge-yielding counterpart of NewVerticesDFS.
func NewEdgesDFS[I core.Id, G Graph[I]](g G, sources ...core.VertexDesc[I]) *EdgesDFS[I, G] {
	return &EdgesDFS[I, G]{g: g, color: map[I]color{}, pending: sources}
}

// Cancel influences further iteration the same way as VerticesDFS.Cancel.
func (v *EdgesDFS[I, G]) Cancel(sig search.Signal) { v.sig = sig }

// NumVisited returns the number of vertices discovered so far.
func (v *EdgesDFS[I, G]) NumVisited() int { return v.numVisited }

func (v *EdgesDFS[I, G]) push(d core.VertexDesc[I]) {
	next, stop := iter.Pull(v.g.Edges(d))
	v.stack = append(v.stack, frame[I]{desc: d, next: next, stop: stop})
	v.color[core.VertexId[I](d)] = gray
}

func (v *EdgesDFS[I, G]) pop() {
	top := v.stack[len(v.stack)-1]
	top.stop()
	v.color[core.VertexId[I](top.desc)] = black
	v.stack = v.stack[:len(v.stack)-1]
}

func (v *EdgesDFS[I, G]) closeAll() {
	for _, f := range v.stack {
		f.stop()
	}
	v.stack = nil
}

// All returns the single-pass range of examined edges.
func (v *EdgesDFS[I, G]) All() iter.Seq[EdgeRecord[I]] {
	return func(yield func(EdgeRecord[I]) bool) {
		for {
			if v.sig == search.CancelAll {
				v.closeAll()
				return
			}
			if len(v.stack) == 0 {
				if len(v.pending) == 0 {
					return
				}
				src := v.pending[0]
				v.pending = v.pending[1:]
				if v.color[core.VertexId[I](src)] != white {
					continue
				}
				v.push(src)
				v.numVisited++
				continue
			}

			top := &v.stack[len(v.stack)-1]
			e, ok := top.next()
			if !ok {
				v.pop()
				continue
			}
			sid := core.VertexId[I](top.desc)
			tid := core.TargetId[I](v.g, e)

			switch v.color[tid] {
			case white:
				rec := EdgeRecord[I]{Source: sid, Target: tid, Desc: e, Kind: TreeEdge}
				if !yield(rec) {
					v.closeAll()
					return
				}
				if v.sig == search.CancelAll {
					v.closeAll()
					return
				}
				branchCancelled := v.sig == search.CancelBranch
				v.sig = search.Continue
				if branchCancelled {
					continue
				}
				td, found := core.FindVertex[I](v.g, tid)
				if !found {
					continue
				}
				v.push(td)
				v.numVisited++
			case gray:
				rec := EdgeRecord[I]{Source: sid, Target: tid, Desc: e, Kind: BackEdge}
				if !yield(rec) {
					v.closeAll()
					return
				}
				if v.sig == search.CancelAll {
					v.closeAll()
					return
				}
				v.sig = search.Continue
			case black:
				rec := EdgeRecord[I]{Source: sid, Target: tid, Desc: e, Kind: ForwardOrCrossEdge}
				if !yield(rec) {
					v.closeAll()
					return
				}
				if v.sig == search.CancelAll {
					v.closeAll()
					return
				}
				v.sig = search.Continue
			}
		}
	}
}
