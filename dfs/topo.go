package dfs

import (
	"iter"

	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/search"
)

// Sort performs a whole-graph topological sort: DFS from every unvisited
// vertex in Vertices() order, appending each vertex's id to a post-order
// buffer when its frame finishes, then reversing. Returns the ids in
// topological order and whether the reachable graph was acyclic. On a
// cycle the function stops immediately; the returned order is then
// partial.
func Sort[I core.Id, G Graph[I]](g G) ([]I, bool) {
	var roots []core.VertexDesc[I]
	for u := range g.Vertices() {
		roots = append(roots, u)
	}
	order, _, ok := sortFrom[I](g, roots)
	return order, ok
}

// SortFrom restricts the sort to the subgraph reachable from sources.
func SortFrom[I core.Id, G Graph[I]](g G, sources ...core.VertexDesc[I]) ([]I, bool) {
	order, _, ok := sortFrom[I](g, sources)
	return order, ok
}

// SafeSort is SortFrom's witness-carrying counterpart (the "_safe"
// factory): on a cycle it additionally reports the vertex whose back
// edge closed it.
func SafeSort[I core.Id, G Graph[I]](g G, sources ...core.VertexDesc[I]) (order []I, witness core.VertexDesc[I], acyclic bool) {
	roots := sources
	if len(roots) == 0 {
		for u := range g.Vertices() {
			roots = append(roots, u)
		}
	}
	return sortFrom[I](g, roots)
}

func sortFrom[I core.Id, G Graph[I]](g G, roots []core.VertexDesc[I]) ([]I, core.VertexDesc[I], bool) {
	clr := map[I]color{}
	var post []I
	var witness core.VertexDesc[I]
	acyclic := true

outer:
	for _, root := range roots {
		if clr[core.VertexId[I](root)] != white {
			continue
		}
		var stack []frame[I]
		push := func(d core.VertexDesc[I]) {
			next, stop := iter.Pull(g.Edges(d))
			stack = append(stack, frame[I]{desc: d, next: next, stop: stop})
			clr[core.VertexId[I](d)] = gray
		}
		push(root)
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			e, ok := top.next()
			if !ok {
				id := core.VertexId[I](top.desc)
				clr[id] = black
				post = append(post, id)
				top.stop()
				stack = stack[:len(stack)-1]
				continue
			}
			tid := core.TargetId[I](g, e)
			switch clr[tid] {
			case white:
				td, found := core.FindVertex[I](g, tid)
				if !found {
					continue
				}
				push(td)
			case gray:
				acyclic = false
				witness, _ = core.FindVertex[I](g, tid)
				for _, f := range stack {
					f.stop()
				}
				break outer
			case black:
				// forward or cross edge: already ordered, ignore.
			}
		}
	}

	out := make([]I, len(post))
	for i, id := range post {
		out[len(post)-1-i] = id
	}
	return out, witness, acyclic
}

// View is the search-view flavor of topological sort (C6): the order is
// computed eagerly at construction (there is no incremental stepping
// possible for a flat, post-order-derived sequence), and the iterator
// just walks the precomputed slice.
type View[I core.Id] struct {
	order      []I
	idx        int
	numVisited int
	sig        search.Signal
}

// NewView constructs a topological-sort view. With no sources, it covers
// the whole graph; with sources, only the subgraph reachable from them.
func NewView[I core.Id, G Graph[I]](g G, sources ...core.VertexDesc[I]) *View[I] {
	var order []I
	if len(sources) == 0 {
		order, _ = Sort[I](g)
	} else {
		order, _ = SortFrom[I](g, sources...)
	}
	return &View[I]{order: order}
}

// Cancel influences further iteration. Because this view's ordering is
// flat rather than tree-shaped, search.CancelBranch is treated
// identically to search.CancelAll — there is no subtree to suppress.
func (v *View[I]) Cancel(sig search.Signal) {
	if sig == search.CancelBranch {
		sig = search.CancelAll
	}
	v.sig = sig
}

// NumVisited returns the number of vertices yielded so far.
func (v *View[I]) NumVisited() int { return v.numVisited }

// All returns the single-pass range over the precomputed order.
func (v *View[I]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		for v.idx < len(v.order) {
			if v.sig == search.CancelAll {
				return
			}
			id := v.order[v.idx]
			v.idx++
			v.numVisited++
			if !yield(id) {
				return
			}
		}
	}
}
