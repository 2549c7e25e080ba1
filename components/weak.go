package components

import "github.com/stdgraph/graphkit/core"

// Graph is the bound the component analyses in this package require.
type Graph[I core.Id] interface {
	core.VertexRanger[I]
	core.EdgeRanger[I]
}

// Weak computes undirected-reachability (weakly connected) components
// via a single BFS sweep over the whole graph: each not-yet-labeled
// vertex seeds a new component id, and every vertex reached from it
// (following outgoing edges only — callers on a directed graph wanting
// true weak connectivity should pass a graph that also exposes InEdges,
// or traverse a symmetrized view) receives that id.
func Weak[I core.Id, G Graph[I]](g G) map[I]int {
	label := map[I]int{}
	next := 0

	for u := range g.Vertices() {
		uid := core.VertexId[I](u)
		if _, done := label[uid]; done {
			continue
		}
		id := next
		next++

		queue := []core.VertexDesc[I]{u}
		label[uid] = id
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for e := range g.Edges(v) {
				tid := core.TargetId[I](g, e)
				if _, done := label[tid]; done {
					continue
				}
				label[tid] = id
				if td, ok := core.FindVertex[I](g, tid); ok {
					queue = append(queue, td)
				}
			}
		}
	}
	return label
}

// ComponentSummary reports one weakly connected component's
// representative (its lowest-discovered vertex id, i.e. the one Weak
// first assigned the component's label to) and size.
type ComponentSummary[I core.Id] struct {
	Representative I
	Size           int
}

// Summarize turns a Weak/WeakBidirectional label map into one
// ComponentSummary per distinct label, keyed by that label. The
// representative is whichever member of the component appears first in
// g.Vertices() order, which is the vertex Weak seeded the component from.
func Summarize[I core.Id, G Graph[I]](g G, label map[I]int) map[int]ComponentSummary[I] {
	out := map[int]ComponentSummary[I]{}
	for u := range g.Vertices() {
		uid := core.VertexId[I](u)
		id, ok := label[uid]
		if !ok {
			continue
		}
		s, seen := out[id]
		if !seen {
			out[id] = ComponentSummary[I]{Representative: uid, Size: 1}
			continue
		}
		s.Size++
		out[id] = s
	}
	return out
}

// WeakBidirectional is Weak's counterpart for graphs that advertise
// InEdges: each sweep follows both outgoing and incoming edges, giving
// true undirected-reachability components on a directed graph without
// requiring the caller to symmetrize it themselves.
func WeakBidirectional[I core.Id, G interface {
	Graph[I]
	core.InEdgeRanger[I]
}](g G) map[I]int {
	label := map[I]int{}
	next := 0

	for u := range g.Vertices() {
		uid := core.VertexId[I](u)
		if _, done := label[uid]; done {
			continue
		}
		id := next
		next++

		queue := []core.VertexDesc[I]{u}
		label[uid] = id
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for e := range g.Edges(v) {
				tid := core.TargetId[I](g, e)
				if _, done := label[tid]; !done {
					label[tid] = id
					if td, ok := core.FindVertex[I](g, tid); ok {
						queue = append(queue, td)
					}
				}
			}
			for e := range g.InEdges(v) {
				sid := core.SourceId[I](g, e)
				if _, done := label[sid]; !done {
					label[sid] = id
					if sd, ok := core.FindVertex[I](g, sid); ok {
						queue = append(queue, sd)
					}
				}
			}
		}
	}
	return label
}
