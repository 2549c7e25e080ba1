package components

import (
	"slices"

	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/dfs"
)

// finishOrder is a dfs.Run visitor recording vertex ids in the order
// their DFS frames finish.
type finishOrder[I core.Id] struct{ ids []I }

func (f *finishOrder[I]) OnFinishVertex(u core.VertexDesc[I]) {
	f.ids = append(f.ids, core.VertexId[I](u))
}

// reversePostOrder runs a whole-graph DFS and returns every vertex id in
// reverse finish order. Unlike dfs.Sort it does not stop at a back edge.
func reversePostOrder[I core.Id, G Graph[I]](g G) []I {
	f := &finishOrder[I]{}
	dfs.Run[I](g, f)
	slices.Reverse(f.ids)
	return f.ids
}

// Strong computes strongly connected components via Kosaraju's
// algorithm: a first DFS pass over the whole graph yields a post-order
// (via reversePostOrder, a dfs.Run pass that records finish order and
// reverses it); the second pass walks vertices in that reverse
// post-order, following each unlabeled vertex's *transpose* edges and
// labeling everything reverse-reachable as one component. Since plain
// Graph has no transpose, this overload materializes one: an adjacency
// map built once by a single EdgeList pass.
func Strong[I core.Id, G Graph[I]](g G) map[I]int {
	order := reversePostOrder[I](g)

	transpose := map[I][]I{}
	for u := range g.Vertices() {
		uid := core.VertexId[I](u)
		for e := range g.Edges(u) {
			tid := core.TargetId[I](g, e)
			transpose[tid] = append(transpose[tid], uid)
		}
	}

	label := map[I]int{}
	next := 0
	for _, id := range order {
		if _, done := label[id]; done {
			continue
		}
		cid := next
		next++
		stack := []I{id}
		label[id] = cid
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range transpose[u] {
				if _, done := label[v]; !done {
					label[v] = cid
					stack = append(stack, v)
				}
			}
		}
	}
	return label
}

// StrongBidirectional is Strong's counterpart for graphs that advertise
// InEdges: the second pass reads InEdges directly, so no transpose is
// ever materialized.
func StrongBidirectional[I core.Id, G interface {
	Graph[I]
	core.InEdgeRanger[I]
}](g G) map[I]int {
	order := reversePostOrder[I](g)

	label := map[I]int{}
	next := 0
	for _, id := range order {
		if _, done := label[id]; done {
			continue
		}
		cid := next
		next++
		stack := []I{id}
		label[id] = cid
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ud, ok := core.FindVertex[I](g, u)
			if !ok {
				continue
			}
			for e := range g.InEdges(ud) {
				sid := core.SourceId[I](g, e)
				if _, done := label[sid]; !done {
					label[sid] = cid
					stack = append(stack, sid)
				}
			}
		}
	}
	return label
}
