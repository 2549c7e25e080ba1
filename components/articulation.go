package components

import (
	"iter"

	"github.com/stdgraph/graphkit/core"
)

// BiconnectedComponent is one maximal 2-edge-connected-via-a-cut-vertex
// cluster, reported as the set of vertex ids incident to any edge popped
// off the auxiliary edge stack for this boundary.
type BiconnectedComponent[I core.Id] struct {
	Vertices []I
}

// stackEdge is an auxiliary-stack entry: just the endpoints, since only
// the vertex set of each popped run is reported.
type stackEdge[I core.Id] struct {
	u, v I
}

type articFrame[I core.Id] struct {
	id             I
	parent         I
	hasParent      bool
	usedParentEdge bool
	next           func() (core.EdgeDesc[I], bool)
	stop           func()
}

// Articulation runs one iterative DFS tracking disc[v] (discovery order)
// and low[v] (minimum disc reachable via a back edge from v's subtree),
// classifying a non-root u as an articulation point iff some DFS child c
// has low[c] >= disc[u], and the root iff it has >= 2 DFS children. It
// also emits biconnected components by popping an auxiliary edge stack
// down to and including the tree edge at every articulation boundary.
// Self-loops are ignored. Of the edges pointing back to the immediate
// parent, only the first (in Edges order) is treated as the tree edge's
// reverse; any parallel copies after it are back edges.
func Articulation[I core.Id, G Graph[I]](g G) (cutVertices map[I]bool, biconnected []BiconnectedComponent[I]) {
	disc := map[I]int{}
	low := map[I]int{}
	cutVertices = map[I]bool{}
	timer := 0
	var edgeStack []stackEdge[I]

	emit := func(u, v I) {
		var verts []I
		seen := map[I]bool{}
		for {
			top := edgeStack[len(edgeStack)-1]
			edgeStack = edgeStack[:len(edgeStack)-1]
			if !seen[top.u] {
				seen[top.u] = true
				verts = append(verts, top.u)
			}
			if !seen[top.v] {
				seen[top.v] = true
				verts = append(verts, top.v)
			}
			if top.u == u && top.v == v {
				break
			}
		}
		biconnected = append(biconnected, BiconnectedComponent[I]{Vertices: verts})
	}

	for root := range g.Vertices() {
		rid := core.VertexId[I](root)
		if _, seen := disc[rid]; seen {
			continue
		}

		var stack []*articFrame[I]
		push := func(id I, parent I, hasParent bool) {
			d, ok := core.FindVertex[I](g, id)
			var next func() (core.EdgeDesc[I], bool)
			var stop func()
			if ok {
				next, stop = iter.Pull(g.Edges(d))
			} else {
				next, stop = func() (core.EdgeDesc[I], bool) { var z core.EdgeDesc[I]; return z, false }, func() {}
			}
			disc[id] = timer
			low[id] = timer
			timer++
			stack = append(stack, &articFrame[I]{id: id, parent: parent, hasParent: hasParent, next: next, stop: stop})
		}
		push(rid, rid, false)
		rootChildren := 0

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			e, ok := top.next()
			if !ok {
				top.stop()
				stack = stack[:len(stack)-1]
				if len(stack) > 0 {
					parentFrame := stack[len(stack)-1]
					if low[top.id] < low[parentFrame.id] {
						low[parentFrame.id] = low[top.id]
					}
					if parentFrame.hasParent && low[top.id] >= disc[parentFrame.id] {
						cutVertices[parentFrame.id] = true
					}
					if !parentFrame.hasParent {
						rootChildren++
					}
					if low[top.id] >= disc[parentFrame.id] {
						emit(parentFrame.id, top.id)
					}
				}
				continue
			}

			uid := top.id
			vid := core.TargetId[I](g, e)
			if vid == uid {
				continue // self-loop, ignored
			}

			if _, seen := disc[vid]; !seen {
				edgeStack = append(edgeStack, stackEdge[I]{u: uid, v: vid})
				push(vid, uid, true)
				continue
			}

			if top.hasParent && vid == top.parent && !top.usedParentEdge {
				top.usedParentEdge = true
				continue
			}

			if disc[vid] < disc[uid] {
				edgeStack = append(edgeStack, stackEdge[I]{u: uid, v: vid})
				if disc[vid] < low[uid] {
					low[uid] = disc[vid]
				}
			}
		}

		if rootChildren >= 2 {
			cutVertices[rid] = true
		}
	}

	return cutVertices, biconnected
}
