package analysis

import "github.com/stdgraph/graphkit/core"

// MaximalIndependentSet greedily builds a maximal independent set: visit
// vertices in ascending id order, and admit a vertex iff none of its
// already-visited neighbors (in either direction, since independence is
// an undirected property even over a directed Edges/InEdges pair) is
// already admitted. Ascending-id order makes the result deterministic;
// it is not necessarily the maximum (largest) independent set, which is
// NP-hard in general.
func MaximalIndependentSet[I Ordered, G Graph[I]](g G) map[I]bool {
	var ids []I
	for u := range g.Vertices() {
		ids = append(ids, core.VertexId[I](u))
	}
	sortIds(ids)

	adj := map[I][]I{}
	for u := range g.Vertices() {
		uid := core.VertexId[I](u)
		for e := range g.Edges(u) {
			vid := core.TargetId[I](g, e)
			if vid == uid {
				continue
			}
			adj[uid] = append(adj[uid], vid)
			adj[vid] = append(adj[vid], uid)
		}
	}

	in := map[I]bool{}
	excluded := map[I]bool{}
	for _, id := range ids {
		if excluded[id] {
			continue
		}
		in[id] = true
		for _, nb := range adj[id] {
			excluded[nb] = true
		}
	}
	return in
}

func sortIds[I Ordered](ids []I) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
