package analysis

import "github.com/stdgraph/graphkit/core"

// LabelPropagation assigns each vertex its own id as its initial label,
// then repeatedly relabels every vertex (in ascending-id order within a
// round, synchronously applied between rounds) to the most frequent
// label among its undirected neighbors, breaking ties by lowest label
// for determinism, since plain majority-vote label propagation is otherwise
// order-dependent and nondeterministic. Propagation stops early once a
// round changes no label, and is bounded at maxIterations rounds
// regardless, since label propagation has no guaranteed convergence on
// bipartite-like oscillating structures.
func LabelPropagation[I Ordered, G Graph[I]](g G, maxIterations int) map[I]I {
	var ids []I
	adj := map[I][]I{}
	for u := range g.Vertices() {
		uid := core.VertexId[I](u)
		ids = append(ids, uid)
		if _, ok := adj[uid]; !ok {
			adj[uid] = nil
		}
		for e := range g.Edges(u) {
			vid := core.TargetId[I](g, e)
			if vid == uid {
				continue
			}
			adj[uid] = append(adj[uid], vid)
			adj[vid] = append(adj[vid], uid)
		}
	}
	sortIds(ids)

	label := map[I]I{}
	for _, id := range ids {
		label[id] = id
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		next := map[I]I{}
		for _, id := range ids {
			neighbors := adj[id]
			if len(neighbors) == 0 {
				next[id] = label[id]
				continue
			}
			counts := map[I]int{}
			for _, nb := range neighbors {
				counts[label[nb]]++
			}
			best := label[id]
			bestCount := -1
			var candidates []I
			for lbl := range counts {
				candidates = append(candidates, lbl)
			}
			sortIds(candidates)
			for _, lbl := range candidates {
				if counts[lbl] > bestCount {
					bestCount = counts[lbl]
					best = lbl
				}
			}
			next[id] = best
		}
		for _, id := range ids {
			if next[id] != label[id] {
				changed = true
			}
		}
		label = next
		if !changed {
			break
		}
	}
	return label
}
