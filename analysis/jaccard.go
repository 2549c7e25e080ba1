package analysis

import "github.com/stdgraph/graphkit/core"

func neighborSet[I Ordered, G Graph[I]](g G, u core.VertexDesc[I]) map[I]struct{} {
	set := make(map[I]struct{})
	for e := range g.Edges(u) {
		set[core.TargetId[I](g, e)] = struct{}{}
	}
	return set
}

// Jaccard returns |N(u) ∩ N(v)| / |N(u) ∪ N(v)| over each vertex's
// out-neighbor set. Two vertices with no neighbors at all (empty union)
// have similarity 0, not NaN.
func Jaccard[I Ordered, G Graph[I]](g G, u, v core.VertexDesc[I]) float64 {
	nu := neighborSet[I](g, u)
	nv := neighborSet[I](g, v)

	inter := 0
	for id := range nu {
		if _, ok := nv[id]; ok {
			inter++
		}
	}
	union := len(nu) + len(nv) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// AllPairsJaccard computes Jaccard similarity for every pair of distinct
// vertices whose neighbor sets overlap, skipping pairs with an empty
// intersection so the result only carries meaningful similarity scores.
func AllPairsJaccard[I Ordered, G Graph[I]](g G) map[[2]I]float64 {
	neighbors := map[I]map[I]struct{}{}
	var ids []I
	for u := range g.Vertices() {
		uid := core.VertexId[I](u)
		ids = append(ids, uid)
		neighbors[uid] = neighborSet[I](g, u)
	}

	out := map[[2]I]float64{}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			if a > b {
				a, b = b, a
			}
			nu, nv := neighbors[ids[i]], neighbors[ids[j]]
			inter := 0
			for id := range nu {
				if _, ok := nv[id]; ok {
					inter++
				}
			}
			if inter == 0 {
				continue
			}
			union := len(nu) + len(nv) - inter
			out[[2]I{a, b}] = float64(inter) / float64(union)
		}
	}
	return out
}
