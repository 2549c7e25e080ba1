package analysis

import (
	"sort"

	"github.com/stdgraph/graphkit/core"
)

// Graph is the bound every analysis in this package requires.
type Graph[I core.Id] interface {
	core.VertexRanger[I]
	core.EdgeRanger[I]
}

// Ordered is the id constraint TriangleCount needs: a total order to
// sort each vertex's adjacency list and to define "v > u" deterministically.
type Ordered interface {
	comparable
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~string | ~float32 | ~float64
}

func sortedNeighbors[I Ordered, G Graph[I]](g G, u core.VertexDesc[I]) []I {
	var out []I
	for e := range g.Edges(u) {
		out = append(out, core.TargetId[I](g, e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TriangleCount counts triangles {u,v,w} with u < v < w (under I's total
// order) by, for each vertex u and each neighbor v > u, merge-
// intersecting u's and v's sorted adjacency lists for common neighbors
// w > v. Each vertex's adjacency list is sorted once, not once per pair.
func TriangleCount[I Ordered, G Graph[I]](g G) int {
	adj := map[I][]I{}
	for u := range g.Vertices() {
		adj[core.VertexId[I](u)] = sortedNeighbors[I](g, u)
	}

	count := 0
	for u := range g.Vertices() {
		uid := core.VertexId[I](u)
		for _, v := range adj[uid] {
			if !(uid < v) {
				continue
			}
			count += mergeIntersectAbove(adj[uid], adj[v], v)
		}
	}
	return count
}

// mergeIntersectAbove counts elements common to both sorted slices that
// are strictly greater than floor.
func mergeIntersectAbove[I Ordered](a, b []I, floor I) int {
	i, j := 0, 0
	for i < len(a) && a[i] <= floor {
		i++
	}
	for j < len(b) && b[j] <= floor {
		j++
	}
	n := 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}
