// Package prim_kruskal implements Kruskal's and Prim's minimum (or, via a
// custom comparator, maximum) spanning tree algorithms over any
// undirected graph satisfying core.VertexRanger + core.EdgeRanger.
//
// Kruskal sorts all edges once (sort.SliceStable, for deterministic
// tie-breaking) and unions endpoints with a path-compressed,
// union-by-rank disjoint-set; Prim grows from a seed vertex with a
// container/heap min-heap of candidate edges, skipping stale entries
// whose far endpoint is already in the tree. Both take a caller-supplied
// weight function and comparator, so a comparator swap turns either
// algorithm into a maximum spanning tree.
package prim_kruskal

import (
	"container/heap"
	"sort"

	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/dijkstra"
	"github.com/stdgraph/graphkit/views"
)

// Graph is the bound both algorithms require.
type Graph[I core.Id] interface {
	core.VertexRanger[I]
	core.EdgeRanger[I]
}

// MSTEdge is one edge of a returned spanning tree.
type MSTEdge[I core.Id, W dijkstra.Weight] struct {
	Source I
	Target I
	Desc   core.EdgeDesc[I]
	Weight W
}

// Less is the default comparator: ascending weight (minimum spanning
// tree). Pass a comparator returning the opposite sense to build a
// maximum spanning tree instead.
func Less[W dijkstra.Weight](a, b W) bool { return a < b }

type dsu[I core.Id] struct {
	parent map[I]I
	rank   map[I]int
}

func newDSU[I core.Id](ids []I) *dsu[I] {
	d := &dsu[I]{parent: make(map[I]I, len(ids)), rank: make(map[I]int, len(ids))}
	for _, id := range ids {
		d.parent[id] = id
	}
	return d
}

func (d *dsu[I]) find(u I) I {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

func (d *dsu[I]) union(u, v I) {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}
	if d.rank[ru] < d.rank[rv] {
		d.parent[ru] = rv
	} else {
		d.parent[rv] = ru
		if d.rank[ru] == d.rank[rv] {
			d.rank[ru]++
		}
	}
}

// Kruskal computes a minimum (or, with a non-default comparator, maximum)
// spanning forest of g: edges are consumed in comparator order and
// accepted when they connect two different components. Returns the
// accepted edges, the number of components the forest spans (k in
// "V - k edges"), and the total weight.
func Kruskal[I core.Id, W dijkstra.Weight, G Graph[I]](g G, w dijkstra.WeightFunc[I, W], less func(a, b W) bool) ([]MSTEdge[I, W], int, W) {
	if less == nil {
		less = Less[W]
	}

	var ids []I
	for u := range g.Vertices() {
		ids = append(ids, core.VertexId[I](u))
	}

	var edges []MSTEdge[I, W]
	for rec := range views.EdgeList[I](g) {
		if rec.Source == rec.Target {
			continue
		}
		edges = append(edges, MSTEdge[I, W]{Source: rec.Source, Target: rec.Target, Desc: rec.Desc, Weight: w(rec.Desc)})
	}
	sort.SliceStable(edges, func(i, j int) bool { return less(edges[i].Weight, edges[j].Weight) })

	d := newDSU(ids)
	var mst []MSTEdge[I, W]
	var total W
	for _, e := range edges {
		if d.find(e.Source) != d.find(e.Target) {
			d.union(e.Source, e.Target)
			mst = append(mst, e)
			total += e.Weight
		}
	}

	components := map[I]bool{}
	for _, id := range ids {
		components[d.find(id)] = true
	}
	return mst, len(components), total
}

type heapEntry[I core.Id, W dijkstra.Weight] struct {
	edge MSTEdge[I, W]
}

type edgePQ[I core.Id, W dijkstra.Weight] struct {
	items []heapEntry[I, W]
	less  func(a, b W) bool
}

func (pq edgePQ[I, W]) Len() int { return len(pq.items) }
func (pq edgePQ[I, W]) Less(i, j int) bool {
	return pq.less(pq.items[i].edge.Weight, pq.items[j].edge.Weight)
}
func (pq edgePQ[I, W]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }
func (pq *edgePQ[I, W]) Push(x any)   { pq.items = append(pq.items, x.(heapEntry[I, W])) }
func (pq *edgePQ[I, W]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]
	return item
}

// Prim grows a minimum (or maximum, with a non-default comparator)
// spanning tree outward from seed. Returns the accepted edges and total
// weight; the tree spans only seed's connected component (a caller
// wanting the full forest across a disconnected graph should call Prim
// once per unvisited seed, mirroring Kruskal's whole-graph scope).
func Prim[I core.Id, W dijkstra.Weight, G Graph[I]](g G, w dijkstra.WeightFunc[I, W], less func(a, b W) bool, seed core.VertexDesc[I]) ([]MSTEdge[I, W], W) {
	if less == nil {
		less = Less[W]
	}

	visited := map[I]bool{core.VertexId[I](seed): true}
	pq := &edgePQ[I, W]{less: less}
	heap.Init(pq)

	pushFrontier := func(u core.VertexDesc[I]) {
		uid := core.VertexId[I](u)
		for e := range g.Edges(u) {
			vid := core.TargetId[I](g, e)
			if !visited[vid] {
				heap.Push(pq, heapEntry[I, W]{edge: MSTEdge[I, W]{Source: uid, Target: vid, Desc: e, Weight: w(e)}})
			}
		}
	}
	pushFrontier(seed)

	var mst []MSTEdge[I, W]
	var total W
	for pq.Len() > 0 {
		entry := heap.Pop(pq).(heapEntry[I, W])
		if visited[entry.edge.Target] {
			continue
		}
		visited[entry.edge.Target] = true
		mst = append(mst, entry.edge)
		total += entry.edge.Weight

		td, ok := core.FindVertex[I](g, entry.edge.Target)
		if !ok {
			continue
		}
		pushFrontier(td)
	}
	return mst, total
}
