// Package dijkstra implements Dijkstra's shortest-path algorithm
// (dijkstra_shortest_paths / dijkstra_shortest_distances) over any graph
// satisfying core.VertexRanger + core.EdgeRanger, given a caller-supplied
// weight function.
//
// The priority queue is a lazy-decrease-key min-heap via container/heap:
// a new entry is pushed on every relaxation and stale pops are discarded
// against a visited set, rather than using heap.Fix-based decrease-key.
// An upfront edge pre-scan fails fast on a negative weight before any
// relaxation occurs.
package dijkstra

import (
	"container/heap"

	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/visitor"
)

// Graph is the bound Dijkstra requires.
type Graph[I core.Id] interface {
	core.VertexRanger[I]
	core.EdgeRanger[I]
}

// Weight is the numeric constraint on edge weights: ordered (for the
// heap and comparator) and summable (for the default combiner).
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// WeightFunc computes the weight of an edge.
type WeightFunc[I core.Id, W Weight] func(e core.EdgeDesc[I]) W

// Result is the output of ShortestPaths: distances and, if requested,
// predecessors, keyed by vertex id. Unreached vertices are absent from
// both maps. ShortestDistances leaves Predecessor nil.
type Result[I core.Id, W Weight] struct {
	Distances   map[I]W
	Predecessor map[I]I
}

// Options customizes the relaxation step. The zero value means the
// standard shortest-path semantics: Less compares candidate distances
// (default a < b) and Combine extends a path by one edge (default d + w).
type Options[W Weight] struct {
	Less    func(a, b W) bool
	Combine func(d, w W) W
}

func (o Options[W]) normalized() Options[W] {
	if o.Less == nil {
		o.Less = func(a, b W) bool { return a < b }
	}
	if o.Combine == nil {
		o.Combine = func(d, w W) W { return d + w }
	}
	return o
}

type heapItem[I core.Id, W Weight] struct {
	id   I
	dist W
}

type nodePQ[I core.Id, W Weight] struct {
	items []heapItem[I, W]
	less  func(a, b W) bool
}

func (pq nodePQ[I, W]) Len() int           { return len(pq.items) }
func (pq nodePQ[I, W]) Less(i, j int) bool { return pq.less(pq.items[i].dist, pq.items[j].dist) }
func (pq nodePQ[I, W]) Swap(i, j int)      { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }
func (pq *nodePQ[I, W]) Push(x any)        { pq.items = append(pq.items, x.(heapItem[I, W])) }
func (pq *nodePQ[I, W]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]
	return item
}

// ShortestPaths runs Dijkstra from one or more sources, dispatching
// visitor events as it goes. It returns a *core.Error (KindInvariant,
// wrapping core.ErrNegativeWeight) if any edge's weight is negative,
// detected by an upfront edgelist scan before any relaxation occurs.
func ShortestPaths[I core.Id, W Weight, G Graph[I]](g G, w WeightFunc[I, W], visitorv any, sources ...core.VertexDesc[I]) (Result[I, W], error) {
	return ShortestPathsWith[I](g, w, Options[W]{}, visitorv, sources...)
}

// ShortestDistances is ShortestPaths without predecessor tracking: the
// returned Result carries distances only (Predecessor is nil), for
// callers who never reconstruct paths.
func ShortestDistances[I core.Id, W Weight, G Graph[I]](g G, w WeightFunc[I, W], visitorv any, sources ...core.VertexDesc[I]) (Result[I, W], error) {
	return run[I](g, w, Options[W]{}.normalized(), visitorv, false, sources)
}

// ShortestPathsWith is ShortestPaths with a caller-supplied comparator
// and combiner (see Options).
func ShortestPathsWith[I core.Id, W Weight, G Graph[I]](g G, w WeightFunc[I, W], opts Options[W], visitorv any, sources ...core.VertexDesc[I]) (Result[I, W], error) {
	return run[I](g, w, opts.normalized(), visitorv, true, sources)
}

func run[I core.Id, W Weight, G Graph[I]](g G, w WeightFunc[I, W], opts Options[W], visitorv any, trackPred bool, sources []core.VertexDesc[I]) (Result[I, W], error) {
	for u := range g.Vertices() {
		for e := range g.Edges(u) {
			if w(e) < 0 {
				return Result[I, W]{}, core.Invariant("ShortestPaths", core.ErrNegativeWeight)
			}
		}
	}

	dist := map[I]W{}
	var pred map[I]I
	if trackPred {
		pred = map[I]I{}
	}
	visited := map[I]bool{}

	for u := range g.Vertices() {
		visitor.Dispatch[visitor.Initializer[I]](visitorv, func(v visitor.Initializer[I]) {
			v.OnInitializeVertex(u)
		})
	}

	pq := &nodePQ[I, W]{less: opts.Less}
	heap.Init(pq)
	for _, s := range sources {
		id := core.VertexId[I](s)
		dist[id] = 0
		heap.Push(pq, heapItem[I, W]{id: id, dist: 0})
		visitor.Dispatch[visitor.Discoverer[I]](visitorv, func(v visitor.Discoverer[I]) {
			v.OnDiscoverVertex(s)
		})
	}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(heapItem[I, W])
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		u, ok := core.FindVertex[I](g, item.id)
		if !ok {
			continue
		}
		visitor.Dispatch[visitor.Examiner[I]](visitorv, func(v visitor.Examiner[I]) {
			v.OnExamineVertex(u)
		})

		for e := range g.Edges(u) {
			visitor.Dispatch[visitor.EdgeExaminer[I]](visitorv, func(v visitor.EdgeExaminer[I]) {
				v.OnExamineEdge(e)
			})
			vid := core.TargetId[I](g, e)
			if visited[vid] {
				continue
			}
			newDist := opts.Combine(item.dist, w(e))
			curDist, known := dist[vid]
			if !known || opts.Less(newDist, curDist) {
				dist[vid] = newDist
				if trackPred {
					pred[vid] = item.id
				}
				heap.Push(pq, heapItem[I, W]{id: vid, dist: newDist})
				visitor.Dispatch[visitor.EdgeRelaxed[I]](visitorv, func(v visitor.EdgeRelaxed[I]) {
					v.OnEdgeRelaxed(e)
				})
				// Discovery fires once, on the first relaxation that enters
				// vid into dist; later improvements are relaxations only.
				if !known {
					if td, found := core.FindVertex[I](g, vid); found {
						visitor.Dispatch[visitor.Discoverer[I]](visitorv, func(v visitor.Discoverer[I]) {
							v.OnDiscoverVertex(td)
						})
					}
				}
			} else {
				visitor.Dispatch[visitor.EdgeNotRelaxed[I]](visitorv, func(v visitor.EdgeNotRelaxed[I]) {
					v.OnEdgeNotRelaxed(e)
				})
			}
		}

		visitor.Dispatch[visitor.Finisher[I]](visitorv, func(v visitor.Finisher[I]) {
			v.OnFinishVertex(u)
		})
	}

	return Result[I, W]{Distances: dist, Predecessor: pred}, nil
}

// PathTo follows r.Predecessor from v back to a source, returning the
// path in source-to-v order. ok is false if v was never reached.
func PathTo[I core.Id, W Weight](r Result[I, W], v I) (path []I, ok bool) {
	if _, reached := r.Distances[v]; !reached {
		return nil, false
	}
	for {
		path = append([]I{v}, path...)
		p, hasPred := r.Predecessor[v]
		if !hasPred {
			return path, true
		}
		v = p
	}
}
