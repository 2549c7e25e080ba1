// Package bellmanford implements the Bellman-Ford shortest-path
// algorithm (bellman_ford_shortest_paths / _distances), permitting
// negative weights and detecting a reachable negative cycle.
//
// It shares the visitor/weight-function shape of dijkstra.ShortestPaths,
// but the relaxation loop walks views.EdgeList instead of a heap: V-1
// full passes with early exit once a pass relaxes nothing, then one
// extra pass whose sole purpose is cycle detection.
package bellmanford

import (
	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/dijkstra"
	"github.com/stdgraph/graphkit/views"
	"github.com/stdgraph/graphkit/visitor"
)

// Graph is the bound Bellman-Ford requires.
type Graph[I core.Id] interface {
	core.VertexRanger[I]
	core.EdgeRanger[I]
}

// Result is the output of ShortestPaths: distances, predecessors, and —
// if a negative cycle was detected — the source id of the last relaxing
// edge of the extra pass. The witness is deliberately the source, not
// the target, of that edge; FindNegativeCycle accounts for it possibly
// lying outside the cycle itself.
type Result[I core.Id, W dijkstra.Weight] struct {
	Distances     map[I]W
	Predecessor   map[I]I
	NegativeCycle I
	HasCycle      bool
}

// ShortestPaths runs Bellman-Ford from one or more sources.
func ShortestPaths[I core.Id, W dijkstra.Weight, G Graph[I]](g G, w dijkstra.WeightFunc[I, W], visitorv any, sources ...core.VertexDesc[I]) Result[I, W] {
	return run[I](g, w, visitorv, true, sources)
}

// ShortestDistances is ShortestPaths without predecessor tracking: the
// returned Result carries distances (and the negative-cycle witness)
// only, with Predecessor nil — FindNegativeCycle needs a Result from
// ShortestPaths, not from here.
func ShortestDistances[I core.Id, W dijkstra.Weight, G Graph[I]](g G, w dijkstra.WeightFunc[I, W], visitorv any, sources ...core.VertexDesc[I]) Result[I, W] {
	return run[I](g, w, visitorv, false, sources)
}

func run[I core.Id, W dijkstra.Weight, G Graph[I]](g G, w dijkstra.WeightFunc[I, W], visitorv any, trackPred bool, sources []core.VertexDesc[I]) Result[I, W] {
	dist := map[I]W{}
	var pred map[I]I
	if trackPred {
		pred = map[I]I{}
	}

	for u := range g.Vertices() {
		visitor.Dispatch[visitor.Initializer[I]](visitorv, func(v visitor.Initializer[I]) {
			v.OnInitializeVertex(u)
		})
	}
	for _, s := range sources {
		dist[core.VertexId[I](s)] = 0
	}

	n := core.NumVertices[I](g)
	for k := 0; k < n-1; k++ {
		relaxedAny := false
		for rec := range views.EdgeList[I](g) {
			if relaxOne(rec, w, dist, pred, visitorv) {
				relaxedAny = true
			}
		}
		if !relaxedAny {
			break
		}
	}

	var result Result[I, W]
	result.Distances = dist
	result.Predecessor = pred

	for rec := range views.EdgeList[I](g) {
		du, known := dist[rec.Source]
		if !known {
			continue
		}
		nd := du + w(rec.Desc)
		if cur, ok := dist[rec.Target]; !ok || nd < cur {
			result.HasCycle = true
			result.NegativeCycle = rec.Source
		}
	}

	return result
}

func relaxOne[I core.Id, W dijkstra.Weight](
	rec core.SourcedEdgeData[I], w dijkstra.WeightFunc[I, W],
	dist map[I]W, pred map[I]I, visitorv any,
) bool {
	visitor.Dispatch[visitor.EdgeExaminer[I]](visitorv, func(v visitor.EdgeExaminer[I]) {
		v.OnExamineEdge(rec.Desc)
	})
	du, known := dist[rec.Source]
	if !known {
		return false
	}
	nd := du + w(rec.Desc)
	if cur, ok := dist[rec.Target]; !ok || nd < cur {
		dist[rec.Target] = nd
		if pred != nil {
			pred[rec.Target] = rec.Source
		}
		visitor.Dispatch[visitor.EdgeRelaxed[I]](visitorv, func(v visitor.EdgeRelaxed[I]) {
			v.OnEdgeRelaxed(rec.Desc)
		})
		return true
	}
	visitor.Dispatch[visitor.EdgeNotRelaxed[I]](visitorv, func(v visitor.EdgeNotRelaxed[I]) {
		v.OnEdgeNotRelaxed(rec.Desc)
	})
	return false
}

// FindNegativeCycle follows the predecessor chain from r.NegativeCycle
// until it revisits a vertex, yielding the cycle's vertices in reverse
// order (the order the chain was walked in). Call only when r.HasCycle.
func FindNegativeCycle[I core.Id, W dijkstra.Weight](r Result[I, W]) []I {
	if !r.HasCycle {
		return nil
	}
	// Step back V times first to guarantee landing inside the cycle
	// regardless of how far the witness is from it.
	v := r.NegativeCycle
	for i := 0; i < len(r.Predecessor); i++ {
		p, ok := r.Predecessor[v]
		if !ok {
			break
		}
		v = p
	}

	start := v
	cycle := []I{start}
	for {
		p, ok := r.Predecessor[v]
		if !ok || p == start {
			break
		}
		cycle = append(cycle, p)
		v = p
	}
	return cycle
}
