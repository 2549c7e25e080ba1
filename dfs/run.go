package dfs

import (
	"iter"

	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/visitor"
)

// Run is the visitor-driven DFS algorithm: same structure as the search
// views but driven by dispatch to visitorv rather than iterator
// consumption. Edge classification (tree / back / forward-or-cross) is
// observable via OnTreeEdge / OnBackEdge / OnForwardOrCrossEdge.
func Run[I core.Id, G Graph[I]](g G, visitorv any, sources ...core.VertexDesc[I]) {
	clr := map[I]color{}

	for u := range g.Vertices() {
		visitor.Dispatch[visitor.Initializer[I]](visitorv, func(v visitor.Initializer[I]) {
			v.OnInitializeVertex(u)
		})
	}

	roots := sources
	if len(roots) == 0 {
		for u := range g.Vertices() {
			roots = append(roots, u)
		}
	}

	for _, root := range roots {
		if clr[core.VertexId[I](root)] != white {
			continue
		}
		runOne[I](g, visitorv, clr, root)
	}
}

func runOne[I core.Id, G Graph[I]](g G, visitorv any, clr map[I]color, root core.VertexDesc[I]) {
	var stack []frame[I]
	push := func(d core.VertexDesc[I]) {
		next, stop := iter.Pull(g.Edges(d))
		stack = append(stack, frame[I]{desc: d, next: next, stop: stop})
		clr[core.VertexId[I](d)] = gray
		visitor.Dispatch[visitor.Discoverer[I]](visitorv, func(v visitor.Discoverer[I]) {
			v.OnDiscoverVertex(d)
		})
		visitor.Dispatch[visitor.Examiner[I]](visitorv, func(v visitor.Examiner[I]) {
			v.OnExamineVertex(d)
		})
	}
	push(root)
	visitor.Dispatch[visitor.Starter[I]](visitorv, func(v visitor.Starter[I]) {
		v.OnStartVertex(root)
	})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		e, ok := top.next()
		if !ok {
			visitor.Dispatch[visitor.Finisher[I]](visitorv, func(v visitor.Finisher[I]) {
				v.OnFinishVertex(top.desc)
			})
			clr[core.VertexId[I](top.desc)] = black
			top.stop()
			stack = stack[:len(stack)-1]
			continue
		}

		visitor.Dispatch[visitor.EdgeExaminer[I]](visitorv, func(v visitor.EdgeExaminer[I]) {
			v.OnExamineEdge(e)
		})
		tid := core.TargetId[I](g, e)

		switch clr[tid] {
		case white:
			visitor.Dispatch[visitor.TreeEdger[I]](visitorv, func(v visitor.TreeEdger[I]) {
				v.OnTreeEdge(e)
			})
			td, found := core.FindVertex[I](g, tid)
			if !found {
				continue
			}
			push(td)
		case gray:
			visitor.Dispatch[visitor.BackEdger[I]](visitorv, func(v visitor.BackEdger[I]) {
				v.OnBackEdge(e)
			})
		case black:
			visitor.Dispatch[visitor.ForwardOrCrossEdger[I]](visitorv, func(v visitor.ForwardOrCrossEdger[I]) {
				v.OnForwardOrCrossEdge(e)
			})
		}
	}
}
