package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stdgraph/graphkit/analysis"
	"github.com/stdgraph/graphkit/containers/dense"
	"github.com/stdgraph/graphkit/core"
)

// triangleGraph builds an undirected triangle 0-1-2 plus a pendant 2-3,
// so TriangleCount has exactly one triangle to find and one edge that
// must not contribute.
func triangleGraph() *dense.Graph[struct{}, struct{}, struct{}] {
	g := dense.New[struct{}, struct{}, struct{}](4, false, true)
	g.AddEdge(0, 1, struct{}{})
	g.AddEdge(1, 2, struct{}{})
	g.AddEdge(2, 0, struct{}{})
	g.AddEdge(2, 3, struct{}{})
	return g
}

func TestTriangleCount(t *testing.T) {
	g := triangleGraph()
	assert.Equal(t, 1, analysis.TriangleCount[int](g))
}

func TestTriangleCountEmpty(t *testing.T) {
	g := dense.New[struct{}, struct{}, struct{}](3, false, true)
	g.AddEdge(0, 1, struct{}{})
	assert.Equal(t, 0, analysis.TriangleCount[int](g))
}

func TestJaccard(t *testing.T) {
	// 0 and 1 share neighbor 2 only; 0's neighbors = {1,2}, 1's = {0,2}.
	g := triangleGraph()
	v0, _ := core.FindVertex[int](g, 0)
	v1, _ := core.FindVertex[int](g, 1)
	sim := analysis.Jaccard[int](g, v0, v1)
	// N(0)={1,2}, N(1)={0,2} -> intersection {2}, union {0,1,2} -> 1/3.
	assert.InDelta(t, 1.0/3.0, sim, 1e-9)
}

func TestJaccardNoOverlap(t *testing.T) {
	g := dense.New[struct{}, struct{}, struct{}](4, true, false)
	g.AddEdge(0, 1, struct{}{})
	g.AddEdge(2, 3, struct{}{})
	v0, _ := core.FindVertex[int](g, 0)
	v2, _ := core.FindVertex[int](g, 2)
	assert.Equal(t, 0.0, analysis.Jaccard[int](g, v0, v2))
}

func TestAllPairsJaccard(t *testing.T) {
	g := triangleGraph()
	pairs := analysis.AllPairsJaccard[int](g)
	for key, sim := range pairs {
		assert.Greater(t, sim, 0.0)
		assert.Less(t, key[0], key[1])
	}
}

func TestMaximalIndependentSet(t *testing.T) {
	// Path 0-1-2-3-4: a greedy ascending-id MIS admits 0, rejects 1
	// (neighbor of 0), admits 2, rejects 3, admits 4.
	g := dense.New[struct{}, struct{}, struct{}](5, false, true)
	g.AddEdge(0, 1, struct{}{})
	g.AddEdge(1, 2, struct{}{})
	g.AddEdge(2, 3, struct{}{})
	g.AddEdge(3, 4, struct{}{})

	mis := analysis.MaximalIndependentSet[int](g)
	assert.Equal(t, map[int]bool{0: true, 2: true, 4: true}, mis)

	// Verify independence: no two admitted vertices are adjacent.
	for u := range mis {
		ud, _ := core.FindVertex[int](g, u)
		for e := range g.Edges(ud) {
			v := core.TargetId[int](g, e)
			assert.False(t, mis[v] && v != u, "admitted neighbors %d-%d", u, v)
		}
	}
}

func TestLabelPropagationConvergesWithinCommunity(t *testing.T) {
	// Two disjoint triangles {0,1,2} and {3,4,5}: since nothing connects
	// the two, each must settle onto one shared label, and the two
	// labels must differ from each other.
	g := dense.New[struct{}, struct{}, struct{}](6, false, true)
	g.AddEdge(0, 1, struct{}{})
	g.AddEdge(1, 2, struct{}{})
	g.AddEdge(2, 0, struct{}{})
	g.AddEdge(3, 4, struct{}{})
	g.AddEdge(4, 5, struct{}{})
	g.AddEdge(5, 3, struct{}{})

	labels := analysis.LabelPropagation[int](g, 20)
	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[1], labels[2])
	assert.Equal(t, labels[3], labels[4])
	assert.Equal(t, labels[4], labels[5])
	assert.NotEqual(t, labels[0], labels[3])
}

func TestLabelPropagationIsolatedVertexKeepsOwnLabel(t *testing.T) {
	g := dense.New[struct{}, struct{}, struct{}](1, false, true)
	labels := analysis.LabelPropagation[int](g, 5)
	assert.Equal(t, 0, labels[0])
}
