package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stdgraph/graphkit/bellmanford"
	"github.com/stdgraph/graphkit/containers/dense"
	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/dijkstra"
)

func weightOf(g *dense.Graph[struct{}, int, struct{}]) dijkstra.WeightFunc[int, int] {
	return func(e core.EdgeDesc[int]) int {
		v, _ := core.EdgeValue[int, int](g, e)
		return v
	}
}

// negCycle builds {0,1,2} with edges (0->1,1) (1->2,1) (2->0,-3): the
// cycle's total weight is -1.
func negCycle() *dense.Graph[struct{}, int, struct{}] {
	g := dense.New[struct{}, int, struct{}](3, true, false)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 0, -3)
	return g
}

func TestNegativeCycleDetection(t *testing.T) {
	g := negCycle()
	src, _ := core.FindVertex[int](g, 0)

	res := bellmanford.ShortestPaths[int, int](g, weightOf(g), nil, src)
	require.True(t, res.HasCycle)

	cycle := bellmanford.FindNegativeCycle[int, int](res)
	require.Len(t, cycle, 3)
	assert.ElementsMatch(t, []int{0, 1, 2}, cycle)

	weight := 0
	for i, u := range cycle {
		next := cycle[(i+1)%len(cycle)]
		// The cycle is reported in reverse order, so the stored edge runs
		// next -> u.
		ud, _ := core.FindVertex[int](g, next)
		e, ok := core.FindVertexEdge[int](g, ud, u)
		require.True(t, ok)
		w, err := core.EdgeValue[int, int](g, e)
		require.NoError(t, err)
		weight += w
	}
	assert.Equal(t, -1, weight)
}

// TestDistancesWithoutCycle checks that, absent a negative cycle,
// distances match the hand-computed shortest paths.
func TestDistancesWithoutCycle(t *testing.T) {
	g := dense.New[struct{}, int, struct{}](3, true, false)
	g.AddEdge(0, 1, 4)
	g.AddEdge(0, 2, 1)
	g.AddEdge(2, 1, 1)
	src, _ := core.FindVertex[int](g, 0)

	res := bellmanford.ShortestPaths[int, int](g, weightOf(g), nil, src)
	require.False(t, res.HasCycle)
	assert.Equal(t, 0, res.Distances[0])
	assert.Equal(t, 2, res.Distances[1]) // 0->2->1 = 1+1
	assert.Equal(t, 1, res.Distances[2])
}

func TestShortestDistancesOmitsPredecessors(t *testing.T) {
	g := dense.New[struct{}, int, struct{}](3, true, false)
	g.AddEdge(0, 1, 4)
	g.AddEdge(0, 2, 1)
	g.AddEdge(2, 1, 1)
	src, _ := core.FindVertex[int](g, 0)

	res := bellmanford.ShortestDistances[int, int](g, weightOf(g), nil, src)
	require.False(t, res.HasCycle)
	assert.Nil(t, res.Predecessor)
	assert.Equal(t, 2, res.Distances[1])
}
