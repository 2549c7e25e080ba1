package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stdgraph/graphkit/containers/dense"
	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/dijkstra"
)

// clrsFig246 builds CLRS figure 24.6: {s,t,x,y,z} indexed 0..4.
// Edges: (s->t,10) (s->y,5) (t->x,1) (t->y,2) (y->t,3) (y->x,9) (y->z,2)
// (x->z,4) (z->x,6) (z->s,7).
func clrsFig246() *dense.Graph[struct{}, int, struct{}] {
	g := dense.New[struct{}, int, struct{}](5, true, false)
	const s, t, x, y, z = 0, 1, 2, 3, 4
	g.AddEdge(s, t, 10)
	g.AddEdge(s, y, 5)
	g.AddEdge(t, x, 1)
	g.AddEdge(t, y, 2)
	g.AddEdge(y, t, 3)
	g.AddEdge(y, x, 9)
	g.AddEdge(y, z, 2)
	g.AddEdge(x, z, 4)
	g.AddEdge(z, x, 6)
	g.AddEdge(z, s, 7)
	return g
}

func weightOf(g *dense.Graph[struct{}, int, struct{}]) dijkstra.WeightFunc[int, int] {
	return func(e core.EdgeDesc[int]) int {
		v, _ := core.EdgeValue[int, int](g, e)
		return v
	}
}

func TestCLRSFigure246(t *testing.T) {
	g := clrsFig246()
	src, _ := core.FindVertex[int](g, 0)

	res, err := dijkstra.ShortestPaths[int, int](g, weightOf(g), nil, src)
	require.NoError(t, err)

	want := map[int]int{0: 0, 1: 8, 2: 9, 3: 5, 4: 7}
	for id, w := range want {
		assert.Equal(t, w, res.Distances[id], "vertex %d", id)
	}
}

// TestPredecessorChainSumsToDistance checks that the predecessor chain
// from z back to s sums to exactly distances[z].
func TestPredecessorChainSumsToDistance(t *testing.T) {
	g := clrsFig246()
	src, _ := core.FindVertex[int](g, 0)
	res, err := dijkstra.ShortestPaths[int, int](g, weightOf(g), nil, src)
	require.NoError(t, err)

	path, ok := dijkstra.PathTo[int, int](res, 4)
	require.True(t, ok)
	require.Equal(t, 0, path[0])
	require.Equal(t, 4, path[len(path)-1])

	sum := 0
	for i := 0; i+1 < len(path); i++ {
		u, _ := core.FindVertex[int](g, path[i])
		for e := range g.Edges(u) {
			if core.TargetId[int](g, e) == path[i+1] {
				v, _ := core.EdgeValue[int, int](g, e)
				sum += v
			}
		}
	}
	assert.Equal(t, res.Distances[4], sum)
}

type discoverCounter struct {
	discovered map[int]int
}

func (c *discoverCounter) OnDiscoverVertex(u core.VertexDesc[int]) {
	c.discovered[u.Id()]++
}

// TestDiscoverFiresOncePerVertex: the CLRS graph improves t's distance
// after its first relaxation (s->t at 10, then y->t at 8), so a
// dispatch tied to every relaxation would fire twice for t.
func TestDiscoverFiresOncePerVertex(t *testing.T) {
	g := clrsFig246()
	src, _ := core.FindVertex[int](g, 0)

	c := &discoverCounter{discovered: map[int]int{}}
	_, err := dijkstra.ShortestPaths[int, int](g, weightOf(g), c, src)
	require.NoError(t, err)

	require.Len(t, c.discovered, 5)
	for id, n := range c.discovered {
		assert.Equal(t, 1, n, "vertex %d", id)
	}
}

func TestShortestDistancesOmitsPredecessors(t *testing.T) {
	g := clrsFig246()
	src, _ := core.FindVertex[int](g, 0)

	res, err := dijkstra.ShortestDistances[int, int](g, weightOf(g), nil, src)
	require.NoError(t, err)
	assert.Nil(t, res.Predecessor)
	assert.Equal(t, 8, res.Distances[1])
	assert.Equal(t, 7, res.Distances[4])
}

func TestLongestPathViaOptions(t *testing.T) {
	// Reversing the comparator and keeping the default combiner turns the
	// relaxation into longest-path search; on a DAG that terminates and
	// picks the heavier route.
	g := dense.New[struct{}, int, struct{}](3, true, false)
	g.AddEdge(0, 1, 2)
	g.AddEdge(0, 2, 1)
	g.AddEdge(1, 2, 5)
	src, _ := core.FindVertex[int](g, 0)

	opts := dijkstra.Options[int]{Less: func(a, b int) bool { return a > b }}
	res, err := dijkstra.ShortestPathsWith[int](g, weightOf(g), opts, nil, src)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Distances[2]) // 0->1->2 beats 0->2
}

func TestNegativeWeightRejected(t *testing.T) {
	g := dense.New[struct{}, int, struct{}](2, true, false)
	g.AddEdge(0, 1, -5)
	src, _ := core.FindVertex[int](g, 0)

	_, err := dijkstra.ShortestPaths[int, int](g, weightOf(g), nil, src)
	require.Error(t, err)
}
