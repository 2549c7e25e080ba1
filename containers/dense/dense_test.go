package dense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stdgraph/graphkit/containers/dense"
	"github.com/stdgraph/graphkit/core"
)

// diamondBidi builds 0->1, 0->2, 1->3, 2->3 directed with the reverse
// index populated.
func diamondBidi() *dense.Graph[string, int, string] {
	g := dense.New[string, int, string](4, true, true)
	g.AddEdge(0, 1, 10)
	g.AddEdge(0, 2, 20)
	g.AddEdge(1, 3, 30)
	g.AddEdge(2, 3, 40)
	return g
}

func TestIdStability(t *testing.T) {
	// A vertex's id is invariant for the lifetime of a descriptor.
	g := diamondBidi()
	var first []int
	for u := range g.Vertices() {
		first = append(first, core.VertexId[int](u))
	}
	var second []int
	for u := range g.Vertices() {
		second = append(second, core.VertexId[int](u))
	}
	assert.Equal(t, first, second)
	assert.Equal(t, []int{0, 1, 2, 3}, first)
}

func TestEdgeEndpointValidity(t *testing.T) {
	// Every edge target resolves through FindVertex.
	g := diamondBidi()
	for u := range g.Vertices() {
		for e := range g.Edges(u) {
			_, ok := core.FindVertex[int](g, core.TargetId[int](g, e))
			require.True(t, ok)
		}
	}
}

func TestDegreeAndSumLaws(t *testing.T) {
	// Degree equals the counted edges; NumEdges equals the degree sum.
	g := diamondBidi()
	sum := 0
	for u := range g.Vertices() {
		n := 0
		for range g.Edges(u) {
			n++
		}
		assert.Equal(t, n, core.Degree[int](g, u))
		sum += n
	}
	assert.Equal(t, sum, core.NumEdges[int](g))
	assert.Equal(t, 4, core.NumEdges[int](g))

	// The same sum law holds over in-edges for a bidirectional graph.
	inSum := 0
	for v := range g.Vertices() {
		inSum += core.InDegree[int](g, v)
	}
	assert.Equal(t, sum, inSum)
}

func TestBidirectionalMirror(t *testing.T) {
	// Every (u,v) out-edge has an in-edge at v whose source is u.
	g := diamondBidi()
	for u := range g.Vertices() {
		uid := core.VertexId[int](u)
		for e := range g.Edges(u) {
			v, ok := core.FindVertex[int](g, core.TargetId[int](g, e))
			require.True(t, ok)
			found := false
			for in := range g.InEdges(v) {
				if core.SourceId[int](g, in) == uid {
					found = true
					break
				}
			}
			assert.True(t, found, "no mirror for %d->%d", uid, core.TargetId[int](g, e))
		}
	}
}

func TestUndirectedStoresHalfEdgePairs(t *testing.T) {
	g := dense.New[struct{}, int, struct{}](2, false, false)
	g.AddEdge(0, 1, 5)
	assert.Equal(t, 2, g.NumEdges())
	u0, _ := core.FindVertex[int](g, 0)
	u1, _ := core.FindVertex[int](g, 1)
	assert.True(t, core.ContainsEdge[int](g, u0, 1))
	assert.True(t, core.ContainsEdge[int](g, u1, 0))
}

func TestValueAccessors(t *testing.T) {
	g := diamondBidi()
	g.SetGraphValue("G")
	g.SetVertexValue(2, "two")

	gv, err := core.GraphValue[string](g)
	require.NoError(t, err)
	assert.Equal(t, "G", gv)

	u, _ := core.FindVertex[int](g, 2)
	vv, err := core.VertexValue[int, string](g, u)
	require.NoError(t, err)
	assert.Equal(t, "two", vv)

	e, ok := core.FindVertexEdge[int](g, u, 3)
	require.True(t, ok)
	ev, err := core.EdgeValue[int, int](g, e)
	require.NoError(t, err)
	assert.Equal(t, 40, ev)
}

func TestEdgeValueThroughInEdgeDescriptor(t *testing.T) {
	// An InEdges-produced descriptor resolves the same stored payload as
	// its out-row twin.
	g := diamondBidi()
	v, _ := core.FindVertex[int](g, 3)
	vals := map[int]int{}
	for e := range g.InEdges(v) {
		ev, err := core.EdgeValue[int, int](g, e)
		require.NoError(t, err)
		vals[core.SourceId[int](g, e)] = ev
	}
	assert.Equal(t, map[int]int{1: 30, 2: 40}, vals)
}

func TestFindVertexBounds(t *testing.T) {
	g := diamondBidi()
	_, ok := g.FindVertex(-1)
	assert.False(t, ok)
	_, ok = g.FindVertex(4)
	assert.False(t, ok)
	d, ok := g.FindVertex(3)
	require.True(t, ok)
	assert.Equal(t, 3, d.Id())
}
