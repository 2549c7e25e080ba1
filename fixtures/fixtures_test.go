package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stdgraph/graphkit/core"
	"github.com/stdgraph/graphkit/fixtures"
)

func TestPathShape(t *testing.T) {
	g := fixtures.Path(4)
	assert.Equal(t, 4, core.NumVertices[int](g))
	assert.Equal(t, 6, core.NumEdges[int](g)) // undirected, 3 edges mirrored

	v0, _ := core.FindVertex[int](g, 0)
	assert.Equal(t, 1, core.Degree[int](g, v0))
	v1, _ := core.FindVertex[int](g, 1)
	assert.Equal(t, 2, core.Degree[int](g, v1))
}

func TestPathRejectsTooFewVertices(t *testing.T) {
	assert.Panics(t, func() { fixtures.Path(1) })
}

func TestCycleShape(t *testing.T) {
	g := fixtures.Cycle(5)
	assert.Equal(t, 5, core.NumVertices[int](g))
	for v := range g.Vertices() {
		assert.Equal(t, 2, core.Degree[int](g, v))
	}
}

func TestCompleteShape(t *testing.T) {
	g := fixtures.Complete(4)
	assert.Equal(t, 4, core.NumVertices[int](g))
	for v := range g.Vertices() {
		assert.Equal(t, 3, core.Degree[int](g, v))
	}
}

func TestStarShape(t *testing.T) {
	g := fixtures.Star(5)
	hub, _ := core.FindVertex[int](g, 0)
	assert.Equal(t, 4, core.Degree[int](g, hub))
	leaf, _ := core.FindVertex[int](g, 1)
	assert.Equal(t, 1, core.Degree[int](g, leaf))
}

func TestCompleteBipartiteShape(t *testing.T) {
	g := fixtures.CompleteBipartite(2, 3)
	require.Equal(t, 5, core.NumVertices[int](g))
	left0, _ := core.FindVertex[int](g, 0)
	assert.Equal(t, 3, core.Degree[int](g, left0))
	right0, _ := core.FindVertex[int](g, 2)
	assert.Equal(t, 2, core.Degree[int](g, right0))
}

func TestRandomSparseDeterministicAtExtremes(t *testing.T) {
	full := fixtures.RandomSparse(5, 1)
	assert.Equal(t, 20, core.NumEdges[int](full)) // C(5,2)*2 mirrored

	empty := fixtures.RandomSparse(5, 0)
	assert.Equal(t, 0, core.NumEdges[int](empty))
}

func TestRandomSparseRequiresSeedForFractionalP(t *testing.T) {
	assert.Panics(t, func() { fixtures.RandomSparse(5, 0.5) })
}

func TestRandomSparseReproducibleForFixedSeed(t *testing.T) {
	a := fixtures.RandomSparse(10, 0.5, fixtures.WithSeed(42))
	b := fixtures.RandomSparse(10, 0.5, fixtures.WithSeed(42))
	assert.Equal(t, core.NumEdges[int](a), core.NumEdges[int](b))
}

func TestWeightedFixtureUsesConfiguredWeightFn(t *testing.T) {
	g := fixtures.Path(3, fixtures.WithWeightFn(fixtures.ConstantWeightFn(7)))
	v0, _ := core.FindVertex[int](g, 0)
	for e := range g.Edges(v0) {
		w, err := core.EdgeValue[int, float64](g, e)
		require.NoError(t, err)
		assert.Equal(t, 7.0, w)
	}
}
