package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stdgraph/graphkit/components"
	"github.com/stdgraph/graphkit/containers/dense"
)

// pathGraph builds the undirected path 0-1-2-3, stored bidirectionally.
func pathGraph() *dense.Graph[struct{}, struct{}, struct{}] {
	g := dense.New[struct{}, struct{}, struct{}](4, false, true)
	g.AddEdge(0, 1, struct{}{})
	g.AddEdge(1, 2, struct{}{})
	g.AddEdge(2, 3, struct{}{})
	return g
}

func TestArticulationPointsPath(t *testing.T) {
	g := pathGraph()
	cuts, _ := components.Articulation[int](g)

	got := map[int]bool{}
	for id, is := range cuts {
		if is {
			got[id] = true
		}
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, got)
}

// TestArticulationBiconnectedDuality checks that a vertex is an
// articulation point iff it appears in more than one (non-trivial)
// biconnected component.
func TestArticulationBiconnectedDuality(t *testing.T) {
	g := pathGraph()
	cuts, bicomps := components.Articulation[int](g)

	membership := map[int]int{}
	for _, bc := range bicomps {
		if len(bc.Vertices) < 2 {
			continue
		}
		for _, v := range bc.Vertices {
			membership[v]++
		}
	}

	for id, count := range membership {
		isCut := cuts[id]
		assert.Equal(t, count > 1, isCut, "vertex %d: membership=%d cut=%v", id, count, isCut)
	}
}

func TestWeakComponents(t *testing.T) {
	g := dense.New[struct{}, struct{}, struct{}](5, true, false)
	g.AddEdge(0, 1, struct{}{})
	g.AddEdge(1, 0, struct{}{})
	g.AddEdge(3, 4, struct{}{})
	g.AddEdge(4, 3, struct{}{})

	labels := components.Weak[int](g)
	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[3], labels[4])
	assert.NotEqual(t, labels[0], labels[2])
	assert.NotEqual(t, labels[0], labels[3])

	summaries := components.Summarize[int](g, labels)
	assert.Equal(t, 3, len(summaries))
	assert.Equal(t, 2, summaries[labels[0]].Size)
	assert.Equal(t, 0, summaries[labels[0]].Representative)
	assert.Equal(t, 1, summaries[labels[2]].Size)
}

func TestStrongComponents(t *testing.T) {
	// Two 2-cycles: 0<->1 and 2<->3, plus a one-way bridge 1->2.
	g := dense.New[struct{}, struct{}, struct{}](4, true, false)
	g.AddEdge(0, 1, struct{}{})
	g.AddEdge(1, 0, struct{}{})
	g.AddEdge(1, 2, struct{}{})
	g.AddEdge(2, 3, struct{}{})
	g.AddEdge(3, 2, struct{}{})

	labels := components.Strong[int](g)
	require.Equal(t, labels[0], labels[1])
	require.Equal(t, labels[2], labels[3])
	assert.NotEqual(t, labels[0], labels[2])
}
