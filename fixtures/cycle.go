package fixtures

import "github.com/stdgraph/graphkit/containers/dense"

// MinCycleVertices is the smallest n Cycle accepts.
const MinCycleVertices = 3

// Cycle builds the n-vertex simple cycle C_n: vertices 0..n-1, edges
// i -> (i+1)%n for i=0..n-1. Grounded on builder.Cycle (impl_cycle.go).
func Cycle(n int, opts ...Option) *dense.Graph[struct{}, float64, struct{}] {
	if n < MinCycleVertices {
		panic("fixtures.Cycle: n must be >= 3")
	}
	cfg := newConfig(opts...)
	g := dense.New[struct{}, float64, struct{}](n, cfg.directed, cfg.bidir)
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n, cfg.weightFn(cfg.rng))
	}
	return g
}
