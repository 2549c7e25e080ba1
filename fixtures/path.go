package fixtures

import "github.com/stdgraph/graphkit/containers/dense"

// MinPathVertices is the smallest n Path accepts.
const MinPathVertices = 2

// Path builds the simple path P_n: vertices 0..n-1, edges (i-1,i) for
// i=1..n-1 in ascending order.
func Path(n int, opts ...Option) *dense.Graph[struct{}, float64, struct{}] {
	if n < MinPathVertices {
		panic("fixtures.Path: n must be >= 2")
	}
	cfg := newConfig(opts...)
	g := dense.New[struct{}, float64, struct{}](n, cfg.directed, cfg.bidir)
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i, cfg.weightFn(cfg.rng))
	}
	return g
}
