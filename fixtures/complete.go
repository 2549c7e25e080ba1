package fixtures

import "github.com/stdgraph/graphkit/containers/dense"

// MinCompleteVertices is the smallest n Complete accepts.
const MinCompleteVertices = 1

// Complete builds the complete simple graph K_n: vertices 0..n-1, every
// unordered pair {i,j} with i<j connected once (mirrored j->i as well
// when the configured topology is undirected, the default). Grounded on
// builder.Complete (impl_complete.go).
func Complete(n int, opts ...Option) *dense.Graph[struct{}, float64, struct{}] {
	if n < MinCompleteVertices {
		panic("fixtures.Complete: n must be >= 1")
	}
	cfg := newConfig(opts...)
	g := dense.New[struct{}, float64, struct{}](n, cfg.directed, cfg.bidir)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j, cfg.weightFn(cfg.rng))
		}
	}
	return g
}
