package fixtures

import "github.com/stdgraph/graphkit/containers/dense"

// MinRandomSparseVertices is the smallest n RandomSparse accepts.
const MinRandomSparseVertices = 1

// RandomSparse samples an Erdos-Renyi-like graph over n vertices with
// independent edge probability p: undirected iterates unordered pairs
// {i,j}, i<j; directed iterates ordered pairs (i,j), i != j. Requires
// WithSeed for 0<p<1; p==0 and p==1 are deterministic regardless of
// seed, so no RNG is needed there.
func RandomSparse(n int, p float64, opts ...Option) *dense.Graph[struct{}, float64, struct{}] {
	if n < MinRandomSparseVertices {
		panic("fixtures.RandomSparse: n must be >= 1")
	}
	if p < 0 || p > 1 {
		panic("fixtures.RandomSparse: p must be in [0,1]")
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		panic("fixtures.RandomSparse: WithSeed is required for 0<p<1")
	}
	g := dense.New[struct{}, float64, struct{}](n, cfg.directed, cfg.bidir)

	include := func() bool {
		if cfg.rng == nil {
			return p == 1
		}
		return cfg.rng.Float64() <= p
	}

	if cfg.directed {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if include() {
					g.AddEdge(i, j, cfg.weightFn(cfg.rng))
				}
			}
		}
		return g
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if include() {
				g.AddEdge(i, j, cfg.weightFn(cfg.rng))
			}
		}
	}
	return g
}
