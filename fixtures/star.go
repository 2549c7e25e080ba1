package fixtures

import "github.com/stdgraph/graphkit/containers/dense"

// MinStarVertices is the smallest n Star accepts.
const MinStarVertices = 2

// Star builds a star with hub vertex 0 and n-1 leaves 1..n-1, spokes
// hub->leaf in ascending leaf order. Grounded on builder.Star
// (impl_star.go), with the hub at index 0 rather than a fixed string
// ID "Center" since dense ids are the container's own index space.
func Star(n int, opts ...Option) *dense.Graph[struct{}, float64, struct{}] {
	if n < MinStarVertices {
		panic("fixtures.Star: n must be >= 2")
	}
	cfg := newConfig(opts...)
	g := dense.New[struct{}, float64, struct{}](n, cfg.directed, cfg.bidir)
	for leaf := 1; leaf < n; leaf++ {
		g.AddEdge(0, leaf, cfg.weightFn(cfg.rng))
	}
	return g
}
