package fixtures

import "github.com/stdgraph/graphkit/containers/dense"

// MinPartitionSize is the smallest size either bipartite side accepts.
const MinPartitionSize = 1

// CompleteBipartite builds the complete bipartite graph K_{n1,n2}: left
// partition ids 0..n1-1, right partition ids n1..n1+n2-1, every cross
// pair connected in (left asc, right asc) order. Grounded on
// builder.CompleteBipartite (impl_bipartite.go), with the two
// partitions laid out as contiguous index ranges of the single dense
// id space instead of separate string prefixes.
func CompleteBipartite(n1, n2 int, opts ...Option) *dense.Graph[struct{}, float64, struct{}] {
	if n1 < MinPartitionSize || n2 < MinPartitionSize {
		panic("fixtures.CompleteBipartite: n1 and n2 must each be >= 1")
	}
	cfg := newConfig(opts...)
	g := dense.New[struct{}, float64, struct{}](n1+n2, cfg.directed, cfg.bidir)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			g.AddEdge(i, n1+j, cfg.weightFn(cfg.rng))
		}
	}
	return g
}
