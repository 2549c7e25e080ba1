package fixtures

import "math/rand"

// Option customizes a fixture constructor's behavior, mutating a config
// before the topology is built.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	weightFn WeightFn
	directed bool
	bidir    bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{weightFn: DefaultWeightFn, bidir: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds a deterministic RNG for any WeightFn that consults it
// (e.g. UniformWeightFn). Without this option the RNG is nil and
// WeightFn implementations fall back to a constant weight.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the default constant-weight policy.
func WithWeightFn(fn WeightFn) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.weightFn = fn
		}
	}
}

// Directed makes the constructed graph directed (no mirrored reverse
// edge per pair) instead of the default undirected topology.
func Directed() Option {
	return func(cfg *config) { cfg.directed = true }
}

// NoInEdges disables the bidirectional reverse index, for tests that
// specifically want to exercise a container advertising no InEdges.
func NoInEdges() Option {
	return func(cfg *config) { cfg.bidir = false }
}
