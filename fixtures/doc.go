// Package fixtures provides deterministic topology constructors over
// containers/dense that build the canonical graph shapes (paths, cycles,
// complete graphs, stars, bipartite graphs, sparse random graphs) in one
// call each. The algorithm packages' own tests build their small graphs
// directly; only fixtures_test.go calls these constructors.
//
// Every constructor follows the same contract: stable vertex-index
// order, stable edge-emission order, and deterministic weights for a
// fixed seed. Configuration is functional options (Option mutating a
// config, WithSeed/WithWeightFn). Each fixture is a single all-at-once
// factory function, since dense.New requires its vertex count up
// front.
package fixtures
