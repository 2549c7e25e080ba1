// Package graphkit is a container-agnostic graph framework: a
// customization-point protocol (core), a descriptor model (core), a
// family of lazy views (views, bfs, dfs), and a fixed vocabulary of
// classical graph algorithms (bfs, dfs, dijkstra, bellmanford,
// prim_kruskal, components, analysis), all generic over the caller's
// own graph representation.
//
// A graph never has to be graphkit's own type. Implement the small set
// of interfaces in core (at minimum, enumerate vertices and, per
// vertex, its outgoing edges) and every view and algorithm in this
// module runs against it. Two conforming containers — containers/dense
// (index-backed, integer ids) and containers/sparse (map-backed,
// string ids) — exist to exercise that contract end to end and to give
// fixtures/ and the test suites something concrete to build against;
// neither is "the" graph type.
//
// Package layout:
//
//	core/           — customization-point protocol, descriptors, error taxonomy
//	views/          — lazy incidence/neighbor/edge-list/vertex-list views
//	search/         — cooperative cancellation vocabulary (Signal, Visited)
//	visitor/        — one interface per traversal event, plus Dispatch
//	bfs/, dfs/      — breadth-/depth-first views, visitor-driven Run, topological sort
//	dijkstra/       — single-source shortest paths (non-negative weights)
//	bellmanford/    — single-source shortest paths with negative-cycle detection
//	prim_kruskal/   — minimum (or maximum, via a custom comparator) spanning trees
//	components/     — weak/strong connectivity, articulation points, biconnected components
//	analysis/       — triangle count, Jaccard similarity, maximal independent set, label propagation
//	containers/     — conforming graph containers (dense, sparse)
//	fixtures/       — deterministic topology builders over containers/dense
package graphkit
