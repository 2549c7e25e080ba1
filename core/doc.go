// Package core defines the customization-point protocol (CPO) that couples
// an arbitrary user graph container to the rest of graphkit: vertex/edge
// descriptors, the small optional interfaces each CPO resolves against, and
// the structured records views return.
//
// core does not ship a graph type. It ships the *contract* a container must
// satisfy — in whole or in part — to be usable by views/, bfs/, dfs/,
// dijkstra/, bellmanford/, components/, prim_kruskal/ and analysis/. A
// container that only implements VertexRanger and EdgeRanger already works
// everywhere, just slower than one that also implements the fast-path
// optional interfaces (VertexCounter, EdgeCounter, VertexFinder, ...).
//
// Resolution order. Most CPOs in this package follow the same two-tier
// shape: try an optional interface on the concrete graph type first, fall
// back to a default computed from VertexRanger/EdgeRanger otherwise (the
// value accessors and the in-edge CPOs have no default tier, and
// VerticesOf has a third). The
// tiers are written out explicitly in each function body (see NumVertices,
// NumEdges, Degree, FindVertex) rather than hidden behind reflection, so the
// resolution is debuggable by reading the function.
package core
