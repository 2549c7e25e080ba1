// Package components implements connectivity analyses over any graph
// satisfying core.VertexRanger + core.EdgeRanger: weak (undirected
// reachability) and strong (Kosaraju) connected components, plus
// articulation points and biconnected components via a single iterative
// DFS with discovery/low-link arrays.
package components
