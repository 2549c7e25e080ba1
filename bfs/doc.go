// Package bfs implements breadth-first search as both a lazy search view
// (VerticesBFS / EdgesBFS) and a visitor-driven algorithm (Run), over
// any graph satisfying core.VertexRanger + core.EdgeRanger.
//
// Both the view and the algorithm share the same queue-based stepping
// rule: pop one vertex, push its unvisited neighbors, mark them visited,
// advance depth when a level boundary is crossed. The view adds
// cooperative cancellation (search.Signal) on top; the algorithm adds
// visitor dispatch instead.
package bfs
