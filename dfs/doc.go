// Package dfs implements depth-first search as a lazy search view
// (VerticesDFS / EdgesDFS) and a visitor-driven algorithm (Run), plus
// the view-backed topological sort built on top of it, over any graph
// satisfying core.VertexRanger + core.EdgeRanger.
//
// The view is an iterative stack-of-frames walk (no native recursion, so
// cancellation and single-stepping are both just "pop/push the frame
// slice"), colored white/gray/black. The stack is explicit data rather
// than the Go call stack because the view must be steppable one record
// at a time: cooperative cancellation has to be able to pause
// mid-expansion of a vertex's edge list, which a recursive walk cannot
// do without continuation-passing.
package dfs
