// Package search defines the small shared vocabulary every traversal view
// (bfs.VerticesBFS/EdgesBFS, dfs.VerticesDFS/EdgesDFS, dfs.View)
// uses for cooperative cancellation: a Signal a caller passes to Cancel to
// influence further iteration, and the NumVisited accessor every such view
// exposes.
package search

// Signal is passed to a search view's Cancel method to influence further
// iteration.
type Signal int

const (
	// Continue requests normal continued iteration; it is the zero value
	// so a view that is never cancelled behaves as if Continue were set.
	Continue Signal = iota
	// CancelBranch requests that the vertex currently being examined not
	// have its descendants expanded; already-enqueued/already-stacked
	// peers continue normally. On a flat (non-tree-shaped) view such as
	// topological sort, CancelBranch is treated identically to CancelAll.
	CancelBranch
	// CancelAll ends iteration immediately; no further records are
	// yielded.
	CancelAll
)

// Visited is implemented by every search view: a running count of
// vertices dequeued (BFS), discovered (DFS) or yielded (dfs.View) so far,
// incremented by stepping the view, not
// by constructing it.
type Visited interface {
	NumVisited() int
}
