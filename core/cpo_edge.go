package core

import "iter"

// EdgeRanger is the mandatory minimum for edge-side CPOs: a way to
// enumerate the outgoing half-edges of a vertex.
type EdgeRanger[I Id] interface {
	// Edges enumerates the outgoing edge descriptors of u. Order is
	// whatever the container's own edge-store order is.
	Edges(u VertexDesc[I]) iter.Seq[EdgeDesc[I]]
}

// InEdgeRanger is implemented only by bidirectional containers: one that
// can enumerate the half-edges terminating at v without a transpose scan.
// Its mere presence is how a graph advertises bidirectional support —
// InEdges, InDegree and Source are all only callable (no default tier)
// when the concrete graph implements this.
type InEdgeRanger[I Id] interface {
	InEdges(v VertexDesc[I]) iter.Seq[EdgeDesc[I]]
}

// EdgeCounter is the fast-path override for NumEdges (whole-graph edge
// count). Containers that track a running total implement this to skip
// the O(V) degree-summation fallback.
type EdgeCounter interface {
	NumEdges() int
}

// VertexEdgeCounter is the fast-path override for per-vertex NumEdges
// (== Degree). Containers whose adjacency storage is sized implement this.
type VertexEdgeCounter[I Id] interface {
	NumEdgesAt(u VertexDesc[I]) int
}

// VertexEdgeFinder is the fast-path override for FindVertexEdge: a
// container whose adjacency storage supports direct lookup (a sorted or
// hash set of targets) implements this to skip the O(deg) linear scan.
type VertexEdgeFinder[I Id] interface {
	FindVertexEdge(u VertexDesc[I], v I) (EdgeDesc[I], bool)
}

// EdgeValuer exposes the stored edge payload (EV). Optional, same
// absence contract as VertexValuer.
type EdgeValuer[I Id, EV any] interface {
	EdgeValue(e EdgeDesc[I]) EV
}

// EdgeTargetOverrider lets a container resolve an edge's target id
// itself instead of TargetId reading the id EdgeDesc was constructed
// with: a single override tier ahead of the struct-field default.
type EdgeTargetOverrider[I Id] interface {
	TargetId(e EdgeDesc[I]) I
}

// EdgeSourceOverrider is EdgeTargetOverrider's source-side counterpart.
type EdgeSourceOverrider[I Id] interface {
	SourceId(e EdgeDesc[I]) I
}

// EdgesById composes FindVertex and Edges: the edges(g, uid) form of the
// edges CPO. ok is false when uid names no vertex; the returned sequence
// is then nil and must not be ranged.
func EdgesById[I Id, G interface {
	VertexRanger[I]
	EdgeRanger[I]
}](g G, uid I) (iter.Seq[EdgeDesc[I]], bool) {
	u, ok := FindVertex[I](g, uid)
	if !ok {
		return nil, false
	}
	return g.Edges(u), true
}

// NumEdges returns the total number of edges in g.
//
// Tier 1: g implements EdgeCounter (O(1)).
// Tier 2 (default): sum Degree(g,u) over every vertex (O(V+E)).
func NumEdges[I Id, G interface {
	VertexRanger[I]
	EdgeRanger[I]
}](g G) int {
	if c, ok := any(g).(EdgeCounter); ok {
		return c.NumEdges()
	}
	n := 0
	for u := range g.Vertices() {
		n += Degree[I](g, u)
	}
	return n
}

// Degree returns the out-degree of u, which is also the per-vertex edge
// count.
//
// Tier 1: g implements VertexEdgeCounter[I] (O(1)).
// Tier 2 (default): count Edges(g,u) (O(deg)).
func Degree[I Id, G EdgeRanger[I]](g G, u VertexDesc[I]) int {
	if c, ok := any(g).(VertexEdgeCounter[I]); ok {
		return c.NumEdgesAt(u)
	}
	n := 0
	for range g.Edges(u) {
		n++
	}
	return n
}

// HasEdge reports whether g has at least one edge anywhere.
//
// Default (only tier): NumEdges(g) > 0.
func HasEdge[I Id, G interface {
	VertexRanger[I]
	EdgeRanger[I]
}](g G) bool {
	return NumEdges[I](g) > 0
}

// FindVertexEdge looks for an edge from u to the vertex identified by v.
//
// Tier 1: g implements VertexEdgeFinder[I] (O(1) or O(log deg)).
// Tier 2 (default): linear scan of Edges(g,u) (O(deg)).
func FindVertexEdge[I Id, G EdgeRanger[I]](g G, u VertexDesc[I], v I) (EdgeDesc[I], bool) {
	if f, ok := any(g).(VertexEdgeFinder[I]); ok {
		return f.FindVertexEdge(u, v)
	}
	for e := range g.Edges(u) {
		if TargetId[I](g, e) == v {
			return e, true
		}
	}
	var zero EdgeDesc[I]
	return zero, false
}

// ContainsEdge reports whether an edge from u to v exists.
//
// Default (only tier): FindVertexEdge(g,u,v) found something.
func ContainsEdge[I Id, G EdgeRanger[I]](g G, u VertexDesc[I], v I) bool {
	_, ok := FindVertexEdge[I](g, u, v)
	return ok
}

// TargetId returns the id of the vertex e points to.
//
// Tier 1 (override): g implements EdgeTargetOverrider[I].
// Tier 2 (default): the id e was constructed with (EdgeDesc.target).
func TargetId[I Id, G any](g G, e EdgeDesc[I]) I {
	if o, ok := any(g).(EdgeTargetOverrider[I]); ok {
		return o.TargetId(e)
	}
	return e.target
}

// SourceId returns the id of the vertex e originates from.
//
// Tier 1 (override): g implements EdgeSourceOverrider[I].
// Tier 2 (default): the id e was constructed with (EdgeDesc.source).
func SourceId[I Id, G any](g G, e EdgeDesc[I]) I {
	if o, ok := any(g).(EdgeSourceOverrider[I]); ok {
		return o.SourceId(e)
	}
	return e.source
}

// EdgeValue returns the stored payload for e.
//
// Tier 1: g implements EdgeValuer[I,EV].
// No default tier exists (see VertexValue).
func EdgeValue[I Id, EV any, G any](g G, e EdgeDesc[I]) (EV, error) {
	if v, ok := any(g).(EdgeValuer[I, EV]); ok {
		return v.EdgeValue(e), nil
	}
	var zero EV
	return zero, Precondition("EdgeValue", ErrMissingValuer)
}

// InEdges enumerates the half-edges terminating at v.
//
// Only tier: g implements InEdgeRanger[I]. There is no default — the
// bidirectional advertisement is the interface implementation itself,
// enforced at compile time by this function's constraint.
func InEdges[I Id, G InEdgeRanger[I]](g G, v VertexDesc[I]) iter.Seq[EdgeDesc[I]] {
	return g.InEdges(v)
}

// InDegree returns the in-degree of v.
//
// Only tier: count InEdges(g,v) (O(in-deg)). No override interface is
// consulted, so the count is O(in-deg) on every container.
func InDegree[I Id, G InEdgeRanger[I]](g G, v VertexDesc[I]) int {
	n := 0
	for range g.InEdges(v) {
		n++
	}
	return n
}

// Source returns the descriptor of e's source vertex, resolved through
// FindVertex. Only meaningful (and only callable) on a bidirectional
// graph, since it exists to let InEdges-driven traversal get back to a
// full VertexDesc for the "dual side" neighbor.
func Source[I Id, G interface {
	VertexRanger[I]
	InEdgeRanger[I]
}](g G, e EdgeDesc[I]) (VertexDesc[I], bool) {
	return FindVertex[I](g, SourceId[I](g, e))
}
