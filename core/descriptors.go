package core

// Id is the constraint every vertex identifier type must satisfy: total
// equality so descriptors and maps keyed by id behave correctly. Containers
// that additionally want sorted-adjacency algorithms (triangle count)
// constrain further at the call site (see analysis.Ordered).
type Id interface {
	comparable
}

// VertexDesc is an opaque, copyable handle to a vertex. It is the only
// handle views and algorithms exchange; they never see a container's native
// iterator or storage position.
//
// Two descriptors compare equal iff they name the same vertex of the same
// graph — guaranteed here because a descriptor's only state is the id
// itself, and the id-uniqueness invariant (vertex_id(g,u)==vertex_id(g,v) =>
// u==v) makes id equality exactly vertex equality. A container wanting to
// carry a cheaper O(1) position (e.g. a dense index) does so by also
// implementing VertexFinder so FindVertex skips the linear scan; the
// descriptor itself stays just the id.
type VertexDesc[I Id] struct {
	id I
}

// NewVertexDesc constructs a descriptor for id. Containers call this from
// their Vertices()/FindVertex() implementations; user code normally obtains
// descriptors from those, not by constructing one directly.
func NewVertexDesc[I Id](id I) VertexDesc[I] { return VertexDesc[I]{id: id} }

// Id returns the vertex identifier this descriptor names. This is the
// default (and, in this implementation, only) tier of the vertex_id CPO —
// see VertexId.
func (d VertexDesc[I]) Id() I { return d.id }

// EdgeDesc is an opaque, copyable handle to a directed half-edge. It
// bundles the source and target ids plus a disambiguating position, so
// parallel edges between the same two vertices remain distinguishable.
//
// Storing both endpoints directly (rather than only a source + an opaque
// position that must be re-resolved through the container) means every
// descriptor answers TargetId/SourceId from its own fields, with no
// container round-trip. Containers that want to override target/source
// resolution anyway implement EdgeTargetOverrider / EdgeSourceOverrider;
// see cpo_edge.go.
type EdgeDesc[I Id] struct {
	source I
	target I
	pos    int
}

// NewEdgeDesc constructs an edge descriptor. pos disambiguates parallel
// edges sharing (source, target); containers assign it (e.g. the index of
// the edge within the source vertex's adjacency list).
func NewEdgeDesc[I Id](source, target I, pos int) EdgeDesc[I] {
	return EdgeDesc[I]{source: source, target: target, pos: pos}
}

// Pos returns the container-assigned disambiguator for this edge among any
// parallel edges sharing the same (source, target) pair.
func (d EdgeDesc[I]) Pos() int { return d.pos }

// RawTarget returns the target id the descriptor was constructed with,
// bypassing any EdgeTargetOverrider. Containers implementing
// EdgeTargetOverrider use this to compute their override relative to the
// descriptor's own data, rather than duplicating lookup logic.
func (d EdgeDesc[I]) RawTarget() I { return d.target }

// RawSource is RawTarget's source-side counterpart.
func (d EdgeDesc[I]) RawSource() I { return d.source }
