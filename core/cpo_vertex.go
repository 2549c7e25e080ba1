package core

import "iter"

// VertexRanger is the mandatory minimum every graph-side CPO falls back to:
// a way to enumerate all vertex descriptors. Every other vertex-side CPO in
// this file has a default expressible purely in terms of VertexRanger (and,
// where noted, EdgeRanger).
type VertexRanger[I Id] interface {
	// Vertices enumerates every vertex descriptor in the graph. Order is
	// whatever the container's own storage order is; callers must not
	// depend on a specific order beyond what the container documents.
	Vertices() iter.Seq[VertexDesc[I]]
}

// VertexCounter is the fast-path override for NumVertices: a container
// that knows its vertex count in O(1) (e.g. len(slice)) implements this to
// skip the O(V) counting fallback.
type VertexCounter interface {
	NumVertices() int
}

// VertexFinder is the fast-path override for FindVertex: a container with
// random access (dense index ids) or a map lookup (sparse ids) implements
// this to skip the O(V) linear scan fallback.
type VertexFinder[I Id] interface {
	FindVertex(id I) (VertexDesc[I], bool)
}

// VertexValuer exposes the stored vertex payload (VV) through a
// descriptor. A graph with no vertex value type (VV absent, i.e.
// instantiated as struct{}) simply does not implement this interface;
// VertexValue then returns a KindPrecondition Error rather than silently
// returning a zero value, so a missing mandatory operation is a hard
// error at the call site.
type VertexValuer[I Id, VV any] interface {
	VertexValue(u VertexDesc[I]) VV
}

// GraphValuer exposes the graph-level payload (GV). Optional; see
// VertexValuer's absence note, which applies identically here.
type GraphValuer[GV any] interface {
	GraphValue() GV
}

// Partitioner lets a container group its vertices into caller-defined
// partitions. Absent a Partitioner, every vertex is partition 0 and the
// graph has exactly one partition — see PartitionId / NumPartitions.
type Partitioner[I Id] interface {
	PartitionId(u VertexDesc[I]) int
	NumPartitions() int
}

// PartitionVertexRanger is the fast-path override for VerticesOf: a
// container that stores its partitions as distinct sub-ranges implements
// this to enumerate one partition directly instead of filtering the whole
// vertex range through PartitionId.
type PartitionVertexRanger[I Id] interface {
	VerticesOf(pid int) iter.Seq[VertexDesc[I]]
}

// NumVertices returns the number of vertices in g.
//
// Tier 1: g implements VertexCounter (O(1)).
// Tier 2 (default): count Vertices() once (O(V)).
func NumVertices[I Id, G VertexRanger[I]](g G) int {
	if c, ok := any(g).(VertexCounter); ok {
		return c.NumVertices()
	}
	n := 0
	for range g.Vertices() {
		n++
	}
	return n
}

// FindVertex resolves id to a descriptor.
//
// Tier 1: g implements VertexFinder[I] (O(1) or O(log V) depending on the
// container's native lookup).
// Tier 2 (default): linear scan of Vertices() (O(V)).
func FindVertex[I Id, G VertexRanger[I]](g G, id I) (VertexDesc[I], bool) {
	if f, ok := any(g).(VertexFinder[I]); ok {
		return f.FindVertex(id)
	}
	for d := range g.Vertices() {
		if d.Id() == id {
			return d, true
		}
	}
	var zero VertexDesc[I]
	return zero, false
}

// VertexId returns the identifier a vertex descriptor names. The
// descriptor already carries its id (see VertexDesc), so this is always
// tier "data member directly" — there is no container-side override tier
// because nothing a container could say would be cheaper than reading the
// field the descriptor already holds.
func VertexId[I Id](u VertexDesc[I]) I { return u.Id() }

// VertexValue returns the stored payload for u.
//
// Tier 1: g implements VertexValuer[I,VV].
// No default tier exists: a graph with no vertex values simply never
// implements VertexValuer, and calling VertexValue on one is a caller
// error reported as a KindPrecondition core.Error.
func VertexValue[I Id, VV any, G any](g G, u VertexDesc[I]) (VV, error) {
	if v, ok := any(g).(VertexValuer[I, VV]); ok {
		return v.VertexValue(u), nil
	}
	var zero VV
	return zero, Precondition("VertexValue", ErrMissingValuer)
}

// GraphValue returns the stored graph-level payload.
//
// Tier 1: g implements GraphValuer[GV].
// No default tier exists, for the same reason as VertexValue.
func GraphValue[GV any, G any](g G) (GV, error) {
	if v, ok := any(g).(GraphValuer[GV]); ok {
		return v.GraphValue(), nil
	}
	var zero GV
	return zero, Precondition("GraphValue", ErrMissingValuer)
}

// PartitionId returns the partition u belongs to.
//
// Tier 1: g implements Partitioner[I].
// Tier 2 (default): 0 — every vertex is in the single default partition.
func PartitionId[I Id, G any](g G, u VertexDesc[I]) int {
	if p, ok := any(g).(Partitioner[I]); ok {
		return p.PartitionId(u)
	}
	return 0
}

// NumPartitions returns the number of partitions g declares.
//
// Tier 1: g implements Partitioner[I].
// Tier 2 (default): 1.
func NumPartitions[I Id, G any](g G) int {
	if p, ok := any(g).(Partitioner[I]); ok {
		return p.NumPartitions()
	}
	return 1
}

// VerticesOf enumerates the vertices of partition pid.
//
// Tier 1: g implements PartitionVertexRanger[I] (direct sub-range).
// Tier 2: g implements Partitioner[I] — filter Vertices() by PartitionId.
// Tier 3 (default): the whole graph is one partition, so pid 0 is
// Vertices() and any other pid is empty.
func VerticesOf[I Id, G VertexRanger[I]](g G, pid int) iter.Seq[VertexDesc[I]] {
	if r, ok := any(g).(PartitionVertexRanger[I]); ok {
		return r.VerticesOf(pid)
	}
	if p, ok := any(g).(Partitioner[I]); ok {
		return func(yield func(VertexDesc[I]) bool) {
			for u := range g.Vertices() {
				if p.PartitionId(u) != pid {
					continue
				}
				if !yield(u) {
					return
				}
			}
		}
	}
	if pid != 0 {
		return func(func(VertexDesc[I]) bool) {}
	}
	return g.Vertices()
}

// NumVerticesOf returns the number of vertices in partition pid.
//
// Tier 1 (via VerticesOf's own cascade, when restricted counting is
// actually needed): count VerticesOf(g, pid) once.
// Fast path: with no Partitioner, pid 0 is the whole graph, so the
// count is NumVertices(g) and any other pid is 0.
func NumVerticesOf[I Id, G VertexRanger[I]](g G, pid int) int {
	if _, ok := any(g).(Partitioner[I]); !ok {
		if _, ok := any(g).(PartitionVertexRanger[I]); !ok {
			if pid != 0 {
				return 0
			}
			return NumVertices[I](g)
		}
	}
	n := 0
	for range VerticesOf[I](g, pid) {
		n++
	}
	return n
}
