// Package views implements the four basic lazy adaptors: incidence,
// neighbors, edgelist and vertexlist. Each is a
// plain function returning an iter.Seq (or iter.Seq for the *V variant
// carrying a computed value) built in O(1); the cost is paid lazily, one
// step per range iteration, as the graph's Vertices()/Edges() sequences
// are pulled.
//
// Each of the three edge-shaped views (incidence, neighbors, edgelist)
// comes in an out-edge and an in-edge flavor. The in-edge flavor is how
// bidirectional traversal is expressed here without duplicating the view
// body: InIncidence/InNeighbors/InEdgeList require core.InEdgeRanger and
// simply walk InEdges instead of Edges.
package views
