// Package halfedge implements the topological core of a half-edge polygon
// mesh: an oriented 2-manifold (or, optionally, non-manifold) surface held
// as three index-addressed element arrays — vertices, half-edges, faces —
// plus an optional parallel payload array per element kind.
//
// The Mesh type supports incremental construction (AddVertex, AddFace),
// tombstone deletion (DeleteVertex, DeleteEdge, DeleteFace) and compaction
// (CleanUp), alongside eight lazy circulators for topological traversal and
// a handful of read-only predicates (IsBoundary, IsManifold, IsIsolated).
//
// Invariants (hold outside the mutating methods themselves):
//
//	1. len(halfEdges) is even; opposites are h and h^1.
//	2. For every non-deleted half-edge h: Next(Prev(h)) == h and Prev(Next(h)) == h.
//	3. For every non-deleted h: TerminatingVertex(Prev(h)) == OriginatingVertex(h).
//	4. For every non-deleted face f: following Next from InnerHalfEdge(f)
//	   returns to it in >=3 steps, and every half-edge in that cycle has Face == f.
//	5. For every non-deleted, non-isolated vertex v: OutgoingHalfEdge(v) is
//	   valid and originates at v. In manifold mode it is a boundary half-edge
//	   whenever v is a boundary vertex.
//	6. An edge is boundary iff at least one of its half-edges has no face.
//	7. Deletion is observable only through tombstone sentinels; physical
//	   removal happens only in CleanUp.
//	8. Payload arrays, when enabled, always match element-array length.
//
// Index handles (VertexIndex, HalfEdgeIndex, EdgeIndex, FaceIndex) are
// borrow-free and stable across additions, but are invalidated by CleanUp.
//
// Concurrency: the package offers no locking. Mutations are not reentrant —
// a circulator held across a mutation has undefined target indices. External
// synchronization is the caller's responsibility if a Mesh is shared across
// goroutines.
package halfedge
