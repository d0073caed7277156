// Package lvlath is a half-edge polygon mesh library: a single oriented
// 2-manifold (or, optionally, non-manifold) surface representation plus the
// mutation algorithms that keep it consistent.
//
// 🚀 What is lvlath/halfedge?
//
//	A focused, zero-dependency topology core that brings together:
//		• Index-addressed vertices, half-edges and faces (no pointers)
//		• Incremental construction: AddVertex, AddFace
//		• Tombstone deletion: DeleteVertex, DeleteEdge, DeleteFace
//		• Compaction: CleanUp renumbers every cross-reference
//		• Eight lazy circulators for topological traversal
//		• A manifold / non-manifold policy switch
//
// ✨ Why choose lvlath/halfedge?
//
//   - Minimal API, explicit invariants, no geometry baked in
//   - Pure Go — no cgo, no hidden deps (testify is a test-only dependency)
//   - Index handles, not pointers — cheap to copy, stable until CleanUp
//   - Extensible — TriangleMesh/QuadMesh/PolygonMesh via composition, not inheritance
//
// Everything lives in a single subpackage:
//
//	halfedge/ — Mesh, the four index kinds, circulators, AddFace, DeleteFace, CleanUp
//
// Quick ASCII example — two triangles sharing an edge:
//
//	    v0───v1
//	     \   /\
//	      \ /  \
//	       v2───v3
//
//	m := halfedge.NewMesh[halfedge.NoData, halfedge.NoData, halfedge.NoData, halfedge.NoData]()
//	v0, v1, v2, v3 := m.AddVertex(), m.AddVertex(), m.AddVertex(), m.AddVertex()
//	m.AddFace([]halfedge.VertexIndex{v0, v1, v2})
//	m.AddFace([]halfedge.VertexIndex{v1, v3, v2})
//
// Non-goals: no geometric predicates, no spatial indexing, no thread-safe
// concurrent mutation, no undo log, no persistence. See halfedge/doc.go for
// the full invariant list.
//
//	go get github.com/katalvlaran/lvlath-halfedge/halfedge
package lvlath
