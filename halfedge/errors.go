// File: errors.go
// Role: sentinel errors for the halfedge package.
//
// Error policy (matching lvlath/builder and lvlath/core):
//   - Only sentinel package-level vars are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - AddFace itself never returns an error (it returns an invalid FaceIndex
//     on failure, matching the PCL-derived contract in spec.md §7);
//     AddFaceDiagnose exists alongside it purely to explain *why*.

package halfedge

import "errors"

var (
	// ErrTooFewVertices indicates AddFace was called with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("halfedge: face needs at least 3 vertices")

	// ErrInvalidVertexIndex indicates one of the vertex indices passed to
	// AddFace fails IsValidVertex.
	ErrInvalidVertexIndex = errors.New("halfedge: invalid vertex index")

	// ErrDuplicateVertex indicates the vertex list passed to AddFace repeats an index.
	ErrDuplicateVertex = errors.New("halfedge: duplicate vertex in face")

	// ErrVertexStarClosed indicates a vertex's existing outgoing half-edge is
	// not a boundary half-edge, so no new face may be attached there.
	ErrVertexStarClosed = errors.New("halfedge: vertex star already closed")

	// ErrEdgeSlotOccupied indicates the oriented half-edge between two
	// consecutive face vertices already has an incident face.
	ErrEdgeSlotOccupied = errors.New("halfedge: edge slot already has a face")

	// ErrNonManifoldFan indicates check_topology_2 could not find a free
	// (boundary) half-edge to splice the fan without detaching it.
	ErrNonManifoldFan = errors.New("halfedge: cannot reconnect vertex fan")

	// ErrDataCloudSizeMismatch indicates a SetXDataCloud call was given a
	// slice whose length disagrees with the current element count.
	ErrDataCloudSizeMismatch = errors.New("halfedge: data cloud size mismatch")
)
