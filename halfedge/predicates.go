// File: predicates.go
// Role: read-only invariant queries (C5): IsDeleted*, IsIsolated, IsBoundary*, IsManifold*.
//
// All deletion is observed through a single sentinel field per element kind
// (see types.go doc comment); isolated
// and deleted vertices share that representation and are disambiguated only
// by the caller's allocation history.

package halfedge

// IsDeletedVertex reports whether v has been tombstoned (or never connected
// — the two share the sentinel outgoing half-edge representation).
func (m *Mesh[VD, HD, ED, FD]) IsDeletedVertex(v VertexIndex) bool {
	return !m.OutgoingHalfEdge(v).IsValid()
}

// IsDeletedHalfEdge reports whether h has been tombstoned.
func (m *Mesh[VD, HD, ED, FD]) IsDeletedHalfEdge(h HalfEdgeIndex) bool {
	return !m.TerminatingVertex(h).IsValid()
}

// IsDeletedEdge reports whether either half-edge of e has been tombstoned.
func (m *Mesh[VD, HD, ED, FD]) IsDeletedEdge(e EdgeIndex) bool {
	return m.IsDeletedHalfEdge(EdgeToHalfEdge(e, 0)) || m.IsDeletedHalfEdge(EdgeToHalfEdge(e, 1))
}

// IsDeletedFace reports whether f has been tombstoned.
func (m *Mesh[VD, HD, ED, FD]) IsDeletedFace(f FaceIndex) bool {
	return !m.InnerHalfEdge(f).IsValid()
}

// IsIsolated reports whether v has no incident half-edge. This has the same
// representation as IsDeletedVertex; an isolated vertex that was never
// connected carries this state from birth and remains addressable.
func (m *Mesh[VD, HD, ED, FD]) IsIsolated(v VertexIndex) bool {
	return !m.OutgoingHalfEdge(v).IsValid()
}

// IsBoundaryHalfEdge reports whether h has no incident face.
func (m *Mesh[VD, HD, ED, FD]) IsBoundaryHalfEdge(h HalfEdgeIndex) bool {
	return !m.Face(h).IsValid()
}

// IsBoundaryVertex reports whether v's outgoing half-edge is a boundary half-edge.
func (m *Mesh[VD, HD, ED, FD]) IsBoundaryVertex(v VertexIndex) bool {
	return m.IsBoundaryHalfEdge(m.OutgoingHalfEdge(v))
}

// IsBoundaryEdge reports whether at least one half-edge of e is boundary.
func (m *Mesh[VD, HD, ED, FD]) IsBoundaryEdge(e EdgeIndex) bool {
	h := EdgeToHalfEdge(e, 0)
	return m.IsBoundaryHalfEdge(h) || m.IsBoundaryHalfEdge(m.Opposite(h))
}

// IsBoundaryFace reports whether f touches the mesh boundary, per mode:
// CheckVertices (default) looks at incident vertices, CheckEdges looks at
// the face's outer (opposite) half-edges.
func (m *Mesh[VD, HD, ED, FD]) IsBoundaryFace(f FaceIndex, mode BoundaryCheckMode) bool {
	start := m.InnerHalfEdge(f)
	h := start
	for {
		switch mode {
		case CheckEdges:
			if m.IsBoundaryHalfEdge(m.Opposite(h)) {
				return true
			}
		default:
			if m.IsBoundaryVertex(m.TerminatingVertex(h)) {
				return true
			}
		}
		h = m.Next(h)
		if h == start {
			return false
		}
	}
}

// IsManifoldVertex reports whether v's star has at most one boundary
// half-edge. Trivially true under the manifold policy, since AddFace and
// DeleteFace never allow more than one fan to form there.
func (m *Mesh[VD, HD, ED, FD]) IsManifoldVertex(v VertexIndex) bool {
	if m.manifold {
		return true
	}
	if m.IsIsolated(v) {
		return true
	}

	boundaryCount := 0
	start := m.OutgoingHalfEdge(v)
	h := start
	for {
		if m.IsBoundaryHalfEdge(h) {
			boundaryCount++
			if boundaryCount > 1 {
				return false
			}
		}
		h = rotateCCW(m, h)
		if h == start {
			break
		}
	}

	return true
}

// IsManifold reports whether every vertex in the mesh is manifold.
func (m *Mesh[VD, HD, ED, FD]) IsManifold() bool {
	if m.manifold {
		return true
	}
	for v := 0; v < len(m.vertices); v++ {
		vi := VertexIndex(v)
		if m.IsDeletedVertex(vi) {
			continue
		}
		if !m.IsManifoldVertex(vi) {
			return false
		}
	}

	return true
}
