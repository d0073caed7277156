// File: delete.go
// Role: C7 — DeleteVertex, DeleteEdge, DeleteFace and the reconnect
// machinery that keeps the surviving mesh consistent around a deletion.
//
// Grounded step for step on deleteVertex/deleteEdge/deleteFace/reconnect/
// reconnectNBNB in the original PCL source (mesh_base.h). Deletion never
// shrinks any slice; it only tombstones elements (see types.go doc comment).
// Call CleanUp to actually reclaim the space.

package halfedge

// DeleteVertex marks v and every face incident to it as deleted. It is a
// no-op if v is already deleted.
func (m *Mesh[VD, HD, ED, FD]) DeleteVertex(v VertexIndex) {
	if m.IsDeletedVertex(v) {
		return
	}

	var faces []FaceIndex
	start := m.OutgoingHalfEdge(v)
	h := start
	for {
		if f := m.Face(h); f.IsValid() {
			faces = append(faces, f)
		}
		h = rotateCCW(m, h)
		if h == start {
			break
		}
	}

	for _, f := range faces {
		m.DeleteFace(f)
	}
}

// DeleteHalfEdge marks h, its opposite, and any incident faces as deleted.
// It is a no-op if h is already deleted.
func (m *Mesh[VD, HD, ED, FD]) DeleteHalfEdge(h HalfEdgeIndex) {
	if m.IsDeletedHalfEdge(h) {
		return
	}

	opp := m.Opposite(h)

	if m.IsBoundaryHalfEdge(h) {
		m.markDeletedHalfEdge(h)
	} else {
		m.DeleteFace(m.Face(h))
	}

	if m.IsBoundaryHalfEdge(opp) {
		m.markDeletedHalfEdge(opp)
	} else {
		m.DeleteFace(m.Face(opp))
	}
}

// DeleteEdge marks both half-edges of e, and any incident faces, as deleted.
// It is a no-op if e is already deleted.
func (m *Mesh[VD, HD, ED, FD]) DeleteEdge(e EdgeIndex) {
	if m.IsDeletedEdge(e) {
		return
	}
	m.DeleteHalfEdge(EdgeToHalfEdge(e, 0))
}

// DeleteFace marks f as deleted. Under the manifold policy this may
// cascade: if removing f would leave a vertex with more than one boundary
// fan, the neighboring faces around that vertex are deleted too, repeating
// until the mesh is manifold again. It is a no-op if f is already deleted.
func (m *Mesh[VD, HD, ED, FD]) DeleteFace(f FaceIndex) {
	if m.IsDeletedFace(f) {
		return
	}

	pending := []FaceIndex{f}
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		pending = m.deleteFaceOnce(cur, pending)
	}
}

// deleteFaceOnce deletes the single face f under either policy, appending
// any faces the manifold cascade must also remove to pending and returning
// the updated slice.
func (m *Mesh[VD, HD, ED, FD]) deleteFaceOnce(f FaceIndex, pending []FaceIndex) []FaceIndex {
	if m.IsDeletedFace(f) {
		return pending
	}

	var innerHE []HalfEdgeIndex
	var isBoundary []bool

	start := m.InnerHalfEdge(f)
	h := start
	for {
		innerHE = append(innerHE, h)
		isBoundary = append(isBoundary, m.IsBoundaryHalfEdge(m.Opposite(h)))
		h = m.Next(h)
		if h == start {
			break
		}
	}

	n := len(innerHE)
	for i := 0; i < n; i++ {
		pending = m.reconnect(innerHE[i], innerHE[(i+1)%n], isBoundary[i], isBoundary[(i+1)%n], pending)
		m.setFace(innerHE[i], InvalidFaceIndex())
	}
	m.markDeletedFace(f)

	return pending
}

// reconnect detaches the shared vertex b between ab and bc from the face
// being deleted, re-threading its fan so the surviving half-edges remain
// consistent. The four branches mirror the four boundary-combination cases
// in the original algorithm.
func (m *Mesh[VD, HD, ED, FD]) reconnect(heAB, heBC HalfEdgeIndex, isBoundaryBA, isBoundaryCB bool, pending []FaceIndex) []FaceIndex {
	heBA := m.Opposite(heAB)
	heCB := m.Opposite(heBC)
	vb := m.TerminatingVertex(heAB)

	switch {
	case isBoundaryBA && isBoundaryCB:
		cbNext := m.Next(heCB)
		if cbNext == heBA {
			m.markDeletedVertex(vb)
		} else {
			m.connectPrevNext(m.Prev(heBA), cbNext)
			m.setOutgoingHalfEdge(vb, cbNext)
		}
		m.markDeletedHalfEdge(heAB)
		m.markDeletedHalfEdge(heBA)

	case isBoundaryBA && !isBoundaryCB:
		m.connectPrevNext(m.Prev(heBA), heBC)
		m.setOutgoingHalfEdge(vb, heBC)
		m.markDeletedHalfEdge(heAB)
		m.markDeletedHalfEdge(heBA)

	case !isBoundaryBA && isBoundaryCB:
		cbNext := m.Next(heCB)
		m.connectPrevNext(heAB, cbNext)
		m.setOutgoingHalfEdge(vb, cbNext)

	default:
		pending = m.reconnectNBNB(heBC, heCB, vb, pending)
	}

	return pending
}

// reconnectNBNB handles the case where neither edge at b is on the
// boundary. Under the manifold policy, if b is already boundary elsewhere
// this deletion would fork its fan in two, so every face around b up to
// the next boundary half-edge is queued for deletion as well. Under the
// non-manifold policy multiple fans are allowed, so only the outgoing
// half-edge is repaired.
func (m *Mesh[VD, HD, ED, FD]) reconnectNBNB(heBC, heCB HalfEdgeIndex, vb VertexIndex, pending []FaceIndex) []FaceIndex {
	if !m.manifold {
		if !m.IsBoundaryVertex(vb) {
			m.setOutgoingHalfEdge(vb, heBC)
		}

		return pending
	}

	if !m.IsBoundaryVertex(vb) {
		m.setOutgoingHalfEdge(vb, heBC)

		return pending
	}

	h := heCB
	for !m.IsBoundaryHalfEdge(h) {
		pending = append(pending, m.Face(h))
		h = m.Opposite(m.Next(h))
	}

	return pending
}

func (m *Mesh[VD, HD, ED, FD]) markDeletedVertex(v VertexIndex) {
	m.setOutgoingHalfEdge(v, InvalidHalfEdgeIndex())
}

func (m *Mesh[VD, HD, ED, FD]) markDeletedHalfEdge(h HalfEdgeIndex) {
	m.setTerminatingVertex(h, InvalidVertexIndex())
}

func (m *Mesh[VD, HD, ED, FD]) markDeletedFace(f FaceIndex) {
	m.setInnerHalfEdge(f, InvalidHalfEdgeIndex())
}
