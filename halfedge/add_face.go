// File: add_face.go
// Role: C6 — AddFace and its supporting machinery (addEdge, the two
// topology checks, makeAdjacent, connectFace, and the four
// connectNewNew/connectNewOld/connectOldNew/connectOldOld cases).
//
// Grounded step for step on addFaceImplBase in the original PCL source
// (mesh_base.h): same fast path for all-isolated input, same two-pass
// topology check, same four connect-case dispatch. AddFace itself never
// returns an error — it returns the invalid FaceIndex on any rejection,
// matching that contract; AddFaceDiagnose exists purely to explain why.

package halfedge

// AddFace inserts a face bounded by the oriented vertex cycle
// v[0] -> v[1] -> ... -> v[n-1] -> v[0] (n >= 3) and returns its index, or
// the invalid FaceIndex if vertices is malformed, contains an invalid or
// repeated index, or the insertion would violate the manifold policy.
func (m *Mesh[VD, HD, ED, FD]) AddFace(vertices []VertexIndex) FaceIndex {
	return m.AddFaceData(vertices, zeroFD[FD](), zeroED[ED](), zeroHD[HD]())
}

// AddFaceData is AddFace with explicit face, edge and half-edge payloads.
// edgeData and halfEdgeData are applied to every new edge the face creates;
// faceData is applied once, to the face itself.
func (m *Mesh[VD, HD, ED, FD]) AddFaceData(vertices []VertexIndex, faceData FD, edgeData ED, halfEdgeData HD) FaceIndex {
	return m.addFaceImplBase(vertices, faceData, edgeData, halfEdgeData)
}

// AddFaceDiagnose behaves like AddFace but also returns a sentinel error
// explaining a rejection (nil on success). It duplicates AddFace's
// validation up front rather than threading an error return through the
// hot path that addFaceImplBase shares with AddFace.
func (m *Mesh[VD, HD, ED, FD]) AddFaceDiagnose(vertices []VertexIndex) (FaceIndex, error) {
	n := len(vertices)
	if n < 3 {
		return InvalidFaceIndex(), ErrTooFewVertices
	}

	seen := make(map[VertexIndex]struct{}, n)
	for _, v := range vertices {
		if !m.IsValidVertex(v) {
			return InvalidFaceIndex(), ErrInvalidVertexIndex
		}
		if _, dup := seen[v]; dup {
			return InvalidFaceIndex(), ErrDuplicateVertex
		}
		seen[v] = struct{}{}
	}

	for i := 0; i < n; i++ {
		a := vertices[i]
		if m.IsIsolated(a) {
			continue
		}
		if !m.IsBoundaryHalfEdge(m.OutgoingHalfEdge(a)) {
			return InvalidFaceIndex(), ErrVertexStarClosed
		}
	}

	if err := m.diagnoseTopology(vertices); err != nil {
		return InvalidFaceIndex(), err
	}

	f := m.addFaceImplBase(vertices, zeroFD[FD](), zeroED[ED](), zeroHD[HD]())
	if !f.IsValid() {
		return f, ErrEdgeSlotOccupied
	}

	return f, nil
}

// diagnoseTopology replays checkTopology1/checkTopology2 read-only (neither
// function mutates the mesh) to classify a rejection before addFaceImplBase
// runs for real: ErrNonManifoldFan when the non-manifold repair walk can't
// find a free half-edge, ErrEdgeSlotOccupied for every other topology
// rejection.
func (m *Mesh[VD, HD, ED, FD]) diagnoseTopology(vertices []VertexIndex) error {
	n := len(vertices)
	innerHE := make([]HalfEdgeIndex, n)
	isNew := make([]bool, n)
	for i := range isNew {
		isNew[i] = true
	}

	for i := 0; i < n; i++ {
		if !m.checkTopology1(vertices[i], vertices[(i+1)%n], &innerHE[i], &isNew[i]) {
			return ErrEdgeSlotOccupied
		}
	}

	makeAdj := make([]bool, n)
	freeHE := make([]HalfEdgeIndex, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if !m.checkTopology2(innerHE[i], innerHE[j], isNew[i], isNew[j], m.IsIsolated(vertices[j]), &makeAdj[i], &freeHE[i]) {
			if !m.manifold {
				return ErrNonManifoldFan
			}

			return ErrEdgeSlotOccupied
		}
	}

	return nil
}

func zeroFD[FD any]() FD { var z FD; return z }
func zeroED[ED any]() ED { var z ED; return z }
func zeroHD[HD any]() HD { var z HD; return z }

func (m *Mesh[VD, HD, ED, FD]) addFaceImplBase(vertices []VertexIndex, faceData FD, edgeData ED, halfEdgeData HD) FaceIndex {
	n := len(vertices)
	if n < 3 {
		return InvalidFaceIndex()
	}

	seen := make(map[VertexIndex]struct{}, n)
	allIsolated := true
	for _, v := range vertices {
		if !m.IsValidVertex(v) {
			return InvalidFaceIndex()
		}
		if _, dup := seen[v]; dup {
			return InvalidFaceIndex()
		}
		seen[v] = struct{}{}

		if allIsolated && !m.IsIsolated(v) {
			allIsolated = false
		}
	}

	innerHE := make([]HalfEdgeIndex, n)

	if allIsolated {
		for i := 0; i < n; i++ {
			innerHE[i] = m.addEdge(vertices[i], vertices[(i+1)%n], halfEdgeData, edgeData)
		}
		for i := 0; i < n; i++ {
			m.connectNewNew(innerHE[i], innerHE[(i+1)%n], vertices[(i+1)%n])
		}

		return m.connectFace(innerHE, faceData)
	}

	freeHE := make([]HalfEdgeIndex, n)
	isNew := make([]bool, n)
	makeAdj := make([]bool, n)

	for i := range isNew {
		isNew[i] = true
	}

	for i := 0; i < n; i++ {
		if !m.checkTopology1(vertices[i], vertices[(i+1)%n], &innerHE[i], &isNew[i]) {
			return InvalidFaceIndex()
		}
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if !m.checkTopology2(innerHE[i], innerHE[j], isNew[i], isNew[j], m.IsIsolated(vertices[j]), &makeAdj[i], &freeHE[i]) {
			return InvalidFaceIndex()
		}
	}

	if !m.manifold {
		for i := 0; i < n; i++ {
			if makeAdj[i] {
				m.makeAdjacent(innerHE[i], innerHE[(i+1)%n], freeHE[i])
			}
		}
	}

	for i := 0; i < n; i++ {
		if isNew[i] {
			innerHE[i] = m.addEdge(vertices[i], vertices[(i+1)%n], halfEdgeData, edgeData)
		}
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		switch {
		case isNew[i] && isNew[j]:
			m.connectNewNew(innerHE[i], innerHE[j], vertices[j])
		case isNew[i] && !isNew[j]:
			m.connectNewOld(innerHE[i], innerHE[j], vertices[j])
		case !isNew[i] && isNew[j]:
			m.connectOldNew(innerHE[i], innerHE[j], vertices[j])
		default:
			m.connectOldOld(innerHE[i], innerHE[j], vertices[j])
		}
	}

	return m.connectFace(innerHE, faceData)
}

// addEdge pushes the half-edge pair (a->b, b->a), appends halfEdgeData
// twice and edgeData once, and returns the index of a->b.
func (m *Mesh[VD, HD, ED, FD]) addEdge(a, b VertexIndex, halfEdgeData HD, edgeData ED) HalfEdgeIndex {
	ab := HalfEdgeIndex(len(m.halfEdges))
	m.halfEdges = append(m.halfEdges,
		halfEdge{terminatingVertex: b, face: InvalidFaceIndex()},
		halfEdge{terminatingVertex: a, face: InvalidFaceIndex()},
	)
	m.halfEdgeData = append(m.halfEdgeData, halfEdgeData, halfEdgeData)
	m.edgeData = append(m.edgeData, edgeData)

	return ab
}

// checkTopology1 resolves whether the half-edge a->b already exists
// (is_new_ab = false, idx_he_ab set to it) or must be created. The
// manifold case only needs a's single outgoing half-edge; the non-manifold
// case walks a's whole fan looking for b.
func (m *Mesh[VD, HD, ED, FD]) checkTopology1(a, b VertexIndex, heAB *HalfEdgeIndex, isNewAB *bool) bool {
	if m.IsIsolated(a) {
		return true
	}

	if m.manifold {
		*heAB = m.OutgoingHalfEdge(a)
		if !m.IsBoundaryHalfEdge(*heAB) {
			return false
		}
		if m.TerminatingVertex(*heAB) == b {
			*isNewAB = false
		}

		return true
	}

	if !m.IsBoundaryHalfEdge(m.OutgoingHalfEdge(a)) {
		return false
	}

	*isNewAB = true
	start := m.OutgoingHalfEdge(a)
	h := start
	for {
		if m.TerminatingVertex(h) == b {
			if !m.IsBoundaryHalfEdge(h) {
				return false
			}
			*heAB = h
			*isNewAB = false

			return true
		}
		h = rotateCCW(m, h)
		if h == start {
			return true
		}
	}
}

// checkTopology2 decides, for the shared vertex b between edges ab and bc,
// whether the face may proceed, and if both half-edges are old, whether
// makeAdjacent must first splice them together. The free half-edge is the
// first boundary half-edge incoming to b after cb; if that is ab itself,
// the splice would cut b's fans apart and the face is rejected.
func (m *Mesh[VD, HD, ED, FD]) checkTopology2(heAB, heBC HalfEdgeIndex, isNewAB, isNewBC, isIsolatedB bool, makeAdj *bool, freeHE *HalfEdgeIndex) bool {
	if m.manifold {
		return !(isNewAB && isNewBC && !isIsolatedB)
	}

	if isNewAB || isNewBC {
		*makeAdj = false

		return true
	}

	if m.Next(heAB) == heBC {
		*makeAdj = false

		return true
	}

	*makeAdj = true

	h := m.Opposite(m.Next(m.Opposite(heBC)))
	for !m.IsBoundaryHalfEdge(h) {
		h = m.Opposite(m.Next(h))
	}
	*freeHE = h

	return h != heAB
}

// makeAdjacent splices bc in as the next half-edge of ab, re-threading the
// vertex-b fan so that the free boundary half-edge absorbs what ab used to
// point to.
func (m *Mesh[VD, HD, ED, FD]) makeAdjacent(heAB, heBC, freeHE HalfEdgeIndex) {
	abNext := m.Next(heAB)
	bcPrev := m.Prev(heBC)
	freeNext := m.Next(freeHE)

	m.connectPrevNext(heAB, heBC)
	m.connectPrevNext(freeHE, abNext)
	m.connectPrevNext(bcPrev, freeNext)
}

// connectFace appends a Face pointing at the last inner half-edge, appends
// faceData, and stamps every inner half-edge with the new face index.
func (m *Mesh[VD, HD, ED, FD]) connectFace(innerHE []HalfEdgeIndex, faceData FD) FaceIndex {
	m.faces = append(m.faces, face{innerHalfEdge: innerHE[len(innerHE)-1]})
	m.faceData = append(m.faceData, faceData)

	f := FaceIndex(len(m.faces) - 1)
	for _, h := range innerHE {
		m.setFace(h, f)
	}

	return f
}

// connectNewNew splices two brand-new half-edges ab, bc around their shared
// vertex b: in the manifold case (or when b is isolated) b's outgoing
// half-edge becomes ba; in the non-manifold case, if b already has a fan,
// ab/bc are spliced into it instead of replacing it.
func (m *Mesh[VD, HD, ED, FD]) connectNewNew(heAB, heBC HalfEdgeIndex, vb VertexIndex) {
	if m.manifold || m.IsIsolated(vb) {
		heBA := m.Opposite(heAB)
		heCB := m.Opposite(heBC)

		m.connectPrevNext(heAB, heBC)
		m.connectPrevNext(heCB, heBA)
		m.setOutgoingHalfEdge(vb, heBA)

		return
	}

	heBA := m.Opposite(heAB)
	heCB := m.Opposite(heBC)
	bOut := m.OutgoingHalfEdge(vb)
	bOutPrev := m.Prev(bOut)

	m.connectPrevNext(heAB, heBC)
	m.connectPrevNext(heCB, bOut)
	m.connectPrevNext(bOutPrev, heBA)
}

// connectNewOld splices a new half-edge ab in front of an existing bc.
func (m *Mesh[VD, HD, ED, FD]) connectNewOld(heAB, heBC HalfEdgeIndex, vb VertexIndex) {
	heBA := m.Opposite(heAB)
	bcPrev := m.Prev(heBC)

	m.connectPrevNext(heAB, heBC)
	m.connectPrevNext(bcPrev, heBA)
	m.setOutgoingHalfEdge(vb, heBA)
}

// connectOldNew splices a new half-edge bc in behind an existing ab.
func (m *Mesh[VD, HD, ED, FD]) connectOldNew(heAB, heBC HalfEdgeIndex, vb VertexIndex) {
	heCB := m.Opposite(heBC)
	abNext := m.Next(heAB)

	m.connectPrevNext(heAB, heBC)
	m.connectPrevNext(heCB, abNext)
	m.setOutgoingHalfEdge(vb, abNext)
}

// connectOldOld handles the case where both ab and bc already exist and
// (per checkTopology2) are already adjacent; the manifold variant is a
// no-op, the non-manifold variant repairs b's outgoing half-edge if bc was
// it (bc is no longer on the boundary once the face closes over it).
func (m *Mesh[VD, HD, ED, FD]) connectOldOld(heAB, heBC HalfEdgeIndex, vb VertexIndex) {
	if m.manifold {
		return
	}

	bOut := m.OutgoingHalfEdge(vb)
	if bOut != heBC {
		return
	}

	start := bOut
	h := rotateCCW(m, start)
	for h != start {
		if m.IsBoundaryHalfEdge(h) {
			m.setOutgoingHalfEdge(vb, h)

			return
		}
		h = rotateCCW(m, h)
	}
}
