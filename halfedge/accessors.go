// File: accessors.go
// Role: raw topological link getters/setters (C2 field access) and the
// bounds-checked IsValid* predicates (C5, validity half).
//
// Every getter assumes a valid index (programming error otherwise, per
// spec.md §7's "precondition violation" taxonomy); callers that accept
// indices from untrusted sources must call IsValid* first.

package halfedge

// IsValidVertex reports whether v is a valid (in-bounds) vertex index.
func (m *Mesh[VD, HD, ED, FD]) IsValidVertex(v VertexIndex) bool {
	return v >= 0 && int(v) < len(m.vertices)
}

// IsValidHalfEdge reports whether h is a valid (in-bounds) half-edge index.
func (m *Mesh[VD, HD, ED, FD]) IsValidHalfEdge(h HalfEdgeIndex) bool {
	return h >= 0 && int(h) < len(m.halfEdges)
}

// IsValidEdge reports whether e is a valid (in-bounds) edge index.
func (m *Mesh[VD, HD, ED, FD]) IsValidEdge(e EdgeIndex) bool {
	return e >= 0 && int(e) < len(m.halfEdges)/2
}

// IsValidFace reports whether f is a valid (in-bounds) face index.
func (m *Mesh[VD, HD, ED, FD]) IsValidFace(f FaceIndex) bool {
	return f >= 0 && int(f) < len(m.faces)
}

// OutgoingHalfEdge returns the half-edge outgoing from v (sentinel if v is
// isolated or deleted).
func (m *Mesh[VD, HD, ED, FD]) OutgoingHalfEdge(v VertexIndex) HalfEdgeIndex {
	return m.vertices[v].outgoingHalfEdge
}

// IncomingHalfEdge returns a half-edge incoming to v: Opposite(OutgoingHalfEdge(v)).
func (m *Mesh[VD, HD, ED, FD]) IncomingHalfEdge(v VertexIndex) HalfEdgeIndex {
	return m.Opposite(m.OutgoingHalfEdge(v))
}

func (m *Mesh[VD, HD, ED, FD]) setOutgoingHalfEdge(v VertexIndex, h HalfEdgeIndex) {
	m.vertices[v].outgoingHalfEdge = h
}

// TerminatingVertex returns the vertex at the head of h (sentinel if h is deleted).
func (m *Mesh[VD, HD, ED, FD]) TerminatingVertex(h HalfEdgeIndex) VertexIndex {
	return m.halfEdges[h].terminatingVertex
}

// OriginatingVertex returns the vertex at the tail of h: TerminatingVertex(Opposite(h)).
func (m *Mesh[VD, HD, ED, FD]) OriginatingVertex(h HalfEdgeIndex) VertexIndex {
	return m.TerminatingVertex(m.Opposite(h))
}

func (m *Mesh[VD, HD, ED, FD]) setTerminatingVertex(h HalfEdgeIndex, v VertexIndex) {
	m.halfEdges[h].terminatingVertex = v
}

// Opposite returns the sibling half-edge of h: h and h^1 always form a pair.
func (m *Mesh[VD, HD, ED, FD]) Opposite(h HalfEdgeIndex) HalfEdgeIndex {
	return oppositeOf(h)
}

// Next returns the next half-edge in h's face cycle (or boundary cycle).
func (m *Mesh[VD, HD, ED, FD]) Next(h HalfEdgeIndex) HalfEdgeIndex {
	return m.halfEdges[h].next
}

func (m *Mesh[VD, HD, ED, FD]) setNext(h, next HalfEdgeIndex) {
	m.halfEdges[h].next = next
}

// Prev returns the previous half-edge in h's face cycle (or boundary cycle).
func (m *Mesh[VD, HD, ED, FD]) Prev(h HalfEdgeIndex) HalfEdgeIndex {
	return m.halfEdges[h].prev
}

func (m *Mesh[VD, HD, ED, FD]) setPrev(h, prev HalfEdgeIndex) {
	m.halfEdges[h].prev = prev
}

// connectPrevNext links ab.next = bc and bc.prev = ab in one step, mirroring
// the teacher algorithm's connectPrevNext helper used throughout AddFace.
func (m *Mesh[VD, HD, ED, FD]) connectPrevNext(ab, bc HalfEdgeIndex) {
	m.setNext(ab, bc)
	m.setPrev(bc, ab)
}

// Face returns the face incident to h (sentinel if h is a boundary half-edge).
func (m *Mesh[VD, HD, ED, FD]) Face(h HalfEdgeIndex) FaceIndex {
	return m.halfEdges[h].face
}

func (m *Mesh[VD, HD, ED, FD]) setFace(h HalfEdgeIndex, f FaceIndex) {
	m.halfEdges[h].face = f
}

// OppositeFace returns the face on the other side of h's edge.
func (m *Mesh[VD, HD, ED, FD]) OppositeFace(h HalfEdgeIndex) FaceIndex {
	return m.Face(m.Opposite(h))
}

// InnerHalfEdge returns one half-edge of f's inner cycle.
func (m *Mesh[VD, HD, ED, FD]) InnerHalfEdge(f FaceIndex) HalfEdgeIndex {
	return m.faces[f].innerHalfEdge
}

func (m *Mesh[VD, HD, ED, FD]) setInnerHalfEdge(f FaceIndex, h HalfEdgeIndex) {
	m.faces[f].innerHalfEdge = h
}

// OuterHalfEdge returns the half-edge opposite f's inner half-edge.
func (m *Mesh[VD, HD, ED, FD]) OuterHalfEdge(f FaceIndex) HalfEdgeIndex {
	return m.Opposite(m.InnerHalfEdge(f))
}
