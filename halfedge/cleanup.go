// File: cleanup.go
// Role: C8 — CleanUp, the compaction pass that reclaims tombstoned slots.
//
// Grounded on cleanUp/remove in the original PCL source (mesh_base.h):
// three independent stable compactions (vertices, half-edges, faces) each
// produce an old-to-new remap; edge payload is compacted separately by
// walking half-edge pairs; then every surviving cross-reference is
// rewritten using the three remaps in a final dependent pass.

package halfedge

// CleanUp removes every tombstoned vertex, half-edge and face (and, as a
// consequence, every vertex that was isolated before the call), reclaiming
// their slots and rewriting every surviving cross-reference. All
// previously-returned indices are invalidated by this call; circulators
// built before it must be discarded. Complexity: O(V+H+F).
func (m *Mesh[VD, HD, ED, FD]) CleanUp() {
	newVertexIdx := m.compactVertices()
	newHalfEdgeIdx := m.compactHalfEdges()
	newFaceIdx := m.compactFaces()
	m.compactEdgeData(newHalfEdgeIdx)

	for i := range m.vertices {
		if m.vertices[i].outgoingHalfEdge.IsValid() {
			m.vertices[i].outgoingHalfEdge = newHalfEdgeIdx[m.vertices[i].outgoingHalfEdge]
		}
	}

	for i := range m.halfEdges {
		he := &m.halfEdges[i]
		he.terminatingVertex = newVertexIdx[he.terminatingVertex]
		he.next = newHalfEdgeIdx[he.next]
		he.prev = newHalfEdgeIdx[he.prev]
		if he.face.IsValid() {
			he.face = newFaceIdx[he.face]
		}
	}

	for i := range m.faces {
		m.faces[i].innerHalfEdge = newHalfEdgeIdx[m.faces[i].innerHalfEdge]
	}
}

// compactVertices walks vertices in place, keeping the non-deleted ones at
// the front, and returns the old-index -> new-index remap (sentinel for
// removed slots).
func (m *Mesh[VD, HD, ED, FD]) compactVertices() []VertexIndex {
	remap := make([]VertexIndex, len(m.vertices))
	write := 0
	for read, v := range m.vertices {
		if !v.outgoingHalfEdge.IsValid() {
			remap[read] = InvalidVertexIndex()

			continue
		}
		remap[read] = VertexIndex(write)
		m.vertices[write] = v
		m.vertexData[write] = m.vertexData[read]
		write++
	}
	m.vertices = m.vertices[:write]
	m.vertexData = m.vertexData[:write]

	return remap
}

// compactHalfEdges walks half-edges in place and returns the old-index ->
// new-index remap (sentinel for removed slots).
func (m *Mesh[VD, HD, ED, FD]) compactHalfEdges() []HalfEdgeIndex {
	remap := make([]HalfEdgeIndex, len(m.halfEdges))
	write := 0
	for read, h := range m.halfEdges {
		if !h.terminatingVertex.IsValid() {
			remap[read] = InvalidHalfEdgeIndex()

			continue
		}
		remap[read] = HalfEdgeIndex(write)
		m.halfEdges[write] = h
		m.halfEdgeData[write] = m.halfEdgeData[read]
		write++
	}
	m.halfEdges = m.halfEdges[:write]
	m.halfEdgeData = m.halfEdgeData[:write]

	return remap
}

// compactFaces walks faces in place and returns the old-index -> new-index
// remap (sentinel for removed slots).
func (m *Mesh[VD, HD, ED, FD]) compactFaces() []FaceIndex {
	remap := make([]FaceIndex, len(m.faces))
	write := 0
	for read, f := range m.faces {
		if !f.innerHalfEdge.IsValid() {
			remap[read] = InvalidFaceIndex()

			continue
		}
		remap[read] = FaceIndex(write)
		m.faces[write] = f
		m.faceData[write] = m.faceData[read]
		write++
	}
	m.faces = m.faces[:write]
	m.faceData = m.faceData[:write]

	return remap
}

// compactEdgeData compacts the edge payload sequence by walking pre-
// compaction half-edge pairs: edge k survives iff half-edge 2k survived
// (its remap entry is valid).
func (m *Mesh[VD, HD, ED, FD]) compactEdgeData(newHalfEdgeIdx []HalfEdgeIndex) {
	if len(m.edgeData) == 0 {
		return
	}

	write := 0
	for k := 0; 2*k < len(newHalfEdgeIdx); k++ {
		if newHalfEdgeIdx[2*k].IsValid() {
			m.edgeData[write] = m.edgeData[k]
			write++
		}
	}
	m.edgeData = m.edgeData[:write]
}
