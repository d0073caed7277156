// File: payload.go
// Role: the optional payload arrays (C3) — one parallel sequence per
// element kind, kept in lockstep with the corresponding element sequence.
//
// Presence is a type-level choice: instantiate Mesh[VD, HD, ED, FD] with
// NoData for any kind that needs none. Appending a NoData value costs no
// allocation (see types.go), so payload bookkeeping is pay-as-you-go: a
// SimpleMesh pays nothing beyond the topology itself.

package halfedge

import "unsafe"

// AddVertex appends an isolated vertex with a zero-valued payload and
// returns its index. Complexity: amortized O(1).
func (m *Mesh[VD, HD, ED, FD]) AddVertex() VertexIndex {
	var zero VD
	return m.AddVertexData(zero)
}

// AddVertexData appends an isolated vertex carrying data and returns its index.
func (m *Mesh[VD, HD, ED, FD]) AddVertexData(data VD) VertexIndex {
	idx := VertexIndex(len(m.vertices))
	m.vertices = append(m.vertices, vertex{outgoingHalfEdge: InvalidHalfEdgeIndex()})
	m.vertexData = append(m.vertexData, data)

	return idx
}

// VertexData returns a pointer to v's payload slot, for reading or in-place
// mutation. The pointer is invalidated by any subsequent CleanUp or
// AddVertex* call that reallocates the backing array.
func (m *Mesh[VD, HD, ED, FD]) VertexData(v VertexIndex) *VD { return &m.vertexData[v] }

// HalfEdgeData returns a pointer to h's payload slot.
func (m *Mesh[VD, HD, ED, FD]) HalfEdgeData(h HalfEdgeIndex) *HD { return &m.halfEdgeData[h] }

// EdgeData returns a pointer to e's payload slot.
func (m *Mesh[VD, HD, ED, FD]) EdgeData(e EdgeIndex) *ED { return &m.edgeData[e] }

// FaceData returns a pointer to f's payload slot.
func (m *Mesh[VD, HD, ED, FD]) FaceData(f FaceIndex) *FD { return &m.faceData[f] }

// SetVertexDataCloud replaces the vertex payload sequence wholesale. It
// reports false plus ErrDataCloudSizeMismatch, leaving the mesh unmodified,
// if cloud's length disagrees with the current vertex count; it never
// changes topology.
func (m *Mesh[VD, HD, ED, FD]) SetVertexDataCloud(cloud []VD) (bool, error) {
	if len(cloud) != len(m.vertices) {
		return false, ErrDataCloudSizeMismatch
	}
	m.vertexData = cloud

	return true, nil
}

// SetHalfEdgeDataCloud replaces the half-edge payload sequence wholesale,
// subject to the same length contract as SetVertexDataCloud.
func (m *Mesh[VD, HD, ED, FD]) SetHalfEdgeDataCloud(cloud []HD) (bool, error) {
	if len(cloud) != len(m.halfEdges) {
		return false, ErrDataCloudSizeMismatch
	}
	m.halfEdgeData = cloud

	return true, nil
}

// SetEdgeDataCloud replaces the edge payload sequence wholesale, subject to
// the same length contract as SetVertexDataCloud.
func (m *Mesh[VD, HD, ED, FD]) SetEdgeDataCloud(cloud []ED) (bool, error) {
	if len(cloud) != len(m.halfEdges)/2 {
		return false, ErrDataCloudSizeMismatch
	}
	m.edgeData = cloud

	return true, nil
}

// SetFaceDataCloud replaces the face payload sequence wholesale, subject to
// the same length contract as SetVertexDataCloud.
func (m *Mesh[VD, HD, ED, FD]) SetFaceDataCloud(cloud []FD) (bool, error) {
	if len(cloud) != len(m.faces) {
		return false, ErrDataCloudSizeMismatch
	}
	m.faceData = cloud

	return true, nil
}

// VertexDataCloud returns the backing vertex payload slice.
func (m *Mesh[VD, HD, ED, FD]) VertexDataCloud() []VD { return m.vertexData }

// HalfEdgeDataCloud returns the backing half-edge payload slice.
func (m *Mesh[VD, HD, ED, FD]) HalfEdgeDataCloud() []HD { return m.halfEdgeData }

// EdgeDataCloud returns the backing edge payload slice.
func (m *Mesh[VD, HD, ED, FD]) EdgeDataCloud() []ED { return m.edgeData }

// FaceDataCloud returns the backing face payload slice.
func (m *Mesh[VD, HD, ED, FD]) FaceDataCloud() []FD { return m.faceData }

// GetVertexIndex recovers the index of a payload entry by address-identity:
// ref must point inside the current vertex payload slice. It reports the
// invalid VertexIndex if ref lies outside it, and always for a zero-size
// payload type such as NoData, whose slots share no distinct addresses. The
// result is only meaningful until the next mutation that can reallocate
// vertexData (AddVertex*, SetVertexDataCloud, CleanUp); see DESIGN.md,
// "Stdlib-only justifications".
func (m *Mesh[VD, HD, ED, FD]) GetVertexIndex(ref *VD) VertexIndex {
	idx, ok := sliceIndexOf(m.vertexData, ref)
	if !ok {
		return InvalidVertexIndex()
	}

	return VertexIndex(idx)
}

// GetHalfEdgeIndex recovers the index of a payload entry by address-identity,
// with the same caveats as GetVertexIndex.
func (m *Mesh[VD, HD, ED, FD]) GetHalfEdgeIndex(ref *HD) HalfEdgeIndex {
	idx, ok := sliceIndexOf(m.halfEdgeData, ref)
	if !ok {
		return InvalidHalfEdgeIndex()
	}

	return HalfEdgeIndex(idx)
}

// GetEdgeIndex recovers the index of a payload entry by address-identity,
// with the same caveats as GetVertexIndex.
func (m *Mesh[VD, HD, ED, FD]) GetEdgeIndex(ref *ED) EdgeIndex {
	idx, ok := sliceIndexOf(m.edgeData, ref)
	if !ok {
		return InvalidEdgeIndex()
	}

	return EdgeIndex(idx)
}

// GetFaceIndex recovers the index of a payload entry by address-identity,
// with the same caveats as GetVertexIndex.
func (m *Mesh[VD, HD, ED, FD]) GetFaceIndex(ref *FD) FaceIndex {
	idx, ok := sliceIndexOf(m.faceData, ref)
	if !ok {
		return InvalidFaceIndex()
	}

	return FaceIndex(idx)
}

// sliceIndexOf reports the index of ref within s by pointer arithmetic on
// the backing array, or false if ref does not point inside s. This is the
// one unsafe-package use in the package; it never reads through ref as
// anything but a *T, it only compares addresses.
func sliceIndexOf[T any](s []T, ref *T) (int, bool) {
	if len(s) == 0 || ref == nil {
		return 0, false
	}

	base := unsafe.Pointer(&s[0])
	target := unsafe.Pointer(ref)
	size := unsafe.Sizeof(s[0])
	if size == 0 {
		return 0, false
	}

	offset := uintptr(target) - uintptr(base)
	if uintptr(target) < uintptr(base) {
		return 0, false
	}

	idx := offset / size
	if idx >= uintptr(len(s)) || offset%size != 0 {
		return 0, false
	}

	return int(idx), true
}
