// File: types.go
// Role: index types (C1), element records (C2), and the Mesh container itself.
//
// Index handles are strongly-typed int32 wrappers, never raw ints, so a
// VertexIndex can never be passed where a FaceIndex is expected. The
// sentinel (any negative value, canonically -1) is distinct from every
// valid index and is what deletion and "isolated"/"boundary" markers use.

package halfedge

// invalid is the canonical sentinel value shared by all four index kinds.
const invalid = int32(-1)

// VertexIndex addresses a Vertex in a Mesh.
type VertexIndex int32

// HalfEdgeIndex addresses a HalfEdge in a Mesh. Opposite half-edges are i and i^1.
type HalfEdgeIndex int32

// EdgeIndex addresses an undirected edge: the pair of half-edges 2*e and 2*e+1.
type EdgeIndex int32

// FaceIndex addresses a Face in a Mesh.
type FaceIndex int32

// InvalidVertexIndex is the sentinel VertexIndex; IsValid reports false for it.
func InvalidVertexIndex() VertexIndex { return VertexIndex(invalid) }

// InvalidHalfEdgeIndex is the sentinel HalfEdgeIndex; IsValid reports false for it.
func InvalidHalfEdgeIndex() HalfEdgeIndex { return HalfEdgeIndex(invalid) }

// InvalidEdgeIndex is the sentinel EdgeIndex; IsValid reports false for it.
func InvalidEdgeIndex() EdgeIndex { return EdgeIndex(invalid) }

// InvalidFaceIndex is the sentinel FaceIndex; IsValid reports false for it.
func InvalidFaceIndex() FaceIndex { return FaceIndex(invalid) }

// IsValid reports whether i is a non-negative (non-sentinel) index.
// It does not check that i is in-bounds for any particular Mesh; use
// Mesh.IsValidVertex for a bounds-checked query.
func (i VertexIndex) IsValid() bool { return i >= 0 }

// Int returns the plain integer value of i.
func (i VertexIndex) Int() int { return int(i) }

// IsValid reports whether i is a non-negative (non-sentinel) index.
func (i HalfEdgeIndex) IsValid() bool { return i >= 0 }

// Int returns the plain integer value of i.
func (i HalfEdgeIndex) Int() int { return int(i) }

// IsValid reports whether i is a non-negative (non-sentinel) index.
func (i EdgeIndex) IsValid() bool { return i >= 0 }

// Int returns the plain integer value of i.
func (i EdgeIndex) Int() int { return int(i) }

// IsValid reports whether i is a non-negative (non-sentinel) index.
func (i FaceIndex) IsValid() bool { return i >= 0 }

// Int returns the plain integer value of i.
func (i FaceIndex) Int() int { return int(i) }

// EdgeToHalfEdge converts an EdgeIndex to one of its two half-edges.
// which selects 0 or 1; any other bit is masked off, so the conversion is total.
func EdgeToHalfEdge(e EdgeIndex, which int) HalfEdgeIndex {
	return HalfEdgeIndex(int32(e)*2 + int32(which&1))
}

// HalfEdgeToEdge converts a HalfEdgeIndex to the EdgeIndex of its pair.
func HalfEdgeToEdge(h HalfEdgeIndex) EdgeIndex {
	return EdgeIndex(int32(h) / 2)
}

// oppositeOf returns the sibling half-edge: i and i^1 always form a pair.
func oppositeOf(h HalfEdgeIndex) HalfEdgeIndex {
	return HalfEdgeIndex(int32(h) ^ 1)
}

// NoData is the zero-size payload used to mark an element kind as carrying
// no user payload. Appending a NoData value to a payload slice costs no
// allocation and no observable space, which is what keeps payload
// operations "cost-free when absent" (see DESIGN.md).
type NoData struct{}

// vertex is a pure topological record: the half-edge outgoing from it.
// A sentinel outgoingHalfEdge means "isolated or deleted" (see IsIsolated/IsDeletedVertex).
type vertex struct {
	outgoingHalfEdge HalfEdgeIndex
}

// halfEdge is a pure topological record. Opposites are never stored; they
// are computed as index^1, which is why half-edges are always allocated in
// pairs (see addEdge).
type halfEdge struct {
	terminatingVertex VertexIndex
	next              HalfEdgeIndex
	prev              HalfEdgeIndex
	face              FaceIndex // sentinel => boundary half-edge
}

// face is a pure topological record: one half-edge of its cycle.
type face struct {
	innerHalfEdge HalfEdgeIndex
}

// BoundaryCheckMode selects how Mesh.IsBoundaryFace decides that a face
// touches the mesh boundary.
type BoundaryCheckMode int

const (
	// CheckVertices reports a face as boundary if any incident vertex is boundary.
	CheckVertices BoundaryCheckMode = iota
	// CheckEdges reports a face as boundary if any of its outer (opposite) half-edges is boundary.
	CheckEdges
)

// Mesh is the half-edge core: three index-addressed element arrays plus an
// optional parallel payload array per kind (VD for vertices, HD for
// half-edges, ED for edges, FD for faces). Instantiate with NoData for any
// kind that needs no payload — see SimpleMesh.
//
// Mesh owns its element and payload slices exclusively; index handles are
// borrow-free but only valid until the next CleanUp. Mesh is not safe for
// concurrent mutation (see package doc).
type Mesh[VD, HD, ED, FD any] struct {
	manifold bool

	vertices  []vertex
	halfEdges []halfEdge
	faces     []face

	vertexData   []VD
	halfEdgeData []HD
	edgeData     []ED
	faceData     []FD
}

// SimpleMesh is a Mesh with no payload on any element kind — the common case
// when only topology matters.
type SimpleMesh = Mesh[NoData, NoData, NoData, NoData]

// meshConfig collects MeshOption results before a Mesh is allocated.
type meshConfig struct {
	manifold bool
	capHint  int
}

// MeshOption configures a Mesh at construction time.
type MeshOption func(*meshConfig)

// WithManifold selects the manifold policy (C9): add_face and delete_face
// preserve the single-fan-per-vertex invariant, rejecting or cascading as
// needed. This is the default.
func WithManifold() MeshOption {
	return func(c *meshConfig) { c.manifold = true }
}

// WithNonManifold selects the non-manifold policy (C9): vertices may have
// more than one boundary fan; add_face repairs existing fans via
// makeAdjacent instead of rejecting, and delete_face never cascades.
func WithNonManifold() MeshOption {
	return func(c *meshConfig) { c.manifold = false }
}

// WithCapacityHint pre-allocates the element and payload slices for n
// vertices/half-edge-pairs/faces, avoiding reallocation during bulk
// construction. It never changes topology.
func WithCapacityHint(n int) MeshOption {
	return func(c *meshConfig) { c.capHint = n }
}

// NewMesh constructs an empty Mesh. By default the manifold policy is
// active; pass WithNonManifold() to allow multi-fan vertices.
// Complexity: O(1), or O(capHint) if WithCapacityHint is given.
func NewMesh[VD, HD, ED, FD any](opts ...MeshOption) *Mesh[VD, HD, ED, FD] {
	cfg := meshConfig{manifold: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Mesh[VD, HD, ED, FD]{manifold: cfg.manifold}
	if cfg.capHint > 0 {
		m.vertices = make([]vertex, 0, cfg.capHint)
		m.vertexData = make([]VD, 0, cfg.capHint)
		m.faces = make([]face, 0, cfg.capHint)
		m.faceData = make([]FD, 0, cfg.capHint)
		m.halfEdges = make([]halfEdge, 0, cfg.capHint*2)
		m.halfEdgeData = make([]HD, 0, cfg.capHint*2)
		m.edgeData = make([]ED, 0, cfg.capHint)
	}

	return m
}

// NewSimpleMesh constructs an empty SimpleMesh (no payloads on any element kind).
func NewSimpleMesh(opts ...MeshOption) *SimpleMesh {
	return NewMesh[NoData, NoData, NoData, NoData](opts...)
}

// Manifold reports whether m enforces the manifold policy (C9).
func (m *Mesh[VD, HD, ED, FD]) Manifold() bool { return m.manifold }

// SizeVertices returns the number of vertex slots, including deleted ones.
func (m *Mesh[VD, HD, ED, FD]) SizeVertices() int { return len(m.vertices) }

// SizeHalfEdges returns the number of half-edge slots, including deleted ones.
func (m *Mesh[VD, HD, ED, FD]) SizeHalfEdges() int { return len(m.halfEdges) }

// SizeEdges returns the number of edge slots, including deleted ones.
func (m *Mesh[VD, HD, ED, FD]) SizeEdges() int { return len(m.halfEdges) / 2 }

// SizeFaces returns the number of face slots, including deleted ones.
func (m *Mesh[VD, HD, ED, FD]) SizeFaces() int { return len(m.faces) }

// Empty reports whether the mesh has no vertices, half-edges or faces at all.
func (m *Mesh[VD, HD, ED, FD]) Empty() bool {
	return len(m.vertices) == 0 && len(m.halfEdges) == 0 && len(m.faces) == 0
}
