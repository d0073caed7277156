// File: circulators.go
// Role: the eight lazy neighborhood circulators (C4).
//
// Every circulator tracks a single "current" half-edge and exposes it
// (Current) plus a kind-specific Target. Next/Prev rotate in place; a
// circulator is a small value type, cheap to copy and compare. Two
// primitive rotations underlie all eight:
//
//	rotateCCW(h) = opposite(prev(h))   // around a vertex, counter-clockwise
//	rotateCW(h)  = next(opposite(h))   // around a vertex, clockwise (inverse of rotateCCW)
//	faceNext(h)  = next(h)             // around a face
//	facePrev(h)  = prev(h)             // around a face (inverse of faceNext)
//
// Circulators are non-owning snapshots: they become undefined after any
// mutation of the mesh they were built from (see package doc).

package halfedge

func rotateCCW[VD, HD, ED, FD any](m *Mesh[VD, HD, ED, FD], h HalfEdgeIndex) HalfEdgeIndex {
	return m.Opposite(m.Prev(h))
}

func rotateCW[VD, HD, ED, FD any](m *Mesh[VD, HD, ED, FD], h HalfEdgeIndex) HalfEdgeIndex {
	return m.Next(m.Opposite(h))
}

// --- VertexAroundVertex --------------------------------------------------

// VertexAroundVertexCirculator walks the neighbor vertices of a pivot vertex.
type VertexAroundVertexCirculator[VD, HD, ED, FD any] struct {
	mesh    *Mesh[VD, HD, ED, FD]
	current HalfEdgeIndex
}

// VertexAroundVertex returns a circulator over the neighbors of v, starting
// at the vertex reached by v's outgoing half-edge.
func (m *Mesh[VD, HD, ED, FD]) VertexAroundVertex(v VertexIndex) VertexAroundVertexCirculator[VD, HD, ED, FD] {
	return VertexAroundVertexCirculator[VD, HD, ED, FD]{mesh: m, current: m.OutgoingHalfEdge(v)}
}

func (m *Mesh[VD, HD, ED, FD]) vertexAroundVertexFrom(h HalfEdgeIndex) VertexAroundVertexCirculator[VD, HD, ED, FD] {
	return VertexAroundVertexCirculator[VD, HD, ED, FD]{mesh: m, current: h}
}

// CurrentHalfEdge returns the outgoing half-edge the circulator currently sits on.
func (c VertexAroundVertexCirculator[VD, HD, ED, FD]) CurrentHalfEdge() HalfEdgeIndex { return c.current }

// Target returns the neighbor vertex reached by the current half-edge.
func (c VertexAroundVertexCirculator[VD, HD, ED, FD]) Target() VertexIndex {
	return c.mesh.TerminatingVertex(c.current)
}

// Next rotates counter-clockwise to the next neighbor.
func (c *VertexAroundVertexCirculator[VD, HD, ED, FD]) Next() {
	c.current = rotateCCW(c.mesh, c.current)
}

// Prev rotates clockwise to the previous neighbor.
func (c *VertexAroundVertexCirculator[VD, HD, ED, FD]) Prev() {
	c.current = rotateCW(c.mesh, c.current)
}

// --- OutgoingHalfEdgeAroundVertex -----------------------------------------

// OutgoingHalfEdgeAroundVertexCirculator walks the half-edges outgoing from a pivot vertex.
type OutgoingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD any] struct {
	mesh    *Mesh[VD, HD, ED, FD]
	current HalfEdgeIndex
}

// OutgoingHalfEdgeAroundVertex returns a circulator over the half-edges outgoing from v.
func (m *Mesh[VD, HD, ED, FD]) OutgoingHalfEdgeAroundVertex(v VertexIndex) OutgoingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD] {
	return OutgoingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]{mesh: m, current: m.OutgoingHalfEdge(v)}
}

func (m *Mesh[VD, HD, ED, FD]) outgoingHalfEdgeAroundVertexFrom(h HalfEdgeIndex) OutgoingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD] {
	return OutgoingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]{mesh: m, current: h}
}

// CurrentHalfEdge returns the current outgoing half-edge.
func (c OutgoingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]) CurrentHalfEdge() HalfEdgeIndex {
	return c.current
}

// Target returns the current outgoing half-edge (the circulator's own target kind).
func (c OutgoingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]) Target() HalfEdgeIndex { return c.current }

// Next rotates counter-clockwise to the next outgoing half-edge.
func (c *OutgoingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]) Next() {
	c.current = rotateCCW(c.mesh, c.current)
}

// Prev rotates clockwise to the previous outgoing half-edge.
func (c *OutgoingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]) Prev() {
	c.current = rotateCW(c.mesh, c.current)
}

// --- IncomingHalfEdgeAroundVertex -----------------------------------------

// IncomingHalfEdgeAroundVertexCirculator walks the half-edges incoming to a pivot vertex.
type IncomingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD any] struct {
	mesh    *Mesh[VD, HD, ED, FD]
	current HalfEdgeIndex
}

// IncomingHalfEdgeAroundVertex returns a circulator over the half-edges incoming to v.
func (m *Mesh[VD, HD, ED, FD]) IncomingHalfEdgeAroundVertex(v VertexIndex) IncomingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD] {
	return IncomingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]{mesh: m, current: m.IncomingHalfEdge(v)}
}

func (m *Mesh[VD, HD, ED, FD]) incomingHalfEdgeAroundVertexFrom(h HalfEdgeIndex) IncomingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD] {
	return IncomingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]{mesh: m, current: h}
}

// CurrentHalfEdge returns the current incoming half-edge.
func (c IncomingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]) CurrentHalfEdge() HalfEdgeIndex {
	return c.current
}

// Target returns the current incoming half-edge (the circulator's own target kind).
func (c IncomingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]) Target() HalfEdgeIndex { return c.current }

// Next rotates counter-clockwise to the next incoming half-edge.
func (c *IncomingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]) Next() {
	c.current = c.mesh.Prev(c.mesh.Opposite(c.current))
}

// Prev rotates clockwise to the previous incoming half-edge.
func (c *IncomingHalfEdgeAroundVertexCirculator[VD, HD, ED, FD]) Prev() {
	c.current = c.mesh.Opposite(c.mesh.Next(c.current))
}

// --- FaceAroundVertex ------------------------------------------------------

// FaceAroundVertexCirculator walks the faces incident to a pivot vertex.
// Target may be the invalid FaceIndex when the current outgoing half-edge is boundary.
type FaceAroundVertexCirculator[VD, HD, ED, FD any] struct {
	mesh    *Mesh[VD, HD, ED, FD]
	current HalfEdgeIndex
}

// FaceAroundVertex returns a circulator over the faces incident to v.
func (m *Mesh[VD, HD, ED, FD]) FaceAroundVertex(v VertexIndex) FaceAroundVertexCirculator[VD, HD, ED, FD] {
	return FaceAroundVertexCirculator[VD, HD, ED, FD]{mesh: m, current: m.OutgoingHalfEdge(v)}
}

func (m *Mesh[VD, HD, ED, FD]) faceAroundVertexFrom(h HalfEdgeIndex) FaceAroundVertexCirculator[VD, HD, ED, FD] {
	return FaceAroundVertexCirculator[VD, HD, ED, FD]{mesh: m, current: h}
}

// CurrentHalfEdge returns the outgoing half-edge the circulator currently sits on.
func (c FaceAroundVertexCirculator[VD, HD, ED, FD]) CurrentHalfEdge() HalfEdgeIndex { return c.current }

// Target returns the face incident to the current outgoing half-edge (sentinel if boundary).
func (c FaceAroundVertexCirculator[VD, HD, ED, FD]) Target() FaceIndex {
	return c.mesh.Face(c.current)
}

// Next rotates counter-clockwise to the next incident face.
func (c *FaceAroundVertexCirculator[VD, HD, ED, FD]) Next() {
	c.current = rotateCCW(c.mesh, c.current)
}

// Prev rotates clockwise to the previous incident face.
func (c *FaceAroundVertexCirculator[VD, HD, ED, FD]) Prev() {
	c.current = rotateCW(c.mesh, c.current)
}

// --- VertexAroundFace ------------------------------------------------------

// VertexAroundFaceCirculator walks the vertices of a pivot face's inner cycle.
type VertexAroundFaceCirculator[VD, HD, ED, FD any] struct {
	mesh    *Mesh[VD, HD, ED, FD]
	current HalfEdgeIndex
}

// VertexAroundFace returns a circulator over the vertices of f's inner cycle.
func (m *Mesh[VD, HD, ED, FD]) VertexAroundFace(f FaceIndex) VertexAroundFaceCirculator[VD, HD, ED, FD] {
	return VertexAroundFaceCirculator[VD, HD, ED, FD]{mesh: m, current: m.InnerHalfEdge(f)}
}

func (m *Mesh[VD, HD, ED, FD]) vertexAroundFaceFrom(h HalfEdgeIndex) VertexAroundFaceCirculator[VD, HD, ED, FD] {
	return VertexAroundFaceCirculator[VD, HD, ED, FD]{mesh: m, current: h}
}

// CurrentHalfEdge returns the current inner half-edge.
func (c VertexAroundFaceCirculator[VD, HD, ED, FD]) CurrentHalfEdge() HalfEdgeIndex { return c.current }

// Target returns the vertex terminating the current inner half-edge.
func (c VertexAroundFaceCirculator[VD, HD, ED, FD]) Target() VertexIndex {
	return c.mesh.TerminatingVertex(c.current)
}

// Next follows Next to the following vertex of the face cycle.
func (c *VertexAroundFaceCirculator[VD, HD, ED, FD]) Next() { c.current = c.mesh.Next(c.current) }

// Prev follows Prev to the preceding vertex of the face cycle.
func (c *VertexAroundFaceCirculator[VD, HD, ED, FD]) Prev() { c.current = c.mesh.Prev(c.current) }

// --- InnerHalfEdgeAroundFace -------------------------------------------------

// InnerHalfEdgeAroundFaceCirculator walks the inner half-edges of a pivot face's cycle.
type InnerHalfEdgeAroundFaceCirculator[VD, HD, ED, FD any] struct {
	mesh    *Mesh[VD, HD, ED, FD]
	current HalfEdgeIndex
}

// InnerHalfEdgeAroundFace returns a circulator over the inner half-edges of f's cycle.
func (m *Mesh[VD, HD, ED, FD]) InnerHalfEdgeAroundFace(f FaceIndex) InnerHalfEdgeAroundFaceCirculator[VD, HD, ED, FD] {
	return InnerHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]{mesh: m, current: m.InnerHalfEdge(f)}
}

func (m *Mesh[VD, HD, ED, FD]) innerHalfEdgeAroundFaceFrom(h HalfEdgeIndex) InnerHalfEdgeAroundFaceCirculator[VD, HD, ED, FD] {
	return InnerHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]{mesh: m, current: h}
}

// CurrentHalfEdge returns the current inner half-edge.
func (c InnerHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]) CurrentHalfEdge() HalfEdgeIndex { return c.current }

// Target returns the current inner half-edge (the circulator's own target kind).
func (c InnerHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]) Target() HalfEdgeIndex { return c.current }

// Next follows Next around the face cycle.
func (c *InnerHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]) Next() { c.current = c.mesh.Next(c.current) }

// Prev follows Prev around the face cycle.
func (c *InnerHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]) Prev() { c.current = c.mesh.Prev(c.current) }

// --- OuterHalfEdgeAroundFace -------------------------------------------------

// OuterHalfEdgeAroundFaceCirculator walks the outer (opposite-of-inner)
// half-edges of a pivot face's cycle. Internally it tracks the inner
// half-edge and exposes its opposite, so that Next/Prev reuse the same
// face-cycle rotation as InnerHalfEdgeAroundFace.
type OuterHalfEdgeAroundFaceCirculator[VD, HD, ED, FD any] struct {
	mesh  *Mesh[VD, HD, ED, FD]
	inner HalfEdgeIndex
}

// OuterHalfEdgeAroundFace returns a circulator over the outer half-edges of f's cycle.
func (m *Mesh[VD, HD, ED, FD]) OuterHalfEdgeAroundFace(f FaceIndex) OuterHalfEdgeAroundFaceCirculator[VD, HD, ED, FD] {
	return OuterHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]{mesh: m, inner: m.InnerHalfEdge(f)}
}

func (m *Mesh[VD, HD, ED, FD]) outerHalfEdgeAroundFaceFrom(h HalfEdgeIndex) OuterHalfEdgeAroundFaceCirculator[VD, HD, ED, FD] {
	return OuterHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]{mesh: m, inner: h}
}

// CurrentHalfEdge returns the current outer half-edge.
func (c OuterHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]) CurrentHalfEdge() HalfEdgeIndex {
	return c.mesh.Opposite(c.inner)
}

// Target returns the current outer half-edge (the circulator's own target kind).
func (c OuterHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]) Target() HalfEdgeIndex {
	return c.mesh.Opposite(c.inner)
}

// Next follows Next around the underlying face cycle.
func (c *OuterHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]) Next() { c.inner = c.mesh.Next(c.inner) }

// Prev follows Prev around the underlying face cycle.
func (c *OuterHalfEdgeAroundFaceCirculator[VD, HD, ED, FD]) Prev() { c.inner = c.mesh.Prev(c.inner) }

// --- FaceAroundFace ----------------------------------------------------------

// FaceAroundFaceCirculator walks the faces adjacent to a pivot face (across each edge).
type FaceAroundFaceCirculator[VD, HD, ED, FD any] struct {
	mesh  *Mesh[VD, HD, ED, FD]
	inner HalfEdgeIndex
}

// FaceAroundFace returns a circulator over the faces adjacent to f.
func (m *Mesh[VD, HD, ED, FD]) FaceAroundFace(f FaceIndex) FaceAroundFaceCirculator[VD, HD, ED, FD] {
	return FaceAroundFaceCirculator[VD, HD, ED, FD]{mesh: m, inner: m.InnerHalfEdge(f)}
}

func (m *Mesh[VD, HD, ED, FD]) faceAroundFaceFrom(h HalfEdgeIndex) FaceAroundFaceCirculator[VD, HD, ED, FD] {
	return FaceAroundFaceCirculator[VD, HD, ED, FD]{mesh: m, inner: h}
}

// CurrentHalfEdge returns the current inner half-edge underlying the circulator.
func (c FaceAroundFaceCirculator[VD, HD, ED, FD]) CurrentHalfEdge() HalfEdgeIndex { return c.inner }

// Target returns the face on the other side of the current edge (sentinel if boundary).
func (c FaceAroundFaceCirculator[VD, HD, ED, FD]) Target() FaceIndex {
	return c.mesh.Face(c.mesh.Opposite(c.inner))
}

// Next follows Next around the underlying face cycle.
func (c *FaceAroundFaceCirculator[VD, HD, ED, FD]) Next() { c.inner = c.mesh.Next(c.inner) }

// Prev follows Prev around the underlying face cycle.
func (c *FaceAroundFaceCirculator[VD, HD, ED, FD]) Prev() { c.inner = c.mesh.Prev(c.inner) }
