// Package main builds a closed triangulated cube (12 faces, 8 vertices)
// and prints its manifold summary.
//
// Scenario:
//
//	Eight corner vertices, six quad faces each split into two triangles,
//	oriented consistently outward. Every vertex should end up with exactly
//	one boundary... except there is none: the cube is closed, so every
//	edge is interior and is_manifold() reports true with zero boundary
//	vertices.
package main

import (
	"fmt"

	"github.com/katalvlaran/lvlath-halfedge/halfedge"
)

func main() {
	m := halfedge.NewSimpleMesh()

	v := make([]halfedge.VertexIndex, 8)
	for i := range v {
		v[i] = m.AddVertex()
	}

	// Corner order: 0..3 bottom face (CCW from above), 4..7 top face.
	// Faces are added so that each new triangle shares an edge with the
	// surface built so far; under the manifold policy a triangle that would
	// touch it only at a vertex is rejected.
	quads := [6][4]int{
		{0, 1, 2, 3}, // bottom
		{0, 4, 5, 1}, // front
		{1, 5, 6, 2}, // right
		{2, 6, 7, 3}, // back
		{3, 7, 4, 0}, // left
		{4, 7, 6, 5}, // top
	}

	for _, q := range quads {
		a, b, c, d := v[q[0]], v[q[1]], v[q[2]], v[q[3]]
		mustFace(m, a, c, d)
		mustFace(m, a, b, c)
	}

	fmt.Printf("vertices=%d half-edges=%d faces=%d manifold=%v\n",
		m.SizeVertices(), m.SizeHalfEdges(), m.SizeFaces(), m.IsManifold())

	boundary := 0
	for i := 0; i < m.SizeVertices(); i++ {
		if m.IsBoundaryVertex(halfedge.VertexIndex(i)) {
			boundary++
		}
	}
	fmt.Printf("boundary vertices=%d\n", boundary)
}

func mustFace(m *halfedge.SimpleMesh, a, b, c halfedge.VertexIndex) {
	if f := m.AddFace([]halfedge.VertexIndex{a, b, c}); !f.IsValid() {
		panic("cube triangulation rejected a face")
	}
}
