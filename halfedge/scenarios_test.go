package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-halfedge/halfedge"
)

// ScenariosSuite walks the six end-to-end scenarios: a handful of
// operations chained together and checked against the shape they must
// produce, rather than unit-testing one call at a time.
type ScenariosSuite struct {
	suite.Suite
}

// TestEmptyToSingleTriangle: scenario 1.
func (s *ScenariosSuite) TestEmptyToSingleTriangle() {
	m := halfedge.NewSimpleMesh()
	v0, v1, v2 := m.AddVertex(), m.AddVertex(), m.AddVertex()

	f := m.AddFace([]halfedge.VertexIndex{v0, v1, v2})
	require.True(s.T(), f.IsValid())

	require.Equal(s.T(), 3, m.SizeEdges())
	require.Equal(s.T(), 6, m.SizeHalfEdges())
	require.Equal(s.T(), 1, m.SizeFaces())
	require.True(s.T(), m.IsBoundaryVertex(v0))
	require.True(s.T(), m.IsBoundaryVertex(v1))
	require.True(s.T(), m.IsBoundaryVertex(v2))
	require.True(s.T(), m.IsManifold())

	circ := m.VertexAroundFace(f)
	start := circ.CurrentHalfEdge()
	count := 0
	for {
		count++
		circ.Next()
		if circ.CurrentHalfEdge() == start {
			break
		}
	}
	require.Equal(s.T(), 3, count)
}

// TestTwoTrianglesSharingAnEdge: scenario 2.
func (s *ScenariosSuite) TestTwoTrianglesSharingAnEdge() {
	m := halfedge.NewSimpleMesh()
	v0, v1, v2, v3 := m.AddVertex(), m.AddVertex(), m.AddVertex(), m.AddVertex()

	f1 := m.AddFace([]halfedge.VertexIndex{v0, v1, v2})
	f2 := m.AddFace([]halfedge.VertexIndex{v1, v3, v2})
	require.True(s.T(), f1.IsValid())
	require.True(s.T(), f2.IsValid())

	// f1 contributes 3 new edges; f2 reuses the v1-v2 edge and adds 2 more.
	require.Equal(s.T(), 5, m.SizeEdges())
	require.Equal(s.T(), 10, m.SizeHalfEdges())
	require.Equal(s.T(), 2, m.SizeFaces())

	shared := findHalfEdgeBetween(m, v1, v2)
	require.False(s.T(), m.IsBoundaryHalfEdge(shared))
	require.False(s.T(), m.IsBoundaryHalfEdge(m.Opposite(shared)))

	require.True(s.T(), m.IsBoundaryVertex(v0))
	require.True(s.T(), m.IsBoundaryVertex(v3))
}

// TestForbiddenInsertionLeavesMeshUnchanged: scenario 3.
func (s *ScenariosSuite) TestForbiddenInsertionLeavesMeshUnchanged() {
	m := halfedge.NewSimpleMesh()
	v0, v1, v2, v3 := m.AddVertex(), m.AddVertex(), m.AddVertex(), m.AddVertex()
	m.AddFace([]halfedge.VertexIndex{v0, v1, v2})
	m.AddFace([]halfedge.VertexIndex{v1, v3, v2})

	beforeV, beforeH, beforeF := m.SizeVertices(), m.SizeHalfEdges(), m.SizeFaces()

	// v0->v1 is already f1's inner half-edge, so a second face cannot use it.
	rejected := m.AddFace([]halfedge.VertexIndex{v0, v1, v3})
	require.False(s.T(), rejected.IsValid())

	require.Equal(s.T(), beforeV, m.SizeVertices())
	require.Equal(s.T(), beforeH, m.SizeHalfEdges())
	require.Equal(s.T(), beforeF, m.SizeFaces())
}

// TestDeleteSharedEdgeThenCleanUp: scenario 4. Deleting an edge interior to
// two faces removes both adjacent faces — the edge cannot be torn out from
// under only one of its two owning face cycles (see DESIGN.md, Open
// Questions, "scenario 4 face count").
func (s *ScenariosSuite) TestDeleteSharedEdgeThenCleanUp() {
	m := halfedge.NewSimpleMesh()
	v0, v1, v2, v3 := m.AddVertex(), m.AddVertex(), m.AddVertex(), m.AddVertex()
	f1 := m.AddFace([]halfedge.VertexIndex{v0, v1, v2})
	f2 := m.AddFace([]halfedge.VertexIndex{v1, v3, v2})

	eShared := halfedge.HalfEdgeToEdge(findHalfEdgeBetween(m, v1, v2))
	m.DeleteEdge(eShared)

	require.True(s.T(), m.IsDeletedFace(f1))
	require.True(s.T(), m.IsDeletedFace(f2))

	m.CleanUp()
	require.Equal(s.T(), 0, m.SizeFaces())
}

// TestDeleteCenterVertexOfFan: scenario 5. Deleting the hub removes every
// face incident to it; see DESIGN.md, Open Questions, "scenario 5 rim
// edges" for how far the cascade reaches into the rim itself.
func (s *ScenariosSuite) TestDeleteCenterVertexOfFan() {
	m := halfedge.NewSimpleMesh()
	vc := m.AddVertex()
	rim := make([]halfedge.VertexIndex, 4)
	for i := range rim {
		rim[i] = m.AddVertex()
	}

	faces := make([]halfedge.FaceIndex, 3)
	for i := 0; i < 3; i++ {
		faces[i] = m.AddFace([]halfedge.VertexIndex{vc, rim[i], rim[i+1]})
		require.True(s.T(), faces[i].IsValid())
	}

	m.DeleteVertex(vc)
	for _, f := range faces {
		require.True(s.T(), m.IsDeletedFace(f))
	}

	m.CleanUp()
	require.Equal(s.T(), 0, m.SizeFaces())
}

// TestNonManifoldBowtieInsertion: scenario 6.
func (s *ScenariosSuite) TestNonManifoldBowtieInsertion() {
	m := halfedge.NewSimpleMesh(halfedge.WithNonManifold())
	shared := m.AddVertex()
	a, b, c, d := m.AddVertex(), m.AddVertex(), m.AddVertex(), m.AddVertex()

	f1 := m.AddFace([]halfedge.VertexIndex{shared, a, b})
	f2 := m.AddFace([]halfedge.VertexIndex{shared, c, d})
	require.True(s.T(), f1.IsValid())
	require.True(s.T(), f2.IsValid())

	require.False(s.T(), m.IsManifold())
	require.False(s.T(), m.IsManifoldVertex(shared))
	for _, v := range []halfedge.VertexIndex{a, b, c, d} {
		require.True(s.T(), m.IsManifoldVertex(v))
	}
}

func TestScenariosSuite(t *testing.T) {
	suite.Run(t, new(ScenariosSuite))
}
