package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-halfedge/halfedge"
)

// PredicatesSuite covers IsDeleted*, IsBoundary* and IsManifold*.
type PredicatesSuite struct {
	suite.Suite
}

func (s *PredicatesSuite) triangle() (*halfedge.SimpleMesh, halfedge.FaceIndex, [3]halfedge.VertexIndex) {
	m := halfedge.NewSimpleMesh()
	a, b, c := m.AddVertex(), m.AddVertex(), m.AddVertex()
	f := m.AddFace([]halfedge.VertexIndex{a, b, c})

	return m, f, [3]halfedge.VertexIndex{a, b, c}
}

func (s *PredicatesSuite) TestIsolatedVertexSharesDeletedRepresentation() {
	m := halfedge.NewSimpleMesh()
	v := m.AddVertex()
	require.True(s.T(), m.IsIsolated(v))
	require.True(s.T(), m.IsDeletedVertex(v))
}

func (s *PredicatesSuite) TestSingleTriangleIsAllBoundary() {
	m, f, verts := s.triangle()
	for _, v := range verts {
		require.True(s.T(), m.IsBoundaryVertex(v))
	}
	require.True(s.T(), m.IsBoundaryFace(f, halfedge.CheckVertices))
	require.True(s.T(), m.IsBoundaryFace(f, halfedge.CheckEdges))
	require.True(s.T(), m.IsManifold())
}

func (s *PredicatesSuite) TestInteriorEdgeIsNotBoundary() {
	m := halfedge.NewSimpleMesh()
	a, b, c, d := m.AddVertex(), m.AddVertex(), m.AddVertex(), m.AddVertex()
	m.AddFace([]halfedge.VertexIndex{a, b, c})
	m.AddFace([]halfedge.VertexIndex{b, a, d})

	found := false
	circ := m.OutgoingHalfEdgeAroundVertex(a)
	start := circ.CurrentHalfEdge()
	for {
		h := circ.CurrentHalfEdge()
		if m.TerminatingVertex(h) == b {
			require.False(s.T(), m.IsBoundaryHalfEdge(h))
			require.False(s.T(), m.IsBoundaryHalfEdge(m.Opposite(h)))
			found = true

			break
		}
		circ.Next()
		if circ.CurrentHalfEdge() == start {
			break
		}
	}
	require.True(s.T(), found, "shared half-edge a->b must exist")
}

func TestPredicatesSuite(t *testing.T) {
	suite.Run(t, new(PredicatesSuite))
}
