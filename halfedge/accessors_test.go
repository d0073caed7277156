package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-halfedge/halfedge"
)

// AccessorsSuite covers the raw link getters that aren't already exercised
// incidentally by the higher-level suites.
type AccessorsSuite struct {
	suite.Suite
}

func (s *AccessorsSuite) TestOppositeFaceOfSharedEdge() {
	m := halfedge.NewSimpleMesh()
	a, b, c, d := m.AddVertex(), m.AddVertex(), m.AddVertex(), m.AddVertex()

	f1 := m.AddFace([]halfedge.VertexIndex{a, b, c})
	f2 := m.AddFace([]halfedge.VertexIndex{b, a, d})
	require.True(s.T(), f1.IsValid())
	require.True(s.T(), f2.IsValid())

	shared := findHalfEdgeBetween(m, a, b)
	require.Equal(s.T(), f1, m.Face(shared))
	require.Equal(s.T(), f2, m.OppositeFace(shared))
	require.Equal(s.T(), f1, m.OppositeFace(m.Opposite(shared)))
}

// TestOppositeFaceAcrossBoundaryEdgeIsInvalid: a->b is f's inner half-edge on
// a boundary edge, so the face on the other side of it is the invalid index.
func (s *AccessorsSuite) TestOppositeFaceAcrossBoundaryEdgeIsInvalid() {
	m := halfedge.NewSimpleMesh()
	a, b, c := m.AddVertex(), m.AddVertex(), m.AddVertex()
	f := m.AddFace([]halfedge.VertexIndex{a, b, c})
	require.True(s.T(), f.IsValid())

	inner := findHalfEdgeBetween(m, a, b)
	require.False(s.T(), m.OppositeFace(inner).IsValid())
}

func TestAccessorsSuite(t *testing.T) {
	suite.Run(t, new(AccessorsSuite))
}
