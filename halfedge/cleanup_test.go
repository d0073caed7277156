package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-halfedge/halfedge"
)

// CleanUpSuite covers compaction: no element remains marked deleted
// afterwards, and surviving cross-references are rewritten consistently.
type CleanUpSuite struct {
	suite.Suite
}

func (s *CleanUpSuite) TestCleanUpReclaimsDeletedFaceAndItsOrphanedVertices() {
	m := halfedge.NewMesh[int, halfedge.NoData, halfedge.NoData, string]()
	a := m.AddVertexData(1)
	b := m.AddVertexData(2)
	c := m.AddVertexData(3)
	d := m.AddVertexData(4)

	f1 := m.AddFaceData([]halfedge.VertexIndex{a, b, c}, "f1", halfedge.NoData{}, halfedge.NoData{})
	f2 := m.AddFaceData([]halfedge.VertexIndex{b, a, d}, "f2", halfedge.NoData{}, halfedge.NoData{})
	require.True(s.T(), f1.IsValid())
	require.True(s.T(), f2.IsValid())

	m.DeleteFace(f1)
	require.True(s.T(), m.IsDeletedFace(f1))

	m.CleanUp()

	require.Equal(s.T(), 1, m.SizeFaces())
	require.Equal(s.T(), 3, m.SizeVertices())
	require.Equal(s.T(), *m.FaceData(0), "f2")

	for fi := 0; fi < m.SizeFaces(); fi++ {
		require.False(s.T(), m.IsDeletedFace(halfedge.FaceIndex(fi)))
	}
	for vi := 0; vi < m.SizeVertices(); vi++ {
		v := halfedge.VertexIndex(vi)
		if out := m.OutgoingHalfEdge(v); out.IsValid() {
			require.True(s.T(), m.IsValidHalfEdge(out))
		}
	}
}

func (s *CleanUpSuite) TestCleanUpKeepsPayloadLengthsInSync() {
	m := halfedge.NewMesh[string, halfedge.NoData, halfedge.NoData, halfedge.NoData]()
	a := m.AddVertexData("a")
	b := m.AddVertexData("b")
	c := m.AddVertexData("c")
	m.AddFace([]halfedge.VertexIndex{a, b, c})

	m.DeleteVertex(a)
	m.CleanUp()

	require.Equal(s.T(), m.SizeVertices(), len(m.VertexDataCloud()))
	require.Equal(s.T(), m.SizeHalfEdges(), len(m.HalfEdgeDataCloud()))
	require.Equal(s.T(), m.SizeFaces(), len(m.FaceDataCloud()))
	require.Equal(s.T(), m.SizeEdges(), len(m.EdgeDataCloud()))
}

func TestCleanUpSuite(t *testing.T) {
	suite.Run(t, new(CleanUpSuite))
}
