package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-halfedge/halfedge"
)

// DeleteSuite covers DeleteFace, DeleteEdge, DeleteVertex and the manifold
// cascade reconnect must perform to keep a fan single-sheeted.
type DeleteSuite struct {
	suite.Suite
}

func (s *DeleteSuite) TestDeleteFaceOnSingleTriangleLeavesVerticesIsolated() {
	m := halfedge.NewSimpleMesh()
	a, b, c := m.AddVertex(), m.AddVertex(), m.AddVertex()
	f := m.AddFace([]halfedge.VertexIndex{a, b, c})
	require.True(s.T(), f.IsValid())

	m.DeleteFace(f)
	require.True(s.T(), m.IsDeletedFace(f))
	for _, v := range []halfedge.VertexIndex{a, b, c} {
		require.True(s.T(), m.IsIsolated(v))
	}
}

func (s *DeleteSuite) TestDeleteSharedEdgeRemovesBothFaces() {
	m := halfedge.NewSimpleMesh()
	a, b, c, d := m.AddVertex(), m.AddVertex(), m.AddVertex(), m.AddVertex()
	f1 := m.AddFace([]halfedge.VertexIndex{a, b, c})
	f2 := m.AddFace([]halfedge.VertexIndex{b, a, d})
	require.True(s.T(), f1.IsValid())
	require.True(s.T(), f2.IsValid())

	eShared := halfedge.HalfEdgeToEdge(findHalfEdgeBetween(m, a, b))
	m.DeleteEdge(eShared)

	require.True(s.T(), m.IsDeletedFace(f1))
	require.True(s.T(), m.IsDeletedFace(f2))
}

// TestDeleteCenterVertexOfFanCascadesToAllIncidentFaces removes the hub
// vertex of a closed 4-triangle fan and checks every incident face is gone.
func (s *DeleteSuite) TestDeleteCenterVertexOfFanCascadesToAllIncidentFaces() {
	m := halfedge.NewSimpleMesh()
	center := m.AddVertex()
	rim := make([]halfedge.VertexIndex, 4)
	for i := range rim {
		rim[i] = m.AddVertex()
	}

	faces := make([]halfedge.FaceIndex, 4)
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		faces[i] = m.AddFace([]halfedge.VertexIndex{center, rim[i], rim[j]})
		require.True(s.T(), faces[i].IsValid())
	}

	m.DeleteVertex(center)

	for _, f := range faces {
		require.True(s.T(), m.IsDeletedFace(f))
	}
	require.True(s.T(), m.IsDeletedVertex(center))
}

// TestManifoldCascadeTerminatesAndRestoresManifoldness deletes one face of
// a closed 5-triangle fan under the manifold policy and checks that the
// deletion terminates and leaves the surviving mesh manifold. The hub stays
// interior to the remaining faces, so reconnect only resets its outgoing
// half-edge here; the cascading branch does not fire.
func (s *DeleteSuite) TestManifoldCascadeTerminatesAndRestoresManifoldness() {
	m := halfedge.NewSimpleMesh()
	center := m.AddVertex()
	rim := make([]halfedge.VertexIndex, 5)
	for i := range rim {
		rim[i] = m.AddVertex()
	}

	faces := make([]halfedge.FaceIndex, 5)
	for i := 0; i < 5; i++ {
		j := (i + 1) % 5
		faces[i] = m.AddFace([]halfedge.VertexIndex{center, rim[i], rim[j]})
		require.True(s.T(), faces[i].IsValid())
	}
	require.True(s.T(), m.IsManifold())

	m.DeleteFace(faces[0])

	require.True(s.T(), m.IsManifold())
	deletedCount := 0
	for _, f := range faces {
		if m.IsDeletedFace(f) {
			deletedCount++
		}
	}
	require.GreaterOrEqual(s.T(), deletedCount, 1)
}

// findHalfEdgeBetween walks a's outgoing fan for the half-edge terminating
// at b; it panics if none exists, since every test that uses it first
// establishes the edge.
func findHalfEdgeBetween[VD, HD, ED, FD any](m *halfedge.Mesh[VD, HD, ED, FD], a, b halfedge.VertexIndex) halfedge.HalfEdgeIndex {
	circ := m.OutgoingHalfEdgeAroundVertex(a)
	start := circ.CurrentHalfEdge()
	for {
		if m.TerminatingVertex(circ.CurrentHalfEdge()) == b {
			return circ.CurrentHalfEdge()
		}
		circ.Next()
		if circ.CurrentHalfEdge() == start {
			panic("no half-edge between given vertices")
		}
	}
}

func TestDeleteSuite(t *testing.T) {
	suite.Run(t, new(DeleteSuite))
}
