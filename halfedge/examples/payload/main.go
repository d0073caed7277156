// Package main attaches string labels to vertices and faces, then recovers
// a face's index from a payload pointer handed back by a circulator.
//
// Playground: not applicable (local-only example).
package main

import (
	"fmt"

	"github.com/katalvlaran/lvlath-halfedge/halfedge"
)

func main() {
	m := halfedge.NewMesh[string, halfedge.NoData, halfedge.NoData, string]()

	a := m.AddVertexData("a")
	b := m.AddVertexData("b")
	c := m.AddVertexData("c")

	f := m.AddFaceData([]halfedge.VertexIndex{a, b, c}, "triangle-1", halfedge.NoData{}, halfedge.NoData{})

	ref := m.FaceData(f)
	fmt.Println("face label:", *ref)

	recovered := m.GetFaceIndex(ref)
	fmt.Println("recovered index matches:", recovered == f)
}
