package core_test

import (
	"fmt"

	"github.com/katalvlaran/kirbytri/core"
)

// ExampleColoredGraph closes a colour-(0,1,2,3) square on colour 4 and lists its gluings.
func ExampleColoredGraph() {
	g, _ := core.NewColoredGraph()
	v := func(id int) core.Vertex { return core.Vertex{ID: id} }
	_ = g.AddEdge(v(1), v(2), 0)
	_ = g.AddEdge(v(2), v(3), 1)
	_ = g.AddEdge(v(3), v(4), 2)
	_ = g.AddEdge(v(4), v(1), 3)

	_ = g.AddQuadriEdges(g.QuadriGraphFind())
	for _, gl := range g.GluingList() {
		fmt.Println(gl.From, gl.To, gl.Color)
	}
	// Output:
	// 0 1 0
	// 0 3 3
	// 0 1 4
	// 1 2 1
	// 2 3 2
	// 2 3 4
}
