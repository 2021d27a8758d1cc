package core_test

import (
	"testing"

	"github.com/katalvlaran/kirbytri/core"
)

// BenchmarkAssembly unions n square templates and runs the colour-4 passes.
func BenchmarkAssembly(b *testing.B) {
	tmpl, _ := core.NewColoredGraph()
	v := func(id int) core.Vertex { return core.Vertex{ID: id} }
	_ = tmpl.AddEdge(v(1), v(2), 0)
	_ = tmpl.AddEdge(v(2), v(3), 1)
	_ = tmpl.AddEdge(v(3), v(4), 2)
	_ = tmpl.AddEdge(v(4), v(1), 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := core.NewColoredGraph()
		for j := 0; j < 64; j++ {
			_, _ = g.DisjointUnion(tmpl)
		}
		_ = g.AddQuadriEdges(g.QuadriGraphFind())
		g.AddDoubleOneEdges()
		_ = g.GluingList()
	}
}
