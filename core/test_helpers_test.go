// Package core_test contains fixtures shared by the ColoredGraph tests.
package core_test

import (
	"testing"

	"github.com/katalvlaran/kirbytri/core"
	"github.com/stretchr/testify/require"
)

// vx is shorthand for a vertex literal.
func vx(id, strand, comp int) core.Vertex {
	return core.Vertex{ID: id, Strand: strand, Component: comp}
}

// iv is an internal vertex (strand 0) of component comp.
func iv(id, comp int) core.Vertex { return vx(id, 0, comp) }

func newGraph(t *testing.T, opts ...core.GraphOption) *core.ColoredGraph {
	t.Helper()
	g, err := core.NewColoredGraph(opts...)
	require.NoError(t, err)

	return g
}

func mustEdge(t *testing.T, g *core.ColoredGraph, u, v core.Vertex, c int) {
	t.Helper()
	require.NoError(t, g.AddEdge(u, v, c))
}

// square builds the single 4-cycle 1 -0- 2 -1- 3 -2- 4 -3- 1 in component 0.
func square(t *testing.T) *core.ColoredGraph {
	t.Helper()
	g := newGraph(t)
	mustEdge(t, g, iv(1, 0), iv(2, 0), 0)
	mustEdge(t, g, iv(2, 0), iv(3, 0), 1)
	mustEdge(t, g, iv(3, 0), iv(4, 0), 2)
	mustEdge(t, g, iv(4, 0), iv(1, 0), 3)

	return g
}

// stubTemplate is one internal simplex joined on colour 0 to a placeholder
// stub with template ID stubID on PD position 1.
func stubTemplate(t *testing.T, stubID int) *core.ColoredGraph {
	t.Helper()
	g := newGraph(t)
	mustEdge(t, g, vx(1, 0, 0), vx(stubID, 1, 0), 0)

	return g
}

// crossingInternals adds internal vertices 1..n of component comp, chained on colour 0
// in pairs (1,2) (3,4) ... so each exists without touching colour 4.
func crossingInternals(t *testing.T, g *core.ColoredGraph, comp, n int) {
	t.Helper()
	for id := 1; id < n; id += 2 {
		mustEdge(t, g, iv(id, comp), iv(id+1, comp), 0)
	}
}
