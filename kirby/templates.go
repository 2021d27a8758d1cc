// SPDX-License-Identifier: MIT
// Package kirby: crossing templates.
//
// Each crossing of the framed diagram is replaced by a fixed 4-coloured graph.
// Vertex IDs up to `internal` are interior (strand 0); the remaining IDs come
// in blocks of four, and every block carries a placeholder strand 1..4 naming
// the PD position whose label core.PDSub will substitute.
//
//   regular: 8 interior vertices, blocks → strands 1, 2, 3, 4 (24 vertices)
//   curl:    4 interior vertices, two blocks                   (12 vertices)

package kirby

import (
	"fmt"

	"github.com/katalvlaran/kirbytri/core"
)

type templateEdge struct{ u, v, c int }

type template struct {
	name     string
	internal int
	blocks   []int
	edges    []templateEdge
}

var (
	regularPositive = template{
		name:     "regular+",
		internal: 8,
		blocks:   []int{1, 2, 3, 4},
		edges: []templateEdge{
			{1, 6, 0}, {1, 16, 1}, {1, 8, 2}, {1, 2, 3},
			{2, 5, 0}, {2, 13, 1}, {2, 3, 2},
			{3, 11, 0}, {3, 12, 1}, {3, 8, 3},
			{4, 10, 0}, {4, 9, 1}, {4, 5, 2}, {4, 7, 3},
			{5, 24, 1}, {5, 6, 3},
			{6, 21, 1}, {6, 7, 2},
			{7, 19, 0}, {7, 20, 1},
			{8, 18, 0}, {8, 17, 1},
			{14, 23, 0},
			{15, 22, 0},
		},
	}

	regularNegative = template{
		name:     "regular-",
		internal: 8,
		blocks:   []int{1, 2, 3, 4},
		edges: []templateEdge{
			{1, 6, 0}, {1, 24, 1}, {1, 8, 2}, {1, 2, 3},
			{2, 5, 0}, {2, 21, 1}, {2, 3, 2},
			{3, 19, 0}, {3, 20, 1}, {3, 8, 3},
			{4, 18, 0}, {4, 17, 1}, {4, 5, 2}, {4, 7, 3},
			{5, 16, 1}, {5, 6, 3},
			{6, 13, 1}, {6, 7, 2},
			{7, 11, 0}, {7, 12, 1},
			{8, 10, 0}, {8, 9, 1},
			{14, 23, 0},
			{15, 22, 0},
		},
	}

	positiveCurlEdges = []templateEdge{
		{1, 6, 0}, {1, 9, 1}, {1, 2, 2}, {1, 4, 3},
		{2, 7, 0}, {2, 8, 1}, {2, 3, 3},
		{3, 10, 0}, {3, 5, 1}, {3, 4, 2},
		{4, 11, 0}, {4, 12, 1},
	}

	negativeCurlEdges = []templateEdge{
		{1, 6, 0}, {1, 5, 1}, {1, 2, 2}, {1, 4, 3},
		{2, 7, 0}, {2, 12, 1}, {2, 3, 3},
		{3, 10, 0}, {3, 9, 1}, {3, 4, 2},
		{4, 11, 0}, {4, 8, 1},
	}

	curlYZZ = template{name: "curl-yzz", internal: 4, blocks: []int{1, 2}, edges: positiveCurlEdges}
	curlXXZ = template{name: "curl-xxz", internal: 4, blocks: []int{4, 3}, edges: positiveCurlEdges}
	curlYYW = template{name: "curl-yyw", internal: 4, blocks: []int{1, 4}, edges: negativeCurlEdges}
	curlXYX = template{name: "curl-xyx", internal: 4, blocks: []int{2, 3}, edges: negativeCurlEdges}
)

// templateFor maps a crossing class to its template. A regular crossing
// needs an orientation of ±1; curls ignore it.
func templateFor(cc CrossingClass) (*template, error) {
	switch cc.Type {
	case Regular:
		switch cc.Orientation {
		case 1:
			return &regularPositive, nil
		case -1:
			return &regularNegative, nil
		}
	case CurlYZZ:
		return &curlYZZ, nil
	case CurlXXZ:
		return &curlXXZ, nil
	case CurlYYW:
		return &curlYYW, nil
	case CurlXYX:
		return &curlXYX, nil
	}

	return nil, fmt.Errorf("no template for %v crossing with orientation %d: %w", cc.Type, cc.Orientation, ErrInvalidArgument)
}

func (t *template) vertex(id int) core.Vertex {
	if id <= t.internal {
		return core.Vertex{ID: id}
	}

	return core.Vertex{ID: id, Strand: t.blocks[(id-t.internal-1)/4]}
}

// graph instantiates t on component 0 of a fresh graph of dimension dim.
func (t *template) graph(dim int) (*core.ColoredGraph, error) {
	g, err := core.NewColoredGraph(core.WithDimension(dim))
	if err != nil {
		return nil, err
	}
	for _, e := range t.edges {
		if err := g.AddEdge(t.vertex(e.u), t.vertex(e.v), e.c); err != nil {
			return nil, fmt.Errorf("template %s: %w", t.name, err)
		}
	}

	return g, nil
}

// Template returns a fresh copy of the template graph for cc, with the
// palette of dimension dim (3 or 4).
//
// Errors: ErrInvalidArgument for a regular crossing without orientation;
// core errors for an unsupported dim.
func Template(cc CrossingClass, dim int) (*core.ColoredGraph, error) {
	t, err := templateFor(cc)
	if err != nil {
		return nil, err
	}

	return t.graph(dim)
}
