// File: passes.go
// Role: Identification passes that fill colour d (the top colour) after the
//       boundary graph has been assembled from colour 0..d-1 templates.
// Order used by the compiler:
//   AddQuadriEdges → [AddOneHandleIdentEdges → AddHighlightEdges →]
//   AddDoubleOneEdges → [AddRemainderEdges]
// Determinism:
//   - Every pass visits vertices in sorted order and sees the edges added by
//     earlier steps of the same pass.

package core

import "fmt"

// AddQuadriEdges closes each 4-cycle with three colour-d edges:
// q0–q1, q2–q3, and (q3's 1-neighbour)–(q0's 1-neighbour).
// Empty quadricolours are ignored.
//
// Errors: ErrVertexNotFound if a cycle vertex is missing; checked before any edge is added.
func (g *ColoredGraph) AddQuadriEdges(qs []Quadricolour) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, q := range qs {
		if q.IsEmpty() {
			continue
		}
		for _, v := range q {
			if _, ok := g.adj[v]; !ok {
				return fmt.Errorf("AddQuadriEdges: %v: %w", v, ErrVertexNotFound)
			}
		}
	}

	d := g.dim
	for _, q := range qs {
		if q.IsEmpty() {
			continue
		}
		g.setEdge(q[0], q[1], d)
		g.setEdge(q[2], q[3], d)
		p4, p5 := g.neighbor(q[3], 1), g.neighbor(q[0], 1)
		if !p4.IsEmpty() && !p5.IsEmpty() && p4 != p5 {
			g.setEdge(p4, p5, d)
		}
	}

	return nil
}

// AddOneHandleIdentEdges joins each marked pair of a 1-handle with colour d.
//
// Errors: ErrVertexNotFound or ErrSelfEdge; checked before any edge is added.
func (g *ColoredGraph) AddOneHandleIdentEdges(pairs [][2]Vertex) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range pairs {
		if p[0] == p[1] {
			return fmt.Errorf("AddOneHandleIdentEdges: %v: %w", p[0], ErrSelfEdge)
		}
		for _, v := range p {
			if _, ok := g.adj[v]; !ok {
				return fmt.Errorf("AddOneHandleIdentEdges: %v: %w", v, ErrVertexNotFound)
			}
		}
	}
	for _, p := range pairs {
		g.setEdge(p[0], p[1], g.dim)
	}

	return nil
}

// Highlight pairs, by template vertex ID.
var (
	underPairs = [][2]int{{1, 6}, {2, 5}, {3, 4}, {7, 8}}
	overPairs  = [][2]int{{1, 2}, {5, 6}}
	curlPairs  = [][2]int{{1, 4}, {2, 3}}
)

// AddHighlightEdges adds colour-d edges inside each highlighted crossing.
// The pairs depend on the site kind:
//
//	under: (1,6) (2,5) (3,4) (7,8)
//	over:  (1,2) (5,6)
//	curl:  (1,4) (2,3), each only if both colour-d slots are still empty
//
// Only internal vertices (strand 0) of the site's component are used.
//
// Errors: ErrVertexNotFound if a site lacks a required vertex; checked before any edge is added.
func (g *ColoredGraph) AddHighlightEdges(sites []HighlightSite) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, s := range sites {
		for _, p := range sitePairs(s.Kind) {
			for _, id := range p {
				v := Vertex{ID: id, Component: s.Component}
				if _, ok := g.adj[v]; !ok {
					return fmt.Errorf("AddHighlightEdges: %s site %d: %v: %w", s.Kind, s.Component, v, ErrVertexNotFound)
				}
			}
		}
	}

	d := g.dim
	for _, s := range sites {
		for _, p := range sitePairs(s.Kind) {
			x := Vertex{ID: p[0], Component: s.Component}
			y := Vertex{ID: p[1], Component: s.Component}
			if s.Kind == SiteCurl && (!g.neighbor(x, d).IsEmpty() || !g.neighbor(y, d).IsEmpty()) {
				continue
			}
			g.setEdge(x, y, d)
		}
	}

	return nil
}

func sitePairs(k SiteKind) [][2]int {
	switch k {
	case SiteUnder:
		return underPairs
	case SiteOver:
		return overPairs
	case SiteCurl:
		return curlPairs
	}

	return nil
}

// AddDoubleOneEdges doubles colour 1 into colour d: each vertex whose
// 1-neighbour also lacks colour d is joined to it with colour d.
// Returns the number of edges added.
func (g *ColoredGraph) AddDoubleOneEdges() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	d, n := g.dim, 0
	for _, u := range g.vertices() {
		v := g.neighbor(u, 1)
		if v.IsEmpty() || !u.Less(v) {
			continue
		}
		if g.neighbor(u, d).IsEmpty() && g.neighbor(v, d).IsEmpty() {
			g.setEdge(u, v, d)
			n++
		}
	}

	return n
}

// AddRemainderEdges pairs up the vertices still missing colour d. From such a
// vertex x it walks alternately along colours 1 and d until it reaches a
// vertex y without colour d, then joins x–y with colour d.
//
// A walk that falls off the graph or exceeds 2·Order() steps leaves x open.
// Returns the number of edges added.
func (g *ColoredGraph) AddRemainderEdges() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	d, n := g.dim, 0
	limit := 2*len(g.adj) + 2
	for _, x := range g.vertices() {
		if !g.neighbor(x, d).IsEmpty() {
			continue
		}
		y, ok := g.walkToOpen(x, limit)
		if !ok || y == x {
			continue
		}
		g.setEdge(x, y, d)
		n++
	}

	return n
}

// walkToOpen follows colours 1, d, 1, d, ... from x until a vertex without
// colour d, reporting false if the walk leaves the graph or runs too long.
func (g *ColoredGraph) walkToOpen(x Vertex, limit int) (Vertex, bool) {
	y := x
	for step := 0; step < limit; step++ {
		c := 1
		if step%2 == 1 {
			c = g.dim
		}
		y = g.neighbor(y, c)
		if y.IsEmpty() {
			return y, false
		}
		if g.neighbor(y, g.dim).IsEmpty() {
			return y, true
		}
	}

	return y, false
}
