// File: methods_clone.go
// Role: Deep copy (Clone) and DisjointUnion, which copies another graph's edges
//       under a freshly minted component ID.
// Determinism:
//   - The i-th DisjointUnion on a graph receives component i.
// Concurrency:
//   - Clone takes mu.RLock. DisjointUnion snapshots h first, then locks g,
//     so g.DisjointUnion(g) cannot deadlock.

package core

import "fmt"

// Clone returns an independent deep copy, including the component counter.
// Complexity: O(V).
func (g *ColoredGraph) Clone() *ColoredGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &ColoredGraph{
		dim:           g.dim,
		adj:           make(map[Vertex]*slots, len(g.adj)),
		nextComponent: g.nextComponent,
	}
	for v, s := range g.adj {
		cp := *s
		out.adj[v] = &cp
	}

	return out
}

// DisjointUnion copies every edge of h into g, rewriting each endpoint's
// Component to a fresh ID, and returns that ID. Vertices of h without
// edges are not copied.
//
// Errors: ErrPaletteMismatch if the dimensions differ; ErrBadArgument for nil h.
// Complexity: O(E_h).
func (g *ColoredGraph) DisjointUnion(h *ColoredGraph) (int, error) {
	if h == nil {
		return 0, fmt.Errorf("DisjointUnion(nil): %w", ErrBadArgument)
	}
	if h.dim != g.dim {
		return 0, fmt.Errorf("DisjointUnion: dimension %d vs %d: %w", g.dim, h.dim, ErrPaletteMismatch)
	}
	edges := h.Edges()

	g.mu.Lock()
	defer g.mu.Unlock()

	comp := g.nextComponent
	g.nextComponent++
	for _, e := range edges {
		u, v := e.U, e.V
		u.Component, v.Component = comp, comp
		g.setEdge(u, v, e.Color)
	}

	return comp, nil
}
