// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge, Neighbor, Neighbors, Edges,
//       plus the unexported setEdge/clearSlot used by every pass.
// Determinism:
//   - Edges() lists each edge once with U < V, sorted by (U, Color).
// Concurrency:
//   - Mutators take mu.Lock; queries take mu.RLock.
// AI-HINT (file):
//   - A vertex has at most one neighbour per colour. Adding an edge on an
//     occupied slot detaches the former partner, so adjacency stays symmetric.

package core

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// AddEdge joins u and v with colour c, creating either vertex as needed.
//
// If u or v already had a c-neighbour, that neighbour's c-slot is cleared, so
// a graph built only through AddEdge always passes CheckSymmetry. A plain
// slot overwrite would leave the old neighbour pointing at u or v.
//
// Errors:
//   - ErrSelfEdge if u == v.
//   - ErrColorOutOfRange if c is outside 0..Dimension().
//   - ErrEmptyEndpoint if either endpoint is EmptyVertex().
//
// The graph is unchanged on error.
// Complexity: O(1).
func (g *ColoredGraph) AddEdge(u, v Vertex, c int) error {
	if err := g.checkEdge(u, v, c); err != nil {
		return fmt.Errorf("AddEdge(%v, %v, %d): %w", u, v, c, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.setEdge(u, v, c)

	return nil
}

func (g *ColoredGraph) checkEdge(u, v Vertex, c int) error {
	switch {
	case u.IsEmpty() || v.IsEmpty():
		return ErrEmptyEndpoint
	case u == v:
		return ErrSelfEdge
	case c < 0 || c > g.dim:
		return ErrColorOutOfRange
	}

	return nil
}

// setEdge writes u -c- v. Caller holds mu and has validated the arguments.
func (g *ColoredGraph) setEdge(u, v Vertex, c int) {
	su, sv := g.ensure(u), g.ensure(v)
	if old := su[c]; !old.IsEmpty() && old != v {
		g.clearSlot(old, c)
	}
	if old := sv[c]; !old.IsEmpty() && old != u {
		g.clearSlot(old, c)
	}
	su[c], sv[c] = v, u
}

func (g *ColoredGraph) clearSlot(v Vertex, c int) {
	if s, ok := g.adj[v]; ok {
		s[c] = EmptyVertex()
	}
}

func (g *ColoredGraph) ensure(v Vertex) *slots {
	s, ok := g.adj[v]
	if !ok {
		s = emptySlots()
		g.adj[v] = s
	}

	return s
}

// neighbor is Neighbor without locking; missing vertices yield EmptyVertex().
func (g *ColoredGraph) neighbor(v Vertex, c int) Vertex {
	if s, ok := g.adj[v]; ok && c >= 0 && c <= g.dim {
		return s[c]
	}

	return EmptyVertex()
}

// Neighbor returns the colour-c neighbour of v, or EmptyVertex() if v has none
// or is not in the graph.
func (g *ColoredGraph) Neighbor(v Vertex, c int) Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.neighbor(v, c)
}

// Neighbors returns the Dimension()+1 neighbour slots of v indexed by colour.
// Empty slots hold EmptyVertex(). Returns ErrVertexNotFound for a missing v.
func (g *ColoredGraph) Neighbors(v Vertex) ([]Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%v): %w", v, ErrVertexNotFound)
	}
	out := make([]Vertex, g.dim+1)
	copy(out, s[:g.dim+1])

	return out, nil
}

// Edges returns every edge once, U < V, sorted by U then colour.
// Complexity: O(V log V + V·d).
func (g *ColoredGraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges()
}

func (g *ColoredGraph) edges() []Edge {
	var out []Edge
	for _, u := range g.vertices() {
		s := g.adj[u]
		for c := 0; c <= g.dim; c++ {
			if v := s[c]; !v.IsEmpty() && u.Less(v) {
				out = append(out, Edge{U: u, V: v, Color: c})
			}
		}
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *ColoredGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for u, s := range g.adj {
		for c := 0; c <= g.dim; c++ {
			if v := s[c]; !v.IsEmpty() && u.Less(v) {
				n++
			}
		}
	}

	return n
}

// String renders one edge as "(u) -c- (v)".
func (e Edge) String() string {
	return fmt.Sprintf("%v -%d- %v", e.U, e.Color, e.V)
}

// sortVertices sorts in place by Vertex.Compare.
func sortVertices(vs []Vertex) {
	slices.SortFunc(vs, func(a, b Vertex) int { return a.Compare(b) })
}
