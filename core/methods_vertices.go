// File: methods_vertices.go
// Role: Vertex queries: Order, Vertices, HasVertex, Dimension, IsClosed,
//       CheckSymmetry, Cleanup.
// Determinism:
//   - Vertices() is sorted by Vertex.Compare.
// Concurrency:
//   - Queries take mu.RLock; Cleanup takes mu.Lock.

package core

import (
	"fmt"

	"golang.org/x/exp/maps"
)

// Order returns the number of vertices.
func (g *ColoredGraph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Dimension returns d; colours run 0..d.
func (g *ColoredGraph) Dimension() int { return g.dim }

// Vertices returns all vertices sorted ascending.
// Complexity: O(V log V).
func (g *ColoredGraph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices()
}

func (g *ColoredGraph) vertices() []Vertex {
	vs := maps.Keys(g.adj)
	sortVertices(vs)

	return vs
}

// HasVertex reports whether v is in the graph.
func (g *ColoredGraph) HasVertex(v Vertex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[v]

	return ok
}

// IsClosed reports whether every vertex has all Dimension()+1 colours, i.e.
// the resulting triangulation has no boundary facets. The empty graph is closed.
func (g *ColoredGraph) IsClosed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, s := range g.adj {
		for c := 0; c <= g.dim; c++ {
			if s[c].IsEmpty() {
				return false
			}
		}
	}

	return true
}

// CheckSymmetry verifies that u -c- v implies v -c- u for every slot.
// Returns ErrAsymmetric naming the first offending slot in vertex order.
func (g *ColoredGraph) CheckSymmetry() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, u := range g.vertices() {
		for c := 0; c <= g.dim; c++ {
			v := g.adj[u][c]
			if v.IsEmpty() {
				continue
			}
			if back := g.neighbor(v, c); back != u {
				return fmt.Errorf("%w: %v -%d- %v but %v -%d- %v", ErrAsymmetric, u, c, v, v, c, back)
			}
		}
	}

	return nil
}

// Cleanup drops the empty sentinel if it was ever keyed, and vertices left
// without any neighbour after fusion.
func (g *ColoredGraph) Cleanup() {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.adj, EmptyVertex())
	for v, s := range g.adj {
		isolated := true
		for c := 0; c <= g.dim; c++ {
			isolated = isolated && s[c].IsEmpty()
		}
		if isolated {
			delete(g.adj, v)
		}
	}
}
