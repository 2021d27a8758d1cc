// File: methods_adjacent.go
// Role: Template fusion. FuseList finds matching placeholder stubs across
//       components; Fuse splices two stubs out of the graph; FuseAll does both.
// Determinism:
//   - FuseList is ordered by (first vertex, second vertex) in vertex order.
// AI-HINT (file):
//   - Two stubs match when they carry the same strand label, lie in different
//     components, and their template IDs are complementary: a%4 == (5-b%4)%4.

package core

import "fmt"

// FuseList returns the stub pairs (a, b) to fuse, with a.Component < b.Component.
// Complexity: O(V log V + P) where P is the number of same-label candidates.
func (g *ColoredGraph) FuseList() [][2]Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.fuseList()
}

func (g *ColoredGraph) fuseList() [][2]Vertex {
	vs := g.vertices()
	byStrand := make(map[int][]Vertex)
	for _, v := range vs {
		if v.Strand != 0 {
			byStrand[v.Strand] = append(byStrand[v.Strand], v)
		}
	}

	var out [][2]Vertex
	for _, a := range vs {
		if a.Strand == 0 {
			continue
		}
		for _, b := range byStrand[a.Strand] {
			if a.Component < b.Component && stubsMatch(a.ID, b.ID) {
				out = append(out, [2]Vertex{a, b})
			}
		}
	}

	return out
}

func stubsMatch(a, b int) bool {
	return mod4(a) == mod4(5-mod4(b))
}

func mod4(x int) int { return ((x % 4) + 4) % 4 }

// Fuse removes u and v and joins their neighbours colour by colour:
// for each c, u's c-neighbour becomes adjacent to v's c-neighbour.
// A slot empty on one side leaves the other side's neighbour open on c.
//
// Errors: ErrVertexNotFound if u or v is missing; ErrSelfEdge if u == v.
// Complexity: O(d).
func (g *ColoredGraph) Fuse(u, v Vertex) error {
	if u == v {
		return fmt.Errorf("Fuse(%v, %v): %w", u, v, ErrSelfEdge)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.fuse(u, v)
}

func (g *ColoredGraph) fuse(u, v Vertex) error {
	su, okU := g.adj[u]
	sv, okV := g.adj[v]
	if !okU || !okV {
		return fmt.Errorf("Fuse(%v, %v): %w", u, v, ErrVertexNotFound)
	}

	for c := 0; c <= g.dim; c++ {
		a, b := su[c], sv[c]
		if !a.IsEmpty() && a != v {
			g.adj[a][c] = b
		}
		if !b.IsEmpty() && b != u {
			g.adj[b][c] = a
		}
	}
	delete(g.adj, u)
	delete(g.adj, v)

	return nil
}

// FuseAll fuses every pair from FuseList and returns how many were fused.
// Pairs whose stubs were consumed by an earlier fusion are skipped.
func (g *ColoredGraph) FuseAll() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := 0
	for _, p := range g.fuseList() {
		if g.fuse(p[0], p[1]) == nil {
			n++
		}
	}

	return n
}
