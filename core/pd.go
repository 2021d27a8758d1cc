package core

import "fmt"

// PDSub replaces every placeholder strand position by its PD label:
// a vertex (id, s, c) with 1 ≤ s ≤ 4 becomes (id, code[c][s-1], c),
// keeping its edges. Internal vertices (strand 0) are untouched.
//
// Call PDSub once, after all DisjointUnion calls: substituted labels may
// themselves lie in 1..4.
//
// Errors: ErrBadCode if a placeholder's component has no row in code. The
// graph is unchanged on error.
// Complexity: O(V log V).
func (g *ColoredGraph) PDSub(code [][4]int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var stubs []Vertex
	for _, v := range g.vertices() {
		if v.Strand < 1 || v.Strand > 4 {
			continue
		}
		if v.Component < 0 || v.Component >= len(code) {
			return fmt.Errorf("PDSub: %v with %d crossings: %w", v, len(code), ErrBadCode)
		}
		stubs = append(stubs, v)
	}

	moved := make(map[Vertex]Vertex, len(stubs))
	for _, v := range stubs {
		nv := v
		nv.Strand = code[v.Component][v.Strand-1]
		moved[v] = nv
	}
	rename := func(v Vertex) Vertex {
		if nv, ok := moved[v]; ok {
			return nv
		}

		return v
	}

	next := make(map[Vertex]*slots, len(g.adj))
	for v, s := range g.adj {
		for c := range s {
			if !s[c].IsEmpty() {
				s[c] = rename(s[c])
			}
		}
		next[rename(v)] = s
	}
	g.adj = next

	return nil
}
