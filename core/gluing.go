package core

// GluingList converts the edge list into facet gluings: simplex i is the i-th
// vertex in sorted order, and edge u -c- v glues facet c of u to facet c of v
// by the identity permutation.
//
// Determinism: the order follows Edges().
// Complexity: O(V log V + E).
func (g *ColoredGraph) GluingList() []Gluing {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vs := g.vertices()
	index := make(map[Vertex]int, len(vs))
	for i, v := range vs {
		index[v] = i
	}

	edges := g.edges()
	out := make([]Gluing, 0, len(edges))
	for _, e := range edges {
		out = append(out, Gluing{From: index[e.U], To: index[e.V], Color: e.Color})
	}

	return out
}
