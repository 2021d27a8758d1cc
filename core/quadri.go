package core

// QuadriGraphFind lists the colour-(0,1,2,3) 4-cycles of the graph.
//
// For each vertex n in order, with a = n's 0-neighbour and b = n's 3-neighbour,
// the cycle [n, a, a's 1-neighbour, b] is reported when a's 1-neighbour is
// also b's 2-neighbour. Each geometric cycle is reported once per starting
// vertex that satisfies the rule.
//
// Complexity: O(V log V).
func (g *ColoredGraph) QuadriGraphFind() []Quadricolour {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Quadricolour
	for _, n := range g.vertices() {
		a, b := g.neighbor(n, 0), g.neighbor(n, 3)
		if a.IsEmpty() || b.IsEmpty() {
			continue
		}
		mid := g.neighbor(a, 1)
		if mid.IsEmpty() || mid != g.neighbor(b, 2) {
			continue
		}
		out = append(out, Quadricolour{n, a, mid, b})
	}

	return out
}

// QuadriOnComponents returns the first cycle from QuadriGraphFind whose set of
// components equals comps (compared as sets), and whether one was found.
func (g *ColoredGraph) QuadriOnComponents(comps []int) (Quadricolour, bool) {
	want := make(map[int]bool, len(comps))
	for _, c := range comps {
		want[c] = true
	}
	for _, q := range g.QuadriGraphFind() {
		have := q.Components()
		if len(have) != len(want) {
			continue
		}
		match := true
		for _, c := range have {
			match = match && want[c]
		}
		if match {
			return q, true
		}
	}

	return Quadricolour{}, false
}
