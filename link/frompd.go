// SPDX-License-Identifier: MIT

package link

// end is one occurrence of a strand label: crossing c, position p (0..3).
type end struct{ c, p int }

// pass is one traversal of a crossing: entering at position in, leaving at out,
// arriving along label arcIn and departing along arcOut.
type pass struct {
	c, in, out    int
	arcIn, arcOut int
}

// FromPD builds a link from a PD code. Crossing i is code[i]. Components are
// numbered by their smallest strand label, and each component starts at the
// strand reference its smallest label leaves from, so FromPD(l.PDData())
// reproduces l's crossing and component order.
//
// Over-strand directions follow from the under strands of the same component.
// A component made only of over passes is oriented by the Knot Atlas rule:
// at its first crossing the over strand runs from label l to label j when
// j − l = 1 or l − j > 1.
//
// Errors: ErrInvalidPD for a label outside 1..2n, a label not used exactly
// twice, or an under strand that does not run from position 0 to position 2.
//
// Complexity: O(n).
func FromPD(code PDCode) (*Link, error) {
	n := len(code)
	l := &Link{crossings: make([]*Crossing, n)}
	for i := range l.crossings {
		l.crossings[i] = &Crossing{index: i}
	}
	if n == 0 {
		return l, nil
	}

	occ := make([][]end, 2*n+1)
	for c, q := range code {
		for p, x := range q {
			if x < 1 || x > 2*n {
				return nil, pdErrorf("label %d outside 1..%d", x, 2*n)
			}
			occ[x] = append(occ[x], end{c: c, p: p})
		}
	}
	for x := 1; x <= 2*n; x++ {
		if len(occ[x]) != 2 {
			return nil, pdErrorf("label %d appears %d times", x, len(occ[x]))
		}
		a, b := occ[x][0].p, occ[x][1].p
		if (a == 0 && b == 0) || (a == 2 && b == 2) {
			return nil, pdErrorf("label %d sits at under position %d twice", x, a)
		}
	}

	used := make([]bool, 2*n+1)
	for first := 1; first <= 2*n; first++ {
		if used[first] {
			continue
		}
		passes := trace(code, occ, first)
		passes, err := orient(code, passes)
		if err != nil {
			return nil, err
		}
		l.wire(passes)
		for _, ps := range passes {
			used[ps.arcIn] = true
		}
	}

	return l, nil
}

// trace follows label first around its component in an arbitrary direction.
func trace(code PDCode, occ [][]end, first int) []pass {
	arc, to := first, occ[first][1]
	var out []pass
	for {
		q := (to.p + 2) % 4
		next := code[to.c][q]
		dst := occ[next][0]
		if dst == (end{c: to.c, p: q}) {
			dst = occ[next][1]
		}
		out = append(out, pass{c: to.c, in: to.p, out: q, arcIn: arc, arcOut: next})
		arc, to = next, dst
		if arc == first && to == occ[first][1] {
			return out
		}
	}
}

// orient reverses passes if needed so that every under pass runs 0 → 2.
func orient(code PDCode, passes []pass) ([]pass, error) {
	forward, decided := true, false
	for _, ps := range passes {
		if ps.in == 0 || ps.in == 2 {
			forward, decided = ps.in == 0, true
			break
		}
	}
	if !decided {
		q := code[passes[0].c]
		j, l := q[1], q[3]
		positive := j-l == 1 || l-j > 1
		forward = (passes[0].in == 3) == positive
	}

	if !forward {
		rev := make([]pass, len(passes))
		for i, ps := range passes {
			rev[len(passes)-1-i] = pass{c: ps.c, in: ps.out, out: ps.in, arcIn: ps.arcOut, arcOut: ps.arcIn}
		}
		passes = rev
	}
	for _, ps := range passes {
		if ps.in == 2 {
			return nil, pdErrorf("crossing %d: under strand runs from position 2 to 0", ps.c)
		}
	}

	return passes, nil
}

// wire links the passes of one component into a cycle of strand references,
// assigns over-crossing signs and records the component start.
func (l *Link) wire(passes []pass) {
	refs := make([]StrandRef, len(passes))
	start, minArc := 0, passes[0].arcOut
	for i, ps := range passes {
		c := l.crossings[ps.c]
		if ps.in == 0 {
			refs[i] = c.Lower()
		} else {
			refs[i] = c.Upper()
			c.sign = -1
			if ps.in == 3 {
				c.sign = 1
			}
		}
		if ps.arcOut < minArc {
			start, minArc = i, ps.arcOut
		}
	}
	for i, r := range refs {
		nx := refs[(i+1)%len(refs)]
		r.crossing.next[r.strand] = nx
		nx.crossing.prev[nx.strand] = r
	}
	l.components = append(l.components, refs[start])
}
