// SPDX-License-Identifier: MIT

package triangulation

import (
	"fmt"
	"sort"
	"strings"
)

// Signature alphabet: a-z, A-Z, 0-9, '+', '-' encode 0..63.

func sval(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 26
	case c >= '0' && c <= '9':
		return int(c-'0') + 52
	case c == '+':
		return 62
	}

	return 63
}

func schar(v int) byte {
	switch {
	case v < 26:
		return byte(v) + 'a'
	case v < 52:
		return byte(v-26) + 'A'
	case v < 62:
		return byte(v-52) + '0'
	case v == 62:
		return '+'
	}

	return '-'
}

func svalid(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '+' || c == '-'
}

// sappend writes val as nChars 6-bit digits, least significant first.
func sappend(sb *strings.Builder, val, nChars int) {
	for ; nChars > 0; nChars-- {
		sb.WriteByte(schar(val & 0x3F))
		val >>= 6
	}
}

func sread(s string, nChars int) int {
	v := 0
	for i := 0; i < nChars; i++ {
		v |= sval(s[i]) << (6 * i)
	}

	return v
}

func sappendTrits(sb *strings.Builder, trits []byte) {
	var v byte
	for i, t := range trits {
		v |= t << (2 * i)
	}
	sb.WriteByte(schar(int(v)))
}

func bitsRequired(n int) int {
	k := 0
	for (1 << k) < n {
		k++
	}

	return k
}

func charsPerPerm(dim int) int {
	return (bitsRequired(factorial(dim+1)) + 5) / 6
}

// IsoSig returns the classic isomorphism signature: for every connected
// component, the lexicographically smallest encoding over all starting
// simplices and vertex labellings; the component strings are then sorted and
// concatenated. The empty triangulation has signature "a".
//
// Two triangulations are combinatorially isomorphic iff their signatures are equal.
//
// Complexity: O(n²·(d+1)!·d) for n simplices.
func (t *Triangulation) IsoSig() string {
	if len(t.simplices) == 0 {
		return string(schar(0))
	}

	perms := AllPerms(t.dim + 1)
	var comps []string
	for _, comp := range t.Components() {
		best := ""
		for k, si := range comp {
			for pi, p := range perms {
				cur := t.isoSigFrom(si, p)
				if (k == 0 && pi == 0) || cur < best {
					best = cur
				}
			}
		}
		comps = append(comps, best)
	}
	sort.Strings(comps)

	return strings.Join(comps, "")
}

// isoSigFrom encodes the component of simplex simp, relabelled so that simp
// becomes simplex 0 with vertices mapped by vertices⁻¹.
//
// Implementation:
//   - Stage 1: walk simplices in image order; each facet is boundary (0),
//     a gluing to a new simplex by the identity (1), or a gluing to a seen
//     simplex (2, with destination and permutation recorded).
//   - Stage 2: pack size, trits, destinations and permutation indices.
func (t *Triangulation) isoSigFrom(simp int, vertices Perm) string {
	n, d := len(t.simplices), t.dim
	image := make([]int, n)
	preImage := make([]int, n)
	for i := range image {
		image[i], preImage[i] = -1, -1
	}
	vertexMap := make([]Perm, n)

	image[simp], preImage[0] = 0, simp
	vertexMap[simp] = vertices.Inverse()

	var (
		actions    []byte
		joinDest   []int
		joinGluing []int
	)
	next := 1
	simpImg := 0
	for ; simpImg < n && preImage[simpImg] >= 0; simpImg++ {
		src := preImage[simpImg]
		s := t.simplices[src]
		for facetImg := 0; facetImg <= d; facetImg++ {
			facetSrc := vertexMap[src].Pre(facetImg)
			nbr := s.adj[facetSrc]
			if nbr == nil {
				actions = append(actions, 0)
				continue
			}
			dest := nbr.index
			if image[dest] >= 0 && (image[dest] < image[src] ||
				(dest == src && vertexMap[src].Image(s.AdjacentFacet(facetSrc)) < vertexMap[src].Image(facetSrc))) {
				continue
			}
			if image[dest] < 0 {
				image[dest], preImage[next] = next, dest
				next++
				vertexMap[dest] = vertexMap[src].Compose(s.gluing[facetSrc].Inverse())
				actions = append(actions, 1)
				continue
			}
			joinDest = append(joinDest, image[dest])
			joinGluing = append(joinGluing,
				vertexMap[dest].Compose(s.gluing[facetSrc]).Compose(vertexMap[src].Inverse()).Index())
			actions = append(actions, 2)
		}
	}

	var sb strings.Builder
	nComp, nChars := simpImg, 1
	if nComp >= 63 {
		nChars = 0
		for tmp := nComp; tmp > 0; tmp >>= 6 {
			nChars++
		}
		sb.WriteByte(schar(63))
		sb.WriteByte(schar(nChars))
	}
	sappend(&sb, nComp, nChars)
	for i := 0; i < len(actions); i += 3 {
		sappendTrits(&sb, actions[i:min(i+3, len(actions))])
	}
	for _, x := range joinDest {
		sappend(&sb, x, nChars)
	}
	cpp := charsPerPerm(d)
	for _, x := range joinGluing {
		sappend(&sb, x, cpp)
	}

	return sb.String()
}

// FromIsoSig rebuilds a triangulation of dimension dim from its signature.
// The result is isomorphic (not necessarily identical) to the original.
//
// Errors: ErrDimension; ErrBadSignature for invalid characters, truncation,
// inconsistent facet actions, or impossible gluings.
func FromIsoSig(dim int, sig string) (*Triangulation, error) {
	t, err := New(dim)
	if err != nil {
		return nil, err
	}
	bad := func(why string) error {
		return fmt.Errorf("FromIsoSig(%q): %s: %w", sig, why, ErrBadSignature)
	}
	for i := 0; i < len(sig); i++ {
		if !svalid(sig[i]) {
			return nil, bad("invalid character")
		}
	}

	facets := dim + 1
	nPerms := factorial(facets)
	cpp := charsPerPerm(dim)
	pos := 0
	have := func(k int) bool { return pos+k <= len(sig) }

	for pos < len(sig) {
		nSimp, nChars := sval(sig[pos]), 1
		pos++
		if nSimp == 63 {
			if !have(1) {
				return nil, bad("truncated size")
			}
			nChars = sval(sig[pos])
			pos++
			if !have(nChars) {
				return nil, bad("truncated size")
			}
			nSimp = sread(sig[pos:], nChars)
			pos += nChars
		}
		if nSimp == 0 {
			continue
		}

		var actions []byte
		nFacets, nJoins := 0, 0
		for nFacets < facets*nSimp {
			if !have(1) {
				return nil, bad("truncated facet actions")
			}
			v := sval(sig[pos])
			pos++
			for i := 0; i < 3; i++ {
				trit := byte((v >> (2 * i)) & 3)
				if nFacets == facets*nSimp {
					if trit != 0 {
						return nil, bad("trailing facet action")
					}
					continue
				}
				switch trit {
				case 0:
					nFacets++
				case 1:
					nFacets += 2
				case 2:
					nFacets += 2
					nJoins++
				default:
					return nil, bad("invalid facet action")
				}
				if nFacets > facets*nSimp {
					return nil, bad("too many facets")
				}
				actions = append(actions, trit)
			}
		}

		joinDest := make([]int, nJoins)
		for i := range joinDest {
			if !have(nChars) {
				return nil, bad("truncated destinations")
			}
			joinDest[i] = sread(sig[pos:], nChars)
			pos += nChars
		}
		joinGluing := make([]Perm, nJoins)
		for i := range joinGluing {
			if !have(cpp) {
				return nil, bad("truncated gluings")
			}
			idx := sread(sig[pos:], cpp)
			pos += cpp
			if idx >= nPerms {
				return nil, bad("gluing index out of range")
			}
			joinGluing[i], _ = PermFromIndex(facets, idx)
		}

		if err := buildComponent(t, nSimp, actions, joinDest, joinGluing); err != nil {
			return nil, bad(err.Error())
		}
	}

	return t, nil
}

// buildComponent replays decoded facet actions onto nSimp fresh simplices.
func buildComponent(t *Triangulation, nSimp int, actions []byte, joinDest []int, joinGluing []Perm) error {
	simp := t.NewSimplices(nSimp)
	ap, jp, nextUnused := 0, 0, 1
	for i := 0; i < nSimp; i++ {
		for j := 0; j <= t.dim; j++ {
			if simp[i].adj[j] != nil {
				continue
			}
			if ap >= len(actions) {
				return fmt.Errorf("facet actions exhausted")
			}
			switch actions[ap] {
			case 1:
				if nextUnused >= nSimp {
					return fmt.Errorf("too many new simplices")
				}
				if err := simp[i].Join(j, simp[nextUnused], Identity(t.dim+1)); err != nil {
					return err
				}
				nextUnused++
			case 2:
				g, dst := joinGluing[jp], joinDest[jp]
				if dst >= nextUnused || simp[dst].adj[g.Image(j)] != nil {
					return fmt.Errorf("gluing to unseen or glued facet")
				}
				if err := simp[i].Join(j, simp[dst], g); err != nil {
					return err
				}
				jp++
			}
			ap++
		}
	}

	return nil
}
