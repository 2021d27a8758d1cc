// SPDX-License-Identifier: MIT

package kirby

import (
	"github.com/katalvlaran/kirbytri/core"
	"github.com/katalvlaran/kirbytri/link"
)

// ExtCrossing is one step of a component walk: the strand reference, its
// crossing index and whether it is under, over or part of a curl.
type ExtCrossing struct {
	Ref   link.StrandRef
	Index int
	Kind  core.SiteKind
}

// isCurl reports whether ref's crossing is also its neighbour's crossing.
func isCurl(ref link.StrandRef) bool {
	c := ref.Crossing()

	return ref.Next().Crossing() == c || ref.Prev().Crossing() == c
}

func siteKind(ref link.StrandRef) core.SiteKind {
	switch {
	case isCurl(ref):
		return core.SiteCurl
	case ref.Strand() == 0:
		return core.SiteUnder
	}

	return core.SiteOver
}

// WalkComponent lists the strand references of component comp from its start.
//
// Errors: link.ErrComponentRange.
func WalkComponent(l *link.Link, comp int) ([]ExtCrossing, error) {
	refs, err := l.ComponentRefs(comp)
	if err != nil {
		return nil, err
	}
	out := make([]ExtCrossing, len(refs))
	for i, r := range refs {
		out[i] = ExtCrossing{Ref: r, Index: r.Crossing().Index(), Kind: siteKind(r)}
	}

	return out, nil
}

// LinkQuadriPairs lists, in walk order from start, the consecutive crossing
// pairs of a component that can carry a quadricolour. Each pair leads with
// its curl:
//   - a curl followed by a regular under-crossing;
//   - a curl whose next step stays on the curl and whose step after that is
//     another curl on the same strand level;
//   - a regular under-crossing followed by a curl, reported as (curl, under).
func LinkQuadriPairs(start link.StrandRef) [][2]link.StrandRef {
	if start.IsNull() {
		return nil
	}

	var out [][2]link.StrandRef
	cur := start
	for {
		next := cur.Next()
		if isCurl(cur) {
			if !isCurl(next) && next.Strand() == 0 {
				out = append(out, [2]link.StrandRef{cur, next})
			}
			if isCurl(next) && next.Crossing() == cur.Crossing() {
				if next2 := next.Next(); isCurl(next2) && next2.Strand() == cur.Strand() {
					out = append(out, [2]link.StrandRef{cur, next2})
				}
			}
		} else if cur.Strand() == 0 && isCurl(next) {
			out = append(out, [2]link.StrandRef{next, cur})
		}

		cur = next
		if cur == start {
			return out
		}
	}
}

// pairIndices is the set of crossing indices a quadricolour pair covers.
func pairIndices(p [2]link.StrandRef) []int {
	a, b := p[0].Crossing().Index(), p[1].Crossing().Index()
	if a == b {
		return []int{a}
	}

	return []int{a, b}
}

// handleView groups a link's components by handle type.
type handleView struct {
	l       *link.Link
	ann     []Annotation
	oneXing map[int]bool // crossings touched by any 1-handle
}

func newHandleView(l *link.Link, ann []Annotation) (*handleView, error) {
	h := &handleView{l: l, ann: ann, oneXing: make(map[int]bool)}
	for i, a := range ann {
		if !a.OneHandle {
			continue
		}
		refs, err := l.ComponentRefs(i)
		if err != nil {
			return nil, err
		}
		for _, r := range refs {
			h.oneXing[r.Crossing().Index()] = true
		}
	}

	return h, nil
}

// commons lists the references of component i that sit on a 1-handle crossing.
func (h *handleView) commons(i int) []link.StrandRef {
	refs, _ := h.l.ComponentRefs(i)
	var out []link.StrandRef
	for _, r := range refs {
		if h.oneXing[r.Crossing().Index()] {
			out = append(out, r)
		}
	}

	return out
}

// framingSite picks where the framing curls of 2-handle i go: the first
// common reference whose successor is also common, else the component start.
func (h *handleView) framingSite(i int) link.StrandRef {
	cs := h.commons(i)
	in := make(map[link.StrandRef]bool, len(cs))
	for _, r := range cs {
		in[r] = true
	}
	for _, r := range cs {
		if in[r.Next()] {
			return r
		}
	}
	start, _ := h.l.Component(i)

	return start
}

// markedPair returns the leftmost (last) and rightmost (first) regular
// under-crossing met while walking 1-handle i, and false if there is none.
// Curls never qualify: marker vertices exist only in regular templates, so a
// 1-handle drawn as a lone curl gets no marker edge.
func (h *handleView) markedPair(i int) (left, right link.StrandRef, ok bool) {
	refs, _ := h.l.ComponentRefs(i)
	for _, r := range refs {
		if r.Strand() != 0 || isCurl(r) {
			continue
		}
		if !ok {
			right, ok = r, true
		}
		left = r
	}

	return left, right, ok
}

// highlight walks 2-handle i from its quadricolour pair until every common
// reference outside the pair has been passed, stepping over curls as one
// site, and returns the sites passed minus the first and the last.
func (h *handleView) highlight(i int, pair [2]link.StrandRef) []core.HighlightSite {
	init, second := pair[0], pair[1]
	needed := make(map[link.StrandRef]bool)
	for _, r := range h.commons(i) {
		if r != init && r != second {
			needed[r] = true
		}
	}
	if len(needed) == 0 {
		return nil
	}

	backward := init.Next() == second || (isCurl(init) && init.Next().Next() == second)
	walk := init
	if backward {
		if walk.Prev().Crossing() == walk.Crossing() {
			walk = walk.Prev().Prev()
		} else {
			walk = walk.Prev()
		}
	}

	refs, _ := h.l.ComponentRefs(i)
	var passed []link.StrandRef
	for steps := 0; len(needed) > 0 && steps <= 2*len(refs); steps++ {
		site := walk
		switch {
		case backward && isCurl(walk):
			site = walk.Prev()
			walk = walk.Prev().Prev()
		case backward:
			walk = walk.Prev()
		case isCurl(walk):
			walk = walk.Next().Next()
		default:
			walk = walk.Next()
		}
		passed = append(passed, site)
		delete(needed, site)
	}
	if len(passed) <= 2 {
		return nil
	}

	out := make([]core.HighlightSite, 0, len(passed)-2)
	for _, r := range passed[1 : len(passed)-1] {
		out = append(out, core.HighlightSite{Component: r.Crossing().Index(), Kind: siteKind(r)})
	}

	return out
}
