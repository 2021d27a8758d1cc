// SPDX-License-Identifier: MIT

package link

import "fmt"

// Crossing is one crossing of a link diagram. Strand 0 is the lower (under)
// strand and strand 1 the upper (over) strand; next and prev give the strand
// references that follow and precede each strand along the link orientation.
type Crossing struct {
	index int
	sign  int
	next  [2]StrandRef
	prev  [2]StrandRef
}

// Index is the crossing's position in Link.Crossing order.
func (c *Crossing) Index() int { return c.index }

// Sign is +1 for a positive crossing and -1 for a negative one.
func (c *Crossing) Sign() int { return c.sign }

// Next returns the strand reference reached after leaving strand s of c.
func (c *Crossing) Next(s int) StrandRef { return c.next[s&1] }

// Prev returns the strand reference left before entering strand s of c.
func (c *Crossing) Prev(s int) StrandRef { return c.prev[s&1] }

// Lower is the under strand of c.
func (c *Crossing) Lower() StrandRef { return StrandRef{crossing: c, strand: 0} }

// Upper is the over strand of c.
func (c *Crossing) Upper() StrandRef { return StrandRef{crossing: c, strand: 1} }

// StrandRef names one strand (0 under, 1 over) passing through a crossing.
// The zero value is the null reference used for zero-crossing components.
type StrandRef struct {
	crossing *Crossing
	strand   int
}

// IsNull reports whether s refers to no crossing.
func (s StrandRef) IsNull() bool { return s.crossing == nil }

// Crossing returns the crossing s passes through, or nil for the null reference.
func (s StrandRef) Crossing() *Crossing { return s.crossing }

// Strand is 0 for under and 1 for over.
func (s StrandRef) Strand() int { return s.strand }

// Next follows the link orientation to the next crossing strand.
func (s StrandRef) Next() StrandRef {
	if s.crossing == nil {
		return s
	}

	return s.crossing.next[s.strand]
}

// Prev steps against the link orientation.
func (s StrandRef) Prev() StrandRef {
	if s.crossing == nil {
		return s
	}

	return s.crossing.prev[s.strand]
}

// ID is 2·index + strand, unique within a link.
func (s StrandRef) ID() int {
	if s.crossing == nil {
		return -1
	}

	return 2*s.crossing.index + s.strand
}

// String renders "^3" for the over strand of crossing 3 and "_3" for the under strand.
func (s StrandRef) String() string {
	if s.crossing == nil {
		return "(null)"
	}
	if s.strand == 1 {
		return fmt.Sprintf("^%d", s.crossing.index)
	}

	return fmt.Sprintf("_%d", s.crossing.index)
}

// Link is an oriented link diagram. Each component is named by a starting
// strand reference; a zero-crossing unknot has the null reference.
//
// A Link is not safe for concurrent mutation.
type Link struct {
	crossings  []*Crossing
	components []StrandRef
}

// Unknot returns the zero-crossing unknot.
func Unknot() *Link {
	return &Link{components: []StrandRef{{}}}
}

// Size is the number of crossings.
func (l *Link) Size() int { return len(l.crossings) }

// Crossing returns crossing i, or nil if i is out of range.
func (l *Link) Crossing(i int) *Crossing {
	if i < 0 || i >= len(l.crossings) {
		return nil
	}

	return l.crossings[i]
}

// CountComponents is the number of link components, including zero-crossing unknots.
func (l *Link) CountComponents() int { return len(l.components) }

// Component returns the starting strand of component i.
func (l *Link) Component(i int) (StrandRef, error) {
	if i < 0 || i >= len(l.components) {
		return StrandRef{}, fmt.Errorf("Component(%d) of %d: %w", i, len(l.components), ErrComponentRange)
	}

	return l.components[i], nil
}

// ComponentRefs walks component i from its start and returns every strand
// reference in order. A zero-crossing component yields nil.
func (l *Link) ComponentRefs(i int) ([]StrandRef, error) {
	start, err := l.Component(i)
	if err != nil {
		return nil, err
	}
	if start.IsNull() {
		return nil, nil
	}

	var out []StrandRef
	s := start
	for {
		out = append(out, s)
		s = s.Next()
		if s == start || len(out) > 2*len(l.crossings) {
			break
		}
	}

	return out, nil
}

// ComponentOf returns the index of the component that runs through ref,
// or -1 if ref does not belong to this link.
func (l *Link) ComponentOf(ref StrandRef) int {
	if ref.IsNull() || !l.owns(ref.crossing) {
		return -1
	}
	for i := range l.components {
		refs, _ := l.ComponentRefs(i)
		for _, r := range refs {
			if r == ref {
				return i
			}
		}
	}

	return -1
}

func (l *Link) owns(c *Crossing) bool {
	return c != nil && c.index >= 0 && c.index < len(l.crossings) && l.crossings[c.index] == c
}

// WritheOfComponent sums the signs of the crossings where component i meets
// itself. Crossings with other components do not count.
func (l *Link) WritheOfComponent(i int) (int, error) {
	refs, err := l.ComponentRefs(i)
	if err != nil {
		return 0, err
	}

	seen := make(map[int]bool, len(refs))
	w := 0
	for _, r := range refs {
		idx := r.crossing.index
		if seen[idx] {
			w += r.crossing.sign
		}
		seen[idx] = true
	}

	return w, nil
}

// Writhe sums the signs of all crossings.
func (l *Link) Writhe() int {
	w := 0
	for _, c := range l.crossings {
		w += c.sign
	}

	return w
}

// Clone returns an independent deep copy with the same crossing indices.
func (l *Link) Clone() *Link {
	out := &Link{
		crossings:  make([]*Crossing, len(l.crossings)),
		components: make([]StrandRef, len(l.components)),
	}
	for i, c := range l.crossings {
		out.crossings[i] = &Crossing{index: i, sign: c.sign}
	}
	remap := func(s StrandRef) StrandRef {
		if s.crossing == nil {
			return s
		}

		return StrandRef{crossing: out.crossings[s.crossing.index], strand: s.strand}
	}
	for i, c := range l.crossings {
		for s := 0; s < 2; s++ {
			out.crossings[i].next[s] = remap(c.next[s])
			out.crossings[i].prev[s] = remap(c.prev[s])
		}
	}
	for i, s := range l.components {
		out.components[i] = remap(s)
	}

	return out
}

// Translate returns the reference in l at the same crossing index and strand
// as ref, which may belong to another link (typically a clone).
func (l *Link) Translate(ref StrandRef) StrandRef {
	if ref.IsNull() || ref.crossing.index >= len(l.crossings) {
		return StrandRef{}
	}

	return StrandRef{crossing: l.crossings[ref.crossing.index], strand: ref.strand}
}
