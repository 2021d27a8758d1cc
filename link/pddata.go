// SPDX-License-Identifier: MIT

package link

// PDData regenerates a PD code in the Knot Atlas convention.
//
// Implementation:
//   - Stage 1: walk the components in order; the arc leaving each strand
//     reference gets the next label, starting from 1.
//   - Stage 2: walk again and emit a quadruple each time a crossing is entered
//     on its under strand: (under in, over out, under out, over in) for a
//     positive crossing, (under in, over in, under out, over out) otherwise.
//
// Zero-crossing components are omitted. Crossings are renumbered in emission
// order, which is what FromPD(PDData()) canonicalises to.
//
// Complexity: O(n).
func (l *Link) PDData() PDCode {
	label := make([]int, 2*len(l.crossings))
	next := 1
	for i := range l.components {
		refs, _ := l.ComponentRefs(i)
		for _, r := range refs {
			label[r.ID()] = next
			next++
		}
	}

	out := make(PDCode, 0, len(l.crossings))
	for i := range l.components {
		refs, _ := l.ComponentRefs(i)
		for _, r := range refs {
			if r.strand != 0 {
				continue
			}
			c := r.crossing
			up := c.Upper()
			underIn, underOut := label[r.Prev().ID()], label[r.ID()]
			overIn, overOut := label[up.Prev().ID()], label[up.ID()]
			if c.sign > 0 {
				out = append(out, [4]int{underIn, overOut, underOut, overIn})
			} else {
				out = append(out, [4]int{underIn, overIn, underOut, overOut})
			}
		}
	}

	return out
}
