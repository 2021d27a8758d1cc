// SPDX-License-Identifier: MIT

package link

import "fmt"

// Sides for R1.
const (
	Left  = 0
	Right = 1
)

// R1 inserts a Reidemeister-I curl with the given sign on the arc leaving
// ref, on the given side (Left or Right) of the direction of travel. The new
// crossing is appended, so existing indices and strand references stay valid.
//
// A null ref adds the curl to the first zero-crossing component instead.
//
// Errors: ErrBadMove if side is not Left/Right, sign is not ±1, ref belongs to
// another link, or ref is null and every component has crossings. The link
// is unchanged on error.
//
// Complexity: O(1) for a non-null ref.
func (l *Link) R1(ref StrandRef, side, sign int) error {
	if (side != Left && side != Right) || (sign != 1 && sign != -1) {
		return fmt.Errorf("R1(side=%d, sign=%d): %w", side, sign, ErrBadMove)
	}

	c := &Crossing{index: len(l.crossings), sign: sign}
	if ref.IsNull() {
		for i, comp := range l.components {
			if !comp.IsNull() {
				continue
			}
			c.next[0], c.prev[0] = c.Upper(), c.Upper()
			c.next[1], c.prev[1] = c.Lower(), c.Lower()
			l.crossings = append(l.crossings, c)
			if (side == Left && sign < 0) || (side == Right && sign > 0) {
				l.components[i] = c.Upper()
			} else {
				l.components[i] = c.Lower()
			}

			return nil
		}

		return fmt.Errorf("R1(null): no zero-crossing component: %w", ErrBadMove)
	}
	if !l.owns(ref.crossing) {
		return fmt.Errorf("R1(%v): foreign strand: %w", ref, ErrBadMove)
	}

	to := ref.Next()
	if (side == Left && sign > 0) || (side == Right && sign < 0) {
		// through the lower strand first, then the upper
		c.prev[0] = ref
		c.next[1] = to
		c.next[0] = c.Upper()
		c.prev[1] = c.Lower()
		to.crossing.prev[to.strand] = c.Upper()
		ref.crossing.next[ref.strand] = c.Lower()
	} else {
		c.prev[1] = ref
		c.next[0] = to
		c.next[1] = c.Lower()
		c.prev[0] = c.Upper()
		to.crossing.prev[to.strand] = c.Lower()
		ref.crossing.next[ref.strand] = c.Upper()
	}
	l.crossings = append(l.crossings, c)

	return nil
}

// Reflect mirrors the diagram, negating every crossing sign.
func (l *Link) Reflect() {
	for _, c := range l.crossings {
		c.sign = -c.sign
	}
}
