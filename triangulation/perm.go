// SPDX-License-Identifier: MIT

package triangulation

import (
	"fmt"
	"strings"
)

// MaxPermSize is the largest permutation size, enough for pentachora.
const MaxPermSize = 5

// Perm is a permutation of {0, ..., n-1} for n ≤ MaxPermSize.
// Perm is a comparable value type; the zero value is the empty permutation.
type Perm struct {
	n   uint8
	img [MaxPermSize]uint8
}

// Identity returns the identity on n elements. n is clamped to 0..MaxPermSize.
func Identity(n int) Perm {
	if n < 0 {
		n = 0
	}
	if n > MaxPermSize {
		n = MaxPermSize
	}
	p := Perm{n: uint8(n)}
	for i := 0; i < n; i++ {
		p.img[i] = uint8(i)
	}

	return p
}

// FromImages builds the permutation i ↦ images[i].
// Errors: ErrBadPerm if len(images) > MaxPermSize or images is not a permutation.
func FromImages(images ...int) (Perm, error) {
	n := len(images)
	if n > MaxPermSize {
		return Perm{}, fmt.Errorf("FromImages(%v): %w", images, ErrBadPerm)
	}
	var seen [MaxPermSize]bool
	p := Perm{n: uint8(n)}
	for i, x := range images {
		if x < 0 || x >= n || seen[x] {
			return Perm{}, fmt.Errorf("FromImages(%v): %w", images, ErrBadPerm)
		}
		seen[x] = true
		p.img[i] = uint8(x)
	}

	return p, nil
}

// Size is n.
func (p Perm) Size() int { return int(p.n) }

// Image returns p[i]; points outside 0..n-1 are fixed.
func (p Perm) Image(i int) int {
	if i < 0 || i >= int(p.n) {
		return i
	}

	return int(p.img[i])
}

// Pre returns the preimage of i.
func (p Perm) Pre(i int) int {
	for j := 0; j < int(p.n); j++ {
		if int(p.img[j]) == i {
			return j
		}
	}

	return i
}

// Compose returns p·q, where (p·q)[i] = p[q[i]]. The result has the larger size.
func (p Perm) Compose(q Perm) Perm {
	n := p.n
	if q.n > n {
		n = q.n
	}
	out := Perm{n: n}
	for i := 0; i < int(n); i++ {
		out.img[i] = uint8(p.Image(q.Image(i)))
	}

	return out
}

// Inverse returns p⁻¹.
func (p Perm) Inverse() Perm {
	out := Perm{n: p.n}
	for i := 0; i < int(p.n); i++ {
		out.img[p.img[i]] = uint8(i)
	}

	return out
}

// IsIdentity reports whether p fixes every point.
func (p Perm) IsIdentity() bool { return p == Identity(int(p.n)) }

// Index is the position of p among all permutations of its size in
// lexicographic order of image sequences.
func (p Perm) Index() int {
	idx := 0
	for i := 0; i < int(p.n); i++ {
		smaller := 0
		for j := i + 1; j < int(p.n); j++ {
			if p.img[j] < p.img[i] {
				smaller++
			}
		}
		idx = idx*(int(p.n)-i) + smaller
	}

	return idx
}

// PermFromIndex inverts Index for permutations of size n.
// Errors: ErrBadPerm if n or idx is out of range.
func PermFromIndex(n, idx int) (Perm, error) {
	if n < 0 || n > MaxPermSize || idx < 0 || idx >= factorial(n) {
		return Perm{}, fmt.Errorf("PermFromIndex(%d, %d): %w", n, idx, ErrBadPerm)
	}

	digits := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		base := n - i
		digits[i] = idx % base
		idx /= base
	}
	avail := make([]int, n)
	for i := range avail {
		avail[i] = i
	}
	p := Perm{n: uint8(n)}
	for i, d := range digits {
		p.img[i] = uint8(avail[d])
		avail = append(avail[:d], avail[d+1:]...)
	}

	return p, nil
}

// AllPerms lists the permutations of size n in Index order.
func AllPerms(n int) []Perm {
	if n < 0 || n > MaxPermSize {
		return nil
	}
	out := make([]Perm, factorial(n))
	for i := range out {
		out[i], _ = PermFromIndex(n, i)
	}

	return out
}

// Sign is +1 for even and -1 for odd permutations.
func (p Perm) Sign() int {
	s := 1
	for i := 0; i < int(p.n); i++ {
		for j := i + 1; j < int(p.n); j++ {
			if p.img[i] > p.img[j] {
				s = -s
			}
		}
	}

	return s
}

// String lists the images, e.g. "10234".
func (p Perm) String() string {
	var sb strings.Builder
	for i := 0; i < int(p.n); i++ {
		sb.WriteByte('0' + p.img[i])
	}

	return sb.String()
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}
