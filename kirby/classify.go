// SPDX-License-Identifier: MIT

package kirby

import (
	"fmt"

	"github.com/katalvlaran/kirbytri/link"
)

// CrossingType says which adjacent PD entries of a crossing coincide.
// Letters name the quadruple shape, e.g. CurlYZZ is (y, z, x, x).
type CrossingType int

const (
	Regular CrossingType = iota
	CurlYZZ              // q[2] = q[3], positive curl
	CurlXXZ              // q[0] = q[1], positive curl
	CurlYYW              // q[1] = q[2], negative curl
	CurlXYX              // q[0] = q[3], negative curl
)

func (t CrossingType) String() string {
	switch t {
	case Regular:
		return "regular"
	case CurlYZZ:
		return "curl-yzz"
	case CurlXXZ:
		return "curl-xxz"
	case CurlYYW:
		return "curl-yyw"
	case CurlXYX:
		return "curl-xyx"
	}

	return fmt.Sprintf("CrossingType(%d)", int(t))
}

// IsCurl reports whether t is one of the four curl shapes.
func (t CrossingType) IsCurl() bool { return t != Regular }

// CrossingClass selects the template of one crossing.
type CrossingClass struct {
	Type        CrossingType
	Orientation int
}

// TypeOf classifies one quadruple. When two pairs coincide, the first match
// in the order yzz, xxz, yyw, xyx wins.
func TypeOf(q [4]int) CrossingType {
	switch {
	case q[2] == q[3]:
		return CurlYZZ
	case q[0] == q[1]:
		return CurlXXZ
	case q[1] == q[2]:
		return CurlYYW
	case q[0] == q[3]:
		return CurlXYX
	}

	return Regular
}

// Orientations walks the strand pairing of code and returns +1 or -1 per
// crossing, or 0 where the walk leaves the crossing's pattern incomplete.
//
// Implementation:
//   - Stage 1: starting at code[0][0], every pass through a crossing marks its
//     entry +1 and the opposite position -1, then continues at the unvisited
//     occurrence of the exit label. When the exit label has been seen twice
//     the component is closed and the walk restarts at the first crossing
//     whose position 0 is unvisited.
//   - Stage 2: a crossing marked (+1, -1, -1, +1) is positive, one marked
//     (+1, +1, -1, -1) is negative.
//
// Components met only as over strands are never entered, so their
// crossings may stay 0; Classify fills those from the link's signs.
//
// Complexity: O(n²) for n crossings.
func Orientations(code link.PDCode) []int {
	n := len(code)
	if n == 0 {
		return nil
	}

	marks := make([][4]int, n)
	visited := make([][4]bool, n)
	seen := make(map[int]int, 2*n)
	visit := func(i, j, mark int) {
		visited[i][j] = true
		seen[code[i][j]]++
		marks[i][j] = mark
	}

	i, j := 0, 0
	for i >= 0 && !visited[i][j] {
		visit(i, j, 1)
		j = (j + 2) % 4
		visit(i, j, -1)

		label := code[i][j]
		if seen[label] == 2 {
			i, j = firstOpenUnder(visited)
		} else {
			i, j = firstOpen(code, visited, label)
		}
	}

	out := make([]int, n)
	for k, m := range marks {
		switch m {
		case [4]int{1, -1, -1, 1}:
			out[k] = 1
		case [4]int{1, 1, -1, -1}:
			out[k] = -1
		}
	}

	return out
}

func firstOpenUnder(visited [][4]bool) (int, int) {
	for row := range visited {
		if !visited[row][0] {
			return row, 0
		}
	}

	return -1, -1
}

func firstOpen(code link.PDCode, visited [][4]bool, label int) (int, int) {
	for row, q := range code {
		for col, x := range q {
			if x == label && !visited[row][col] {
				return row, col
			}
		}
	}

	return -1, -1
}

// Classify returns the type and orientation of every crossing of code.
// Orientations the walk cannot settle are taken from the crossing signs of
// link.FromPD(code), with which the walk agrees wherever it is complete.
//
// Errors: link.ErrInvalidPD.
func Classify(code link.PDCode) ([]CrossingClass, error) {
	l, err := link.FromPD(code)
	if err != nil {
		return nil, err
	}

	orient := Orientations(code)
	out := make([]CrossingClass, len(code))
	for i, q := range code {
		o := orient[i]
		if o == 0 {
			o = l.Crossing(i).Sign()
		}
		out[i] = CrossingClass{Type: TypeOf(q), Orientation: o}
	}

	return out, nil
}
