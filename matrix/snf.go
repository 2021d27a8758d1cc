// SPDX-License-Identifier: MIT
// Package matrix: Smith normal form with change-of-basis tracking.
//
// Purpose:
//   - Reduce an integer matrix A to D = L·A·R where D is diagonal,
//     d₁ | d₂ | … | dₖ | 0 | … | 0, all dᵢ > 0, and L, R are unimodular.
//   - Keep L⁻¹ and R⁻¹ in lockstep so that A = L⁻¹·D·R⁻¹ holds without inversion.
//
// Determinism:
//   - The pivot is always the first entry (row-major) of smallest absolute value
//     in the trailing block, so equal inputs always produce equal bases.

package matrix

import (
	"math/big"
)

const opSNF = "SmithNormalForm"

// SNF bundles the diagonal form with both change-of-basis pairs.
//   - L·A·R = D, L·Linv = I, R·Rinv = I.
//   - L acts on rows (rows(A)×rows(A)), R on columns (cols(A)×cols(A)).
type SNF struct {
	D    *IntMatrix
	L    *IntMatrix
	Linv *IntMatrix
	R    *IntMatrix
	Rinv *IntMatrix
}

// Rank returns the number of non-zero diagonal entries of D.
func (s *SNF) Rank() int {
	n := min(s.D.r, s.D.c)
	rank := 0
	for i := 0; i < n; i++ {
		if s.D.Entry(i, i).Sign() != 0 {
			rank++
		}
	}

	return rank
}

// Diagonal returns copies of the min(rows, cols) diagonal entries of D.
func (s *SNF) Diagonal() []*big.Int {
	n := min(s.D.r, s.D.c)
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		out[i] = new(big.Int).Set(s.D.Entry(i, i))
	}

	return out
}

// SmithNormalForm computes the Smith normal form of a without modifying it.
// MAIN DESCRIPTION:
//   - Returns D with L·a·R = D together with L, R and their inverses.
//
// Implementation:
//   - Stage 1: pick the smallest non-zero |entry| of the trailing block; swap it to (k,k).
//   - Stage 2: clear row k. When (k,k) divides the entry b, subtract b/(k,k)
//     copies of column k; otherwise apply the unimodular 2×2 combination built
//     from gcd(a, b) = u·a + v·b, i.e. columns (k, i) ← (u·k + v·i, -b'·k + a'·i),
//     which leaves gcd(a, b) < |a| at (k,k).
//   - Stage 3: clear column k the same way with rows; if a gcd combination
//     disturbs row k, restart the stage.
//   - Stage 4: if (k,k) fails to divide some trailing entry, add that row into
//     row k and restart the stage.
//   - Stage 5: make (k,k) positive, advance.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Polynomial in size and bit-length; every restart follows a gcd step,
//     which strictly decreases |(k,k)|.
func SmithNormalForm(a *IntMatrix) (*SNF, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSNF, err)
	}

	return smithNormalForm(a), nil
}

// smithNormalForm is SmithNormalForm without validation.
func smithNormalForm(a *IntMatrix) *SNF {
	m := a.Clone()
	s := &SNF{
		D:    m,
		L:    Identity(m.r),
		Linv: Identity(m.r),
		R:    Identity(m.c),
		Rinv: Identity(m.c),
	}
	minusOne := big.NewInt(-1)

	stage := 0
	for stage < m.r && stage < m.c {
		pivotRow, pivotCol := -1, -1
		var best *big.Int
		for i := stage; i < m.r; i++ {
			for j := stage; j < m.c; j++ {
				e := m.Entry(i, j)
				if e.Sign() == 0 {
					continue
				}
				if best == nil || e.CmpAbs(best) < 0 {
					best, pivotRow, pivotCol = e, i, j
				}
			}
		}
		if best == nil {
			break // trailing block is zero
		}

		if pivotRow != stage {
			m.swapRows(stage, pivotRow)
			s.L.swapRows(stage, pivotRow)
			s.Linv.swapCols(stage, pivotRow)
		}
		if pivotCol != stage {
			m.swapCols(stage, pivotCol)
			s.R.swapCols(stage, pivotCol)
			s.Rinv.swapRows(stage, pivotCol)
		}

		// clear the rest of row `stage`
		for i := stage + 1; i < m.c; i++ {
			if m.Entry(stage, i).Sign() == 0 {
				continue
			}
			if q, ok := exactQuo(m.Entry(stage, i), m.Entry(stage, stage)); ok {
				negQ := new(big.Int).Neg(q)
				m.addCol(stage, i, negQ)
				s.R.addCol(stage, i, negQ)
				s.Rinv.addRow(i, stage, q)
				continue
			}
			d, u, v := gcdWithCoeffs(m.Entry(stage, stage), m.Entry(stage, i))
			x := new(big.Int).Quo(m.Entry(stage, stage), d)
			y := new(big.Int).Quo(m.Entry(stage, i), d)
			negY := new(big.Int).Neg(y)
			negV := new(big.Int).Neg(v)
			m.combCols(stage, i, u, v, negY, x)
			s.R.combCols(stage, i, u, v, negY, x)
			s.Rinv.combRows(stage, i, x, y, negV, u)
		}

		// clear the rest of column `stage`
		touched := false
		for i := stage + 1; i < m.r; i++ {
			if m.Entry(i, stage).Sign() == 0 {
				continue
			}
			if q, ok := exactQuo(m.Entry(i, stage), m.Entry(stage, stage)); ok {
				negQ := new(big.Int).Neg(q)
				m.addRow(stage, i, negQ)
				s.L.addRow(stage, i, negQ)
				s.Linv.addCol(i, stage, q)
				continue
			}
			touched = true
			d, u, v := gcdWithCoeffs(m.Entry(stage, stage), m.Entry(i, stage))
			x := new(big.Int).Quo(m.Entry(stage, stage), d)
			y := new(big.Int).Quo(m.Entry(i, stage), d)
			negY := new(big.Int).Neg(y)
			negV := new(big.Int).Neg(v)
			m.combRows(stage, i, u, v, negY, x)
			s.L.combRows(stage, i, u, v, negY, x)
			s.Linv.combCols(stage, i, x, y, negV, u)
		}
		if touched && rowDirty(m, stage) {
			continue
		}

		// divisibility of the trailing block
		if r := firstNonDivisibleRow(m, stage); r >= 0 {
			m.addRow(r, stage, big.NewInt(1))
			s.L.addRow(r, stage, big.NewInt(1))
			s.Linv.addCol(stage, r, minusOne)
			continue
		}

		if m.Entry(stage, stage).Sign() < 0 {
			m.Entry(stage, stage).Neg(m.Entry(stage, stage))
			s.L.multRow(stage, minusOne)
			s.Linv.multCol(stage, minusOne)
		}
		stage++
	}

	return s
}

// exactQuo returns b/a when a divides b.
func exactQuo(b, a *big.Int) (*big.Int, bool) {
	q, r := new(big.Int).QuoRem(b, a, new(big.Int))
	if r.Sign() != 0 {
		return nil, false
	}

	return q, true
}

// rowDirty reports a non-zero entry right of the diagonal in row k.
func rowDirty(m *IntMatrix, k int) bool {
	for j := k + 1; j < m.c; j++ {
		if m.Entry(k, j).Sign() != 0 {
			return true
		}
	}

	return false
}

// firstNonDivisibleRow returns the first row i > k holding an entry (i, j>k)
// not divisible by (k,k), or -1.
func firstNonDivisibleRow(m *IntMatrix, k int) int {
	diag := m.Entry(k, k)
	rem := new(big.Int)
	for i := k + 1; i < m.r; i++ {
		for j := k + 1; j < m.c; j++ {
			if rem.Rem(m.Entry(i, j), diag).Sign() != 0 {
				return i
			}
		}
	}

	return -1
}
