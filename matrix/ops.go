// SPDX-License-Identifier: MIT
// Package matrix: exact integer algebra over IntMatrix.
//
// Purpose:
//   - Products, transposes and determinants without any rounding.
//   - Elementary row/column kernels shared by SNF, echelon and lattice routines.
//
// Determinism:
//   - Fixed loop orders (i→k→j for products); no map iteration anywhere.
//
// AI-Hints:
//   - Kernels (swapRows, combCols, ...) are unexported and unchecked; public
//     entry points validate once and then stay on the fast path.

package matrix

import (
	"fmt"
	"math/big"
)

const (
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opTranspose = "Transpose"
	opDet       = "Determinant"
)

// matrixErrorf prefixes a sentinel with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a·b as a new matrix.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: triple loop i→k→j accumulating into a scratch big.Int; zero a[i,k] rows are skipped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c) big-int multiplications, Space O(r*c).
func Mul(a, b *IntMatrix) (*IntMatrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mul(a, b), nil
}

// mul is Mul without validation.
func mul(a, b *IntMatrix) *IntMatrix {
	res := newZero(a.r, b.c)
	tmp := new(big.Int)
	var av *big.Int
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av.Sign() == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				tmp.Mul(av, b.data[k*b.c+j])
				res.data[i*b.c+j].Add(res.data[i*b.c+j], tmp)
			}
		}
	}

	return res
}

// MulVec returns m·x for a column vector x of length Cols().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNilEntry.
func MulVec(m *IntMatrix, x []*big.Int) ([]*big.Int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return mulVec(m, x), nil
}

func mulVec(m *IntMatrix, x []*big.Int) []*big.Int {
	out := NewVector(m.r)
	tmp := new(big.Int)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if x[j].Sign() == 0 {
				continue
			}
			tmp.Mul(m.data[i*m.c+j], x[j])
			out[i].Add(out[i], tmp)
		}
	}

	return out
}

// Transpose returns mᵀ as a new matrix.
func Transpose(m *IntMatrix) (*IntMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newZero(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i].Set(m.data[i*m.c+j])
		}
	}

	return out, nil
}

// Determinant computes det(m) exactly with Bareiss fraction-free elimination.
//
// Implementation:
//   - Stage 1: ValidateSquare; 0×0 has determinant 1.
//   - Stage 2: for each pivot k, swap in a non-zero pivot row (flipping sign),
//     then update the trailing block by (a_ij*a_kk - a_ik*a_kj) / prev; the division is exact.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³) big-int operations, Space O(n²) for the working copy.
func Determinant(m *IntMatrix) (*big.Int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDet, err)
	}
	n := m.r
	if n == 0 {
		return big.NewInt(1), nil
	}
	w := m.Clone()
	prev := big.NewInt(1)
	negate := false
	t1, t2 := new(big.Int), new(big.Int)
	for k := 0; k < n-1; k++ {
		if w.Entry(k, k).Sign() == 0 {
			pivot := -1
			for i := k + 1; i < n; i++ {
				if w.Entry(i, k).Sign() != 0 {
					pivot = i
					break
				}
			}
			if pivot < 0 {
				return new(big.Int), nil
			}
			w.swapRows(k, pivot)
			negate = !negate
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				t1.Mul(w.Entry(i, j), w.Entry(k, k))
				t2.Mul(w.Entry(i, k), w.Entry(k, j))
				t1.Sub(t1, t2)
				w.Entry(i, j).Quo(t1, prev)
			}
		}
		prev.Set(w.Entry(k, k))
	}
	det := new(big.Int).Set(w.Entry(n-1, n-1))
	if negate {
		det.Neg(det)
	}

	return det, nil
}

// ---------- elementary kernels (unchecked) ----------

func (m *IntMatrix) swapRows(i, j int) {
	if i == j {
		return
	}
	for k := 0; k < m.c; k++ {
		m.data[i*m.c+k], m.data[j*m.c+k] = m.data[j*m.c+k], m.data[i*m.c+k]
	}
}

func (m *IntMatrix) swapCols(i, j int) {
	if i == j {
		return
	}
	for k := 0; k < m.r; k++ {
		m.data[k*m.c+i], m.data[k*m.c+j] = m.data[k*m.c+j], m.data[k*m.c+i]
	}
}

// addRow performs row[dst] += k * row[src].
func (m *IntMatrix) addRow(src, dst int, k *big.Int) {
	tmp := new(big.Int)
	for c := 0; c < m.c; c++ {
		tmp.Mul(k, m.data[src*m.c+c])
		m.data[dst*m.c+c].Add(m.data[dst*m.c+c], tmp)
	}
}

// addCol performs col[dst] += k * col[src].
func (m *IntMatrix) addCol(src, dst int, k *big.Int) {
	tmp := new(big.Int)
	for r := 0; r < m.r; r++ {
		tmp.Mul(k, m.data[r*m.c+src])
		m.data[r*m.c+dst].Add(m.data[r*m.c+dst], tmp)
	}
}

func (m *IntMatrix) multRow(i int, k *big.Int) {
	for c := 0; c < m.c; c++ {
		m.data[i*m.c+c].Mul(m.data[i*m.c+c], k)
	}
}

func (m *IntMatrix) multCol(j int, k *big.Int) {
	for r := 0; r < m.r; r++ {
		m.data[r*m.c+j].Mul(m.data[r*m.c+j], k)
	}
}

// combRows replaces rows (i, j) by (u·row_i + v·row_j, w·row_i + x·row_j).
func (m *IntMatrix) combRows(i, j int, u, v, w, x *big.Int) {
	t1, t2 := new(big.Int), new(big.Int)
	for c := 0; c < m.c; c++ {
		ri, rj := m.data[i*m.c+c], m.data[j*m.c+c]
		ni := new(big.Int).Mul(u, ri)
		ni.Add(ni, t1.Mul(v, rj))
		nj := new(big.Int).Mul(w, ri)
		nj.Add(nj, t2.Mul(x, rj))
		m.data[i*m.c+c], m.data[j*m.c+c] = ni, nj
	}
}

// combCols replaces columns (i, j) by (u·col_i + v·col_j, w·col_i + x·col_j).
func (m *IntMatrix) combCols(i, j int, u, v, w, x *big.Int) {
	t1, t2 := new(big.Int), new(big.Int)
	for r := 0; r < m.r; r++ {
		ci, cj := m.data[r*m.c+i], m.data[r*m.c+j]
		ni := new(big.Int).Mul(u, ci)
		ni.Add(ni, t1.Mul(v, cj))
		nj := new(big.Int).Mul(w, ci)
		nj.Add(nj, t2.Mul(x, cj))
		m.data[r*m.c+i], m.data[r*m.c+j] = ni, nj
	}
}

// ---------- vectors ----------

// NewVector returns n distinct zero entries.
func NewVector(n int) []*big.Int {
	v := make([]*big.Int, n)
	for i := range v {
		v[i] = new(big.Int)
	}

	return v
}

// VectorFromInts converts small literals into a big-integer vector.
func VectorFromInts(xs ...int64) []*big.Int {
	v := make([]*big.Int, len(xs))
	for i, x := range xs {
		v[i] = big.NewInt(x)
	}

	return v
}

// VectorIsZero reports whether all entries vanish.
func VectorIsZero(v []*big.Int) bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// VectorEqual compares two vectors entry-wise.
func VectorEqual(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}

// gcdWithCoeffs returns d = gcd(a,b) >= 0 together with u, v such that a·u + b·v = d.
func gcdWithCoeffs(a, b *big.Int) (d, u, v *big.Int) {
	d, u, v = new(big.Int), new(big.Int), new(big.Int)
	d.GCD(u, v, a, b)

	return d, u, v
}
