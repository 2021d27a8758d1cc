// SPDX-License-Identifier: MIT
// Package matrix: column echelon form, lattice preimages and torsion automorphism inverses.
//
// These three routines back the homomorphism engine: kernels of maps between
// marked groups are preimages of lattices, and inverting an isomorphism needs
// the inverse of its torsion block modulo the invariant factors.

package matrix

import (
	"fmt"
	"math/big"
)

const (
	opEchelon   = "ColumnEchelonForm"
	opPreImage  = "PreImageOfLattice"
	opTorsionAI = "TorsionAutInverse"
)

// ColumnEchelonForm reduces M in place by column operations so that, reading
// the rows listed in rowList top to bottom, each row's leading non-zero entry
// sits strictly right of the previous one, is positive, and the entries to its
// left in that row are reduced modulo it.
//
// Every column operation is mirrored on R (as a column operation) and its
// inverse on Ri (as a row operation), so M_old·R_old⁻¹… bookkeeping stays exact:
// if M·R was the invariant before the call, it still is afterwards.
//
// Implementation:
//   - Stage 1: collect the non-zero columns (from the working column on) of the current row.
//   - Stage 2: a single non-zero entry is moved to the working column, made positive,
//     and used to reduce earlier entries (Euclidean quotient).
//   - Stage 3: several non-zero entries are merged pairwise by gcd column combinations.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch if R.Cols != M.Cols or Ri.Rows != M.Cols;
//     ErrOutOfRange for row indices outside M.
//
// Complexity:
//   - O(|rowList| · cols · (rows(M)+rows(R)+cols(Ri))) big-int operations.
func ColumnEchelonForm(m, r, ri *IntMatrix, rowList []int) error {
	for _, x := range []*IntMatrix{m, r, ri} {
		if err := ValidateNotNil(x); err != nil {
			return matrixErrorf(opEchelon, err)
		}
	}
	if r.c != m.c || ri.r != m.c {
		return matrixErrorf(opEchelon, ErrDimensionMismatch)
	}
	for _, row := range rowList {
		if row < 0 || row >= m.r {
			return matrixErrorf(opEchelon, fmt.Errorf("row %d: %w", row, ErrOutOfRange))
		}
	}
	columnEchelonForm(m, r, ri, rowList)

	return nil
}

func columnEchelonForm(m, r, ri *IntMatrix, rowList []int) {
	minusOne := big.NewInt(-1)
	cr, cc := 0, 0
	nz := make([]int, 0, m.c)
	for cr < len(rowList) && cc < m.c {
		row := rowList[cr]
		nz = nz[:0]
		for i := cc; i < m.c; i++ {
			if m.Entry(row, i).Sign() != 0 {
				nz = append(nz, i)
			}
		}

		switch {
		case len(nz) == 0:
			cr++

		case len(nz) == 1 && nz[0] == cc:
			if m.Entry(row, cc).Sign() < 0 {
				m.multCol(cc, minusOne)
				r.multCol(cc, minusOne)
				ri.multRow(cc, minusOne)
			}
			q, rem := new(big.Int), new(big.Int)
			for i := 0; i < cc; i++ {
				q.DivMod(m.Entry(row, i), m.Entry(row, cc), rem)
				if q.Sign() == 0 {
					continue
				}
				negQ := new(big.Int).Neg(q)
				m.addCol(cc, i, negQ)
				r.addCol(cc, i, negQ)
				ri.addRow(i, cc, q)
			}
			cc++
			cr++

		case len(nz) == 1:
			m.swapCols(cc, nz[0])
			r.swapCols(cc, nz[0])
			ri.swapRows(cc, nz[0])

		default:
			for len(nz) > 1 {
				c0, c1 := nz[0], nz[1]
				g, u, v := gcdWithCoeffs(m.Entry(row, c0), m.Entry(row, c1))
				a := new(big.Int).Quo(m.Entry(row, c0), g)
				b := new(big.Int).Quo(m.Entry(row, c1), g)
				negB := new(big.Int).Neg(b)
				negV := new(big.Int).Neg(v)
				m.combCols(c0, c1, u, v, negB, a)
				r.combCols(c0, c1, u, v, negB, a)
				ri.combRows(c0, c1, a, b, negV, u)
				nz = append(nz[:1], nz[2:]...)
			}
		}
	}
}

// PreImageOfLattice returns a matrix whose columns form a basis of
// { v ∈ Zⁿ : hom·v ∈ L₀Z ⊕ L₁Z ⊕ … }, where a zero Lᵢ stands for the zero subgroup
// in coordinate i (a free coordinate) and Lᵢ > 0 for the subgroup LᵢZ.
//
// Implementation:
//   - Stage 1: column-echelon the free rows of hom; the columns vanishing on every
//     free row span the preimage of the torsion coordinates.
//   - Stage 2: column-echelon that block on the torsion rows, then walk those rows,
//     merging non-zero entries by gcd combinations and scaling each surviving
//     column by the least factor putting it in the lattice.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch if len(L) != hom.Rows().
func PreImageOfLattice(hom *IntMatrix, lattice []*big.Int) (*IntMatrix, error) {
	if err := ValidateNotNil(hom); err != nil {
		return nil, matrixErrorf(opPreImage, err)
	}
	if err := ValidateVecLen(lattice, hom.r); err != nil {
		return nil, matrixErrorf(opPreImage, err)
	}

	return preImageOfLattice(hom, lattice), nil
}

func preImageOfLattice(hom *IntMatrix, lattice []*big.Int) *IntMatrix {
	basis := Identity(hom.c)
	basisInv := Identity(hom.c)
	homModL := hom.Clone()

	var freeList, torList []int
	for i, l := range lattice {
		if l.Sign() == 0 {
			freeList = append(freeList, i)
		} else {
			torList = append(torList, i)
		}
	}

	columnEchelonForm(homModL, basis, basisInv, freeList)

	var torCol []int
	for i := 0; i < homModL.c; i++ {
		zero := true
		for _, pos := range freeList {
			if homModL.Entry(pos, i).Sign() != 0 {
				zero = false
				break
			}
		}
		if zero {
			torCol = append(torCol, i)
		}
	}

	tHom := newZero(homModL.r, len(torCol))
	tBasis := newZero(basis.r, len(torCol))
	dummy := newZero(len(torCol), 0)
	for i := 0; i < tHom.r; i++ {
		for j, src := range torCol {
			tHom.Entry(i, j).Set(homModL.Entry(i, src))
		}
	}
	for i := 0; i < basis.r; i++ {
		for j, src := range torCol {
			tBasis.Entry(i, j).Set(basis.Entry(i, src))
		}
	}

	columnEchelonForm(tHom, tBasis, dummy, torList)

	nz := make([]int, 0, tHom.c)
	tmp := new(big.Int)
	for cr := 0; cr < len(torList); {
		row := torList[cr]
		nz = nz[:0]
		for i := 0; i < tHom.c; i++ {
			if tHom.Entry(row, i).Sign() != 0 {
				nz = append(nz, i)
			}
		}
		if len(nz) == 0 {
			cr++
			continue
		}
		if len(nz) == 1 {
			g := new(big.Int).GCD(nil, nil, tHom.Entry(row, nz[0]), lattice[row])
			d := new(big.Int).Quo(lattice[row], g)
			for _, pos := range torList {
				tHom.Entry(pos, nz[0]).Mul(tHom.Entry(pos, nz[0]), d)
			}
			tBasis.multCol(nz[0], d)
			cr++
			continue
		}
		for len(nz) > 1 {
			c0, c1 := nz[0], nz[1]
			g, u, v := gcdWithCoeffs(tHom.Entry(row, c0), tHom.Entry(row, c1))
			a := new(big.Int).Quo(tHom.Entry(row, c0), g)
			b := new(big.Int).Quo(tHom.Entry(row, c1), g)
			for _, pos := range torList {
				x0, x1 := tHom.Entry(pos, c0), tHom.Entry(pos, c1)
				n0 := new(big.Int).Mul(u, x0)
				n0.Add(n0, tmp.Mul(v, x1))
				n1 := new(big.Int).Mul(a, x1)
				n1.Sub(n1, tmp.Mul(b, x0))
				tHom.Entry(pos, c0).Set(n0)
				tHom.Entry(pos, c1).Set(n1)
			}
			negB := new(big.Int).Neg(b)
			tBasis.combCols(c0, c1, u, v, negB, a)
			nz = append(nz[:1], nz[2:]...)
		}
	}

	return tBasis
}

// TorsionAutInverse inverts an automorphism of Z_{f₀} ⊕ … ⊕ Z_{f_{n-1}}, given as an
// n×n integer matrix acting on columns, where f = invF satisfies f₀ | f₁ | … .
// Entry (i,j) of the result is reduced into [0, fᵢ).
//
// Implementation:
//   - Stage 1: walking rows bottom-up, reduce the row mod fᵢ and move its last
//     non-zero entry onto the diagonal.
//   - Stage 2: gcd column combinations clear the row left of the diagonal;
//     the diagonal becomes a unit mod fᵢ and is scaled by its inverse.
//   - Stage 3: back-substitute the upper triangle to the identity with row ops.
//   - Stage 4: the inverse is colOps·rowOps reduced row-wise mod fᵢ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(invF) != n), ErrZeroModulus.
//
// Notes:
//   - Input that is not an automorphism yields an unspecified matrix rather than an error.
func TorsionAutInverse(input *IntMatrix, invF []*big.Int) (*IntMatrix, error) {
	if err := ValidateSquare(input); err != nil {
		return nil, matrixErrorf(opTorsionAI, err)
	}
	if err := ValidateVecLen(invF, input.r); err != nil {
		return nil, matrixErrorf(opTorsionAI, err)
	}
	for _, f := range invF {
		if f.Sign() <= 0 {
			return nil, matrixErrorf(opTorsionAI, ErrZeroModulus)
		}
	}

	return torsionAutInverse(input, invF), nil
}

func torsionAutInverse(input *IntMatrix, invF []*big.Int) *IntMatrix {
	n := input.r
	work := input.Clone()
	colOps := Identity(n)

	for wRow := n - 1; wRow >= 0; wRow-- {
		pivCol := 0
		for i := 0; i <= wRow; i++ {
			e := work.Entry(wRow, i)
			e.Mod(e, invF[wRow])
			if e.Sign() != 0 {
				pivCol = i
			}
		}
		if pivCol != wRow {
			work.swapCols(wRow, pivCol)
			colOps.swapCols(wRow, pivCol)
		}
		pivCol = wRow

		for wCol := pivCol - 1; wCol >= 0; wCol-- {
			if work.Entry(wRow, wCol).Sign() == 0 {
				continue
			}
			g, l1, l2 := gcdWithCoeffs(work.Entry(wRow, wCol), work.Entry(wRow, pivCol))
			u1 := new(big.Int).Quo(work.Entry(wRow, wCol), g)
			u2 := new(big.Int).Quo(work.Entry(wRow, pivCol), g)
			negU1 := new(big.Int).Neg(u1)
			// wCol ← u2·wCol − u1·pivCol, pivCol ← l1·wCol + l2·pivCol
			work.combCols(wCol, pivCol, u2, negU1, l1, l2)
			colOps.combCols(wCol, pivCol, u2, negU1, l1, l2)
		}

		_, a1, _ := gcdWithCoeffs(work.Entry(wRow, pivCol), invF[pivCol])
		work.multCol(pivCol, a1)
		colOps.multCol(pivCol, a1)
		e := work.Entry(wRow, pivCol)
		e.Mod(e, invF[wRow])
	}

	rowOps := Identity(n)
	tmp := new(big.Int)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			x := new(big.Int).Set(work.Entry(j, i))
			if x.Sign() == 0 {
				continue
			}
			for k := 0; k < n; k++ {
				rowOps.Entry(j, k).Sub(rowOps.Entry(j, k), tmp.Mul(x, rowOps.Entry(i, k)))
				work.Entry(j, k).Sub(work.Entry(j, k), tmp.Mul(x, work.Entry(i, k)))
			}
		}
	}

	out := mul(colOps, rowOps)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e := out.Entry(i, j)
			e.Mod(e, invF[i])
		}
	}

	return out
}
