// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/kirbytri/matrix"
)

// InverseHom returns the inverse of an isomorphism, built in SNF coordinates.
// A map that is not an isomorphism yields the zero map codomain → domain.
//
// Implementation:
//   - Stage 1: split the reduced matrix into blocks [A B; 0 D] (torsion, free).
//   - Stage 2: D⁻¹ from the column echelon form of D; A⁻¹ from TorsionAutInverse.
//   - Stage 3: B' = -A⁻¹·B·D⁻¹; reduce the torsion rows modulo their factors.
//
// Complexity:
//   - Dominated by the echelon form: O(n³) big-int operations, n = SNFRank.
func (h *HomMarkedAbelianGroup) InverseHom() *HomMarkedAbelianGroup {
	dom, cod := h.domain, h.codomain
	if !h.IsIsomorphism() {
		return newHomFromReduced(cod, dom, zeroMatrix(dom.SNFRank(), cod.SNFRank()))
	}

	red := h.ReducedMatrix()
	nTor := len(dom.invFac)
	nFree := dom.freeRank

	a := zeroMatrix(nTor, nTor)
	b := zeroMatrix(nTor, nFree)
	d := zeroMatrix(nFree, nFree)
	for i := 0; i < nTor; i++ {
		for j := 0; j < nTor; j++ {
			a.Entry(i, j).Set(red.Entry(i, j))
		}
		for j := 0; j < nFree; j++ {
			b.Entry(i, j).Set(red.Entry(i, j+nTor))
		}
	}
	for i := 0; i < nFree; i++ {
		for j := 0; j < nFree; j++ {
			d.Entry(i, j).Set(red.Entry(i+nTor, j+nTor))
		}
	}

	di := matrix.Identity(nFree)
	rows := make([]int, nFree)
	for i := range rows {
		rows[i] = i
	}
	_ = matrix.ColumnEchelonForm(d, di, matrix.Identity(nFree), rows)

	ai := a
	if nTor > 0 {
		ai, _ = matrix.TorsionAutInverse(a, dom.invFac)
	}

	bTemp := mulMatrix(b, di)
	for i := 0; i < bTemp.Rows(); i++ {
		for j := 0; j < bTemp.Cols(); j++ {
			bTemp.Entry(i, j).Neg(bTemp.Entry(i, j))
		}
	}
	bi := mulMatrix(ai, bTemp)

	for i, f := range dom.invFac {
		for j := 0; j < nTor; j++ {
			ai.Entry(i, j).Mod(ai.Entry(i, j), f)
		}
		for j := 0; j < nFree; j++ {
			bi.Entry(i, j).Mod(bi.Entry(i, j), f)
		}
	}

	inv := zeroMatrix(nTor+nFree, nTor+nFree)
	for i := 0; i < nTor; i++ {
		for j := 0; j < nTor; j++ {
			inv.Entry(i, j).Set(ai.Entry(i, j))
		}
		for j := 0; j < nFree; j++ {
			inv.Entry(i, j+nTor).Set(bi.Entry(i, j))
		}
	}
	for i := 0; i < nFree; i++ {
		for j := 0; j < nFree; j++ {
			inv.Entry(i+nTor, j+nTor).Set(di.Entry(i, j))
		}
	}

	return newHomFromReduced(cod, dom, inv)
}
