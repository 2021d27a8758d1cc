// SPDX-License-Identifier: MIT
// Package algebra: translation between chain and SNF coordinates.
//
// Coordinates:
//   - A chain is a vector in Zᵐ, m = CCRank().
//   - An SNF vector has k torsion coordinates (reduced into [0, dᵢ)) followed by
//     Rank() free coordinates.
//
// Round trip:
//   - SNFRep(CCRep(x)) equals x with the torsion part reduced.
//   - CCRep(SNFRep(v)) - v is a boundary for every cycle v.

package algebra

import (
	"math/big"

	"github.com/katalvlaran/kirbytri/matrix"
)

// FreeRep returns a cycle representing the i-th free generator.
func (g *MarkedAbelianGroup) FreeRep(i int) ([]*big.Int, error) {
	if i < 0 || i >= g.freeRank {
		return nil, algebraErrorf("FreeRep", ErrIndexOutOfRange)
	}

	return g.freeRep(i), nil
}

// TorsionRep returns a cycle representing the i-th torsion generator.
func (g *MarkedAbelianGroup) TorsionRep(i int) ([]*big.Int, error) {
	if i < 0 || i >= len(g.invFac) {
		return nil, algebraErrorf("TorsionRep", ErrIndexOutOfRange)
	}

	return g.torsionRep(i), nil
}

// CCRep lifts an SNF vector to a cycle in chain coordinates.
func (g *MarkedAbelianGroup) CCRep(snf []*big.Int) ([]*big.Int, error) {
	if len(snf) != g.SNFRank() {
		return nil, algebraErrorf("CCRep", ErrWrongLength)
	}

	return g.ccRep(snf), nil
}

// CCRepIndex lifts the i-th SNF generator (torsion first, then free).
func (g *MarkedAbelianGroup) CCRepIndex(i int) ([]*big.Int, error) {
	if i < 0 || i >= g.SNFRank() {
		return nil, algebraErrorf("CCRepIndex", ErrIndexOutOfRange)
	}

	return g.ccRep(unitVector(g.SNFRank(), i)), nil
}

// SNFRep returns the SNF coordinates of the homology class of a cycle.
// Errors: ErrWrongLength, ErrNotCycle.
func (g *MarkedAbelianGroup) SNFRep(v []*big.Int) ([]*big.Int, error) {
	if len(v) != g.CCRank() {
		return nil, algebraErrorf("SNFRep", ErrWrongLength)
	}
	out, ok := g.snfRep(v)
	if !ok {
		return nil, algebraErrorf("SNFRep", ErrNotCycle)
	}

	return out, nil
}

// IsCycle reports whether M·v = 0 (mod p). Wrong-length input is not a cycle.
func (g *MarkedAbelianGroup) IsCycle(v []*big.Int) bool {
	if len(v) != g.CCRank() {
		return false
	}

	return g.isCycle(v)
}

// IsBoundary reports whether v is a cycle whose class vanishes.
func (g *MarkedAbelianGroup) IsBoundary(v []*big.Int) bool {
	if len(v) != g.CCRank() {
		return false
	}
	snf, ok := g.snfRep(v)

	return ok && matrix.VectorIsZero(snf)
}

// BoundaryOf returns M·v, reduced mod p when p > 0.
func (g *MarkedAbelianGroup) BoundaryOf(v []*big.Int) ([]*big.Int, error) {
	if len(v) != g.CCRank() {
		return nil, algebraErrorf("BoundaryOf", ErrWrongLength)
	}
	out := mulVector(g.m, v)
	if g.coeff.Sign() > 0 {
		for _, x := range out {
			x.Mod(x, g.coeff)
		}
	}

	return out, nil
}

// AsBoundary solves N·x = v (mod p when p > 0) for a boundary v.
// Errors: ErrWrongLength, ErrNotBoundary.
func (g *MarkedAbelianGroup) AsBoundary(v []*big.Int) ([]*big.Int, error) {
	if len(v) != g.CCRank() {
		return nil, algebraErrorf("AsBoundary", ErrWrongLength)
	}
	out, ok := g.asBoundary(v)
	if !ok {
		return nil, algebraErrorf("AsBoundary", ErrNotBoundary)
	}

	return out, nil
}

// CycleRank is the rank of ker(M) (of ker(M mod p) when p > 0).
func (g *MarkedAbelianGroup) CycleRank() int { return g.n.Rows() - g.torLoc }

// CycleGen returns the i-th generator of the cycle group.
func (g *MarkedAbelianGroup) CycleGen(i int) ([]*big.Int, error) {
	if i < 0 || i >= g.CycleRank() {
		return nil, algebraErrorf("CycleGen", ErrIndexOutOfRange)
	}

	return g.cycleGen(i), nil
}

// CycleProjection projects a chain onto the cycle subspace along the complement
// spanned by the first rank(M) columns of R.
func (g *MarkedAbelianGroup) CycleProjection(v []*big.Int) ([]*big.Int, error) {
	if len(v) != g.CCRank() {
		return nil, algebraErrorf("CycleProjection", ErrWrongLength)
	}

	return g.cycleProjection(v), nil
}

// CycleProjectionIndex projects the i-th standard basis chain.
func (g *MarkedAbelianGroup) CycleProjectionIndex(i int) ([]*big.Int, error) {
	if i < 0 || i >= g.CCRank() {
		return nil, algebraErrorf("CycleProjectionIndex", ErrIndexOutOfRange)
	}

	return g.cycleProjection(unitVector(g.CCRank(), i)), nil
}

// ---------- unchecked kernels ----------

func (g *MarkedAbelianGroup) freeRep(i int) []*big.Int {
	return g.ccRep(unitVector(g.SNFRank(), len(g.invFac)+i))
}

func (g *MarkedAbelianGroup) torsionRep(i int) []*big.Int {
	return g.ccRep(unitVector(g.SNFRank(), i))
}

func (g *MarkedAbelianGroup) ccRep(snf []*big.Int) []*big.Int {
	r := g.mSNF.R
	ci := g.pres.Linv

	if g.coeff.Sign() == 0 {
		temp := matrix.NewVector(r.Cols())
		for i := 0; i < ci.Rows(); i++ {
			for j, x := range snf {
				addMul(temp[i+g.torLoc], ci.Entry(i, g.ifLoc+j), x)
			}
		}

		return mulVector(r, temp)
	}

	nTor := len(g.torVec)
	first := matrix.NewVector(nTor)
	second := matrix.NewVector(ci.Rows() - nTor)
	for i := 0; i < ci.Rows(); i++ {
		acc := new(big.Int)
		for j, x := range snf {
			addMul(acc, ci.Entry(i, g.ifLoc+j), x)
		}
		if i < nTor {
			first[i] = acc.Mul(acc, torsionScale(g.coeff, g.torVec[i]))
		} else {
			second[i-nTor] = acc
		}
	}

	tci := g.tensor.Linv
	lifted := matrix.NewVector(tci.Rows())
	for i := range lifted {
		for j := g.tensorIfLoc; j < tci.Cols(); j++ {
			addMul(lifted[i], tci.Entry(i, j), second[j-g.tensorIfLoc])
		}
	}

	out := matrix.NewVector(r.Rows())
	for i := range out {
		for j, x := range first {
			addMul(out[i], r.Entry(i, g.torLoc+j), x)
		}
		for j, x := range lifted {
			addMul(out[i], r.Entry(i, g.rankM+j), x)
		}
	}

	return out
}

func (g *MarkedAbelianGroup) isCycle(v []*big.Int) bool {
	img := mulVector(g.m, v)
	if g.coeff.Sign() == 0 {
		return matrix.VectorIsZero(img)
	}
	r := new(big.Int)
	for _, x := range img {
		if r.Rem(x, g.coeff).Sign() != 0 {
			return false
		}
	}

	return true
}

// snfRep reports false when v is not a cycle.
func (g *MarkedAbelianGroup) snfRep(v []*big.Int) ([]*big.Int, bool) {
	temp := mulVector(g.mSNF.Rinv, v)
	p := g.coeff
	rem := new(big.Int)

	if p.Sign() == 0 {
		for i := 0; i < g.rankM; i++ {
			if temp[i].Sign() != 0 {
				return nil, false
			}
		}
	} else {
		for i := 0; i < g.rankM; i++ {
			if i < g.torLoc {
				if rem.Rem(temp[i], p).Sign() != 0 {
					return nil, false
				}
				continue
			}
			t := g.torVec[i-g.torLoc]
			if rem.Rem(new(big.Int).Mul(temp[i], t), p).Sign() != 0 {
				return nil, false
			}
			temp[i].Quo(temp[i], torsionScale(p, t))
		}
	}

	out := matrix.NewVector(g.SNFRank())
	c := g.pres.L
	nInv := len(g.invFac)

	if p.Sign() == 0 {
		for i := 0; i < g.freeRank; i++ {
			for j := g.rankM; j < len(temp); j++ {
				addMul(out[i+nInv], c.Entry(i+g.freeIndex, j-g.rankM), temp[j])
			}
		}
		for i := 0; i < nInv; i++ {
			for j := g.rankM; j < len(temp); j++ {
				addMul(out[i], c.Entry(i+g.ifLoc, j-g.rankM), temp[j])
			}
		}
	} else {
		nTor := len(g.torVec)
		tc := g.tensor.L
		diagV := matrix.NewVector(c.Cols())
		for i := range diagV {
			if i < nTor {
				diagV[i].Set(temp[i+g.torLoc])
				continue
			}
			for j := 0; j < tc.Cols(); j++ {
				addMul(diagV[i], tc.Entry(i-nTor+g.tensorIfLoc, j), temp[j+g.rankM])
			}
		}
		for i := range out {
			for j, x := range diagV {
				addMul(out[i], c.Entry(i+g.ifLoc, j), x)
			}
		}
	}

	for i, d := range g.invFac {
		out[i].Mod(out[i], d)
	}

	return out, true
}

func (g *MarkedAbelianGroup) asBoundary(v []*big.Int) ([]*big.Int, bool) {
	if !g.isCycle(v) {
		return nil, false
	}
	temp := mulVector(g.mSNF.Rinv, v)
	out := matrix.NewVector(g.n.Cols())
	rem := new(big.Int)

	if g.coeff.Sign() == 0 {
		c := g.pres.L
		snfV := matrix.NewVector(c.Rows())
		for i := range snfV {
			for j := 0; j < c.Cols(); j++ {
				addMul(snfV[i], c.Entry(i, j), temp[j+g.rankM])
			}
		}
		for i, d := range g.invFac {
			x := snfV[i+g.ifLoc]
			if rem.Rem(x, d).Sign() != 0 {
				return nil, false
			}
			x.Quo(x, d)
		}
		for i := 0; i < g.freeRank; i++ {
			if snfV[i+g.freeIndex].Sign() != 0 {
				return nil, false
			}
		}
		r := g.pres.R
		for i := 0; i < r.Rows(); i++ {
			for j := 0; j < g.freeIndex; j++ {
				addMul(out[i], r.Entry(i, j), snfV[j])
			}
		}

		return out, true
	}

	for i := range g.torVec {
		if rem.Rem(temp[g.torLoc+i], g.coeff).Sign() != 0 {
			return nil, false
		}
	}
	tc := g.tensor.L
	tensorV := matrix.NewVector(tc.Rows())
	for i := range tensorV {
		for j := 0; j < tc.Cols(); j++ {
			addMul(tensorV[i], tc.Entry(i, j), temp[j+g.rankM])
		}
	}
	for i, d := range g.tensorInvFac {
		x := tensorV[i+g.tensorIfLoc]
		if rem.Rem(x, d).Sign() != 0 {
			return nil, false
		}
		x.Quo(x, d)
	}
	tr := g.tensor.R
	for i := range out {
		for j, x := range tensorV {
			addMul(out[i], tr.Entry(i, j), x)
		}
	}

	return out, true
}

func (g *MarkedAbelianGroup) cycleGen(i int) []*big.Int {
	out := matrix.NewVector(g.CCRank())
	for k := range out {
		out[k].Set(g.mSNF.R.Entry(k, i+g.torLoc))
	}
	if i < len(g.torVec) {
		s := torsionScale(g.coeff, g.torVec[i])
		for _, x := range out {
			x.Mul(x, s)
		}
	}

	return out
}

func (g *MarkedAbelianGroup) cycleProjection(v []*big.Int) []*big.Int {
	temp := mulVector(g.mSNF.Rinv, v)
	for i := 0; i < g.rankM; i++ {
		temp[i].SetInt64(0)
	}

	return mulVector(g.mSNF.R, temp)
}
