// SPDX-License-Identifier: MIT
// Package algebra: HomMarkedAbelianGroup, a chain-level map between marked groups.
//
// Purpose:
//   - Carry a defining matrix F (codomain.CCRank × domain.CCRank) and derive, on
//     demand, the reduced matrix in SNF coordinates, the kernel lattice, and the
//     kernel, cokernel and image groups.
//
// Caching:
//   - Derived data is computed once under a mutex, so a map may be queried from
//     several goroutines. The defining matrix and both groups never change.
//
// AI-Hints:
//   - NewHomFromReducedMatrix is the way to build a map from SNF coordinates, e.g.
//     when only the action on homology is known (InverseHom uses it).

package algebra

import (
	"math/big"
	"sync"

	"github.com/katalvlaran/kirbytri/matrix"
)

const (
	opNewHom     = "NewHomMarkedAbelianGroup"
	opNewHomRed  = "NewHomFromReducedMatrix"
	opEvalCC     = "HomMarkedAbelianGroup.EvalCC"
	opEvalSNF    = "HomMarkedAbelianGroup.EvalSNF"
	opCompose    = "HomMarkedAbelianGroup.Compose"
	summaryIso   = "isomorphism"
	summaryZero  = "zero map"
	summaryMonic = "monic, with cokernel "
	summaryEpic  = "epic, with kernel "
)

// HomMarkedAbelianGroup is a homomorphism between two marked abelian groups
// induced by a chain map.
type HomMarkedAbelianGroup struct {
	domain, codomain *MarkedAbelianGroup
	mat              *matrix.IntMatrix

	mu            sync.Mutex
	reduced       *matrix.IntMatrix
	kernelLattice *matrix.IntMatrix
	kernel        *MarkedAbelianGroup
	cokernel      *MarkedAbelianGroup
	image         *MarkedAbelianGroup
}

// NewHomMarkedAbelianGroup builds the map induced by the chain matrix mat.
// Errors:
//   - ErrNilArgument.
//   - ErrShapeMismatch if mat is not codomain.CCRank × domain.CCRank.
//   - ErrCoefficientMismatch unless p(codomain) divides p(domain), where 0 is
//     divisible only by 0.
func NewHomMarkedAbelianGroup(domain, codomain *MarkedAbelianGroup, mat *matrix.IntMatrix) (*HomMarkedAbelianGroup, error) {
	if domain == nil || codomain == nil || mat == nil {
		return nil, algebraErrorf(opNewHom, ErrNilArgument)
	}
	if mat.Rows() != codomain.CCRank() || mat.Cols() != domain.CCRank() {
		return nil, algebraErrorf(opNewHom, ErrShapeMismatch)
	}
	if !coefficientsCompatible(domain.coeff, codomain.coeff) {
		return nil, algebraErrorf(opNewHom, ErrCoefficientMismatch)
	}

	return newHom(domain, codomain, mat.Clone()), nil
}

func newHom(domain, codomain *MarkedAbelianGroup, mat *matrix.IntMatrix) *HomMarkedAbelianGroup {
	return &HomMarkedAbelianGroup{domain: domain, codomain: codomain, mat: mat}
}

func coefficientsCompatible(pDom, pCod *big.Int) bool {
	if pDom.Sign() == 0 || pCod.Sign() == 0 {
		return pDom.Sign() == 0 && pCod.Sign() == 0
	}

	return new(big.Int).Rem(pDom, pCod).Sign() == 0
}

// NewHomFromReducedMatrix builds the chain map whose action in SNF coordinates
// is red (codomain.SNFRank × domain.SNFRank).
//
// Implementation:
//   - Stage 1: conjugate red into the presentation bases of both groups.
//   - Stage 2: for Z_p coefficients, pass through the tensor bases and rescale the
//     TOR rows and columns by p/gcd(p, tᵢ).
//   - Stage 3: conjugate into chain coordinates with R (codomain) and R⁻¹ (domain).
func NewHomFromReducedMatrix(domain, codomain *MarkedAbelianGroup, red *matrix.IntMatrix) (*HomMarkedAbelianGroup, error) {
	if domain == nil || codomain == nil || red == nil {
		return nil, algebraErrorf(opNewHomRed, ErrNilArgument)
	}
	if red.Rows() != codomain.SNFRank() || red.Cols() != domain.SNFRank() {
		return nil, algebraErrorf(opNewHomRed, ErrShapeMismatch)
	}
	if !coefficientsCompatible(domain.coeff, codomain.coeff) {
		return nil, algebraErrorf(opNewHomRed, ErrCoefficientMismatch)
	}

	return newHomFromReduced(domain, codomain, red), nil
}

func newHomFromReduced(dom, cod *MarkedAbelianGroup, red *matrix.IntMatrix) *HomMarkedAbelianGroup {
	codCi := cod.pres.Linv
	domC := dom.pres.L

	step1 := zeroMatrix(codCi.Rows(), domC.Cols())
	for i := 0; i < step1.Rows(); i++ {
		for j := 0; j < step1.Cols(); j++ {
			acc := step1.Entry(i, j)
			for k := 0; k < red.Rows(); k++ {
				for l := 0; l < red.Cols(); l++ {
					t := new(big.Int).Mul(codCi.Entry(i, k+cod.ifLoc), red.Entry(k, l))
					addMul(acc, t, domC.Entry(l+dom.ifLoc, j))
				}
			}
		}
	}

	step2 := step1
	if dom.coeff.Sign() > 0 {
		step2 = tensorStep(dom, cod, step1)
	}

	codR := cod.mSNF.R
	domRi := dom.mSNF.Rinv
	mat := zeroMatrix(cod.CCRank(), dom.CCRank())
	for i := 0; i < mat.Rows(); i++ {
		for j := 0; j < mat.Cols(); j++ {
			acc := mat.Entry(i, j)
			for k := cod.torLoc; k < codR.Cols(); k++ {
				for l := dom.torLoc; l < domRi.Rows(); l++ {
					t := new(big.Int).Mul(codR.Entry(i, k), step2.Entry(k-cod.torLoc, l-dom.torLoc))
					addMul(acc, t, domRi.Entry(l, j))
				}
			}
		}
	}

	h := newHom(dom, cod, mat)
	h.reduced = red.Clone()

	return h
}

// tensorStep lifts the presentation-basis block through the Z_p tensor bases.
func tensorStep(dom, cod *MarkedAbelianGroup, step1 *matrix.IntMatrix) *matrix.IntMatrix {
	codTor, domTor := len(cod.torVec), len(dom.torVec)
	codTCi := cod.tensor.Linv
	domTC := dom.tensor.L

	out := zeroMatrix(step1.Rows()+cod.tensorIfLoc, step1.Cols()+dom.tensorIfLoc)
	for i := 0; i < out.Rows(); i++ {
		for j := 0; j < out.Cols(); j++ {
			acc := out.Entry(i, j)
			switch {
			case i < codTor && j < domTor:
				acc.Set(step1.Entry(i, j))
			case i < codTor:
				for k := dom.tensorIfLoc; k < domTC.Rows(); k++ {
					addMul(acc, step1.Entry(i, k-dom.tensorIfLoc+domTor), domTC.Entry(k, j-domTor))
				}
			case j < domTor:
				for k := cod.tensorIfLoc; k < codTCi.Cols(); k++ {
					addMul(acc, codTCi.Entry(i-codTor, k), step1.Entry(k-cod.tensorIfLoc+codTor, j))
				}
			default:
				for k := cod.tensorIfLoc; k < codTCi.Rows(); k++ {
					for l := dom.tensorIfLoc; l < domTC.Rows(); l++ {
						t := new(big.Int).Mul(codTCi.Entry(i-codTor, k), step1.Entry(k-cod.tensorIfLoc+codTor, l-dom.tensorIfLoc+domTor))
						addMul(acc, t, domTC.Entry(l, j-domTor))
					}
				}
			}
		}
	}

	for i := 0; i < codTor; i++ {
		s := torsionScale(cod.coeff, cod.torVec[i])
		for j := 0; j < out.Cols(); j++ {
			out.Entry(i, j).Mul(out.Entry(i, j), s)
		}
	}
	for j := 0; j < domTor; j++ {
		s := torsionScale(dom.coeff, dom.torVec[j])
		for i := 0; i < out.Rows(); i++ {
			out.Entry(i, j).Quo(out.Entry(i, j), s)
		}
	}

	return out
}

// Domain returns the source group.
func (h *HomMarkedAbelianGroup) Domain() *MarkedAbelianGroup { return h.domain }

// Codomain returns the target group.
func (h *HomMarkedAbelianGroup) Codomain() *MarkedAbelianGroup { return h.codomain }

// DefiningMatrix returns a copy of the chain-level matrix.
func (h *HomMarkedAbelianGroup) DefiningMatrix() *matrix.IntMatrix { return h.mat.Clone() }

// ReducedMatrix returns the action in SNF coordinates: column j is the SNF
// image of the j-th domain generator (torsion first, then free).
func (h *HomMarkedAbelianGroup) ReducedMatrix() *matrix.IntMatrix {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.ensureReduced().Clone()
}

// ReducedKernelLattice returns a basis (as columns) of the lattice of SNF
// vectors of the domain mapping to 0 in the codomain.
func (h *HomMarkedAbelianGroup) ReducedKernelLattice() *matrix.IntMatrix {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.ensureKernelLattice().Clone()
}

// Kernel returns the isomorphism type of the kernel.
func (h *HomMarkedAbelianGroup) Kernel() *AbelianGroup {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.ensureKernel().Unmarked()
}

// Cokernel returns the isomorphism type of the cokernel.
func (h *HomMarkedAbelianGroup) Cokernel() *AbelianGroup {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.ensureCokernel().Unmarked()
}

// Image returns the isomorphism type of the image.
func (h *HomMarkedAbelianGroup) Image() *AbelianGroup {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.ensureImage().Unmarked()
}

// IsEpic reports a trivial cokernel.
func (h *HomMarkedAbelianGroup) IsEpic() bool { return h.Cokernel().IsTrivial() }

// IsMonic reports a trivial kernel.
func (h *HomMarkedAbelianGroup) IsMonic() bool { return h.Kernel().IsTrivial() }

// IsIsomorphism reports both.
func (h *HomMarkedAbelianGroup) IsIsomorphism() bool { return h.IsEpic() && h.IsMonic() }

// IsZero reports a trivial image.
func (h *HomMarkedAbelianGroup) IsZero() bool { return h.Image().IsTrivial() }

// IsIdentity requires identical presentations on both ends and an identity reduced matrix.
func (h *HomMarkedAbelianGroup) IsIdentity() bool {
	if !h.domain.Equal(h.codomain) {
		return false
	}

	return h.ReducedMatrix().IsIdentity()
}

// EvalCC applies the defining matrix to a chain of the domain.
func (h *HomMarkedAbelianGroup) EvalCC(v []*big.Int) ([]*big.Int, error) {
	if len(v) != h.domain.CCRank() {
		return nil, algebraErrorf(opEvalCC, ErrWrongLength)
	}

	return mulVector(h.mat, v), nil
}

// EvalSNF applies the reduced matrix and reduces torsion coordinates.
func (h *HomMarkedAbelianGroup) EvalSNF(v []*big.Int) ([]*big.Int, error) {
	if len(v) != h.domain.SNFRank() {
		return nil, algebraErrorf(opEvalSNF, ErrWrongLength)
	}
	out := mulVector(h.ReducedMatrix(), v)
	for i, d := range h.codomain.invFac {
		out[i].Mod(out[i], d)
	}

	return out, nil
}

// Compose returns h∘g. g.Codomain() must have the same (M, N, p) as h.Domain().
func (h *HomMarkedAbelianGroup) Compose(g *HomMarkedAbelianGroup) (*HomMarkedAbelianGroup, error) {
	if g == nil {
		return nil, algebraErrorf(opCompose, ErrNilArgument)
	}
	if !g.codomain.Equal(h.domain) {
		return nil, algebraErrorf(opCompose, ErrNotComposable)
	}

	return newHom(g.domain, h.codomain, mulMatrix(h.mat, g.mat)), nil
}

// IsCycleMap reports whether every cycle generator of the domain maps to a cycle.
func (h *HomMarkedAbelianGroup) IsCycleMap() bool {
	for j := 0; j < h.domain.CycleRank(); j++ {
		if !h.codomain.isCycle(mulVector(h.mat, h.domain.cycleGen(j))) {
			return false
		}
	}

	return true
}

// IsChainMap reports whether h and other are two consecutive levels of a chain
// map: codomain.M has other.codomain.N's shape, likewise for the domains, and
// codomain.M · F = other.F · domain.M.
func (h *HomMarkedAbelianGroup) IsChainMap(other *HomMarkedAbelianGroup) bool {
	if other == nil {
		return false
	}
	cm, ocn := h.codomain.m, other.codomain.n
	dm, odn := h.domain.m, other.domain.n
	if cm.Rows() != ocn.Rows() || cm.Cols() != ocn.Cols() {
		return false
	}
	if dm.Rows() != odn.Rows() || dm.Cols() != odn.Cols() {
		return false
	}

	return mulMatrix(cm, h.mat).Equal(mulMatrix(other.mat, dm))
}

// TorsionSubgroup restricts h to the torsion subgroups of both ends.
func (h *HomMarkedAbelianGroup) TorsionSubgroup() *HomMarkedAbelianGroup {
	dom, cod := h.domain, h.codomain
	mat := zeroMatrix(len(cod.invFac), len(dom.invFac))
	for j := range dom.invFac {
		snf, ok := cod.snfRep(mulVector(h.mat, dom.torsionRep(j)))
		if !ok {
			continue
		}
		for i := range cod.invFac {
			mat.Entry(i, j).Set(snf[i])
		}
	}

	return newHom(dom.TorsionSubgroup(), cod.TorsionSubgroup(), mat)
}

// Summary describes the map in one line, e.g. "monic, with cokernel Z_2".
func (h *HomMarkedAbelianGroup) Summary() string {
	switch {
	case h.IsIsomorphism():
		return summaryIso
	case h.IsZero():
		return summaryZero
	case h.IsMonic():
		return summaryMonic + h.Cokernel().String()
	case h.IsEpic():
		return summaryEpic + h.Kernel().String()
	}

	return "kernel " + h.Kernel().String() +
		" | cokernel " + h.Cokernel().String() +
		" | image " + h.Image().String()
}

// String is Summary.
func (h *HomMarkedAbelianGroup) String() string { return h.Summary() }

// ---------- lazily derived data (h.mu held) ----------

func (h *HomMarkedAbelianGroup) ensureReduced() *matrix.IntMatrix {
	if h.reduced != nil {
		return h.reduced
	}
	dom, cod := h.domain, h.codomain
	red := zeroMatrix(cod.SNFRank(), dom.SNFRank())
	for j := 0; j < dom.SNFRank(); j++ {
		var rep []*big.Int
		if j < len(dom.invFac) {
			rep = dom.torsionRep(j)
		} else {
			rep = dom.freeRep(j - len(dom.invFac))
		}
		snf, ok := cod.snfRep(mulVector(h.mat, rep))
		if !ok {
			continue
		}
		for i, x := range snf {
			red.Entry(i, j).Set(x)
		}
	}
	h.reduced = red

	return red
}

func (h *HomMarkedAbelianGroup) ensureKernelLattice() *matrix.IntMatrix {
	if h.kernelLattice != nil {
		return h.kernelLattice
	}
	red := h.ensureReduced()
	lattice := matrix.NewVector(h.codomain.SNFRank())
	for i, d := range h.codomain.invFac {
		lattice[i].Set(d)
	}
	h.kernelLattice, _ = matrix.PreImageOfLattice(red, lattice)

	return h.kernelLattice
}

func (h *HomMarkedAbelianGroup) ensureKernel() *MarkedAbelianGroup {
	if h.kernel != nil {
		return h.kernel
	}
	lat := h.ensureKernelLattice()
	s := smith(lat)
	invF := h.domain.invFac

	work := zeroMatrix(lat.Cols(), len(invF))
	for i := 0; i < work.Rows(); i++ {
		for j, f := range invF {
			acc := work.Entry(i, j)
			for k := 0; k < s.R.Cols(); k++ {
				d := s.D.Entry(k, k)
				if d.Sign() == 0 {
					continue
				}
				t := new(big.Int).Mul(f, s.R.Entry(i, k))
				t.Mul(t, s.L.Entry(k, j))
				acc.Add(acc, t.Quo(t, d))
			}
		}
	}
	h.kernel = newMarked(zeroMatrix(1, lat.Cols()), work)

	return h.kernel
}

func (h *HomMarkedAbelianGroup) ensureCokernel() *MarkedAbelianGroup {
	if h.cokernel != nil {
		return h.cokernel
	}
	red := h.ensureReduced()
	rel := zeroMatrix(red.Rows(), red.Cols()+len(h.codomain.invFac))
	for i := 0; i < red.Rows(); i++ {
		for j := 0; j < red.Cols(); j++ {
			rel.Entry(i, j).Set(red.Entry(i, j))
		}
	}
	for i, d := range h.codomain.invFac {
		rel.Entry(i, red.Cols()+i).Set(d)
	}
	h.cokernel = newMarked(zeroMatrix(1, red.Rows()), rel)

	return h.cokernel
}

func (h *HomMarkedAbelianGroup) ensureImage() *MarkedAbelianGroup {
	if h.image != nil {
		return h.image
	}
	lat := h.ensureKernelLattice()
	nInv := len(h.domain.invFac)
	rel := zeroMatrix(lat.Rows(), lat.Cols()+nInv)
	for i, d := range h.domain.invFac {
		rel.Entry(i, i).Set(d)
	}
	for i := 0; i < lat.Rows(); i++ {
		for j := 0; j < lat.Cols(); j++ {
			rel.Entry(i, j+nInv).Set(lat.Entry(i, j))
		}
	}
	h.image = newMarked(zeroMatrix(1, lat.Rows()), rel)

	return h.image
}
