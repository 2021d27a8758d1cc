// SPDX-License-Identifier: MIT
// Package algebra: MarkedAbelianGroup construction and invariants.
//
// Purpose:
//   - Represent H = ker(M)/img(N) for integer matrices M (l×m) and N (m×n),
//     optionally with Z_p coefficients, together with the change-of-basis data
//     translating between chain coordinates (Zᵐ) and invariant-factor coordinates.
//
// Implementation:
//   - Stage 1: SNF of M gives rankM and the bases R, R⁻¹ of Zᵐ; the first rankM
//     coordinates of R⁻¹·v measure how far v is from a cycle.
//   - Stage 2 (p = 0): the trailing rows of R⁻¹·N present H; their SNF yields the
//     invariant factors (entries > 1) and the free rank (zero diagonal).
//   - Stage 2 (p > 0): the trailing rows are tensored with Z_p by appending p·I; the
//     TOR part contributed by diag(M) with gcd(dᵢ, p) > 1 is added back as a
//     diagonal presentation whose SNF yields the invariant factors.
//
// Determinism:
//   - Every basis is produced by the deterministic SNF of package matrix, so equal
//     inputs give equal coordinates.
//
// Concurrency:
//   - A MarkedAbelianGroup is immutable once built; share it freely.

package algebra

import (
	"context"
	"math/big"

	"github.com/katalvlaran/kirbytri/matrix"
)

const (
	opNewMarked = "NewMarkedAbelianGroup"
	opTrivial   = "NewTrivialPresentation"
)

// MarkedAbelianGroup is a finitely generated abelian group given as the homology
// ker(M)/img(N) of a two-step chain complex, with its chain-level coordinates.
type MarkedAbelianGroup struct {
	m, n  *matrix.IntMatrix
	coeff *big.Int

	mSNF  *matrix.SNF // bases of Zᵐ adapted to M
	rankM int

	// presentation of H (p = 0) or of its tensor part (p > 0) in SNF
	pres *matrix.SNF

	// p > 0 only
	tensor       *matrix.SNF
	tensorIfLoc  int
	tensorInvFac []*big.Int
	torLoc       int
	torVec       []*big.Int

	invFac    []*big.Int
	ifLoc     int // index of the first invariant factor on the SNF diagonal
	freeIndex int // index of the first free generator on the SNF diagonal
	freeRank  int
}

// NewMarkedAbelianGroup builds ker(M)/img(N) with integer coefficients.
// Errors: ErrNilArgument, ErrShapeMismatch (cols(M) != rows(N)).
func NewMarkedAbelianGroup(m, n *matrix.IntMatrix) (*MarkedAbelianGroup, error) {
	return NewMarkedAbelianGroupContext(context.Background(), m, n, nil)
}

// NewMarkedAbelianGroupMod builds ker(M)/img(N) with Z_p coefficients; p = 0
// (or nil) means the integers.
// Errors: ErrNilArgument, ErrShapeMismatch, ErrNegativeCoefficient.
func NewMarkedAbelianGroupMod(m, n *matrix.IntMatrix, p *big.Int) (*MarkedAbelianGroup, error) {
	return NewMarkedAbelianGroupContext(context.Background(), m, n, p)
}

// NewMarkedAbelianGroupContext is NewMarkedAbelianGroupMod with cancellation
// checked between the Smith normal form passes.
// M·N = 0 is not verified; see IsChainComplex.
func NewMarkedAbelianGroupContext(ctx context.Context, m, n *matrix.IntMatrix, p *big.Int) (*MarkedAbelianGroup, error) {
	if m == nil || n == nil {
		return nil, algebraErrorf(opNewMarked, ErrNilArgument)
	}
	if m.Cols() != n.Rows() {
		return nil, algebraErrorf(opNewMarked, ErrShapeMismatch)
	}
	coeff := new(big.Int)
	if p != nil {
		if p.Sign() < 0 {
			return nil, algebraErrorf(opNewMarked, ErrNegativeCoefficient)
		}
		coeff.Set(p)
	}
	g, err := buildMarked(ctx, m.Clone(), n.Clone(), coeff)
	if err != nil {
		return nil, algebraErrorf(opNewMarked, err)
	}

	return g, nil
}

// newMarked is the unchecked constructor for presentations built inside the package.
func newMarked(m, n *matrix.IntMatrix) *MarkedAbelianGroup {
	g, _ := buildMarked(context.Background(), m, n, new(big.Int))

	return g
}

func buildMarked(ctx context.Context, m, n *matrix.IntMatrix, p *big.Int) (*MarkedAbelianGroup, error) {
	g := &MarkedAbelianGroup{m: m, n: n, coeff: p}

	g.mSNF = smith(m)
	g.rankM = g.mSNF.Rank()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.Sign() > 0 {
		for i := 0; i < g.rankM; i++ {
			d := g.mSNF.D.Entry(i, i)
			if gcd(d, p).Cmp(bigOne) > 0 {
				g.torVec = append(g.torVec, new(big.Int).Set(d))
			}
		}
	}
	g.torLoc = g.rankM - len(g.torVec)

	riN := mulMatrix(g.mSNF.Rinv, n)
	rows := n.Rows() - g.rankM

	if p.Sign() == 0 {
		pres := zeroMatrix(rows, n.Cols())
		for i := 0; i < rows; i++ {
			for j := 0; j < n.Cols(); j++ {
				pres.Entry(i, j).Set(riN.Entry(i+g.rankM, j))
			}
		}
		g.pres = smith(pres)
		for _, d := range g.pres.Diagonal() {
			switch d.Cmp(bigOne) {
			case 0:
				g.ifLoc++
			case 1:
				g.invFac = append(g.invFac, d)
			}
		}
		g.freeIndex = g.ifLoc + len(g.invFac)
		g.freeRank = rows - g.freeIndex

		return g, ctx.Err()
	}

	// Z_p coefficients: tensor the quotient presentation with Z_p.
	tensorPres := zeroMatrix(rows, n.Cols()+rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < n.Cols(); j++ {
			tensorPres.Entry(i, j).Set(riN.Entry(i+g.rankM, j))
		}
		tensorPres.Entry(i, n.Cols()+i).Set(p)
	}
	g.tensor = smith(tensorPres)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, d := range g.tensor.Diagonal() {
		switch d.Cmp(bigOne) {
		case 0:
			g.tensorIfLoc++
		case 1:
			g.tensorInvFac = append(g.tensorInvFac, d)
		default:
			g.freeRank++
		}
	}

	size := len(g.torVec) + len(g.tensorInvFac) + g.freeRank
	diag := zeroMatrix(size, size)
	for i, t := range g.torVec {
		diag.Entry(i, i).Set(gcd(t, p))
	}
	for i := range g.tensorInvFac {
		k := i + g.tensorIfLoc
		diag.Entry(len(g.torVec)+i, len(g.torVec)+i).Set(g.tensor.D.Entry(k, k))
	}
	g.pres = smith(diag)
	for _, d := range g.pres.Diagonal() {
		if d.Cmp(bigOne) > 0 {
			g.invFac = append(g.invFac, d)
		}
	}
	g.freeIndex = len(g.invFac)
	g.ifLoc = size - len(g.invFac)

	return g, ctx.Err()
}

// NewTrivialPresentation returns (Z_p)^rank presented with M = 0 (rank×rank) and
// N = p·I, all change-of-basis matrices the identity. p = 0 gives Z^rank.
// Errors: ErrNegativeCoefficient.
func NewTrivialPresentation(rank int, p *big.Int) (*MarkedAbelianGroup, error) {
	if rank < 0 {
		return nil, algebraErrorf(opTrivial, ErrIndexOutOfRange)
	}
	if p == nil {
		p = new(big.Int)
	}
	if p.Sign() < 0 {
		return nil, algebraErrorf(opTrivial, ErrNegativeCoefficient)
	}
	n := zeroMatrix(rank, rank)
	for i := 0; i < rank; i++ {
		n.Entry(i, i).Set(p)
	}

	return newMarked(zeroMatrix(rank, rank), n), nil
}

// CCRank is the rank of the chain group, i.e. rows(N).
func (g *MarkedAbelianGroup) CCRank() int { return g.n.Rows() }

// Rank is the free rank of the homology.
func (g *MarkedAbelianGroup) Rank() int { return g.freeRank }

// CountInvariantFactors is the number k of torsion summands.
func (g *MarkedAbelianGroup) CountInvariantFactors() int { return len(g.invFac) }

// SNFRank is k + Rank(), the length of an SNF coordinate vector.
func (g *MarkedAbelianGroup) SNFRank() int { return len(g.invFac) + g.freeRank }

// InvariantFactor returns dᵢ.
func (g *MarkedAbelianGroup) InvariantFactor(i int) (*big.Int, error) {
	if i < 0 || i >= len(g.invFac) {
		return nil, algebraErrorf("InvariantFactor", ErrIndexOutOfRange)
	}

	return new(big.Int).Set(g.invFac[i]), nil
}

// InvariantFactors returns copies of d₁ | … | dₖ.
func (g *MarkedAbelianGroup) InvariantFactors() []*big.Int { return cloneVec(g.invFac) }

// TorsionRank counts the invariant factors divisible by degree.
func (g *MarkedAbelianGroup) TorsionRank(degree *big.Int) int {
	if degree == nil || degree.Sign() == 0 {
		return 0
	}
	count := 0
	r := new(big.Int)
	for _, d := range g.invFac {
		if r.Rem(d, degree).Sign() == 0 {
			count++
		}
	}

	return count
}

// IsTrivial reports whether H = 0.
func (g *MarkedAbelianGroup) IsTrivial() bool { return g.SNFRank() == 0 }

// IsZ reports whether H ≅ Z.
func (g *MarkedAbelianGroup) IsZ() bool { return g.freeRank == 1 && len(g.invFac) == 0 }

// Coefficients returns p (0 for the integers).
func (g *MarkedAbelianGroup) Coefficients() *big.Int { return new(big.Int).Set(g.coeff) }

// M returns a copy of the outgoing boundary matrix.
func (g *MarkedAbelianGroup) M() *matrix.IntMatrix { return g.m.Clone() }

// N returns a copy of the incoming boundary matrix.
func (g *MarkedAbelianGroup) N() *matrix.IntMatrix { return g.n.Clone() }

// IsChainComplex reports whether M·N = 0 (mod p when p > 0).
func (g *MarkedAbelianGroup) IsChainComplex() bool {
	prod := mulMatrix(g.m, g.n)
	if g.coeff.Sign() == 0 {
		return prod.IsZero()
	}
	r := new(big.Int)
	for i := 0; i < prod.Rows(); i++ {
		for j := 0; j < prod.Cols(); j++ {
			if r.Rem(prod.Entry(i, j), g.coeff).Sign() != 0 {
				return false
			}
		}
	}

	return true
}

// Equal compares the defining data (M, N, p), not just the isomorphism type.
func (g *MarkedAbelianGroup) Equal(o *MarkedAbelianGroup) bool {
	if o == nil {
		return false
	}

	return g.coeff.Cmp(o.coeff) == 0 && g.m.Equal(o.m) && g.n.Equal(o.n)
}

// IsIsomorphicTo compares invariant factors and free rank only.
func (g *MarkedAbelianGroup) IsIsomorphicTo(o *MarkedAbelianGroup) bool {
	return g.freeRank == o.freeRank && matrix.VectorEqual(g.invFac, o.invFac)
}

// Unmarked forgets the chain-level data.
func (g *MarkedAbelianGroup) Unmarked() *AbelianGroup {
	return &AbelianGroup{rank: g.freeRank, invFactors: cloneVec(g.invFac)}
}

// String renders the isomorphism type, e.g. "Z + Z_2".
func (g *MarkedAbelianGroup) String() string {
	return groupString(g.freeRank, g.invFac)
}

// TorsionSubgroup presents the torsion of H on its own: M = 0 (1×k), N = diag(dᵢ).
func (g *MarkedAbelianGroup) TorsionSubgroup() *MarkedAbelianGroup {
	k := len(g.invFac)
	n := zeroMatrix(k, k)
	for i, d := range g.invFac {
		n.Entry(i, i).Set(d)
	}

	return newMarked(zeroMatrix(1, k), n)
}

// TorsionInclusion is the map TorsionSubgroup() → g sending the i-th generator
// to TorsionRep(i).
func (g *MarkedAbelianGroup) TorsionInclusion() *HomMarkedAbelianGroup {
	k := len(g.invFac)
	inc := zeroMatrix(g.CCRank(), k)
	for j := 0; j < k; j++ {
		rep := g.torsionRep(j)
		for i, x := range rep {
			inc.Entry(i, j).Set(x)
		}
	}

	return newHom(g.TorsionSubgroup(), g, inc)
}
