// SPDX-License-Identifier: MIT

package algebra

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/kirbytri/matrix"
)

// AbelianGroup is the isomorphism type Z^rank ⊕ Z_{d₁} ⊕ … ⊕ Z_{dₖ} with 1 < d₁ | … | dₖ.
// It carries no chain-level coordinates; see MarkedAbelianGroup for those.
type AbelianGroup struct {
	rank       int
	invFactors []*big.Int
}

// NewAbelianGroup normalizes arbitrary cyclic orders into invariant-factor form.
// Factors equal to ±1 vanish, zeros join the free rank, and the rest are
// rewritten as a divisor chain (so {2, 3} becomes {6}).
func NewAbelianGroup(rank int, factors ...*big.Int) *AbelianGroup {
	if rank < 0 {
		rank = 0
	}
	g := &AbelianGroup{rank: rank}
	if len(factors) == 0 {
		return g
	}
	diag := zeroMatrix(len(factors), len(factors))
	for i, f := range factors {
		diag.Entry(i, i).Abs(f)
	}
	snf, _ := matrix.SmithNormalForm(diag)
	for _, d := range snf.Diagonal() {
		switch {
		case d.Sign() == 0:
			g.rank++
		case d.Cmp(big.NewInt(1)) > 0:
			g.invFactors = append(g.invFactors, d)
		}
	}

	return g
}

// Rank returns the free rank.
func (g *AbelianGroup) Rank() int { return g.rank }

// CountInvariantFactors returns k, the number of torsion summands.
func (g *AbelianGroup) CountInvariantFactors() int { return len(g.invFactors) }

// InvariantFactor returns dᵢ.
func (g *AbelianGroup) InvariantFactor(i int) (*big.Int, error) {
	if i < 0 || i >= len(g.invFactors) {
		return nil, algebraErrorf("AbelianGroup.InvariantFactor", ErrIndexOutOfRange)
	}

	return new(big.Int).Set(g.invFactors[i]), nil
}

// InvariantFactors returns copies of d₁ | … | dₖ.
func (g *AbelianGroup) InvariantFactors() []*big.Int { return cloneVec(g.invFactors) }

// IsTrivial reports whether the group is 0.
func (g *AbelianGroup) IsTrivial() bool { return g.rank == 0 && len(g.invFactors) == 0 }

// IsZ reports whether the group is infinite cyclic.
func (g *AbelianGroup) IsZ() bool { return g.rank == 1 && len(g.invFactors) == 0 }

// Equal compares isomorphism types.
func (g *AbelianGroup) Equal(o *AbelianGroup) bool {
	if g.rank != o.rank || len(g.invFactors) != len(o.invFactors) {
		return false
	}

	return matrix.VectorEqual(g.invFactors, o.invFactors)
}

// String renders e.g. "2 Z + 3 Z_2 + Z_6", or "0" for the trivial group.
func (g *AbelianGroup) String() string {
	return groupString(g.rank, g.invFactors)
}

func groupString(rank int, factors []*big.Int) string {
	var parts []string
	if rank > 0 {
		if rank > 1 {
			parts = append(parts, strconv.Itoa(rank)+" Z")
		} else {
			parts = append(parts, "Z")
		}
	}
	for i := 0; i < len(factors); {
		j := i
		for j < len(factors) && factors[j].Cmp(factors[i]) == 0 {
			j++
		}
		term := "Z_" + factors[i].String()
		if mult := j - i; mult > 1 {
			term = strconv.Itoa(mult) + " " + term
		}
		parts = append(parts, term)
		i = j
	}
	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, " + ")
}
