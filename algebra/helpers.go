// SPDX-License-Identifier: MIT

package algebra

import (
	"math/big"

	"github.com/katalvlaran/kirbytri/matrix"
)

var bigOne = big.NewInt(1)

// zeroMatrix allocates an r×c zero matrix; shapes here are never negative.
func zeroMatrix(r, c int) *matrix.IntMatrix {
	m, _ := matrix.NewIntMatrix(r, c)

	return m
}

// mulMatrix multiplies shapes the caller has already matched.
func mulMatrix(a, b *matrix.IntMatrix) *matrix.IntMatrix {
	p, _ := matrix.Mul(a, b)

	return p
}

// mulVector applies m to a vector of matching length.
func mulVector(m *matrix.IntMatrix, v []*big.Int) []*big.Int {
	out, _ := matrix.MulVec(m, v)

	return out
}

// smith runs the Smith normal form on a matrix known to be non-nil.
func smith(m *matrix.IntMatrix) *matrix.SNF {
	s, _ := matrix.SmithNormalForm(m)

	return s
}

func cloneVec(v []*big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Set(x)
	}

	return out
}

// addMul performs acc += a·b.
func addMul(acc, a, b *big.Int) {
	acc.Add(acc, new(big.Int).Mul(a, b))
}

func gcd(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// torsionScale returns p / gcd(t, p), the order-matching factor between a
// Z_t relation and the Z_p coefficients.
func torsionScale(p, t *big.Int) *big.Int {
	return new(big.Int).Quo(p, gcd(t, p))
}

func unitVector(n, i int) []*big.Int {
	v := matrix.NewVector(n)
	v[i].SetInt64(1)

	return v
}
