// SPDX-License-Identifier: MIT
// Package algebra_test contains shared fixtures: small chain complexes whose
// homology is known by hand.

package algebra_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/kirbytri/algebra"
	"github.com/katalvlaran/kirbytri/matrix"
	"github.com/stretchr/testify/require"
)

func mustInts(t *testing.T, rows [][]int) *matrix.IntMatrix {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

func zeros(t *testing.T, r, c int) *matrix.IntMatrix {
	t.Helper()
	m, err := matrix.NewIntMatrix(r, c)
	require.NoError(t, err)

	return m
}

func mustMarked(t *testing.T, m, n *matrix.IntMatrix, p int64) *algebra.MarkedAbelianGroup {
	t.Helper()
	g, err := algebra.NewMarkedAbelianGroupMod(m, n, big.NewInt(p))
	require.NoError(t, err)

	return g
}

// circle is H₁(S¹) = Z: one vertex, one loop.
func circle(t *testing.T) *algebra.MarkedAbelianGroup {
	return mustMarked(t, mustInts(t, [][]int{{0}}), zeros(t, 1, 0), 0)
}

// zMod builds Z_d as ker(0)/img(d).
func zMod(t *testing.T, d int) *algebra.MarkedAbelianGroup {
	return mustMarked(t, mustInts(t, [][]int{{0}}), mustInts(t, [][]int{{d}}), 0)
}

// zPlusZ6 is Z ⊕ Z_6 presented with three chain generators.
func zPlusZ6(t *testing.T) *algebra.MarkedAbelianGroup {
	return mustMarked(t, zeros(t, 1, 3), mustInts(t, [][]int{{2, 0}, {0, 3}, {0, 0}}), 0)
}

func toInt64s(v []*big.Int) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = x.Int64()
	}

	return out
}

func vec(xs ...int64) []*big.Int { return matrix.VectorFromInts(xs...) }
