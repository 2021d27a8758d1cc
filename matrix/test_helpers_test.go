// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic integer fixtures for SNF and lattice kernels.
//   • Keep assertions about unimodularity and products in one place.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/kirbytri/matrix"
	"github.com/stretchr/testify/require"
)

// MustInts builds an IntMatrix from literals or fails the test.
func MustInts(t *testing.T, rows [][]int) *matrix.IntMatrix {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// MustMul multiplies or fails the test.
func MustMul(t *testing.T, a, b *matrix.IntMatrix) *matrix.IntMatrix {
	t.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return p
}

// RequireUnimodular asserts det(m) = ±1.
func RequireUnimodular(t *testing.T, m *matrix.IntMatrix) {
	t.Helper()
	d, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, 1, new(big.Int).Abs(d).Cmp(big.NewInt(0)), "det must be non-zero")
	require.Zero(t, new(big.Int).Abs(d).Cmp(big.NewInt(1)), "det=%s", d)
}

// RequireSNF checks every structural promise of a Smith normal form of a.
func RequireSNF(t *testing.T, a *matrix.IntMatrix, s *matrix.SNF) {
	t.Helper()
	require.True(t, MustMul(t, MustMul(t, s.L, a), s.R).Equal(s.D), "L·A·R != D")
	require.True(t, MustMul(t, s.L, s.Linv).IsIdentity(), "L·Linv != I")
	require.True(t, MustMul(t, s.R, s.Rinv).IsIdentity(), "R·Rinv != I")

	// D diagonal
	for i := 0; i < s.D.Rows(); i++ {
		for j := 0; j < s.D.Cols(); j++ {
			if i != j {
				require.Zero(t, s.D.Entry(i, j).Sign(), "off-diagonal (%d,%d)", i, j)
			}
		}
	}
	// divisor chain with zeros last
	diag := s.Diagonal()
	rem := new(big.Int)
	for i := 0; i+1 < len(diag); i++ {
		require.GreaterOrEqual(t, diag[i].Sign(), 0)
		if diag[i].Sign() == 0 {
			require.Zero(t, diag[i+1].Sign(), "zero before non-zero at %d", i)
			continue
		}
		require.Zero(t, rem.Rem(diag[i+1], diag[i]).Sign(), "d%d ∤ d%d", i, i+1)
	}
}
