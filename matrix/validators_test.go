// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/kirbytri/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	sq := MustInts(t, [][]int{{1, 2}, {3, 4}})
	wide := MustInts(t, [][]int{{1, 2, 3}})

	require.NoError(t, matrix.ValidateNotNil(sq))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(wide, MustInts(t, [][]int{{1}, {2}, {3}})))
	require.ErrorIs(t, matrix.ValidateMulCompatible(sq, wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, sq), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(sq, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateVecLen(matrix.VectorFromInts(1, 2), 2))
	require.ErrorIs(t, matrix.ValidateVecLen(matrix.VectorFromInts(1), 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen([]*big.Int{big.NewInt(1), nil}, 2), matrix.ErrNilEntry)
}
