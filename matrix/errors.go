// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public functions return these sentinels (optionally wrapped with a
// method tag) and tests check them via errors.Is. Panics are reserved for
// programmer errors inside unchecked fast paths (Entry, row/column kernels).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines stay greppable.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers keep
// matching with errors.Is.
//
// ERROR PRIORITY:
// nil -> shape -> index -> dimension mismatch -> algebraic preconditions.

var (
	// ErrNilMatrix indicates that a nil *IntMatrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is negative.
	// Zero rows or zero columns are legal: chain complexes need 1×0 and 0×n maps.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged signals that a row-literal input had rows of different lengths.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols != b.Rows or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilEntry is returned by Set when given a nil *big.Int.
	ErrNilEntry = errors.New("matrix: nil entry")

	// ErrZeroModulus signals a torsion routine received a zero or negative invariant factor.
	ErrZeroModulus = errors.New("matrix: invariant factor must be positive")
)
