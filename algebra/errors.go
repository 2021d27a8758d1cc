// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
//
// Every error surfaced by this package matches ErrInvalidArgument via
// errors.Is; the narrower sentinels below say which precondition failed.

package algebra

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every user-input failure in this package.
var ErrInvalidArgument = errors.New("algebra: invalid argument")

var (
	// ErrShapeMismatch: columns(M) != rows(N), or a hom matrix of the wrong shape.
	ErrShapeMismatch = fmt.Errorf("%w: shape mismatch", ErrInvalidArgument)

	// ErrWrongLength: a coordinate vector of the wrong length.
	ErrWrongLength = fmt.Errorf("%w: wrong vector length", ErrInvalidArgument)

	// ErrNotCycle: snfRep requested for a chain outside ker(M).
	ErrNotCycle = fmt.Errorf("%w: not a cycle", ErrInvalidArgument)

	// ErrNotBoundary: a boundary solve requested for a non-boundary.
	ErrNotBoundary = fmt.Errorf("%w: not a boundary", ErrInvalidArgument)

	// ErrIndexOutOfRange: generator or factor index outside its range.
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrNegativeCoefficient: a coefficient modulus p < 0.
	ErrNegativeCoefficient = fmt.Errorf("%w: negative coefficients", ErrInvalidArgument)

	// ErrCoefficientMismatch: codomain coefficients do not divide domain coefficients.
	ErrCoefficientMismatch = fmt.Errorf("%w: incompatible coefficients", ErrInvalidArgument)

	// ErrNotComposable: g.Codomain() differs from f.Domain() in f.Compose(g).
	ErrNotComposable = fmt.Errorf("%w: maps are not composable", ErrInvalidArgument)

	// ErrNilArgument: a nil group, matrix or map.
	ErrNilArgument = fmt.Errorf("%w: nil argument", ErrInvalidArgument)
)

// algebraErrorf tags an error with the calling method.
func algebraErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
