// SPDX-License-Identifier: MIT

package triangulation

import (
	"errors"
	"fmt"
)

// Roots of the two error kinds raised by this package.
var (
	// ErrInvalidArgument is the root of caller mistakes.
	ErrInvalidArgument = errors.New("triangulation: invalid argument")

	// ErrFailedPrecondition is the root of operations refused by object state.
	ErrFailedPrecondition = errors.New("triangulation: failed precondition")
)

var (
	// ErrDimension indicates a dimension outside MinDimension..MaxDimension.
	ErrDimension = fmt.Errorf("%w: dimension out of range", ErrInvalidArgument)

	// ErrOutOfRange indicates a simplex or facet index outside its range.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrBadJoin indicates a gluing onto an already glued facet, across
	// triangulations, of a facet onto itself, or with a wrong-size permutation.
	ErrBadJoin = fmt.Errorf("%w: bad join", ErrInvalidArgument)

	// ErrBadPerm indicates images that do not form a permutation of 0..n-1.
	ErrBadPerm = fmt.Errorf("%w: bad permutation", ErrInvalidArgument)

	// ErrBadSignature indicates an isomorphism signature that cannot be decoded.
	ErrBadSignature = fmt.Errorf("%w: bad isomorphism signature", ErrInvalidArgument)

	// ErrLocked indicates a change to a locked simplex or facet.
	ErrLocked = fmt.Errorf("%w: locked", ErrFailedPrecondition)
)
