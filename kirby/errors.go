// SPDX-License-Identifier: MIT
// Package kirby: sentinel error set.
//
// Input problems match ErrInvalidArgument; construction problems match
// ErrFailedPrecondition. Errors from link, core and triangulation are
// wrapped unchanged so their own sentinels still match.

package kirby

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the root of every malformed-input failure.
	ErrInvalidArgument = errors.New("kirby: invalid argument")

	// ErrFailedPrecondition is the root of failures of the construction itself.
	ErrFailedPrecondition = errors.New("kirby: failed precondition")
)

var (
	// ErrBadAnnotation: a token that is neither an integer nor a 1-handle mark.
	ErrBadAnnotation = fmt.Errorf("%w: bad annotation", ErrInvalidArgument)

	// ErrAnnotationCount: annotations and link components differ in number.
	ErrAnnotationCount = fmt.Errorf("%w: annotation count does not match components", ErrInvalidArgument)

	// ErrBadDimension: a target dimension other than 3 or 4.
	ErrBadDimension = fmt.Errorf("%w: dimension must be 3 or 4", ErrInvalidArgument)

	// ErrBadOneHandle: a 1-handle with nonzero writhe under WithStrictOneHandles.
	ErrBadOneHandle = fmt.Errorf("%w: 1-handle is not drawn as a zero-writhe unknot", ErrInvalidArgument)

	// ErrNoQuadricolour: a 2-handle still lacks a quadricolour after every retry.
	ErrNoQuadricolour = fmt.Errorf("%w: no quadricolour", ErrFailedPrecondition)

	// ErrFramingMismatch: a 2-handle's writhe differs from its framing after framing.
	ErrFramingMismatch = fmt.Errorf("%w: writhe differs from framing", ErrFailedPrecondition)
)
