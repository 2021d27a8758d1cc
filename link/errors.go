// SPDX-License-Identifier: MIT

package link

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of all argument errors in this package.
var ErrInvalidArgument = errors.New("link: invalid argument")

var (
	// ErrInvalidPD indicates a malformed planar diagram code: a token count
	// that is not a multiple of four, a label outside 1..2n, a label not used
	// exactly twice, or an under strand that does not run from position 0
	// to position 2.
	ErrInvalidPD = fmt.Errorf("%w: invalid PD code", ErrInvalidArgument)

	// ErrBadMove indicates an R1 request with a bad side or sign, a foreign
	// strand reference, or a null reference when no unknotted component exists.
	ErrBadMove = fmt.Errorf("%w: bad Reidemeister move", ErrInvalidArgument)

	// ErrComponentRange indicates a component index outside 0..CountComponents()-1.
	ErrComponentRange = fmt.Errorf("%w: component out of range", ErrInvalidArgument)
)

func pdErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPD, fmt.Sprintf(format, args...))
}
