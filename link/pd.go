// SPDX-License-Identifier: MIT

package link

import (
	"strconv"
	"strings"
)

// PDCode is a planar diagram code: one quadruple of strand labels per
// crossing, read counter-clockwise from the incoming under strand.
type PDCode [][4]int

// String renders "(a b c d) (e f g h) ...".
func (p PDCode) String() string {
	var sb strings.Builder
	for i, q := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		for j, x := range q {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(x))
		}
		sb.WriteByte(')')
	}

	return sb.String()
}

// Clone returns an independent copy.
func (p PDCode) Clone() PDCode {
	out := make(PDCode, len(p))
	copy(out, p)

	return out
}

// ParsePD reads a PD code from free-form text. Every character other than a
// digit, or a minus directly before a digit, separates integers, so
// "PD[X[1,5,2,4],X[3,1,4,6],X[5,3,6,2]]" and "(1 5 2 4) (3 1 4 6) (5 3 6 2)"
// parse alike. A code containing label 0 is taken to be zero-based (SnapPy)
// and shifted by one.
//
// Errors: ErrInvalidPD if the integer count is not a multiple of four or an
// integer overflows. Label ranges are checked by FromPD.
func ParsePD(text string) (PDCode, error) {
	var (
		vals []int
		tok  strings.Builder
	)
	flush := func() error {
		if tok.Len() == 0 {
			return nil
		}
		v, err := strconv.Atoi(tok.String())
		tok.Reset()
		if err != nil {
			return pdErrorf("%v", err)
		}
		vals = append(vals, v)

		return nil
	}

	rs := []rune(text)
	for i, r := range rs {
		switch {
		case r >= '0' && r <= '9':
			tok.WriteRune(r)
		case r == '-' && tok.Len() == 0 && i+1 < len(rs) && rs[i+1] >= '0' && rs[i+1] <= '9':
			tok.WriteRune(r)
		default:
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(vals)%4 != 0 {
		return nil, pdErrorf("%d integers is not a multiple of 4", len(vals))
	}

	zeroBased := false
	for _, v := range vals {
		zeroBased = zeroBased || v == 0
	}
	code := make(PDCode, len(vals)/4)
	for i, v := range vals {
		if zeroBased {
			v++
		}
		code[i/4][i%4] = v
	}

	return code, nil
}
