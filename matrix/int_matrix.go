// SPDX-License-Identifier: MIT

// Package matrix - IntMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of arbitrary-precision integers with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Allow degenerate shapes (0×n, n×0): chain complexes routinely need them.
//
// AI-Hints:
//   - Entry(i,j) is the unchecked fast path returning the live *big.Int; mutate in place in hot loops.
//   - At/Set copy values in and out, so callers never alias matrix storage by accident.
//   - FromInts builds fixtures from any integer slice type (constraints.Integer).
//
// Complexity quicksheet:
//   - NewIntMatrix: O(r*c) zero-init; At/Set: O(1) plus big.Int copy; Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/exp/constraints"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag for row extraction
	ctxCol    = "Col"    // method tag for column extraction
	ctxFromIn = "FromInts"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// intMatrixErrorf wraps an error with a uniform IntMatrix context and callsite indices.
// Implementation:
//   - Stage 1: format "IntMatrix.<method>(row,col): %w".
//
// Complexity:
//   - Time O(1), Space O(1).
func intMatrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("IntMatrix.%s(%d,%d): %w", method, row, col, err)
}

// IntMatrix is a dense row-major matrix of arbitrary-precision integers.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of len r*c; every slot holds its own *big.Int (never shared).
type IntMatrix struct {
	r, c int        // row and column counts (>= 0)
	data []*big.Int // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*IntMatrix)(nil)

// NewIntMatrix creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate one distinct zero big.Int per slot.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//
// Returns:
//   - *IntMatrix: zero-filled matrix.
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewIntMatrix(rows, cols int) (*IntMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewIntMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return newZero(rows, cols), nil
}

// newZero allocates without validation; internal callers guarantee non-negative shapes.
func newZero(rows, cols int) *IntMatrix {
	data := make([]*big.Int, rows*cols)
	for k := range data {
		data[k] = new(big.Int)
	}

	return &IntMatrix{r: rows, c: cols, data: data}
}

// Identity returns the n×n identity matrix (n == 0 yields the empty matrix).
func Identity(n int) *IntMatrix {
	if n < 0 {
		n = 0
	}
	m := newZero(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m
}

// FromInts builds an IntMatrix from row literals of any integer type.
// A single empty row yields a 1×0 matrix; no rows yield 0×0.
//
// Errors:
//   - ErrRagged if rows differ in length.
func FromInts[T constraints.Integer](rows [][]T) (*IntMatrix, error) {
	if len(rows) == 0 {
		return newZero(0, 0), nil
	}
	cols := len(rows[0])
	m := newZero(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, intMatrixErrorf(ctxFromIn, i, len(row), ErrRagged)
		}
		for j, v := range row {
			m.data[i*cols+j].SetInt64(int64(v))
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *IntMatrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *IntMatrix) Cols() int { return m.c }

// At returns a copy of entry (i,j).
//
// Errors:
//   - ErrOutOfRange for indices outside [0,r)×[0,c).
func (m *IntMatrix) At(i, j int) (*big.Int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return nil, intMatrixErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return new(big.Int).Set(m.data[i*m.c+j]), nil
}

// Set stores a copy of v at (i,j).
//
// Errors:
//   - ErrOutOfRange for bad indices, ErrNilEntry for v == nil.
func (m *IntMatrix) Set(i, j int, v *big.Int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return intMatrixErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if v == nil {
		return intMatrixErrorf(ctxSet, i, j, ErrNilEntry)
	}
	m.data[i*m.c+j].Set(v)

	return nil
}

// SetInt64 is Set for small literals.
func (m *IntMatrix) SetInt64(i, j int, v int64) error {
	return m.Set(i, j, big.NewInt(v))
}

// Entry returns the live entry (i,j) without bounds checks.
// Mutating the result mutates the matrix; indices must be in range.
func (m *IntMatrix) Entry(i, j int) *big.Int {
	return m.data[i*m.c+j]
}

// Row returns a copy of row i.
func (m *IntMatrix) Row(i int) ([]*big.Int, error) {
	if i < 0 || i >= m.r {
		return nil, intMatrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]*big.Int, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = new(big.Int).Set(m.data[i*m.c+j])
	}

	return out, nil
}

// Col returns a copy of column j.
func (m *IntMatrix) Col(j int) ([]*big.Int, error) {
	if j < 0 || j >= m.c {
		return nil, intMatrixErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]*big.Int, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = new(big.Int).Set(m.data[i*m.c+j])
	}

	return out, nil
}

// Clone returns a deep copy.
func (m *IntMatrix) Clone() *IntMatrix {
	out := &IntMatrix{r: m.r, c: m.c, data: make([]*big.Int, len(m.data))}
	for k, v := range m.data {
		out.data[k] = new(big.Int).Set(v)
	}

	return out
}

// Equal reports entry-wise equality including shape.
func (m *IntMatrix) Equal(o *IntMatrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k].Cmp(o.data[k]) != 0 {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry is zero (vacuously true for empty shapes).
func (m *IntMatrix) IsZero() bool {
	for _, v := range m.data {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is square with ones on the diagonal and zeros elsewhere.
func (m *IntMatrix) IsIdentity() bool {
	if m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if i == j {
				if !v.IsInt64() || v.Int64() != 1 {
					return false
				}
			} else if v.Sign() != 0 {
				return false
			}
		}
	}

	return true
}

// String renders rows as "[a, b]\n" lines.
func (m *IntMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
