// SPDX-License-Identifier: MIT

package triangulation

import "fmt"

// Supported dimensions.
const (
	MinDimension = 2
	MaxDimension = 4
)

// Triangulation is a set of d-simplices with some facets glued in pairs by
// affine maps given as permutations of the d+1 vertices.
//
// A Triangulation is not safe for concurrent mutation.
type Triangulation struct {
	dim       int
	simplices []*Simplex
}

// New returns an empty triangulation of dimension dim.
// Errors: ErrDimension unless MinDimension ≤ dim ≤ MaxDimension.
func New(dim int) (*Triangulation, error) {
	if dim < MinDimension || dim > MaxDimension {
		return nil, fmt.Errorf("New(%d): %w", dim, ErrDimension)
	}

	return &Triangulation{dim: dim}, nil
}

// Dimension is d.
func (t *Triangulation) Dimension() int { return t.dim }

// Size is the number of simplices.
func (t *Triangulation) Size() int { return len(t.simplices) }

// NewSimplex appends one unglued simplex and returns it.
func (t *Triangulation) NewSimplex() *Simplex {
	s := &Simplex{tri: t, index: len(t.simplices)}
	for i := range s.gluing {
		s.gluing[i] = Identity(t.dim + 1)
	}
	t.simplices = append(t.simplices, s)

	return s
}

// NewSimplices appends n unglued simplices and returns them in order.
func (t *Triangulation) NewSimplices(n int) []*Simplex {
	out := make([]*Simplex, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, t.NewSimplex())
	}

	return out
}

// Simplex returns simplex i.
// Errors: ErrOutOfRange.
func (t *Triangulation) Simplex(i int) (*Simplex, error) {
	if i < 0 || i >= len(t.simplices) {
		return nil, fmt.Errorf("Simplex(%d) of %d: %w", i, len(t.simplices), ErrOutOfRange)
	}

	return t.simplices[i], nil
}

// Simplices returns the simplices in index order. The slice is a copy.
func (t *Triangulation) Simplices() []*Simplex {
	out := make([]*Simplex, len(t.simplices))
	copy(out, t.simplices)

	return out
}

// RemoveSimplex unglues s from its neighbours and deletes it; later simplices
// shift down by one index.
//
// Errors: ErrLocked if s or one of its facets is locked; ErrBadJoin if s
// belongs to another triangulation. Nothing changes on error.
func (t *Triangulation) RemoveSimplex(s *Simplex) error {
	if s == nil || s.tri != t {
		return fmt.Errorf("RemoveSimplex: foreign simplex: %w", ErrBadJoin)
	}
	if s.locked || s.facetLocks != 0 {
		return fmt.Errorf("RemoveSimplex(%d): %w", s.index, ErrLocked)
	}

	for f := 0; f <= t.dim; f++ {
		if s.adj[f] != nil {
			s.unjoin(f)
		}
	}
	t.simplices = append(t.simplices[:s.index], t.simplices[s.index+1:]...)
	for i := s.index; i < len(t.simplices); i++ {
		t.simplices[i].index = i
	}
	s.tri = nil

	return nil
}

// CountBoundaryFacets counts facets glued to nothing.
func (t *Triangulation) CountBoundaryFacets() int {
	n := 0
	for _, s := range t.simplices {
		for f := 0; f <= t.dim; f++ {
			if s.adj[f] == nil {
				n++
			}
		}
	}

	return n
}

// IsClosed reports whether there are no boundary facets.
func (t *Triangulation) IsClosed() bool { return t.CountBoundaryFacets() == 0 }
