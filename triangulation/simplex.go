// SPDX-License-Identifier: MIT

package triangulation

import "fmt"

// Simplex is one top-dimensional simplex. Facet f is the facet opposite vertex f.
type Simplex struct {
	tri   *Triangulation
	index int

	adj    [MaxPermSize]*Simplex
	gluing [MaxPermSize]Perm

	locked     bool
	facetLocks uint8
}

// Index is the simplex's position in its triangulation.
func (s *Simplex) Index() int { return s.index }

// Triangulation returns the owner, or nil after RemoveSimplex.
func (s *Simplex) Triangulation() *Triangulation { return s.tri }

// Adjacent returns the simplex glued to facet f, or nil for a boundary facet
// or an out-of-range f.
func (s *Simplex) Adjacent(f int) *Simplex {
	if !s.facetOK(f) {
		return nil
	}

	return s.adj[f]
}

// AdjacentGluing returns the vertex map across facet f. It is only
// meaningful when Adjacent(f) is not nil.
func (s *Simplex) AdjacentGluing(f int) Perm {
	if !s.facetOK(f) {
		return Perm{}
	}

	return s.gluing[f]
}

// AdjacentFacet returns the facet of Adjacent(f) that f is glued to, or -1.
func (s *Simplex) AdjacentFacet(f int) int {
	if !s.facetOK(f) || s.adj[f] == nil {
		return -1
	}

	return s.gluing[f].Image(f)
}

func (s *Simplex) facetOK(f int) bool {
	return s.tri != nil && f >= 0 && f <= s.tri.dim
}

// Join glues facet f of s to facet gluing[f] of other, identifying vertex i
// of s with vertex gluing[i] of other.
//
// Errors:
//   - ErrOutOfRange for a bad facet.
//   - ErrBadJoin if other is nil or foreign, gluing has the wrong size, either
//     facet is already glued, or a facet would be glued to itself.
//   - ErrLocked if either facet is locked.
//
// Nothing changes on error.
func (s *Simplex) Join(f int, other *Simplex, gluing Perm) error {
	if !s.facetOK(f) {
		return fmt.Errorf("Join(%d): %w", f, ErrOutOfRange)
	}
	d := s.tri.dim
	switch {
	case other == nil || other.tri != s.tri:
		return fmt.Errorf("Join(%d): foreign or nil simplex: %w", f, ErrBadJoin)
	case gluing.Size() != d+1:
		return fmt.Errorf("Join(%d): gluing %v has size %d, want %d: %w", f, gluing, gluing.Size(), d+1, ErrBadJoin)
	}
	g := gluing.Image(f)
	switch {
	case other == s && g == f:
		return fmt.Errorf("Join(%d): facet glued to itself: %w", f, ErrBadJoin)
	case s.adj[f] != nil:
		return fmt.Errorf("Join: facet %d of simplex %d already glued: %w", f, s.index, ErrBadJoin)
	case other.adj[g] != nil:
		return fmt.Errorf("Join: facet %d of simplex %d already glued: %w", g, other.index, ErrBadJoin)
	case s.IsFacetLocked(f) || other.IsFacetLocked(g):
		return fmt.Errorf("Join(%d): %w", f, ErrLocked)
	}

	s.adj[f], s.gluing[f] = other, gluing
	other.adj[g], other.gluing[g] = s, gluing.Inverse()

	return nil
}

// Unjoin makes facet f (and its partner) boundary. Unjoining a boundary facet is a no-op.
// Errors: ErrOutOfRange; ErrLocked if the facet is locked.
func (s *Simplex) Unjoin(f int) error {
	if !s.facetOK(f) {
		return fmt.Errorf("Unjoin(%d): %w", f, ErrOutOfRange)
	}
	if s.IsFacetLocked(f) {
		return fmt.Errorf("Unjoin(%d): %w", f, ErrLocked)
	}
	if s.adj[f] != nil {
		s.unjoin(f)
	}

	return nil
}

func (s *Simplex) unjoin(f int) {
	other, g := s.adj[f], s.gluing[f].Image(f)
	other.adj[g], other.gluing[g] = nil, Identity(s.tri.dim+1)
	s.adj[f], s.gluing[f] = nil, Identity(s.tri.dim+1)
}

// Lock prevents RemoveSimplex on s.
func (s *Simplex) Lock() { s.locked = true }

// Unlock clears the simplex lock; facet locks are unaffected.
func (s *Simplex) Unlock() { s.locked = false }

// IsLocked reports the simplex lock.
func (s *Simplex) IsLocked() bool { return s.locked }

// LockFacet prevents gluing or ungluing facet f. The lock covers both sides
// of a glued facet.
func (s *Simplex) LockFacet(f int) error {
	return s.setFacetLock(f, true)
}

// UnlockFacet clears the lock on facet f and its partner.
func (s *Simplex) UnlockFacet(f int) error {
	return s.setFacetLock(f, false)
}

func (s *Simplex) setFacetLock(f int, on bool) error {
	if !s.facetOK(f) {
		return fmt.Errorf("LockFacet(%d): %w", f, ErrOutOfRange)
	}
	set := func(x *Simplex, facet int) {
		if on {
			x.facetLocks |= 1 << facet
		} else {
			x.facetLocks &^= 1 << facet
		}
	}
	set(s, f)
	if s.adj[f] != nil {
		set(s.adj[f], s.gluing[f].Image(f))
	}

	return nil
}

// IsFacetLocked reports whether facet f is locked.
func (s *Simplex) IsFacetLocked(f int) bool {
	return s.facetOK(f) && s.facetLocks&(1<<f) != 0
}
