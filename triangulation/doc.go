// SPDX-License-Identifier: MIT

// Package triangulation stores d-dimensional triangulations (2 ≤ d ≤ 4) as
// simplices glued facet to facet by vertex permutations.
//
// Facet f of a simplex is the facet opposite vertex f. Join(f, other, p)
// identifies vertex i of the simplex with vertex p[i] of other, so facet f
// is glued to facet p[f], and the reverse gluing is p⁻¹.
//
// IsoSig encodes a triangulation as a short string that is equal for two
// triangulations exactly when they are combinatorially isomorphic;
// FromIsoSig decodes it:
//
//	t, _ := triangulation.New(4)
//	a, b := t.NewSimplex(), t.NewSimplex()
//	_ = a.Join(0, b, triangulation.Identity(5))
//	sig := t.IsoSig()
//	u, _ := triangulation.FromIsoSig(4, sig) // u.IsoSig() == sig
//
// Determinism: every query, including IsoSig, is a pure function of the
// gluing data. A Triangulation is not safe for concurrent mutation.
//
// Errors:
//
//	ErrInvalidArgument is the root of ErrDimension, ErrOutOfRange,
//	ErrBadJoin, ErrBadPerm and ErrBadSignature.
//	ErrFailedPrecondition is the root of ErrLocked.
package triangulation
