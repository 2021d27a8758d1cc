// SPDX-License-Identifier: MIT

// Package link models oriented link diagrams given by planar diagram (PD) codes.
//
// A Link is a set of crossings, each with a lower (strand 0) and an upper
// (strand 1) strand, threaded into components by next/prev strand references.
// It supports exactly what the Kirby compiler needs:
//
//	code, _ := link.ParsePD("(1 4 2 5) (3 6 4 1) (5 2 6 3)")
//	l, _ := link.FromPD(code)
//	w, _ := l.WritheOfComponent(0)       // -3
//	start, _ := l.Component(0)
//	_ = l.R1(start, link.Left, 1)         // writhe -2
//	l, _ = link.FromPD(l.PDData())        // canonical crossing order
//
// Conventions:
//
//   - PD quadruples list the four arcs at a crossing counter-clockwise from
//     the incoming under arc (Knot Atlas, SnapPy, Regina).
//   - A crossing is positive when its over strand leaves through position 1.
//   - WritheOfComponent counts only a component's crossings with itself.
//
// Errors:
//
//	ErrInvalidArgument is the root; ErrInvalidPD, ErrBadMove and
//	ErrComponentRange wrap it.
package link
