// Package matrix offers exact integer matrices and the lattice algorithms
// built on them.
//
// The matrix package provides:
//
//   - IntMatrix: a dense row-major matrix of *big.Int entries with checked
//     accessors (At/Set) and an unchecked fast path (Entry).
//   - Mul, MulVec, Transpose and Determinant (Bareiss, fraction-free).
//   - SmithNormalForm returning D together with the unimodular change of
//     basis pairs (L, L⁻¹) and (R, R⁻¹) such that L·A·R = D.
//   - ColumnEchelonForm, PreImageOfLattice and TorsionAutInverse, the three
//     kernels the homology engine needs for kernels and inverses of maps.
//
// Degenerate shapes (0×n, n×0) are first-class: the chain complexes of small
// spaces produce them constantly.
//
// See package algebra for marked abelian groups built on these routines.
package matrix
