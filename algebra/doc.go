// Package algebra computes homology groups of integer chain complexes and the
// maps between them, keeping enough change-of-basis data to move between
// chain-level cycles and invariant-factor coordinates.
//
// The algebra package provides:
//
//   - AbelianGroup: an isomorphism type Z^r ⊕ Z_{d₁} ⊕ … ⊕ Z_{dₖ}, 1 < d₁ | … | dₖ.
//   - MarkedAbelianGroup: ker(M)/img(N), optionally with Z_p coefficients, with
//     FreeRep/TorsionRep/CCRep lifting SNF coordinates to cycles and SNFRep going
//     back down.
//   - HomMarkedAbelianGroup: a chain map between two marked groups, with its
//     reduced matrix, kernel, cokernel, image, composition and inverse.
//
// SNF coordinates list the k torsion coordinates first, each reduced into
// [0, dᵢ), followed by the free coordinates.
//
// Errors match ErrInvalidArgument via errors.Is; nothing panics on user input.
//
// Example:
//
//	m, _ := matrix.FromInts([][]int{{0}})
//	n, _ := matrix.FromInts([][]int{{2}})
//	g, _ := algebra.NewMarkedAbelianGroup(m, n)
//	fmt.Println(g) // Z_2
package algebra
