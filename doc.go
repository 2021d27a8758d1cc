// Package kirbytri turns Kirby diagrams into triangulations of the
// 4-manifolds they describe.
//
// A Kirby diagram is a link diagram, given as a PD code, where every
// component is either a dotted circle (a 1-handle) or a framed knot (a
// 2-handle). kirbytri replaces each crossing with a small 5-coloured graph,
// glues the pieces along the link, adds the identification colour that
// caps off the handles, and reads the result as a pentachoron
// triangulation. The output is an isomorphism signature, so two diagrams
// of combinatorially isomorphic triangulations print the same string.
//
// Packages:
//
//	matrix/         IntMatrix over math/big, Smith normal form, lattice preimages
//	algebra/        finitely generated abelian groups, chain-complex homology, maps
//	core/           ColoredGraph: fusion, quadricolours, identification passes
//	link/           oriented link diagrams, PD codes, Reidemeister I moves
//	triangulation/  simplices, gluings, components, isomorphism signatures
//	kirby/          the diagram → triangulation compiler
//
// Command:
//
//	cmd/1h-testing  print the signature of one diagram or a batch of YAML files
//
// Quick example (the Hopf link with both components 0-framed):
//
//	d, _ := kirby.ParseDiagram("(4 1 3 2) (2 3 1 4)", "0 0")
//	res, _ := kirby.Compile(ctx, d)
//	fmt.Println(res.Signature)
//
//	go install github.com/katalvlaran/kirbytri/cmd/1h-testing@latest
package kirbytri
