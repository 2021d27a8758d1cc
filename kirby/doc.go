// Package kirby compiles Kirby diagrams into triangulations.
//
// A diagram is a PD code plus one annotation per component: an integer
// framing for a 2-handle, or a mark ("x", ".", "X") for a dotted 1-handle.
// Compile turns it into a 4-manifold triangulation (or, with
// WithDimension(3), a triangulation of its boundary 3-manifold) and reports
// the isomorphism signature:
//
//	d, _ := kirby.ParseDiagram("(1 4 2 5) (3 6 4 1) (5 2 6 3)", "-3")
//	res, err := kirby.Compile(ctx, d)
//	fmt.Println(res.Signature)
//
// Pipeline:
//
//  1. Frame: left-side R1 curls bring every 2-handle's writhe to its
//     framing; dimension 4 also guarantees each 2-handle a curl pair.
//  2. Canonicalise the PD code and classify each crossing as regular (with
//     an orientation) or one of four curl shapes.
//  3. Replace each crossing by its template graph, substitute PD labels,
//     and fuse matching stubs across crossings.
//  4. Dimension 4: add the identification colour (quadricolours, 1-handle
//     markers and highlights, doubled colour 1, remainder walks).
//  5. Glue one simplex per graph vertex along the coloured edges.
//
// Determinism: identical inputs give identical signatures. There are no
// goroutines; ctx is polled between crossings and between gluings.
//
// Logging goes to the zerolog.Logger from WithLogger (silent by default).
package kirby
