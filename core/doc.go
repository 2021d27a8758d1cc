// Package core provides ColoredGraph, an edge-coloured graph that encodes a
// d-dimensional triangulation: every vertex is a d-simplex and a colour-c edge
// glues facet c of one simplex to facet c of another.
//
// A ColoredGraph is built from small template graphs, one per crossing of a
// link diagram:
//
//	g, _ := core.NewColoredGraph()          // d = 4, colours 0..4
//	for _, tmpl := range templates {
//	    g.DisjointUnion(tmpl)               // i-th template gets component i
//	}
//	g.PDSub(code)                           // placeholder strands → PD labels
//	g.FuseAll()                             // splice matching stubs
//	g.Cleanup()
//
// and then completed on colour d by the identification passes
// (AddQuadriEdges, AddOneHandleIdentEdges, AddHighlightEdges,
// AddDoubleOneEdges, AddRemainderEdges). GluingList turns the result into
// facet gluings for package triangulation.
//
// Vertices:
//
//	Vertex{ID, Strand, Component} is ordered lexicographically. ID is the
//	template-local simplex number, Strand is 0 for internal simplices and a
//	strand label for PD stubs, Component is the template copy.
//	EmptyVertex() = (−1, −1, −1) marks an unused colour slot.
//
// Invariants:
//
//   - At most one neighbour per colour per vertex.
//   - Adjacency is symmetric: u -c- v iff v -c- u. Every mutator keeps this;
//     CheckSymmetry verifies it.
//   - No self edges.
//
// Determinism:
//
//	Vertices, Edges, FuseList, QuadriGraphFind and GluingList iterate in
//	sorted vertex order, so equal inputs give equal outputs.
//
// Concurrency:
//
//	One sync.RWMutex guards the adjacency map. Queries take the read lock;
//	mutators take the write lock.
//
// Errors:
//
//	All argument errors wrap ErrBadArgument (ErrSelfEdge, ErrColorOutOfRange,
//	ErrEmptyEndpoint, ErrPaletteMismatch, ErrVertexNotFound, ErrBadCode,
//	ErrBadDimension). ErrAsymmetric reports a broken adjacency.
package core
