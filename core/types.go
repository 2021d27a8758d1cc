// File: types.go
// Role: Declares Vertex, Edge, Gluing, Quadricolour, the highlight site
// types, GraphOption, sentinel errors, and the NewColoredGraph constructor.
//
// Errors:
//
//	ErrBadArgument      - root of every caller mistake below.
//	ErrSelfEdge         - AddEdge(u, u, c).
//	ErrColorOutOfRange  - colour outside 0..d.
//	ErrEmptyEndpoint    - an endpoint equal to EmptyVertex().
//	ErrPaletteMismatch  - DisjointUnion of graphs with different dimensions.
//	ErrVertexNotFound   - Fuse of a vertex that is not in the graph.
//	ErrBadCode          - PDSub with a component index outside the code.
//	ErrAsymmetric       - CheckSymmetry found u→v without v→u.

package core

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// ErrBadArgument is the root of all argument errors in this package.
var ErrBadArgument = errors.New("core: bad argument")

// Sentinel errors for colored graph operations.
var (
	// ErrSelfEdge indicates an edge from a vertex to itself.
	ErrSelfEdge = fmt.Errorf("%w: self edge", ErrBadArgument)

	// ErrColorOutOfRange indicates a colour outside 0..Dimension().
	ErrColorOutOfRange = fmt.Errorf("%w: colour out of range", ErrBadArgument)

	// ErrEmptyEndpoint indicates the empty sentinel vertex used as an endpoint.
	ErrEmptyEndpoint = fmt.Errorf("%w: empty endpoint", ErrBadArgument)

	// ErrPaletteMismatch indicates graphs of different dimensions were combined.
	ErrPaletteMismatch = fmt.Errorf("%w: palette mismatch", ErrBadArgument)

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found", ErrBadArgument)

	// ErrBadCode indicates a PD code too short for the graph's components.
	ErrBadCode = fmt.Errorf("%w: component outside PD code", ErrBadArgument)

	// ErrBadDimension indicates WithDimension outside 2..MaxDimension.
	ErrBadDimension = fmt.Errorf("%w: dimension out of range", ErrBadArgument)

	// ErrAsymmetric indicates a one-sided adjacency slot.
	ErrAsymmetric = errors.New("core: asymmetric adjacency")
)

const (
	// MaxDimension is the largest supported simplex dimension (pentachora).
	MaxDimension = 4

	// DefaultDimension is used when no WithDimension option is given.
	DefaultDimension = 4

	maxColors = MaxDimension + 1
)

// Vertex identifies a simplex by its template-local ID, a strand label and the
// component (template copy) it belongs to.
//
// Strand is 0 for internal vertices, 1..4 for unsubstituted PD placeholders,
// and the PD strand label after PDSub.
type Vertex struct {
	ID        int
	Strand    int
	Component int
}

// EmptyVertex is the "no neighbour" sentinel (−1, −1, −1).
func EmptyVertex() Vertex { return Vertex{ID: -1, Strand: -1, Component: -1} }

// IsEmpty reports whether v is the sentinel.
func (v Vertex) IsEmpty() bool { return v == EmptyVertex() }

// Compare orders vertices lexicographically by (ID, Strand, Component).
func (v Vertex) Compare(o Vertex) int {
	switch {
	case v.ID != o.ID:
		return cmpInt(v.ID, o.ID)
	case v.Strand != o.Strand:
		return cmpInt(v.Strand, o.Strand)
	default:
		return cmpInt(v.Component, o.Component)
	}
}

// Less is Compare(o) < 0.
func (v Vertex) Less(o Vertex) bool { return v.Compare(o) < 0 }

// String renders "(id, strand, component)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.ID, v.Strand, v.Component)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// Edge is a colour-c adjacency between U and V, listed with U < V.
type Edge struct {
	U, V  Vertex
	Color int
}

// Gluing joins simplex From to simplex To across facet Color (identity permutation).
// From and To are positions in the sorted vertex list.
type Gluing struct {
	From, To, Color int
}

// Quadricolour is a 4-cycle q0 -0- q1 -1- q2 -2- q3 -3- q0.
type Quadricolour [4]Vertex

// Components returns the distinct components of the cycle, ascending.
func (q Quadricolour) Components() []int {
	out := make([]int, 0, len(q))
	for _, v := range q {
		out = append(out, v.Component)
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// IsEmpty reports whether q is the zero quadricolour (no cycle).
func (q Quadricolour) IsEmpty() bool {
	return q == Quadricolour{}
}

// SiteKind tells AddHighlightEdges which vertex pairs of a crossing to join.
type SiteKind int

const (
	// SiteUnder is a non-curl crossing traversed on its under strand.
	SiteUnder SiteKind = iota
	// SiteOver is a non-curl crossing traversed on its over strand.
	SiteOver
	// SiteCurl is a curl crossing.
	SiteCurl
)

// String names the site kind.
func (k SiteKind) String() string {
	switch k {
	case SiteUnder:
		return "under"
	case SiteOver:
		return "over"
	case SiteCurl:
		return "curl"
	}

	return "unknown"
}

// HighlightSite is one crossing (graph component) on a highlighted arc.
type HighlightSite struct {
	Component int
	Kind      SiteKind
}

// slots holds one neighbour per colour; unused colours hold EmptyVertex().
type slots [maxColors]Vertex

func emptySlots() *slots {
	var s slots
	for i := range s {
		s[i] = EmptyVertex()
	}

	return &s
}

// GraphOption configures a ColoredGraph before creation.
type GraphOption func(g *ColoredGraph)

// WithDimension sets the simplex dimension d; the graph then has colours 0..d.
// Values outside 2..MaxDimension make NewColoredGraph fail.
func WithDimension(d int) GraphOption {
	return func(g *ColoredGraph) { g.dim = d }
}

// ColoredGraph is a (d+1)-edge-coloured graph with at most one neighbour per
// colour at each vertex.
//
// mu guards adj and nextComponent. nextComponent mints DisjointUnion IDs, so
// the i-th union receives component i.
type ColoredGraph struct {
	mu sync.RWMutex

	dim           int
	adj           map[Vertex]*slots
	nextComponent int
}

// NewColoredGraph creates an empty graph (dimension 4 unless overridden).
// Complexity: O(1).
func NewColoredGraph(opts ...GraphOption) (*ColoredGraph, error) {
	g := &ColoredGraph{dim: DefaultDimension, adj: make(map[Vertex]*slots)}
	for _, opt := range opts {
		opt(g)
	}
	if g.dim < 2 || g.dim > MaxDimension {
		return nil, fmt.Errorf("NewColoredGraph(%d): %w", g.dim, ErrBadDimension)
	}

	return g, nil
}
