// SPDX-License-Identifier: MIT
// Package kirby: the compile pipeline.
//
// Compile(ctx, d):
//   Frame → canonicalise (FromPD(PDData())) → Classify → assemble templates →
//   PDSub → FuseAll → [dim 4: quadricolours → identification passes] → emit.
//
// A 2-handle whose quadricolour cannot be matched in the assembled graph
// gets two more pairs of like-signed curls (net writhe 0), placed one
// reference further along the component on each retry, and the pipeline
// reruns from the framed link, at most WithMaxQuadriRetries times.

package kirby

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/katalvlaran/kirbytri/core"
	"github.com/katalvlaran/kirbytri/link"
	"github.com/katalvlaran/kirbytri/triangulation"
	"lukechampine.com/blake3"
)

// Compiler turns Kirby diagrams into triangulations. A Compiler holds only
// its options and may be shared; each Compile call owns its own state.
type Compiler struct {
	opts options
}

// NewCompiler applies opts over the defaults.
// Errors: ErrBadDimension unless the dimension is 3 or 4.
func NewCompiler(opts ...Option) (*Compiler, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.dim != 3 && o.dim != 4 {
		return nil, fmt.Errorf("NewCompiler(dim=%d): %w", o.dim, ErrBadDimension)
	}

	return &Compiler{opts: o}, nil
}

// Dimension is the dimension of the triangulations produced.
func (c *Compiler) Dimension() int { return c.opts.dim }

// Result is the output of one compilation.
type Result struct {
	// Signature is the isomorphism signature; empty under WithGraphOutput.
	Signature string
	// Triangulation is nil under WithGraphOutput.
	Triangulation *triangulation.Triangulation
	// Graph is the final coloured graph; simplex i is its i-th sorted vertex.
	Graph *core.ColoredGraph
	// Gluings lists the graph's edges as simplex gluings.
	Gluings []core.Gluing
	// FramedCode is the canonical PD code after framing.
	FramedCode link.PDCode
	// Attempts counts pipeline runs, 1 unless quadricolour retries were needed.
	Attempts int
}

// Fingerprint is the BLAKE3-256 digest of Signature in hex, or "" when
// there is no signature.
func (r *Result) Fingerprint() string {
	if r == nil || r.Signature == "" {
		return ""
	}
	sum := blake3.Sum256([]byte(r.Signature))

	return hex.EncodeToString(sum[:])
}

// Compile builds the triangulation described by d.
//
// ctx is checked between crossings during assembly and between gluings
// during emission; cancellation returns ctx.Err().
//
// Errors:
//   - link.ErrInvalidPD for a malformed code.
//   - ErrAnnotationCount, ErrBadOneHandle (strict mode).
//   - ErrNoQuadricolour when retries run out.
func (c *Compiler) Compile(ctx context.Context, d Diagram) (*Result, error) {
	l, err := link.FromPD(d.Code)
	if err != nil {
		return nil, err
	}
	if err := c.Frame(l, d.Annotations); err != nil {
		return nil, err
	}

	log := c.opts.log
	extra := make([]int, len(d.Annotations))
	for attempt := 1; ; attempt++ {
		work := l.Clone()
		for comp, n := range extra {
			for k := 1; k <= n; k++ {
				if err := retryCurls(work, comp, k); err != nil {
					return nil, err
				}
			}
		}

		res, missing, err := c.build(ctx, work, d)
		if err != nil {
			return nil, err
		}
		if len(missing) == 0 {
			res.Attempts = attempt
			log.Debug().Int("attempt", attempt).Int("pentachora", res.Graph.Order()).Msg("compiled")

			return res, nil
		}
		if attempt > c.opts.maxRetries {
			return nil, fmt.Errorf("Compile: components %v after %d attempts: %w", missing, attempt, ErrNoQuadricolour)
		}
		log.Info().Int("attempt", attempt).Ints("components", missing).Msg("quadricolour missing, adding like-signed curls")
		for _, comp := range missing {
			extra[comp]++
		}
	}
}

// build runs one pass of the pipeline over a framed link. It returns the
// 2-handles without a usable quadricolour instead of a result when there are any.
func (c *Compiler) build(ctx context.Context, framed *link.Link, d Diagram) (*Result, []int, error) {
	code := framed.PDData()
	l, err := link.FromPD(code)
	if err != nil {
		return nil, nil, err
	}
	classes, err := Classify(code)
	if err != nil {
		return nil, nil, err
	}

	g, err := c.assemble(ctx, code, classes)
	if err != nil {
		return nil, nil, err
	}

	if c.opts.dim == 4 {
		missing, err := c.identify(g, l, d, classes)
		if err != nil || len(missing) > 0 {
			return nil, missing, err
		}
	} else {
		g.Cleanup()
	}

	res := &Result{Graph: g, Gluings: g.GluingList(), FramedCode: code}
	if c.opts.graphOnly {
		return res, nil, nil
	}
	tri, err := c.emit(ctx, g.Order(), res.Gluings)
	if err != nil {
		return nil, nil, err
	}
	res.Triangulation = tri
	res.Signature = tri.IsoSig()

	return res, nil, nil
}

// assemble unions one template per crossing (crossing i becomes component
// i), substitutes the PD labels and fuses matching stubs.
func (c *Compiler) assemble(ctx context.Context, code link.PDCode, classes []CrossingClass) (*core.ColoredGraph, error) {
	log := c.opts.log.With().Str("stage", "assembly").Logger()
	g, err := core.NewColoredGraph(core.WithDimension(c.opts.dim))
	if err != nil {
		return nil, err
	}
	for i, cc := range classes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := Template(cc, c.opts.dim)
		if err != nil {
			return nil, fmt.Errorf("crossing %d: %w", i, err)
		}
		if _, err := g.DisjointUnion(t); err != nil {
			return nil, err
		}
		log.Trace().Int("crossing", i).Stringer("type", cc.Type).Int("orientation", cc.Orientation).Msg("template")
	}

	if err := g.PDSub(code); err != nil {
		return nil, err
	}
	fused := g.FuseAll()
	log.Debug().Int("crossings", len(code)).Int("fused", fused).Int("vertices", g.Order()).Msg("assembled")

	return g, nil
}

// identify adds the identification colour for dimension 4. It returns the
// 2-handles whose quadricolour is missing, leaving g untouched in that case.
func (c *Compiler) identify(g *core.ColoredGraph, l *link.Link, d Diagram, classes []CrossingClass) ([]int, error) {
	log := c.opts.log.With().Str("stage", "identify").Logger()
	h, err := newHandleView(l, d.Annotations)
	if err != nil {
		return nil, err
	}

	var (
		missing []int
		quadris []core.Quadricolour
		pairs   = make(map[int][2]link.StrandRef)
	)
	for i, a := range d.Annotations {
		if a.OneHandle {
			continue
		}
		pair, q, ok := h.chooseQuadri(g, i)
		if !ok {
			missing = append(missing, i)
			continue
		}
		pairs[i] = pair
		quadris = append(quadris, q)
		log.Debug().Int("component", i).Ints("crossings", q.Components()).Msg("quadricolour")
	}
	if len(missing) > 0 {
		return missing, nil
	}

	g.Cleanup()
	if err := g.AddQuadriEdges(quadris); err != nil {
		return nil, err
	}
	if !d.HasOneHandles() {
		n := g.AddDoubleOneEdges()
		log.Debug().Int("double-one", n).Msg("identification colour added")

		return nil, nil
	}

	var marked [][2]core.Vertex
	for i, a := range d.Annotations {
		if !a.OneHandle {
			continue
		}
		left, right, ok := h.markedPair(i)
		if !ok {
			log.Debug().Int("component", i).Msg("1-handle has no regular under-crossing, no marker edge")
			continue
		}
		marked = append(marked, markedNodes(left, right, classes))
	}
	if err := g.AddOneHandleIdentEdges(marked); err != nil {
		return nil, err
	}

	var sites []core.HighlightSite
	comps := make([]int, 0, len(pairs))
	for i := range pairs {
		comps = append(comps, i)
	}
	sort.Ints(comps)
	for _, i := range comps {
		sites = append(sites, h.highlight(i, pairs[i])...)
	}
	if err := g.AddHighlightEdges(sites); err != nil {
		return nil, err
	}
	n1 := g.AddDoubleOneEdges()
	n2 := g.AddRemainderEdges()
	log.Debug().Int("marked", len(marked)).Int("highlight", len(sites)).Int("double-one", n1).Int("remainder", n2).
		Msg("identification colour added")

	return nil, nil
}

// markedNodes picks the interior template vertices a 1-handle's marked
// crossings are identified through.
func markedNodes(left, right link.StrandRef, classes []CrossingClass) [2]core.Vertex {
	li, ri := left.Crossing().Index(), right.Crossing().Index()
	lv := core.Vertex{ID: 3, Component: li}
	if classes[li].Orientation == 1 {
		lv.ID = 7
	}
	rv := core.Vertex{ID: 8, Component: ri}
	if classes[ri].Orientation == 1 {
		rv.ID = 4
	}

	return [2]core.Vertex{lv, rv}
}

// chooseQuadri finds a quadricolour for 2-handle i: candidate curl pairs
// touching a 1-handle crossing come first, then the rest, each crossing set
// tried once.
func (h *handleView) chooseQuadri(g *core.ColoredGraph, i int) ([2]link.StrandRef, core.Quadricolour, bool) {
	start, err := h.l.Component(i)
	if err != nil {
		return [2]link.StrandRef{}, core.Quadricolour{}, false
	}
	var shared, rest [][2]link.StrandRef
	for _, p := range LinkQuadriPairs(start) {
		if h.oneXing[p[0].Crossing().Index()] || h.oneXing[p[1].Crossing().Index()] {
			shared = append(shared, p)
		} else {
			rest = append(rest, p)
		}
	}

	tried := make(map[[2]int]bool)
	for _, p := range append(shared, rest...) {
		idx := pairIndices(p)
		key := [2]int{idx[0], idx[len(idx)-1]}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if tried[key] {
			continue
		}
		tried[key] = true
		if q, ok := g.QuadriOnComponents(idx); ok {
			return p, q, true
		}
	}

	return [2]link.StrandRef{}, core.Quadricolour{}, false
}

// emit builds n simplices and glues facet c of From to facet c of To by
// the identity for every gluing.
func (c *Compiler) emit(ctx context.Context, n int, gluings []core.Gluing) (*triangulation.Triangulation, error) {
	tri, err := triangulation.New(c.opts.dim)
	if err != nil {
		return nil, err
	}
	simp := tri.NewSimplices(n)
	id := triangulation.Identity(c.opts.dim + 1)
	for _, gl := range gluings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := simp[gl.From].Join(gl.Color, simp[gl.To], id); err != nil {
			return nil, fmt.Errorf("emit %d -%d- %d: %w", gl.From, gl.Color, gl.To, err)
		}
	}
	c.opts.log.Debug().Str("stage", "emit").Int("simplices", n).Int("gluings", len(gluings)).
		Int("boundary", tri.CountBoundaryFacets()).Msg("triangulation built")

	return tri, nil
}

// Compile is a shorthand for NewCompiler(opts...) followed by Compile.
func Compile(ctx context.Context, d Diagram, opts ...Option) (*Result, error) {
	c, err := NewCompiler(opts...)
	if err != nil {
		return nil, err
	}

	return c.Compile(ctx, d)
}
