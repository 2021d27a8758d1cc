// SPDX-License-Identifier: MIT
// Package kirby: functional options for NewCompiler.
//
// Options are applied in order over the defaults:
//   dimension 4, 2 quadricolour retries, lenient 1-handles, zerolog.Nop().

package kirby

import "github.com/rs/zerolog"

// Defaults.
const (
	DefaultDimension        = 4
	DefaultMaxQuadriRetries = 2
)

// Option customises a Compiler.
type Option func(*options)

type options struct {
	log          zerolog.Logger
	dim          int
	maxRetries   int
	strictOneHdl bool
	graphOnly    bool
}

func defaultOptions() options {
	return options{
		log:        zerolog.Nop(),
		dim:        DefaultDimension,
		maxRetries: DefaultMaxQuadriRetries,
	}
}

// WithLogger routes stage events to l. The default discards them.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithDimension selects the output: 4 for the 4-manifold, 3 for the
// 3-manifold boundary. Other values make NewCompiler fail with ErrBadDimension.
func WithDimension(d int) Option {
	return func(o *options) { o.dim = d }
}

// WithMaxQuadriRetries bounds how many pipeline reruns, each adding curls to
// the 2-handles that lack a quadricolour, Compile may make. Negative means 0.
func WithMaxQuadriRetries(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxRetries = n
	}
}

// WithStrictOneHandles turns the nonzero-writhe 1-handle warning into ErrBadOneHandle.
func WithStrictOneHandles(strict bool) Option {
	return func(o *options) { o.strictOneHdl = strict }
}

// WithGraphOutput stops after the coloured graph: Result carries the graph
// and its gluing list but no triangulation or signature.
func WithGraphOutput(on bool) Option {
	return func(o *options) { o.graphOnly = on }
}
