// SPDX-License-Identifier: MIT

package kirby_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/kirbytri/kirby"
	"github.com/katalvlaran/kirbytri/link"
	"github.com/stretchr/testify/require"
)

const (
	trefoilPD = "(1 4 2 5) (3 6 4 1) (5 2 6 3)"
	hopfPD    = "(4 1 3 2) (2 3 1 4)"
	curlPD    = "(2 1 1 2)"

	// hopfSigPrefix is the recorded start of the "0 0" Hopf signature.
	hopfSigPrefix = "GLvAvLzALPwLAQMQQwPLQMPQQQPkcffl"
)

func mustDiagram(t *testing.T, pd, ann string) kirby.Diagram {
	t.Helper()
	d, err := kirby.ParseDiagram(pd, ann)
	require.NoError(t, err)

	return d
}

func mustLink(t *testing.T, pd string) *link.Link {
	t.Helper()
	code, err := link.ParsePD(pd)
	require.NoError(t, err)
	l, err := link.FromPD(code)
	require.NoError(t, err)

	return l
}

func mustCompiler(t *testing.T, opts ...kirby.Option) *kirby.Compiler {
	t.Helper()
	c, err := kirby.NewCompiler(opts...)
	require.NoError(t, err)

	return c
}

func compile(t *testing.T, pd, ann string, opts ...kirby.Option) *kirby.Result {
	t.Helper()
	res, err := mustCompiler(t, opts...).Compile(context.Background(), mustDiagram(t, pd, ann))
	require.NoError(t, err)

	return res
}

func writhe(t *testing.T, l *link.Link, comp int) int {
	t.Helper()
	w, err := l.WritheOfComponent(comp)
	require.NoError(t, err)

	return w
}

// interiorCount is the number of template vertices that survive fusion when
// every stub is fused: 8 per regular crossing, 4 per curl.
func interiorCount(code link.PDCode) int {
	n := 0
	for _, q := range code {
		if kirby.TypeOf(q).IsCurl() {
			n += 4
		} else {
			n += 8
		}
	}

	return n
}
