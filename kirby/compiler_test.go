// SPDX-License-Identifier: MIT

package kirby_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/kirbytri/kirby"
	"github.com/katalvlaran/kirbytri/link"
	"github.com/katalvlaran/kirbytri/triangulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewCompiler(t *testing.T) {
	c := mustCompiler(t)
	assert.Equal(t, kirby.DefaultDimension, c.Dimension())
	assert.Equal(t, 3, mustCompiler(t, kirby.WithDimension(3)).Dimension())

	for _, dim := range []int{0, 2, 5} {
		_, err := kirby.NewCompiler(kirby.WithDimension(dim))
		require.ErrorIs(t, err, kirby.ErrBadDimension)
		require.ErrorIs(t, err, kirby.ErrInvalidArgument)
	}
}

func TestCompileScenarios(t *testing.T) {
	cases := []struct {
		name, pd, ann string
		closed        bool
	}{
		{"hopf 0 0", hopfPD, "0 0", true},
		{"trefoil -3", trefoilPD, "-3", true},
		{"unknot 1-handle", curlPD, "x", false},
		{"hopf x 0", hopfPD, "x 0", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := compile(t, tc.pd, tc.ann)
			require.NotEmpty(t, res.Signature)
			require.NotNil(t, res.Triangulation)
			require.NoError(t, res.Graph.CheckSymmetry())

			n := res.Graph.Order()
			assert.Equal(t, n, res.Triangulation.Size())
			assert.Equal(t, 4, res.Triangulation.Dimension())
			assert.GreaterOrEqual(t, res.Attempts, 1)
			if tc.closed {
				assert.Equal(t, interiorCount(res.FramedCode), n)
			}

			back, err := triangulation.FromIsoSig(4, res.Signature)
			require.NoError(t, err)
			assert.Equal(t, n, back.Size())
			assert.Equal(t, res.Signature, back.IsoSig())

			fp := res.Fingerprint()
			assert.Len(t, fp, 64)

			again := compile(t, tc.pd, tc.ann)
			assert.Equal(t, res.Signature, again.Signature, "compilation is deterministic")
			assert.Equal(t, fp, again.Fingerprint())
			if diff := cmp.Diff(res.Gluings, again.Gluings); diff != "" {
				t.Errorf("gluings differ (-first +second):\n%s", diff)
			}
		})
	}
}

// TestCompileHopfSignature pins the recorded leading characters of the
// 0-framed Hopf link's signature: 32 pentachora, then its facet actions.
func TestCompileHopfSignature(t *testing.T) {
	res := compile(t, hopfPD, "0 0")
	assert.True(t, strings.HasPrefix(res.Signature, hopfSigPrefix), "signature %q", res.Signature)
	assert.Equal(t, 32, res.Triangulation.Size())
	assert.Equal(t, 1, res.Attempts)
}

// TestCompileZeroFramedUnknot covers S²×D²: a cancelling pair alone cannot
// carry a quadricolour on a curl-only component.
func TestCompileZeroFramedUnknot(t *testing.T) {
	for _, pd := range []string{curlPD, "(1 2 2 1)"} {
		t.Run(pd, func(t *testing.T) {
			res := compile(t, pd, "0")
			require.NotEmpty(t, res.Signature)
			assert.LessOrEqual(t, res.Attempts, 1+kirby.DefaultMaxQuadriRetries)
			assert.Equal(t, interiorCount(res.FramedCode), res.Graph.Order())
			assert.True(t, res.Graph.IsClosed())

			framed, err := link.FromPD(res.FramedCode)
			require.NoError(t, err)
			assert.Equal(t, 0, writhe(t, framed, 0))

			back, err := triangulation.FromIsoSig(4, res.Signature)
			require.NoError(t, err)
			assert.Equal(t, res.Signature, back.IsoSig())
		})
	}
}

func TestCompileDistinguishesHandles(t *testing.T) {
	one := compile(t, curlPD, "x")
	two := compile(t, curlPD, "0")
	assert.NotEqual(t, one.Signature, two.Signature)
	assert.NotEqual(t, one.Fingerprint(), two.Fingerprint())
}

func TestCompileGraphOutput(t *testing.T) {
	res := compile(t, trefoilPD, "-3", kirby.WithGraphOutput(true))
	assert.Empty(t, res.Signature)
	assert.Empty(t, res.Fingerprint())
	assert.Nil(t, res.Triangulation)
	require.NotNil(t, res.Graph)
	if diff := cmp.Diff(res.Graph.GluingList(), res.Gluings); diff != "" {
		t.Errorf("gluings (-graph +result):\n%s", diff)
	}

	full := compile(t, trefoilPD, "-3")
	assert.Equal(t, full.Graph.Order(), res.Graph.Order())
}

func TestCompileDimension3(t *testing.T) {
	res := compile(t, trefoilPD, "-3", kirby.WithDimension(3))
	assert.Equal(t, 24, res.Triangulation.Size())
	assert.Equal(t, 3, res.Triangulation.Dimension())
	assert.True(t, res.Triangulation.IsClosed())
	assert.True(t, res.Graph.IsClosed())
	assert.Equal(t, 1, res.Attempts)

	back, err := triangulation.FromIsoSig(3, res.Signature)
	require.NoError(t, err)
	assert.Equal(t, 24, back.Size())
}

func TestCompileErrors(t *testing.T) {
	ctx := context.Background()
	c := mustCompiler(t)

	_, err := c.Compile(ctx, kirby.Diagram{Code: link.PDCode{{1, 1, 1, 1}}, Annotations: []kirby.Annotation{{}}})
	require.ErrorIs(t, err, link.ErrInvalidPD)

	_, err = c.Compile(ctx, mustDiagram(t, hopfPD, "0"))
	require.ErrorIs(t, err, kirby.ErrAnnotationCount)

	_, err = kirby.Compile(ctx, mustDiagram(t, curlPD, "x"), kirby.WithStrictOneHandles(true))
	require.ErrorIs(t, err, kirby.ErrBadOneHandle)

	_, err = kirby.Compile(ctx, mustDiagram(t, curlPD, "0"), kirby.WithDimension(7))
	require.ErrorIs(t, err, kirby.ErrBadDimension)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = c.Compile(cancelled, mustDiagram(t, trefoilPD, "-3"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFingerprintNil(t *testing.T) {
	var r *kirby.Result
	assert.Empty(t, r.Fingerprint())
}
