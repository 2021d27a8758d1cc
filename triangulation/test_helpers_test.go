// SPDX-License-Identifier: MIT

package triangulation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kirbytri/triangulation"
	"github.com/stretchr/testify/require"
)

func newTri(t *testing.T, dim, n int) (*triangulation.Triangulation, []*triangulation.Simplex) {
	t.Helper()
	tri, err := triangulation.New(dim)
	require.NoError(t, err)

	return tri, tri.NewSimplices(n)
}

func perm(t *testing.T, images ...int) triangulation.Perm {
	t.Helper()
	p, err := triangulation.FromImages(images...)
	require.NoError(t, err)

	return p
}

// randomTri glues facets of n simplices at random, leaving some boundary.
func randomTri(t *testing.T, dim, n int, seed int64) *triangulation.Triangulation {
	t.Helper()
	tri, simp := newTri(t, dim, n)
	rng := rand.New(rand.NewSource(seed))
	perms := triangulation.AllPerms(dim + 1)
	for k := 0; k < n*dim; k++ {
		a, b := simp[rng.Intn(n)], simp[rng.Intn(n)]
		f, p := rng.Intn(dim+1), perms[rng.Intn(len(perms))]
		if a.Adjacent(f) != nil || b.Adjacent(p.Image(f)) != nil || (a == b && p.Image(f) == f) {
			continue
		}
		require.NoError(t, a.Join(f, b, p))
	}

	return tri
}
