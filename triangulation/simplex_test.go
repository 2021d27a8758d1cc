// SPDX-License-Identifier: MIT

package triangulation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/kirbytri/triangulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimension(t *testing.T) {
	for _, d := range []int{1, 5, -1} {
		_, err := triangulation.New(d)
		require.ErrorIs(t, err, triangulation.ErrDimension)
		require.ErrorIs(t, err, triangulation.ErrInvalidArgument)
	}
	tri, err := triangulation.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, tri.Dimension())
	assert.Equal(t, 0, tri.Size())
	assert.True(t, tri.IsClosed())
}

func TestJoinIsSymmetric(t *testing.T) {
	_, s := newTri(t, 4, 2)
	p := perm(t, 1, 2, 0, 4, 3)

	require.NoError(t, s[0].Join(0, s[1], p))
	assert.Same(t, s[1], s[0].Adjacent(0))
	assert.Equal(t, 1, s[0].AdjacentFacet(0))
	assert.Same(t, s[0], s[1].Adjacent(1))
	assert.Equal(t, 0, s[1].AdjacentFacet(1))
	assert.Equal(t, p.Inverse(), s[1].AdjacentGluing(1))
	assert.Equal(t, -1, s[0].AdjacentFacet(2))
	assert.Nil(t, s[0].Adjacent(7))

	require.NoError(t, s[1].Unjoin(1))
	assert.Nil(t, s[0].Adjacent(0))
	assert.Nil(t, s[1].Adjacent(1))
	require.NoError(t, s[1].Unjoin(1))
}

func TestJoinErrors(t *testing.T) {
	tri, s := newTri(t, 2, 2)
	_, o := newTri(t, 2, 1)
	id := triangulation.Identity(3)

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"facet out of range", func() error { return s[0].Join(3, s[1], id) }, triangulation.ErrOutOfRange},
		{"nil simplex", func() error { return s[0].Join(0, nil, id) }, triangulation.ErrBadJoin},
		{"foreign simplex", func() error { return s[0].Join(0, o[0], id) }, triangulation.ErrBadJoin},
		{"wrong size", func() error { return s[0].Join(0, s[1], triangulation.Identity(4)) }, triangulation.ErrBadJoin},
		{"facet onto itself", func() error { return s[0].Join(1, s[0], id) }, triangulation.ErrBadJoin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.run(), tc.want)
			assert.Equal(t, 6, tri.CountBoundaryFacets())
		})
	}

	require.NoError(t, s[0].Join(0, s[1], id))
	require.ErrorIs(t, s[0].Join(0, s[1], perm(t, 1, 0, 2)), triangulation.ErrBadJoin)
	require.ErrorIs(t, s[0].Join(1, s[1], perm(t, 1, 0, 2)), triangulation.ErrBadJoin)

	// a simplex may be glued to itself along two distinct facets
	require.NoError(t, s[0].Join(1, s[0], perm(t, 0, 2, 1)))
	assert.Equal(t, 2, s[0].AdjacentFacet(1))
	assert.Equal(t, 1, s[0].AdjacentFacet(2))
}

func TestLocks(t *testing.T) {
	tri, s := newTri(t, 3, 3)
	id := triangulation.Identity(4)
	require.NoError(t, s[0].Join(0, s[1], id))

	require.NoError(t, s[0].LockFacet(0))
	assert.True(t, s[1].IsFacetLocked(0))
	require.ErrorIs(t, s[1].Unjoin(0), triangulation.ErrLocked)
	require.ErrorIs(t, tri.RemoveSimplex(s[1]), triangulation.ErrFailedPrecondition)
	require.NoError(t, s[1].UnlockFacet(0))
	assert.False(t, s[0].IsFacetLocked(0))

	require.NoError(t, s[2].LockFacet(3))
	require.ErrorIs(t, s[1].Join(3, s[2], id), triangulation.ErrLocked)
	require.NoError(t, s[2].UnlockFacet(3))

	s[2].Lock()
	assert.True(t, s[2].IsLocked())
	require.ErrorIs(t, tri.RemoveSimplex(s[2]), triangulation.ErrLocked)
	assert.Equal(t, 3, tri.Size())
	s[2].Unlock()

	require.ErrorIs(t, s[0].LockFacet(4), triangulation.ErrOutOfRange)
}

func TestRemoveSimplexReindexes(t *testing.T) {
	tri, s := newTri(t, 2, 3)
	id := triangulation.Identity(3)
	require.NoError(t, s[0].Join(0, s[1], id))
	require.NoError(t, s[1].Join(1, s[2], id))

	require.NoError(t, tri.RemoveSimplex(s[1]))
	assert.Equal(t, 2, tri.Size())
	assert.Nil(t, s[1].Triangulation())
	assert.Equal(t, 1, s[2].Index())
	assert.Nil(t, s[0].Adjacent(0))
	assert.Nil(t, s[2].Adjacent(1))

	got, err := tri.Simplex(1)
	require.NoError(t, err)
	assert.Same(t, s[2], got)
	_, err = tri.Simplex(2)
	require.ErrorIs(t, err, triangulation.ErrOutOfRange)
	require.ErrorIs(t, tri.RemoveSimplex(s[1]), triangulation.ErrBadJoin)
}

func TestComponents(t *testing.T) {
	tri, s := newTri(t, 2, 5)
	id := triangulation.Identity(3)
	require.NoError(t, s[0].Join(0, s[3], id))
	require.NoError(t, s[3].Join(1, s[1], id))
	require.NoError(t, s[2].Join(2, s[4], id))

	want := [][]int{{0, 3, 1}, {2, 4}}
	if diff := cmp.Diff(want, tri.Components()); diff != "" {
		t.Fatalf("Components mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, tri.CountComponents())
	assert.Equal(t, 15-6, tri.CountBoundaryFacets())
}
