// SPDX-License-Identifier: MIT

package kirby_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/kirbytri/kirby"
	"github.com/katalvlaran/kirbytri/link"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOf(t *testing.T) {
	cases := []struct {
		q    [4]int
		want kirby.CrossingType
	}{
		{[4]int{1, 4, 2, 5}, kirby.Regular},
		{[4]int{3, 4, 1, 1}, kirby.CurlYZZ},
		{[4]int{1, 1, 2, 3}, kirby.CurlXXZ},
		{[4]int{2, 1, 1, 2}, kirby.CurlYYW},
		{[4]int{2, 3, 4, 2}, kirby.CurlXYX},
		{[4]int{1, 1, 2, 2}, kirby.CurlYZZ},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, kirby.TypeOf(tc.q), "%v", tc.q)
	}
	assert.Equal(t, "curl-yyw", kirby.CurlYYW.String())
	assert.Equal(t, "regular", kirby.Regular.String())
	assert.False(t, kirby.Regular.IsCurl())
	assert.True(t, kirby.CurlXYX.IsCurl())
}

func TestOrientationsWalk(t *testing.T) {
	cases := []struct {
		pd   string
		want []int
	}{
		{trefoilPD, []int{-1, -1, -1}},
		{hopfPD, []int{-1, -1}},
		{curlPD, []int{-1}},
		{"(1 1 2 2)", []int{1}},
		{"(1 2 2 1)", []int{-1}},
	}
	for _, tc := range cases {
		code, err := link.ParsePD(tc.pd)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.want, kirby.Orientations(code)); diff != "" {
			t.Errorf("Orientations(%s) mismatch (-want +got):\n%s", tc.pd, diff)
		}
	}
	assert.Nil(t, kirby.Orientations(nil))
}

// TestClassifyMatchesSigns checks the walk against crossing signs on a
// framed, canonical code. The third curl splits the second one, which then
// stops being a curl.
func TestClassifyMatchesSigns(t *testing.T) {
	l := mustLink(t, trefoilPD)
	start, err := l.Component(0)
	require.NoError(t, err)
	require.NoError(t, l.R1(start, link.Left, 1))
	require.NoError(t, l.R1(start, link.Left, -1))
	require.NoError(t, l.R1(start.Next(), link.Right, 1))

	code := l.PDData()
	canon, err := link.FromPD(code)
	require.NoError(t, err)
	classes, err := kirby.Classify(code)
	require.NoError(t, err)
	require.Len(t, classes, 6)

	curls := 0
	for i, cc := range classes {
		assert.Equal(t, canon.Crossing(i).Sign(), cc.Orientation, "crossing %d", i)
		assert.Equal(t, kirby.TypeOf(code[i]), cc.Type)
		if cc.Type.IsCurl() {
			curls++
		}
	}
	assert.Equal(t, 2, curls)

	_, err = kirby.Classify(link.PDCode{{1, 1, 1, 1}})
	require.ErrorIs(t, err, link.ErrInvalidPD)
}
