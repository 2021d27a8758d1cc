// SPDX-License-Identifier: MIT

package kirby_test

import (
	"testing"

	"github.com/katalvlaran/kirbytri/core"
	"github.com/katalvlaran/kirbytri/kirby"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateShapes(t *testing.T) {
	cases := []struct {
		cc       kirby.CrossingClass
		order    int
		interior int
		strands  map[int]int // stub ID → placeholder strand
	}{
		{kirby.CrossingClass{Type: kirby.Regular, Orientation: 1}, 24, 8, map[int]int{9: 1, 16: 2, 17: 3, 24: 4}},
		{kirby.CrossingClass{Type: kirby.Regular, Orientation: -1}, 24, 8, map[int]int{12: 1, 13: 2, 20: 3, 21: 4}},
		{kirby.CrossingClass{Type: kirby.CurlYZZ}, 12, 4, map[int]int{5: 1, 12: 2}},
		{kirby.CrossingClass{Type: kirby.CurlXXZ}, 12, 4, map[int]int{5: 4, 12: 3}},
		{kirby.CrossingClass{Type: kirby.CurlYYW}, 12, 4, map[int]int{5: 1, 12: 4}},
		{kirby.CrossingClass{Type: kirby.CurlXYX}, 12, 4, map[int]int{5: 2, 12: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.cc.Type.String(), func(t *testing.T) {
			g, err := kirby.Template(tc.cc, 4)
			require.NoError(t, err)
			require.NoError(t, g.CheckSymmetry())
			assert.Equal(t, tc.order, g.Order())
			assert.Equal(t, tc.order, g.EdgeCount())

			// interior vertices carry all four base colours, stubs exactly one
			for _, v := range g.Vertices() {
				nb, err := g.Neighbors(v)
				require.NoError(t, err)
				n := 0
				for c := 0; c < 4; c++ {
					if !nb[c].IsEmpty() {
						n++
					}
				}
				assert.True(t, nb[4].IsEmpty())
				if v.ID <= tc.interior {
					assert.Equal(t, 0, v.Strand, "%v", v)
					assert.Equal(t, 4, n, "%v", v)
				} else {
					assert.Equal(t, 1, n, "%v", v)
				}
			}
			for id, strand := range tc.strands {
				assert.True(t, g.HasVertex(core.Vertex{ID: id, Strand: strand}), "stub %d", id)
			}
		})
	}
}

func TestTemplateErrors(t *testing.T) {
	_, err := kirby.Template(kirby.CrossingClass{Type: kirby.Regular}, 4)
	require.ErrorIs(t, err, kirby.ErrInvalidArgument)
	_, err = kirby.Template(kirby.CrossingClass{Type: kirby.CrossingType(9)}, 4)
	require.ErrorIs(t, err, kirby.ErrInvalidArgument)
	_, err = kirby.Template(kirby.CrossingClass{Type: kirby.CurlYZZ}, 2)
	require.ErrorIs(t, err, core.ErrBadArgument)

	g, err := kirby.Template(kirby.CrossingClass{Type: kirby.CurlYZZ}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Dimension())
}
