package core_test

import (
	"testing"

	"github.com/katalvlaran/kirbytri/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVertexOrdering checks the (ID, Strand, Component) lexicographic order.
func TestVertexOrdering(t *testing.T) {
	cases := []struct {
		a, b core.Vertex
		want int
	}{
		{vx(1, 5, 9), vx(2, 0, 0), -1},
		{vx(3, 1, 9), vx(3, 2, 0), -1},
		{vx(3, 2, 1), vx(3, 2, 0), 1},
		{vx(4, 4, 4), vx(4, 4, 4), 0},
		{core.EmptyVertex(), vx(0, 0, 0), -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.a.Compare(tc.b), "%v vs %v", tc.a, tc.b)
		assert.Equal(t, tc.want < 0, tc.a.Less(tc.b))
	}
	assert.True(t, core.EmptyVertex().IsEmpty())
	assert.False(t, vx(0, 0, 0).IsEmpty())
	assert.Equal(t, "(7, 0, 3)", iv(7, 3).String())
}

// TestQuadricolourComponents returns the distinct components ascending.
func TestQuadricolourComponents(t *testing.T) {
	q := core.Quadricolour{iv(1, 2), iv(2, 0), iv(3, 2), iv(4, 1)}
	assert.Equal(t, []int{0, 1, 2}, q.Components())
	assert.Equal(t, []int{5}, core.Quadricolour{iv(1, 5), iv(2, 5), iv(3, 5), iv(4, 5)}.Components())
	assert.False(t, q.IsEmpty())
	assert.True(t, core.Quadricolour{}.IsEmpty())
}

// TestNewColoredGraphDimension covers the dimension option and its bounds.
func TestNewColoredGraphDimension(t *testing.T) {
	g := newGraph(t)
	assert.Equal(t, core.DefaultDimension, g.Dimension())

	g3 := newGraph(t, core.WithDimension(3))
	assert.Equal(t, 3, g3.Dimension())

	for _, d := range []int{1, 5} {
		_, err := core.NewColoredGraph(core.WithDimension(d))
		require.ErrorIs(t, err, core.ErrBadDimension)
		require.ErrorIs(t, err, core.ErrBadArgument)
	}
}

// TestSiteKindString names every kind.
func TestSiteKindString(t *testing.T) {
	assert.Equal(t, "under", core.SiteUnder.String())
	assert.Equal(t, "over", core.SiteOver.String())
	assert.Equal(t, "curl", core.SiteCurl.String())
	assert.Equal(t, "unknown", core.SiteKind(9).String())
}
