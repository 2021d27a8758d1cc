// SPDX-License-Identifier: MIT

package kirby_test

import (
	"testing"

	"github.com/katalvlaran/kirbytri/core"
	"github.com/katalvlaran/kirbytri/kirby"
	"github.com/katalvlaran/kirbytri/link"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startOf(t *testing.T, l *link.Link, comp int) link.StrandRef {
	t.Helper()
	s, err := l.Component(comp)
	require.NoError(t, err)

	return s
}

// canonical renumbers l's crossings the way Compile does before classifying.
func canonical(t *testing.T, l *link.Link) *link.Link {
	t.Helper()
	c, err := link.FromPD(l.PDData())
	require.NoError(t, err)

	return c
}

func TestWalkComponent(t *testing.T) {
	l := mustLink(t, trefoilPD)
	walk, err := kirby.WalkComponent(l, 0)
	require.NoError(t, err)
	require.Len(t, walk, 6)

	under, over := 0, 0
	for i, x := range walk {
		assert.Equal(t, x.Ref.Crossing().Index(), x.Index)
		switch x.Kind {
		case core.SiteUnder:
			under++
			assert.Equal(t, 0, x.Ref.Strand())
		case core.SiteOver:
			over++
			assert.Equal(t, 1, x.Ref.Strand())
		default:
			t.Fatalf("step %d: unexpected kind %v", i, x.Kind)
		}
		assert.Equal(t, walk[(i+1)%len(walk)].Ref, x.Ref.Next())
	}
	assert.Equal(t, 3, under)
	assert.Equal(t, 3, over)

	curl, err := kirby.WalkComponent(mustLink(t, curlPD), 0)
	require.NoError(t, err)
	require.Len(t, curl, 2)
	for _, x := range curl {
		assert.Equal(t, core.SiteCurl, x.Kind)
	}

	_, err = kirby.WalkComponent(l, 1)
	require.ErrorIs(t, err, link.ErrComponentRange)
}

func TestLinkQuadriPairs(t *testing.T) {
	l := mustLink(t, trefoilPD)
	assert.Empty(t, kirby.LinkQuadriPairs(startOf(t, l, 0)))
	assert.Empty(t, kirby.LinkQuadriPairs(link.StrandRef{}))

	// a lone curl pairs with itself from either strand
	c := mustLink(t, curlPD)
	pairs := kirby.LinkQuadriPairs(startOf(t, c, 0))
	require.Len(t, pairs, 2)
	for _, p := range pairs {
		assert.Equal(t, 0, p[0].Crossing().Index())
		assert.Equal(t, 0, p[1].Crossing().Index())
	}

	// one framing curl on the trefoil: every pair leads with it
	require.NoError(t, l.R1(startOf(t, l, 0), link.Left, 1))
	pairs = kirby.LinkQuadriPairs(startOf(t, l, 0))
	require.NotEmpty(t, pairs)
	for _, p := range pairs {
		assert.Equal(t, 3, p[0].Crossing().Index())
		assert.Equal(t, 0, p[1].Strand(), "partner of a curl is an under-crossing")
	}
}

func TestFramingSite(t *testing.T) {
	d := mustDiagram(t, hopfPD, "x 0")
	l := mustLink(t, hopfPD)

	site, err := kirby.FramingSite(l, d.Annotations, 1)
	require.NoError(t, err)
	assert.Equal(t, startOf(t, l, 1), site, "every Hopf crossing is shared")

	d = mustDiagram(t, trefoilPD, "-3")
	l = mustLink(t, trefoilPD)
	site, err = kirby.FramingSite(l, d.Annotations, 0)
	require.NoError(t, err)
	assert.Equal(t, startOf(t, l, 0), site, "no 1-handle: component start")
}

func TestMarkedPair(t *testing.T) {
	d := mustDiagram(t, hopfPD, "x 0")
	l := canonical(t, mustLink(t, hopfPD))

	left, right, ok, err := kirby.MarkedPair(l, d.Annotations, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, left, right, "the 1-handle passes under once")
	assert.Equal(t, 0, left.Strand())

	classes, err := kirby.Classify(l.PDData())
	require.NoError(t, err)
	nodes := kirby.MarkedNodes(left, right, classes)
	idx := left.Crossing().Index()
	assert.Equal(t, idx, nodes[0].Component)
	assert.Equal(t, idx, nodes[1].Component)
	if classes[idx].Orientation == 1 {
		assert.Equal(t, [2]int{7, 4}, [2]int{nodes[0].ID, nodes[1].ID})
	} else {
		assert.Equal(t, [2]int{3, 8}, [2]int{nodes[0].ID, nodes[1].ID})
	}

	c := mustLink(t, curlPD)
	_, _, ok, err = kirby.MarkedPair(c, []kirby.Annotation{{OneHandle: true}}, 0)
	require.NoError(t, err)
	assert.False(t, ok, "a lone curl has no regular under-crossing")
}

func TestHighlightSites(t *testing.T) {
	d := mustDiagram(t, hopfPD, "x 0")
	l := mustLink(t, hopfPD)
	require.NoError(t, mustCompiler(t).Frame(l, d.Annotations))

	pairs := kirby.LinkQuadriPairs(startOf(t, l, 1))
	require.NotEmpty(t, pairs)
	sites, err := kirby.HighlightSites(l, d.Annotations, 1, pairs[0])
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, core.SiteCurl, sites[0].Kind)
	assert.GreaterOrEqual(t, sites[0].Component, 2, "the site is a framing curl")

	// without a 1-handle nothing needs highlighting
	d = mustDiagram(t, hopfPD, "0 0")
	l = mustLink(t, hopfPD)
	require.NoError(t, mustCompiler(t).Frame(l, d.Annotations))
	pairs = kirby.LinkQuadriPairs(startOf(t, l, 1))
	require.NotEmpty(t, pairs)
	sites, err = kirby.HighlightSites(l, d.Annotations, 1, pairs[0])
	require.NoError(t, err)
	assert.Empty(t, sites)
}
