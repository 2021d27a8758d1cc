package link_test

import (
	"testing"

	"github.com/katalvlaran/kirbytri/link"
	"github.com/stretchr/testify/require"
)

const (
	trefoilPD = "(1 4 2 5) (3 6 4 1) (5 2 6 3)"
	hopfPD    = "(4 1 3 2) (2 3 1 4)"
	curlPD    = "(2 1 1 2)"
)

func mustLink(t *testing.T, text string) *link.Link {
	t.Helper()
	code, err := link.ParsePD(text)
	require.NoError(t, err)
	l, err := link.FromPD(code)
	require.NoError(t, err)

	return l
}

func writhe(t *testing.T, l *link.Link, comp int) int {
	t.Helper()
	w, err := l.WritheOfComponent(comp)
	require.NoError(t, err)

	return w
}

func start(t *testing.T, l *link.Link, comp int) link.StrandRef {
	t.Helper()
	s, err := l.Component(comp)
	require.NoError(t, err)

	return s
}
