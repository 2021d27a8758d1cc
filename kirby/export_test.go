// SPDX-License-Identifier: MIT

package kirby

import (
	"github.com/katalvlaran/kirbytri/core"
	"github.com/katalvlaran/kirbytri/link"
)

// HighlightSites exposes the highlight walk of 2-handle comp for tests.
func HighlightSites(l *link.Link, ann []Annotation, comp int, pair [2]link.StrandRef) ([]core.HighlightSite, error) {
	h, err := newHandleView(l, ann)
	if err != nil {
		return nil, err
	}

	return h.highlight(comp, pair), nil
}

// MarkedPair exposes the marked crossings of 1-handle comp for tests.
func MarkedPair(l *link.Link, ann []Annotation, comp int) (left, right link.StrandRef, ok bool, err error) {
	h, err := newHandleView(l, ann)
	if err != nil {
		return left, right, false, err
	}
	left, right, ok = h.markedPair(comp)

	return left, right, ok, nil
}

// FramingSite exposes the R1 site chosen for 2-handle comp.
func FramingSite(l *link.Link, ann []Annotation, comp int) (link.StrandRef, error) {
	h, err := newHandleView(l, ann)
	if err != nil {
		return link.StrandRef{}, err
	}

	return h.framingSite(comp), nil
}

var MarkedNodes = markedNodes

var (
	AddQuadriCurls = addQuadriCurls
	RetryCurls     = retryCurls
)
