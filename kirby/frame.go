// SPDX-License-Identifier: MIT

package kirby

import (
	"fmt"

	"github.com/katalvlaran/kirbytri/link"
)

// Frame makes every 2-handle's writhe equal to its framing by inserting
// left-side R1 curls, in place.
//
// Implementation:
//   - Stage 1: check 1-handles. A nonzero writhe is logged, or returned as
//     ErrBadOneHandle under WithStrictOneHandles.
//   - Stage 2: for each 2-handle, choose the site (a common crossing with a
//     1-handle whose successor is also common, else the component start),
//     then add curls of sign -1 while writhe > framing and +1 while
//     writhe < framing. For dimension 4, a 2-handle already at its framing
//     gets one cancelling pair (+1, then -1).
//   - Stage 3 (dimension 4): a 2-handle still without a curl pair able to
//     carry a quadricolour gets one more cancelling pair (-1, then +1) at its
//     start, and if that still gives no pair, the curls of addQuadriCurls.
//
// Sites are chosen before any curl is added; new crossings are appended, so
// the chosen references stay valid.
//
// Errors: ErrAnnotationCount, ErrBadOneHandle, link errors from R1.
func (c *Compiler) Frame(l *link.Link, ann []Annotation) error {
	if len(ann) != l.CountComponents() {
		return fmt.Errorf("Frame: %d annotations for %d components: %w", len(ann), l.CountComponents(), ErrAnnotationCount)
	}
	h, err := newHandleView(l, ann)
	if err != nil {
		return err
	}
	log := c.opts.log.With().Str("stage", "framing").Logger()

	sites := make([]link.StrandRef, len(ann))
	for i, a := range ann {
		w, err := l.WritheOfComponent(i)
		if err != nil {
			return err
		}
		if a.OneHandle {
			if w != 0 {
				if c.opts.strictOneHdl {
					return fmt.Errorf("Frame: component %d has writhe %d: %w", i, w, ErrBadOneHandle)
				}
				log.Warn().Int("component", i).Int("writhe", w).Msg("1-handle is not a zero-writhe unknot")
			}
			continue
		}
		sites[i] = h.framingSite(i)
	}

	for i, a := range ann {
		if a.OneHandle {
			continue
		}
		w, _ := l.WritheOfComponent(i)
		log.Debug().Int("component", i).Int("writhe", w).Int("framing", a.Framing).Msg("self-framing")
		var curls []int
		switch {
		case w > a.Framing:
			for ; w > a.Framing; w-- {
				curls = append(curls, -1)
			}
		case w < a.Framing:
			for ; w < a.Framing; w++ {
				curls = append(curls, 1)
			}
		case c.opts.dim == 4:
			curls = []int{1, -1}
		}
		for _, sign := range curls {
			if err := l.R1(sites[i], link.Left, sign); err != nil {
				return err
			}
		}
	}

	if c.opts.dim != 4 {
		return c.checkFraming(l, ann)
	}
	for i, a := range ann {
		if a.OneHandle {
			continue
		}
		start, _ := l.Component(i)
		if len(LinkQuadriPairs(start)) > 0 {
			continue
		}
		log.Debug().Int("component", i).Msg("no quadricolour pair, adding cancelling curls")
		if err := addCancellingPair(l, i); err != nil {
			return err
		}
		start, _ = l.Component(i)
		if len(LinkQuadriPairs(start)) > 0 {
			continue
		}
		log.Debug().Int("component", i).Msg("cancelling curls give no pair, adding like-signed curls")
		if err := addQuadriCurls(l, start, 1); err != nil {
			return err
		}
	}

	return c.checkFraming(l, ann)
}

// addCancellingPair inserts a -1 and then a +1 curl at component i's start.
func addCancellingPair(l *link.Link, i int) error {
	start, err := l.Component(i)
	if err != nil {
		return err
	}
	if err := l.R1(start, link.Left, -1); err != nil {
		return err
	}

	return l.R1(start, link.Left, 1)
}

// addQuadriCurls inserts four left curls after site that leave the writhe
// unchanged. Along the walk they read lead, lead, -lead, -lead, so each sign
// forms an adjacent like-signed pair entering on the same strand level.
func addQuadriCurls(l *link.Link, site link.StrandRef, lead int) error {
	for _, sign := range [...]int{-lead, -lead, lead, lead} {
		if err := l.R1(site, link.Left, sign); err != nil {
			return err
		}
	}

	return nil
}

// retryCurls applies the k-th quadricolour retry to component i: the curls
// of addQuadriCurls at the component's (k-1)-th reference, leading with +1
// on odd k and -1 on even k, so successive retries differ in site and order.
func retryCurls(l *link.Link, i, k int) error {
	refs, err := l.ComponentRefs(i)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return fmt.Errorf("retry on component %d: no crossings: %w", i, ErrNoQuadricolour)
	}
	lead := 1
	if k%2 == 0 {
		lead = -1
	}

	return addQuadriCurls(l, refs[(k-1)%len(refs)], lead)
}

func (c *Compiler) checkFraming(l *link.Link, ann []Annotation) error {
	for i, a := range ann {
		if a.OneHandle {
			continue
		}
		if w, _ := l.WritheOfComponent(i); w != a.Framing {
			return fmt.Errorf("Frame: component %d has writhe %d, framing %d: %w", i, w, a.Framing, ErrFramingMismatch)
		}
	}

	return nil
}
