// SPDX-License-Identifier: MIT

package kirby

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/kirbytri/link"
)

// Annotation describes one link component: a 1-handle (dotted circle) or a
// 2-handle attached with the given framing.
type Annotation struct {
	OneHandle bool
	Framing   int
}

// String renders a as it is parsed: "x" for a 1-handle, else the framing.
func (a Annotation) String() string {
	if a.OneHandle {
		return "x"
	}

	return strconv.Itoa(a.Framing)
}

// ParseAnnotations reads one whitespace-separated token per component.
// Integer tokens (optionally signed) are 2-handle framings; a token starting
// with anything other than a digit or a sign ("x", ".", "X", ...) marks a
// 1-handle.
//
// Errors: ErrBadAnnotation for tokens like "3x" or a bare "-".
func ParseAnnotations(text string) ([]Annotation, error) {
	var out []Annotation
	for _, tok := range strings.Fields(text) {
		c := tok[0]
		if c != '-' && c != '+' && (c < '0' || c > '9') {
			out = append(out, Annotation{OneHandle: true})
			continue
		}
		f, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("ParseAnnotations: token %q: %w", tok, ErrBadAnnotation)
		}
		out = append(out, Annotation{Framing: f})
	}

	return out, nil
}

// Diagram is a Kirby diagram: a PD code plus one annotation per component,
// in the component order of link.FromPD.
type Diagram struct {
	Code        link.PDCode
	Annotations []Annotation
}

// ParseDiagram parses a PD code and its annotation string.
//
// Errors: link.ErrInvalidPD, ErrBadAnnotation.
func ParseDiagram(pd, annotations string) (Diagram, error) {
	code, err := link.ParsePD(pd)
	if err != nil {
		return Diagram{}, err
	}
	ann, err := ParseAnnotations(annotations)
	if err != nil {
		return Diagram{}, err
	}

	return Diagram{Code: code, Annotations: ann}, nil
}

// String renders the diagram as `<pd> | <annotations>`.
func (d Diagram) String() string {
	parts := make([]string, len(d.Annotations))
	for i, a := range d.Annotations {
		parts[i] = a.String()
	}

	return d.Code.String() + " | " + strings.Join(parts, " ")
}

// HasOneHandles reports whether any component is a 1-handle.
func (d Diagram) HasOneHandles() bool {
	for _, a := range d.Annotations {
		if a.OneHandle {
			return true
		}
	}

	return false
}
