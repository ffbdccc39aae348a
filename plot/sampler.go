/*
File    : go-graph/plot/sampler.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package plot samples expressions for plotting. The sampler lexes an
// expression once and then re-evaluates the same token sequence for each
// point on an interval, rebinding the variable x between evaluations; it
// also carries the polynomial-coefficient fallback hosts use for input
// that never mentions x.
package plot

import (
	"fmt"
	"math"

	"github.com/akashmaji946/go-graph/eval"
	"github.com/akashmaji946/go-graph/lexer"
	"github.com/akashmaji946/go-graph/objects"
)

// Point is one plotted sample.
type Point struct {
	X float64
	Y float64
}

// Sampler produces (x, y) series from expressions using an evaluator it
// borrows from the host. Sampling clears and rebinds the evaluator's
// symbol table; hosts that want to keep their variables use a dedicated
// evaluator for plotting.
type Sampler struct {
	Ev *eval.Evaluator
}

// NewSampler creates a sampler over the given evaluator.
func NewSampler(ev *eval.Evaluator) *Sampler {
	return &Sampler{Ev: ev}
}

// Sample evaluates expr for each x in the inclusive progression from
// xMin upward by dx, stopping past xMax (with a dx/2 tolerance so the
// endpoint survives accumulated floating-point error). Points whose
// value comes out NaN or infinite are skipped rather than reported.
//
// An expression that never mentions x yields an empty series; callers
// can route such input to the polynomial fallback (see MentionsX and
// SamplePolynomial).
//
// Parameters:
//   - expr: The expression text, normally mentioning the variable x
//   - xMin, xMax: The sampled interval, xMax > xMin
//   - dx: The sampling step, dx > 0
//
// Returns:
//   - []Point: The sampled series in x order
//   - error: An interval error, or any lexical/evaluation error from the
//     expression (an evaluation error at any single point abandons the
//     whole series)
func (s *Sampler) Sample(expr string, xMin, xMax, dx float64) ([]Point, error) {
	if dx <= 0 {
		return nil, fmt.Errorf("sampling step must be positive, got %g", dx)
	}
	if xMax <= xMin {
		return nil, fmt.Errorf("empty sampling interval [%g, %g]", xMin, xMax)
	}

	s.Ev.ClearVariables()

	tokens, err := lexer.Lex(expr)
	if err != nil {
		return nil, err
	}
	if !MentionsX(tokens) {
		return nil, nil
	}

	var points []Point
	for x := xMin; x <= xMax+dx/2; x += dx {
		s.Ev.SetVariable("x", &objects.Float{Value: x})

		result, err := s.Ev.ParseAndEval(tokens)
		if err != nil {
			return nil, err
		}
		if len(result.Rest) > 0 {
			return nil, &eval.ParseError{
				Message: "unexpected input starting at '" + result.Rest[0].Literal + "'",
			}
		}

		y, ok := objects.ToFloat(result.Value)
		if !ok {
			return nil, fmt.Errorf("expression did not produce a number at x=%g", x)
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}

// MentionsX reports whether the token sequence reads the variable x.
// An x used purely as an assignment target does not make an expression
// plottable, but distinguishing that here is not worth it: sampling such
// an expression is harmless.
func MentionsX(tokens []lexer.Token) bool {
	for _, token := range tokens {
		if token.Type == lexer.IDENTIFIER_ID && token.Literal == "x" {
			return true
		}
	}
	return false
}
