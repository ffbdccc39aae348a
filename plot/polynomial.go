/*
File    : go-graph/plot/polynomial.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package plot

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCoefficients parses a comma- or semicolon-separated list of
// polynomial coefficients, highest degree first. This is the host-side
// fallback for plot input that does not mention x: "1, 0, -2" stands for
// x^2 - 2.
//
// Parameters:
//   - input: The coefficient list text
//
// Returns:
//   - []float64: The coefficients, highest degree first
//   - error: When the list is empty or any entry is not a number
func ParseCoefficients(input string) ([]float64, error) {
	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ';'
	})

	coefficients := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient '%s'", part)
		}
		coefficients = append(coefficients, value)
	}
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("no coefficients in '%s'", input)
	}
	return coefficients, nil
}

// Horner evaluates a polynomial at x by Horner's method:
// ((a0*x + a1)*x + a2)*x + ... + an, with a0 the highest-degree
// coefficient. The loop does one multiply and one add per coefficient,
// n+1 of each for degree n (the first on a zero accumulator).
func Horner(coefficients []float64, x float64) float64 {
	accumulator := 0.0
	for _, coefficient := range coefficients {
		accumulator = accumulator*x + coefficient
	}
	return accumulator
}

// SamplePolynomial samples the polynomial over the inclusive progression
// from xMin upward by dx, the same interval contract as Sampler.Sample.
//
// Parameters:
//   - coefficients: Highest degree first, as from ParseCoefficients
//   - xMin, xMax: The sampled interval, xMax > xMin
//   - dx: The sampling step, dx > 0
//
// Returns:
//   - []Point: The sampled series in x order
//   - error: An interval error
func SamplePolynomial(coefficients []float64, xMin, xMax, dx float64) ([]Point, error) {
	if dx <= 0 {
		return nil, fmt.Errorf("sampling step must be positive, got %g", dx)
	}
	if xMax <= xMin {
		return nil, fmt.Errorf("empty sampling interval [%g, %g]", xMin, xMax)
	}

	var points []Point
	for x := xMin; x <= xMax+dx/2; x += dx {
		points = append(points, Point{X: x, Y: Horner(coefficients, x)})
	}
	return points, nil
}
