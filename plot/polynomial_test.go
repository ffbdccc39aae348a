/*
File    : go-graph/plot/polynomial_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// represents a test case for coefficient parsing
// Input: the coefficient list text
// Expected: the parsed coefficients, highest degree first
type TestCoefficients struct {
	Input    string
	Expected []float64
}

// TestParseCoefficients tests both separators and whitespace handling.
func TestParseCoefficients(t *testing.T) {

	tests := []TestCoefficients{
		{Input: `1, 0, -2`, Expected: []float64{1, 0, -2}},
		{Input: `1; 0; -2`, Expected: []float64{1, 0, -2}},
		{Input: `2.5,0.5`, Expected: []float64{2.5, 0.5}},
		{Input: ` 3 `, Expected: []float64{3}},
		{Input: `1,,2`, Expected: []float64{1, 2}},
		{Input: `1e2, -4`, Expected: []float64{100, -4}},
	}

	for _, test := range tests {
		coefficients, err := ParseCoefficients(test.Input)
		require.NoError(t, err, "input: %s", test.Input)
		assert.Equal(t, test.Expected, coefficients, "input: %s", test.Input)
	}
}

// TestParseCoefficients_Errors tests rejection of non-numeric entries and
// empty lists.
func TestParseCoefficients_Errors(t *testing.T) {
	_, err := ParseCoefficients(`1, a, 2`)
	assert.Error(t, err)

	_, err = ParseCoefficients(``)
	assert.Error(t, err)

	_, err = ParseCoefficients(`,;`)
	assert.Error(t, err)
}

// TestHorner tests polynomial evaluation, highest-degree coefficient
// first.
func TestHorner(t *testing.T) {
	// x^2 - 2 at a few points
	coefficients := []float64{1, 0, -2}
	assert.Equal(t, 2.0, Horner(coefficients, 2))
	assert.Equal(t, -2.0, Horner(coefficients, 0))
	assert.Equal(t, -1.0, Horner(coefficients, -1))

	// constant polynomial
	assert.Equal(t, 7.0, Horner([]float64{7}, 123))

	// 2x + 1
	assert.Equal(t, 9.0, Horner([]float64{2, 1}, 4))
}

// TestSamplePolynomial tests the sampled series matches the evaluator's
// series for the same curve.
func TestSamplePolynomial(t *testing.T) {
	points, err := SamplePolynomial([]float64{1, 0, 0}, -2, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{X: -2, Y: 4},
		{X: -1, Y: 1},
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 4},
	}, points)

	_, err = SamplePolynomial([]float64{1}, 0, 1, 0)
	assert.Error(t, err)

	_, err = SamplePolynomial([]float64{1}, 1, 0, 0.5)
	assert.Error(t, err)
}
