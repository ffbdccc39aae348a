/*
File    : go-graph/eval/eval_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/go-graph/objects"
)

// functions maps the reserved function names to their implementations.
// Every function takes and returns a float64: the argument is coerced to
// floating point before the call and the result is always a Float. The
// trigonometric functions take their argument in radians. IEEE domain
// results (tan near pi/2, sqrt of a negative, log of zero) are returned
// as-is, NaN or infinity, never as an error.
var functions = map[string]func(float64) float64{
	"sin":  math.Sin,   // sine of the radian argument
	"cos":  math.Cos,   // cosine of the radian argument
	"tan":  math.Tan,   // tangent of the radian argument
	"log":  math.Log10, // decimal logarithm
	"ln":   math.Log,   // natural logarithm
	"sqrt": math.Sqrt,  // square root
}

// constants maps the reserved constant names to their values.
var constants = map[string]float64{
	"pi": math.Pi,
}

// applyFunction applies a built-in unary function to an evaluated
// argument.
//
// Parameters:
//   - name: The lowercased function name (sin, cos, tan, log, ln, sqrt)
//   - arg: The evaluated argument
//
// Returns:
//   - objects.GraphObject: Always a Float
//   - error: An *IncompatibleTypesError for a non-numeric argument
func applyFunction(name string, arg objects.GraphObject) (objects.GraphObject, error) {
	fn, ok := functions[name]
	if !ok {
		return nil, &ParseError{Message: "unknown function '" + name + "'"}
	}
	value, numeric := objects.ToFloat(arg)
	if !numeric {
		return nil, &IncompatibleTypesError{Operation: name, Left: arg.GetType(), Right: objects.FloatType}
	}
	return &objects.Float{Value: fn(value)}, nil
}

// constantValue resolves a reserved constant name to its Float value.
func constantValue(name string) (objects.GraphObject, string, error) {
	value, ok := constants[name]
	if !ok {
		return nil, "", &ParseError{Message: "unknown constant '" + name + "'"}
	}
	return &objects.Float{Value: value}, "", nil
}
