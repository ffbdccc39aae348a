/*
File    : go-graph/eval/eval_operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/go-graph/lexer"
	"github.com/akashmaji946/go-graph/objects"
)

// applyArithmetic performs one binary operation after coercing the
// operands: two Integer operands stay integers, any other combination is
// promoted to floating point first. The one exception is '^' with a
// negative integer exponent, which also promotes (repeated multiplication
// cannot express 2^-1).
//
// Parameters:
//   - op: The operator token type (+ - * / % ^)
//   - left: The left operand
//   - right: The right operand
//
// Returns:
//   - objects.GraphObject: The result, Integer or Float per the rules above
//   - error: ErrDivByZero, ErrModByZero, ErrModOnFloats, or an
//     *IncompatibleTypesError for a non-numeric operand
func applyArithmetic(op lexer.TokenType, left, right objects.GraphObject) (objects.GraphObject, error) {
	leftInt, leftIsInt := left.(*objects.Integer)
	rightInt, rightIsInt := right.(*objects.Integer)
	if leftIsInt && rightIsInt {
		return applyIntegerOp(op, leftInt.Value, rightInt.Value)
	}

	leftFloat, ok := objects.ToFloat(left)
	if !ok {
		return nil, &IncompatibleTypesError{Operation: string(op), Left: left.GetType(), Right: right.GetType()}
	}
	rightFloat, ok := objects.ToFloat(right)
	if !ok {
		return nil, &IncompatibleTypesError{Operation: string(op), Left: left.GetType(), Right: right.GetType()}
	}
	return applyFloatOp(op, leftFloat, rightFloat)
}

// applyIntegerOp computes an operation on two integers. Division
// truncates toward zero and the remainder takes the sign of the dividend
// (the native semantics of Go's / and % on integers). Exponentiation with
// a non-negative exponent is repeated multiplication; a negative exponent
// falls through to the floating-point path.
func applyIntegerOp(op lexer.TokenType, left, right int64) (objects.GraphObject, error) {
	switch op {
	case lexer.PLUS_OP:
		return &objects.Integer{Value: left + right}, nil
	case lexer.MINUS_OP:
		return &objects.Integer{Value: left - right}, nil
	case lexer.MUL_OP:
		return &objects.Integer{Value: left * right}, nil
	case lexer.DIV_OP:
		if right == 0 {
			return nil, ErrDivByZero
		}
		return &objects.Integer{Value: left / right}, nil
	case lexer.MOD_OP:
		if right == 0 {
			return nil, ErrModByZero
		}
		return &objects.Integer{Value: left % right}, nil
	case lexer.EXP_OP:
		if right < 0 {
			return &objects.Float{Value: math.Pow(float64(left), float64(right))}, nil
		}
		return &objects.Integer{Value: powInt(left, right)}, nil
	default:
		return nil, &ParseError{Message: "unknown operator '" + string(op) + "'"}
	}
}

// applyFloatOp computes an operation on two floats. Division by exact
// zero is an error rather than an IEEE infinity; subnormal divisors
// divide normally. Modulus is rejected outright.
func applyFloatOp(op lexer.TokenType, left, right float64) (objects.GraphObject, error) {
	switch op {
	case lexer.PLUS_OP:
		return &objects.Float{Value: left + right}, nil
	case lexer.MINUS_OP:
		return &objects.Float{Value: left - right}, nil
	case lexer.MUL_OP:
		return &objects.Float{Value: left * right}, nil
	case lexer.DIV_OP:
		if right == 0.0 {
			return nil, ErrDivByZero
		}
		return &objects.Float{Value: left / right}, nil
	case lexer.MOD_OP:
		return nil, ErrModOnFloats
	case lexer.EXP_OP:
		return &objects.Float{Value: math.Pow(left, right)}, nil
	default:
		return nil, &ParseError{Message: "unknown operator '" + string(op) + "'"}
	}
}

// powInt raises base to a non-negative exponent by repeated
// multiplication, staying in the integer domain.
func powInt(base, exp int64) int64 {
	var result int64 = 1
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}
