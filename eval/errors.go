/*
File    : go-graph/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"errors"
	"fmt"

	"github.com/akashmaji946/go-graph/objects"
)

// Sentinel evaluation errors for the arithmetic edge cases.
var (
	// ErrDivByZero is returned for division by exact zero, integer or
	// floating. A zero divisor never yields an IEEE infinity from '/'; a
	// quotient that overflows (e.g. 1 / 5e-324) is still +Inf.
	ErrDivByZero = errors.New("division by zero")

	// ErrModByZero is returned for a zero modulus.
	ErrModByZero = errors.New("modulus by zero")

	// ErrModOnFloats is returned when '%' is applied with any
	// floating-point operand; modulus is defined only on integers.
	ErrModOnFloats = errors.New("modulus is defined only on integers")
)

// ParseError represents a syntactic error in the token stream: an
// unmatched parenthesis, a missing operand, or an unexpected token.
type ParseError struct {
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "parse error: " + e.Message
}

// UnknownVariableError is returned when a variable is read before any
// assignment bound it.
type UnknownVariableError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable '%s'", e.Name)
}

// IncompatibleTypesError is returned when a binary operation receives a
// value outside the numeric domain. With coercion preceding every binary
// operation this should be unreachable; it exists so a value-domain bug
// surfaces as an error instead of undefined behavior.
type IncompatibleTypesError struct {
	Operation string
	Left      objects.GraphType
	Right     objects.GraphType
}

// Error implements the error interface.
func (e *IncompatibleTypesError) Error() string {
	return fmt.Sprintf("incompatible types for '%s': %s and %s", e.Operation, e.Left, e.Right)
}
