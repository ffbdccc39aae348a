/*
File    : go-graph/objects/numbers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"strconv"
)

// ParseInteger converts an integer literal (optionally signed) into an
// Integer value.
//
// Parameters:
//   - literal: The scanned text, e.g. "42" or "-10"
//
// Returns:
//   - GraphObject: The Integer value
//   - error: When the literal does not fit a 64-bit signed integer
func ParseInteger(literal string) (GraphObject, error) {
	value, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer literal '%s'", literal)
	}
	return &Integer{Value: value}, nil
}

// ParseFloat converts a fractional or scientific-notation literal
// (optionally signed) into a Float value.
//
// Parameters:
//   - literal: The scanned text, e.g. "3.14" or "2.5E-4"
//
// Returns:
//   - GraphObject: The Float value
//   - error: When the literal is not a valid floating-point number
func ParseFloat(literal string) (GraphObject, error) {
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number literal '%s'", literal)
	}
	return &Float{Value: value}, nil
}

// ToFloat extracts the numeric value of obj as a float64, promoting an
// Integer to its floating-point equivalent. This is the coercion applied
// to mixed-variant arithmetic and to function arguments.
//
// Returns:
//   - float64: The (possibly promoted) value
//   - bool: false when obj is not a numeric value; callers translate this
//     into their incompatible-types error
func ToFloat(obj GraphObject) (float64, bool) {
	switch obj := obj.(type) {
	case *Integer:
		return float64(obj.Value), true
	case *Float:
		return obj.Value, true
	default:
		return 0, false
	}
}

// Negate returns the value with its sign flipped, preserving the variant:
// an Integer stays an Integer, a Float stays a Float. A nil is returned
// for a non-numeric value.
func Negate(obj GraphObject) GraphObject {
	switch obj := obj.(type) {
	case *Integer:
		return &Integer{Value: -obj.Value}
	case *Float:
		return &Float{Value: -obj.Value}
	default:
		return nil
	}
}

// NumberToString renders a value for display: an Integer without a
// fractional part, a Float in the shortest form that round-trips through
// the lexer to the same value.
func NumberToString(obj GraphObject) string {
	return obj.ToString()
}
