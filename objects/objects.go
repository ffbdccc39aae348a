/*
File    : go-graph/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the numeric value domain of Go-Graph.
// Every evaluation result is either an Integer or a Float; both implement
// the GraphObject interface, which allows for type checking, string
// representation, and object inspection. Arithmetic that mixes the two
// variants promotes both sides to Float before operating.
package objects

import (
	"fmt"
	"strconv"
)

// GraphType represents the type of a Go-Graph value as a string constant.
// These constants are used to identify the variant of a value, enabling
// type checking and the integer/float promotion rule.
type GraphType string

const (
	// IntegerType represents 64-bit signed integer values
	IntegerType GraphType = "int"
	// FloatType represents IEEE-754 double precision values
	FloatType GraphType = "float"
)

// GraphObject is the core interface that all Go-Graph values implement.
// It provides methods for type identification, string representation for
// display, and object inspection for debugging purposes.
type GraphObject interface {
	// GetType returns the GraphType of the value, used for type checking
	GetType() GraphType
	// ToString returns a human-readable string representation of the value
	ToString() string
	// ToObject returns a detailed string representation including type
	// information, useful for debugging and object inspection
	ToObject() string
}

// Integer represents a 64-bit signed integer value.
type Integer struct {
	Value int64 // The underlying integer value
}

// GetType returns the type of the Integer object
func (i *Integer) GetType() GraphType {
	return IntegerType
}

// ToString returns the decimal representation of the integer (e.g. "42")
func (i *Integer) ToString() string {
	return fmt.Sprintf("%d", i.Value)
}

// ToObject returns a detailed representation including type info (e.g. "<int(42)>")
func (i *Integer) ToObject() string {
	return fmt.Sprintf("<int(%d)>", i.Value)
}

// Float represents an IEEE-754 double precision value.
type Float struct {
	Value float64 // The underlying floating-point value
}

// GetType returns the type of the Float object
func (f *Float) GetType() GraphType {
	return FloatType
}

// ToString returns the shortest decimal representation that parses back to
// the same value (e.g. "3.14", "3.3333333333333335", "1e+21").
func (f *Float) ToString() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// ToObject returns a detailed representation including type info (e.g. "<float(3.14)>")
func (f *Float) ToObject() string {
	return fmt.Sprintf("<float(%s)>", f.ToString())
}
