/*
File    : go-graph/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the symbol table of Go-Graph: the mapping from
// variable names to numeric values that assignments write and lookups
// read. A Scope is an explicit value owned by its evaluator rather than
// process-global state, so independent evaluators (a REPL session, a plot
// sampler, a test) each get their own table.
package scope

import (
	"sort"

	"github.com/akashmaji946/go-graph/objects"
)

// Scope holds the variable bindings of one evaluation context.
//
// A Scope is not safe for concurrent use: only one evaluation may be in
// flight against a given Scope at a time. Callers wanting parallel
// evaluations create one Scope (via one Evaluator) per goroutine.
type Scope struct {
	// Variables maps variable names to their current values
	Variables map[string]objects.GraphObject
}

// NewScope creates and initializes a new empty Scope.
//
// Returns:
//   - *Scope: A scope ready for variable bindings
func NewScope() *Scope {
	return &Scope{
		Variables: make(map[string]objects.GraphObject),
	}
}

// Bind sets the value of a variable, creating or replacing the binding.
//
// Parameters:
//   - name: The variable name
//   - value: The numeric value to bind
func (s *Scope) Bind(name string, value objects.GraphObject) {
	s.Variables[name] = value
}

// LookUp retrieves the value bound to a variable.
//
// Parameters:
//   - name: The variable name to look up
//
// Returns:
//   - objects.GraphObject: The bound value (if found)
//   - bool: true when the variable is bound, false otherwise
func (s *Scope) LookUp(name string) (objects.GraphObject, bool) {
	value, ok := s.Variables[name]
	return value, ok
}

// Clear removes every binding from the scope.
func (s *Scope) Clear() {
	s.Variables = make(map[string]objects.GraphObject)
}

// Names returns the bound variable names in sorted order, for display.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.Variables))
	for name := range s.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
