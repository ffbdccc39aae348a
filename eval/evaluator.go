/*
File    : go-graph/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the parser-evaluator of Go-Graph: a recursive
// descent engine that consumes a token sequence and produces a numeric
// value in a single pass, with no intermediate syntax tree. Operator
// precedence follows BIDMAS with left-associative exponentiation, mixed
// integer/float operands are promoted to float, variables resolve against
// the evaluator's own symbol table, and assignment is an expression whose
// value is the bound value.
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/go-graph/lexer"
	"github.com/akashmaji946/go-graph/objects"
	"github.com/akashmaji946/go-graph/scope"
)

// Evaluator holds the state for evaluating Go-Graph expressions: the
// symbol table and the output writer hosts may hand to it. Each Evaluator
// owns its Scope, so two evaluators never observe each other's variables.
//
// An Evaluator is not safe for concurrent use; run one evaluation at a
// time per instance.
type Evaluator struct {
	Scp    *scope.Scope // Symbol table for variable bindings
	Writer io.Writer    // Output writer for hosts (default: os.Stdout)
}

// NewEvaluator creates and initializes a new Evaluator with an empty
// symbol table.
//
// Returns:
//   - *Evaluator: A fully initialized evaluator ready to evaluate
//     expressions
//
// Example usage:
//
//	ev := NewEvaluator()
//	value, err := ev.EvaluateString("1 + 2 * 3")
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Scp:    scope.NewScope(),
		Writer: os.Stdout,
	}
}

// SetWriter configures the output destination handed to hosts.
// This is useful for testing (capturing output in a buffer) and for the
// TCP server (writing to the connection).
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Result is the outcome of one ParseAndEval call.
//
// Fields:
//   - Value: The computed value; for an assignment, the bound value
//   - Rest: The residual tokens the descent did not consume. A host that
//     expects a complete expression treats a non-empty Rest as a parse
//     error.
//   - Target: The variable name an assignment bound, or "" when the
//     expression was not an assignment
type Result struct {
	Value  objects.GraphObject
	Rest   []lexer.Token
	Target string
}

// ParseAndEval parses and evaluates one expression from the token
// sequence. The tokens are read only, never mutated, so the same slice
// can be evaluated repeatedly under different variable bindings (the
// plot sampler relies on this).
//
// Parameters:
//   - tokens: The token sequence produced by the lexer
//
// Returns:
//   - Result: Value, residual tokens and assignment target
//   - error: A *ParseError, *UnknownVariableError, *IncompatibleTypesError,
//     or one of the arithmetic sentinels (ErrDivByZero, ErrModByZero,
//     ErrModOnFloats)
func (e *Evaluator) ParseAndEval(tokens []lexer.Token) (Result, error) {
	cur := &cursor{tokens: tokens}
	value, target, err := e.evalAssignment(cur)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Value:  value,
		Rest:   tokens[cur.pos:],
		Target: target,
	}, nil
}

// EvaluateString lexes and evaluates a complete expression string.
// Residual input after the expression is a parse error.
//
// Parameters:
//   - input: The expression text
//
// Returns:
//   - objects.GraphObject: The computed value
//   - error: Any lexical or evaluation error
func (e *Evaluator) EvaluateString(input string) (objects.GraphObject, error) {
	tokens, err := lexer.Lex(input)
	if err != nil {
		return nil, err
	}
	result, err := e.ParseAndEval(tokens)
	if err != nil {
		return nil, err
	}
	if len(result.Rest) > 0 {
		return nil, &ParseError{
			Message: "unexpected input starting at '" + result.Rest[0].Literal + "'",
		}
	}
	return result.Value, nil
}

// EvaluateWithX evaluates an expression with the variable x bound to the
// given value, returning the result as a float64. This is the one-shot
// entry point for hosts that probe a curve at a single point.
//
// Parameters:
//   - input: The expression text, normally mentioning x
//   - x: The value to bind to x
//
// Returns:
//   - float64: The computed value, promoted to floating point
//   - error: Any lexical or evaluation error
func (e *Evaluator) EvaluateWithX(input string, x float64) (float64, error) {
	e.SetVariable("x", &objects.Float{Value: x})
	value, err := e.EvaluateString(input)
	if err != nil {
		return 0, err
	}
	result, ok := objects.ToFloat(value)
	if !ok {
		return 0, &IncompatibleTypesError{Operation: "evaluate", Left: value.GetType(), Right: objects.FloatType}
	}
	return result, nil
}

// SetVariable binds a variable in the evaluator's symbol table.
func (e *Evaluator) SetVariable(name string, value objects.GraphObject) {
	e.Scp.Bind(name, value)
}

// ClearVariables removes every binding from the evaluator's symbol table.
func (e *Evaluator) ClearVariables() {
	e.Scp.Clear()
}
