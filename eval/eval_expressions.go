/*
File    : go-graph/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-graph/lexer"
	"github.com/akashmaji946/go-graph/objects"
)

// cursor is a read-only walk over a token slice. The descent only ever
// moves it forward; the underlying tokens are never written.
type cursor struct {
	tokens []lexer.Token
	pos    int
}

// peek returns the token at the cursor without consuming it, or an EOF
// token when the input is spent.
func (c *cursor) peek() lexer.Token {
	if c.pos >= len(c.tokens) {
		return lexer.NewToken(lexer.EOF_TYPE, "EOF")
	}
	return c.tokens[c.pos]
}

// next consumes and returns the token at the cursor, or an EOF token when
// the input is spent.
func (c *cursor) next() lexer.Token {
	token := c.peek()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return token
}

// The descent has one method per precedence level, lowest binding first:
//
//	evalAssignment  variable '=' expression
//	evalExpression  + -            (left-associative)
//	evalTerm        * / %          (left-associative)
//	evalIndex       ^              (left-associative)
//	evalFactor      literals, constants, function calls, variables,
//	                parenthesised groups, unary minus
//
// Every level returns (value, target): target is the pending assignment
// name a bare variable directly before '=' propagates upward, with a
// placeholder value of Integer(0) flowing in its place. The placeholder
// never reaches arithmetic, because the token after such a variable is
// always '=' and no operator loop matches it.

// evalAssignment evaluates a full expression, then, when the expression
// was a bare variable and an '=' follows, evaluates the right-hand side
// and binds the variable. The value of an assignment is the bound value.
func (e *Evaluator) evalAssignment(cur *cursor) (objects.GraphObject, string, error) {
	value, target, err := e.evalExpression(cur)
	if err != nil {
		return nil, "", err
	}

	if target != "" && cur.peek().Type == lexer.ASSIGN_OP {
		cur.next() // consume '='
		rhs, _, err := e.evalExpression(cur)
		if err != nil {
			return nil, "", err
		}
		e.Scp.Bind(target, rhs)
		return rhs, target, nil
	}

	return value, target, nil
}

// evalExpression handles the additive level: term { (+|-) term }.
func (e *Evaluator) evalExpression(cur *cursor) (objects.GraphObject, string, error) {
	left, target, err := e.evalTerm(cur)
	if err != nil {
		return nil, "", err
	}

	for {
		switch cur.peek().Type {
		case lexer.PLUS_OP, lexer.MINUS_OP:
			op := cur.next().Type
			right, _, err := e.evalTerm(cur)
			if err != nil {
				return nil, "", err
			}
			left, err = applyArithmetic(op, left, right)
			if err != nil {
				return nil, "", err
			}
			target = ""
		default:
			return left, target, nil
		}
	}
}

// evalTerm handles the multiplicative level: index { (*|/|%) index }.
func (e *Evaluator) evalTerm(cur *cursor) (objects.GraphObject, string, error) {
	left, target, err := e.evalIndex(cur)
	if err != nil {
		return nil, "", err
	}

	for {
		switch cur.peek().Type {
		case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
			op := cur.next().Type
			right, _, err := e.evalIndex(cur)
			if err != nil {
				return nil, "", err
			}
			left, err = applyArithmetic(op, left, right)
			if err != nil {
				return nil, "", err
			}
			target = ""
		default:
			return left, target, nil
		}
	}
}

// evalIndex handles exponentiation: factor { ^ factor }.
// The loop makes '^' left-associative, so 2^3^2 is (2^3)^2 = 64.
func (e *Evaluator) evalIndex(cur *cursor) (objects.GraphObject, string, error) {
	left, target, err := e.evalFactor(cur)
	if err != nil {
		return nil, "", err
	}

	for cur.peek().Type == lexer.EXP_OP {
		cur.next()
		right, _, err := e.evalFactor(cur)
		if err != nil {
			return nil, "", err
		}
		left, err = applyArithmetic(lexer.EXP_OP, left, right)
		if err != nil {
			return nil, "", err
		}
		target = ""
	}

	return left, target, nil
}

// evalFactor handles the operands themselves: number literals, the
// irrational constants, function calls, variables, parenthesised groups,
// and a leading minus that reached the parser unattached (the lexer folds
// most signs into the number literal or the -1 * expansion already).
func (e *Evaluator) evalFactor(cur *cursor) (objects.GraphObject, string, error) {
	token := cur.next()

	switch token.Type {
	case lexer.MINUS_OP:
		value, _, err := e.evalFactor(cur)
		if err != nil {
			return nil, "", err
		}
		return objects.Negate(value), "", nil

	case lexer.INT_LIT:
		value, err := objects.ParseInteger(token.Literal)
		if err != nil {
			return nil, "", &ParseError{Message: err.Error()}
		}
		return value, "", nil

	case lexer.FLOAT_LIT:
		value, err := objects.ParseFloat(token.Literal)
		if err != nil {
			return nil, "", &ParseError{Message: err.Error()}
		}
		return value, "", nil

	case lexer.CONSTANT_KEY:
		return constantValue(token.Literal)

	case lexer.FUNCTION_KEY:
		return e.evalFunctionCall(cur, token.Literal)

	case lexer.IDENTIFIER_ID:
		if cur.peek().Type == lexer.ASSIGN_OP {
			// The name is an assignment target: propagate it upward with
			// a placeholder value. evalAssignment consumes the '='.
			return &objects.Integer{Value: 0}, token.Literal, nil
		}
		value, ok := e.Scp.LookUp(token.Literal)
		if !ok {
			return nil, "", &UnknownVariableError{Name: token.Literal}
		}
		return value, "", nil

	case lexer.LEFT_PAREN:
		value, _, err := e.evalExpression(cur)
		if err != nil {
			return nil, "", err
		}
		if cur.next().Type != lexer.RIGHT_PAREN {
			return nil, "", &ParseError{Message: "missing ')'"}
		}
		return value, "", nil

	case lexer.EOF_TYPE:
		return nil, "", &ParseError{Message: "missing operand"}

	default:
		return nil, "", &ParseError{Message: "unexpected token '" + token.Literal + "'"}
	}
}

// evalFunctionCall evaluates 'name ( expression )' for a built-in unary
// function whose name token was already consumed.
func (e *Evaluator) evalFunctionCall(cur *cursor, name string) (objects.GraphObject, string, error) {
	if cur.next().Type != lexer.LEFT_PAREN {
		return nil, "", &ParseError{Message: "missing '(' after function '" + name + "'"}
	}
	arg, _, err := e.evalExpression(cur)
	if err != nil {
		return nil, "", err
	}
	if cur.next().Type != lexer.RIGHT_PAREN {
		return nil, "", &ParseError{Message: "missing ')' after argument of '" + name + "'"}
	}
	value, err := applyFunction(name, arg)
	if err != nil {
		return nil, "", err
	}
	return value, "", nil
}
