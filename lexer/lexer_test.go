/*
File    : go-graph/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: expression text
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests plain scanning of operators, numbers,
// identifiers and reserved names.
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 1 + 2 * 3 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "1"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(MUL_OP, "*"),
				NewToken(INT_LIT, "3"),
			},
		},
		{
			Input: `(10 / 3) % 2 ^ 4`,
			ExpectedTokens: []Token{
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "10"),
				NewToken(DIV_OP, "/"),
				NewToken(INT_LIT, "3"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(MOD_OP, "%"),
				NewToken(INT_LIT, "2"),
				NewToken(EXP_OP, "^"),
				NewToken(INT_LIT, "4"),
			},
		},
		{
			Input: `answer = 3.14 + radius1`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "answer"),
				NewToken(ASSIGN_OP, "="),
				NewToken(FLOAT_LIT, "3.14"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENTIFIER_ID, "radius1"),
			},
		},
		{
			Input: `sin(x) + COS(y) * pi`,
			ExpectedTokens: []Token{
				NewToken(FUNCTION_KEY, "sin"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(PLUS_OP, "+"),
				NewToken(FUNCTION_KEY, "cos"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(MUL_OP, "*"),
				NewToken(CONSTANT_KEY, "pi"),
			},
		},
		{
			Input: `log(100) / ln(1) - sqrt(4) + tan(0)`,
			ExpectedTokens: []Token{
				NewToken(FUNCTION_KEY, "log"),
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "100"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(DIV_OP, "/"),
				NewToken(FUNCTION_KEY, "ln"),
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "1"),
				NewToken(RIGHT_PAREN, ")"),
				// ')' is operator-class, so the '-' before a letter
				// expands to -1 * instead of subtracting
				NewToken(INT_LIT, "-1"),
				NewToken(MUL_OP, "*"),
				NewToken(FUNCTION_KEY, "sqrt"),
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "4"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(PLUS_OP, "+"),
				NewToken(FUNCTION_KEY, "tan"),
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "0"),
				NewToken(RIGHT_PAREN, ")"),
			},
		},
	}

	for _, test := range tests {
		tokens, err := Lex(test.Input)
		assert.NoError(t, err, "input: %s", test.Input)
		assert.Equal(t, test.ExpectedTokens, tokens, "input: %s", test.Input)
	}
}

// TestLexer_Numbers tests the classification of number literals:
// integers, fractions, and scientific notation.
func TestLexer_Numbers(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: `42`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "42"),
			},
		},
		{
			Input: `3.14`,
			ExpectedTokens: []Token{
				NewToken(FLOAT_LIT, "3.14"),
			},
		},
		{
			Input: `3.`,
			ExpectedTokens: []Token{
				NewToken(FLOAT_LIT, "3."),
			},
		},
		{
			Input: `1e3`,
			ExpectedTokens: []Token{
				NewToken(FLOAT_LIT, "1e3"),
			},
		},
		{
			Input: `2.5E-4`,
			ExpectedTokens: []Token{
				NewToken(FLOAT_LIT, "2.5E-4"),
			},
		},
		{
			Input: `7e+2 + 1`,
			ExpectedTokens: []Token{
				NewToken(FLOAT_LIT, "7e+2"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "1"),
			},
		},
	}

	for _, test := range tests {
		tokens, err := Lex(test.Input)
		assert.NoError(t, err, "input: %s", test.Input)
		assert.Equal(t, test.ExpectedTokens, tokens, "input: %s", test.Input)
	}
}

// TestLexer_UnaryMinus tests the disambiguation of '-':
// binary subtraction after a value, the -1 * expansion before a letter,
// and the folding of the sign into a number literal otherwise.
func TestLexer_UnaryMinus(t *testing.T) {

	tests := []TestConsumeToken{
		{
			// leading sign folds into the literal
			Input: `-5`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "-5"),
			},
		},
		{
			// after a value it is subtraction
			Input: `2 - 1`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "2"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "1"),
			},
		},
		{
			// after an operator it signs the following number
			Input: `2 * -3`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "2"),
				NewToken(MUL_OP, "*"),
				NewToken(INT_LIT, "-3"),
			},
		},
		{
			// before a variable it expands to -1 *
			Input: `-x`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "-1"),
				NewToken(MUL_OP, "*"),
				NewToken(IDENTIFIER_ID, "x"),
			},
		},
		{
			// before a function call it expands to -1 * as well
			Input: `-sin(0)`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "-1"),
				NewToken(MUL_OP, "*"),
				NewToken(FUNCTION_KEY, "sin"),
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "0"),
				NewToken(RIGHT_PAREN, ")"),
			},
		},
		{
			// subtraction of a negative number
			Input: `2 - -3`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "2"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "-3"),
			},
		},
		{
			// a sign directly inside a group
			Input: `(-3)`,
			ExpectedTokens: []Token{
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "-3"),
				NewToken(RIGHT_PAREN, ")"),
			},
		},
		{
			// a sign on an assignment's right-hand side
			Input: `x = -2.5`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(FLOAT_LIT, "-2.5"),
			},
		},
		{
			// a closing parenthesis counts as operator-class, so the
			// minus signs the following number instead of subtracting
			Input: `(1 + 2) - 3`,
			ExpectedTokens: []Token{
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "1"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(INT_LIT, "-3"),
			},
		},
	}

	for _, test := range tests {
		tokens, err := Lex(test.Input)
		assert.NoError(t, err, "input: %s", test.Input)
		assert.Equal(t, test.ExpectedTokens, tokens, "input: %s", test.Input)
	}
}

// represents a test case for lexical errors
// Input: expression text
// Reason: why the input must be rejected
type TestLexFailure struct {
	Input  string
	Reason string
}

// TestLexer_Errors tests the inputs the lexer must reject.
func TestLexer_Errors(t *testing.T) {

	tests := []TestLexFailure{
		{Input: `2e`, Reason: "exponent with no digits"},
		{Input: `2e+`, Reason: "signed exponent with no digits"},
		{Input: `2ex`, Reason: "exponent followed by a letter"},
		{Input: `1.2.3`, Reason: "second dot cannot start a token"},
		{Input: `$1`, Reason: "unrecognised character"},
		{Input: `1 & 2`, Reason: "unrecognised character"},
		{Input: `5-`, Reason: "sign with nothing after it"},
		// the operand after a sign must start a number or identifier,
		// so a group needs an explicit multiplier: 1 - 1*(2+3)
		{Input: `1-(2+3)`, Reason: "sign directly before a group"},
	}

	for _, test := range tests {
		tokens, err := Lex(test.Input)
		assert.Error(t, err, "input %s: %s", test.Input, test.Reason)
		assert.Nil(t, tokens, "a failed lex discards partial tokens")

		var lexErr *LexError
		assert.ErrorAs(t, err, &lexErr, "input: %s", test.Input)
	}
}

// TestLexer_CaseInsensitiveReserved tests that reserved identifiers match
// in any case and carry their lowercased name, while variable names keep
// their spelling.
func TestLexer_CaseInsensitiveReserved(t *testing.T) {
	tokens, err := Lex(`SIN(Pi) + Radius`)
	assert.NoError(t, err)
	assert.Equal(t, []Token{
		NewToken(FUNCTION_KEY, "sin"),
		NewToken(LEFT_PAREN, "("),
		NewToken(CONSTANT_KEY, "pi"),
		NewToken(RIGHT_PAREN, ")"),
		NewToken(PLUS_OP, "+"),
		NewToken(IDENTIFIER_ID, "Radius"),
	}, tokens)
}
