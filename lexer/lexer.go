/*
File    : go-graph/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns a free-form arithmetic expression string into an
// ordered sequence of tokens. Whitespace is insignificant and removed
// before scanning. The lexer resolves the two readings of '-' (binary
// subtraction versus the sign of a value) from the previously emitted
// token, so the evaluator downstream never has to guess.
package lexer

import (
	"strings"
	"unicode"
)

// Lexer performs lexical analysis (tokenization) of one expression.
// It scans the whitespace-stripped source character by character,
// identifying operators, parentheses, number literals, variable names,
// and the reserved function/constant identifiers.
//
// Fields:
//   - Src: The expression with all whitespace removed
//   - Current: The byte at the current position being examined
//   - Position: The current index in Src (0-indexed)
//   - SrcLength: The total length of Src
//   - Prev: The type of the previously emitted token (START_TYPE at the
//     beginning); drives unary-minus disambiguation
//   - pending: Tokens queued for emission ahead of the scan position
//     (used when one source character expands to two tokens)
type Lexer struct {
	Src       string    // Whitespace-stripped expression text
	Current   byte      // Current character being examined
	Position  int       // Current position of pointer in Src
	SrcLength int       // Length of Src
	Prev      TokenType // Previously emitted token type
	pending   []Token   // Queued tokens not yet handed out
}

// NewLexer creates and initializes a new Lexer for the given expression.
// All whitespace is stripped up-front, then the scan state is positioned
// on the first remaining character.
//
// Parameters:
//   - src: The expression string to tokenize
//
// Returns:
//   - Lexer: A new lexer ready to tokenize the expression
//
// Example:
//
//	lexer := NewLexer(" 1 + 2 * x ")
func NewLexer(src string) Lexer {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)

	current := byte(0)
	if len(stripped) > 0 {
		current = stripped[0]
	}
	return Lexer{
		Src:       stripped,
		Current:   current,
		Position:  0,
		SrcLength: len(stripped),
		Prev:      START_TYPE,
	}
}

// NextToken retrieves the next token from the expression.
// This is the main entry point for token-by-token scanning.
//
// The method handles:
//   - The single-character operators + * / % ^ ( ) =
//   - The minus sign, disambiguated against the previous token
//   - Number literals (integers, fractions, scientific notation)
//   - Variable names and the reserved function/constant identifiers
//
// Returns:
//   - Token: The next token, or an EOF_TYPE token when the input is spent
//   - error: A *LexError for an unrecognised character or malformed number
func (lex *Lexer) NextToken() (Token, error) {

	// A previous scan step may have queued a token (the '-1 *' expansion
	// of a sign before an identifier). Drain the queue first.
	if len(lex.pending) > 0 {
		token := lex.pending[0]
		lex.pending = lex.pending[1:]
		return lex.emit(token), nil
	}

	switch lex.Current {
	case '+':
		return lex.emitSingle(PLUS_OP), nil
	case '*':
		return lex.emitSingle(MUL_OP), nil
	case '/':
		return lex.emitSingle(DIV_OP), nil
	case '%':
		return lex.emitSingle(MOD_OP), nil
	case '^':
		return lex.emitSingle(EXP_OP), nil
	case '(':
		return lex.emitSingle(LEFT_PAREN), nil
	case ')':
		return lex.emitSingle(RIGHT_PAREN), nil
	case '=':
		return lex.emitSingle(ASSIGN_OP), nil
	case '-':
		return lex.lexMinus()
	case 0:
		// End of input
		return NewToken(EOF_TYPE, "EOF"), nil
	default:
		if isDigitASCII(lex.Current) {
			token, err := readNumber(lex)
			if err != nil {
				return Token{}, err
			}
			return lex.emit(token), nil
		}
		if isAlphaASCII(lex.Current) {
			return lex.emit(readIdentifier(lex)), nil
		}
		return Token{}, &LexError{
			Message:  "unrecognised character '" + string(lex.Current) + "'",
			Position: lex.Position,
		}
	}
}

// lexMinus resolves a '-' from the previously emitted token and the
// character that follows:
//
//  1. After a value token (number, variable, function name or constant)
//     and before a digit, letter or another '-', it is binary
//     subtraction. A closing parenthesis is operator-class, so a '-'
//     after a group or a function call takes case 2 or 3.
//  2. Otherwise, before a letter it is a sign applied to a variable or a
//     function call: the lexer expands it to the pair -1 * so that -x
//     evaluates as (-1) * x.
//  3. Otherwise it must introduce a negative number literal: the
//     magnitude is scanned from the following character and negated.
//
// Case 3 demands a digit, so a '-' written directly before '(' is a
// lexical error; the grouped operand needs an explicit multiplier, as in
// 1 - 1*(2+3).
func (lex *Lexer) lexMinus() (Token, error) {
	next := lex.Peek()

	if !isOperatorOrStart(lex.Prev) && beginsValue(next) {
		lex.Advance()
		return lex.emit(NewToken(MINUS_OP, "-")), nil
	}

	if isAlphaASCII(next) {
		lex.Advance()
		lex.pending = append(lex.pending, NewToken(MUL_OP, "*"))
		return lex.emit(NewToken(INT_LIT, "-1")), nil
	}

	signPos := lex.Position
	lex.Advance()
	if !isDigitASCII(lex.Current) {
		return Token{}, &LexError{
			Message:  "expected a digit after '-'",
			Position: signPos,
		}
	}
	token, err := readNumber(lex)
	if err != nil {
		return Token{}, err
	}
	token.Literal = "-" + token.Literal
	return lex.emit(token), nil
}

// emit records the token as the previous token and hands it out.
func (lex *Lexer) emit(token Token) Token {
	lex.Prev = token.Type
	return token
}

// emitSingle emits a single-character token whose literal is its type,
// advancing past the character.
func (lex *Lexer) emitSingle(tokenType TokenType) Token {
	lex.Advance()
	return lex.emit(NewToken(tokenType, string(tokenType)))
}

// Peek looks ahead to the next character without consuming it.
//
// Returns:
//   - byte: The next character, or 0 if at end of input
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves the lexer to the next character in the input.
// After calling Advance, Position is incremented and Current is set to
// the new character (or 0 at the end of the input).
func (lex *Lexer) Advance() {
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// ConsumeTokens tokenizes the entire expression and returns all tokens.
// It repeatedly calls NextToken until EOF is reached. On a lexical error
// the tokens scanned so far are discarded and only the error is returned.
//
// Returns:
//   - []Token: All tokens of the expression (excluding EOF)
//   - error: The first *LexError encountered, if any
//
// Example:
//
//	lexer := NewLexer("x = 42")
//	tokens, err := lexer.ConsumeTokens()
//	// tokens contains: [IDENTIFIER_ID, ASSIGN_OP, INT_LIT]
func (lex *Lexer) ConsumeTokens() ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		token, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		if token.Type == EOF_TYPE {
			break
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// Lex tokenizes input in one shot. It is the package-level convenience
// used by hosts that do not need to hold on to the lexer state.
func Lex(input string) ([]Token, error) {
	lexer := NewLexer(input)
	return lexer.ConsumeTokens()
}
