/*
File    : go-graph/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "strings"

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlphaASCII reports whether c is an ASCII letter. Identifiers are
// restricted to [A-Za-z][A-Za-z0-9]*, so the byte-range check is exact.
func isAlphaASCII(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isAlphanumericASCII reports whether c is an ASCII letter or digit.
func isAlphanumericASCII(c byte) bool {
	return isAlphaASCII(c) || isDigitASCII(c)
}

// beginsValue reports whether c can start a value after a minus sign:
// a digit, a letter, or another sign.
func beginsValue(c byte) bool {
	return isDigitASCII(c) || isAlphaASCII(c) || c == '-'
}

// readNumber reads and tokenizes a numeric literal from the input.
// It supports integers, decimal fractions and scientific notation.
//
// Supported formats:
//   - Integers: 0, 10, 123
//   - Fractions: 10.5, 0.123, 3.
//   - Scientific notation: 1e3, 1.4e9, 2.5E-4
//
// Once an 'e' or 'E' follows the digits, the exponent is committed: an
// optional sign and at least one digit must follow, else the literal is
// malformed.
//
// Parameters:
//   - lex: Pointer to the lexer instance, positioned on a digit
//
// Returns:
//   - Token: An INT_LIT or FLOAT_LIT token carrying the scanned text
//   - error: A *LexError for a malformed exponent
//
// Example:
//
//	Input: "123.45"
//	Returns: Token{Type: FLOAT_LIT, Literal: "123.45"}
func readNumber(lex *Lexer) (Token, error) {
	start := lex.Position
	src := lex.Src
	n := lex.SrcLength

	i := start + 1 // already know src[start] is a digit
	hasDot := false
	hasExp := false

	for i < n {
		c := src[i]
		if isDigitASCII(c) {
			i++
			continue
		}

		if c == '.' {
			if hasDot || hasExp {
				break
			}
			hasDot = true
			i++
			continue
		}

		if c == 'e' || c == 'E' {
			j := i + 1
			if j < n && (src[j] == '+' || src[j] == '-') {
				j++
			}
			if j >= n || !isDigitASCII(src[j]) {
				return Token{}, &LexError{
					Message:  "malformed number: exponent has no digits",
					Position: i,
				}
			}
			hasExp = true
			i = j + 1
			for i < n && isDigitASCII(src[i]) {
				i++
			}
			continue
		}

		break
	}

	lex.Position = i
	if i >= n {
		lex.Current = 0
		lex.Position = n
	} else {
		lex.Current = src[i]
	}

	tokenType := INT_LIT
	if hasDot || hasExp {
		tokenType = FLOAT_LIT
	}
	return NewToken(tokenType, src[start:i]), nil
}

// readIdentifier reads and tokenizes an identifier from the input.
// An identifier is a letter followed by the maximal run of letters and
// digits. The lowercased spelling is compared against the reserved set:
// reserved identifiers become FUNCTION_KEY or CONSTANT_KEY tokens (with
// the lowercased name as literal), everything else is a variable name
// kept as written.
//
// Parameters:
//   - lex: Pointer to the lexer instance, positioned on a letter
//
// Returns:
//   - Token: An IDENTIFIER_ID, FUNCTION_KEY or CONSTANT_KEY token
//
// Example:
//
//	Input: "radius1"
//	Returns: Token{Type: IDENTIFIER_ID, Literal: "radius1"}
//
//	Input: "SIN"
//	Returns: Token{Type: FUNCTION_KEY, Literal: "sin"}
func readIdentifier(lex *Lexer) Token {
	position := lex.Position

	lex.Advance() // the initial letter
	for isAlphanumericASCII(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[position:lex.Position]
	lowered := strings.ToLower(literal)

	tokenType := lookupIdent(lowered)
	if tokenType != IDENTIFIER_ID {
		return NewToken(tokenType, lowered)
	}
	return NewToken(IDENTIFIER_ID, literal)
}
