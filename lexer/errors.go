/*
File    : go-graph/lexer/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// LexError represents a lexical error: an unrecognised character or a
// malformed number literal. Position is the byte offset of the offending
// character in the whitespace-stripped input.
type LexError struct {
	Message  string
	Position int
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Position, e.Message)
}
