package errors

import (
	"errors"
	"fmt"
)

// CompilationError is a single diagnostic raised during scanning or
// parsing. Where is the clause printed between "Error" and the
// message: empty for an Error token (the scanner already named the
// problem), " at end" for Eof, or " at '<lexeme>'" otherwise.
type CompilationError struct {
	Line    int
	Where   string
	Message string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// RuntimeError aborts VM execution. Its Error() string is the full
// two-line diagnostic the spec requires: the message, then the
// "[line L] in script" trailer.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d] in script", e.Message, e.Line)
}

// Unreachable marks a code path the parse-rule table proves can never
// execute (e.g. an infix rule invoked for a token with no infix entry).
var Unreachable = errors.New("internal error: entered unreachable code")
