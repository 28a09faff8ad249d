package parser

import "fmt"

// SyntaxError is the single error kind the parser produces. It carries only a
// human-readable message; the first error aborts the parse and unwinds to the
// caller with no recovery.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return e.Msg }

func syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}
