package token

import "fmt"

// Type describes the kind of token.
type Type string

const (
	// Special
	EOF Type = "EOF"

	// Statement keywords
	PRINT  Type = "PRINT"
	INTDEC Type = "INTDEC"

	// Identifiers + literals
	VARREF Type = "VARREF"
	INTLIT Type = "INTLIT"

	// Operators
	ASSIGN   Type = "ASSIGN"
	PLUS     Type = "PLUS"
	MINUS    Type = "MINUS"
	TIMES    Type = "TIMES"
	DIVIDE   Type = "DIVIDE"
	EXPONENT Type = "EXPONENT"

	// Delimiters
	LPAREN Type = "LPAREN"
	RPAREN Type = "RPAREN"
)

// Token represents a single lexical token. The payload fields are
// kind-specific: Name is set for PRINT and INTDEC, Lexeme for VARREF, and
// IntValue for INTLIT. For the other kinds they stay zero. A nil IntValue
// (or empty Name/Lexeme) means the payload is absent.
type Token struct {
	Type     Type
	Name     string
	Lexeme   string
	IntValue *int64
}

func (t Token) String() string {
	switch t.Type {
	case PRINT, INTDEC:
		return fmt.Sprintf("%s(%s)", t.Type, t.Name)
	case VARREF:
		return fmt.Sprintf("VARREF(%s)", t.Lexeme)
	case INTLIT:
		if t.IntValue == nil {
			return "INTLIT(?)"
		}
		return fmt.Sprintf("INTLIT(%d)", *t.IntValue)
	}
	return string(t.Type)
}
