package parser

import (
	"acdc/internal/ast"
	"acdc/internal/token"
)

// expect consumes the next token and fails unless it has the wanted type.
func expect(ts *token.Stream, want token.Type) (token.Token, error) {
	tok := ts.Peek()
	if tok.Type != want {
		return token.Token{}, syntaxErrorf("expected %s but found %s", want, tok.Type)
	}
	return ts.Read(), nil
}

// Parse consumes exactly one statement plus its trailing EOF from ts and
// returns the statement's AST root. The three statement forms are print,
// integer declaration, and assignment; the assignment's right-hand side is
// handed to the expression parser.
func Parse(ts *token.Stream) (ast.Node, error) {
	t := ts.Peek()

	switch t.Type {
	case token.PRINT:
		ts.Read()
		if t.Name == "" {
			return nil, syntaxErrorf("malformed PRINT token")
		}
		node := &ast.Print{Name: t.Name}
		if _, err := expect(ts, token.EOF); err != nil {
			return nil, err
		}
		return node, nil

	case token.INTDEC:
		ts.Read()
		if t.Name == "" {
			return nil, syntaxErrorf("malformed INTDEC token")
		}
		node := &ast.IntDcl{Name: t.Name}
		if _, err := expect(ts, token.EOF); err != nil {
			return nil, err
		}
		return node, nil

	case token.VARREF:
		lhs := ts.Read()
		if _, err := expect(ts, token.ASSIGN); err != nil {
			return nil, err
		}
		rhs, err := parseExpression(ts)
		if err != nil {
			return nil, err
		}
		if lhs.Lexeme == "" {
			return nil, syntaxErrorf("malformed VARREF token on LHS")
		}
		node := &ast.Assign{Name: lhs.Lexeme, Value: rhs}
		if _, err := expect(ts, token.EOF); err != nil {
			return nil, err
		}
		return node, nil
	}

	return nil, syntaxErrorf("expected PRINT, INTDEC, or VARREF; got %s", t.Type)
}
