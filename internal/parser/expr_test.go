package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"acdc/internal/ast"
	"acdc/internal/lexer"
	"acdc/internal/token"
)

func parseExpr(t *testing.T, src string) ast.Node {
	t.Helper()
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	node, err := parseExpression(token.NewStream(toks))
	require.NoError(t, err)
	return node
}

func parseExprErr(t *testing.T, src string) error {
	t.Helper()
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	_, err = parseExpression(token.NewStream(toks))
	require.Error(t, err)
	return err
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"2 * 3 + 1", "((2 * 3) + 1)"},
		{"1 + 2 - 3", "((1 + 2) - 3)"},
		{"2 ^ 3 * 4", "((2 ^ 3) * 4)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, tt.want, parseExpr(t, tt.src).String())
		})
	}
}

func TestAssociativity(t *testing.T) {
	// EXPONENT groups to the right, everything else to the left.
	require.Equal(t, "(2 ^ (3 ^ 2))", parseExpr(t, "2 ^ 3 ^ 2").String())
	require.Equal(t, "((8 / 4) / 2)", parseExpr(t, "8 / 4 / 2").String())
}

// A paren group must contain a completed sub-expression. A bare operand in
// parens triggers no reduction before the matching LPAREN is found, so
// nesting alone is rejected no matter how deep.
func TestParenGroupWithoutReduction(t *testing.T) {
	require.EqualError(t, parseExprErr(t, "(1)"),
		"expected lparen, intlit, or varref after lparen")
	require.EqualError(t, parseExprErr(t, "(((1)))"),
		"expected lparen, intlit, or varref after lparen")
	require.EqualError(t, parseExprErr(t, "(x)"),
		"expected lparen, intlit, or varref after lparen")

	_, err := parseExpression(stream(
		tok(token.LPAREN), tok(token.LPAREN), tok(token.LPAREN),
		intlit(1),
		tok(token.RPAREN), tok(token.RPAREN), tok(token.RPAREN),
	))
	require.EqualError(t, err, "expected lparen, intlit, or varref after lparen")
}

func TestMismatchedParens(t *testing.T) {
	require.EqualError(t, parseExprErr(t, "(1 + 2"), "mismatched parentheses")
	require.EqualError(t, parseExprErr(t, "1 + 2)"), "mismatched parentheses")
}

func TestEmptyOrIncompleteGroup(t *testing.T) {
	require.EqualError(t, parseExprErr(t, "()"),
		"expected lparen, intlit, or varref after lparen")
	require.EqualError(t, parseExprErr(t, "(1 +)"),
		"expected operand or lparen after operator")
	require.EqualError(t, parseExprErr(t, "1 * (+ 2)"),
		"expected lparen, intlit, or varref after lparen")
}

func TestAdjacentOperands(t *testing.T) {
	_, err := parseExpression(stream(intlit(1), intlit(2)))
	require.EqualError(t, err, "expected operator or rparen after int literal")

	_, err = parseExpression(stream(varref("a"), varref("b")))
	require.EqualError(t, err, "expected operator or rparen after variable reference")

	_, err = parseExpression(stream(intlit(1), tok(token.LPAREN)))
	require.EqualError(t, err, "expected operator or rparen after int literal")
}

func TestOperatorWithoutLeftOperand(t *testing.T) {
	require.EqualError(t, parseExprErr(t, "+ 1"),
		"expected two operands for operator PLUS")
}

func TestEmptyExpression(t *testing.T) {
	_, err := parseExpression(stream())
	require.EqualError(t, err, "expression did not reduce to one AST")
}

func TestUnexpectedTokenInExpression(t *testing.T) {
	_, err := parseExpression(stream(tok(token.ASSIGN)))
	require.EqualError(t, err, "unexpected token in expression: ASSIGN")
}

func TestMalformedIntLit(t *testing.T) {
	_, err := parseExpression(stream(tok(token.INTLIT)))
	require.EqualError(t, err, "malformed INTLIT token")
}

// A VARREF without a lexeme is tolerated inside an expression; only the LHS
// of an assignment rejects it.
func TestVarRefWithoutLexeme(t *testing.T) {
	node, err := parseExpression(stream(varref("")))
	require.NoError(t, err)
	require.Equal(t, &ast.VarRef{Name: ""}, node)
}

func TestVarRefInExpression(t *testing.T) {
	require.Equal(t, "((a + b) * c)", parseExpr(t, "(a + b) * c").String())
}

func TestReducePreconditions(t *testing.T) {
	t.Run("empty operator stack", func(t *testing.T) {
		ops := []token.Type{}
		vals := []ast.Node{&ast.IntLit{Value: 1}, &ast.IntLit{Value: 2}}
		require.EqualError(t, reduce(&ops, &vals), "mismatched parentheses")
	})

	t.Run("no operands", func(t *testing.T) {
		ops := []token.Type{token.PLUS}
		vals := []ast.Node{}
		require.EqualError(t, reduce(&ops, &vals),
			"expected two operands for operator PLUS")
	})

	t.Run("one operand", func(t *testing.T) {
		ops := []token.Type{token.PLUS}
		vals := []ast.Node{&ast.IntLit{Value: 1}}
		require.EqualError(t, reduce(&ops, &vals),
			"expected operand or lparen after operator")
	})

	t.Run("folds right operand first", func(t *testing.T) {
		ops := []token.Type{token.MINUS}
		vals := []ast.Node{&ast.IntLit{Value: 8}, &ast.IntLit{Value: 3}}
		require.NoError(t, reduce(&ops, &vals))
		require.Empty(t, ops)
		require.Equal(t, []ast.Node{&ast.BinOp{
			Op:    token.MINUS,
			Left:  &ast.IntLit{Value: 8},
			Right: &ast.IntLit{Value: 3},
		}}, vals)
	})
}
