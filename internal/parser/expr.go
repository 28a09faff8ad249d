package parser

import (
	"acdc/internal/ast"
	"acdc/internal/token"
)

// Operator precedence; higher binds tighter.
var precedence = map[token.Type]int{
	token.EXPONENT: 3,
	token.TIMES:    2,
	token.DIVIDE:   2,
	token.PLUS:     1,
	token.MINUS:    1,
}

// leftAssoc marks the operators that associate to the left. EXPONENT is the
// one right-associative operator.
var leftAssoc = map[token.Type]bool{
	token.EXPONENT: false,
	token.TIMES:    true,
	token.DIVIDE:   true,
	token.PLUS:     true,
	token.MINUS:    true,
}

func isOperator(t token.Type) bool {
	_, ok := precedence[t]
	return ok
}

// parseExpression consumes tokens up to (but not including) the terminating
// EOF and folds them into a single expression node. It runs the two-stack
// shunting-yard loop: operands collect on valstack, pending operators and
// LPAREN markers on opstack, and lparenDepths records the valstack height at
// each open paren so an empty group can be detected.
func parseExpression(ts *token.Stream) (ast.Node, error) {
	var opstack []token.Type
	var valstack []ast.Node
	var lparenDepths []int

	for ts.Peek().Type != token.EOF {
		tok := ts.Peek()

		switch {
		case tok.Type == token.INTLIT:
			tok = ts.Read()
			if tok.IntValue == nil {
				return nil, syntaxErrorf("malformed INTLIT token")
			}
			next := ts.Peek()
			if !isOperator(next.Type) && next.Type != token.RPAREN && next.Type != token.EOF {
				return nil, syntaxErrorf("expected operator or rparen after int literal")
			}
			valstack = append(valstack, &ast.IntLit{Value: *tok.IntValue})

		case tok.Type == token.VARREF:
			tok = ts.Read()
			// An absent lexeme becomes an empty name here; only the LHS of
			// an assignment rejects it.
			valstack = append(valstack, &ast.VarRef{Name: tok.Lexeme})
			next := ts.Peek()
			if !isOperator(next.Type) && next.Type != token.RPAREN && next.Type != token.EOF {
				return nil, syntaxErrorf("expected operator or rparen after variable reference")
			}

		case tok.Type == token.LPAREN:
			ts.Read()
			opstack = append(opstack, token.LPAREN)
			lparenDepths = append(lparenDepths, len(valstack))

		case tok.Type == token.RPAREN:
			ts.Read()
			reduced := false
			for {
				if len(opstack) == 0 {
					return nil, syntaxErrorf("mismatched parentheses")
				}
				if opstack[len(opstack)-1] == token.LPAREN {
					opstack = opstack[:len(opstack)-1]
					lparenDepths = lparenDepths[:len(lparenDepths)-1]
					if !reduced {
						return nil, syntaxErrorf("expected lparen, intlit, or varref after lparen")
					}
					break
				}
				if err := reduce(&opstack, &valstack); err != nil {
					return nil, err
				}
				reduced = true
			}

		case isOperator(tok.Type):
			incoming := ts.Read()
			if len(valstack) == 0 {
				return nil, syntaxErrorf("expected two operands for operator %s", incoming.Type)
			}
			// Operator directly after an open paren with nothing pushed for
			// that group yet.
			if len(opstack) > 0 && opstack[len(opstack)-1] == token.LPAREN &&
				len(lparenDepths) > 0 && len(valstack) == lparenDepths[len(lparenDepths)-1] {
				return nil, syntaxErrorf("expected lparen, intlit, or varref after lparen")
			}

			for len(opstack) > 0 && isOperator(opstack[len(opstack)-1]) {
				top := opstack[len(opstack)-1]
				if precedence[top] > precedence[incoming.Type] ||
					(precedence[top] == precedence[incoming.Type] && leftAssoc[top]) {
					if err := reduce(&opstack, &valstack); err != nil {
						return nil, err
					}
					continue
				}
				break
			}

			opstack = append(opstack, incoming.Type)

		default:
			return nil, syntaxErrorf("unexpected token in expression: %s", tok)
		}
	}

	for len(opstack) > 0 {
		if opstack[len(opstack)-1] == token.LPAREN {
			return nil, syntaxErrorf("mismatched parentheses")
		}
		if err := reduce(&opstack, &valstack); err != nil {
			return nil, err
		}
	}

	if len(valstack) != 1 {
		return nil, syntaxErrorf("expression did not reduce to one AST")
	}

	return valstack[0], nil
}

// reduce pops one operator and the top two operands (right first) and pushes
// the folded node. It is the only place BinOp nodes are built.
func reduce(opstack *[]token.Type, valstack *[]ast.Node) error {
	ops, vals := *opstack, *valstack

	if len(ops) < 1 {
		return syntaxErrorf("mismatched parentheses")
	}
	if len(vals) < 2 {
		if len(vals) == 0 {
			return syntaxErrorf("expected two operands for operator %s", ops[len(ops)-1])
		}
		return syntaxErrorf("expected operand or lparen after operator")
	}

	op := ops[len(ops)-1]
	right := vals[len(vals)-1]
	left := vals[len(vals)-2]

	*opstack = ops[:len(ops)-1]
	*valstack = append(vals[:len(vals)-2], &ast.BinOp{Op: op, Left: left, Right: right})
	return nil
}
