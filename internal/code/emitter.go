package code

import (
	"github.com/pkg/errors"

	"acdc/internal/ast"
	"acdc/internal/token"
)

var binOps = map[token.Type]Opcode{
	token.PLUS:     OpAdd,
	token.MINUS:    OpSub,
	token.TIMES:    OpMul,
	token.DIVIDE:   OpDiv,
	token.EXPONENT: OpPow,
}

// Emit compiles parsed statements into a flat postfix instruction list.
func Emit(stmts []ast.Node) ([]Instr, error) {
	var prog []Instr

	for _, stmt := range stmts {
		switch n := stmt.(type) {
		case *ast.IntDcl:
			prog = append(prog, Instr{Op: OpDeclare, Name: n.Name})
		case *ast.Print:
			prog = append(prog, Instr{Op: OpPrint, Name: n.Name})
		case *ast.Assign:
			var err error
			prog, err = emitExpr(prog, n.Value)
			if err != nil {
				return nil, err
			}
			prog = append(prog, Instr{Op: OpStore, Name: n.Name})
		default:
			return nil, errors.Errorf("cannot emit statement node %T", stmt)
		}
	}

	return prog, nil
}

// emitExpr appends the post-order instruction form of expr to prog.
func emitExpr(prog []Instr, expr ast.Node) ([]Instr, error) {
	switch n := expr.(type) {
	case *ast.IntLit:
		return append(prog, Instr{Op: OpPush, Value: n.Value}), nil
	case *ast.VarRef:
		return append(prog, Instr{Op: OpLoad, Name: n.Name}), nil
	case *ast.BinOp:
		prog, err := emitExpr(prog, n.Left)
		if err != nil {
			return nil, err
		}
		prog, err = emitExpr(prog, n.Right)
		if err != nil {
			return nil, err
		}
		op, ok := binOps[n.Op]
		if !ok {
			return nil, errors.Errorf("unknown operator %s", n.Op)
		}
		return append(prog, Instr{Op: op}), nil
	default:
		return nil, errors.Errorf("cannot emit expression node %T", expr)
	}
}
