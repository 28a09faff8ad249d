package ast

import (
	"fmt"

	"acdc/internal/token"
)

// Node is implemented by every AST node. The set of implementations is
// closed: consumers switch over the concrete types.
type Node interface {
	fmt.Stringer
	node()
}

// Print is a print statement naming a variable.
type Print struct {
	Name string
}

// IntDcl declares an integer variable.
type IntDcl struct {
	Name string
}

// Assign assigns an expression to a variable.
type Assign struct {
	Name  string
	Value Node
}

// IntLit is an integer literal leaf.
type IntLit struct {
	Value int64
}

// VarRef is a variable reference leaf.
type VarRef struct {
	Name string
}

// BinOp applies one of the five arithmetic operators to two subtrees.
type BinOp struct {
	Op    token.Type
	Left  Node
	Right Node
}

func (*Print) node()  {}
func (*IntDcl) node() {}
func (*Assign) node() {}
func (*IntLit) node() {}
func (*VarRef) node() {}
func (*BinOp) node()  {}

var opSymbols = map[token.Type]string{
	token.PLUS:     "+",
	token.MINUS:    "-",
	token.TIMES:    "*",
	token.DIVIDE:   "/",
	token.EXPONENT: "^",
}

func (n *Print) String() string  { return "print " + n.Name }
func (n *IntDcl) String() string { return "int " + n.Name }
func (n *Assign) String() string { return fmt.Sprintf("%s = %s", n.Name, n.Value) }
func (n *IntLit) String() string { return fmt.Sprintf("%d", n.Value) }
func (n *VarRef) String() string { return n.Name }

func (n *BinOp) String() string {
	sym, ok := opSymbols[n.Op]
	if !ok {
		sym = string(n.Op)
	}
	return fmt.Sprintf("(%s %s %s)", n.Left, sym, n.Right)
}
