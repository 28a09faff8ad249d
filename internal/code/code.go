package code

import "fmt"

// Opcode identifies one VM instruction.
type Opcode byte

const (
	OpPush Opcode = iota // push Value onto the operand stack
	OpLoad               // push the named variable
	OpStore              // pop into the named variable
	OpDeclare            // declare the named variable, initialized to 0
	OpPrint              // write the named variable to the VM's output
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
)

// Instr is one postfix instruction. Name and Value are operand fields used by
// a subset of opcodes and stay zero elsewhere.
type Instr struct {
	Op    Opcode
	Name  string
	Value int64
}

func (i Instr) String() string {
	switch i.Op {
	case OpPush:
		return fmt.Sprintf("push %d", i.Value)
	case OpLoad:
		return "load " + i.Name
	case OpStore:
		return "store " + i.Name
	case OpDeclare:
		return "declare " + i.Name
	case OpPrint:
		return "print " + i.Name
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpPow:
		return "pow"
	}
	return fmt.Sprintf("op(%d)", i.Op)
}
