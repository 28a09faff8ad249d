package vm

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"acdc/internal/code"
)

// VM executes compiled instruction lists over a flat integer environment.
// Variables persist across Run calls, so a VM can execute a program in
// pieces.
type VM struct {
	stack []int64
	vars  map[string]int64
	out   io.Writer
}

// New creates a VM whose print output goes to out.
func New(out io.Writer) *VM {
	return &VM{
		stack: make([]int64, 0, 64),
		vars:  map[string]int64{},
		out:   out,
	}
}

func (vm *VM) push(v int64) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() (int64, error) {
	if len(vm.stack) == 0 {
		return 0, errors.New("stack underflow")
	}
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v, nil
}

func (vm *VM) load(name string) (int64, error) {
	v, ok := vm.vars[name]
	if !ok {
		return 0, errors.Errorf("undeclared variable %q", name)
	}
	return v, nil
}

// Run executes prog from the beginning and stops at the first fault.
func (vm *VM) Run(prog []code.Instr) error {
	for _, in := range prog {
		switch in.Op {

		case code.OpPush:
			vm.push(in.Value)

		case code.OpLoad:
			v, err := vm.load(in.Name)
			if err != nil {
				return err
			}
			vm.push(v)

		case code.OpStore:
			if _, ok := vm.vars[in.Name]; !ok {
				return errors.Errorf("undeclared variable %q", in.Name)
			}
			v, err := vm.pop()
			if err != nil {
				return err
			}
			vm.vars[in.Name] = v

		case code.OpDeclare:
			vm.vars[in.Name] = 0

		case code.OpPrint:
			v, err := vm.load(in.Name)
			if err != nil {
				return err
			}
			fmt.Fprintln(vm.out, v)

		case code.OpAdd, code.OpSub, code.OpMul, code.OpDiv, code.OpPow:
			b, err := vm.pop()
			if err != nil {
				return err
			}
			a, err := vm.pop()
			if err != nil {
				return err
			}
			v, err := apply(in.Op, a, b)
			if err != nil {
				return err
			}
			vm.push(v)

		default:
			return errors.Errorf("unknown opcode: %d", in.Op)
		}
	}

	return nil
}

func apply(op code.Opcode, a, b int64) (int64, error) {
	switch op {
	case code.OpAdd:
		return a + b, nil
	case code.OpSub:
		return a - b, nil
	case code.OpMul:
		return a * b, nil
	case code.OpDiv:
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	case code.OpPow:
		return ipow(a, b)
	}
	return 0, errors.Errorf("unknown opcode: %d", op)
}

func ipow(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, errors.Errorf("negative exponent %d", exp)
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result, nil
}
