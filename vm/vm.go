package vm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	e "github.com/loxcraft/loxvm/errors"
)

// InterpretResult classifies how an Interpret call ended.
type InterpretResult int

const (
	Ok InterpretResult = iota
	CompileError
	RuntimeErr
)

// VM is a stack-based bytecode interpreter. It is single-threaded and
// non-reentrant: its chunk, ip, and stack are valid only for the
// duration of one Interpret call.
type VM struct {
	chunk *Chunk
	ip    int
	stack []Value

	compiler *Compiler
	out      io.Writer
}

func NewVM() *VM { return &VM{out: nil} }

func (vm *VM) push(v Value) { vm.stack = append(vm.stack, v) }

func (vm *VM) pop() Value {
	last := len(vm.stack) - 1
	v := vm.stack[last]
	vm.stack = vm.stack[:last]
	return v
}

func (vm *VM) resetStack() { vm.stack = vm.stack[:0] }

// Interpret compiles source into a fresh Chunk and, if compilation
// succeeds, runs it to completion. The returned InterpretResult
// classifies which of the three outcomes in spec.md §6 occurred.
func (vm *VM) Interpret(source string) (Value, InterpretResult, error) {
	if vm.compiler == nil {
		vm.compiler = NewCompiler()
	}
	chunk, err := vm.compiler.Compile(source)
	if err != nil {
		return nil, CompileError, err
	}

	vm.chunk = chunk
	vm.ip = 0
	vm.resetStack()
	return vm.run()
}

func (vm *VM) readByte() byte {
	b := vm.chunk.Get(vm.ip)
	vm.ip++
	return b
}

func (vm *VM) readConstant() Value { return vm.chunk.GetConstant(vm.readByte()) }

func (vm *VM) runtimeError(msg string) error {
	line := vm.chunk.Line(vm.ip - 1)
	vm.resetStack()
	return &e.RuntimeError{Line: line, Message: msg}
}

// run dispatches one opcode per iteration until OP_RETURN or a runtime
// error. Each opcode's stack effect matches the table in spec.md §4.4.
func (vm *VM) run() (Value, InterpretResult, error) {
	for {
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.Debugln(vm.traceStack())
			line, _ := vm.chunk.DisassembleInstruction(vm.ip)
			logrus.Debugln(line)
		}

		switch op := ByteToOpCode(vm.readByte()); op {
		case OpConstant:
			vm.push(vm.readConstant())

		case OpNil:
			vm.push(VNil{})
		case OpTrue:
			vm.push(VBool(true))
		case OpFalse:
			vm.push(VBool(false))

		case OpEqual:
			b, a := vm.pop(), vm.pop()
			vm.push(VBool(Eq(a, b)))
		case OpGreater:
			if err := vm.numericBinary(func(a, b float64) Value { return VBool(a > b) }); err != nil {
				return nil, RuntimeErr, err
			}
		case OpLess:
			if err := vm.numericBinary(func(a, b float64) Value { return VBool(a < b) }); err != nil {
				return nil, RuntimeErr, err
			}

		case OpAdd:
			if err := vm.numericBinary(func(a, b float64) Value { return VNum(a + b) }); err != nil {
				return nil, RuntimeErr, err
			}
		case OpSubtract:
			if err := vm.numericBinary(func(a, b float64) Value { return VNum(a - b) }); err != nil {
				return nil, RuntimeErr, err
			}
		case OpMultiply:
			if err := vm.numericBinary(func(a, b float64) Value { return VNum(a * b) }); err != nil {
				return nil, RuntimeErr, err
			}
		case OpDivide:
			if err := vm.numericBinary(func(a, b float64) Value { return VNum(a / b) }); err != nil {
				return nil, RuntimeErr, err
			}

		case OpNot:
			vm.push(VBool(!Truthy(vm.pop())))

		case OpNegate:
			n, ok := vm.pop().(VNum)
			if !ok {
				return nil, RuntimeErr, vm.runtimeError("Operand must be a number.")
			}
			vm.push(-n)

		case OpReturn:
			v := vm.pop()
			vm.printValue(v)
			return v, Ok, nil

		default:
			return nil, RuntimeErr, vm.runtimeError(fmt.Sprintf("Unknown opcode %d.", vm.chunk.Get(vm.ip-1)))
		}
	}
}

// numericBinary pops b then a, requires both to be Numbers, and pushes
// op(a, b). It is shared by ADD/SUB/MUL/DIV/GREATER/LESS, which all
// share the same "Operands must be numbers." failure mode.
func (vm *VM) numericBinary(op func(a, b float64) Value) error {
	bv, av := vm.pop(), vm.pop()
	b, bok := bv.(VNum)
	a, aok := av.(VNum)
	if !aok || !bok {
		return vm.runtimeError("Operands must be numbers.")
	}
	vm.push(op(float64(a), float64(b)))
	return nil
}

func (vm *VM) printValue(v Value) {
	if vm.out != nil {
		fmt.Fprintf(vm.out, "%s\n", v)
		return
	}
	fmt.Printf("%s\n", v)
}

func (vm *VM) traceStack() string {
	out := "          "
	for _, v := range vm.stack {
		out += fmt.Sprintf("[ %s ]", v)
	}
	return out
}

// REPL runs a read-eval-print loop over r, writing prompts and results
// to w. It stops at EOF or the first read error.
func (vm *VM) REPL(r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	vm.out = w
	for {
		fmt.Fprint(w, ">> ")
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, _, err := vm.Interpret(line); err != nil {
			fmt.Fprintln(w, err)
		}
	}
}
