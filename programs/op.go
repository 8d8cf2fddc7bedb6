package programs

import "fmt"

// Op is one instruction. The low 8 bits hold the opcode, the remaining bits
// hold the jump target of bracket instructions.
type Op uint64

const (
	OpRight Op = iota + 1
	OpLeft
	OpInc
	OpDec
	OpOutput
	OpInput
	OpJumpZero
	OpJumpNonZero
)

const opBits = 8

func (o Op) With(target int) Op {
	return o.Code() | Op(target)<<opBits
}

func (o Op) Code() Op {
	return o & (1<<opBits - 1)
}

func (o Op) Target() int {
	return int(o >> opBits)
}

func (o Op) Symbol() byte {
	switch o.Code() {
	case OpRight:
		return '>'
	case OpLeft:
		return '<'
	case OpInc:
		return '+'
	case OpDec:
		return '-'
	case OpOutput:
		return '.'
	case OpInput:
		return ','
	case OpJumpZero:
		return '['
	case OpJumpNonZero:
		return ']'
	}
	return 0
}

func (o Op) String() string {
	switch o.Code() {
	case OpRight:
		return "right"
	case OpLeft:
		return "left"
	case OpInc:
		return "inc"
	case OpDec:
		return "dec"
	case OpOutput:
		return "output"
	case OpInput:
		return "input"
	case OpJumpZero:
		return fmt.Sprintf("jz %d", o.Target())
	case OpJumpNonZero:
		return fmt.Sprintf("jnz %d", o.Target())
	}
	return fmt.Sprintf("op(%d)", uint64(o))
}

func opForSymbol(r rune) (Op, bool) {
	switch r {
	case '>':
		return OpRight, true
	case '<':
		return OpLeft, true
	case '+':
		return OpInc, true
	case '-':
		return OpDec, true
	case '.':
		return OpOutput, true
	case ',':
		return OpInput, true
	case '[':
		return OpJumpZero, true
	case ']':
		return OpJumpNonZero, true
	}
	return 0, false
}
