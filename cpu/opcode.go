package cpu

import (
	"strings"
)

// Opcode is an instruction byte.
//
// The bits are laid out as AABCDDDD, where AA is the number of operand bytes
// that follow, B marks an ALU operation, C marks an instruction that sets the
// PC itself, and DDDD identifies the instruction.
//
//go:generate go tool stringer -linecomment -type=Opcode
type Opcode uint8

const (
	OP_NOP  = Opcode(0b00000000) // nop
	OP_HLT  = Opcode(0b00000001) // hlt
	OP_LDI  = Opcode(0b10000010) // ldi
	OP_LD   = Opcode(0b10000011) // ld
	OP_ST   = Opcode(0b10000100) // st
	OP_PUSH = Opcode(0b01000101) // push
	OP_POP  = Opcode(0b01000110) // pop
	OP_PRN  = Opcode(0b01000111) // prn
	OP_PRA  = Opcode(0b01001000) // pra

	OP_CALL = Opcode(0b01010000) // call
	OP_RET  = Opcode(0b00010001) // ret
	OP_JMP  = Opcode(0b01010100) // jmp

	OP_ADD = Opcode(0b10100000) // add
	OP_SUB = Opcode(0b10100001) // sub
	OP_MUL = Opcode(0b10100010) // mul
	OP_DIV = Opcode(0b10100011) // div
	OP_MOD = Opcode(0b10100100) // mod
	OP_INC = Opcode(0b01100101) // inc
	OP_DEC = Opcode(0b01100110) // dec
	OP_CMP = Opcode(0b10100111) // cmp
	OP_AND = Opcode(0b10101000) // and
	OP_NOT = Opcode(0b01101001) // not
	OP_OR  = Opcode(0b10101010) // or
	OP_XOR = Opcode(0b10101011) // xor
	OP_SHL = Opcode(0b10101100) // shl
	OP_SHR = Opcode(0b10101101) // shr
)

const (
	opcodeOperandShift = 6
	opcodeAluBit       = 0b00100000
	opcodeSetsPcBit    = 0b00010000
)

// Operands returns the number of operand bytes that follow the opcode.
func (op Opcode) Operands() int {
	return int(op >> opcodeOperandShift)
}

// IsAlu returns true if the opcode is encoded as an ALU operation.
func (op Opcode) IsAlu() bool {
	return (op & opcodeAluBit) != 0
}

// SetsPc returns true if the opcode is encoded as setting the PC.
func (op Opcode) SetsPc() bool {
	return (op & opcodeSetsPcBit) != 0
}

// LookupOpcode returns the executable opcode for a mnemonic, in any case.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	for op := range instructions {
		if strings.EqualFold(op.String(), mnemonic) {
			return op, true
		}
	}
	return
}
