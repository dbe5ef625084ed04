package cpu

import (
	"fmt"
)

// instruction is an entry in the dispatch table.
type instruction struct {
	exec func(cpu *Cpu, operand_a, operand_b uint8) error
	jump bool // If set, exec sets the PC and the generic advance is skipped.
}

// instructions maps every executable opcode to its handler.
var instructions = map[Opcode]instruction{
	OP_NOP:  {exec: (*Cpu).opNop},
	OP_HLT:  {exec: (*Cpu).opHlt},
	OP_LDI:  {exec: (*Cpu).opLdi},
	OP_LD:   {exec: (*Cpu).opLd},
	OP_ST:   {exec: (*Cpu).opSt},
	OP_PUSH: {exec: (*Cpu).opPush},
	OP_POP:  {exec: (*Cpu).opPop},
	OP_PRN:  {exec: (*Cpu).opPrn},
	OP_PRA:  {exec: (*Cpu).opPra},

	OP_CALL: {exec: (*Cpu).opCall, jump: true},
	OP_RET:  {exec: (*Cpu).opRet, jump: true},
	OP_JMP:  {exec: (*Cpu).opJmp, jump: true},

	OP_ADD: {exec: aluOp(OP_ADD)},
	OP_SUB: {exec: aluOp(OP_SUB)},
	OP_MUL: {exec: aluOp(OP_MUL)},
	OP_DIV: {exec: aluOp(OP_DIV)},
	OP_MOD: {exec: aluOp(OP_MOD)},
	OP_INC: {exec: aluOp(OP_INC)},
	OP_DEC: {exec: aluOp(OP_DEC)},
	OP_AND: {exec: aluOp(OP_AND)},
	OP_NOT: {exec: aluOp(OP_NOT)},
	OP_OR:  {exec: aluOp(OP_OR)},
	OP_XOR: {exec: aluOp(OP_XOR)},
	OP_SHL: {exec: aluOp(OP_SHL)},
	OP_SHR: {exec: aluOp(OP_SHR)},
}

// Executable returns true if the opcode has an entry in the dispatch table.
func (op Opcode) Executable() bool {
	_, ok := instructions[op]
	return ok
}

// aluOp binds an ALU operation to a dispatch table handler.
func aluOp(op Opcode) func(cpu *Cpu, operand_a, operand_b uint8) error {
	return func(cpu *Cpu, operand_a, operand_b uint8) error {
		return cpu.Alu(op, operand_a, operand_b)
	}
}

func (cpu *Cpu) opNop(_, _ uint8) error {
	return nil
}

func (cpu *Cpu) opHlt(_, _ uint8) error {
	cpu.Halted = true
	return ErrHalt
}

// opLdi: reg_a = imm
func (cpu *Cpu) opLdi(reg_a, imm uint8) error {
	return cpu.SetRegister(reg_a, imm)
}

// opLd: reg_a = memory[reg_b]
func (cpu *Cpu) opLd(reg_a, reg_b uint8) (err error) {
	address, err := cpu.GetRegister(reg_b)
	if err != nil {
		return
	}
	value, err := cpu.Read(uint16(address))
	if err != nil {
		return
	}
	return cpu.SetRegister(reg_a, value)
}

// opSt: memory[reg_a] = reg_b
func (cpu *Cpu) opSt(reg_a, reg_b uint8) (err error) {
	address, err := cpu.GetRegister(reg_a)
	if err != nil {
		return
	}
	value, err := cpu.GetRegister(reg_b)
	if err != nil {
		return
	}
	return cpu.Write(uint16(address), value)
}

func (cpu *Cpu) opPush(reg_a, _ uint8) (err error) {
	value, err := cpu.GetRegister(reg_a)
	if err != nil {
		return
	}
	return cpu.Push(value)
}

func (cpu *Cpu) opPop(reg_a, _ uint8) (err error) {
	// Validate the destination before the stack is touched.
	_, err = cpu.GetRegister(reg_a)
	if err != nil {
		return
	}
	value, err := cpu.Pop()
	if err != nil {
		return
	}
	return cpu.SetRegister(reg_a, value)
}

func (cpu *Cpu) opPrn(reg_a, _ uint8) (err error) {
	value, err := cpu.GetRegister(reg_a)
	if err != nil {
		return
	}
	_, err = fmt.Fprintf(cpu.Output, "%d\n", value)
	return
}

func (cpu *Cpu) opPra(reg_a, _ uint8) (err error) {
	value, err := cpu.GetRegister(reg_a)
	if err != nil {
		return
	}
	_, err = cpu.Output.Write([]byte{value})
	return
}

// opCall pushes the address of the instruction after CALL and its one
// operand byte, then jumps to the address in reg_a.
func (cpu *Cpu) opCall(reg_a, _ uint8) (err error) {
	target, err := cpu.GetRegister(reg_a)
	if err != nil {
		return
	}
	next_pc := cpu.Pc + uint16(OP_CALL.Operands()) + 1
	if int(next_pc) >= MEMORY_SIZE {
		err = ErrAddress(next_pc)
		return
	}
	err = cpu.Push(uint8(next_pc))
	if err != nil {
		return
	}
	cpu.Pc = uint16(target)
	return
}

func (cpu *Cpu) opRet(_, _ uint8) (err error) {
	value, err := cpu.Pop()
	if err != nil {
		return
	}
	cpu.Pc = uint16(value)
	return
}

func (cpu *Cpu) opJmp(reg_a, _ uint8) (err error) {
	target, err := cpu.GetRegister(reg_a)
	if err != nil {
		return
	}
	cpu.Pc = uint16(target)
	return
}
