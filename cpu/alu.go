package cpu

// Alu performs the requested ALU operation on reg_a and reg_b, and stores
// the result in reg_a. Results wrap modulo 256.
//
// INC, DEC and NOT only use reg_a; reg_b is not validated for them.
func (cpu *Cpu) Alu(op Opcode, reg_a, reg_b uint8) (err error) {
	input, err := cpu.GetRegister(reg_a)
	if err != nil {
		return
	}

	var output uint8
	switch op {
	case OP_INC: // inc
		output = input + 1
	case OP_DEC: // dec
		output = input - 1
	case OP_NOT: // not
		output = ^input
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD, OP_AND, OP_OR, OP_XOR, OP_SHL, OP_SHR:
		var value uint8
		value, err = cpu.GetRegister(reg_b)
		if err != nil {
			return
		}
		output, err = doAlu(op, input, value)
		if err != nil {
			return
		}
	default:
		err = ErrAluOp
		return
	}

	return cpu.SetRegister(reg_a, output)
}

// doAlu performs a two operand ALU action, and returns the output value.
func doAlu(op Opcode, input uint8, value uint8) (output uint8, err error) {
	switch op {
	case OP_ADD: // add
		output = input + value
	case OP_SUB: // sub
		output = input - value
	case OP_MUL: // mul
		output = input * value
	case OP_DIV: // div
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		output = input / value
	case OP_MOD: // mod
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		output = input % value
	case OP_AND: // and
		output = input & value
	case OP_OR: // or
		output = input | value
	case OP_XOR: // xor
		output = input ^ value
	case OP_SHL: // shl
		output = input << value
	case OP_SHR: // shr
		output = input >> value
	default:
		err = ErrAluOp
	}

	return
}
