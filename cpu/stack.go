package cpu

import (
	"errors"
)

// Push decrements SP, then stores value at the new SP.
//
// The stack may not grow into the loaded program image.
func (cpu *Cpu) Push(value uint8) (err error) {
	if cpu.Sp == 0 || cpu.Sp-1 < cpu.floor {
		err = errors.Join(ErrStackFull, ErrAddress(int(cpu.Sp)-1))
		return
	}

	err = cpu.Write(cpu.Sp-1, value)
	if err != nil {
		return
	}
	cpu.Sp--

	return
}

// Pop loads the value at SP, then increments SP.
func (cpu *Cpu) Pop() (value uint8, err error) {
	if cpu.Sp >= STACK_TOP {
		err = errors.Join(ErrStackEmpty, ErrAddress(cpu.Sp))
		return
	}

	value, err = cpu.Read(cpu.Sp)
	if err != nil {
		return
	}
	cpu.Sp++

	return
}

// Depth returns the number of bytes on the stack.
func (cpu *Cpu) Depth() int {
	if cpu.Sp >= STACK_TOP {
		return 0
	}
	return STACK_TOP - int(cpu.Sp)
}
