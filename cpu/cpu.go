package cpu

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

const (
	REGISTER_COUNT = 8    // Number of general purpose registers.
	MEMORY_SIZE    = 256  // Bytes of addressable memory.
	STACK_TOP      = 0xF4 // Initial stack pointer. The stack grows down from here.
)

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool      // Set to enable verbose logging.
	Output  io.Writer // Destination of PRN and PRA output.

	Pc       uint16                // Program counter.
	Sp       uint16                // Stack pointer.
	Register [REGISTER_COUNT]uint8 // Register bank.
	Memory   [MEMORY_SIZE]uint8    // Shared code, data and stack memory.
	Halted   bool                  // Set once HLT or a fatal error is reached.

	Ticks int // Instructions executed since reset, including HLT.

	floor uint16 // Length of the loaded program image; the stack may not grow into it.
}

// NewCpu creates a new, reset CPU that prints to standard output.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Output: os.Stdout,
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Sets PC to zero, and SP to the top of the stack.
// - Zeros the tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Pc = 0
	cpu.Sp = STACK_TOP
	cpu.Halted = false
	cpu.Ticks = 0
	cpu.floor = 0
}

// Load copies a program image into memory, starting at address zero.
func (cpu *Cpu) Load(image []byte) (err error) {
	if len(image) > MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	copy(cpu.Memory[:], image)
	cpu.floor = uint16(len(image))

	if cpu.Verbose {
		log.Printf("cpu: loaded %v bytes", len(image))
	}

	return
}

// Read a byte of memory.
func (cpu *Cpu) Read(address uint16) (value uint8, err error) {
	if int(address) >= len(cpu.Memory) {
		err = ErrAddress(address)
		return
	}

	value = cpu.Memory[address]
	return
}

// Write a byte of memory.
func (cpu *Cpu) Write(address uint16, value uint8) (err error) {
	if int(address) >= len(cpu.Memory) {
		err = ErrAddress(address)
		return
	}

	cpu.Memory[address] = value
	return
}

// GetRegister returns the value of a register.
func (cpu *Cpu) GetRegister(index uint8) (value uint8, err error) {
	if int(index) >= len(cpu.Register) {
		err = ErrRegister(index)
		return
	}

	value = cpu.Register[index]
	return
}

// SetRegister sets the value of a register.
func (cpu *Cpu) SetRegister(index uint8, value uint8) (err error) {
	if int(index) >= len(cpu.Register) {
		err = ErrRegister(index)
		return
	}

	cpu.Register[index] = value
	return
}

// peek reads memory for display, ignoring range errors.
func (cpu *Cpu) peek(address uint16) (value uint8) {
	value, _ = cpu.Read(address)
	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %02X\n", "sp", cpu.Sp)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %02X\n", fmt.Sprintf("r%d", n), val)
	}

	return
}

// Trace returns a single line with the PC, the next three bytes of memory,
// and all of the registers, in hexadecimal.
func (cpu *Cpu) Trace() (text string) {
	text = fmt.Sprintf("TRACE: %02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.peek(cpu.Pc),
		cpu.peek(cpu.Pc+1),
		cpu.peek(cpu.Pc+2),
	)

	for _, val := range cpu.Register {
		text += fmt.Sprintf(" %02X", val)
	}

	return
}

// Tick executes a single fetch-decode-execute cycle.
//
// ErrHalt is returned once the CPU has halted.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalt
		return
	}

	defer func() {
		if err != nil {
			cpu.Halted = true
		}
	}()

	ir, err := cpu.Read(cpu.Pc)
	if err != nil {
		return
	}

	// Both operand bytes are always read.
	operand_a, err := cpu.Read(cpu.Pc + 1)
	if err != nil {
		err = errors.Join(ErrOpcode(ir), err)
		return
	}
	operand_b, err := cpu.Read(cpu.Pc + 2)
	if err != nil {
		err = errors.Join(ErrOpcode(ir), err)
		return
	}

	err = cpu.Execute(Opcode(ir), operand_a, operand_b)

	return
}

// Execute executes a single decoded instruction at the current PC.
func (cpu *Cpu) Execute(op Opcode, operand_a, operand_b uint8) (err error) {
	defer func() {
		if err != nil && err != ErrHalt {
			err = errors.Join(ErrOpcode(op), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %02x: %v %02x %02x", cpu.Pc, op, operand_a, operand_b)
	}

	inst, ok := instructions[op]
	if !ok {
		err = ErrOpcodeUnknown
		return
	}

	err = inst.exec(cpu, operand_a, operand_b)
	if err != nil {
		if err == ErrHalt {
			cpu.Ticks += 1
		}
		return
	}

	if !inst.jump {
		cpu.Pc += uint16(op.Operands()) + 1
	}

	cpu.Ticks += 1

	return
}
