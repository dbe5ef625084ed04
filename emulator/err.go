package emulator

import (
	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc     uint16     // Program counter of the failing instruction.
	Opcode cpu.Opcode // Opcode at the program counter.
	LineNo int        // Source line of the opcode, or zero if unknown.
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("pc 0x%02x opcode 0b%08b: %v", err.Pc, uint8(err.Opcode), err.Err)
	}
	return f("pc 0x%02x opcode 0b%08b line %d: %v", err.Pc, uint8(err.Opcode), err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
