package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalt          = errors.New(f("halted"))
	ErrOpcodeUnknown = errors.New(f("unknown opcode"))
	ErrOutOfRange    = errors.New(f("out of range access"))
	ErrAluOp         = errors.New(f("unsupported alu operation"))
	ErrDivideByZero  = errors.New(f("divide by zero"))
	ErrStackFull     = errors.New(f("stack full"))
	ErrStackEmpty    = errors.New(f("stack empty"))
	ErrProgramSize   = errors.New(f("program too large"))

	// Assembler errors
	ErrEquateSyntax      = errors.New(f(".equ syntax"))
	ErrEquateDuplicate   = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate    = errors.New(f("label duplicated"))
	ErrLabelInvalid      = errors.New(f("label invalid"))
	ErrOpcodeExtraArgs   = errors.New(f("excessive arguments"))
	ErrOpcodeMissingArgs = errors.New(f("missing arguments"))
	ErrOpcodeInvalid     = errors.New(f("opcode invalid"))
	ErrRegisterInvalid   = errors.New(f("register invalid"))
	ErrImmediateRange    = errors.New(f("immediate out of range"))
	ErrDataMissing       = errors.New(f("data missing"))
)

// ErrOpcode names the instruction that was executing when an error occurred.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("opcode 0b%08b %v", uint8(eo), Opcode(eo).String())
}

// ErrAddress is a memory access outside of the address space.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address 0x%02x", int(ea))
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrOutOfRange
}

// ErrRegister is a register index outside of the register file.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register r%v", int(er))
}

func (er ErrRegister) Is(err error) bool {
	return err == ErrOutOfRange
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseBinary string

func (err ErrParseBinary) Error() string {
	return f("'%v' is not an 8-bit binary literal", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
