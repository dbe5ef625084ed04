package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Program)
	assert.Nil(emu.Trace)
}

func doAssemble(emu *Emulator, program []string, t *testing.T) (output *bytes.Buffer) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	emu.Program = prog

	err = emu.Reset()
	assert.NoError(err)

	output = &bytes.Buffer{}
	emu.Cpu.Output = output

	return
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"ldi r0, 8",
		"ldi r1, 9",
		"mul r0, r1",
		"prn r0",
		"hlt",
	}

	output := doAssemble(emu, program, t)

	for n := range 4 {
		assert.Equal(n+1, emu.LineNo())
		done, err := emu.Tick()
		assert.NoError(err, program[n])
		assert.False(done, program[n])
	}

	assert.Equal(5, emu.LineNo())
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(5, emu.Ticks())

	assert.Equal("72\n", output.String())
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"    ldi r0, 5",
		"    ldi r1, 1",
		"    ldi r2, fact",
		"    call r2",
		"    prn r1",
		"    hlt",
		"fact: mul r1, r0 ; r1 = 5 * 4 * 3 * 2",
		"    dec r0",
		"    mul r1, r0",
		"    dec r0",
		"    mul r1, r0",
		"    dec r0",
		"    mul r1, r0",
		"    ret",
	}

	output := doAssemble(emu, program, t)

	err := emu.Run()
	assert.NoError(err)
	assert.Equal("120\n", output.String())
	assert.True(emu.Cpu.Halted)
	assert.Equal(uint16(cpu.STACK_TOP), emu.Cpu.Sp)
}

func TestEmulatorTrace(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	output := doAssemble(emu, []string{"ldi r0, 8", "prn r0", "hlt"}, t)

	trace := &bytes.Buffer{}
	emu.Trace = trace

	assert.NoError(emu.Run())
	assert.Equal("8\n", output.String())
	assert.Equal(strings.Join([]string{
		"TRACE: 00 | 82 00 08 | 00 00 00 00 00 00 00 00",
		"TRACE: 03 | 47 00 01 | 08 00 00 00 00 00 00 00",
		"TRACE: 05 | 01 00 00 | 08 00 00 00 00 00 00 00",
		"",
	}, "\n"), trace.String())
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"    ldi r0, 8",
		"    ldi r1, 0",
		"    prn r0",
		"    div r0, r1 ; fails",
		"    prn r0",
		"    hlt",
	}

	output := doAssemble(emu, program, t)

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrDivideByZero)
	assert.Equal("8\n", output.String())

	var rt_err *ErrRuntime
	if assert.True(errors.As(err, &rt_err)) {
		assert.Equal(uint16(8), rt_err.Pc)
		assert.Equal(cpu.OP_DIV, rt_err.Opcode)
		assert.Equal(4, rt_err.LineNo)
		assert.Contains(rt_err.Error(), "line 4")
	}

	// A failed emulator stays done.
	done, err := emu.Tick()
	assert.True(done)
	assert.NoError(err)
	assert.Equal("8\n", output.String())
}

func TestEmulatorUnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	prog, err := cpu.ParseProgram(strings.NewReader("11111111\n01000111\n00000000\n00000001\n"))
	assert.NoError(err)

	emu := NewEmulator()
	emu.Program = prog
	assert.NoError(emu.Reset())

	output := &bytes.Buffer{}
	emu.Cpu.Output = output

	done, err := emu.Tick()
	assert.True(done)
	assert.ErrorIs(err, cpu.ErrOpcodeUnknown)
	assert.Equal("", output.String())

	var rt_err *ErrRuntime
	if assert.True(errors.As(err, &rt_err)) {
		assert.Equal(uint16(0), rt_err.Pc)
		assert.Equal(cpu.Opcode(0xff), rt_err.Opcode)
		assert.Equal(1, rt_err.LineNo)
	}
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := doAssemble(emu, []string{"ldi r0, 1", "prn r0", "hlt"}, t)

	assert.NoError(emu.Run())
	assert.NoError(emu.Reset())
	assert.False(emu.Cpu.Halted)
	assert.Equal(uint16(0), emu.Cpu.Pc)
	assert.NoError(emu.Run())

	assert.Equal("1\n1\n", output.String())
}
