package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var mult_ls8 = []string{
	"# mult.ls8",
	"",
	"10000010 # LDI R0,8",
	"00000000",
	"00001000",
	"10000010 # LDI R1,9",
	"00000001",
	"00001001",
	"10100010 # MUL R0,R1",
	"00000000",
	"00000001",
	"01000111 # PRN R0",
	"00000000",
	"   ",
	"00000001 # HLT",
}

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseProgram(strings.NewReader(strings.Join(mult_ls8, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]byte{
		0b10000010, 0b00000000, 0b00001000,
		0b10000010, 0b00000001, 0b00001001,
		0b10100010, 0b00000000, 0b00000001,
		0b01000111, 0b00000000,
		0b00000001,
	}, prog.Binary())

	assert.Equal(Word{LineNo: 3, Value: 0b10000010, Comment: "LDI R0,8"}, prog.Words[0])
	assert.Equal(Word{LineNo: 4, Value: 0}, prog.Words[1])

	assert.Equal(3, prog.LineNo(0))
	assert.Equal(15, prog.LineNo(11))
	assert.Equal(0, prog.LineNo(12))
}

func TestParseProgramRuns(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseProgram(strings.NewReader(strings.Join(mult_ls8, "\n")))
	assert.NoError(err)

	cpu, output := newTestCpu(t, prog.Binary()...)
	assert.NoError(runToHalt(t, cpu))
	assert.Equal("72\n", output.String())
}

func TestParseProgramShortLiteral(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseProgram(strings.NewReader("1\n101 # five\n"))
	assert.NoError(err)
	assert.Equal([]byte{1, 5}, prog.Binary())
}

func TestParseProgramErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   string
		lineno int
		err    error
	}){
		{"decimal", "10000010\n12\n", 2, ErrParseBinary("12")},
		{"long", "100000001\n", 1, ErrParseBinary("100000001")},
		{"words", "\n\n0000 0001\n", 3, ErrParseBinary("0000 0001")},
		{"hex", "0x01\n", 1, ErrParseBinary("0x01")},
		{"size", strings.Repeat("00000000\n", MEMORY_SIZE+1), MEMORY_SIZE + 1, ErrProgramSize},
	}

	for _, entry := range table {
		_, err := ParseProgram(strings.NewReader(entry.text))
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax *ErrSyntax
		if assert.ErrorAs(err, &syntax, entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestProgramWriteTo(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Words: []Word{
			{Value: uint8(OP_PRN), Comment: "PRN R0"},
			{Value: 0},
			{Value: uint8(OP_HLT), Comment: "HLT"},
		},
	}

	buf := &bytes.Buffer{}
	n, err := prog.WriteTo(buf)
	assert.NoError(err)
	assert.Equal(int64(buf.Len()), n)
	assert.Equal("01000111 # PRN R0\n00000000\n00000001 # HLT\n", buf.String())

	again, err := ParseProgram(buf)
	assert.NoError(err)
	assert.Equal(prog.Binary(), again.Binary())
}
