package cpu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Word is a single byte of a program, with its source location.
type Word struct {
	LineNo  int    // Source line of the word; zero if unknown.
	Value   uint8  // Byte to load into memory.
	Comment string // Optional comment, written after the literal.
}

// Program is a memory image, in load order from address zero.
type Program struct {
	Words []Word
}

// ParseProgram reads a program in the LS-8 text format.
//
// Each non-blank line holds one byte, as a binary literal of up to eight
// digits. Anything after a '#' is a comment.
func ParseProgram(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		text, comment, _ := strings.Cut(line, "#")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		if len(text) > 8 {
			err = ErrParseBinary(text)
			return
		}
		var value uint64
		value, err = strconv.ParseUint(text, 2, 8)
		if err != nil {
			err = ErrParseBinary(text)
			return
		}

		if len(prog.Words) == MEMORY_SIZE {
			err = ErrProgramSize
			return
		}

		prog.Words = append(prog.Words, Word{
			LineNo:  lineno,
			Value:   uint8(value),
			Comment: strings.TrimSpace(comment),
		})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, len(prog.Words))
	for n, word := range prog.Words {
		bins[n] = word.Value
	}

	return
}

// LineNo returns the source line of the word at a memory address,
// or zero if the address is outside of the program.
func (prog *Program) LineNo(address uint16) int {
	if int(address) >= len(prog.Words) {
		return 0
	}

	return prog.Words[address].LineNo
}

// WriteTo writes the program in the LS-8 text format.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)

	for _, word := range prog.Words {
		var count int
		if len(word.Comment) == 0 {
			count, err = fmt.Fprintf(bw, "%08b\n", word.Value)
		} else {
			count, err = fmt.Fprintf(bw, "%08b # %v\n", word.Value, word.Comment)
		}
		n += int64(count)
		if err != nil {
			return
		}
	}

	err = bw.Flush()

	return
}
