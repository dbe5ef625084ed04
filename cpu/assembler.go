// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":      "0",
	"STACK_TOP":   fmt.Sprintf("%#x", STACK_TOP),
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
}

// link is a reference to a label, resolved once all labels are known.
type link struct {
	index  int    // Index of the word to patch.
	label  string // Label to resolve.
	lineno int    // Line of the reference.
	line   string // Text of the reference.
}

// Assembler is a single pass assembler for the LS-8 system.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Words   []Word // List of generated words.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	links []link
}

// Predefine defines a new equate or redefines an existing equate,
// visible to every following Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var (
	reIdentifier = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reParen      = regexp.MustCompile(`\$\([^\$]*\)`)
)

// valueOf returns the byte value of a numeric word.
// Negative values are stored as two's complement.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	v64, err := strconv.ParseInt(word, 0, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 0xff || v64 < -0x80 {
		err = ErrImmediateRange
		return
	}

	value = uint8(v64)
	return
}

// registerOf returns the register index of a word.
func (asm *Assembler) registerOf(word string) (index uint8, err error) {
	if len(word) == 2 && (word[0] == 'r' || word[0] == 'R') && word[1] >= '0' && word[1] < '0'+REGISTER_COUNT {
		index = word[1] - '0'
		return
	}

	err = ErrRegisterInvalid
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, address := range asm.Label {
		pred[key] = starlark.MakeInt(address)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// stripComment removes a ';' comment, ignoring ';' in character literals.
func stripComment(text string) string {
	quoted := reCharacter.FindAllStringIndex(text, -1)
	for n, r := range text {
		if r != ';' {
			continue
		}
		inside := slices.ContainsFunc(quoted, func(span []int) bool {
			return n > span[0] && n < span[1]-1
		})
		if !inside {
			return text[:n]
		}
	}
	return text
}

// currentAddress gets the address of the next generated word.
func (asm *Assembler) currentAddress() int {
	return len(asm.Words)
}

// parseLine expands a single line into words, and handles equates and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 || !reIdentifier.MatchString(words[1]) {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !reIdentifier.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddress()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	for n, word := range words[1:] {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[1+n] = equate
		}
	}

	return
}

// emitValue appends a word holding a value, or a link to a label.
func (asm *Assembler) emitValue(word string, comment string, lineno int, line string) (err error) {
	index := len(asm.Words)
	if index == MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	var value uint8
	if reIdentifier.MatchString(word) {
		asm.links = append(asm.links, link{index: index, label: word, lineno: lineno, line: line})
	} else {
		value, err = asm.valueOf(word)
		if err != nil {
			return
		}
	}

	asm.Words = append(asm.Words, Word{LineNo: lineno, Value: value, Comment: comment})
	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int, line string) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	comment := strings.Join(words, " ")

	// .byte VALUE...
	if words[0] == ".byte" || strings.EqualFold(words[0], "db") {
		if len(words) < 2 {
			err = ErrDataMissing
			return
		}
		for n, word := range words[1:] {
			if n > 0 {
				comment = ""
			}
			err = asm.emitValue(word, comment, lineno, line)
			if err != nil {
				return
			}
		}
		return
	}

	op, ok := LookupOpcode(words[0])
	if !ok || !op.Executable() {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]
	switch {
	case len(args) > op.Operands():
		err = ErrOpcodeExtraArgs
		return
	case len(args) < op.Operands():
		err = ErrOpcodeMissingArgs
		return
	}

	if len(asm.Words)+1+len(args) > MEMORY_SIZE {
		err = ErrProgramSize
		return
	}

	asm.Words = append(asm.Words, Word{LineNo: lineno, Value: uint8(op), Comment: comment})

	for n, arg := range args {
		// LDI is the only instruction with an immediate operand.
		if op == OP_LDI && n == 1 {
			err = asm.emitValue(arg, "", lineno, line)
			if err != nil {
				return
			}
			continue
		}

		var reg uint8
		reg, err = asm.registerOf(arg)
		if err != nil {
			return
		}
		asm.Words = append(asm.Words, Word{LineNo: lineno, Value: reg})
	}

	return
}

// Parse parses an input stream of assembly text into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Words = asm.Words[:0]
	asm.links = asm.links[:0]
	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno, line)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for _, ln := range asm.links {
		address, ok := asm.Label[ln.label]
		if !ok {
			lineno = ln.lineno
			line = ln.line
			err = ErrLabelMissing(ln.label)
			return
		}
		if address >= MEMORY_SIZE {
			lineno = ln.lineno
			line = ln.line
			err = ErrImmediateRange
			return
		}
		asm.Words[ln.index].Value = uint8(address)
	}

	prog = &Program{
		Words: slices.Clone(asm.Words),
	}

	return
}
