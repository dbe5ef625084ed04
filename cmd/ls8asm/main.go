// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrUsage  = errors.New(f("usage: ls8asm [-v] [-o out.ls8] [-D NAME=VALUE]... source.asm"))
	ErrDefine = errors.New(f("define must be NAME=VALUE"))
)

// run executes the command, and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "ls8asm: ", 0)

	var output string
	var verbose bool

	asm := &cpu.Assembler{}

	flags := flag.NewFlagSet("ls8asm", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&output, "o", "-", "Program output")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.Func("D", "Predefine an equate, as NAME=VALUE", func(text string) error {
		name, value, ok := strings.Cut(text, "=")
		if !ok || len(name) == 0 {
			return ErrDefine
		}
		asm.Predefine(name, value)
		return nil
	})
	flags.Usage = func() {
		logger.Print(ErrUsage)
		flags.PrintDefaults()
	}

	err := flags.Parse(args)
	if err != nil {
		return 2
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}

	source := flags.Arg(0)
	asm.Verbose = verbose

	inf, err := os.Open(source)
	if err != nil {
		logger.Print(err)
		return 1
	}
	defer inf.Close()

	prog, err := asm.Parse(inf)
	if err != nil {
		logger.Printf("%v: %v", source, err)
		return 1
	}

	out := stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			logger.Print(err)
			return 1
		}
		defer ouf.Close()
		out = ouf
	}

	_, err = prog.WriteTo(out)
	if err != nil {
		logger.Printf("%v: %v", output, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
