// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

// ErrUsage is reported when the command line is malformed.
var ErrUsage = errors.New(f("usage: ls8 [-v] [-t] program.ls8"))

// run executes the command, and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "ls8: ", 0)

	var verbose bool
	var trace bool

	flags := flag.NewFlagSet("ls8", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.BoolVar(&trace, "t", false, "Trace each instruction to stderr")
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

	filename := flags.Arg(0)

	inf, err := os.Open(filename)
	if err != nil {
		logger.Print(err)
		return 1
	}
	defer inf.Close()

	prog, err := cpu.ParseProgram(inf)
	if err != nil {
		logger.Printf("%v: %v", filename, err)
		return 1
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Cpu.Output = stdout
	if trace {
		emu.Trace = stderr
	}

	err = emu.Reset()
	if err != nil {
		logger.Printf("%v: %v", filename, err)
		return 1
	}

	err = emu.Run()
	if err != nil {
		logger.Printf("%v: %v", filename, err)
		if verbose {
			logger.Printf("\n%v", emu.Cpu.String())
		}
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
