// Package cpu implements the processor and assembler for the LS-8 system.
//
// The CPU consists of a program counter (PC), a stack pointer (SP), eight 8-bit
// general-purpose registers (r0-r7), an ALU, and 256 bytes of memory shared by
// code, data and the downward-growing stack.
//
// Each instruction is a single byte whose top two bits give the number of
// operand bytes that follow it. Programs are exchanged as text, one binary
// literal per line, and may be written in a small assembly language.
package cpu
