// Package insts provides i386 (IA-32) instruction decoding.
//
// This package implements decoding of x86 machine code into structured
// opcode representations. Decoding is a pure function over a byte slice:
// prefixes are absorbed, the opcode-table forest is walked to a terminal
// entry, ModR/M and SIB bytes are parsed when present, and one operand is
// materialized per addressing method named by the table entry.
//
// Usage:
//
//	d := insts.NewDisasm()
//	op, err := d.Disasm([]byte{0xb8, 0x44, 0x33, 0x22, 0x11}, 0, 0x1000)
//	fmt.Println(op) // mov eax,0x11223344
//
// A Disasm value is read-only after construction and safe for concurrent
// use from multiple goroutines.
package insts
