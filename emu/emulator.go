package emu

import (
	"fmt"

	"github.com/gdisneyleugers/vdebug/insts"
)

// Emulator implements insts.Emulator over a register file and a
// sparse memory. Segmentation is flat: every segment has base zero
// unless configured otherwise.
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	segBase uint64
	segSize uint64
}

// Option configures an Emulator.
type Option func(*Emulator)

// WithRegister presets a register value.
func WithRegister(reg int, v uint64) Option {
	return func(e *Emulator) {
		e.regFile.Set(reg, v)
	}
}

// WithMem copies data into memory at addr.
func WithMem(addr uint64, data []byte) Option {
	return func(e *Emulator) {
		e.memory.WriteBytes(addr, data)
	}
}

// WithSegment sets the base and size reported for every segment.
func WithSegment(base, size uint64) Option {
	return func(e *Emulator) {
		e.segBase = base
		e.segSize = size
	}
}

// NewEmulator creates an emulator with zeroed registers and empty
// memory.
func NewEmulator(opts ...Option) *Emulator {
	e := &Emulator{
		regFile: &RegFile{},
		memory:  NewMemory(),
		segSize: 0xffffffff,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// GetRegister reads a register, honoring sub-register meta views.
func (e *Emulator) GetRegister(reg int) uint64 {
	return e.regFile.Get(reg)
}

// SetRegister writes a register, honoring sub-register meta views.
func (e *Emulator) SetRegister(reg int, v uint64) {
	e.regFile.Set(reg, v)
}

// ReadMemValue reads a little-endian value of size bytes.
func (e *Emulator) ReadMemValue(addr uint64, size int) (uint64, error) {
	if !e.memory.IsMapped(addr) {
		return 0, fmt.Errorf("read of unmapped address 0x%.8x", addr)
	}
	var v uint64
	for i := size - 1; i >= 0; i-- {
		v = v<<8 | uint64(e.memory.Read8(addr+uint64(i)))
	}
	return v, nil
}

// WriteMemValue writes a little-endian value of size bytes.
func (e *Emulator) WriteMemValue(addr uint64, v uint64, size int) error {
	for i := 0; i < size; i++ {
		e.memory.Write8(addr+uint64(i), byte(v>>(8*uint(i))))
	}
	return nil
}

// GetSegmentInfo returns the configured flat segment for any opcode.
func (e *Emulator) GetSegmentInfo(op *insts.Opcode) (uint64, uint64) {
	return e.segBase, e.segSize
}

// IsValidPointer reports whether addr falls on a mapped page.
func (e *Emulator) IsValidPointer(addr uint64) bool {
	return e.memory.IsMapped(addr)
}
