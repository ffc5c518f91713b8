// Package emu provides a reference i386 emulator backing the operand
// value and address queries of the insts package.
package emu

import "github.com/gdisneyleugers/vdebug/insts"

// RegFile is the i386 register slab, addressed by the same register
// ids the decoder emits. Sub-register views (al, ah, ax, ...) are
// selected by the meta bits of the id.
type RegFile struct {
	regs [insts.RegCount]uint64
}

// metaView splits a meta field into its bit shift and width.
func metaView(meta int) (shift, bits uint) {
	return uint(meta>>24) & 0xff, uint(meta>>16) & 0xff
}

// Get reads a register, extracting the sub-register view when the id
// carries meta bits.
func (r *RegFile) Get(reg int) uint64 {
	idx := insts.RegIndex(reg)
	if idx >= insts.RegCount {
		return 0
	}
	v := r.regs[idx]
	if meta := insts.RegMeta(reg); meta != 0 {
		shift, bits := metaView(meta)
		v = v >> shift & (1<<bits - 1)
	}
	return v
}

// Set writes a register. With meta bits, only the sub-register view's
// bits change; the rest of the register is preserved.
func (r *RegFile) Set(reg int, v uint64) {
	idx := insts.RegIndex(reg)
	if idx >= insts.RegCount {
		return
	}
	meta := insts.RegMeta(reg)
	if meta == 0 {
		r.regs[idx] = v
		return
	}
	shift, bits := metaView(meta)
	mask := uint64(1<<bits-1) << shift
	r.regs[idx] = r.regs[idx]&^mask | v<<shift&mask
}
