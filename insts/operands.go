package insts

import (
	"fmt"
	"strconv"
	"strings"
)

// Operand is one decoded operand of an instruction. Value and Addr
// report false when the query needs an emulator and none was given.
// SetValue reports whether the value was written; immediate and
// pc-relative operands never accept a write.
type Operand interface {
	Repr(op *Opcode) string
	Render(c Canvas, op *Opcode, idx int)
	Value(op *Opcode, emu Emulator) (uint64, bool)
	SetValue(op *Opcode, emu Emulator, v uint64) bool
	Addr(op *Opcode, emu Emulator) (uint64, bool)
	IsDeref() bool
	Equals(other Operand) bool
	Size() int

	// setRegCtx installs the register-name context used at render
	// time, keeping the operand sum closed to this package.
	setRegCtx(ctx *RegisterContext)
}

// defaultRegCtx backs operands constructed outside a Disasm call.
var defaultRegCtx = &RegisterContext{}

func regCtxOrDefault(c *RegisterContext) *RegisterContext {
	if c == nil {
		return defaultRegCtx
	}
	return c
}

// Display labels for operand sizes.
var sizeNames = [17]string{
	1:  "byte",
	2:  "word",
	4:  "dword",
	8:  "qword",
	16: "oword",
}

func hexAddr(v uint64) string { return fmt.Sprintf("0x%.8x", v) }

func segBase(op *Opcode, emu Emulator) uint64 {
	base, _ := emu.GetSegmentInfo(op)
	return base
}

// RegOper is a bare register operand.
type RegOper struct {
	Reg   int
	Tsize int

	regCtx *RegisterContext
}

func (o *RegOper) Repr(*Opcode) string { return regCtxOrDefault(o.regCtx).GetRegisterName(o.Reg) }

func (o *RegOper) Render(c Canvas, op *Opcode, idx int) {
	// Hints name addresses, not registers: the register name renders
	// regardless of any hint on this operand slot.
	c.AddNameText(regCtxOrDefault(o.regCtx).GetRegisterName(o.Reg), "registers")
}

func (o *RegOper) Value(op *Opcode, emu Emulator) (uint64, bool) {
	if emu == nil {
		return 0, false
	}
	return emu.GetRegister(o.Reg), true
}

func (o *RegOper) SetValue(op *Opcode, emu Emulator, v uint64) bool {
	emu.SetRegister(o.Reg, v)
	return true
}

func (o *RegOper) Addr(*Opcode, Emulator) (uint64, bool) { return 0, false }
func (o *RegOper) IsDeref() bool { return false }
func (o *RegOper) Size() int { return o.Tsize }

func (o *RegOper) setRegCtx(c *RegisterContext) { o.regCtx = c }

func (o *RegOper) Equals(other Operand) bool {
	b, ok := other.(*RegOper)
	return ok && b.Reg == o.Reg && b.Tsize == o.Tsize
}

// Opcode classes whose byte immediates display sign-extended to the
// destination width.
var sextendOps = map[Op]bool{
	InsAdd: true,
	InsSub: true,
	InsAnd: true,
}

// ImmOper is an immediate operand. The stored value is always the raw
// decoded immediate; sign extension happens only for display.
type ImmOper struct {
	Imm   uint64
	Tsize int

	regCtx *RegisterContext
}

func (o *ImmOper) Repr(op *Opcode) string {
	ival := o.Imm
	if o.Tsize == 1 && op != nil && sextendOps[op.Op] && len(op.Opers) > 0 {
		if t := op.Opers[0].Size(); t != o.Tsize {
			ival = SignExtend(ival, o.Tsize, t)
		}
	}
	if ival > 4096 {
		return hexAddr(ival)
	}
	return strconv.FormatUint(ival, 10)
}

func (o *ImmOper) Render(c Canvas, op *Opcode, idx int) {
	value := o.Imm
	if hint := c.SymHint(op.VA, idx); hint != "" {
		c.AddVaText(hint, value)
	} else if c.IsValidPointer(value) {
		c.AddVaText(addrToName(c, value), value)
	} else {
		c.AddNameText(o.Repr(op), "")
	}
}

func (o *ImmOper) Value(*Opcode, Emulator) (uint64, bool) { return o.Imm, true }

func (o *ImmOper) SetValue(*Opcode, Emulator, uint64) bool { return false }

func (o *ImmOper) Addr(*Opcode, Emulator) (uint64, bool) { return 0, false }
func (o *ImmOper) IsDeref() bool { return false }
func (o *ImmOper) Size() int { return o.Tsize }

func (o *ImmOper) setRegCtx(c *RegisterContext) { o.regCtx = c }

func (o *ImmOper) Equals(other Operand) bool {
	b, ok := other.(*ImmOper)
	return ok && b.Imm == o.Imm && b.Tsize == o.Tsize
}

// PcRelOper is an eip-relative offset, used by jmp/call style
// instructions. The target is relative to the end of the instruction.
type PcRelOper struct {
	Imm   int64
	Tsize int

	regCtx *RegisterContext
}

func (o *PcRelOper) target(op *Opcode) uint64 {
	return uint64(int64(op.VA) + int64(op.Size) + o.Imm)
}

func (o *PcRelOper) Repr(op *Opcode) string { return hexAddr(o.target(op)) }

func (o *PcRelOper) Render(c Canvas, op *Opcode, idx int) {
	value := o.target(op)
	if hint := c.SymHint(op.VA, idx); hint != "" {
		c.AddVaText(hint, value)
	} else {
		c.AddVaText(addrToName(c, value), value)
	}
}

func (o *PcRelOper) Value(op *Opcode, emu Emulator) (uint64, bool) {
	return o.target(op), true
}

func (o *PcRelOper) SetValue(*Opcode, Emulator, uint64) bool { return false }

func (o *PcRelOper) Addr(*Opcode, Emulator) (uint64, bool) { return 0, false }
func (o *PcRelOper) IsDeref() bool { return false }
func (o *PcRelOper) Size() int { return o.Tsize }

func (o *PcRelOper) setRegCtx(c *RegisterContext) { o.regCtx = c }

func (o *PcRelOper) Equals(other Operand) bool {
	b, ok := other.(*PcRelOper)
	return ok && b.Imm == o.Imm && b.Tsize == o.Tsize
}

// RegMemOper dereferences a register plus optional displacement.
type RegMemOper struct {
	Reg   int
	Tsize int
	Disp  int64

	regCtx *RegisterContext
}

func (o *RegMemOper) Repr(*Opcode) string {
	r := regCtxOrDefault(o.regCtx).GetRegisterName(o.Reg)
	if o.Disp > 0 {
		return fmt.Sprintf("%s [%s + %d]", sizeNames[o.Tsize], r, o.Disp)
	}
	if o.Disp < 0 {
		return fmt.Sprintf("%s [%s - %d]", sizeNames[o.Tsize], r, -o.Disp)
	}
	return fmt.Sprintf("%s [%s]", sizeNames[o.Tsize], r)
}

func (o *RegMemOper) Render(c Canvas, op *Opcode, idx int) {
	c.AddNameText(sizeNames[o.Tsize], "")
	c.AddText(" [")
	c.AddNameText(regCtxOrDefault(o.regCtx).GetRegisterName(o.Reg), "registers")
	if hint := c.SymHint(op.VA, idx); hint != "" {
		c.AddText(" + ")
		c.AddNameText(hint, "")
	} else if o.Disp > 0 {
		c.AddText(" + ")
		c.AddNameText(strconv.FormatInt(o.Disp, 10), "")
	} else if o.Disp < 0 {
		c.AddText(" - ")
		c.AddNameText(strconv.FormatInt(-o.Disp, 10), "")
	}
	c.AddText("]")
}

func (o *RegMemOper) Value(op *Opcode, emu Emulator) (uint64, bool) {
	addr, ok := o.Addr(op, emu)
	if !ok {
		return 0, false
	}
	v, err := emu.ReadMemValue(addr, o.Tsize)
	return v, err == nil
}

func (o *RegMemOper) SetValue(op *Opcode, emu Emulator, v uint64) bool {
	addr, ok := o.Addr(op, emu)
	if !ok {
		return false
	}
	return emu.WriteMemValue(addr, v, o.Tsize) == nil
}

func (o *RegMemOper) Addr(op *Opcode, emu Emulator) (uint64, bool) {
	if emu == nil {
		return 0, false
	}
	return segBase(op, emu) + emu.GetRegister(o.Reg) + uint64(o.Disp), true
}

func (o *RegMemOper) IsDeref() bool { return true }
func (o *RegMemOper) Size() int { return o.Tsize }

func (o *RegMemOper) setRegCtx(c *RegisterContext) { o.regCtx = c }

func (o *RegMemOper) Equals(other Operand) bool {
	b, ok := other.(*RegMemOper)
	return ok && b.Reg == o.Reg && b.Disp == o.Disp && b.Tsize == o.Tsize
}

// ImmMemOper dereferences an absolute address.
type ImmMemOper struct {
	Imm   uint64
	Tsize int

	regCtx *RegisterContext
}

func (o *ImmMemOper) Repr(*Opcode) string {
	return fmt.Sprintf("%s [%s]", sizeNames[o.Tsize], hexAddr(o.Imm))
}

func (o *ImmMemOper) Render(c Canvas, op *Opcode, idx int) {
	c.AddNameText(sizeNames[o.Tsize], "")
	c.AddText(" [")
	if hint := c.SymHint(op.VA, idx); hint != "" {
		c.AddVaText(hint, o.Imm)
	} else {
		c.AddVaText(addrToName(c, o.Imm), o.Imm)
	}
	c.AddText("]")
}

func (o *ImmMemOper) Value(op *Opcode, emu Emulator) (uint64, bool) {
	if emu == nil {
		return 0, false
	}
	addr, _ := o.Addr(op, emu)
	v, err := emu.ReadMemValue(addr, o.Tsize)
	return v, err == nil
}

func (o *ImmMemOper) SetValue(op *Opcode, emu Emulator, v uint64) bool {
	addr, _ := o.Addr(op, emu)
	return emu.WriteMemValue(addr, v, o.Tsize) == nil
}

// Addr resolves without an emulator: the raw address is known at
// decode time, segmentation is only applied when one is supplied.
func (o *ImmMemOper) Addr(op *Opcode, emu Emulator) (uint64, bool) {
	if emu == nil {
		return o.Imm, true
	}
	return segBase(op, emu) + o.Imm, true
}

func (o *ImmMemOper) IsDeref() bool { return true }
func (o *ImmMemOper) Size() int { return o.Tsize }

func (o *ImmMemOper) setRegCtx(c *RegisterContext) { o.regCtx = c }

func (o *ImmMemOper) Equals(other Operand) bool {
	b, ok := other.(*ImmMemOper)
	return ok && b.Imm == o.Imm && b.Tsize == o.Tsize
}

// SibOper is a scale-index-base memory operand. Reg and Index are
// RegNone when absent; Imm carries the absolute displacement that
// replaces the base register in the mod=0, base=5 encoding.
type SibOper struct {
	Tsize  int
	Reg    int
	Index  int
	Scale  int
	Disp   int64
	Imm    uint64
	HasImm bool

	regCtx *RegisterContext
}

func (o *SibOper) Repr(*Opcode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [", sizeNames[o.Tsize])

	if o.Reg != RegNone {
		b.WriteString(regCtxOrDefault(o.regCtx).GetRegisterName(o.Reg))
	}
	if o.HasImm {
		b.WriteString(hexAddr(o.Imm))
	}
	if o.Index != RegNone {
		fmt.Fprintf(&b, " + %s", regCtxOrDefault(o.regCtx).GetRegisterName(o.Index))
		if o.Scale != 1 {
			fmt.Fprintf(&b, " * %d", o.Scale)
		}
	}
	if o.Disp != 0 {
		fmt.Fprintf(&b, " + %d", o.Disp)
	}

	b.WriteString("]")
	return b.String()
}

func (o *SibOper) Render(c Canvas, op *Opcode, idx int) {
	c.AddNameText(sizeNames[o.Tsize], "")
	c.AddText(" [")
	if o.HasImm {
		c.AddVaText(addrToName(c, o.Imm), o.Imm)
	}
	if o.Reg != RegNone {
		c.AddNameText(regCtxOrDefault(o.regCtx).GetRegisterName(o.Reg), "registers")
	}
	if o.Index != RegNone {
		c.AddText(" + ")
		c.AddNameText(regCtxOrDefault(o.regCtx).GetRegisterName(o.Index), "registers")
		if o.Scale != 1 {
			c.AddText(" * ")
			c.AddNameText(strconv.Itoa(o.Scale), "")
		}
	}
	if hint := c.SymHint(op.VA, idx); hint != "" {
		c.AddText(" + ")
		c.AddNameText(hint, "")
	} else if o.Disp != 0 {
		c.AddText(" + ")
		c.AddNameText(strconv.FormatInt(o.Disp, 10), "")
	}
	c.AddText("]")
}

func (o *SibOper) Value(op *Opcode, emu Emulator) (uint64, bool) {
	addr, ok := o.Addr(op, emu)
	if !ok {
		return 0, false
	}
	v, err := emu.ReadMemValue(addr, o.Tsize)
	return v, err == nil
}

func (o *SibOper) SetValue(op *Opcode, emu Emulator, v uint64) bool {
	addr, ok := o.Addr(op, emu)
	if !ok {
		return false
	}
	return emu.WriteMemValue(addr, v, o.Tsize) == nil
}

func (o *SibOper) Addr(op *Opcode, emu Emulator) (uint64, bool) {
	if emu == nil {
		return 0, false
	}
	var ret uint64
	if o.HasImm {
		ret += o.Imm
	}
	if o.Reg != RegNone {
		ret += emu.GetRegister(o.Reg)
	}
	if o.Index != RegNone {
		ret += emu.GetRegister(o.Index) * uint64(o.Scale)
	}
	ret += segBase(op, emu)
	return ret + uint64(o.Disp), true
}

// base returns the table base for jump-table analysis: a non-zero
// absolute term wins over the base register, which is what the
// scale==4 switch-case pattern encodes.
func (o *SibOper) base(emu Emulator) (uint64, bool) {
	if o.HasImm && o.Imm != 0 {
		return o.Imm, true
	}
	if emu != nil && o.Reg != RegNone {
		return emu.GetRegister(o.Reg), true
	}
	return 0, false
}

func (o *SibOper) IsDeref() bool { return true }
func (o *SibOper) Size() int { return o.Tsize }

func (o *SibOper) setRegCtx(c *RegisterContext) { o.regCtx = c }

func (o *SibOper) Equals(other Operand) bool {
	b, ok := other.(*SibOper)
	return ok && b.Reg == o.Reg && b.Index == o.Index && b.Scale == o.Scale &&
		b.Disp == o.Disp && b.Imm == o.Imm && b.HasImm == o.HasImm &&
		b.Tsize == o.Tsize
}
