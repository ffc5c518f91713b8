package insts

import (
	"fmt"
	"strings"
)

// Instruction-level semantic flags.
const (
	IFNoFall = 0x01
	IFPriv   = 0x02
	IFCall   = 0x04
	IFBranch = 0x08
	IFRet    = 0x10
)

// Branch edge flags.
const (
	BRProc = 1 << iota
	BRCond
	BRDeref
	BRTable
	BRFall
)

// Instruction prefix bits.
const (
	PrefixLock     = 0x0002
	PrefixRepNZ    = 0x0004
	PrefixRep      = 0x0010
	PrefixRepSIMD  = 0x0020
	PrefixOpSize   = 0x0040
	PrefixAddrSize = 0x0080
	PrefixSIMD     = 0x0100
	PrefixCS       = 0x0200
	PrefixSS       = 0x0400
	PrefixDS       = 0x0800
	PrefixES       = 0x1000
	PrefixFS       = 0x2000
	PrefixGS       = 0x4000
)

// Printable prefixes, in render order.
var prefixNames = []struct {
	bit  uint32
	name string
}{
	{PrefixLock, "lock"},
	{PrefixRepNZ, "repnz"},
	{PrefixRep, "rep"},
	{PrefixCS, "cs"},
	{PrefixSS, "ss"},
	{PrefixDS, "ds"},
	{PrefixES, "es"},
	{PrefixFS, "fs"},
	{PrefixGS, "gs"},
}

// Opcode is one decoded instruction. Records are value objects:
// created by a single Disasm call and never mutated afterward.
type Opcode struct {
	VA       uint64
	Op       Op
	Mnem     string
	Prefixes uint32
	Size     int
	Opers    []Operand
	IFlags   uint32
}

// Branch is one possible control-flow edge out of an instruction.
type Branch struct {
	VA    uint64
	Flags uint32
}

// Branches enumerates the possible control-flow targets of this
// instruction. With an emulator, dereferenced targets (including
// scale-4 jump tables) resolve to concrete addresses.
func (o *Opcode) Branches(emu Emulator) []Branch {
	var ret []Branch

	var flags uint32
	addb := false

	// For a conditional branch even the fallthrough is conditional.
	if o.Op == InsBranchCC {
		flags |= BRCond
		addb = true
	}

	if o.IFlags&IFNoFall == 0 {
		ret = append(ret, Branch{o.VA + uint64(o.Size), flags | BRFall})
	}

	if len(o.Opers) == 0 {
		return ret
	}

	switch o.Op {
	case InsCall:
		flags |= BRProc
		addb = true
	case InsCallCC:
		flags |= BRProc | BRCond
		addb = true
	case InsBranch:
		if sib, ok := o.Opers[0].(*SibOper); ok && sib.Scale == 4 {
			// Scale-4 jump table. Without an emulator, report the
			// table base itself; with one, walk the table while the
			// slots keep dereferencing to valid pointers.
			base, haveBase := sib.base(emu)
			if emu == nil {
				if haveBase {
					ret = append(ret, Branch{base, flags | BRDeref | BRTable})
				}
			} else if haveBase {
				for {
					dest, err := emu.ReadMemValue(base, sib.Tsize)
					if err != nil || !emu.IsValidPointer(dest) {
						break
					}
					ret = append(ret, Branch{dest, BRCond})
					base += uint64(sib.Tsize)
				}
			}
		} else {
			addb = true
		}
	}

	if addb {
		oper0 := o.Opers[0]
		var tova uint64
		var ok bool
		if oper0.IsDeref() {
			flags |= BRDeref
			tova, ok = oper0.Addr(o, emu)
		} else {
			tova, ok = oper0.Value(o, emu)
		}
		if ok {
			ret = append(ret, Branch{tova, flags})
		}
	}

	return ret
}

// Render writes this opcode to the canvas: prefix label, mnemonic,
// then the comma-separated operands.
func (o *Opcode) Render(c Canvas) {
	if o.Prefixes != 0 {
		if pfx := o.prefixName(); pfx != "" {
			c.AddNameText(pfx+": ", pfx)
		}
	}

	c.AddNameText(o.Mnem, "mnemonic")
	c.AddText(" ")

	last := len(o.Opers) - 1
	for i, oper := range o.Opers {
		oper.Render(c, o, i)
		if i != last {
			c.AddText(",")
		}
	}
}

func (o *Opcode) prefixName() string {
	var parts []string
	for _, p := range prefixNames {
		if o.Prefixes&p.bit != 0 {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "")
}

// String renders the opcode without symbol resolution.
func (o *Opcode) String() string {
	var b strings.Builder
	if o.Prefixes != 0 {
		if pfx := o.prefixName(); pfx != "" {
			fmt.Fprintf(&b, "%s: ", pfx)
		}
	}
	b.WriteString(o.Mnem)
	for i, oper := range o.Opers {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(",")
		}
		b.WriteString(oper.Repr(o))
	}
	return b.String()
}
