package insts

import "fmt"

// InvalidInstructionError is returned when the bytes at the decode
// offset do not form a valid instruction, including when the buffer
// ends mid-instruction.
type InvalidInstructionError struct {
	VA  uint64
	Err error
}

func (e *InvalidInstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid instruction at 0x%.8x: %v", e.VA, e.Err)
	}
	return fmt.Sprintf("invalid instruction at 0x%.8x", e.VA)
}

func (e *InvalidInstructionError) Unwrap() error { return e.Err }

// i386Prefixes maps a prefix byte value to its prefix bit; a zero
// entry ends prefix absorption.
var i386Prefixes = [256]uint32{
	0xF0: PrefixLock,
	0xF2: PrefixRepNZ,
	0xF3: PrefixRep,
	0x2E: PrefixCS,
	0x36: PrefixSS,
	0x3E: PrefixDS,
	0x26: PrefixES,
	0x64: PrefixFS,
	0x65: PrefixGS,
	0x66: PrefixOpSize,
	0x67: PrefixAddrSize,
}

// Mnemonics marked privileged.
var privMnems = map[string]bool{
	"int": true, "in": true, "out": true,
	"insb": true, "outsb": true, "insd": true, "outsd": true,
	"vmcall": true, "vmlaunch": true, "vmresume": true, "vmxoff": true,
	"vmread": true, "vmwrite": true, "vmclear": true, "vmptrld": true,
	"vmptrst": true, "vmxon": true,
	"rsm": true, "lar": true, "lsl": true, "clts": true,
	"invd": true, "wbinvd": true, "wrmsr": true, "rdmsr": true,
	"sysexit": true, "lgdt": true, "lidt": true, "lmsw": true,
	"monitor": true, "mwait": true,
}

// iflagLookup maps semantic instruction classes to instruction flags.
var iflagLookup = map[Op]uint32{
	InsRet:      IFNoFall | IFRet,
	InsCall:     IFCall,
	InsCallCC:   IFCall,
	InsBranch:   IFNoFall | IFBranch,
	InsBranchCC: IFBranch,
}

type amethFunc func(buf []byte, offset, tsize int, prefixes uint32) (int, Operand, error)

// Disasm decodes i386 machine code. The zero offset of each call is
// independent: a Disasm holds only the table forest, register context
// and dispatcher map, all read-only after construction, so one value
// may be shared by any number of goroutines.
type Disasm struct {
	mode   Mode
	tables []Table
	regCtx *RegisterContext
	ameths [numAddrMeths]amethFunc
}

// NewDisasm creates a 32-bit mode i386 disassembler over the default
// opcode tables.
func NewDisasm() *Disasm {
	d := &Disasm{
		mode:   Mode32,
		tables: Tables86,
		regCtx: &RegisterContext{},
	}

	d.ameths[AddrMethA>>16] = d.amethA
	d.ameths[AddrMethC>>16] = d.amethC
	d.ameths[AddrMethD>>16] = d.amethD
	d.ameths[AddrMethE>>16] = d.amethE
	d.ameths[AddrMethM>>16] = d.amethE
	d.ameths[AddrMethN>>16] = d.amethN
	d.ameths[AddrMethQ>>16] = d.amethN
	d.ameths[AddrMethR>>16] = d.amethE
	d.ameths[AddrMethW>>16] = d.amethW
	d.ameths[AddrMethI>>16] = d.amethI
	d.ameths[AddrMethJ>>16] = d.amethJ
	d.ameths[AddrMethO>>16] = d.amethO
	d.ameths[AddrMethG>>16] = d.amethG
	d.ameths[AddrMethP>>16] = d.amethP
	d.ameths[AddrMethS>>16] = d.amethS
	d.ameths[AddrMethU>>16] = d.amethU
	d.ameths[AddrMethV>>16] = d.amethV
	d.ameths[AddrMethX>>16] = d.amethX
	d.ameths[AddrMethY>>16] = d.amethY

	return d
}

// calcTSize resolves an operand-type tag to a byte size under the
// working mode: the baseline mode, downgraded to 16-bit sizing when
// the operand-size prefix is present.
func (d *Disasm) calcTSize(opertype uint32, prefixes uint32) int {
	sizes, ok := operSize[opertype&typeTagMask]
	if !ok {
		panic(fmt.Sprintf("insts: no operand size for type %#x", opertype))
	}

	mode := d.mode
	if prefixes&PrefixOpSize != 0 {
		mode = Mode16
	}
	return sizes[mode]
}

// Disasm decodes the single instruction in buf at offset, residing at
// virtual address va.
func (d *Disasm) Disasm(buf []byte, offset int, va uint64) (*Opcode, error) {
	start := offset
	var prefixes uint32

	// Absorb prefixes. 0x66 followed by 0x0f stays in the stream: it
	// discriminates the SIMD opcode table rather than sizing operands.
	for {
		if offset >= len(buf) {
			return nil, &InvalidInstructionError{VA: va, Err: ErrTruncated}
		}
		b := buf[offset]
		p := i386Prefixes[b]
		if p == 0 {
			break
		}
		if b == 0x66 && offset+1 < len(buf) && buf[offset+1] == 0x0f {
			break
		}
		prefixes |= p
		offset++
	}

	// Walk the table forest to a terminal entry.
	tab := &d.tables[0]
	var desc *OpDesc
	for {
		if offset >= len(buf) {
			return nil, &InvalidInstructionError{VA: va, Err: ErrTruncated}
		}
		b := buf[offset]
		for b > tab.Max {
			tab = &d.tables[tab.Overflow]
		}

		idx := (int(b) - int(tab.Sub)) >> tab.Shift & int(tab.Mask)
		desc = &tab.Entries[idx]

		if desc.NextTable != 0 {
			next := &d.tables[desc.NextTable]
			// The 66 0f successor table presumes both bytes were
			// eaten; account for the extra one on this hop.
			if b == 0x66 && offset+1 < len(buf) && buf[offset+1] == 0x0f {
				offset++
			}
			offset++
			tab = next
			continue
		}

		// A full-byte table owns its final opcode byte; a narrower
		// mask means the byte encoded sub-bits still needed by the
		// operand parsers.
		if tab.Mask == 0xff {
			offset++
		}
		break
	}

	if desc.Op == InsInvalid {
		return nil, &InvalidInstructionError{VA: va}
	}

	op := &Opcode{
		VA:       va,
		Op:       desc.Op,
		Mnem:     desc.Mnem,
		Prefixes: prefixes,
	}

	operoffset := 0
	for i := 0; i < 3; i++ {
		operflags := desc.OperFlag(i)
		if operflags == 0 {
			break
		}

		addrtype := operflags & AddrMethMask
		tsize := d.calcTSize(operflags&OpTypeMask, prefixes)

		var osize int
		var oper Operand
		if addrtype == 0 {
			oper = d.ameth0(operflags, desc.OperVal(i), tsize)
		} else {
			ameth := d.ameths[addrtype>>16]
			if ameth == nil {
				panic(fmt.Sprintf("insts: unimplemented addressing method %#x", addrtype))
			}

			var err error
			// Immediates chain sequentially after whatever the
			// ModR/M-based operands consumed; every other method
			// re-reads from the ModR/M position itself.
			if addrtype == AddrMethI || addrtype == AddrMethJ {
				osize, oper, err = ameth(buf, offset+operoffset, tsize, prefixes)
			} else {
				osize, oper, err = ameth(buf, offset, tsize, prefixes)
			}
			if err != nil {
				return nil, &InvalidInstructionError{VA: va, Err: err}
			}
		}

		if oper != nil {
			oper.setRegCtx(d.regCtx)
			op.Opers = append(op.Opers, oper)
		}
		operoffset += osize
	}

	op.Size = (offset - start) + operoffset

	op.IFlags = iflagLookup[desc.Op]
	if privMnems[desc.Mnem] {
		op.IFlags |= IFPriv
	}

	return op, nil
}

// ameth0 materializes an operand embedded in the table entry.
func (d *Disasm) ameth0(operflags, operval uint32, tsize int) Operand {
	switch {
	case operflags&OpReg != 0:
		return &RegOper{Reg: int(operval), Tsize: tsize}
	case operflags&OpImm != 0:
		return &ImmOper{Imm: uint64(operval), Tsize: tsize}
	}
	panic(fmt.Sprintf("insts: bad embedded operand flags %#x", operflags))
}

// amethA parses a far pointer: a tsize-byte offset followed by a
// segment selector word. The selector is counted but not materialized.
func (d *Disasm) amethA(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	imm, err := ParseBytes(buf, offset, tsize, false)
	if err != nil {
		return 0, nil, err
	}
	if _, err := ParseBytes(buf, offset+tsize, 2, false); err != nil {
		return 0, nil, err
	}
	return tsize + 2, &ImmOper{Imm: imm, Tsize: tsize}, nil
}

func (d *Disasm) amethE(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	return d.extendedParseModRM(buf, offset, tsize, 0)
}

func (d *Disasm) amethN(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	return d.extendedParseModRM(buf, offset, tsize, RegMM0)
}

func (d *Disasm) amethW(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	return d.extendedParseModRM(buf, offset, tsize, RegXMM0)
}

func (d *Disasm) amethI(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	imm, err := ParseBytes(buf, offset, tsize, false)
	if err != nil {
		return 0, nil, err
	}
	return tsize, &ImmOper{Imm: imm, Tsize: tsize}, nil
}

func (d *Disasm) amethJ(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	imm, err := ParseBytes(buf, offset, tsize, true)
	if err != nil {
		return 0, nil, err
	}
	return tsize, &PcRelOper{Imm: int64(imm), Tsize: tsize}, nil
}

// amethO parses an absolute displacement, which stays 4 bytes in
// 32-bit mode regardless of operand sizing.
func (d *Disasm) amethO(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	imm, err := ParseBytes(buf, offset, 4, false)
	if err != nil {
		return 0, nil, err
	}
	return 4, &ImmMemOper{Imm: imm, Tsize: tsize}, nil
}

// amethG materializes the ModR/M reg field as a general register,
// rewriting byte and word sizes to their sub-register views. The
// ModR/M byte is accounted for by the table walk, so this consumes
// nothing.
func (d *Disasm) amethG(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	if offset >= len(buf) {
		return 0, nil, fmt.Errorf("%w: missing modrm byte", ErrTruncated)
	}
	_, reg, _ := parseModRM(buf[offset])
	if tsize == 1 {
		reg = byteRegOffset(reg)
	} else if tsize == 2 {
		reg |= MetaLow16
	}
	return 0, &RegOper{Reg: reg, Tsize: tsize}, nil
}

// regFromModRM materializes the ModR/M reg field in an alternate
// register bank.
func (d *Disasm) regFromModRM(buf []byte, offset, tsize, bank int) (int, Operand, error) {
	if offset >= len(buf) {
		return 0, nil, fmt.Errorf("%w: missing modrm byte", ErrTruncated)
	}
	_, reg, _ := parseModRM(buf[offset])
	return 0, &RegOper{Reg: reg + bank, Tsize: tsize}, nil
}

func (d *Disasm) amethC(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	return d.regFromModRM(buf, offset, tsize, RegCtrl0)
}

func (d *Disasm) amethD(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	return d.regFromModRM(buf, offset, tsize, RegDebug0)
}

func (d *Disasm) amethP(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	return d.regFromModRM(buf, offset, tsize, RegMM0)
}

func (d *Disasm) amethS(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	return d.regFromModRM(buf, offset, tsize, RegES)
}

func (d *Disasm) amethU(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	return d.regFromModRM(buf, offset, tsize, RegTest0)
}

func (d *Disasm) amethV(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	return d.regFromModRM(buf, offset, tsize, RegXMM0)
}

// amethX is the implicit [esi] string-source operand. The ds override
// is not applied.
func (d *Disasm) amethX(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	return 0, &RegMemOper{Reg: RegESI, Tsize: tsize}, nil
}

// amethY is the implicit [edi] string-destination operand. The es
// override is not applied.
func (d *Disasm) amethY(buf []byte, offset, tsize int, _ uint32) (int, Operand, error) {
	return 0, &RegMemOper{Reg: RegEDI, Tsize: tsize}, nil
}
