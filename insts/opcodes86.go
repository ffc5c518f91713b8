package insts

// The i386 opcode table forest. Table 0 is the root one-byte map;
// multi-byte opcodes, ModR/M-reg groups, the 66 0F SIMD discriminator
// and the x87 escape hang off it by index. The numeric indices are part
// of the data: entries cross-reference tables by position in Tables86.
const (
	tblMain = iota
	tbl0F
	tbl660F
	tblGrp80
	tblGrp81
	tblGrp83
	tblGrp8F
	tblGrpC0
	tblGrpC1
	tblGrpC6
	tblGrpC7
	tblGrpD0
	tblGrpD1
	tblGrpD2
	tblGrpD3
	tblGrpF6
	tblGrpF7
	tblGrpFE
	tblGrpFF
	tblFPUD8
	tblFPUD8Reg
	tblGrp0F00
	tblGrp0F01
	tblGrp0FBA
	tblGrp0FC7
)

// Operand descriptor shorthands: method letter + type tag.
const (
	eb = AddrMethE | TypeB
	ev = AddrMethE | TypeV
	ew = AddrMethE | TypeW
	ed = AddrMethE | TypeD
	gb = AddrMethG | TypeB
	gv = AddrMethG | TypeV
	gw = AddrMethG | TypeW
	gd = AddrMethG | TypeD
	ib = AddrMethI | TypeB
	iw = AddrMethI | TypeW
	iv = AddrMethI | TypeV
	iz = AddrMethI | TypeZ
	jb = AddrMethJ | TypeB
	jz = AddrMethJ | TypeZ
	ap = AddrMethA | TypeP
	ob = AddrMethO | TypeB
	ov = AddrMethO | TypeV
	ma = AddrMethM | TypeA
	mp = AddrMethM | TypeP
	mv = AddrMethM | TypeV
	ms = AddrMethM | TypeS
	sw = AddrMethS | TypeW
	cd = AddrMethC | TypeD
	dd = AddrMethD | TypeD
	rmd = AddrMethR | TypeD
	tmd = AddrMethU | TypeD
	mmq = AddrMethP | TypeQ
	mmd = AddrMethP | TypeD
	qmq = AddrMethQ | TypeQ
	qmd = AddrMethQ | TypeD
	vps = AddrMethV | TypePS
	vpd = AddrMethV | TypePD
	vdq = AddrMethV | TypeDQ
	vq  = AddrMethV | TypeQ
	wps = AddrMethW | TypePS
	wpd = AddrMethW | TypePD
	wdq = AddrMethW | TypeDQ
	wq  = AddrMethW | TypeQ
	xb  = AddrMethX | TypeB
	xz  = AddrMethX | TypeZ
	yb  = AddrMethY | TypeB
	yz  = AddrMethY | TypeZ

	// Embedded operands.
	rb = OpReg | TypeB
	rw = OpReg | TypeW
	rv = OpReg | TypeV
	rq = OpReg | TypeQ
	i1 = OpImm | TypeB
)

// Embedded sub-register values.
const (
	vAL = RegEAX | MetaLow8
	vCL = RegECX | MetaLow8
	vDL = RegEDX | MetaLow8
	vBL = RegEBX | MetaLow8
	vAH = RegEAX | MetaHigh8
	vCH = RegECX | MetaHigh8
	vDH = RegEDX | MetaHigh8
	vBH = RegEBX | MetaHigh8
	vDX = RegEDX | MetaLow16
)

var mainEntries = [256]OpDesc{
	0x00: {0, InsAdd, eb, gb, 0, 0, 0, 0, "add"},
	0x01: {0, InsAdd, ev, gv, 0, 0, 0, 0, "add"},
	0x02: {0, InsAdd, gb, eb, 0, 0, 0, 0, "add"},
	0x03: {0, InsAdd, gv, ev, 0, 0, 0, 0, "add"},
	0x04: {0, InsAdd, rb, ib, 0, vAL, 0, 0, "add"},
	0x05: {0, InsAdd, rv, iz, 0, RegEAX, 0, 0, "add"},
	0x06: {0, InsPush, rw, 0, 0, RegES, 0, 0, "push"},
	0x07: {0, InsPop, rw, 0, 0, RegES, 0, 0, "pop"},
	0x08: {0, InsOr, eb, gb, 0, 0, 0, 0, "or"},
	0x09: {0, InsOr, ev, gv, 0, 0, 0, 0, "or"},
	0x0A: {0, InsOr, gb, eb, 0, 0, 0, 0, "or"},
	0x0B: {0, InsOr, gv, ev, 0, 0, 0, 0, "or"},
	0x0C: {0, InsOr, rb, ib, 0, vAL, 0, 0, "or"},
	0x0D: {0, InsOr, rv, iz, 0, RegEAX, 0, 0, "or"},
	0x0E: {0, InsPush, rw, 0, 0, RegCS, 0, 0, "push"},
	0x0F: {tbl0F, 0, 0, 0, 0, 0, 0, 0, ""},
	0x10: {0, InsAdc, eb, gb, 0, 0, 0, 0, "adc"},
	0x11: {0, InsAdc, ev, gv, 0, 0, 0, 0, "adc"},
	0x12: {0, InsAdc, gb, eb, 0, 0, 0, 0, "adc"},
	0x13: {0, InsAdc, gv, ev, 0, 0, 0, 0, "adc"},
	0x14: {0, InsAdc, rb, ib, 0, vAL, 0, 0, "adc"},
	0x15: {0, InsAdc, rv, iz, 0, RegEAX, 0, 0, "adc"},
	0x16: {0, InsPush, rw, 0, 0, RegSS, 0, 0, "push"},
	0x17: {0, InsPop, rw, 0, 0, RegSS, 0, 0, "pop"},
	0x18: {0, InsSbb, eb, gb, 0, 0, 0, 0, "sbb"},
	0x19: {0, InsSbb, ev, gv, 0, 0, 0, 0, "sbb"},
	0x1A: {0, InsSbb, gb, eb, 0, 0, 0, 0, "sbb"},
	0x1B: {0, InsSbb, gv, ev, 0, 0, 0, 0, "sbb"},
	0x1C: {0, InsSbb, rb, ib, 0, vAL, 0, 0, "sbb"},
	0x1D: {0, InsSbb, rv, iz, 0, RegEAX, 0, 0, "sbb"},
	0x1E: {0, InsPush, rw, 0, 0, RegDS, 0, 0, "push"},
	0x1F: {0, InsPop, rw, 0, 0, RegDS, 0, 0, "pop"},
	0x20: {0, InsAnd, eb, gb, 0, 0, 0, 0, "and"},
	0x21: {0, InsAnd, ev, gv, 0, 0, 0, 0, "and"},
	0x22: {0, InsAnd, gb, eb, 0, 0, 0, 0, "and"},
	0x23: {0, InsAnd, gv, ev, 0, 0, 0, 0, "and"},
	0x24: {0, InsAnd, rb, ib, 0, vAL, 0, 0, "and"},
	0x25: {0, InsAnd, rv, iz, 0, RegEAX, 0, 0, "and"},
	0x27: {0, InsDaa, 0, 0, 0, 0, 0, 0, "daa"},
	0x28: {0, InsSub, eb, gb, 0, 0, 0, 0, "sub"},
	0x29: {0, InsSub, ev, gv, 0, 0, 0, 0, "sub"},
	0x2A: {0, InsSub, gb, eb, 0, 0, 0, 0, "sub"},
	0x2B: {0, InsSub, gv, ev, 0, 0, 0, 0, "sub"},
	0x2C: {0, InsSub, rb, ib, 0, vAL, 0, 0, "sub"},
	0x2D: {0, InsSub, rv, iz, 0, RegEAX, 0, 0, "sub"},
	0x2F: {0, InsDas, 0, 0, 0, 0, 0, 0, "das"},
	0x30: {0, InsXor, eb, gb, 0, 0, 0, 0, "xor"},
	0x31: {0, InsXor, ev, gv, 0, 0, 0, 0, "xor"},
	0x32: {0, InsXor, gb, eb, 0, 0, 0, 0, "xor"},
	0x33: {0, InsXor, gv, ev, 0, 0, 0, 0, "xor"},
	0x34: {0, InsXor, rb, ib, 0, vAL, 0, 0, "xor"},
	0x35: {0, InsXor, rv, iz, 0, RegEAX, 0, 0, "xor"},
	0x37: {0, InsAaa, 0, 0, 0, 0, 0, 0, "aaa"},
	0x38: {0, InsCmp, eb, gb, 0, 0, 0, 0, "cmp"},
	0x39: {0, InsCmp, ev, gv, 0, 0, 0, 0, "cmp"},
	0x3A: {0, InsCmp, gb, eb, 0, 0, 0, 0, "cmp"},
	0x3B: {0, InsCmp, gv, ev, 0, 0, 0, 0, "cmp"},
	0x3C: {0, InsCmp, rb, ib, 0, vAL, 0, 0, "cmp"},
	0x3D: {0, InsCmp, rv, iz, 0, RegEAX, 0, 0, "cmp"},
	0x3F: {0, InsAas, 0, 0, 0, 0, 0, 0, "aas"},
	0x40: {0, InsInc, rv, 0, 0, RegEAX, 0, 0, "inc"},
	0x41: {0, InsInc, rv, 0, 0, RegECX, 0, 0, "inc"},
	0x42: {0, InsInc, rv, 0, 0, RegEDX, 0, 0, "inc"},
	0x43: {0, InsInc, rv, 0, 0, RegEBX, 0, 0, "inc"},
	0x44: {0, InsInc, rv, 0, 0, RegESP, 0, 0, "inc"},
	0x45: {0, InsInc, rv, 0, 0, RegEBP, 0, 0, "inc"},
	0x46: {0, InsInc, rv, 0, 0, RegESI, 0, 0, "inc"},
	0x47: {0, InsInc, rv, 0, 0, RegEDI, 0, 0, "inc"},
	0x48: {0, InsDec, rv, 0, 0, RegEAX, 0, 0, "dec"},
	0x49: {0, InsDec, rv, 0, 0, RegECX, 0, 0, "dec"},
	0x4A: {0, InsDec, rv, 0, 0, RegEDX, 0, 0, "dec"},
	0x4B: {0, InsDec, rv, 0, 0, RegEBX, 0, 0, "dec"},
	0x4C: {0, InsDec, rv, 0, 0, RegESP, 0, 0, "dec"},
	0x4D: {0, InsDec, rv, 0, 0, RegEBP, 0, 0, "dec"},
	0x4E: {0, InsDec, rv, 0, 0, RegESI, 0, 0, "dec"},
	0x4F: {0, InsDec, rv, 0, 0, RegEDI, 0, 0, "dec"},
	0x50: {0, InsPush, rv, 0, 0, RegEAX, 0, 0, "push"},
	0x51: {0, InsPush, rv, 0, 0, RegECX, 0, 0, "push"},
	0x52: {0, InsPush, rv, 0, 0, RegEDX, 0, 0, "push"},
	0x53: {0, InsPush, rv, 0, 0, RegEBX, 0, 0, "push"},
	0x54: {0, InsPush, rv, 0, 0, RegESP, 0, 0, "push"},
	0x55: {0, InsPush, rv, 0, 0, RegEBP, 0, 0, "push"},
	0x56: {0, InsPush, rv, 0, 0, RegESI, 0, 0, "push"},
	0x57: {0, InsPush, rv, 0, 0, RegEDI, 0, 0, "push"},
	0x58: {0, InsPop, rv, 0, 0, RegEAX, 0, 0, "pop"},
	0x59: {0, InsPop, rv, 0, 0, RegECX, 0, 0, "pop"},
	0x5A: {0, InsPop, rv, 0, 0, RegEDX, 0, 0, "pop"},
	0x5B: {0, InsPop, rv, 0, 0, RegEBX, 0, 0, "pop"},
	0x5C: {0, InsPop, rv, 0, 0, RegESP, 0, 0, "pop"},
	0x5D: {0, InsPop, rv, 0, 0, RegEBP, 0, 0, "pop"},
	0x5E: {0, InsPop, rv, 0, 0, RegESI, 0, 0, "pop"},
	0x5F: {0, InsPop, rv, 0, 0, RegEDI, 0, 0, "pop"},
	0x60: {0, InsPushA, 0, 0, 0, 0, 0, 0, "pushad"},
	0x61: {0, InsPopA, 0, 0, 0, 0, 0, 0, "popad"},
	0x62: {0, InsBound, gv, ma, 0, 0, 0, 0, "bound"},
	0x63: {0, InsArpl, ew, gw, 0, 0, 0, 0, "arpl"},
	0x66: {tbl660F, 0, 0, 0, 0, 0, 0, 0, ""},
	0x68: {0, InsPush, iz, 0, 0, 0, 0, 0, "push"},
	0x69: {0, InsImul, gv, ev, iz, 0, 0, 0, "imul"},
	0x6A: {0, InsPush, ib, 0, 0, 0, 0, 0, "push"},
	0x6B: {0, InsImul, gv, ev, ib, 0, 0, 0, "imul"},
	0x6C: {0, InsIns, yb, rw, 0, 0, vDX, 0, "insb"},
	0x6D: {0, InsIns, yz, rw, 0, 0, vDX, 0, "insd"},
	0x6E: {0, InsOuts, rw, xb, 0, vDX, 0, 0, "outsb"},
	0x6F: {0, InsOuts, rw, xz, 0, vDX, 0, 0, "outsd"},
	0x70: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jo"},
	0x71: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jno"},
	0x72: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jb"},
	0x73: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jnb"},
	0x74: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jz"},
	0x75: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jnz"},
	0x76: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jbe"},
	0x77: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "ja"},
	0x78: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "js"},
	0x79: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jns"},
	0x7A: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jp"},
	0x7B: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jnp"},
	0x7C: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jl"},
	0x7D: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jge"},
	0x7E: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jle"},
	0x7F: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jg"},
	0x80: {tblGrp80, 0, 0, 0, 0, 0, 0, 0, ""},
	0x81: {tblGrp81, 0, 0, 0, 0, 0, 0, 0, ""},
	0x82: {tblGrp80, 0, 0, 0, 0, 0, 0, 0, ""},
	0x83: {tblGrp83, 0, 0, 0, 0, 0, 0, 0, ""},
	0x84: {0, InsTest, eb, gb, 0, 0, 0, 0, "test"},
	0x85: {0, InsTest, ev, gv, 0, 0, 0, 0, "test"},
	0x86: {0, InsXchg, eb, gb, 0, 0, 0, 0, "xchg"},
	0x87: {0, InsXchg, ev, gv, 0, 0, 0, 0, "xchg"},
	0x88: {0, InsMov, eb, gb, 0, 0, 0, 0, "mov"},
	0x89: {0, InsMov, ev, gv, 0, 0, 0, 0, "mov"},
	0x8A: {0, InsMov, gb, eb, 0, 0, 0, 0, "mov"},
	0x8B: {0, InsMov, gv, ev, 0, 0, 0, 0, "mov"},
	0x8C: {0, InsMov, ew, sw, 0, 0, 0, 0, "mov"},
	0x8D: {0, InsLea, gv, mv, 0, 0, 0, 0, "lea"},
	0x8E: {0, InsMov, sw, ew, 0, 0, 0, 0, "mov"},
	0x8F: {tblGrp8F, 0, 0, 0, 0, 0, 0, 0, ""},
	0x90: {0, InsNop, 0, 0, 0, 0, 0, 0, "nop"},
	0x91: {0, InsXchg, rv, rv, 0, RegEAX, RegECX, 0, "xchg"},
	0x92: {0, InsXchg, rv, rv, 0, RegEAX, RegEDX, 0, "xchg"},
	0x93: {0, InsXchg, rv, rv, 0, RegEAX, RegEBX, 0, "xchg"},
	0x94: {0, InsXchg, rv, rv, 0, RegEAX, RegESP, 0, "xchg"},
	0x95: {0, InsXchg, rv, rv, 0, RegEAX, RegEBP, 0, "xchg"},
	0x96: {0, InsXchg, rv, rv, 0, RegEAX, RegESI, 0, "xchg"},
	0x97: {0, InsXchg, rv, rv, 0, RegEAX, RegEDI, 0, "xchg"},
	0x98: {0, InsCwde, 0, 0, 0, 0, 0, 0, "cwde"},
	0x99: {0, InsCdq, 0, 0, 0, 0, 0, 0, "cdq"},
	0x9A: {0, InsCall, ap, 0, 0, 0, 0, 0, "callf"},
	0x9B: {0, InsWait, 0, 0, 0, 0, 0, 0, "wait"},
	0x9C: {0, InsPushF, 0, 0, 0, 0, 0, 0, "pushfd"},
	0x9D: {0, InsPopF, 0, 0, 0, 0, 0, 0, "popfd"},
	0x9E: {0, InsSahf, 0, 0, 0, 0, 0, 0, "sahf"},
	0x9F: {0, InsLahf, 0, 0, 0, 0, 0, 0, "lahf"},
	0xA0: {0, InsMov, rb, ob, 0, vAL, 0, 0, "mov"},
	0xA1: {0, InsMov, rv, ov, 0, RegEAX, 0, 0, "mov"},
	0xA2: {0, InsMov, ob, rb, 0, 0, vAL, 0, "mov"},
	0xA3: {0, InsMov, ov, rv, 0, 0, RegEAX, 0, "mov"},
	0xA4: {0, InsMovs, yb, xb, 0, 0, 0, 0, "movsb"},
	0xA5: {0, InsMovs, yz, xz, 0, 0, 0, 0, "movsd"},
	0xA6: {0, InsCmps, xb, yb, 0, 0, 0, 0, "cmpsb"},
	0xA7: {0, InsCmps, xz, yz, 0, 0, 0, 0, "cmpsd"},
	0xA8: {0, InsTest, rb, ib, 0, vAL, 0, 0, "test"},
	0xA9: {0, InsTest, rv, iz, 0, RegEAX, 0, 0, "test"},
	0xAA: {0, InsStos, yb, rb, 0, 0, vAL, 0, "stosb"},
	0xAB: {0, InsStos, yz, rv, 0, 0, RegEAX, 0, "stosd"},
	0xAC: {0, InsLods, rb, xb, 0, vAL, 0, 0, "lodsb"},
	0xAD: {0, InsLods, rv, xz, 0, RegEAX, 0, 0, "lodsd"},
	0xAE: {0, InsScas, rb, yb, 0, vAL, 0, 0, "scasb"},
	0xAF: {0, InsScas, rv, yz, 0, RegEAX, 0, 0, "scasd"},
	0xB0: {0, InsMov, rb, ib, 0, vAL, 0, 0, "mov"},
	0xB1: {0, InsMov, rb, ib, 0, vCL, 0, 0, "mov"},
	0xB2: {0, InsMov, rb, ib, 0, vDL, 0, 0, "mov"},
	0xB3: {0, InsMov, rb, ib, 0, vBL, 0, 0, "mov"},
	0xB4: {0, InsMov, rb, ib, 0, vAH, 0, 0, "mov"},
	0xB5: {0, InsMov, rb, ib, 0, vCH, 0, 0, "mov"},
	0xB6: {0, InsMov, rb, ib, 0, vDH, 0, 0, "mov"},
	0xB7: {0, InsMov, rb, ib, 0, vBH, 0, 0, "mov"},
	0xB8: {0, InsMov, rv, iv, 0, RegEAX, 0, 0, "mov"},
	0xB9: {0, InsMov, rv, iv, 0, RegECX, 0, 0, "mov"},
	0xBA: {0, InsMov, rv, iv, 0, RegEDX, 0, 0, "mov"},
	0xBB: {0, InsMov, rv, iv, 0, RegEBX, 0, 0, "mov"},
	0xBC: {0, InsMov, rv, iv, 0, RegESP, 0, 0, "mov"},
	0xBD: {0, InsMov, rv, iv, 0, RegEBP, 0, 0, "mov"},
	0xBE: {0, InsMov, rv, iv, 0, RegESI, 0, 0, "mov"},
	0xBF: {0, InsMov, rv, iv, 0, RegEDI, 0, 0, "mov"},
	0xC0: {tblGrpC0, 0, 0, 0, 0, 0, 0, 0, ""},
	0xC1: {tblGrpC1, 0, 0, 0, 0, 0, 0, 0, ""},
	0xC2: {0, InsRet, iw, 0, 0, 0, 0, 0, "ret"},
	0xC3: {0, InsRet, 0, 0, 0, 0, 0, 0, "ret"},
	0xC4: {0, InsLes, gv, mp, 0, 0, 0, 0, "les"},
	0xC5: {0, InsLds, gv, mp, 0, 0, 0, 0, "lds"},
	0xC6: {tblGrpC6, 0, 0, 0, 0, 0, 0, 0, ""},
	0xC7: {tblGrpC7, 0, 0, 0, 0, 0, 0, 0, ""},
	0xC8: {0, InsEnter, iw, ib, 0, 0, 0, 0, "enter"},
	0xC9: {0, InsLeave, 0, 0, 0, 0, 0, 0, "leave"},
	0xCA: {0, InsRet, iw, 0, 0, 0, 0, 0, "retf"},
	0xCB: {0, InsRet, 0, 0, 0, 0, 0, 0, "retf"},
	0xCC: {0, InsInt3, 0, 0, 0, 0, 0, 0, "int3"},
	0xCD: {0, InsInt, ib, 0, 0, 0, 0, 0, "int"},
	0xCE: {0, InsInto, 0, 0, 0, 0, 0, 0, "into"},
	0xCF: {0, InsRet, 0, 0, 0, 0, 0, 0, "iret"},
	0xD0: {tblGrpD0, 0, 0, 0, 0, 0, 0, 0, ""},
	0xD1: {tblGrpD1, 0, 0, 0, 0, 0, 0, 0, ""},
	0xD2: {tblGrpD2, 0, 0, 0, 0, 0, 0, 0, ""},
	0xD3: {tblGrpD3, 0, 0, 0, 0, 0, 0, 0, ""},
	0xD4: {0, InsAam, ib, 0, 0, 0, 0, 0, "aam"},
	0xD5: {0, InsAad, ib, 0, 0, 0, 0, 0, "aad"},
	0xD7: {0, InsXlat, 0, 0, 0, 0, 0, 0, "xlat"},
	0xD8: {tblFPUD8, 0, 0, 0, 0, 0, 0, 0, ""},
	0xE0: {0, InsLoop, jb, 0, 0, 0, 0, 0, "loopnz"},
	0xE1: {0, InsLoop, jb, 0, 0, 0, 0, 0, "loopz"},
	0xE2: {0, InsLoop, jb, 0, 0, 0, 0, 0, "loop"},
	0xE3: {0, InsBranchCC, jb, 0, 0, 0, 0, 0, "jecxz"},
	0xE4: {0, InsIn, rb, ib, 0, vAL, 0, 0, "in"},
	0xE5: {0, InsIn, rv, ib, 0, RegEAX, 0, 0, "in"},
	0xE6: {0, InsOut, ib, rb, 0, 0, vAL, 0, "out"},
	0xE7: {0, InsOut, ib, rv, 0, 0, RegEAX, 0, "out"},
	0xE8: {0, InsCall, jz, 0, 0, 0, 0, 0, "call"},
	0xE9: {0, InsBranch, jz, 0, 0, 0, 0, 0, "jmp"},
	0xEA: {0, InsBranch, ap, 0, 0, 0, 0, 0, "jmpf"},
	0xEB: {0, InsBranch, jb, 0, 0, 0, 0, 0, "jmp"},
	0xEC: {0, InsIn, rb, rw, 0, vAL, vDX, 0, "in"},
	0xED: {0, InsIn, rv, rw, 0, RegEAX, vDX, 0, "in"},
	0xEE: {0, InsOut, rw, rb, 0, vDX, vAL, 0, "out"},
	0xEF: {0, InsOut, rw, rv, 0, vDX, RegEAX, 0, "out"},
	0xF4: {0, InsHlt, 0, 0, 0, 0, 0, 0, "hlt"},
	0xF5: {0, InsCmc, 0, 0, 0, 0, 0, 0, "cmc"},
	0xF6: {tblGrpF6, 0, 0, 0, 0, 0, 0, 0, ""},
	0xF7: {tblGrpF7, 0, 0, 0, 0, 0, 0, 0, ""},
	0xF8: {0, InsClc, 0, 0, 0, 0, 0, 0, "clc"},
	0xF9: {0, InsStc, 0, 0, 0, 0, 0, 0, "stc"},
	0xFA: {0, InsCli, 0, 0, 0, 0, 0, 0, "cli"},
	0xFB: {0, InsSti, 0, 0, 0, 0, 0, 0, "sti"},
	0xFC: {0, InsCld, 0, 0, 0, 0, 0, 0, "cld"},
	0xFD: {0, InsStd, 0, 0, 0, 0, 0, 0, "std"},
	0xFE: {tblGrpFE, 0, 0, 0, 0, 0, 0, 0, ""},
	0xFF: {tblGrpFF, 0, 0, 0, 0, 0, 0, 0, ""},
}

var twoByteEntries = [256]OpDesc{
	0x00: {tblGrp0F00, 0, 0, 0, 0, 0, 0, 0, ""},
	0x01: {tblGrp0F01, 0, 0, 0, 0, 0, 0, 0, ""},
	0x02: {0, InsLar, gv, ew, 0, 0, 0, 0, "lar"},
	0x03: {0, InsLsl, gv, ew, 0, 0, 0, 0, "lsl"},
	0x06: {0, InsClts, 0, 0, 0, 0, 0, 0, "clts"},
	0x08: {0, InsInvd, 0, 0, 0, 0, 0, 0, "invd"},
	0x09: {0, InsWbinvd, 0, 0, 0, 0, 0, 0, "wbinvd"},
	0x0B: {0, InsUd2, 0, 0, 0, 0, 0, 0, "ud2"},
	0x10: {0, InsMov, vps, wps, 0, 0, 0, 0, "movups"},
	0x11: {0, InsMov, wps, vps, 0, 0, 0, 0, "movups"},
	0x1F: {0, InsNop, ev, 0, 0, 0, 0, 0, "nop"},
	0x20: {0, InsMov, rmd, cd, 0, 0, 0, 0, "mov"},
	0x21: {0, InsMov, rmd, dd, 0, 0, 0, 0, "mov"},
	0x22: {0, InsMov, cd, rmd, 0, 0, 0, 0, "mov"},
	0x23: {0, InsMov, dd, rmd, 0, 0, 0, 0, "mov"},
	0x24: {0, InsMov, rmd, tmd, 0, 0, 0, 0, "mov"},
	0x26: {0, InsMov, tmd, rmd, 0, 0, 0, 0, "mov"},
	0x28: {0, InsMov, vps, wps, 0, 0, 0, 0, "movaps"},
	0x29: {0, InsMov, wps, vps, 0, 0, 0, 0, "movaps"},
	0x30: {0, InsWrmsr, 0, 0, 0, 0, 0, 0, "wrmsr"},
	0x31: {0, InsRdtsc, 0, 0, 0, 0, 0, 0, "rdtsc"},
	0x32: {0, InsRdmsr, 0, 0, 0, 0, 0, 0, "rdmsr"},
	0x33: {0, InsRdpmc, 0, 0, 0, 0, 0, 0, "rdpmc"},
	0x34: {0, InsSysenter, 0, 0, 0, 0, 0, 0, "sysenter"},
	0x35: {0, InsSysexit, 0, 0, 0, 0, 0, 0, "sysexit"},
	0x40: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovo"},
	0x41: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovno"},
	0x42: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovb"},
	0x43: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovnb"},
	0x44: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovz"},
	0x45: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovnz"},
	0x46: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovbe"},
	0x47: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmova"},
	0x48: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovs"},
	0x49: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovns"},
	0x4A: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovp"},
	0x4B: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovnp"},
	0x4C: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovl"},
	0x4D: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovge"},
	0x4E: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovle"},
	0x4F: {0, InsMovCC, gv, ev, 0, 0, 0, 0, "cmovg"},
	0x51: {0, InsSqrt, vps, wps, 0, 0, 0, 0, "sqrtps"},
	0x54: {0, InsAnd, vps, wps, 0, 0, 0, 0, "andps"},
	0x57: {0, InsXor, vps, wps, 0, 0, 0, 0, "xorps"},
	0x60: {0, InsPunpck, mmq, qmd, 0, 0, 0, 0, "punpcklbw"},
	0x6E: {0, InsMov, mmd, ed, 0, 0, 0, 0, "movd"},
	0x6F: {0, InsMov, mmq, qmq, 0, 0, 0, 0, "movq"},
	0x70: {0, InsPshuf, mmq, qmq, ib, 0, 0, 0, "pshufw"},
	0x74: {0, InsPcmpeq, mmq, qmq, 0, 0, 0, 0, "pcmpeqb"},
	0x7E: {0, InsMov, ed, mmd, 0, 0, 0, 0, "movd"},
	0x7F: {0, InsMov, qmq, mmq, 0, 0, 0, 0, "movq"},
	0x80: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jo"},
	0x81: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jno"},
	0x82: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jb"},
	0x83: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jnb"},
	0x84: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jz"},
	0x85: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jnz"},
	0x86: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jbe"},
	0x87: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "ja"},
	0x88: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "js"},
	0x89: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jns"},
	0x8A: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jp"},
	0x8B: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jnp"},
	0x8C: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jl"},
	0x8D: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jge"},
	0x8E: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jle"},
	0x8F: {0, InsBranchCC, jz, 0, 0, 0, 0, 0, "jg"},
	0x90: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "seto"},
	0x91: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setno"},
	0x92: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setb"},
	0x93: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setnb"},
	0x94: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setz"},
	0x95: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setnz"},
	0x96: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setbe"},
	0x97: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "seta"},
	0x98: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "sets"},
	0x99: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setns"},
	0x9A: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setp"},
	0x9B: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setnp"},
	0x9C: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setl"},
	0x9D: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setge"},
	0x9E: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setle"},
	0x9F: {0, InsSetCC, eb, 0, 0, 0, 0, 0, "setg"},
	0xA0: {0, InsPush, rw, 0, 0, RegFS, 0, 0, "push"},
	0xA1: {0, InsPop, rw, 0, 0, RegFS, 0, 0, "pop"},
	0xA2: {0, InsCpuid, 0, 0, 0, 0, 0, 0, "cpuid"},
	0xA3: {0, InsBt, ev, gv, 0, 0, 0, 0, "bt"},
	0xA4: {0, InsShld, ev, gv, ib, 0, 0, 0, "shld"},
	0xA5: {0, InsShld, ev, gv, rb, 0, 0, vCL, "shld"},
	0xA8: {0, InsPush, rw, 0, 0, RegGS, 0, 0, "push"},
	0xA9: {0, InsPop, rw, 0, 0, RegGS, 0, 0, "pop"},
	0xAB: {0, InsBts, ev, gv, 0, 0, 0, 0, "bts"},
	0xAC: {0, InsShrd, ev, gv, ib, 0, 0, 0, "shrd"},
	0xAD: {0, InsShrd, ev, gv, rb, 0, 0, vCL, "shrd"},
	0xAF: {0, InsImul, gv, ev, 0, 0, 0, 0, "imul"},
	0xB0: {0, InsCmpxchg, eb, gb, 0, 0, 0, 0, "cmpxchg"},
	0xB1: {0, InsCmpxchg, ev, gv, 0, 0, 0, 0, "cmpxchg"},
	0xB2: {0, InsLss, gv, mp, 0, 0, 0, 0, "lss"},
	0xB3: {0, InsBtr, ev, gv, 0, 0, 0, 0, "btr"},
	0xB4: {0, InsLfs, gv, mp, 0, 0, 0, 0, "lfs"},
	0xB5: {0, InsLgs, gv, mp, 0, 0, 0, 0, "lgs"},
	0xB6: {0, InsMovzx, gv, eb, 0, 0, 0, 0, "movzx"},
	0xB7: {0, InsMovzx, gv, ew, 0, 0, 0, 0, "movzx"},
	0xBA: {tblGrp0FBA, 0, 0, 0, 0, 0, 0, 0, ""},
	0xBB: {0, InsBtc, ev, gv, 0, 0, 0, 0, "btc"},
	0xBC: {0, InsBsf, gv, ev, 0, 0, 0, 0, "bsf"},
	0xBD: {0, InsBsr, gv, ev, 0, 0, 0, 0, "bsr"},
	0xBE: {0, InsMovsx, gv, eb, 0, 0, 0, 0, "movsx"},
	0xBF: {0, InsMovsx, gv, ew, 0, 0, 0, 0, "movsx"},
	0xC0: {0, InsXadd, eb, gb, 0, 0, 0, 0, "xadd"},
	0xC1: {0, InsXadd, ev, gv, 0, 0, 0, 0, "xadd"},
	0xC7: {tblGrp0FC7, 0, 0, 0, 0, 0, 0, 0, ""},
	0xC8: {0, InsBswap, rv, 0, 0, RegEAX, 0, 0, "bswap"},
	0xC9: {0, InsBswap, rv, 0, 0, RegECX, 0, 0, "bswap"},
	0xCA: {0, InsBswap, rv, 0, 0, RegEDX, 0, 0, "bswap"},
	0xCB: {0, InsBswap, rv, 0, 0, RegEBX, 0, 0, "bswap"},
	0xCC: {0, InsBswap, rv, 0, 0, RegESP, 0, 0, "bswap"},
	0xCD: {0, InsBswap, rv, 0, 0, RegEBP, 0, 0, "bswap"},
	0xCE: {0, InsBswap, rv, 0, 0, RegESI, 0, 0, "bswap"},
	0xCF: {0, InsBswap, rv, 0, 0, RegEDI, 0, 0, "bswap"},
	0xEF: {0, InsPxor, mmq, qmq, 0, 0, 0, 0, "pxor"},
}

// The 66 0F table presumes both the 66 and the 0F were consumed; the
// decode driver accounts for the extra byte when it takes this hop.
var simd660FEntries = [256]OpDesc{
	0x10: {0, InsMov, vpd, wpd, 0, 0, 0, 0, "movupd"},
	0x28: {0, InsMov, vpd, wpd, 0, 0, 0, 0, "movapd"},
	0x6E: {0, InsMov, vdq, ed, 0, 0, 0, 0, "movd"},
	0x6F: {0, InsMov, vdq, wdq, 0, 0, 0, 0, "movdqa"},
	0x70: {0, InsPshuf, vdq, wdq, ib, 0, 0, 0, "pshufd"},
	0x7E: {0, InsMov, ed, vdq, 0, 0, 0, 0, "movd"},
	0x7F: {0, InsMov, wdq, vdq, 0, 0, 0, 0, "movdqa"},
	0xD6: {0, InsMov, wq, vq, 0, 0, 0, 0, "movq"},
	0xEF: {0, InsPxor, vdq, wdq, 0, 0, 0, 0, "pxor"},
}

// ModR/M reg-field groups. The indexed byte is the ModR/M byte itself:
// these tables shift out the mod and r/m fields and leave the byte
// unconsumed for the operand parsers.
var (
	grp80Entries = [8]OpDesc{
		{0, InsAdd, eb, ib, 0, 0, 0, 0, "add"},
		{0, InsOr, eb, ib, 0, 0, 0, 0, "or"},
		{0, InsAdc, eb, ib, 0, 0, 0, 0, "adc"},
		{0, InsSbb, eb, ib, 0, 0, 0, 0, "sbb"},
		{0, InsAnd, eb, ib, 0, 0, 0, 0, "and"},
		{0, InsSub, eb, ib, 0, 0, 0, 0, "sub"},
		{0, InsXor, eb, ib, 0, 0, 0, 0, "xor"},
		{0, InsCmp, eb, ib, 0, 0, 0, 0, "cmp"},
	}
	grp81Entries = [8]OpDesc{
		{0, InsAdd, ev, iz, 0, 0, 0, 0, "add"},
		{0, InsOr, ev, iz, 0, 0, 0, 0, "or"},
		{0, InsAdc, ev, iz, 0, 0, 0, 0, "adc"},
		{0, InsSbb, ev, iz, 0, 0, 0, 0, "sbb"},
		{0, InsAnd, ev, iz, 0, 0, 0, 0, "and"},
		{0, InsSub, ev, iz, 0, 0, 0, 0, "sub"},
		{0, InsXor, ev, iz, 0, 0, 0, 0, "xor"},
		{0, InsCmp, ev, iz, 0, 0, 0, 0, "cmp"},
	}
	grp83Entries = [8]OpDesc{
		{0, InsAdd, ev, ib, 0, 0, 0, 0, "add"},
		{0, InsOr, ev, ib, 0, 0, 0, 0, "or"},
		{0, InsAdc, ev, ib, 0, 0, 0, 0, "adc"},
		{0, InsSbb, ev, ib, 0, 0, 0, 0, "sbb"},
		{0, InsAnd, ev, ib, 0, 0, 0, 0, "and"},
		{0, InsSub, ev, ib, 0, 0, 0, 0, "sub"},
		{0, InsXor, ev, ib, 0, 0, 0, 0, "xor"},
		{0, InsCmp, ev, ib, 0, 0, 0, 0, "cmp"},
	}
	grp8FEntries = [8]OpDesc{
		0: {0, InsPop, ev, 0, 0, 0, 0, 0, "pop"},
	}
	grpC0Entries = [8]OpDesc{
		{0, InsRol, eb, ib, 0, 0, 0, 0, "rol"},
		{0, InsRor, eb, ib, 0, 0, 0, 0, "ror"},
		{0, InsRcl, eb, ib, 0, 0, 0, 0, "rcl"},
		{0, InsRcr, eb, ib, 0, 0, 0, 0, "rcr"},
		{0, InsShl, eb, ib, 0, 0, 0, 0, "shl"},
		{0, InsShr, eb, ib, 0, 0, 0, 0, "shr"},
		{0, InsSal, eb, ib, 0, 0, 0, 0, "sal"},
		{0, InsSar, eb, ib, 0, 0, 0, 0, "sar"},
	}
	grpC1Entries = [8]OpDesc{
		{0, InsRol, ev, ib, 0, 0, 0, 0, "rol"},
		{0, InsRor, ev, ib, 0, 0, 0, 0, "ror"},
		{0, InsRcl, ev, ib, 0, 0, 0, 0, "rcl"},
		{0, InsRcr, ev, ib, 0, 0, 0, 0, "rcr"},
		{0, InsShl, ev, ib, 0, 0, 0, 0, "shl"},
		{0, InsShr, ev, ib, 0, 0, 0, 0, "shr"},
		{0, InsSal, ev, ib, 0, 0, 0, 0, "sal"},
		{0, InsSar, ev, ib, 0, 0, 0, 0, "sar"},
	}
	grpC6Entries = [8]OpDesc{
		0: {0, InsMov, eb, ib, 0, 0, 0, 0, "mov"},
	}
	grpC7Entries = [8]OpDesc{
		0: {0, InsMov, ev, iz, 0, 0, 0, 0, "mov"},
	}
	grpD0Entries = [8]OpDesc{
		{0, InsRol, eb, i1, 0, 0, 1, 0, "rol"},
		{0, InsRor, eb, i1, 0, 0, 1, 0, "ror"},
		{0, InsRcl, eb, i1, 0, 0, 1, 0, "rcl"},
		{0, InsRcr, eb, i1, 0, 0, 1, 0, "rcr"},
		{0, InsShl, eb, i1, 0, 0, 1, 0, "shl"},
		{0, InsShr, eb, i1, 0, 0, 1, 0, "shr"},
		{0, InsSal, eb, i1, 0, 0, 1, 0, "sal"},
		{0, InsSar, eb, i1, 0, 0, 1, 0, "sar"},
	}
	grpD1Entries = [8]OpDesc{
		{0, InsRol, ev, i1, 0, 0, 1, 0, "rol"},
		{0, InsRor, ev, i1, 0, 0, 1, 0, "ror"},
		{0, InsRcl, ev, i1, 0, 0, 1, 0, "rcl"},
		{0, InsRcr, ev, i1, 0, 0, 1, 0, "rcr"},
		{0, InsShl, ev, i1, 0, 0, 1, 0, "shl"},
		{0, InsShr, ev, i1, 0, 0, 1, 0, "shr"},
		{0, InsSal, ev, i1, 0, 0, 1, 0, "sal"},
		{0, InsSar, ev, i1, 0, 0, 1, 0, "sar"},
	}
	grpD2Entries = [8]OpDesc{
		{0, InsRol, eb, rb, 0, 0, vCL, 0, "rol"},
		{0, InsRor, eb, rb, 0, 0, vCL, 0, "ror"},
		{0, InsRcl, eb, rb, 0, 0, vCL, 0, "rcl"},
		{0, InsRcr, eb, rb, 0, 0, vCL, 0, "rcr"},
		{0, InsShl, eb, rb, 0, 0, vCL, 0, "shl"},
		{0, InsShr, eb, rb, 0, 0, vCL, 0, "shr"},
		{0, InsSal, eb, rb, 0, 0, vCL, 0, "sal"},
		{0, InsSar, eb, rb, 0, 0, vCL, 0, "sar"},
	}
	grpD3Entries = [8]OpDesc{
		{0, InsRol, ev, rb, 0, 0, vCL, 0, "rol"},
		{0, InsRor, ev, rb, 0, 0, vCL, 0, "ror"},
		{0, InsRcl, ev, rb, 0, 0, vCL, 0, "rcl"},
		{0, InsRcr, ev, rb, 0, 0, vCL, 0, "rcr"},
		{0, InsShl, ev, rb, 0, 0, vCL, 0, "shl"},
		{0, InsShr, ev, rb, 0, 0, vCL, 0, "shr"},
		{0, InsSal, ev, rb, 0, 0, vCL, 0, "sal"},
		{0, InsSar, ev, rb, 0, 0, vCL, 0, "sar"},
	}
	grpF6Entries = [8]OpDesc{
		0: {0, InsTest, eb, ib, 0, 0, 0, 0, "test"},
		2: {0, InsNot, eb, 0, 0, 0, 0, 0, "not"},
		3: {0, InsNeg, eb, 0, 0, 0, 0, 0, "neg"},
		4: {0, InsMul, eb, 0, 0, 0, 0, 0, "mul"},
		5: {0, InsImul, eb, 0, 0, 0, 0, 0, "imul"},
		6: {0, InsDiv, eb, 0, 0, 0, 0, 0, "div"},
		7: {0, InsIdiv, eb, 0, 0, 0, 0, 0, "idiv"},
	}
	grpF7Entries = [8]OpDesc{
		0: {0, InsTest, ev, iz, 0, 0, 0, 0, "test"},
		2: {0, InsNot, ev, 0, 0, 0, 0, 0, "not"},
		3: {0, InsNeg, ev, 0, 0, 0, 0, 0, "neg"},
		4: {0, InsMul, ev, 0, 0, 0, 0, 0, "mul"},
		5: {0, InsImul, ev, 0, 0, 0, 0, 0, "imul"},
		6: {0, InsDiv, ev, 0, 0, 0, 0, 0, "div"},
		7: {0, InsIdiv, ev, 0, 0, 0, 0, 0, "idiv"},
	}
	grpFEEntries = [8]OpDesc{
		0: {0, InsInc, eb, 0, 0, 0, 0, 0, "inc"},
		1: {0, InsDec, eb, 0, 0, 0, 0, 0, "dec"},
	}
	grpFFEntries = [8]OpDesc{
		0: {0, InsInc, ev, 0, 0, 0, 0, 0, "inc"},
		1: {0, InsDec, ev, 0, 0, 0, 0, 0, "dec"},
		2: {0, InsCall, ev, 0, 0, 0, 0, 0, "call"},
		3: {0, InsCall, mp, 0, 0, 0, 0, 0, "callf"},
		4: {0, InsBranch, ev, 0, 0, 0, 0, 0, "jmp"},
		5: {0, InsBranch, mp, 0, 0, 0, 0, 0, "jmpf"},
		6: {0, InsPush, ev, 0, 0, 0, 0, 0, "push"},
	}
	grp0F00Entries = [8]OpDesc{
		0: {0, InsSldt, ew, 0, 0, 0, 0, 0, "sldt"},
		1: {0, InsStr, ew, 0, 0, 0, 0, 0, "str"},
		2: {0, InsLldt, ew, 0, 0, 0, 0, 0, "lldt"},
		3: {0, InsLtr, ew, 0, 0, 0, 0, 0, "ltr"},
		4: {0, InsVerr, ew, 0, 0, 0, 0, 0, "verr"},
		5: {0, InsVerw, ew, 0, 0, 0, 0, 0, "verw"},
	}
	grp0F01Entries = [8]OpDesc{
		0: {0, InsSgdt, ms, 0, 0, 0, 0, 0, "sgdt"},
		1: {0, InsSidt, ms, 0, 0, 0, 0, 0, "sidt"},
		2: {0, InsLgdt, ms, 0, 0, 0, 0, 0, "lgdt"},
		3: {0, InsLidt, ms, 0, 0, 0, 0, 0, "lidt"},
		4: {0, InsSmsw, ew, 0, 0, 0, 0, 0, "smsw"},
		6: {0, InsLmsw, ew, 0, 0, 0, 0, 0, "lmsw"},
		7: {0, InsInvlpg, eb, 0, 0, 0, 0, 0, "invlpg"},
	}
	grp0FBAEntries = [8]OpDesc{
		4: {0, InsBt, ev, ib, 0, 0, 0, 0, "bt"},
		5: {0, InsBts, ev, ib, 0, 0, 0, 0, "bts"},
		6: {0, InsBtr, ev, ib, 0, 0, 0, 0, "btr"},
		7: {0, InsBtc, ev, ib, 0, 0, 0, 0, "btc"},
	}
	grp0FC7Entries = [8]OpDesc{
		1: {0, InsCmpxchg, AddrMethM | TypeQ, 0, 0, 0, 0, 0, "cmpxchg8b"},
	}
)

// The D8 escape splits on the ModR/M byte: below 0xC0 it is a memory
// form keyed by the reg field; at 0xC0 and above the whole byte selects
// an st(0), st(i) register form via the overflow table.
var (
	fpuD8Entries = [8]OpDesc{
		{0, InsFadd, ed, 0, 0, 0, 0, 0, "fadd"},
		{0, InsFmul, ed, 0, 0, 0, 0, 0, "fmul"},
		{0, InsFcom, ed, 0, 0, 0, 0, 0, "fcom"},
		{0, InsFcomp, ed, 0, 0, 0, 0, 0, "fcomp"},
		{0, InsFsub, ed, 0, 0, 0, 0, 0, "fsub"},
		{0, InsFsubr, ed, 0, 0, 0, 0, 0, "fsubr"},
		{0, InsFdiv, ed, 0, 0, 0, 0, 0, "fdiv"},
		{0, InsFdivr, ed, 0, 0, 0, 0, 0, "fdivr"},
	}
	fpuD8RegEntries = [64]OpDesc{
		{0, InsFadd, rq, rq, 0, RegST0, RegST0, 0, "fadd"},
		{0, InsFadd, rq, rq, 0, RegST0, RegST1, 0, "fadd"},
		{0, InsFadd, rq, rq, 0, RegST0, RegST2, 0, "fadd"},
		{0, InsFadd, rq, rq, 0, RegST0, RegST3, 0, "fadd"},
		{0, InsFadd, rq, rq, 0, RegST0, RegST4, 0, "fadd"},
		{0, InsFadd, rq, rq, 0, RegST0, RegST5, 0, "fadd"},
		{0, InsFadd, rq, rq, 0, RegST0, RegST6, 0, "fadd"},
		{0, InsFadd, rq, rq, 0, RegST0, RegST7, 0, "fadd"},
		{0, InsFmul, rq, rq, 0, RegST0, RegST0, 0, "fmul"},
		{0, InsFmul, rq, rq, 0, RegST0, RegST1, 0, "fmul"},
		{0, InsFmul, rq, rq, 0, RegST0, RegST2, 0, "fmul"},
		{0, InsFmul, rq, rq, 0, RegST0, RegST3, 0, "fmul"},
		{0, InsFmul, rq, rq, 0, RegST0, RegST4, 0, "fmul"},
		{0, InsFmul, rq, rq, 0, RegST0, RegST5, 0, "fmul"},
		{0, InsFmul, rq, rq, 0, RegST0, RegST6, 0, "fmul"},
		{0, InsFmul, rq, rq, 0, RegST0, RegST7, 0, "fmul"},
		{0, InsFcom, rq, rq, 0, RegST0, RegST0, 0, "fcom"},
		{0, InsFcom, rq, rq, 0, RegST0, RegST1, 0, "fcom"},
		{0, InsFcom, rq, rq, 0, RegST0, RegST2, 0, "fcom"},
		{0, InsFcom, rq, rq, 0, RegST0, RegST3, 0, "fcom"},
		{0, InsFcom, rq, rq, 0, RegST0, RegST4, 0, "fcom"},
		{0, InsFcom, rq, rq, 0, RegST0, RegST5, 0, "fcom"},
		{0, InsFcom, rq, rq, 0, RegST0, RegST6, 0, "fcom"},
		{0, InsFcom, rq, rq, 0, RegST0, RegST7, 0, "fcom"},
		{0, InsFcomp, rq, rq, 0, RegST0, RegST0, 0, "fcomp"},
		{0, InsFcomp, rq, rq, 0, RegST0, RegST1, 0, "fcomp"},
		{0, InsFcomp, rq, rq, 0, RegST0, RegST2, 0, "fcomp"},
		{0, InsFcomp, rq, rq, 0, RegST0, RegST3, 0, "fcomp"},
		{0, InsFcomp, rq, rq, 0, RegST0, RegST4, 0, "fcomp"},
		{0, InsFcomp, rq, rq, 0, RegST0, RegST5, 0, "fcomp"},
		{0, InsFcomp, rq, rq, 0, RegST0, RegST6, 0, "fcomp"},
		{0, InsFcomp, rq, rq, 0, RegST0, RegST7, 0, "fcomp"},
		{0, InsFsub, rq, rq, 0, RegST0, RegST0, 0, "fsub"},
		{0, InsFsub, rq, rq, 0, RegST0, RegST1, 0, "fsub"},
		{0, InsFsub, rq, rq, 0, RegST0, RegST2, 0, "fsub"},
		{0, InsFsub, rq, rq, 0, RegST0, RegST3, 0, "fsub"},
		{0, InsFsub, rq, rq, 0, RegST0, RegST4, 0, "fsub"},
		{0, InsFsub, rq, rq, 0, RegST0, RegST5, 0, "fsub"},
		{0, InsFsub, rq, rq, 0, RegST0, RegST6, 0, "fsub"},
		{0, InsFsub, rq, rq, 0, RegST0, RegST7, 0, "fsub"},
		{0, InsFsubr, rq, rq, 0, RegST0, RegST0, 0, "fsubr"},
		{0, InsFsubr, rq, rq, 0, RegST0, RegST1, 0, "fsubr"},
		{0, InsFsubr, rq, rq, 0, RegST0, RegST2, 0, "fsubr"},
		{0, InsFsubr, rq, rq, 0, RegST0, RegST3, 0, "fsubr"},
		{0, InsFsubr, rq, rq, 0, RegST0, RegST4, 0, "fsubr"},
		{0, InsFsubr, rq, rq, 0, RegST0, RegST5, 0, "fsubr"},
		{0, InsFsubr, rq, rq, 0, RegST0, RegST6, 0, "fsubr"},
		{0, InsFsubr, rq, rq, 0, RegST0, RegST7, 0, "fsubr"},
		{0, InsFdiv, rq, rq, 0, RegST0, RegST0, 0, "fdiv"},
		{0, InsFdiv, rq, rq, 0, RegST0, RegST1, 0, "fdiv"},
		{0, InsFdiv, rq, rq, 0, RegST0, RegST2, 0, "fdiv"},
		{0, InsFdiv, rq, rq, 0, RegST0, RegST3, 0, "fdiv"},
		{0, InsFdiv, rq, rq, 0, RegST0, RegST4, 0, "fdiv"},
		{0, InsFdiv, rq, rq, 0, RegST0, RegST5, 0, "fdiv"},
		{0, InsFdiv, rq, rq, 0, RegST0, RegST6, 0, "fdiv"},
		{0, InsFdiv, rq, rq, 0, RegST0, RegST7, 0, "fdiv"},
		{0, InsFdivr, rq, rq, 0, RegST0, RegST0, 0, "fdivr"},
		{0, InsFdivr, rq, rq, 0, RegST0, RegST1, 0, "fdivr"},
		{0, InsFdivr, rq, rq, 0, RegST0, RegST2, 0, "fdivr"},
		{0, InsFdivr, rq, rq, 0, RegST0, RegST3, 0, "fdivr"},
		{0, InsFdivr, rq, rq, 0, RegST0, RegST4, 0, "fdivr"},
		{0, InsFdivr, rq, rq, 0, RegST0, RegST5, 0, "fdivr"},
		{0, InsFdivr, rq, rq, 0, RegST0, RegST6, 0, "fdivr"},
		{0, InsFdivr, rq, rq, 0, RegST0, RegST7, 0, "fdivr"},
	}
)

// Tables86 is the default i386 table forest.
var Tables86 = []Table{
	tblMain:     {Entries: mainEntries[:], Shift: 0, Mask: 0xff, Sub: 0, Max: 0xff},
	tbl0F:       {Entries: twoByteEntries[:], Shift: 0, Mask: 0xff, Sub: 0, Max: 0xff},
	tbl660F:     {Entries: simd660FEntries[:], Shift: 0, Mask: 0xff, Sub: 0, Max: 0xff},
	tblGrp80:    {Entries: grp80Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrp81:    {Entries: grp81Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrp83:    {Entries: grp83Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrp8F:    {Entries: grp8FEntries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpC0:    {Entries: grpC0Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpC1:    {Entries: grpC1Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpC6:    {Entries: grpC6Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpC7:    {Entries: grpC7Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpD0:    {Entries: grpD0Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpD1:    {Entries: grpD1Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpD2:    {Entries: grpD2Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpD3:    {Entries: grpD3Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpF6:    {Entries: grpF6Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpF7:    {Entries: grpF7Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpFE:    {Entries: grpFEEntries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrpFF:    {Entries: grpFFEntries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblFPUD8:    {Entries: fpuD8Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xbf, Overflow: tblFPUD8Reg},
	tblFPUD8Reg: {Entries: fpuD8RegEntries[:], Shift: 0, Mask: 0xff, Sub: 0xc0, Max: 0xff},
	tblGrp0F00:  {Entries: grp0F00Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrp0F01:  {Entries: grp0F01Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrp0FBA:  {Entries: grp0FBAEntries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
	tblGrp0FC7:  {Entries: grp0FC7Entries[:], Shift: 3, Mask: 0x07, Sub: 0, Max: 0xff},
}
