package insts

import "fmt"

// i386 register identifiers. The numeric layout groups the register
// banks contiguously so an addressing method can select an alternate
// bank by adding the bank's first id as an offset.
const (
	RegEAX = iota
	RegECX
	RegEDX
	RegEBX
	RegESP
	RegEBP
	RegESI
	RegEDI
	RegEIP
	RegEFLAGS
	RegDebug0
	RegDebug1
	RegDebug2
	RegDebug3
	RegDebug4
	RegDebug5
	RegDebug6
	RegDebug7
	RegCtrl0
	RegCtrl1
	RegCtrl2
	RegCtrl3
	RegCtrl4
	RegCtrl5
	RegCtrl6
	RegCtrl7
	RegTest0
	RegTest1
	RegTest2
	RegTest3
	RegTest4
	RegTest5
	RegTest6
	RegTest7
	RegST0
	RegST1
	RegST2
	RegST3
	RegST4
	RegST5
	RegST6
	RegST7
	RegMM0
	RegMM1
	RegMM2
	RegMM3
	RegMM4
	RegMM5
	RegMM6
	RegMM7
	RegXMM0
	RegXMM1
	RegXMM2
	RegXMM3
	RegXMM4
	RegXMM5
	RegXMM6
	RegXMM7
	RegES
	RegCS
	RegSS
	RegDS
	RegFS
	RegGS

	// RegCount is the size of the full register slab.
	RegCount
)

// RegNone marks an absent register slot (SIB base or index).
const RegNone = -1

// Meta bits OR'd into a register id to denote a sub-register view.
// Bits 24-31 hold the bit shift of the view within the full register,
// bits 16-23 hold the view width in bits.
const (
	MetaLow8  = 0x00080000 // al, cl, dl, bl
	MetaHigh8 = 0x08080000 // ah, ch, dh, bh
	MetaLow16 = 0x00100000 // ax .. di

	regIndexMask = 0x0000FFFF
)

// RegIndex strips the meta view bits from a register id.
func RegIndex(id int) int { return id & regIndexMask }

// RegMeta returns only the meta view bits of a register id.
func RegMeta(id int) int { return id &^ regIndexMask }

var regNames = [RegCount]string{
	"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
	"eip", "eflags",
	"debug0", "debug1", "debug2", "debug3", "debug4", "debug5", "debug6", "debug7",
	"ctrl0", "ctrl1", "ctrl2", "ctrl3", "ctrl4", "ctrl5", "ctrl6", "ctrl7",
	"test0", "test1", "test2", "test3", "test4", "test5", "test6", "test7",
	"st0", "st1", "st2", "st3", "st4", "st5", "st6", "st7",
	"mm0", "mm1", "mm2", "mm3", "mm4", "mm5", "mm6", "mm7",
	"xmm0", "xmm1", "xmm2", "xmm3", "xmm4", "xmm5", "xmm6", "xmm7",
	"es", "cs", "ss", "ds", "fs", "gs",
}

var (
	low8Names  = [4]string{"al", "cl", "dl", "bl"}
	high8Names = [4]string{"ah", "ch", "dh", "bh"}
	low16Names = [8]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}
)

// RegisterContext resolves register ids (including meta sub-register
// views) to display names. Operands hold a non-owning reference to the
// context used only at render time.
type RegisterContext struct{}

// GetRegisterName returns the display name for a register id.
func (RegisterContext) GetRegisterName(id int) string {
	idx := RegIndex(id)
	switch RegMeta(id) {
	case MetaLow8:
		if idx < len(low8Names) {
			return low8Names[idx]
		}
	case MetaHigh8:
		if idx < len(high8Names) {
			return high8Names[idx]
		}
	case MetaLow16:
		if idx < len(low16Names) {
			return low16Names[idx]
		}
	case 0:
		if idx < len(regNames) {
			return regNames[idx]
		}
	}
	return fmt.Sprintf("reg%#x", id)
}
