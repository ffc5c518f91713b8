package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gdisneyleugers/vdebug/insts"
)

var _ = Describe("Operands", func() {
	Describe("RegOper", func() {
		It("should repr as the register name", func() {
			o := &insts.RegOper{Reg: insts.RegEBX, Tsize: 4}
			Expect(o.Repr(nil)).To(Equal("ebx"))
			Expect(o.IsDeref()).To(BeFalse())
		})

		It("should repr sub-register views", func() {
			Expect((&insts.RegOper{Reg: insts.RegEAX | insts.MetaLow8, Tsize: 1}).Repr(nil)).To(Equal("al"))
			Expect((&insts.RegOper{Reg: insts.RegEDX | insts.MetaHigh8, Tsize: 1}).Repr(nil)).To(Equal("dh"))
			Expect((&insts.RegOper{Reg: insts.RegEDI | insts.MetaLow16, Tsize: 2}).Repr(nil)).To(Equal("di"))
		})

		It("should compare structurally", func() {
			a := &insts.RegOper{Reg: insts.RegEAX, Tsize: 4}
			Expect(a.Equals(&insts.RegOper{Reg: insts.RegEAX, Tsize: 4})).To(BeTrue())
			Expect(a.Equals(&insts.RegOper{Reg: insts.RegEAX, Tsize: 2})).To(BeFalse())
			Expect(a.Equals(&insts.RegOper{Reg: insts.RegECX, Tsize: 4})).To(BeFalse())
			Expect(a.Equals(&insts.ImmOper{Imm: 0, Tsize: 4})).To(BeFalse())
		})
	})

	Describe("ImmOper", func() {
		It("should print small values in decimal and large in hex", func() {
			Expect((&insts.ImmOper{Imm: 42, Tsize: 4}).Repr(nil)).To(Equal("42"))
			Expect((&insts.ImmOper{Imm: 4096, Tsize: 4}).Repr(nil)).To(Equal("4096"))
			Expect((&insts.ImmOper{Imm: 0x11223344, Tsize: 4}).Repr(nil)).To(Equal("0x11223344"))
		})

		It("should return its literal value without an emulator", func() {
			v, ok := (&insts.ImmOper{Imm: 7, Tsize: 1}).Value(nil, nil)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(uint64(7)))
		})

		It("should refuse writes", func() {
			Expect((&insts.ImmOper{Imm: 7, Tsize: 1}).SetValue(nil, nil, 9)).To(BeFalse())
		})
	})

	Describe("RegMemOper", func() {
		It("should repr the displacement with its sign", func() {
			Expect((&insts.RegMemOper{Reg: insts.RegEBP, Tsize: 4, Disp: 8}).Repr(nil)).
				To(Equal("dword [ebp + 8]"))
			Expect((&insts.RegMemOper{Reg: insts.RegEBP, Tsize: 4, Disp: -8}).Repr(nil)).
				To(Equal("dword [ebp - 8]"))
			Expect((&insts.RegMemOper{Reg: insts.RegESI, Tsize: 1, Disp: 0}).Repr(nil)).
				To(Equal("byte [esi]"))
		})

		It("should be a dereference with no decode-time address", func() {
			o := &insts.RegMemOper{Reg: insts.RegEBP, Tsize: 4}
			Expect(o.IsDeref()).To(BeTrue())
			_, ok := o.Addr(nil, nil)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("ImmMemOper", func() {
		It("should repr the size label and address", func() {
			o := &insts.ImmMemOper{Imm: 0x400000, Tsize: 2}
			Expect(o.Repr(nil)).To(Equal("word [0x00400000]"))
		})

		It("should resolve its address without an emulator", func() {
			addr, ok := (&insts.ImmMemOper{Imm: 0x400000, Tsize: 4}).Addr(nil, nil)
			Expect(ok).To(BeTrue())
			Expect(addr).To(Equal(uint64(0x400000)))
		})
	})

	Describe("SibOper", func() {
		It("should repr each present term", func() {
			o := &insts.SibOper{
				Tsize: 4,
				Reg:   insts.RegEBX,
				Index: insts.RegECX,
				Scale: 4,
				Disp:  16,
			}
			Expect(o.Repr(nil)).To(Equal("dword [ebx + ecx * 4 + 16]"))
		})

		It("should omit the scale when it is one", func() {
			o := &insts.SibOper{
				Tsize: 4,
				Reg:   insts.RegESP,
				Index: insts.RegEDX,
				Scale: 1,
			}
			Expect(o.Repr(nil)).To(Equal("dword [esp + edx]"))
		})

		It("should repr an absolute term in place of the base", func() {
			o := &insts.SibOper{
				Tsize:  4,
				Reg:    insts.RegNone,
				Index:  insts.RegEAX,
				Scale:  4,
				Imm:    0x12345678,
				HasImm: true,
			}
			Expect(o.Repr(nil)).To(Equal("dword [0x12345678 + eax * 4]"))
		})

		It("should compare all fields", func() {
			a := &insts.SibOper{Tsize: 4, Reg: insts.RegEAX, Index: insts.RegNone, Scale: 1, Disp: 8}
			b := &insts.SibOper{Tsize: 4, Reg: insts.RegEAX, Index: insts.RegNone, Scale: 1, Disp: 8}
			Expect(a.Equals(b)).To(BeTrue())
			b.Scale = 2
			Expect(a.Equals(b)).To(BeFalse())
		})
	})
})

var _ = Describe("RegisterContext", func() {
	var ctx insts.RegisterContext

	It("should name the full general registers", func() {
		Expect(ctx.GetRegisterName(insts.RegEAX)).To(Equal("eax"))
		Expect(ctx.GetRegisterName(insts.RegEDI)).To(Equal("edi"))
		Expect(ctx.GetRegisterName(insts.RegEFLAGS)).To(Equal("eflags"))
	})

	It("should name the alternate banks", func() {
		Expect(ctx.GetRegisterName(insts.RegMM0 + 3)).To(Equal("mm3"))
		Expect(ctx.GetRegisterName(insts.RegXMM0 + 7)).To(Equal("xmm7"))
		Expect(ctx.GetRegisterName(insts.RegCtrl0)).To(Equal("ctrl0"))
		Expect(ctx.GetRegisterName(insts.RegST0 + 2)).To(Equal("st2"))
		Expect(ctx.GetRegisterName(insts.RegGS)).To(Equal("gs"))
	})

	It("should round-trip the sub-register views", func() {
		Expect(ctx.GetRegisterName(insts.RegEAX | insts.MetaLow8)).To(Equal("al"))
		Expect(ctx.GetRegisterName(insts.RegEBX | insts.MetaHigh8)).To(Equal("bh"))
		Expect(ctx.GetRegisterName(insts.RegESP | insts.MetaLow16)).To(Equal("sp"))
	})
})
