package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gdisneyleugers/vdebug/emu"
	"github.com/gdisneyleugers/vdebug/insts"
)

var _ = Describe("Opcode branches", func() {
	var d *insts.Disasm

	BeforeEach(func() {
		d = insts.NewDisasm()
	})

	decode := func(va uint64, bytes ...byte) *insts.Opcode {
		GinkgoHelper()
		op, err := d.Disasm(bytes, 0, va)
		Expect(err).ToNot(HaveOccurred())
		return op
	}

	// e9 fb ff ff ff    jmp 0x1000 (self-referential loop)
	It("should resolve an unconditional pc-relative jump", func() {
		op := decode(0x1000, 0xe9, 0xfb, 0xff, 0xff, 0xff)

		Expect(op.Mnem).To(Equal("jmp"))
		Expect(op.Size).To(Equal(5))
		Expect(op.IFlags).To(Equal(uint32(insts.IFNoFall | insts.IFBranch)))

		rel, ok := op.Opers[0].(*insts.PcRelOper)
		Expect(ok).To(BeTrue())
		Expect(rel.Imm).To(Equal(int64(-5)))
		v, _ := rel.Value(op, nil)
		Expect(v).To(Equal(uint64(0x1000)))

		Expect(op.Branches(nil)).To(Equal([]insts.Branch{
			{VA: 0x1000, Flags: 0},
		}))
	})

	// 74 05             jz 0x1007
	It("should mark both edges of a conditional branch", func() {
		op := decode(0x1000, 0x74, 0x05)

		Expect(op.Mnem).To(Equal("jz"))
		Expect(op.Size).To(Equal(2))
		Expect(op.IFlags).To(Equal(uint32(insts.IFBranch)))

		rel, ok := op.Opers[0].(*insts.PcRelOper)
		Expect(ok).To(BeTrue())
		Expect(rel.Imm).To(Equal(int64(5)))
		Expect(rel.Tsize).To(Equal(1))

		Expect(op.Branches(nil)).To(Equal([]insts.Branch{
			{VA: 0x1002, Flags: insts.BRFall | insts.BRCond},
			{VA: 0x1007, Flags: insts.BRCond},
		}))
	})

	// e8 00 00 00 00    call 0x1005
	It("should mark call targets as procedures and keep the fallthrough", func() {
		op := decode(0x1000, 0xe8, 0x00, 0x00, 0x00, 0x00)

		Expect(op.IFlags).To(Equal(uint32(insts.IFCall)))
		Expect(op.Branches(nil)).To(Equal([]insts.Branch{
			{VA: 0x1005, Flags: insts.BRFall},
			{VA: 0x1005, Flags: insts.BRProc},
		}))
	})

	// ff d0             call eax
	It("should resolve register call targets only with an emulator", func() {
		op := decode(0x1000, 0xff, 0xd0)

		Expect(op.Branches(nil)).To(Equal([]insts.Branch{
			{VA: 0x1002, Flags: insts.BRFall},
		}))

		e := emu.NewEmulator(emu.WithRegister(insts.RegEAX, 0x4000))
		Expect(op.Branches(e)).To(Equal([]insts.Branch{
			{VA: 0x1002, Flags: insts.BRFall},
			{VA: 0x4000, Flags: insts.BRProc},
		}))
	})

	// ff 25 00 00 40 00 jmp dword [0x00400000]
	It("should flag dereferenced branch targets", func() {
		op := decode(0x1000, 0xff, 0x25, 0x00, 0x00, 0x40, 0x00)

		Expect(op.Branches(nil)).To(Equal([]insts.Branch{
			{VA: 0x00400000, Flags: insts.BRDeref},
		}))
	})

	Describe("scale-4 jump tables", func() {
		// ff 24 85 78 56 34 12  jmp dword [0x12345678 + eax * 4]
		It("should report the table base without an emulator", func() {
			op := decode(0x1000, 0xff, 0x24, 0x85, 0x78, 0x56, 0x34, 0x12)

			Expect(op.Size).To(Equal(7))
			sib, ok := op.Opers[0].(*insts.SibOper)
			Expect(ok).To(BeTrue())
			Expect(sib.Scale).To(Equal(4))

			Expect(op.Branches(nil)).To(Equal([]insts.Branch{
				{VA: 0x12345678, Flags: insts.BRDeref | insts.BRTable},
			}))
		})

		It("should walk the table while slots hold valid pointers", func() {
			op := decode(0x1000, 0xff, 0x24, 0x85, 0x00, 0x50, 0x40, 0x00)

			e := emu.NewEmulator(
				// Two case targets followed by a non-pointer sentinel.
				emu.WithMem(0x405000, []byte{
					0x00, 0x20, 0x00, 0x00,
					0x10, 0x20, 0x00, 0x00,
					0xef, 0xbe, 0xad, 0xde,
				}),
				emu.WithMem(0x2000, []byte{0x90}),
			)

			Expect(op.Branches(e)).To(Equal([]insts.Branch{
				{VA: 0x2000, Flags: insts.BRCond},
				{VA: 0x2010, Flags: insts.BRCond},
			}))
		})
	})
})

var _ = Describe("Opcode rendering", func() {
	var d *insts.Disasm

	BeforeEach(func() {
		d = insts.NewDisasm()
	})

	decode := func(va uint64, bytes ...byte) *insts.Opcode {
		GinkgoHelper()
		op, err := d.Disasm(bytes, 0, va)
		Expect(err).ToNot(HaveOccurred())
		return op
	}

	It("should render the prefix label, mnemonic and operands", func() {
		op := decode(0x1000, 0xf0, 0x01, 0x0d, 0x00, 0x00, 0x40, 0x00)

		var c insts.StringCanvas
		op.Render(&c)
		Expect(c.String()).To(Equal("lock: add dword [0x00400000],ecx"))
	})

	It("should replace addresses with symbol names when the canvas resolves them", func() {
		// a1 00 00 40 00    mov eax, dword [0x00400000]
		op := decode(0x1000, 0xa1, 0x00, 0x00, 0x40, 0x00)

		c := insts.StringCanvas{
			SymFunc: func(va uint64) string {
				if va == 0x00400000 {
					return "gTickCount"
				}
				return ""
			},
		}
		op.Render(&c)
		Expect(c.String()).To(Equal("mov eax,dword [gTickCount]"))
	})

	It("should prefer symbol hints for pc-relative targets", func() {
		// e8 fb ff ff ff    call 0x1000
		op := decode(0x1000, 0xe8, 0xfb, 0xff, 0xff, 0xff)

		c := insts.StringCanvas{
			HintFunc: func(va uint64, idx int) string {
				if va == 0x1000 && idx == 0 {
					return "loc_1000"
				}
				return ""
			},
		}
		op.Render(&c)
		Expect(c.String()).To(Equal("call loc_1000"))
	})

	It("should render register names regardless of hints", func() {
		// 89 e5             mov ebp, esp
		op := decode(0x1000, 0x89, 0xe5)

		c := insts.StringCanvas{
			HintFunc: func(uint64, int) string { return "bogus" },
		}
		op.Render(&c)
		Expect(c.String()).To(Equal("mov ebp,esp"))
	})

	It("should render immediates as pointers when the canvas validates them", func() {
		// 68 00 00 40 00    push 0x00400000
		op := decode(0x1000, 0x68, 0x00, 0x00, 0x40, 0x00)

		c := insts.StringCanvas{
			PtrFunc: func(va uint64) bool { return va == 0x00400000 },
		}
		op.Render(&c)
		Expect(c.String()).To(Equal("push 0x00400000"))
	})
})
