package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gdisneyleugers/vdebug/insts"
)

var _ = Describe("ParseBytes", func() {
	buf := []byte{0x44, 0x33, 0x22, 0x11, 0xfb, 0xff, 0xff, 0xff}

	It("should read little-endian values of each width", func() {
		v, err := insts.ParseBytes(buf, 0, 1, false)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(uint64(0x44)))

		v, err = insts.ParseBytes(buf, 0, 2, false)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(uint64(0x3344)))

		v, err = insts.ParseBytes(buf, 0, 4, false)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(uint64(0x11223344)))

		v, err = insts.ParseBytes(buf, 0, 8, false)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(uint64(0xfffffffb11223344)))
	})

	It("should sign-extend signed reads", func() {
		v, err := insts.ParseBytes(buf, 4, 4, true)
		Expect(err).ToNot(HaveOccurred())
		Expect(int64(v)).To(Equal(int64(-5)))

		v, err = insts.ParseBytes(buf, 4, 1, true)
		Expect(err).ToNot(HaveOccurred())
		Expect(int64(v)).To(Equal(int64(-5)))
	})

	It("should not sign-extend positive values", func() {
		v, err := insts.ParseBytes(buf, 0, 1, true)
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(uint64(0x44)))
	})

	It("should fail with ErrTruncated past the end of the buffer", func() {
		_, err := insts.ParseBytes(buf, 6, 4, false)
		Expect(err).To(MatchError(insts.ErrTruncated))

		_, err = insts.ParseBytes(buf, 8, 1, false)
		Expect(err).To(MatchError(insts.ErrTruncated))
	})
})

var _ = Describe("SignExtend", func() {
	It("should extend negative values to the target width", func() {
		Expect(insts.SignExtend(0xff, 1, 4)).To(Equal(uint64(0xffffffff)))
		Expect(insts.SignExtend(0x80, 1, 2)).To(Equal(uint64(0xff80)))
		Expect(insts.SignExtend(0xfffb, 2, 8)).To(Equal(uint64(0xfffffffffffffffb)))
	})

	It("should leave positive values unchanged", func() {
		Expect(insts.SignExtend(0x7f, 1, 4)).To(Equal(uint64(0x7f)))
		Expect(insts.SignExtend(5, 1, 8)).To(Equal(uint64(5)))
	})
})
