package insts

import "fmt"

// parseModRM splits a ModR/M byte into its mod, reg and r/m fields.
func parseModRM(b byte) (mod, reg, rm int) {
	return int(b>>6) & 3, int(b>>3) & 7, int(b) & 7
}

// byteRegOffset rewrites a register index to its 8-bit sub-register
// view: indices 0-3 are the low bytes, 4-7 the high bytes of the first
// four general registers. 32-bit mode only.
func byteRegOffset(val int) int {
	if val < 4 {
		return val | MetaLow8
	}
	return (val - 4) | MetaHigh8
}

type sibParts struct {
	scale  int // encoded 0..3
	index  int // RegNone if absent
	base   int // RegNone if absent
	imm    uint64
	hasImm bool
}

// parseSib decodes a SIB byte (and, for the mod=0 base=5 form, its
// trailing absolute displacement), returning the bytes consumed.
func parseSib(buf []byte, offset, mod int) (int, sibParts, error) {
	if offset >= len(buf) {
		return 0, sibParts{}, fmt.Errorf("%w: missing sib byte", ErrTruncated)
	}

	b := buf[offset]
	s := sibParts{
		scale: int(b>>6) & 3,
		index: int(b>>3) & 7,
		base:  int(b) & 7,
	}
	size := 1

	// Index 4 encodes "no index register".
	if s.index == 4 {
		s.index = RegNone
	}

	// Base 5 with mod 0 replaces the base register with an absolute
	// 32-bit displacement; with mod 1 or 2 the base stays ebp and the
	// displacement follows the SIB byte as usual.
	if s.base == 5 && mod == 0 {
		imm, err := ParseBytes(buf, offset+size, 4, false)
		if err != nil {
			return 0, sibParts{}, err
		}
		s.imm, s.hasImm = imm, true
		s.base = RegNone
		size += 4
	}

	return size, s, nil
}

// extendedParseModRM materializes the r/m operand of a ModR/M byte,
// which may be a register, a register-relative dereference, an
// absolute dereference, or a SIB form. regbase shifts register ids
// into an alternate bank (MMX, SIMD, ...). Returns the bytes consumed
// starting at offset.
func (d *Disasm) extendedParseModRM(buf []byte, offset, opersize, regbase int) (int, Operand, error) {
	if offset >= len(buf) {
		return 0, nil, fmt.Errorf("%w: missing modrm byte", ErrTruncated)
	}

	mod, _, rm := parseModRM(buf[offset])
	size := 1

	switch mod {
	case 3:
		if opersize == 1 {
			rm = byteRegOffset(rm)
		} else if opersize == 2 {
			rm |= MetaLow16
		}
		return size, &RegOper{Reg: rm + regbase, Tsize: opersize}, nil

	case 0:
		switch rm {
		case 5:
			imm, err := ParseBytes(buf, offset+size, 4, false)
			if err != nil {
				return 0, nil, err
			}
			size += 4
			return size, &ImmMemOper{Imm: imm, Tsize: opersize}, nil

		case 4:
			sibsize, s, err := parseSib(buf, offset+size, mod)
			if err != nil {
				return 0, nil, err
			}
			size += sibsize
			oper := d.sibOper(s, opersize, regbase, 0)
			return size, oper, nil

		default:
			return size, &RegMemOper{Reg: regbase + rm, Tsize: opersize}, nil
		}

	case 1:
		if rm == 4 {
			sibsize, s, err := parseSib(buf, offset+size, mod)
			if err != nil {
				return 0, nil, err
			}
			size += sibsize
			disp, err := ParseBytes(buf, offset+size, 1, true)
			if err != nil {
				return 0, nil, err
			}
			size++
			return size, d.sibOper(s, opersize, regbase, int64(disp)), nil
		}
		disp, err := ParseBytes(buf, offset+size, 1, true)
		if err != nil {
			return 0, nil, err
		}
		size++
		return size, &RegMemOper{Reg: regbase + rm, Tsize: opersize, Disp: int64(disp)}, nil

	default: // mod == 2
		if rm == 4 {
			sibsize, s, err := parseSib(buf, offset+size, mod)
			if err != nil {
				return 0, nil, err
			}
			size += sibsize
			disp, err := ParseBytes(buf, offset+size, 4, true)
			if err != nil {
				return 0, nil, err
			}
			size += 4
			return size, d.sibOper(s, opersize, regbase, int64(disp)), nil
		}
		disp, err := ParseBytes(buf, offset+size, 4, true)
		if err != nil {
			return 0, nil, err
		}
		size += 4
		return size, &RegMemOper{Reg: regbase + rm, Tsize: opersize, Disp: int64(disp)}, nil
	}
}

func (d *Disasm) sibOper(s sibParts, opersize, regbase int, disp int64) *SibOper {
	base, index := s.base, s.index
	if base != RegNone {
		base += regbase
	}
	if index != RegNone {
		index += regbase
	}
	return &SibOper{
		Tsize:  opersize,
		Reg:    base,
		Index:  index,
		Scale:  scaleLookup[s.scale],
		Disp:   disp,
		Imm:    s.imm,
		HasImm: s.hasImm,
	}
}
