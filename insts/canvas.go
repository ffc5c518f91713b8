package insts

import "strings"

// Emulator supplies register and memory state for operand value and
// address queries. Implementations live outside the decode core; its
// thread-safety is its own concern.
type Emulator interface {
	GetRegister(reg int) uint64
	SetRegister(reg int, v uint64)
	ReadMemValue(addr uint64, size int) (uint64, error)
	WriteMemValue(addr uint64, v uint64, size int) error
	// GetSegmentInfo resolves the segment for an opcode (honoring any
	// segment-override prefix) to a (base, size) pair.
	GetSegmentInfo(op *Opcode) (uint64, uint64)
	IsValidPointer(addr uint64) bool
}

// Canvas receives rendered instruction text. Symbol lookups let a
// renderer replace raw addresses with names; a canvas with no symbol
// backing returns "" from both lookups.
type Canvas interface {
	AddText(s string)
	AddNameText(s, typename string)
	AddVaText(s string, va uint64)
	SymByAddr(va uint64) string
	SymHint(va uint64, idx int) string
	IsValidPointer(va uint64) bool
}

func addrToName(c Canvas, va uint64) string {
	if sym := c.SymByAddr(va); sym != "" {
		return sym
	}
	return hexAddr(va)
}

// StringCanvas is a Canvas that accumulates plain text. The lookup
// funcs are optional hooks; left nil, rendering uses raw addresses.
type StringCanvas struct {
	SymFunc  func(va uint64) string
	HintFunc func(va uint64, idx int) string
	PtrFunc  func(va uint64) bool

	b strings.Builder
}

func (c *StringCanvas) AddText(s string) { c.b.WriteString(s) }
func (c *StringCanvas) AddNameText(s, _ string) { c.b.WriteString(s) }
func (c *StringCanvas) AddVaText(s string, _ uint64) { c.b.WriteString(s) }

func (c *StringCanvas) SymByAddr(va uint64) string {
	if c.SymFunc == nil {
		return ""
	}
	return c.SymFunc(va)
}

func (c *StringCanvas) SymHint(va uint64, idx int) string {
	if c.HintFunc == nil {
		return ""
	}
	return c.HintFunc(va, idx)
}

func (c *StringCanvas) IsValidPointer(va uint64) bool {
	return c.PtrFunc != nil && c.PtrFunc(va)
}

// String returns the accumulated text.
func (c *StringCanvas) String() string { return c.b.String() }
