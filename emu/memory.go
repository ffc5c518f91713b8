package emu

// pageSize is the granularity of the sparse backing store.
const pageSize = 0x1000

// Memory is a sparse, page-granular byte store. Pages materialize on
// first write; reads of unmapped addresses return zero.
type Memory struct {
	pages map[uint64][]byte
}

// NewMemory creates an empty memory.
func NewMemory() *Memory {
	return &Memory{pages: make(map[uint64][]byte)}
}

// Read8 reads one byte.
func (m *Memory) Read8(addr uint64) byte {
	page, ok := m.pages[addr/pageSize]
	if !ok {
		return 0
	}
	return page[addr%pageSize]
}

// Write8 writes one byte, materializing the page if needed.
func (m *Memory) Write8(addr uint64, v byte) {
	pn := addr / pageSize
	page, ok := m.pages[pn]
	if !ok {
		page = make([]byte, pageSize)
		m.pages[pn] = page
	}
	page[addr%pageSize] = v
}

// WriteBytes copies data into memory starting at addr.
func (m *Memory) WriteBytes(addr uint64, data []byte) {
	for i, b := range data {
		m.Write8(addr+uint64(i), b)
	}
}

// ReadBytes reads n bytes starting at addr.
func (m *Memory) ReadBytes(addr uint64, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = m.Read8(addr + uint64(i))
	}
	return out
}

// IsMapped reports whether the page containing addr has been written.
func (m *Memory) IsMapped(addr uint64) bool {
	_, ok := m.pages[addr/pageSize]
	return ok
}
