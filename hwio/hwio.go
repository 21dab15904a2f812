// Package hwio implements the address bus / memory map glue shared by the
// CPU and PPU: a small dispatch table from 16-bit addresses
// to devices, with unmapped reads returning zero and unmapped writes being
// silently dropped.
package hwio

import "nescore/logger"

// Device is anything that can be mapped onto a Bus: a RAM region, a
// register bank, a mapper's PRG/CHR window, or a DMA target.
type Device interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)
}

type mapping struct {
	lo, hi uint16
	dev    Device
}

// Bus dispatches 16-bit reads/writes to the most recently attached device
// whose inclusive address range contains the address. Mirroring within a range
// (e.g. the PPU collapsing $2008-$3FFF onto $2000-$2007) is each device's
// own responsibility.
type Bus struct {
	Name     string
	mappings []mapping
}

// NewBus creates an empty bus. name is used only for logging.
func NewBus(name string) *Bus {
	return &Bus{Name: name}
}

// Map attaches dev so that it handles addresses in [lo, hi] inclusive.
// Later mappings for overlapping ranges take priority over earlier ones,
// so a device can be remapped without explicitly unmapping it first.
func (b *Bus) Map(lo, hi uint16, dev Device) {
	b.mappings = append(b.mappings, mapping{lo: lo, hi: hi, dev: dev})
}

// MapMirrored calls Map once per mirror of size (hi-lo+1) up to (but not
// including) end, the way the CPU's 2KB RAM is mirrored through $1FFF or
// the PPU's register file through $3FFF.
func (b *Bus) MapMirrored(lo, hi, end uint16, dev Device) {
	size := hi - lo + 1
	for addr := lo; addr < end; addr += size {
		b.Map(addr, addr+size-1, dev)
	}
}

func (b *Bus) find(addr uint16) Device {
	for i := len(b.mappings) - 1; i >= 0; i-- {
		m := b.mappings[i]
		if addr >= m.lo && addr <= m.hi {
			return m.dev
		}
	}
	return nil
}

// Read8 reads one byte, returning 0 for unmapped addresses.
func (b *Bus) Read8(addr uint16) uint8 {
	dev := b.find(addr)
	if dev == nil {
		logger.ModBus.Debug("unmapped read").Str("bus", b.Name).Hex16("addr", addr).End()
		return 0
	}
	return dev.Read8(addr)
}

// Write8 writes one byte, dropping it silently if addr is unmapped.
func (b *Bus) Write8(addr uint16, val uint8) {
	dev := b.find(addr)
	if dev == nil {
		logger.ModBus.Debug("unmapped write").Str("bus", b.Name).Hex16("addr", addr).Hex8("val", val).End()
		return
	}
	dev.Write8(addr, val)
}

// ReadBlock copies len(dst) bytes starting at addr, one device access at a
// time. Used by OAM DMA to pull a whole CPU page at once.
func (b *Bus) ReadBlock(addr uint16, dst []uint8) {
	for i := range dst {
		dst[i] = b.Read8(addr + uint16(i))
	}
}

// Slice is a Device backed directly by a byte slice, with addresses masked
// into the slice's length (which must be a power of two). Used for the
// CPU's internal RAM.
type Slice struct {
	Data []byte
	mask uint16
}

// NewSlice wraps data as a Device. len(data) must be a power of two.
func NewSlice(data []byte) *Slice {
	if len(data) == 0 || len(data)&(len(data)-1) != 0 {
		panic("hwio: slice length must be a power of two")
	}
	return &Slice{Data: data, mask: uint16(len(data) - 1)}
}

func (s *Slice) Read8(addr uint16) uint8 { return s.Data[addr&s.mask] }

func (s *Slice) Write8(addr uint16, val uint8) { s.Data[addr&s.mask] = val }

// ReadOnlySlice behaves like Slice but ignores writes, for ROM windows.
type ReadOnlySlice struct {
	Data []byte
	mask uint16
}

// NewReadOnlySlice wraps data as a read-only Device. len(data) must be a
// power of two; callers needing an odd-sized ROM bank should pad it first.
func NewReadOnlySlice(data []byte) *ReadOnlySlice {
	if len(data) == 0 || len(data)&(len(data)-1) != 0 {
		panic("hwio: slice length must be a power of two")
	}
	return &ReadOnlySlice{Data: data, mask: uint16(len(data) - 1)}
}

func (s *ReadOnlySlice) Read8(addr uint16) uint8 { return s.Data[addr&s.mask] }

func (s *ReadOnlySlice) Write8(addr uint16, val uint8) {}

// FuncDevice adapts a pair of read/write closures to the Device interface,
// for single registers that need custom side effects (mapper registers,
// controller strobe latches) without a whole Reg8.
type FuncDevice struct {
	ReadFn  func(addr uint16) uint8
	WriteFn func(addr uint16, val uint8)
}

func (f FuncDevice) Read8(addr uint16) uint8 {
	if f.ReadFn == nil {
		return 0
	}
	return f.ReadFn(addr)
}

func (f FuncDevice) Write8(addr uint16, val uint8) {
	if f.WriteFn != nil {
		f.WriteFn(addr, val)
	}
}
