// Package cpu implements an interpreter for the documented 6502
// instruction set used by the NES, accounting cycles per-instruction
// rather than emulating individual bus phases.
package cpu

import (
	"nescore/debug"
	"nescore/hwio"
	"nescore/logger"
)

// Vector addresses: little-endian 16-bit pointers read at RESET/NMI/IRQ
//.
const (
	NMIVector   = 0xFFFA
	ResetVector = 0xFFFC
	IRQVector   = 0xFFFE
)

// StackBase is the fixed page the 256-byte stack lives in.
const StackBase = 0x0100

// CPU holds the 6502 register file and drives instruction execution
// against a Bus. RAM, PPU registers and the mapper are mapped onto Bus by
// its owner (the nes package), not by CPU itself.
type CPU struct {
	Bus *hwio.Bus

	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       P

	// Clock is the running, monotonic total of CPU cycles spent since
	// power-up or reset.
	Clock int64

	Hook debug.Hook

	pendingNMI bool
	pendingIRQ bool
}

// NewCPU creates a CPU wired to bus. hook may be nil, in which case a
// no-op debug.Hook is used.
func NewCPU(bus *hwio.Bus, hook debug.Hook) *CPU {
	if hook == nil {
		hook = debug.NoOp{}
	}
	return &CPU{Bus: bus, Hook: hook}
}

// Reset puts the CPU into its power-on state: zero every register including P, reset SP,
// clear cycle counters, load PC from the reset vector, and charge a
// BRK's worth of cycles.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = 0
	c.Clock = 0
	c.pendingNMI = false
	c.pendingIRQ = false
	c.PC = c.Read16(ResetVector)
	c.Clock += 7
}

// RequestNMI latches a non-maskable interrupt, serviced before the next
// instruction fetch regardless of the Interrupt-Disable flag. The PPU calls this at VBlank onset when NMI-on-VBlank is enabled.
func (c *CPU) RequestNMI() { c.pendingNMI = true }

// RequestIRQ latches a maskable interrupt, serviced before the next
// instruction fetch only if the Interrupt-Disable flag is clear.
func (c *CPU) RequestIRQ() { c.pendingIRQ = true }

// Read8 reads one byte off the bus.
func (c *CPU) Read8(addr uint16) uint8 { return c.Bus.Read8(addr) }

// Write8 writes one byte to the bus.
func (c *CPU) Write8(addr uint16, val uint8) { c.Bus.Write8(addr, val) }

// Read16 reads a little-endian 16-bit value.
func (c *CPU) Read16(addr uint16) uint16 {
	lo := c.Read8(addr)
	hi := c.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16PageWrap reads a little-endian 16-bit value whose high byte is
// fetched by wrapping addr+1 within the same page. This reproduces the
// classic 6502 JMP (indirect) page-wrap behavior and is also what
// (Indirect,X)/(Indirect),Y need for their zero-page pointer fetch.
func (c *CPU) read16PageWrap(addr uint16) uint16 {
	lo := c.Read8(addr)
	hi := c.Read8((addr & 0xFF00) | ((addr + 1) & 0x00FF))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) push8(val uint8) {
	c.Write8(StackBase+uint16(c.SP), val)
	c.SP--
}

func (c *CPU) pop8() uint8 {
	c.SP++
	return c.Read8(StackBase + uint16(c.SP))
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val))
}

func (c *CPU) pop16() uint16 {
	lo := c.pop8()
	hi := c.pop8()
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction and returns its cycle cost.
func (c *CPU) Step() int64 {
	before := c.Clock
	c.serviceInterrupts()
	if !c.Hook.MayContinue(c.PC) {
		return 0
	}

	opcode := c.Read8(c.PC)
	c.PC++

	entry := opcodeTable[opcode]
	addr, crossed, indexed := resolveAddr(c, entry.mode)
	extra := entry.fn(c, addr)
	switch entry.class {
	case classRead:
		if crossed {
			extra++
		}
	case classRMW:
		if indexed {
			extra++
		}
	}
	c.Clock += int64(entry.cycles) + int64(extra)
	return c.Clock - before
}

// Run executes instructions until Clock reaches at least until, and
// returns the number of cycles actually spent. A debug.Hook veto on
// MayContinue stalls Run without spending cycles, so callers driving a
// fixed-length frame budget should check Clock against until themselves
// if a hook is attached.
func (c *CPU) Run(until int64) int64 {
	start := c.Clock
	for c.Clock < until {
		if c.Step() == 0 && !c.Hook.MayContinue(c.PC) {
			break
		}
	}
	return c.Clock - start
}

func (c *CPU) serviceInterrupts() {
	switch {
	case c.pendingNMI:
		c.pendingNMI = false
		c.interrupt(NMIVector, false)
	case c.pendingIRQ && !c.P.I():
		c.pendingIRQ = false
		c.interrupt(IRQVector, false)
	}
}

// interrupt implements the shared BRK/IRQ/NMI push sequence: push PC, push P (Break set only for software BRK), set I, load
// PC from vector.
func (c *CPU) interrupt(vector uint16, brk bool) {
	c.push16(c.PC)
	pushed := c.P | flagUnused
	if brk {
		pushed |= flagBreak
	} else {
		pushed &^= flagBreak
	}
	c.push8(uint8(pushed))
	c.P |= flagInterrupt
	c.PC = c.Read16(vector)

	logger.ModCPU.Debug("interrupt").Hex16("vector", vector).Bool("brk", brk).End()
}

// P is the 6502 processor status register.
type P uint8

const (
	flagCarry     P = 1 << 0
	flagZero      P = 1 << 1
	flagInterrupt P = 1 << 2
	flagDecimal   P = 1 << 3
	flagBreak     P = 1 << 4
	flagUnused    P = 1 << 5
	flagOverflow  P = 1 << 6
	flagNegative  P = 1 << 7
)

func (p P) C() bool { return p&flagCarry != 0 }
func (p P) Z() bool { return p&flagZero != 0 }
func (p P) I() bool { return p&flagInterrupt != 0 }
func (p P) D() bool { return p&flagDecimal != 0 }
func (p P) B() bool { return p&flagBreak != 0 }
func (p P) V() bool { return p&flagOverflow != 0 }
func (p P) N() bool { return p&flagNegative != 0 }

func (p *P) set(flag P, v bool) {
	if v {
		*p |= flag
	} else {
		*p &^= flag
	}
}

// setNZ sets N from bit 7 of v and Z from v == 0, the common tail of
// nearly every load/transfer/logical/arithmetic instruction.
func (p *P) setNZ(v uint8) {
	p.set(flagNegative, v&0x80 != 0)
	p.set(flagZero, v == 0)
}

// String renders the flag register as one character per bit,
// uppercase when set.
func (p P) String() string {
	const bits = "czidb-vn"
	s := make([]byte, 8)
	for i := 0; i < 8; i++ {
		c := bits[i]
		if p&(1<<uint(i)) != 0 {
			c -= 'a' - 'A'
		}
		s[7-i] = c
	}
	return string(s)
}
