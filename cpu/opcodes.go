package cpu

// This file implements every documented 6502 opcode. Unassigned opcode
// slots behave as a 2-cycle, no-effect instruction, close enough to how
// the NES's 2A03 actually reacts to most illegal opcodes without
// emulating their individual side effects.

// mode identifies one of the 6502's addressing modes.
type mode int

const (
	modeImplied mode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

// cycleClass distinguishes how an addressing-mode page-crossing affects
// an instruction's total cycle count: reads only pay the extra cycle
// when a page is actually crossed, while stores and read-modify-write
// instructions always pay it for indexed modes regardless of crossing.
type cycleClass int

const (
	classNone cycleClass = iota
	classRead
	classRMW
)

type opEntry struct {
	mnemonic string
	mode     mode
	cycles   uint8
	class    cycleClass
	fn       func(c *CPU, addr uint16) int64
}

var opcodeTable [256]opEntry

func pageCrossed(a, b uint16) bool { return a&0xFF00 != b&0xFF00 }

// resolveAddr advances PC past an instruction's operand bytes and
// returns the effective address, whether the computed address crossed a
// page boundary, and whether the mode is an indexed one at all (used to
// decide which cycleClass bonus applies). Implied, Accumulator and
// Relative modes are handled by their instruction functions directly and
// fall through the zero value here.
func resolveAddr(c *CPU, m mode) (addr uint16, crossed, indexed bool) {
	switch m {
	case modeImmediate:
		addr = c.PC
		c.PC++
	case modeZeroPage:
		addr = uint16(c.Read8(c.PC))
		c.PC++
	case modeZeroPageX:
		addr = uint16(c.Read8(c.PC) + c.X)
		c.PC++
	case modeZeroPageY:
		addr = uint16(c.Read8(c.PC) + c.Y)
		c.PC++
	case modeAbsolute:
		addr = c.Read16(c.PC)
		c.PC += 2
	case modeAbsoluteX:
		base := c.Read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.X)
		crossed, indexed = pageCrossed(base, addr), true
	case modeAbsoluteY:
		base := c.Read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.Y)
		crossed, indexed = pageCrossed(base, addr), true
	case modeIndirect:
		ptr := c.Read16(c.PC)
		c.PC += 2
		addr = c.read16PageWrap(ptr)
	case modeIndirectX:
		ptr := c.Read8(c.PC) + c.X
		c.PC++
		addr = c.read16PageWrap(uint16(ptr))
	case modeIndirectY:
		ptr := c.Read8(c.PC)
		c.PC++
		base := c.read16PageWrap(uint16(ptr))
		addr = base + uint16(c.Y)
		crossed, indexed = pageCrossed(base, addr), true
	case modeRelative:
		offset := int8(c.Read8(c.PC))
		c.PC++
		addr = uint16(int32(c.PC) + int32(offset))
		crossed = pageCrossed(c.PC, addr)
	}
	return
}

func init() {
	nopEntry := opEntry{mnemonic: "NOP", mode: modeImplied, cycles: 2, class: classNone, fn: opNOP}
	for i := range opcodeTable {
		opcodeTable[i] = nopEntry
	}
	for _, d := range opcodeDefs {
		opcodeTable[d.opcode] = opEntry{
			mnemonic: d.mnemonic,
			mode:     d.mode,
			cycles:   d.cycles,
			class:    d.class,
			fn:       d.fn,
		}
	}
}

type opDef struct {
	opcode   byte
	mnemonic string
	mode     mode
	cycles   uint8
	class    cycleClass
	fn       func(c *CPU, addr uint16) int64
}

var opcodeDefs = []opDef{
	{0x69, "ADC", modeImmediate, 2, classRead, opADC}, {0x65, "ADC", modeZeroPage, 3, classRead, opADC},
	{0x75, "ADC", modeZeroPageX, 4, classRead, opADC}, {0x6D, "ADC", modeAbsolute, 4, classRead, opADC},
	{0x7D, "ADC", modeAbsoluteX, 4, classRead, opADC}, {0x79, "ADC", modeAbsoluteY, 4, classRead, opADC},
	{0x61, "ADC", modeIndirectX, 6, classRead, opADC}, {0x71, "ADC", modeIndirectY, 5, classRead, opADC},

	{0x29, "AND", modeImmediate, 2, classRead, opAND}, {0x25, "AND", modeZeroPage, 3, classRead, opAND},
	{0x35, "AND", modeZeroPageX, 4, classRead, opAND}, {0x2D, "AND", modeAbsolute, 4, classRead, opAND},
	{0x3D, "AND", modeAbsoluteX, 4, classRead, opAND}, {0x39, "AND", modeAbsoluteY, 4, classRead, opAND},
	{0x21, "AND", modeIndirectX, 6, classRead, opAND}, {0x31, "AND", modeIndirectY, 5, classRead, opAND},

	{0x0A, "ASL", modeAccumulator, 2, classNone, opASLAcc}, {0x06, "ASL", modeZeroPage, 5, classNone, opASL},
	{0x16, "ASL", modeZeroPageX, 6, classNone, opASL}, {0x0E, "ASL", modeAbsolute, 6, classNone, opASL},
	{0x1E, "ASL", modeAbsoluteX, 6, classRMW, opASL},

	{0x90, "BCC", modeRelative, 2, classNone, opBCC}, {0xB0, "BCS", modeRelative, 2, classNone, opBCS},
	{0xF0, "BEQ", modeRelative, 2, classNone, opBEQ}, {0x30, "BMI", modeRelative, 2, classNone, opBMI},
	{0xD0, "BNE", modeRelative, 2, classNone, opBNE}, {0x10, "BPL", modeRelative, 2, classNone, opBPL},
	{0x50, "BVC", modeRelative, 2, classNone, opBVC}, {0x70, "BVS", modeRelative, 2, classNone, opBVS},

	{0x24, "BIT", modeZeroPage, 3, classNone, opBIT}, {0x2C, "BIT", modeAbsolute, 4, classNone, opBIT},

	{0x00, "BRK", modeImplied, 7, classNone, opBRK},

	{0x18, "CLC", modeImplied, 2, classNone, opCLC}, {0xD8, "CLD", modeImplied, 2, classNone, opCLD},
	{0x58, "CLI", modeImplied, 2, classNone, opCLI}, {0xB8, "CLV", modeImplied, 2, classNone, opCLV},
	{0x38, "SEC", modeImplied, 2, classNone, opSEC}, {0xF8, "SED", modeImplied, 2, classNone, opSED},
	{0x78, "SEI", modeImplied, 2, classNone, opSEI},

	{0xC9, "CMP", modeImmediate, 2, classRead, opCMP}, {0xC5, "CMP", modeZeroPage, 3, classRead, opCMP},
	{0xD5, "CMP", modeZeroPageX, 4, classRead, opCMP}, {0xCD, "CMP", modeAbsolute, 4, classRead, opCMP},
	{0xDD, "CMP", modeAbsoluteX, 4, classRead, opCMP}, {0xD9, "CMP", modeAbsoluteY, 4, classRead, opCMP},
	{0xC1, "CMP", modeIndirectX, 6, classRead, opCMP}, {0xD1, "CMP", modeIndirectY, 5, classRead, opCMP},

	{0xE0, "CPX", modeImmediate, 2, classNone, opCPX}, {0xE4, "CPX", modeZeroPage, 3, classNone, opCPX},
	{0xEC, "CPX", modeAbsolute, 4, classNone, opCPX},

	{0xC0, "CPY", modeImmediate, 2, classNone, opCPY}, {0xC4, "CPY", modeZeroPage, 3, classNone, opCPY},
	{0xCC, "CPY", modeAbsolute, 4, classNone, opCPY},

	{0xC6, "DEC", modeZeroPage, 5, classNone, opDEC}, {0xD6, "DEC", modeZeroPageX, 6, classNone, opDEC},
	{0xCE, "DEC", modeAbsolute, 6, classNone, opDEC}, {0xDE, "DEC", modeAbsoluteX, 6, classRMW, opDEC},

	{0xCA, "DEX", modeImplied, 2, classNone, opDEX}, {0x88, "DEY", modeImplied, 2, classNone, opDEY},
	{0xE8, "INX", modeImplied, 2, classNone, opINX}, {0xC8, "INY", modeImplied, 2, classNone, opINY},

	{0x49, "EOR", modeImmediate, 2, classRead, opEOR}, {0x45, "EOR", modeZeroPage, 3, classRead, opEOR},
	{0x55, "EOR", modeZeroPageX, 4, classRead, opEOR}, {0x4D, "EOR", modeAbsolute, 4, classRead, opEOR},
	{0x5D, "EOR", modeAbsoluteX, 4, classRead, opEOR}, {0x59, "EOR", modeAbsoluteY, 4, classRead, opEOR},
	{0x41, "EOR", modeIndirectX, 6, classRead, opEOR}, {0x51, "EOR", modeIndirectY, 5, classRead, opEOR},

	{0xE6, "INC", modeZeroPage, 5, classNone, opINC}, {0xF6, "INC", modeZeroPageX, 6, classNone, opINC},
	{0xEE, "INC", modeAbsolute, 6, classNone, opINC}, {0xFE, "INC", modeAbsoluteX, 6, classRMW, opINC},

	{0x4C, "JMP", modeAbsolute, 3, classNone, opJMP}, {0x6C, "JMP", modeIndirect, 5, classNone, opJMP},
	{0x20, "JSR", modeAbsolute, 6, classNone, opJSR},

	{0xA9, "LDA", modeImmediate, 2, classRead, opLDA}, {0xA5, "LDA", modeZeroPage, 3, classRead, opLDA},
	{0xB5, "LDA", modeZeroPageX, 4, classRead, opLDA}, {0xAD, "LDA", modeAbsolute, 4, classRead, opLDA},
	{0xBD, "LDA", modeAbsoluteX, 4, classRead, opLDA}, {0xB9, "LDA", modeAbsoluteY, 4, classRead, opLDA},
	{0xA1, "LDA", modeIndirectX, 6, classRead, opLDA}, {0xB1, "LDA", modeIndirectY, 5, classRead, opLDA},

	{0xA2, "LDX", modeImmediate, 2, classRead, opLDX}, {0xA6, "LDX", modeZeroPage, 3, classRead, opLDX},
	{0xB6, "LDX", modeZeroPageY, 4, classRead, opLDX}, {0xAE, "LDX", modeAbsolute, 4, classRead, opLDX},
	{0xBE, "LDX", modeAbsoluteY, 4, classRead, opLDX},

	{0xA0, "LDY", modeImmediate, 2, classRead, opLDY}, {0xA4, "LDY", modeZeroPage, 3, classRead, opLDY},
	{0xB4, "LDY", modeZeroPageX, 4, classRead, opLDY}, {0xAC, "LDY", modeAbsolute, 4, classRead, opLDY},
	{0xBC, "LDY", modeAbsoluteX, 4, classRead, opLDY},

	{0x4A, "LSR", modeAccumulator, 2, classNone, opLSRAcc}, {0x46, "LSR", modeZeroPage, 5, classNone, opLSR},
	{0x56, "LSR", modeZeroPageX, 6, classNone, opLSR}, {0x4E, "LSR", modeAbsolute, 6, classNone, opLSR},
	{0x5E, "LSR", modeAbsoluteX, 6, classRMW, opLSR},

	{0xEA, "NOP", modeImplied, 2, classNone, opNOP},

	{0x09, "ORA", modeImmediate, 2, classRead, opORA}, {0x05, "ORA", modeZeroPage, 3, classRead, opORA},
	{0x15, "ORA", modeZeroPageX, 4, classRead, opORA}, {0x0D, "ORA", modeAbsolute, 4, classRead, opORA},
	{0x1D, "ORA", modeAbsoluteX, 4, classRead, opORA}, {0x19, "ORA", modeAbsoluteY, 4, classRead, opORA},
	{0x01, "ORA", modeIndirectX, 6, classRead, opORA}, {0x11, "ORA", modeIndirectY, 5, classRead, opORA},

	{0x48, "PHA", modeImplied, 3, classNone, opPHA}, {0x08, "PHP", modeImplied, 3, classNone, opPHP},
	{0x68, "PLA", modeImplied, 4, classNone, opPLA}, {0x28, "PLP", modeImplied, 4, classNone, opPLP},

	{0x2A, "ROL", modeAccumulator, 2, classNone, opROLAcc}, {0x26, "ROL", modeZeroPage, 5, classNone, opROL},
	{0x36, "ROL", modeZeroPageX, 6, classNone, opROL}, {0x2E, "ROL", modeAbsolute, 6, classNone, opROL},
	{0x3E, "ROL", modeAbsoluteX, 6, classRMW, opROL},

	{0x6A, "ROR", modeAccumulator, 2, classNone, opRORAcc}, {0x66, "ROR", modeZeroPage, 5, classNone, opROR},
	{0x76, "ROR", modeZeroPageX, 6, classNone, opROR}, {0x6E, "ROR", modeAbsolute, 6, classNone, opROR},
	{0x7E, "ROR", modeAbsoluteX, 6, classRMW, opROR},

	{0x40, "RTI", modeImplied, 6, classNone, opRTI}, {0x60, "RTS", modeImplied, 6, classNone, opRTS},

	{0xE9, "SBC", modeImmediate, 2, classRead, opSBC}, {0xE5, "SBC", modeZeroPage, 3, classRead, opSBC},
	{0xF5, "SBC", modeZeroPageX, 4, classRead, opSBC}, {0xED, "SBC", modeAbsolute, 4, classRead, opSBC},
	{0xFD, "SBC", modeAbsoluteX, 4, classRead, opSBC}, {0xF9, "SBC", modeAbsoluteY, 4, classRead, opSBC},
	{0xE1, "SBC", modeIndirectX, 6, classRead, opSBC}, {0xF1, "SBC", modeIndirectY, 5, classRead, opSBC},

	{0x85, "STA", modeZeroPage, 3, classNone, opSTA}, {0x95, "STA", modeZeroPageX, 4, classNone, opSTA},
	{0x8D, "STA", modeAbsolute, 4, classNone, opSTA}, {0x9D, "STA", modeAbsoluteX, 4, classRMW, opSTA},
	{0x99, "STA", modeAbsoluteY, 4, classRMW, opSTA}, {0x81, "STA", modeIndirectX, 6, classNone, opSTA},
	{0x91, "STA", modeIndirectY, 5, classRMW, opSTA},

	{0x86, "STX", modeZeroPage, 3, classNone, opSTX}, {0x96, "STX", modeZeroPageY, 4, classNone, opSTX},
	{0x8E, "STX", modeAbsolute, 4, classNone, opSTX},

	{0x84, "STY", modeZeroPage, 3, classNone, opSTY}, {0x94, "STY", modeZeroPageX, 4, classNone, opSTY},
	{0x8C, "STY", modeAbsolute, 4, classNone, opSTY},

	{0xAA, "TAX", modeImplied, 2, classNone, opTAX}, {0xA8, "TAY", modeImplied, 2, classNone, opTAY},
	{0xBA, "TSX", modeImplied, 2, classNone, opTSX}, {0x8A, "TXA", modeImplied, 2, classNone, opTXA},
	{0x9A, "TXS", modeImplied, 2, classNone, opTXS}, {0x98, "TYA", modeImplied, 2, classNone, opTYA},
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// performADC implements ADC's binary-mode addition. SBC reuses this with the operand's ones' complement,
// which reproduces the hardware's borrow-as-inverted-carry behavior
// exactly rather than a hand-rolled borrow chain.
func performADC(c *CPU, m uint8) {
	sum := uint16(c.A) + uint16(m) + uint16(b2u8(c.P.C()))
	result := uint8(sum)

	aNeg := c.A&0x80 != 0
	mNeg := m&0x80 != 0
	rNeg := result&0x80 != 0
	c.P.set(flagOverflow, aNeg == mNeg && aNeg != rNeg)
	c.P.set(flagCarry, sum > 0xFF)

	c.A = result
	c.P.setNZ(c.A)
}

func opADC(c *CPU, addr uint16) int64 {
	performADC(c, c.Read8(addr))
	return 0
}

func opSBC(c *CPU, addr uint16) int64 {
	performADC(c, ^c.Read8(addr))
	return 0
}

func opAND(c *CPU, addr uint16) int64 {
	c.A &= c.Read8(addr)
	c.P.setNZ(c.A)
	return 0
}

func opORA(c *CPU, addr uint16) int64 {
	c.A |= c.Read8(addr)
	c.P.setNZ(c.A)
	return 0
}

func opEOR(c *CPU, addr uint16) int64 {
	c.A ^= c.Read8(addr)
	c.P.setNZ(c.A)
	return 0
}

func opBIT(c *CPU, addr uint16) int64 {
	m := c.Read8(addr)
	c.P.set(flagZero, c.A&m == 0)
	c.P.set(flagOverflow, m&0x40 != 0)
	c.P.set(flagNegative, m&0x80 != 0)
	return 0
}

func shiftLeft(c *CPU, m uint8) uint8 {
	c.P.set(flagCarry, m&0x80 != 0)
	result := m << 1
	c.P.setNZ(result)
	return result
}

func shiftRight(c *CPU, m uint8) uint8 {
	c.P.set(flagCarry, m&0x01 != 0)
	result := m >> 1
	c.P.setNZ(result)
	return result
}

func rotateLeft(c *CPU, m uint8) uint8 {
	carryIn := b2u8(c.P.C())
	c.P.set(flagCarry, m&0x80 != 0)
	result := m<<1 | carryIn
	c.P.setNZ(result)
	return result
}

func rotateRight(c *CPU, m uint8) uint8 {
	carryIn := b2u8(c.P.C())
	c.P.set(flagCarry, m&0x01 != 0)
	result := m>>1 | carryIn<<7
	c.P.setNZ(result)
	return result
}

func opASL(c *CPU, addr uint16) int64 { c.Write8(addr, shiftLeft(c, c.Read8(addr))); return 0 }
func opLSR(c *CPU, addr uint16) int64 { c.Write8(addr, shiftRight(c, c.Read8(addr))); return 0 }
func opROL(c *CPU, addr uint16) int64 { c.Write8(addr, rotateLeft(c, c.Read8(addr))); return 0 }
func opROR(c *CPU, addr uint16) int64 { c.Write8(addr, rotateRight(c, c.Read8(addr))); return 0 }

func opASLAcc(c *CPU, addr uint16) int64 { c.A = shiftLeft(c, c.A); return 0 }
func opLSRAcc(c *CPU, addr uint16) int64 { c.A = shiftRight(c, c.A); return 0 }
func opROLAcc(c *CPU, addr uint16) int64 { c.A = rotateLeft(c, c.A); return 0 }
func opRORAcc(c *CPU, addr uint16) int64 { c.A = rotateRight(c, c.A); return 0 }

func compare(c *CPU, reg, operand uint8) {
	result := reg - operand
	c.P.set(flagCarry, reg >= operand)
	c.P.setNZ(result)
}

func opCMP(c *CPU, addr uint16) int64 { compare(c, c.A, c.Read8(addr)); return 0 }
func opCPX(c *CPU, addr uint16) int64 { compare(c, c.X, c.Read8(addr)); return 0 }
func opCPY(c *CPU, addr uint16) int64 { compare(c, c.Y, c.Read8(addr)); return 0 }

func opINC(c *CPU, addr uint16) int64 {
	v := c.Read8(addr) + 1
	c.Write8(addr, v)
	c.P.setNZ(v)
	return 0
}

func opDEC(c *CPU, addr uint16) int64 {
	v := c.Read8(addr) - 1
	c.Write8(addr, v)
	c.P.setNZ(v)
	return 0
}

func opINX(c *CPU, addr uint16) int64 { c.X++; c.P.setNZ(c.X); return 0 }
func opINY(c *CPU, addr uint16) int64 { c.Y++; c.P.setNZ(c.Y); return 0 }
func opDEX(c *CPU, addr uint16) int64 { c.X--; c.P.setNZ(c.X); return 0 }
func opDEY(c *CPU, addr uint16) int64 { c.Y--; c.P.setNZ(c.Y); return 0 }

func opLDA(c *CPU, addr uint16) int64 { c.A = c.Read8(addr); c.P.setNZ(c.A); return 0 }
func opLDX(c *CPU, addr uint16) int64 { c.X = c.Read8(addr); c.P.setNZ(c.X); return 0 }
func opLDY(c *CPU, addr uint16) int64 { c.Y = c.Read8(addr); c.P.setNZ(c.Y); return 0 }

func opSTA(c *CPU, addr uint16) int64 { c.Write8(addr, c.A); return 0 }
func opSTX(c *CPU, addr uint16) int64 { c.Write8(addr, c.X); return 0 }
func opSTY(c *CPU, addr uint16) int64 { c.Write8(addr, c.Y); return 0 }

func opTAX(c *CPU, addr uint16) int64 { c.X = c.A; c.P.setNZ(c.X); return 0 }
func opTAY(c *CPU, addr uint16) int64 { c.Y = c.A; c.P.setNZ(c.Y); return 0 }
func opTXA(c *CPU, addr uint16) int64 { c.A = c.X; c.P.setNZ(c.A); return 0 }
func opTYA(c *CPU, addr uint16) int64 { c.A = c.Y; c.P.setNZ(c.A); return 0 }
func opTSX(c *CPU, addr uint16) int64 { c.X = c.SP; c.P.setNZ(c.X); return 0 }
func opTXS(c *CPU, addr uint16) int64 { c.SP = c.X; return 0 }

func opPHA(c *CPU, addr uint16) int64 { c.push8(c.A); return 0 }
func opPHP(c *CPU, addr uint16) int64 { c.push8(uint8(c.P | flagBreak | flagUnused)); return 0 }
func opPLA(c *CPU, addr uint16) int64 { c.A = c.pop8(); c.P.setNZ(c.A); return 0 }
func opPLP(c *CPU, addr uint16) int64 {
	c.P = P(c.pop8())&^flagBreak | flagUnused
	return 0
}

func opJMP(c *CPU, addr uint16) int64 { c.PC = addr; return 0 }

func opJSR(c *CPU, addr uint16) int64 {
	c.push16(c.PC - 1)
	c.PC = addr
	return 0
}

func opRTS(c *CPU, addr uint16) int64 {
	c.PC = c.pop16() + 1
	return 0
}

func opRTI(c *CPU, addr uint16) int64 {
	c.P = P(c.pop8())&^flagBreak | flagUnused
	c.PC = c.pop16()
	return 0
}

func opBRK(c *CPU, addr uint16) int64 {
	c.PC++
	c.interrupt(IRQVector, true)
	return 0
}

func branch(c *CPU, cond bool, target uint16, crossed bool) int64 {
	if !cond {
		return 0
	}
	c.PC = target
	if crossed {
		return 2
	}
	return 1
}

func opBCC(c *CPU, addr uint16) int64 { return branch(c, !c.P.C(), addr, pageCrossed(c.PC, addr)) }
func opBCS(c *CPU, addr uint16) int64 { return branch(c, c.P.C(), addr, pageCrossed(c.PC, addr)) }
func opBEQ(c *CPU, addr uint16) int64 { return branch(c, c.P.Z(), addr, pageCrossed(c.PC, addr)) }
func opBNE(c *CPU, addr uint16) int64 { return branch(c, !c.P.Z(), addr, pageCrossed(c.PC, addr)) }
func opBMI(c *CPU, addr uint16) int64 { return branch(c, c.P.N(), addr, pageCrossed(c.PC, addr)) }
func opBPL(c *CPU, addr uint16) int64 { return branch(c, !c.P.N(), addr, pageCrossed(c.PC, addr)) }
func opBVC(c *CPU, addr uint16) int64 { return branch(c, !c.P.V(), addr, pageCrossed(c.PC, addr)) }
func opBVS(c *CPU, addr uint16) int64 { return branch(c, c.P.V(), addr, pageCrossed(c.PC, addr)) }

func opCLC(c *CPU, addr uint16) int64 { c.P.set(flagCarry, false); return 0 }
func opSEC(c *CPU, addr uint16) int64 { c.P.set(flagCarry, true); return 0 }
func opCLI(c *CPU, addr uint16) int64 { c.P.set(flagInterrupt, false); return 0 }
func opSEI(c *CPU, addr uint16) int64 { c.P.set(flagInterrupt, true); return 0 }
func opCLD(c *CPU, addr uint16) int64 { c.P.set(flagDecimal, false); return 0 }
func opSED(c *CPU, addr uint16) int64 { c.P.set(flagDecimal, true); return 0 }
func opCLV(c *CPU, addr uint16) int64 { c.P.set(flagOverflow, false); return 0 }

func opNOP(c *CPU, addr uint16) int64 { return 0 }
