package cpu

import "fmt"

// Disassemble formats the instruction at pc using read to fetch bytes,
// returning the text and the instruction's length in bytes (1-3). It
// reads directly off opcodeTable's mnemonic/mode metadata rather than
// keeping a parallel 256-entry table, since illegal-opcode mnemonics
// (the usual reason to keep the tables separate) are out of scope here.
func Disassemble(read func(addr uint16) uint8, pc uint16) (string, int) {
	opcode := read(pc)
	entry := opcodeTable[opcode]

	switch entry.mode {
	case modeAccumulator:
		return fmt.Sprintf("%s A", entry.mnemonic), 1
	case modeImplied:
		return entry.mnemonic, 1

	case modeImmediate:
		return fmt.Sprintf("%s #$%02X", entry.mnemonic, read(pc+1)), 2

	case modeZeroPage:
		return fmt.Sprintf("%s $%02X", entry.mnemonic, read(pc+1)), 2
	case modeZeroPageX:
		return fmt.Sprintf("%s $%02X,X", entry.mnemonic, read(pc+1)), 2
	case modeZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", entry.mnemonic, read(pc+1)), 2

	case modeAbsolute:
		return fmt.Sprintf("%s $%04X", entry.mnemonic, addr16(read, pc+1)), 3
	case modeAbsoluteX:
		return fmt.Sprintf("%s $%04X,X", entry.mnemonic, addr16(read, pc+1)), 3
	case modeAbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", entry.mnemonic, addr16(read, pc+1)), 3

	case modeIndirect:
		return fmt.Sprintf("%s ($%04X)", entry.mnemonic, addr16(read, pc+1)), 3
	case modeIndirectX:
		return fmt.Sprintf("%s ($%02X,X)", entry.mnemonic, read(pc+1)), 2
	case modeIndirectY:
		return fmt.Sprintf("%s ($%02X),Y", entry.mnemonic, read(pc+1)), 2

	case modeRelative:
		offset := int8(read(pc + 1))
		target := uint16(int32(pc) + 2 + int32(offset))
		return fmt.Sprintf("%s $%04X", entry.mnemonic, target), 2
	}

	return entry.mnemonic, 1
}

func addr16(read func(addr uint16) uint8, addr uint16) uint16 {
	return uint16(read(addr+1))<<8 | uint16(read(addr))
}
