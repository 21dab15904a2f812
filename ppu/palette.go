package ppu

// masterPalette is the fixed 64-entry NES RGB palette. Index is the
// 6-bit PPU palette code; values are RGB, alpha is always 255.
var masterPalette = [64][3]byte{
	{84, 84, 84}, {0, 30, 116}, {8, 16, 144}, {48, 0, 136},
	{68, 0, 100}, {92, 0, 48}, {84, 4, 0}, {60, 24, 0},
	{32, 42, 0}, {8, 58, 0}, {0, 64, 0}, {0, 60, 0},
	{0, 50, 60}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
	{152, 150, 152}, {8, 76, 196}, {48, 50, 236}, {92, 30, 228},
	{136, 20, 176}, {160, 20, 100}, {152, 34, 32}, {120, 60, 0},
	{84, 90, 0}, {40, 114, 0}, {8, 124, 0}, {0, 118, 40},
	{0, 102, 120}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
	{236, 238, 236}, {76, 154, 236}, {120, 124, 236}, {176, 98, 236},
	{228, 84, 236}, {236, 88, 180}, {236, 106, 100}, {212, 136, 32},
	{160, 170, 0}, {116, 196, 0}, {76, 208, 32}, {56, 204, 108},
	{56, 180, 204}, {60, 60, 60}, {0, 0, 0}, {0, 0, 0},
	{236, 238, 236}, {168, 204, 236}, {188, 188, 236}, {212, 178, 236},
	{236, 174, 236}, {236, 174, 212}, {236, 180, 176}, {228, 196, 144},
	{204, 210, 120}, {180, 222, 120}, {168, 226, 144}, {152, 226, 180},
	{160, 214, 228}, {160, 162, 160}, {0, 0, 0}, {0, 0, 0},
}

// paletteRAM holds the 32-byte palette: 16 background
// entries (4 sub-palettes) followed by 16 sprite entries, each
// sub-palette's entry 0 shared across its group as the universal
// background color via the mirroring rule below.
type paletteRAM struct {
	data [32]byte
}

// index resolves addr (masked to the $3F00-$3F1F window by the caller)
// to a slot in data, folding the $3F10/14/18/1C mirrors of $3F00/04/08/0C
//.
func (p *paletteRAM) index(addr uint16) uint16 {
	a := addr & 0x1F
	if a >= 0x10 && a%4 == 0 {
		a -= 0x10
	}
	return a
}

func (p *paletteRAM) Read8(addr uint16) uint8  { return p.data[p.index(addr)] }
func (p *paletteRAM) Write8(addr uint16, v uint8) { p.data[p.index(addr)] = v & 0x3F }

// colorOf returns the RGB triple for a resolved 6-bit master palette
// entry.
func colorOf(entry uint8) (r, g, b uint8) {
	c := masterPalette[entry&0x3F]
	return c[0], c[1], c[2]
}
