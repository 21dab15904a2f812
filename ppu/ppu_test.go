package ppu

import (
	"testing"

	"nescore/mapper"
)

func newTestPPU() *PPU {
	m := mapper.NewNROM(make([]byte, 0x4000), nil, mapper.Horizontal)
	return NewPPU(m, nil)
}

func TestScrollRegisterWrites(t *testing.T) {
	p := newTestPPU()
	p.t = 0xFFFF

	p.WriteRegister(0x2000, 0b00) // PPUCTRL nametable select = 0
	if got := (p.t >> 10) & 0x3; got != 0 {
		t.Errorf("t.nametable = %02b, want 00", got)
	}

	p.ReadRegister(0x2002) // PPUSTATUS read clears write toggle
	if p.writeToggle {
		t.Error("writeToggle should be false after a PPUSTATUS read")
	}

	// First PPUSCROLL write: coarse-x into t, fine-x into x.
	p.WriteRegister(0x2005, 0b01111_101)
	if got := p.t & 0x1F; got != 0b01111 {
		t.Errorf("t.coarseX = %05b, want 01111", got)
	}
	if p.x != 0b101 {
		t.Errorf("x = %03b, want 101", p.x)
	}
	if !p.writeToggle {
		t.Error("writeToggle should flip true after first PPUSCROLL write")
	}

	// Second PPUSCROLL write: coarse-y and fine-y into t.
	p.WriteRegister(0x2005, 0b01_011_110)
	if got := (p.t >> 5) & 0x1F; got != 0b01011 {
		t.Errorf("t.coarseY = %05b, want 01011", got)
	}
	if got := (p.t >> 12) & 0x7; got != 0b110 {
		t.Errorf("t.fineY = %03b, want 110", got)
	}
	if p.writeToggle {
		t.Error("writeToggle should flip false after second PPUSCROLL write")
	}

	// PPUADDR double-write copies t into v on the second write.
	p.WriteRegister(0x2006, 0b00_111101)
	p.WriteRegister(0x2006, 0b11110000)
	if p.v != p.t {
		t.Errorf("v = %04X, want v == t (%04X)", p.v, p.t)
	}
	if p.v&0x4000 != 0 {
		t.Error("bit 14 of v must stay clear")
	}
}

func TestPPUDataReadIsBufferedExceptForPalette(t *testing.T) {
	p := newTestPPU()
	p.VBus.Write8(0x2005, 0x42) // nametable RAM, well within $2000-$2FFF
	p.v = 0x2005

	first := p.ReadRegister(0x2007)
	if first != 0 {
		t.Errorf("first PPUDATA read = %02X, want 0 (stale buffer)", first)
	}
	second := p.ReadRegister(0x2007)
	_ = second

	p.v = 0x3F00
	p.pal.data[0] = 0x20
	val := p.ReadRegister(0x2007)
	if val != 0x20 {
		t.Errorf("palette PPUDATA read = %02X, want 20 (immediate, unbuffered)", val)
	}
}

func TestPPUDataAddressIncrementRespectsCtrl(t *testing.T) {
	p := newTestPPU()
	p.v = 0x2000
	p.WriteRegister(0x2007, 0xAA)
	if p.v != 0x2001 {
		t.Errorf("v = %04X, want 2001 (increment by 1)", p.v)
	}

	p.WriteRegister(0x2000, ctrlVRAMIncrement)
	p.WriteRegister(0x2007, 0xBB)
	if p.v != 0x2021 {
		t.Errorf("v = %04X, want 2021 (increment by 32)", p.v)
	}
}

func TestOAMDMALoadWrapsAtOAMAddr(t *testing.T) {
	p := newTestPPU()
	p.regOAMAddr.Value = 0xFE

	var page [256]byte
	for i := range page {
		page[i] = byte(i)
	}
	p.DMALoad(page)

	if p.OAM[0xFE] != 0 || p.OAM[0xFF] != 1 {
		t.Fatalf("OAM[FE..FF] = %02X %02X, want 00 01", p.OAM[0xFE], p.OAM[0xFF])
	}
	if p.OAM[0] != 2 {
		t.Errorf("OAM[0] = %02X, want 02 (wrapped)", p.OAM[0])
	}
}

func TestDrawFrameWithRenderingDisabledFillsUniversalColor(t *testing.T) {
	p := newTestPPU()
	p.pal.data[0] = 0x21 // arbitrary universal background entry
	nmiFired := false
	p.TriggerNMI = func() { nmiFired = true }
	p.RunCPU = func(int64) {}

	p.WriteRegister(0x2000, ctrlNMIEnable)
	p.DrawFrame()

	wantR, wantG, wantB := colorOf(0x21)
	if p.FrameBuffer[0] != wantR || p.FrameBuffer[1] != wantG || p.FrameBuffer[2] != wantB || p.FrameBuffer[3] != 255 {
		t.Errorf("pixel (0,0) = %v, want {%d %d %d 255}", p.FrameBuffer[:4], wantR, wantG, wantB)
	}
	last := (Width*Height - 1) * 4
	if p.FrameBuffer[last] != wantR || p.FrameBuffer[last+3] != 255 {
		t.Errorf("last pixel not filled with universal background color")
	}
	if !nmiFired {
		t.Error("NMI should fire at VBlank start when PPUCTRL bit 7 is set")
	}
	if p.status&statusVBlank != 0 {
		t.Error("VBlank flag should be clear again once DrawFrame returns")
	}
}

func TestDrawFrameNoNMIWhenDisabled(t *testing.T) {
	p := newTestPPU()
	nmiFired := false
	p.TriggerNMI = func() { nmiFired = true }
	p.RunCPU = func(int64) {}

	p.DrawFrame()

	if nmiFired {
		t.Error("NMI should not fire when PPUCTRL bit 7 is clear")
	}
}

func TestDrawFrameRunsCPUForEveryScanline(t *testing.T) {
	p := newTestPPU()
	calls := 0
	p.RunCPU = func(int64) { calls++ }

	p.DrawFrame()

	// 240 visible + 1 post-render + 20 VBlank.
	if calls != 261 {
		t.Errorf("RunCPU called %d times, want 261", calls)
	}
}

func TestSprite0Hit(t *testing.T) {
	p := newTestPPU()
	p.RunCPU = func(int64) {}

	// Solid background tile 1 (all bitplane-0 bits set) at nametable (0,0).
	p.VBus.Write8(0x0010, 0xFF) // tile 1, plane 0, row 0
	p.VBus.Write8(0x2000, 1)    // nametable entry (0,0) = tile 1
	p.pal.data[1] = 0x10        // non-backdrop color so the bg pixel is opaque

	// Sprite 0: solid tile 0 at (0,0), using sprite pattern table.
	p.VBus.Write8(0x0000, 0xFF) // tile 0, plane 0, row 0
	p.OAM[0] = 0 // Y
	p.OAM[1] = 0 // tile
	p.OAM[2] = 0 // attributes
	p.OAM[3] = 0 // X

	p.WriteRegister(0x2001, maskShowBG|maskShowSprites|maskShowBGLeft|maskShowSpriteLeft)

	p.Scanline = 0
	p.renderScanline()

	if p.status&statusSprite0Hit == 0 {
		t.Error("sprite 0 hit should be set when an opaque sprite-0 pixel overlaps an opaque background pixel")
	}
}

func TestSpriteOverflowFlag(t *testing.T) {
	p := newTestPPU()
	p.RunCPU = func(int64) {}
	p.VBus.Write8(0x0000, 0xFF) // tile 0, solid row

	for i := 0; i < 9; i++ {
		p.OAM[i*4+0] = 0
		p.OAM[i*4+1] = 0
		p.OAM[i*4+2] = 0
		p.OAM[i*4+3] = byte(i * 10)
	}

	p.WriteRegister(0x2001, maskShowSprites|maskShowSpriteLeft)
	p.Scanline = 0
	p.renderSprites()

	if p.status&statusSpriteOverflow == 0 {
		t.Error("sprite overflow should be set when more than 8 sprites hit a scanline")
	}
}

func TestCoarseXWrapsIntoNextNametable(t *testing.T) {
	p := newTestPPU()
	p.v = 31 // coarse-x maxed, nametable bit clear

	p.incrementCoarseX()

	if p.v&0x1F != 0 {
		t.Errorf("coarse-x = %d, want 0 after wrap", p.v&0x1F)
	}
	if p.v&0x0400 == 0 {
		t.Error("nametable horizontal bit should flip on coarse-x wrap")
	}
}

func TestFineYWrapsIntoCoarseYAndNametable(t *testing.T) {
	p := newTestPPU()
	p.v = 0x7000 | (29 << 5) // fine-y maxed, coarse-y = 29 (last tile row)

	p.incrementFineY()

	if p.v&0x7000 != 0 {
		t.Error("fine-y should reset to 0")
	}
	if (p.v>>5)&0x1F != 0 {
		t.Error("coarse-y should reset to 0 at row 29")
	}
	if p.v&0x0800 == 0 {
		t.Error("nametable vertical bit should flip when coarse-y wraps past 29")
	}
}
