package ines

import (
	"bytes"
	"testing"

	"nescore/mapper"
)

func buildRom(t *testing.T, prgBanks, chrBanks int, flags6, flags7 byte) *Rom {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString(Magic)
	buf.Write([]byte{byte(prgBanks), byte(chrBanks), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0})
	buf.Write(make([]byte, prgBanks*16384))
	buf.Write(make([]byte, chrBanks*8192))

	rom := new(Rom)
	if _, err := rom.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	return rom
}

func TestReadFromParsesSizes(t *testing.T) {
	rom := buildRom(t, 2, 1, 0, 0)
	if len(rom.PRG) != 2*16384 {
		t.Errorf("PRG size = %d, want %d", len(rom.PRG), 2*16384)
	}
	if len(rom.CHR) != 8192 {
		t.Errorf("CHR size = %d, want %d", len(rom.CHR), 8192)
	}
}

func TestMapperAndMirroringFromHeader(t *testing.T) {
	// mapper 0, vertical mirroring.
	rom := buildRom(t, 1, 1, 0x01, 0x00)
	if rom.Mapper() != 0 {
		t.Errorf("Mapper() = %d, want 0", rom.Mapper())
	}
	if rom.Mirroring() != mapper.Vertical {
		t.Errorf("Mirroring() = %s, want Vertical", rom.Mirroring())
	}

	rom = buildRom(t, 1, 1, 0x00, 0x00)
	if rom.Mirroring() != mapper.Horizontal {
		t.Errorf("Mirroring() = %s, want Horizontal", rom.Mirroring())
	}

	rom = buildRom(t, 1, 1, 0x08, 0x00)
	if rom.Mirroring() != mapper.FourScreen {
		t.Errorf("Mirroring() = %s, want FourScreen", rom.Mirroring())
	}
}

func TestRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("XXXX")
	buf.Write(make([]byte, 12))
	rom := new(Rom)
	if _, err := rom.ReadFrom(&buf); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestNewMapperRejectsUnsupportedMapper(t *testing.T) {
	rom := buildRom(t, 1, 1, 0x10, 0x00) // mapper 1
	if _, err := rom.NewMapper(); err == nil {
		t.Fatal("expected error for unsupported mapper")
	}
}

func TestNewMapperNROM(t *testing.T) {
	rom := buildRom(t, 1, 1, 0x00, 0x00)
	m, err := rom.NewMapper()
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	if m == nil {
		t.Fatal("NewMapper returned nil")
	}
}
