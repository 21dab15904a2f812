// Package nes wires a cpu.CPU, a ppu.PPU and a cartridge mapper.Mapper
// together into a runnable Console, and owns the CPU-facing address bus
// the core packages treat as an external dependency.
package nes

import (
	"fmt"

	"nescore/audio"
	"nescore/cpu"
	"nescore/debug"
	"nescore/hwio"
	"nescore/ines"
	"nescore/logger"
	"nescore/mapper"
	"nescore/ppu"
)

// oamDMACycles is the flat per-transfer cost this core charges for OAM
// DMA. Real hardware charges one extra alignment cycle when $4014 is
// written on an odd CPU cycle; nescore implements the flat 512-cycle
// figure and calls out the alignment cycle as a simplification (see
// DESIGN.md).
const oamDMACycles = 512

// Console owns a full NES: CPU, PPU, cartridge mapper, and the bus
// connecting them. Bus is exported so a driver (cmd/nescore) can attach
// external collaborators that stay outside the core, such as a
// controller device over $4016/$4017, without the core needing to know
// they exist.
type Console struct {
	CPU    *cpu.CPU
	PPU    *ppu.PPU
	APU    *audio.APU
	Mapper mapper.Mapper
	Bus    *hwio.Bus

	ram [0x800]byte
}

// NewConsole builds a Console from a parsed ROM. attachAudio selects
// whether an audio.APU is registered onto $4000-$4007.
func NewConsole(rom *ines.Rom, hook debug.Hook, attachAudio bool) (*Console, error) {
	m, err := rom.NewMapper()
	if err != nil {
		return nil, fmt.Errorf("nes: %w", err)
	}
	return newConsole(m, hook, attachAudio), nil
}

func newConsole(m mapper.Mapper, hook debug.Hook, attachAudio bool) *Console {
	if hook == nil {
		hook = debug.NoOp{}
	}

	c := &Console{Mapper: m}
	c.PPU = ppu.NewPPU(m, hook)
	c.Bus = hwio.NewBus("cpu")
	c.CPU = cpu.NewCPU(c.Bus, hook)

	c.Bus.MapMirrored(0x0000, 0x07FF, 0x2000, hwio.NewSlice(c.ram[:]))
	c.Bus.MapMirrored(0x2000, 0x2007, 0x4000, ppuRegisterDevice{c.PPU})
	c.Bus.Map(0x4014, 0x4014, hwio.FuncDevice{WriteFn: func(addr uint16, page uint8) { c.oamDMA(page) }})
	c.Bus.Map(0x4020, 0xFFFF, prgDevice{m})

	if attachAudio {
		c.APU = audio.NewAPU(0)
		c.Bus.Map(0x4000, 0x4007, c.APU)
	}

	c.PPU.RunCPU = func(cycles int64) {
		until := c.CPU.Clock + cycles
		c.CPU.Run(until)
		if c.APU != nil {
			c.APU.RunCycles(cycles)
		}
	}
	c.PPU.TriggerNMI = c.CPU.RequestNMI

	return c
}

// Reset puts the whole console into its power-on state.
func (c *Console) Reset() {
	c.CPU.Reset()
	c.PPU.Reset()
	if c.APU != nil {
		c.APU.Reset()
	}
}

// Step executes exactly one CPU instruction. It does not drive the PPU;
// callers stepping instruction-by-instruction are responsible for
// invoking DrawFrame themselves on whatever cadence they want frames at.
func (c *Console) Step() int64 { return c.CPU.Step() }

// DrawFrame renders exactly one frame, interleaving CPU execution with
// PPU scanline timing.
func (c *Console) DrawFrame() { c.PPU.DrawFrame() }

// LastFrame returns the most recently rendered frame buffer: 256x240
// RGBA pixels, row-major.
func (c *Console) LastFrame() *[ppu.Width * ppu.Height * 4]byte { return &c.PPU.FrameBuffer }

// ppuRegisterDevice adapts the PPU's $2000-$2007 register file to
// hwio.Device so it can be mapped (and mirrored) onto the CPU bus.
type ppuRegisterDevice struct{ p *ppu.PPU }

func (d ppuRegisterDevice) Read8(addr uint16) uint8     { return d.p.ReadRegister(addr) }
func (d ppuRegisterDevice) Write8(addr uint16, v uint8) { d.p.WriteRegister(addr, v) }

// prgDevice adapts a mapper.Mapper's CPU-side PRG window to hwio.Device.
type prgDevice struct{ m mapper.Mapper }

func (d prgDevice) Read8(addr uint16) uint8     { return d.m.ReadPRG(addr) }
func (d prgDevice) Write8(addr uint16, v uint8) { d.m.WritePRG(addr, v) }

// oamDMA services a $4014 write: it copies 256 bytes from that CPU page
// into OAM and stalls the CPU. Mapped onto the bus as an hwio.FuncDevice,
// since it's a single register whose only job is running this one side
// effect on write.
func (c *Console) oamDMA(page uint8) {
	var buf [256]byte
	base := uint16(page) << 8
	c.Bus.ReadBlock(base, buf[:])
	c.PPU.DMALoad(buf)
	c.CPU.Clock += oamDMACycles
	c.PPU.Hook.OnRegister(0x4014, page, debug.Write)

	logger.ModDMA.Debug("oam dma").Hex8("page", page).End()
}
