package main

import "github.com/veandco/go-sdl2/sdl"

// Button bits, in NES controller shift-register order: A is shifted out
// first, Right last. $4016/$4017 stay outside the core, so this device
// lives entirely in the driver and is attached onto Console.Bus by the
// presenter.
const (
	btnA uint8 = 1 << iota
	btnB
	btnSelect
	btnStart
	btnUp
	btnDown
	btnLeft
	btnRight
)

// controllerPort implements the standard NES joypad shift-register
// protocol over a single $4016 or $4017 address: a write with bit0 set
// latches the current button state, and each subsequent read shifts one
// bit out, low bit first, until all eight have been read (after which
// reads return 1).
type controllerPort struct {
	state  uint8
	shift  uint8
	strobe bool
}

func (c *controllerPort) setState(state uint8) {
	c.state = state
	if c.strobe {
		c.shift = c.state
	}
}

func (c *controllerPort) Read8(addr uint16) uint8 {
	if c.strobe {
		return c.state & 1
	}
	bit := c.shift & 1
	c.shift = c.shift>>1 | 0x80
	return bit
}

func (c *controllerPort) Write8(addr uint16, val uint8) {
	c.strobe = val&1 != 0
	if c.strobe {
		c.shift = c.state
	}
}

// keymap is the default keyboard layout: arrow keys for the d-pad, Z/X
// for A/B, Enter/Right-Shift for Start/Select.
var keymap = map[sdl.Keycode]uint8{
	sdl.K_UP:     btnUp,
	sdl.K_DOWN:   btnDown,
	sdl.K_LEFT:   btnLeft,
	sdl.K_RIGHT:  btnRight,
	sdl.K_z:      btnA,
	sdl.K_x:      btnB,
	sdl.K_RETURN: btnStart,
	sdl.K_RSHIFT: btnSelect,
}
