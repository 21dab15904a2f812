package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"nescore/hwio"
	"nescore/nes"
	"nescore/ppu"
)

// presenter owns the SDL2 window/renderer/texture and the NES controller
// ports it attaches onto the Console's bus. It streams frames through a
// plain SDL2 texture rather than an OpenGL context, since SDL2 alone
// already covers window, render and blit for a single 256x240 surface.
type presenter struct {
	console *nes.Console
	cfg     Config

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	pad1, pad2  *controllerPort
	audioDevice sdl.AudioDeviceID
	sampleBuf   []int16
}

func newPresenter(console *nes.Console, cfg Config) (*presenter, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	scale := cfg.Video.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int32(ppu.Width * scale)
	h := int32(ppu.Height * scale)

	window, err := sdl.CreateWindow("nescore",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdl create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("sdl create renderer: %w", err)
	}
	renderer.SetScale(float32(scale), float32(scale))

	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING, ppu.Width, ppu.Height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("sdl create texture: %w", err)
	}

	p := &presenter{
		console:  console,
		cfg:      cfg,
		window:   window,
		renderer: renderer,
		texture:  texture,
		pad1:     &controllerPort{},
		pad2:     &controllerPort{},
	}

	console.Bus.Map(0x4016, 0x4016, p.pad1)
	console.Bus.Map(0x4017, 0x4017, p.pad2)

	if console.APU != nil && cfg.Audio.Enabled {
		if err := p.openAudio(); err != nil {
			// Audio failing to open is not fatal: the console still runs,
			// silently.
			p.audioDevice = 0
		}
	}

	return p, nil
}

func (p *presenter) openAudio() error {
	want := sdl.AudioSpec{
		Freq:     int32(p.cfg.Audio.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  2048,
	}
	dev, err := sdl.OpenAudioDevice("", false, &want, nil, 0)
	if err != nil {
		return err
	}
	p.audioDevice = dev
	p.sampleBuf = make([]int16, 4096)
	sdl.PauseAudioDevice(dev, false)
	return nil
}

func (p *presenter) close() {
	if p.audioDevice != 0 {
		sdl.CloseAudioDevice(p.audioDevice)
	}
	p.texture.Destroy()
	p.renderer.Destroy()
	p.window.Destroy()
	sdl.Quit()
}

// runLoop drives one emulated frame per iteration until the window is
// closed: poll input, run the PPU/CPU for a frame, blit the result, and
// flush any audio produced along the way.
func (p *presenter) runLoop() {
	running := true
	var buttons1 uint8

	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				bit, ok := keymap[e.Keysym.Sym]
				if !ok {
					break
				}
				if e.Type == sdl.KEYDOWN {
					buttons1 |= bit
				} else if e.Type == sdl.KEYUP {
					buttons1 &^= bit
				}
			}
		}
		p.pad1.setState(buttons1)

		p.console.DrawFrame()
		p.present()
		p.flushAudio()
	}
}

func (p *presenter) present() {
	frame := p.console.LastFrame()
	p.texture.Update(nil, frame[:], ppu.Width*4)
	p.renderer.Copy(p.texture, nil, nil)
	p.renderer.Present()
}

func (p *presenter) flushAudio() {
	if p.audioDevice == 0 || p.console.APU == nil {
		return
	}
	const cyclesPerFrame = 29830 // NTSC CPU cycles in one 60Hz frame
	n := p.console.APU.EndFrame(cyclesPerFrame, p.sampleBuf)
	if n == 0 {
		return
	}
	sdl.QueueAudio(p.audioDevice, int16SliceToBytes(p.sampleBuf[:n]))
}

func int16SliceToBytes(s []int16) []byte {
	buf := make([]byte, len(s)*2)
	for i, v := range s {
		buf[2*i] = byte(v)
		buf[2*i+1] = byte(v >> 8)
	}
	return buf
}

var _ hwio.Device = (*controllerPort)(nil)
