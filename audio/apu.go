// Package audio implements a reduced NES APU: the two pulse channels,
// mixed through a blip_buf-style band-limited synthesizer, exposed as an
// hwio.Device over the CPU's $4000-$4007 register window. The triangle,
// noise, and DMC channels, the frame counter's IRQ, and $4015/$4017 are
// out of scope for this core.
package audio

import (
	"nescore/logger"

	"github.com/arl/blip"
)

const (
	clockRateNTSC     = 1789773
	defaultSampleRate = 44100
	bufferSamples     = defaultSampleRate / 30 // two frames' headroom
)

var dutyTable = [4][8]byte{
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0, 0},
	{1, 0, 0, 1, 1, 1, 1, 1},
}

var lengthTable = [32]byte{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// pulse is one of the APU's two square-wave channels. Sweep writes are
// ignored: this core keeps constant-volume output and a length counter
// only.
type pulse struct {
	dutyIndex     uint8
	volume        uint8
	lengthHalt    bool
	timerPeriod   uint16
	timerValue    int32
	sequencePos   uint8
	lengthCounter uint8
	enabled       bool
}

func (p *pulse) writeControl(val uint8) {
	p.dutyIndex = (val >> 6) & 0x3
	p.lengthHalt = val&0x20 != 0
	p.volume = val & 0x0F
}

func (p *pulse) writeTimerLow(val uint8) {
	p.timerPeriod = (p.timerPeriod &^ 0x00FF) | uint16(val)
}

func (p *pulse) writeTimerHighAndLength(val uint8) {
	p.timerPeriod = (p.timerPeriod &^ 0x0700) | (uint16(val&0x07) << 8)
	if p.enabled {
		p.lengthCounter = lengthTable[val>>3]
	}
	p.sequencePos = 0
}

func (p *pulse) setEnabled(v bool) {
	p.enabled = v
	if !v {
		p.lengthCounter = 0
	}
}

// clock advances the channel's timer by apuCycles APU cycles (one APU
// cycle = two CPU cycles) and returns its current output amplitude.
func (p *pulse) clock(apuCycles int32) uint8 {
	if apuCycles > 0 {
		p.timerValue -= apuCycles
		for p.timerValue < 0 {
			p.timerValue += int32(p.timerPeriod) + 1
			p.sequencePos = (p.sequencePos + 1) % 8
		}
	}
	if !p.enabled || p.lengthCounter == 0 || p.timerPeriod < 8 {
		return 0
	}
	if dutyTable[p.dutyIndex][p.sequencePos] == 0 {
		return 0
	}
	return p.volume
}

func (p *pulse) clockLength() {
	if !p.lengthHalt && p.lengthCounter > 0 {
		p.lengthCounter--
	}
}

// APU mixes pulse1 and pulse2 into a single band-limited mono stream via
// a blip_buf-style resampler.
type APU struct {
	pulse1, pulse2 pulse

	buf         *blip.Buffer
	sampleRate  float64
	prevOut    int16
	apuTime    int64
	cpuCycle   int64
	frameCycle int64
	frameStep  int
}

// NewAPU builds an APU producing samples at sampleRate (44100 if 0).
func NewAPU(sampleRate int) *APU {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	a := &APU{
		buf:        blip.NewBuffer(bufferSamples),
		sampleRate: float64(sampleRate),
	}
	a.buf.SetRates(clockRateNTSC, a.sampleRate)
	return a
}

// Reset silences both channels and clears the resampling buffer.
func (a *APU) Reset() {
	a.pulse1 = pulse{}
	a.pulse2 = pulse{}
	a.prevOut = 0
	a.apuTime = 0
	a.cpuCycle = 0
	a.frameCycle = 0
	a.frameStep = 0
	a.buf.Clear()
}

// Read8 services CPU reads in $4000-$4007: every pulse register is
// write-only, so reads return 0.
func (a *APU) Read8(addr uint16) uint8 { return 0 }

// Write8 services a CPU write to one of the pulse registers.
func (a *APU) Write8(addr uint16, val uint8) {
	switch addr {
	case 0x4000:
		a.pulse1.writeControl(val)
	case 0x4001:
		// sweep: stored nowhere, not applied.
	case 0x4002:
		a.pulse1.writeTimerLow(val)
	case 0x4003:
		a.pulse1.writeTimerHighAndLength(val)
	case 0x4004:
		a.pulse2.writeControl(val)
	case 0x4005:
	case 0x4006:
		a.pulse2.writeTimerLow(val)
	case 0x4007:
		a.pulse2.writeTimerHighAndLength(val)
	}
	logger.ModAudio.Debug("register write").Hex16("addr", addr).Hex8("val", val).End()
}

// SetChannelsEnabled mirrors the bottom two bits of $4015 (DMC/noise/
// triangle are never implemented, so only pulse1/pulse2 are exposed).
func (a *APU) SetChannelsEnabled(pulse1, pulse2 bool) {
	a.pulse1.setEnabled(pulse1)
	a.pulse2.setEnabled(pulse2)
}

// RunCycles advances the APU by n CPU cycles, clocking both pulse timers
// and the (simplified, 4-step) frame sequencer's length counters, and
// records an amplitude delta into the synthesis buffer whenever the
// mixed output changes.
func (a *APU) RunCycles(n int64) {
	for i := int64(0); i < n; i++ {
		a.cpuCycle++
		if a.cpuCycle%2 == 0 {
			a.stepChannels()
		}
		a.stepFrameSequencer()
	}
}

func (a *APU) stepChannels() {
	out1 := a.pulse1.clock(1)
	out2 := a.pulse2.clock(1)
	mixed := mixPulses(out1, out2)
	if mixed != a.prevOut {
		a.buf.AddDelta(uint64(a.apuTime), int32(mixed-a.prevOut))
		a.prevOut = mixed
	}
	a.apuTime++
}

// stepFrameSequencer runs the classic 4-step, ~240Hz length-counter
// clock; the frame-IRQ half of the real sequencer is out of scope.
func (a *APU) stepFrameSequencer() {
	const stepCycles = 7457 // ~1/4 of a 29830-cycle NTSC frame sequence
	a.frameCycle++
	if a.frameCycle < stepCycles {
		return
	}
	a.frameCycle = 0
	a.frameStep = (a.frameStep + 1) % 4
	if a.frameStep == 1 || a.frameStep == 3 {
		a.pulse1.clockLength()
		a.pulse2.clockLength()
	}
}

func mixPulses(a, b uint8) int16 {
	if a == 0 && b == 0 {
		return 0
	}
	// Standard NES pulse-group mixing formula (both channels share one
	// table since they're identical square generators).
	return int16(95.88 * 5000.0 / (8128.0/(float64(a)+float64(b)) + 100.0))
}

// EndFrame flushes the buffered deltas recorded since the previous
// EndFrame (the APU cycles counted by stepChannels) and returns up to
// len(out) freshly available samples. cyclesThisFrame is not used.
func (a *APU) EndFrame(cyclesThisFrame int64, out []int16) int {
	a.buf.EndFrame(int(a.apuTime))
	a.apuTime = 0
	n := a.buf.SamplesAvailable()
	if n > len(out) {
		n = len(out)
	}
	return a.buf.ReadSamples(out, n, blip.Mono)
}
