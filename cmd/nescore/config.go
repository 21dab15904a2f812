package main

import "github.com/BurntSushi/toml"

// Config is the optional TOML settings file the run command accepts via
// --config. It covers the knobs a driver owns rather than the core:
// which debug log modules are on by default, a scanline timing value,
// and presentation settings.
type Config struct {
	Log struct {
		Modules []string `toml:"modules"`
	} `toml:"log"`

	Timing struct {
		// CyclesPerScanline is parsed and defaulted but not read by the
		// run command; the PPU's dot accumulator always uses its fixed
		// NTSC ratio of 341 dots per scanline, 3 dots per CPU cycle.
		CyclesPerScanline float64 `toml:"cycles_per_scanline"`
	} `toml:"timing"`

	Video struct {
		Scale int `toml:"scale"`
	} `toml:"video"`

	Audio struct {
		Enabled    bool `toml:"enabled"`
		SampleRate int  `toml:"sample_rate"`
	} `toml:"audio"`
}

// DefaultConfig returns the settings used when no --config file is given.
func DefaultConfig() Config {
	var cfg Config
	cfg.Timing.CyclesPerScanline = 341.0 / 3.0
	cfg.Video.Scale = 3
	cfg.Audio.Enabled = true
	cfg.Audio.SampleRate = 44100
	return cfg
}

// LoadConfig reads path as TOML on top of DefaultConfig, so a config file
// only has to mention the fields it overrides. An empty path returns the
// defaults untouched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
