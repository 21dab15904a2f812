// Command nescore runs and inspects NES ROMs against the nescore
// interpreter core. It owns everything the core itself stays clear of:
// ROM loading, configuration, debug logging selection, SDL2
// presentation, and headless conformance testing.
package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"nescore/debug"
	"nescore/ines"
	"nescore/logger"
	"nescore/nes"
)

func main() {
	cli, ctx := parseArgs(os.Args[1:])

	switch ctx.Command() {
	case "run <rom>":
		runMain(cli.Run)
	case "rom-info <rom>":
		checkf(ctx.Run(), "rom-info failed")
	case "conform <rom-dir>":
		checkf(runConform(cli.Conform), "conform failed")
	case "version":
		checkf(ctx.Run(), "version failed")
	default:
		fatalf("unknown command %q", ctx.Command())
	}
}

func readRom(path string) (*ines.Rom, error) {
	rom, err := ines.ReadRom(path)
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}
	if rom.IsNES20() {
		return nil, fmt.Errorf("reading rom: NES 2.0 headers are not supported")
	}
	return rom, nil
}

// runMain loads cfg/ROM, wires a Console, and hands it to the SDL2
// presenter. It runs on SDL's own thread via sdl.Main, since SDL
// requires its event loop and every window/renderer call to stay pinned
// to the thread that created them.
func runMain(args RunCmd) {
	args.Log.apply()

	cfg, err := LoadConfig(args.Config)
	checkf(err, "failed to load config")
	for _, name := range cfg.Log.Modules {
		if mod, ok := logger.ModuleByName(name); ok {
			logger.Enable(mod)
		}
	}

	rom, err := readRom(args.RomPath)
	checkf(err, "failed to open rom")

	var hook debug.Hook = debug.NoOp{}
	if args.Trace != nil {
		hook = &traceHook{w: args.Trace}
		defer args.Trace.Close()
	}

	attachAudio := cfg.Audio.Enabled && !args.NoAudio

	exitCode := 0
	sdl.Main(func() {
		console, err := nes.NewConsole(rom, hook, attachAudio)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to build console:", err)
			exitCode = 1
			return
		}
		console.Reset()

		p, err := newPresenter(console, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to start presenter:", err)
			exitCode = 1
			return
		}
		defer p.close()

		p.runLoop()
	})
	os.Exit(exitCode)
}
