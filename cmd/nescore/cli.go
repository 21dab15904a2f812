package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"nescore/logger"
)

// CLI is the nescore command line: one cmd-tagged field per subcommand,
// flags filled in via struct tags rather than hand-rolled flag.FlagSet
// plumbing.
type CLI struct {
	Run     RunCmd     `cmd:"" help:"Run a ROM."`
	RomInfo RomInfoCmd `cmd:"" help:"Show ROM header info." name:"rom-info"`
	Conform ConformCmd `cmd:"" help:"Run a batch of ROMs headlessly and report crashes." hidden:""`
	Version VersionCmd `cmd:"" help:"Show nescore's version."`
}

// RunCmd launches the SDL2 presenter against a single ROM.
type RunCmd struct {
	RomPath string     `arg:"" name:"rom" help:"Path to an iNES (.nes) ROM file." type:"existingfile"`
	Config  string     `name:"config" help:"Path to a TOML config file." type:"path"`
	Log     logModMask `name:"log" help:"${log_help}" placeholder:"mod0,mod1,..."`
	Trace   *outfile   `name:"trace" help:"Write a per-instruction PC trace." placeholder:"FILE|stdout|stderr"`
	NoAudio bool       `name:"no-audio" help:"Disable APU emulation and audio output."`
}

// RomInfoCmd prints the parsed iNES header and exits.
type RomInfoCmd struct {
	RomPath string `arg:"" name:"rom" type:"existingfile"`
}

// ConformCmd runs a directory of ROMs headlessly for a fixed number of
// frames apiece, concurrently. Each ROM that finishes prints a line; the
// command then fails with the first error (a panic or a load failure)
// any ROM returned, and further failures are not reported.
type ConformCmd struct {
	RomDir string `arg:"" name:"rom-dir" help:"Directory of .nes ROMs to run headlessly." type:"existingdir"`
	Frames int    `name:"frames" help:"Frames to run per ROM." default:"60"`
}

// VersionCmd prints the build version.
type VersionCmd struct{}

// Version is set at release time; "dev" otherwise.
var Version = "dev"

func (v *VersionCmd) Run() error {
	fmt.Println("nescore", Version)
	return nil
}

func (r *RomInfoCmd) Run() error {
	rom, err := readRom(r.RomPath)
	if err != nil {
		return err
	}
	rom.PrintInfos(os.Stdout)
	return nil
}

var cliVars = kong.Vars{
	"log_help": "Enable debug logging for specified modules (see below).",
}

func parseArgs(args []string) (CLI, *kong.Context) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("nescore"),
		kong.Description("A documented-opcode NES interpreter core."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		cliVars)
	checkf(err, "failed to build command line parser")

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	return cli, ctx
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if !strings.HasPrefix(ctx.Command(), "run") {
		return nil
	}

	var lines []string
	for _, m := range logger.ModuleNames() {
		lines = append(lines, "    - "+m)
	}
	fmt.Fprintf(os.Stderr, `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - all                    Enable every module.
    - none                   Disable all logging (the default).
`, strings.Join(lines, "\n"))
	return nil
}

// logModMask decodes a --log flag value into the set of logger.Module
// values to enable.
type logModMask struct {
	mods []logger.Module
}

// Decode implements kong.MapperValue.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	s, _ := tok.Value.(string)
	if s == "" {
		return nil
	}

	all := false
	none := false
	for _, v := range strings.Split(s, ",") {
		switch v {
		case "all":
			all = true
		case "none":
			none = true
		default:
			mod, ok := logger.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %q", v)
			}
			lm.mods = append(lm.mods, mod)
		}
	}
	if none && (all || len(lm.mods) > 0) {
		return fmt.Errorf("cannot combine 'none' with other log modules")
	}
	if all {
		for _, n := range logger.ModuleNames() {
			mod, _ := logger.ModuleByName(n)
			lm.mods = append(lm.mods, mod)
		}
	}
	return nil
}

func (lm *logModMask) apply() {
	if len(lm.mods) > 0 {
		logger.Enable(lm.mods...)
	}
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+": %s", append(args, err)...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
