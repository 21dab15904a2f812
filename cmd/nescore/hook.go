package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"nescore/debug"
)

// outfile decodes a FILE|stdout|stderr flag value into an io.WriteCloser.
type outfile struct {
	w    *os.File
	name string
}

// Decode implements kong.MapperValue.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name, _ = tok.Value.(string)

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }

func (f *outfile) Close() error {
	if f.w == os.Stdout || f.w == os.Stderr {
		return nil
	}
	return f.w.Close()
}

// traceHook implements debug.Hook by writing one line per instruction
// fetch, holding only the PC. PPU register accesses are not traced.
type traceHook struct {
	w *outfile
}

func (t *traceHook) MayContinue(pc uint16) bool {
	fmt.Fprintf(t.w, "%04X\n", pc)
	return true
}

func (t *traceHook) OnRegister(addr uint16, val uint8, kind debug.AccessKind) {}

var _ debug.Hook = (*traceHook)(nil)
