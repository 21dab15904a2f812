// Package logger provides the small, per-module logging facility used
// throughout nescore. It wraps logrus with a fluent, allocation-light entry
// builder so call sites read like:
//
//	logger.ModBus.Debug("unmapped read").Hex16("addr", addr).End()
package logger

import (
	"fmt"

	logrus "gopkg.in/Sirupsen/logrus.v0"
)

// Module identifies the subsystem emitting a log entry.
type Module int

const (
	ModCPU Module = iota
	ModPPU
	ModBus
	ModMapper
	ModDMA
	ModAudio
)

var modNames = [...]string{"cpu", "ppu", "bus", "mapper", "dma", "audio"}

func (m Module) String() string {
	if int(m) < len(modNames) {
		return modNames[m]
	}
	return "?"
}

// ModuleByName resolves a module's name (as printed by String) back to a
// Module, for CLI flags like --log=cpu,ppu.
func ModuleByName(name string) (Module, bool) {
	for i, n := range modNames {
		if n == name {
			return Module(i), true
		}
	}
	return 0, false
}

// ModuleNames lists every module name, in declaration order.
func ModuleNames() []string { return modNames[:] }

// enabled tracks which modules emit Debug-level entries; Error and above
// always go through regardless of this mask.
var enabled = map[Module]bool{}

// Enable turns on Debug-level logging for the given modules.
func Enable(mods ...Module) {
	if len(mods) > 0 {
		logrus.SetLevel(logrus.DebugLevel)
	}
	for _, m := range mods {
		enabled[m] = true
	}
}

// Disable turns off Debug-level logging for the given modules.
func Disable(mods ...Module) {
	for _, m := range mods {
		delete(enabled, m)
	}
}

// Entry is a single fluent log record under construction. A nil *Entry is
// valid and every method on it is a no-op, so disabled modules cost only a
// level check.
type Entry struct {
	mod    Module
	level  logrus.Level
	msg    string
	fields logrus.Fields
}

func newEntry(mod Module, level logrus.Level, msg string) *Entry {
	if level == logrus.DebugLevel && !enabled[mod] {
		return nil
	}
	return &Entry{mod: mod, level: level, msg: msg, fields: logrus.Fields{"mod": mod.String()}}
}

// Debug starts a debug-level entry for the module. Suppressed unless the
// module was enabled via Enable.
func (m Module) Debug(msg string) *Entry { return newEntry(m, logrus.DebugLevel, msg) }

// Info starts an info-level entry.
func (m Module) Info(msg string) *Entry { return newEntry(m, logrus.InfoLevel, msg) }

// Warn starts a warning-level entry.
func (m Module) Warn(msg string) *Entry { return newEntry(m, logrus.WarnLevel, msg) }

// Error starts an error-level entry. Used for programmer errors such as
// an out-of-range register access.
func (m Module) Error(msg string) *Entry { return newEntry(m, logrus.ErrorLevel, msg) }

func (e *Entry) with(key string, val any) *Entry {
	if e == nil {
		return nil
	}
	e.fields[key] = val
	return e
}

// Hex8 attaches an 8-bit value formatted as hex.
func (e *Entry) Hex8(key string, v uint8) *Entry { return e.with(key, fmt.Sprintf("%02x", v)) }

// Hex16 attaches a 16-bit value formatted as hex.
func (e *Entry) Hex16(key string, v uint16) *Entry { return e.with(key, fmt.Sprintf("%04x", v)) }

// Uint attaches an unsigned integer field.
func (e *Entry) Uint(key string, v uint64) *Entry { return e.with(key, v) }

// Str attaches a string field.
func (e *Entry) Str(key string, v string) *Entry { return e.with(key, v) }

// Bool attaches a boolean field.
func (e *Entry) Bool(key string, v bool) *Entry { return e.with(key, v) }

// End emits the entry.
func (e *Entry) End() {
	if e == nil {
		return
	}
	entry := logrus.WithFields(e.fields)
	switch e.level {
	case logrus.DebugLevel:
		entry.Debug(e.msg)
	case logrus.InfoLevel:
		entry.Info(e.msg)
	case logrus.WarnLevel:
		entry.Warn(e.msg)
	case logrus.ErrorLevel:
		entry.Error(e.msg)
	}
}
