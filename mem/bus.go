// Package mem implements the 6502 memory bus: the component that
// translates 16-bit addresses into reads and writes against the
// console's RAM, the (stubbed) PPU register window, and cartridge
// program ROM.
package mem

import (
	"github.com/pkg/errors"
)

// Fatal bus conditions. The CPU recovers these out of a panicking Read
// or Write and surfaces them as the terminal error of Run/Step, per the
// error taxonomy in the error-handling design: a PPU or ROM-write access
// is a programming/integration error, not a transient fault, so the bus
// does not attempt to limp along with a best-effort value.
var (
	ErrPPUAccess  = errors.New("mem: PPU register access (unimplemented)")
	ErrWriteToROM = errors.New("mem: write to cartridge ROM")
)

// A Bus is the central object that connects the CPU to the rest of the
// console's address space. Unlike the teacher's FakeRam (a flat 64 kB
// slice with no decoding), this Bus mirrors address ranges the way real
// NES hardware does: only 2 KiB of RAM actually exists behind the
// 0x0000-0x1FFF window, PPU registers occupy an 8-byte window mirrored
// across 0x2000-0x3FFF, and 0x8000-0xFFFF is read-only cartridge space.
type Bus struct {
	ram [ramSize]byte

	// prgRom is borrowed from the cartridge loader (or, in snippet mode,
	// populated inside ram and never set here). It is never mutated:
	// writes in 0x8000-0xFFFF are a fatal ErrWriteToROM condition, except
	// for the six vector bytes below.
	prgRom []byte

	// vectors overrides the reset/NMI/IRQ vectors (0xFFFA-0xFFFF) once
	// something has written to them directly. Real cartridges bake these
	// into prgRom, but LoadSnippet has no ROM to bake them into, so the
	// vector range is the one exception to ROM being read-only.
	vectors    [6]byte
	vectorsSet bool

	// Logger receives one line for every read or write that falls
	// outside a mapped range. A nil Logger silently drops these
	// diagnostics; host frontends typically install one that forwards
	// to their own log sink, the same swappable-interface pattern
	// mgnes.Logger uses.
	Logger Logger
}

const (
	ramSize    = 0x0800 // 2 KiB
	ramMirror  = 0x07FF // ram repeats every 0x0800 bytes through 0x1FFF
	ramEnd     = 0x1FFF
	ppuStart   = 0x2000
	ppuEnd     = 0x3FFF
	romStart   = 0x8000
	romEnd     = 0xFFFF
	romHalfLen = 0x4000 // 16 KiB; ROMs this size mirror into both halves

	vectorStart = 0xFFFA // NMI, reset, and IRQ vectors: the last 6 bytes of the address space

	// SnippetLoadAddr is where LoadSnippet places a raw instruction
	// stream for quick bytecode testing.
	SnippetLoadAddr = 0x0600

	// ResetVector, NMIVector, and IRQVector are the fixed little-endian
	// 16-bit pointers the CPU consults on reset and on interrupt entry.
	ResetVector = 0xFFFC
	NMIVector   = 0xFFFA
	IRQVector   = 0xFFFE
)

// Logger is the diagnostic sink for unmapped or rejected bus accesses.
type Logger interface {
	Logf(format string, args ...any)
}

// NewBus returns a Bus with zeroed RAM and no attached program ROM.
func NewBus() *Bus {
	return &Bus{}
}

// LoadRom attaches prg as the cartridge program ROM. prg must be 16 KiB
// or 32 KiB; a 16 KiB image is mirrored into both halves of
// 0x8000-0xFFFF on read.
func (b *Bus) LoadRom(prg []byte) {
	b.prgRom = prg
}

// LoadSnippet copies code into RAM starting at SnippetLoadAddr and
// points the reset vector at that address, so a bare instruction stream
// can be executed without a cartridge.
func (b *Bus) LoadSnippet(code []byte) {
	for i, v := range code {
		b.ram[(SnippetLoadAddr+uint16(i))&ramMirror] = v
	}
	b.WriteU16(ResetVector, SnippetLoadAddr)
}

func (b *Bus) logf(format string, args ...any) {
	if b.Logger != nil {
		b.Logger.Logf(format, args...)
	}
}

// Read returns the byte at addr, decoding the address into RAM, the PPU
// register window, or cartridge ROM. Reads in an unmapped range return 0
// and are logged; a PPU read panics with ErrPPUAccess (the CPU recovers
// this into a terminal Run error).
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr <= ramEnd:
		return b.ram[addr&ramMirror]
	case addr >= ppuStart && addr <= ppuEnd:
		panic(errors.Wrapf(ErrPPUAccess, "read at %#04x", addr))
	case b.vectorsSet && addr >= vectorStart:
		return b.vectors[addr-vectorStart]
	case addr >= romStart && addr <= romEnd:
		return b.readRom(addr)
	default:
		b.logf("mem: read from unmapped address %#04x, returning 0", addr)
		return 0
	}
}

func (b *Bus) readRom(addr uint16) byte {
	if len(b.prgRom) == 0 {
		b.logf("mem: read from cartridge ROM at %#04x with no ROM attached", addr)
		return 0
	}
	offset := addr - romStart
	if len(b.prgRom) == romHalfLen {
		offset %= romHalfLen
	}
	if int(offset) >= len(b.prgRom) {
		b.logf("mem: ROM read at %#04x out of range (len=%d)", addr, len(b.prgRom))
		return 0
	}
	return b.prgRom[offset]
}

// Write stores data at addr. A write to cartridge ROM panics with
// ErrWriteToROM (the cartridge is read-only); a write to the PPU stub
// panics with ErrPPUAccess; a write to any other unmapped range is
// dropped and logged.
func (b *Bus) Write(addr uint16, data byte) {
	switch {
	case addr <= ramEnd:
		b.ram[addr&ramMirror] = data
	case addr >= ppuStart && addr <= ppuEnd:
		panic(errors.Wrapf(ErrPPUAccess, "write at %#04x", addr))
	case addr >= vectorStart:
		b.vectors[addr-vectorStart] = data
		b.vectorsSet = true
	case addr >= romStart && addr <= romEnd:
		panic(errors.Wrapf(ErrWriteToROM, "at %#04x", addr))
	default:
		b.logf("mem: write to unmapped address %#04x dropped", addr)
	}
}

// ReadU16 composes a little-endian 16-bit value from two 8-bit reads:
// the low byte at addr, the high byte at addr+1.
func (b *Bus) ReadU16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// WriteU16 stores a little-endian 16-bit value across two byte writes:
// the low byte at addr, the high byte at addr+1.
func (b *Bus) WriteU16(addr uint16, data uint16) {
	b.Write(addr, byte(data&0x00FF))
	b.Write(addr+1, byte(data>>8))
}
