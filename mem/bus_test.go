package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRamMirroring(t *testing.T) {
	b := NewBus()
	b.Write(0x0000, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0000))
	assert.Equal(t, byte(0x42), b.Read(0x0800))
	assert.Equal(t, byte(0x42), b.Read(0x1000))
	assert.Equal(t, byte(0x42), b.Read(0x1800))
}

func TestRomMirroring16KiB(t *testing.T) {
	prg := make([]byte, romHalfLen)
	prg[0] = 0xAA
	prg[len(prg)-1] = 0xBB

	b := NewBus()
	b.LoadRom(prg)

	assert.Equal(t, byte(0xAA), b.Read(0x8000))
	assert.Equal(t, byte(0xAA), b.Read(0xC000))
	assert.Equal(t, byte(0xBB), b.Read(0xBFFF))
	assert.Equal(t, byte(0xBB), b.Read(0xFFFF))
}

func TestRomMirroring32KiB(t *testing.T) {
	prg := make([]byte, 0x8000)
	prg[0] = 0x11
	prg[0x4000] = 0x22

	b := NewBus()
	b.LoadRom(prg)

	assert.Equal(t, byte(0x11), b.Read(0x8000))
	assert.Equal(t, byte(0x22), b.Read(0xC000))
}

func TestWriteToRomPanics(t *testing.T) {
	b := NewBus()
	b.LoadRom(make([]byte, romHalfLen))
	assert.PanicsWithError(t, "at 0x8000: mem: write to cartridge ROM", func() {
		b.Write(0x8000, 1)
	})
}

func TestPPUAccessPanics(t *testing.T) {
	b := NewBus()
	assert.Panics(t, func() { b.Read(0x2000) })
	assert.Panics(t, func() { b.Write(0x3FFF, 1) })
}

func TestUnmappedReadReturnsZeroAndLogs(t *testing.T) {
	var logged []string
	b := NewBus()
	b.Logger = logFunc(func(format string, args ...any) {
		logged = append(logged, format)
	})

	assert.Equal(t, byte(0), b.Read(0x4020))
	b.Write(0x4020, 0xFF) // dropped, not panicking
	assert.Len(t, logged, 2)
}

func TestReadWriteU16LittleEndian(t *testing.T) {
	b := NewBus()
	b.WriteU16(0x0010, 0xBEEF)
	assert.Equal(t, byte(0xEF), b.Read(0x0010))
	assert.Equal(t, byte(0xBE), b.Read(0x0011))
	assert.Equal(t, uint16(0xBEEF), b.ReadU16(0x0010))
}

func TestLoadSnippetSetsResetVector(t *testing.T) {
	b := NewBus()
	b.LoadSnippet([]byte{0xA9, 0x01, 0x00})
	assert.Equal(t, uint16(SnippetLoadAddr), b.ReadU16(ResetVector))
	assert.Equal(t, byte(0xA9), b.Read(SnippetLoadAddr))
}

type logFunc func(format string, args ...any)

func (f logFunc) Logf(format string, args ...any) { f(format, args...) }
