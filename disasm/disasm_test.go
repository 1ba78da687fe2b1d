package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/go6502/mem"
)

func TestStepFormatsImmediateAndAbsolute(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadSnippet([]byte{0xA9, 0xC0, 0x8D, 0x00, 0x02})

	line, next := Step(bus, mem.SnippetLoadAddr)
	assert.Equal(t, "LDA #$C0", line.Text)
	assert.Equal(t, mem.SnippetLoadAddr+2, int(next))

	line, next = Step(bus, next)
	assert.Equal(t, "STA $0200", line.Text)
	assert.Equal(t, mem.SnippetLoadAddr+5, int(next))
}

func TestStepFormatsBranchAsRelativeOffset(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadSnippet([]byte{0xD0, 0xFD})

	line, _ := Step(bus, mem.SnippetLoadAddr)
	assert.Equal(t, "BNE *-3", line.Text)
}

func TestRangeStopsAtRequestedCount(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadSnippet([]byte{0xEA, 0xEA, 0xEA, 0x00})

	lines := Range(bus, mem.SnippetLoadAddr, 2)
	assert.Len(t, lines, 2)
}

func TestStepUnknownOpcodeStillAdvances(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadSnippet([]byte{0x02}) // unassigned byte

	line, next := Step(bus, mem.SnippetLoadAddr)
	assert.Contains(t, line.Text, "unknown opcode")
	assert.Equal(t, mem.SnippetLoadAddr+1, int(next))
}
