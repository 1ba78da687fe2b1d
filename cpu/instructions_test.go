package cpu

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/go6502/mem"
)

func TestLdaSetsZeroAndNegative(t *testing.T) {
	c := newTestCpu(t, []byte{0xA9, 0x00, 0x00}) // LDA #$00; BRK
	require.NoError(t, c.Run())
	assert.True(t, c.P.Zero())
	assert.False(t, c.P.Negative())

	c = newTestCpu(t, []byte{0xA9, 0x80, 0x00}) // LDA #$80; BRK
	require.NoError(t, c.Run())
	assert.False(t, c.P.Zero())
	assert.True(t, c.P.Negative())
}

func TestStaZeroPageX(t *testing.T) {
	c := newTestCpu(t, []byte{0xA9, 0x7A, 0xA2, 0x02, 0x95, 0x10, 0x00})
	require.NoError(t, c.Run())
	assert.Equal(t, byte(0x7A), c.Bus.Read(0x0012))
}

func TestIndirectXAddressing(t *testing.T) {
	// LDX #$04; LDA ($20,X); BRK -- pointer lives at $24/$25
	c := newTestCpu(t, []byte{0xA2, 0x04, 0xA1, 0x20, 0x00})
	c.Bus.Write(0x0024, 0x00)
	c.Bus.Write(0x0025, 0x07)
	c.Bus.Write(0x0700, 0x99)
	require.NoError(t, c.Run())
	assert.Equal(t, byte(0x99), c.A)
}

func TestIndirectYAddressing(t *testing.T) {
	// LDY #$03; LDA ($30),Y; BRK
	c := newTestCpu(t, []byte{0xA0, 0x03, 0xB1, 0x30, 0x00})
	c.Bus.Write(0x0030, 0x00)
	c.Bus.Write(0x0031, 0x07)
	c.Bus.Write(0x0703, 0x55)
	require.NoError(t, c.Run())
	assert.Equal(t, byte(0x55), c.A)
}

func TestAslAndLsrMatchSpecFormula(t *testing.T) {
	for _, v := range []byte{0x00, 0x01, 0x40, 0x80, 0xFF} {
		gotAsl, carryAsl := asl(v)
		assert.Equal(t, byte(v<<1), gotAsl)
		assert.Equal(t, v>>7 == 1, carryAsl)

		gotLsr, carryLsr := lsr(v)
		assert.Equal(t, v>>1, gotLsr)
		assert.Equal(t, v&1 == 1, carryLsr)
	}
}

func TestRolThenRorIsIdentity(t *testing.T) {
	for _, v := range []byte{0x00, 0x01, 0x55, 0xAA, 0xFF} {
		for _, carry := range []bool{false, true} {
			rolled, carryOut := rol(v, carry)
			back, _ := ror(rolled, carryOut)
			assert.Equal(t, v, back)
		}
	}
}

func TestRorSetsNZInBothForms(t *testing.T) {
	acc := newTestCpu(t, []byte{0x6A, 0x00}) // ROR A; BRK
	acc.A = 0x01
	_, err := acc.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), acc.A)
	assert.True(t, acc.P.Zero())

	mem_ := newTestCpu(t, []byte{0x66, 0x10, 0x00}) // ROR $10; BRK
	mem_.Bus.Write(0x0010, 0x01)
	_, err = mem_.Step()
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), mem_.Bus.Read(0x0010))
	assert.True(t, mem_.P.Zero())
}

func TestAdcCommutative(t *testing.T) {
	c1 := newTestCpu(t, []byte{0x69, 0x37, 0x00}) // ADC #$37
	c1.A = 0x15
	require.NoError(t, c1.Run())

	c2 := newTestCpu(t, []byte{0x69, 0x15, 0x00}) // ADC #$15
	c2.A = 0x37
	require.NoError(t, c2.Run())

	assert.Equal(t, c1.A, c2.A)
	assert.Equal(t, c1.P.Carry(), c2.P.Carry())
}

func TestCompareCarryOnMLessEqualR(t *testing.T) {
	c := &Cpu{}
	c.compare(0x10, 0x05) // R=0x10, M=0x05: M<=R
	assert.True(t, c.P.Carry())

	c2 := &Cpu{}
	c2.compare(0x05, 0x10) // R=0x05, M=0x10: M>R
	assert.False(t, c2.P.Carry())
}

func TestBneBranchesBackward(t *testing.T) {
	// LDX #$03; loop: DEX; BNE loop (-3); BRK
	c := newTestCpu(t, []byte{0xA2, 0x03, 0xCA, 0xD0, 0xFD, 0x00})
	require.NoError(t, c.Run())
	assert.Equal(t, byte(0x00), c.X)
}

func TestBitSetsZNegativeOverflowFromMemoryNotAnd(t *testing.T) {
	c := newTestCpu(t, []byte{0x24, 0x10, 0x00}) // BIT $10; BRK
	c.A = 0x01
	c.Bus.Write(0x0010, 0xC0) // bits 7 and 6 set, A&M == 0
	require.NoError(t, c.Run())
	assert.True(t, c.P.Zero())
	assert.True(t, c.P.Negative())
	assert.True(t, c.P.Overflow())
}

func TestPhpForcesBreakAndExpansionOnPush(t *testing.T) {
	c := newTestCpu(t, []byte{0x08, 0x00}) // PHP; BRK
	c.P.SetBreak(false)
	s := c.S
	_, err := c.Step()
	require.NoError(t, err)
	pushed := Status(c.Bus.Read(0x0100 + uint16(s)))
	assert.True(t, pushed.Break())
	assert.True(t, pushed.Expansion())
}

func TestPlpClearsBreakForcesExpansion(t *testing.T) {
	c := newTestCpu(t, []byte{0x28, 0x00}) // PLP; BRK
	c.push(0xFF)                           // all bits set, including BREAK
	_, err := c.Step()
	require.NoError(t, err)
	assert.False(t, c.P.Break())
	assert.True(t, c.P.Expansion())
}

func TestRtiPopsStatusThenPcWithNoIncrement(t *testing.T) {
	c := newTestCpu(t, []byte{0x40}) // RTI
	c.pushU16(0x1234)
	c.push(Status(0).pushValue())

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestRamMirroringThroughBus(t *testing.T) {
	bus := mem.NewBus()
	bus.Write(0x0000, 0x77)
	if diff := deep.Equal(bus.Read(0x0800), byte(0x77)); diff != nil {
		t.Error(diff)
	}
}
