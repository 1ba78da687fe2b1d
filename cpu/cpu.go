// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES, driving reads and writes through a mem.Bus.
package cpu

import (
	"github.com/pkg/errors"

	"github.com/example/go6502/mem"
)

// A Cpu has no memory of its own beyond its registers. Every byte it reads
// or writes passes through Bus, which owns the address-space decoding.
type Cpu struct {
	Bus *mem.Bus

	A byte // accumulator
	X byte
	Y byte

	// S is the low byte of the stack pointer. Stack instructions (PHA,
	// PLA, PHP, PLP, JSR, RTS, BRK, RTI) always address page 1
	// (0x0100-0x01FF) through this register.
	S byte

	PC uint16
	P  Status

	// Callback, if set, is invoked by Run after every instruction
	// completes, with the Cpu in its post-instruction state. It exists
	// for tracing/disassembly frontends; Step never calls it itself, so
	// callers driving Step directly are free to trace however they like.
	Callback func(*Cpu)
}

// NewCpu returns a Cpu wired to bus, in its post-reset state.
func NewCpu(bus *mem.Bus) *Cpu {
	c := &Cpu{Bus: bus}
	c.Reset()
	return c
}

// Reset puts the Cpu into its power-on state and loads PC from the bus's
// reset vector.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = ResetValue
	c.PC = c.Bus.ReadU16(mem.ResetVector)
}

// Load installs program as a bare instruction stream via the bus's snippet
// loader and resets the Cpu so PC starts executing it.
func (c *Cpu) Load(program []byte) {
	c.Bus.LoadSnippet(program)
	c.Reset()
}

// Run executes instructions until BRK is hit or Step returns an error. A
// clean BRK termination is reported as a nil error; anything else Step
// surfaces (unknown opcode, a fatal bus condition) is returned as-is.
func (c *Cpu) Run() error {
	for {
		brk, err := c.Step()
		if err != nil {
			return err
		}
		if c.Callback != nil {
			c.Callback(c)
		}
		if brk {
			return nil
		}
	}
}

// Step executes exactly one instruction: fetch the opcode at PC, advance PC
// past it, dispatch to the opcode's Execute body, then advance PC by the
// remainder of the opcode's length unless the body itself changed PC (a
// branch taken, JMP, JSR, RTS, RTI). It reports whether the opcode executed
// was BRK, so Run knows to stop.
func (c *Cpu) Step() (brk bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = errors.Errorf("cpu: panic: %v", r)
			}
		}
	}()

	opcodeByte := c.Bus.Read(c.PC)
	c.PC++
	pcAfterFetch := c.PC

	op, lookupErr := Lookup(opcodeByte)
	if lookupErr != nil {
		return false, errors.Wrapf(lookupErr, "at pc=%#04x byte=%#02x", pcAfterFetch-1, opcodeByte)
	}

	op.Execute(c, op.Mode)

	if c.PC == pcAfterFetch {
		c.PC += uint16(op.Len) - 1
	}

	return opcodeByte == 0x00, nil
}

// resolveAddress computes the effective address for mode, reading operand
// bytes from PC without advancing it; Step's auto-advance rule accounts for
// the bytes consumed once the instruction body returns. Implied and
// Indirect are not handled here: Indirect is only ever used by JMP, which
// resolves it itself to apply the page-boundary bug.
func (c *Cpu) resolveAddress(mode AddressingMode) uint16 {
	switch mode {
	case Immediate:
		return c.PC
	case ZeroPage:
		return uint16(c.Bus.Read(c.PC))
	case ZeroPageX:
		return uint16(c.Bus.Read(c.PC) + c.X)
	case ZeroPageY:
		return uint16(c.Bus.Read(c.PC) + c.Y)
	case Absolute:
		return c.Bus.ReadU16(c.PC)
	case AbsoluteX:
		return c.Bus.ReadU16(c.PC) + uint16(c.X)
	case AbsoluteY:
		return c.Bus.ReadU16(c.PC) + uint16(c.Y)
	case IndirectX:
		base := c.Bus.Read(c.PC) + c.X
		lo := uint16(c.Bus.Read(uint16(base)))
		hi := uint16(c.Bus.Read(uint16(base + 1)))
		return hi<<8 | lo
	case IndirectY:
		base := c.Bus.Read(c.PC)
		lo := uint16(c.Bus.Read(uint16(base)))
		hi := uint16(c.Bus.Read(uint16(base + 1)))
		return (hi<<8 | lo) + uint16(c.Y)
	default:
		panic(errors.Wrapf(ErrUnsupportedAddressingMode, "mode=%d", mode))
	}
}

// push writes v to the stack page at S and decrements S.
func (c *Cpu) push(v byte) {
	c.Bus.Write(0x0100+uint16(c.S), v)
	c.S--
}

// pop increments S and reads the stack page at the new S.
func (c *Cpu) pop() byte {
	c.S++
	return c.Bus.Read(0x0100 + uint16(c.S))
}

// pushU16 pushes v as two bytes, high byte first then low byte, so a
// matching popU16 (low then high) reconstructs it in order.
func (c *Cpu) pushU16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Cpu) popU16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// Irq requests a maskable interrupt. It is a no-op if INTERRUPT_DISABLE is
// set. Unlike BRK (which only pushes status, as a program-terminating
// opcode in snippet mode), Irq performs the full interrupt-entry sequence:
// push PC, push status with BREAK clear and EXPANSION set, set
// INTERRUPT_DISABLE, and load PC from the IRQ vector.
func (c *Cpu) Irq() {
	if c.P.InterruptDisable() {
		return
	}
	c.enterInterrupt(mem.IRQVector)
}

// Nmi requests a non-maskable interrupt; unlike Irq it cannot be masked by
// INTERRUPT_DISABLE.
func (c *Cpu) Nmi() {
	c.enterInterrupt(mem.NMIVector)
}

func (c *Cpu) enterInterrupt(vector uint16) {
	c.pushU16(c.PC)
	status := c.P
	status.SetBreak(false)
	status.SetExpansion(true)
	c.push(byte(status))
	c.P.SetInterruptDisable(true)
	c.PC = c.Bus.ReadU16(vector)
}
