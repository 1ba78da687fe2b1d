package cpu

// This file holds the body of every instruction named in opcodes.go's
// table. Each body has the signature required by Opcode.Execute; bodies
// that never need an effective address (register transfers, flag sets,
// branches) ignore mode, since their entry in the table is always Implied.

// addWithCarry is the shared core of ADC and SBC: SBC(m) behaves exactly
// like ADC(^m), since -(m) - 1 (the "subtract with borrow" identity over
// 8-bit two's complement) equals the bitwise complement of m.
func (c *Cpu) addWithCarry(m byte) {
	a := c.A
	var carryIn uint16
	if c.P.Carry() {
		carryIn = 1
	}
	sum := uint16(a) + uint16(m) + carryIn
	result := byte(sum)

	c.P.SetCarry(sum > 0xFF)
	c.P.SetOverflow((m^result)&(a^result)&0x80 != 0)
	c.A = result
	c.P.setNZ(result)
}

func (c *Cpu) adc(mode AddressingMode) {
	c.addWithCarry(c.Bus.Read(c.resolveAddress(mode)))
}

func (c *Cpu) sbc(mode AddressingMode) {
	c.addWithCarry(^c.Bus.Read(c.resolveAddress(mode)))
}

func (c *Cpu) and(mode AddressingMode) {
	c.A &= c.Bus.Read(c.resolveAddress(mode))
	c.P.setNZ(c.A)
}

func (c *Cpu) ora(mode AddressingMode) {
	c.A |= c.Bus.Read(c.resolveAddress(mode))
	c.P.setNZ(c.A)
}

func (c *Cpu) eor(mode AddressingMode) {
	c.A ^= c.Bus.Read(c.resolveAddress(mode))
	c.P.setNZ(c.A)
}

func asl(v byte) (byte, bool) { return v << 1, v&0x80 != 0 }
func lsr(v byte) (byte, bool) { return v >> 1, v&0x01 != 0 }

func rol(v byte, carryIn bool) (byte, bool) {
	carryOut := v&0x80 != 0
	result := v << 1
	if carryIn {
		result |= 0x01
	}
	return result, carryOut
}

func ror(v byte, carryIn bool) (byte, bool) {
	carryOut := v&0x01 != 0
	result := v >> 1
	if carryIn {
		result |= 0x80
	}
	return result, carryOut
}

func (c *Cpu) aslAccumulator(mode AddressingMode) {
	result, carry := asl(c.A)
	c.A = result
	c.P.SetCarry(carry)
	c.P.setNZ(result)
}

func (c *Cpu) aslMemory(mode AddressingMode) {
	addr := c.resolveAddress(mode)
	result, carry := asl(c.Bus.Read(addr))
	c.Bus.Write(addr, result)
	c.P.SetCarry(carry)
	c.P.setNZ(result)
}

func (c *Cpu) lsrAccumulator(mode AddressingMode) {
	result, carry := lsr(c.A)
	c.A = result
	c.P.SetCarry(carry)
	c.P.setNZ(result)
}

func (c *Cpu) lsrMemory(mode AddressingMode) {
	addr := c.resolveAddress(mode)
	result, carry := lsr(c.Bus.Read(addr))
	c.Bus.Write(addr, result)
	c.P.SetCarry(carry)
	c.P.setNZ(result)
}

// rolAccumulator and rolMemory, and their ROR counterparts below, set ZERO
// and NEGATIVE in both the accumulator and memory forms: there is no
// principled reason for the addressing mode to change which flags an
// otherwise-identical shift affects.
func (c *Cpu) rolAccumulator(mode AddressingMode) {
	result, carry := rol(c.A, c.P.Carry())
	c.A = result
	c.P.SetCarry(carry)
	c.P.setNZ(result)
}

func (c *Cpu) rolMemory(mode AddressingMode) {
	addr := c.resolveAddress(mode)
	result, carry := rol(c.Bus.Read(addr), c.P.Carry())
	c.Bus.Write(addr, result)
	c.P.SetCarry(carry)
	c.P.setNZ(result)
}

func (c *Cpu) rorAccumulator(mode AddressingMode) {
	result, carry := ror(c.A, c.P.Carry())
	c.A = result
	c.P.SetCarry(carry)
	c.P.setNZ(result)
}

func (c *Cpu) rorMemory(mode AddressingMode) {
	addr := c.resolveAddress(mode)
	result, carry := ror(c.Bus.Read(addr), c.P.Carry())
	c.Bus.Write(addr, result)
	c.P.SetCarry(carry)
	c.P.setNZ(result)
}

func (c *Cpu) bit(mode AddressingMode) {
	m := c.Bus.Read(c.resolveAddress(mode))
	c.P.SetZero(c.A&m == 0)
	c.P.SetNegative(m&0x80 != 0)
	c.P.SetOverflow(m&0x40 != 0)
}

// compare is the shared core of CMP, CPX, and CPY: carry is set when
// m <= r (the register is at least as large as memory), not on a classic
// borrow-free subtraction, and NZ is set from the wrapped difference.
func (c *Cpu) compare(r byte, m byte) {
	c.P.SetCarry(m <= r)
	c.P.setNZ(r - m)
}

func (c *Cpu) cmp(mode AddressingMode) { c.compare(c.A, c.Bus.Read(c.resolveAddress(mode))) }
func (c *Cpu) cpx(mode AddressingMode) { c.compare(c.X, c.Bus.Read(c.resolveAddress(mode))) }
func (c *Cpu) cpy(mode AddressingMode) { c.compare(c.Y, c.Bus.Read(c.resolveAddress(mode))) }

func (c *Cpu) inc(mode AddressingMode) {
	addr := c.resolveAddress(mode)
	v := c.Bus.Read(addr) + 1
	c.Bus.Write(addr, v)
	c.P.setNZ(v)
}

func (c *Cpu) dec(mode AddressingMode) {
	addr := c.resolveAddress(mode)
	v := c.Bus.Read(addr) - 1
	c.Bus.Write(addr, v)
	c.P.setNZ(v)
}

func (c *Cpu) inx(mode AddressingMode) { c.X++; c.P.setNZ(c.X) }
func (c *Cpu) iny(mode AddressingMode) { c.Y++; c.P.setNZ(c.Y) }
func (c *Cpu) dex(mode AddressingMode) { c.X--; c.P.setNZ(c.X) }
func (c *Cpu) dey(mode AddressingMode) { c.Y--; c.P.setNZ(c.Y) }

func (c *Cpu) lda(mode AddressingMode) {
	c.A = c.Bus.Read(c.resolveAddress(mode))
	c.P.setNZ(c.A)
}

func (c *Cpu) ldx(mode AddressingMode) {
	c.X = c.Bus.Read(c.resolveAddress(mode))
	c.P.setNZ(c.X)
}

func (c *Cpu) ldy(mode AddressingMode) {
	c.Y = c.Bus.Read(c.resolveAddress(mode))
	c.P.setNZ(c.Y)
}

func (c *Cpu) sta(mode AddressingMode) { c.Bus.Write(c.resolveAddress(mode), c.A) }
func (c *Cpu) stx(mode AddressingMode) { c.Bus.Write(c.resolveAddress(mode), c.X) }
func (c *Cpu) sty(mode AddressingMode) { c.Bus.Write(c.resolveAddress(mode), c.Y) }

func (c *Cpu) tax(mode AddressingMode) { c.X = c.A; c.P.setNZ(c.X) }
func (c *Cpu) tay(mode AddressingMode) { c.Y = c.A; c.P.setNZ(c.Y) }
func (c *Cpu) txa(mode AddressingMode) { c.A = c.X; c.P.setNZ(c.A) }
func (c *Cpu) tya(mode AddressingMode) { c.A = c.Y; c.P.setNZ(c.A) }
func (c *Cpu) txs(mode AddressingMode) { c.S = c.X }
func (c *Cpu) tsx(mode AddressingMode) { c.X = c.S; c.P.setNZ(c.X) }

func (c *Cpu) pha(mode AddressingMode) { c.push(c.A) }
func (c *Cpu) pla(mode AddressingMode) { c.A = c.pop(); c.P.setNZ(c.A) }
func (c *Cpu) php(mode AddressingMode) { c.push(c.P.pushValue()) }
func (c *Cpu) plp(mode AddressingMode) { c.P = afterPull(c.pop()) }

func (c *Cpu) clc(mode AddressingMode) { c.P.SetCarry(false) }
func (c *Cpu) sec(mode AddressingMode) { c.P.SetCarry(true) }
func (c *Cpu) cli(mode AddressingMode) { c.P.SetInterruptDisable(false) }
func (c *Cpu) sei(mode AddressingMode) { c.P.SetInterruptDisable(true) }
func (c *Cpu) cld(mode AddressingMode) { c.P.SetDecimal(false) }
func (c *Cpu) sed(mode AddressingMode) { c.P.SetDecimal(true) }
func (c *Cpu) clv(mode AddressingMode) { c.P.SetOverflow(false) }

func (c *Cpu) nop(mode AddressingMode) {}

// branch reads the signed relative offset at PC (this byte is the sole
// operand, always consumed whether or not the branch is taken) and, if
// cond holds, jumps from the byte past the offset. When cond is false, PC
// is left untouched and Step's auto-advance rule (len 2, so +1) carries PC
// past the offset byte on its own.
func (c *Cpu) branch(cond bool) {
	offset := int8(c.Bus.Read(c.PC))
	if cond {
		c.PC = c.PC + 1 + uint16(int16(offset))
	}
}

func (c *Cpu) bcc(mode AddressingMode) { c.branch(!c.P.Carry()) }
func (c *Cpu) bcs(mode AddressingMode) { c.branch(c.P.Carry()) }
func (c *Cpu) beq(mode AddressingMode) { c.branch(c.P.Zero()) }
func (c *Cpu) bne(mode AddressingMode) { c.branch(!c.P.Zero()) }
func (c *Cpu) bpl(mode AddressingMode) { c.branch(!c.P.Negative()) }
func (c *Cpu) bmi(mode AddressingMode) { c.branch(c.P.Negative()) }
func (c *Cpu) bvc(mode AddressingMode) { c.branch(!c.P.Overflow()) }
func (c *Cpu) bvs(mode AddressingMode) { c.branch(c.P.Overflow()) }

func (c *Cpu) jmp(mode AddressingMode) {
	c.PC = c.resolveAddress(mode)
}

// jmpIndirect reproduces the original 6502's page-boundary bug: if the
// pointer's low byte is 0xFF, the high byte of the target is fetched from
// the start of the same page instead of crossing into the next one.
func (c *Cpu) jmpIndirect(mode AddressingMode) {
	ptr := c.Bus.ReadU16(c.PC)
	lo := c.Bus.Read(ptr)
	var hi byte
	if ptr&0x00FF == 0x00FF {
		hi = c.Bus.Read(ptr & 0xFF00)
	} else {
		hi = c.Bus.Read(ptr + 1)
	}
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// jsr pushes PC+1, the address of the high byte of the target operand
// (the last byte of this 3-byte instruction), not the address of the next
// instruction; rts accounts for that by adding 1 on the way out.
func (c *Cpu) jsr(mode AddressingMode) {
	c.pushU16(c.PC + 1)
	c.PC = c.Bus.ReadU16(c.PC)
}

func (c *Cpu) rts(mode AddressingMode) {
	c.PC = c.popU16() + 1
}

// brk sets INTERRUPT_DISABLE and pushes the status byte with BREAK and
// EXPANSION forced on. It does not push PC: in this system BRK is a
// program-terminating opcode for snippet execution, not a full interrupt
// entry (compare Irq/Nmi, which do push PC and are meant to be undone by
// rti). Step/Run detect the BRK opcode byte itself and stop the loop after
// this body returns.
func (c *Cpu) brk(mode AddressingMode) {
	c.P.SetInterruptDisable(true)
	c.push(c.P.pushValue())
}

// rti pops status then PC, the reverse order of Irq/Nmi's push-PC-then-
// push-status entry sequence (the stack is LIFO, so the last thing pushed,
// status, is the first thing popped).
func (c *Cpu) rti(mode AddressingMode) {
	c.P = afterPull(c.pop())
	c.PC = c.popU16()
}
