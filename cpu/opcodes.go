package cpu

// An AddressingMode tells the CPU where to find the operand for an
// instruction.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect // JMP only
	IndirectX
	IndirectY
)

// Opcode is an immutable record describing one defined byte value: its
// mnemonic, instruction length in bytes, nominal cycle count, and
// addressing mode. Execute is the instruction body itself, dispatched
// by opcode byte rather than by a type switch on mnemonic.
type Opcode struct {
	Code     byte
	Mnemonic string
	Len      byte
	Cycles   byte
	Mode     AddressingMode
	Execute  func(c *Cpu, mode AddressingMode)
}

// opcodes is the process-wide, read-only table from opcode byte to
// record. It is built once at package init and never mutated after,
// following the teacher's "shared lookup table" design: multiple Cpu
// values may look entries up concurrently.
var opcodes = buildOpcodeTable()

// Lookup returns the Opcode for b, or ErrUnknownOpcode if b is not a
// defined instruction byte.
func Lookup(b byte) (Opcode, error) {
	op, ok := opcodes[b]
	if !ok {
		return Opcode{}, ErrUnknownOpcode
	}
	return op, nil
}

func buildOpcodeTable() map[byte]Opcode {
	t := map[byte]Opcode{}
	add := func(code byte, mnemonic string, length, cycles byte, mode AddressingMode, fn func(c *Cpu, mode AddressingMode)) {
		t[code] = Opcode{Code: code, Mnemonic: mnemonic, Len: length, Cycles: cycles, Mode: mode, Execute: fn}
	}

	// ADC
	add(0x69, "ADC", 2, 2, Immediate, (*Cpu).adc)
	add(0x65, "ADC", 2, 3, ZeroPage, (*Cpu).adc)
	add(0x75, "ADC", 2, 4, ZeroPageX, (*Cpu).adc)
	add(0x6D, "ADC", 3, 4, Absolute, (*Cpu).adc)
	add(0x7D, "ADC", 3, 4, AbsoluteX, (*Cpu).adc)
	add(0x79, "ADC", 3, 4, AbsoluteY, (*Cpu).adc)
	add(0x61, "ADC", 2, 6, IndirectX, (*Cpu).adc)
	add(0x71, "ADC", 2, 5, IndirectY, (*Cpu).adc)

	// AND
	add(0x29, "AND", 2, 2, Immediate, (*Cpu).and)
	add(0x25, "AND", 2, 3, ZeroPage, (*Cpu).and)
	add(0x35, "AND", 2, 4, ZeroPageX, (*Cpu).and)
	add(0x2D, "AND", 3, 4, Absolute, (*Cpu).and)
	add(0x3D, "AND", 3, 4, AbsoluteX, (*Cpu).and)
	add(0x39, "AND", 3, 4, AbsoluteY, (*Cpu).and)
	add(0x21, "AND", 2, 6, IndirectX, (*Cpu).and)
	add(0x31, "AND", 2, 5, IndirectY, (*Cpu).and)

	// ASL
	add(0x0A, "ASL", 1, 2, Implied, (*Cpu).aslAccumulator)
	add(0x06, "ASL", 2, 5, ZeroPage, (*Cpu).aslMemory)
	add(0x16, "ASL", 2, 6, ZeroPageX, (*Cpu).aslMemory)
	add(0x0E, "ASL", 3, 6, Absolute, (*Cpu).aslMemory)
	add(0x1E, "ASL", 3, 7, AbsoluteX, (*Cpu).aslMemory)

	// branches
	add(0x90, "BCC", 2, 2, Implied, (*Cpu).bcc)
	add(0xB0, "BCS", 2, 2, Implied, (*Cpu).bcs)
	add(0xF0, "BEQ", 2, 2, Implied, (*Cpu).beq)
	add(0x30, "BMI", 2, 2, Implied, (*Cpu).bmi)
	add(0xD0, "BNE", 2, 2, Implied, (*Cpu).bne)
	add(0x10, "BPL", 2, 2, Implied, (*Cpu).bpl)
	add(0x50, "BVC", 2, 2, Implied, (*Cpu).bvc)
	add(0x70, "BVS", 2, 2, Implied, (*Cpu).bvs)

	// BIT
	add(0x24, "BIT", 2, 3, ZeroPage, (*Cpu).bit)
	add(0x2C, "BIT", 3, 4, Absolute, (*Cpu).bit)

	// BRK
	add(0x00, "BRK", 1, 7, Implied, (*Cpu).brk)

	// flags
	add(0x18, "CLC", 1, 2, Implied, (*Cpu).clc)
	add(0x38, "SEC", 1, 2, Implied, (*Cpu).sec)
	add(0xD8, "CLD", 1, 2, Implied, (*Cpu).cld)
	add(0xF8, "SED", 1, 2, Implied, (*Cpu).sed)
	add(0x58, "CLI", 1, 2, Implied, (*Cpu).cli)
	add(0x78, "SEI", 1, 2, Implied, (*Cpu).sei)
	add(0xB8, "CLV", 1, 2, Implied, (*Cpu).clv)

	// CMP / CPX / CPY
	add(0xC9, "CMP", 2, 2, Immediate, (*Cpu).cmp)
	add(0xC5, "CMP", 2, 3, ZeroPage, (*Cpu).cmp)
	add(0xD5, "CMP", 2, 4, ZeroPageX, (*Cpu).cmp)
	add(0xCD, "CMP", 3, 4, Absolute, (*Cpu).cmp)
	add(0xDD, "CMP", 3, 4, AbsoluteX, (*Cpu).cmp)
	add(0xD9, "CMP", 3, 4, AbsoluteY, (*Cpu).cmp)
	add(0xC1, "CMP", 2, 6, IndirectX, (*Cpu).cmp)
	add(0xD1, "CMP", 2, 5, IndirectY, (*Cpu).cmp)
	add(0xE0, "CPX", 2, 2, Immediate, (*Cpu).cpx)
	add(0xE4, "CPX", 2, 3, ZeroPage, (*Cpu).cpx)
	add(0xEC, "CPX", 3, 4, Absolute, (*Cpu).cpx)
	add(0xC0, "CPY", 2, 2, Immediate, (*Cpu).cpy)
	add(0xC4, "CPY", 2, 3, ZeroPage, (*Cpu).cpy)
	add(0xCC, "CPY", 3, 4, Absolute, (*Cpu).cpy)

	// DEC / DEX / DEY
	add(0xC6, "DEC", 2, 5, ZeroPage, (*Cpu).dec)
	add(0xD6, "DEC", 2, 6, ZeroPageX, (*Cpu).dec)
	add(0xCE, "DEC", 3, 6, Absolute, (*Cpu).dec)
	add(0xDE, "DEC", 3, 7, AbsoluteX, (*Cpu).dec)
	add(0xCA, "DEX", 1, 2, Implied, (*Cpu).dex)
	add(0x88, "DEY", 1, 2, Implied, (*Cpu).dey)

	// EOR
	add(0x49, "EOR", 2, 2, Immediate, (*Cpu).eor)
	add(0x45, "EOR", 2, 3, ZeroPage, (*Cpu).eor)
	add(0x55, "EOR", 2, 4, ZeroPageX, (*Cpu).eor)
	add(0x4D, "EOR", 3, 4, Absolute, (*Cpu).eor)
	add(0x5D, "EOR", 3, 4, AbsoluteX, (*Cpu).eor)
	add(0x59, "EOR", 3, 4, AbsoluteY, (*Cpu).eor)
	add(0x41, "EOR", 2, 6, IndirectX, (*Cpu).eor)
	add(0x51, "EOR", 2, 5, IndirectY, (*Cpu).eor)

	// INC / INX / INY
	add(0xE6, "INC", 2, 5, ZeroPage, (*Cpu).inc)
	add(0xF6, "INC", 2, 6, ZeroPageX, (*Cpu).inc)
	add(0xEE, "INC", 3, 6, Absolute, (*Cpu).inc)
	add(0xFE, "INC", 3, 7, AbsoluteX, (*Cpu).inc)
	add(0xE8, "INX", 1, 2, Implied, (*Cpu).inx)
	add(0xC8, "INY", 1, 2, Implied, (*Cpu).iny)

	// JMP / JSR / RTS / RTI
	add(0x4C, "JMP", 3, 3, Absolute, (*Cpu).jmp)
	add(0x6C, "JMP", 3, 5, Indirect, (*Cpu).jmpIndirect)
	add(0x20, "JSR", 3, 6, Absolute, (*Cpu).jsr)
	add(0x60, "RTS", 1, 6, Implied, (*Cpu).rts)
	add(0x40, "RTI", 1, 6, Implied, (*Cpu).rti)

	// LDA / LDX / LDY
	add(0xA9, "LDA", 2, 2, Immediate, (*Cpu).lda)
	add(0xA5, "LDA", 2, 3, ZeroPage, (*Cpu).lda)
	add(0xB5, "LDA", 2, 4, ZeroPageX, (*Cpu).lda)
	add(0xAD, "LDA", 3, 4, Absolute, (*Cpu).lda)
	add(0xBD, "LDA", 3, 4, AbsoluteX, (*Cpu).lda)
	add(0xB9, "LDA", 3, 4, AbsoluteY, (*Cpu).lda)
	add(0xA1, "LDA", 2, 6, IndirectX, (*Cpu).lda)
	add(0xB1, "LDA", 2, 5, IndirectY, (*Cpu).lda)
	add(0xA2, "LDX", 2, 2, Immediate, (*Cpu).ldx)
	add(0xA6, "LDX", 2, 3, ZeroPage, (*Cpu).ldx)
	add(0xB6, "LDX", 2, 4, ZeroPageY, (*Cpu).ldx)
	add(0xAE, "LDX", 3, 4, Absolute, (*Cpu).ldx)
	add(0xBE, "LDX", 3, 4, AbsoluteY, (*Cpu).ldx)
	add(0xA0, "LDY", 2, 2, Immediate, (*Cpu).ldy)
	add(0xA4, "LDY", 2, 3, ZeroPage, (*Cpu).ldy)
	add(0xB4, "LDY", 2, 4, ZeroPageX, (*Cpu).ldy)
	add(0xAC, "LDY", 3, 4, Absolute, (*Cpu).ldy)
	add(0xBC, "LDY", 3, 4, AbsoluteX, (*Cpu).ldy)

	// LSR
	add(0x4A, "LSR", 1, 2, Implied, (*Cpu).lsrAccumulator)
	add(0x46, "LSR", 2, 5, ZeroPage, (*Cpu).lsrMemory)
	add(0x56, "LSR", 2, 6, ZeroPageX, (*Cpu).lsrMemory)
	add(0x4E, "LSR", 3, 6, Absolute, (*Cpu).lsrMemory)
	add(0x5E, "LSR", 3, 7, AbsoluteX, (*Cpu).lsrMemory)

	// NOP
	add(0xEA, "NOP", 1, 2, Implied, (*Cpu).nop)

	// ORA
	add(0x09, "ORA", 2, 2, Immediate, (*Cpu).ora)
	add(0x05, "ORA", 2, 3, ZeroPage, (*Cpu).ora)
	add(0x15, "ORA", 2, 4, ZeroPageX, (*Cpu).ora)
	add(0x0D, "ORA", 3, 4, Absolute, (*Cpu).ora)
	add(0x1D, "ORA", 3, 4, AbsoluteX, (*Cpu).ora)
	add(0x19, "ORA", 3, 4, AbsoluteY, (*Cpu).ora)
	add(0x01, "ORA", 2, 6, IndirectX, (*Cpu).ora)
	add(0x11, "ORA", 2, 5, IndirectY, (*Cpu).ora)

	// stack
	add(0x48, "PHA", 1, 3, Implied, (*Cpu).pha)
	add(0x68, "PLA", 1, 4, Implied, (*Cpu).pla)
	add(0x08, "PHP", 1, 3, Implied, (*Cpu).php)
	add(0x28, "PLP", 1, 4, Implied, (*Cpu).plp)
	add(0x9A, "TXS", 1, 2, Implied, (*Cpu).txs)
	add(0xBA, "TSX", 1, 2, Implied, (*Cpu).tsx)

	// ROL / ROR
	add(0x2A, "ROL", 1, 2, Implied, (*Cpu).rolAccumulator)
	add(0x26, "ROL", 2, 5, ZeroPage, (*Cpu).rolMemory)
	add(0x36, "ROL", 2, 6, ZeroPageX, (*Cpu).rolMemory)
	add(0x2E, "ROL", 3, 6, Absolute, (*Cpu).rolMemory)
	add(0x3E, "ROL", 3, 7, AbsoluteX, (*Cpu).rolMemory)
	add(0x6A, "ROR", 1, 2, Implied, (*Cpu).rorAccumulator)
	add(0x66, "ROR", 2, 5, ZeroPage, (*Cpu).rorMemory)
	add(0x76, "ROR", 2, 6, ZeroPageX, (*Cpu).rorMemory)
	add(0x6E, "ROR", 3, 6, Absolute, (*Cpu).rorMemory)
	add(0x7E, "ROR", 3, 7, AbsoluteX, (*Cpu).rorMemory)

	// SBC
	add(0xE9, "SBC", 2, 2, Immediate, (*Cpu).sbc)
	add(0xE5, "SBC", 2, 3, ZeroPage, (*Cpu).sbc)
	add(0xF5, "SBC", 2, 4, ZeroPageX, (*Cpu).sbc)
	add(0xED, "SBC", 3, 4, Absolute, (*Cpu).sbc)
	add(0xFD, "SBC", 3, 4, AbsoluteX, (*Cpu).sbc)
	add(0xF9, "SBC", 3, 4, AbsoluteY, (*Cpu).sbc)
	add(0xE1, "SBC", 2, 6, IndirectX, (*Cpu).sbc)
	add(0xF1, "SBC", 2, 5, IndirectY, (*Cpu).sbc)

	// STA / STX / STY
	add(0x85, "STA", 2, 3, ZeroPage, (*Cpu).sta)
	add(0x95, "STA", 2, 4, ZeroPageX, (*Cpu).sta)
	add(0x8D, "STA", 3, 4, Absolute, (*Cpu).sta)
	add(0x9D, "STA", 3, 5, AbsoluteX, (*Cpu).sta)
	add(0x99, "STA", 3, 5, AbsoluteY, (*Cpu).sta)
	add(0x81, "STA", 2, 6, IndirectX, (*Cpu).sta)
	add(0x91, "STA", 2, 6, IndirectY, (*Cpu).sta)
	add(0x86, "STX", 2, 3, ZeroPage, (*Cpu).stx)
	add(0x96, "STX", 2, 4, ZeroPageY, (*Cpu).stx)
	add(0x8E, "STX", 3, 4, Absolute, (*Cpu).stx)
	add(0x84, "STY", 2, 3, ZeroPage, (*Cpu).sty)
	add(0x94, "STY", 2, 4, ZeroPageX, (*Cpu).sty)
	add(0x8C, "STY", 3, 4, Absolute, (*Cpu).sty)

	// transfers
	add(0xAA, "TAX", 1, 2, Implied, (*Cpu).tax)
	add(0xA8, "TAY", 1, 2, Implied, (*Cpu).tay)
	add(0x8A, "TXA", 1, 2, Implied, (*Cpu).txa)
	add(0x98, "TYA", 1, 2, Implied, (*Cpu).tya)

	return t
}
