// Package disasm formats the instruction stream behind a mem.Bus as
// human-readable assembly, one line per instruction, without executing
// anything: it reads the opcode table cpu.Lookup already builds rather
// than keeping its own parallel mnemonic/mode table.
package disasm

import (
	"fmt"

	"github.com/example/go6502/cpu"
	"github.com/example/go6502/mem"
)

// Line is one disassembled instruction.
type Line struct {
	Addr  uint16
	Bytes []byte
	Text  string // mnemonic plus operand, e.g. "LDA #$C0"
}

// Step disassembles the instruction at addr, returning the formatted Line
// and the address of the next instruction. It does not follow branches or
// jumps; a JMP/LDA/JMP sequence in memory disassembles as written.
func Step(bus *mem.Bus, addr uint16) (Line, uint16) {
	opcodeByte := bus.Read(addr)
	op, err := cpu.Lookup(opcodeByte)
	if err != nil {
		return Line{Addr: addr, Bytes: []byte{opcodeByte}, Text: fmt.Sprintf(".byte $%02X ; %s", opcodeByte, err)}, addr + 1
	}

	raw := make([]byte, op.Len)
	for i := byte(0); i < op.Len; i++ {
		raw[i] = bus.Read(addr + uint16(i))
	}

	operand := operandText(op, raw)
	text := op.Mnemonic
	if operand != "" {
		text += " " + operand
	}

	return Line{Addr: addr, Bytes: raw, Text: text}, addr + uint16(op.Len)
}

var branchMnemonics = map[string]bool{
	"BCC": true, "BCS": true, "BEQ": true, "BNE": true,
	"BMI": true, "BPL": true, "BVC": true, "BVS": true,
}

func operandText(op cpu.Opcode, raw []byte) string {
	if branchMnemonics[op.Mnemonic] {
		offset := int8(raw[1])
		return fmt.Sprintf("*%+d", int16(offset))
	}

	switch op.Mode {
	case cpu.Implied:
		return ""
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", raw[1])
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", raw[1])
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02X,X", raw[1])
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", raw[1])
	case cpu.Absolute:
		return fmt.Sprintf("$%02X%02X", raw[2], raw[1])
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%02X%02X,X", raw[2], raw[1])
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%02X%02X,Y", raw[2], raw[1])
	case cpu.Indirect:
		return fmt.Sprintf("($%02X%02X)", raw[2], raw[1])
	case cpu.IndirectX:
		return fmt.Sprintf("($%02X,X)", raw[1])
	case cpu.IndirectY:
		return fmt.Sprintf("($%02X),Y", raw[1])
	default:
		return ""
	}
}

// Range disassembles consecutive instructions starting at addr until count
// lines have been produced or the disassembler would read past 0xFFFF.
func Range(bus *mem.Bus, addr uint16, count int) []Line {
	lines := make([]Line, 0, count)
	for i := 0; i < count; i++ {
		line, next := Step(bus, addr)
		lines = append(lines, line)
		if next <= addr {
			break
		}
		addr = next
	}
	return lines
}

// String renders a Line the way a listing file would: address, raw bytes,
// then the disassembled text.
func (l Line) String() string {
	hex := ""
	for _, b := range l.Bytes {
		hex += fmt.Sprintf("%02X ", b)
	}
	return fmt.Sprintf("%04X  %-9s%s", l.Addr, hex, l.Text)
}
