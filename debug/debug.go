// Package debug provides an interactive, single-step TUI tracer for a
// cpu.Cpu, built on bubbletea/lipgloss in place of a println-based tracer.
package debug

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/example/go6502/cpu"
	"github.com/example/go6502/mem"
)

type model struct {
	cpu     *cpu.Cpu
	program []byte

	prevPC uint16
	halted bool
	err    error
}

// Init loads the program as a snippet and resets the Cpu so PC starts
// executing it.
func (m model) Init() tea.Cmd {
	m.cpu.Load(m.program)
	return nil
}

// Update steps the Cpu one instruction per " " or "j" keypress; "q" quits.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			if m.halted {
				return m, nil
			}
			m.prevPC = m.cpu.PC
			brk, err := m.cpu.Step()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			if brk {
				m.halted = true
			}
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.cpu.Bus.Read(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, set := range []bool{
		m.cpu.P.Negative(),
		m.cpu.P.Overflow(),
		m.cpu.P.Expansion(),
		m.cpu.P.Break(),
		m.cpu.P.Decimal(),
		m.cpu.P.InterruptDisable(),
		m.cpu.P.Zero(),
		m.cpu.P.Carry(),
	} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
 S: %02x
N V U B D I Z C
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.S,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}
	base := mem.SnippetLoadAddr
	for i := 0; i < 5; i++ {
		rows = append(rows, m.renderPage(uint16(base+i*16)))
	}
	return strings.Join(rows, "\n")
}

// View renders the page table, register status, and the decoded opcode
// sitting at the current PC.
func (m model) View() string {
	var opLine string
	switch {
	case m.err != nil:
		opLine = "error: " + m.err.Error()
	case m.halted:
		opLine = "halted (BRK)"
	default:
		b := m.cpu.Bus.Read(m.cpu.PC)
		if op, lookupErr := cpu.Lookup(b); lookupErr != nil {
			opLine = lookupErr.Error()
		} else {
			opLine = spew.Sdump(op)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		opLine,
	)
}

// Run starts an interactive, single-step TUI tracer over c, which loads
// program as a snippet (resetting c) when the tracer initialises.
func Run(c *cpu.Cpu, program []byte) error {
	final, err := tea.NewProgram(model{cpu: c, program: program}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
