// Command go6502 runs, disassembles, or single-steps a raw 6502 instruction
// snippet loaded at 0x0600.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v2"

	"github.com/example/go6502/cpu"
	"github.com/example/go6502/debug"
	"github.com/example/go6502/disasm"
	"github.com/example/go6502/mem"
)

func loadFile(c *cli.Context) ([]byte, error) {
	path := c.String("file")
	if path == "" {
		return nil, errors.New("missing required --file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}

func runAction(c *cli.Context) error {
	program, err := loadFile(c)
	if err != nil {
		return err
	}

	bus := mem.NewBus()
	proc := cpu.NewCpu(bus)
	proc.Load(program)

	if c.Bool("trace") {
		proc.Callback = func(cp *cpu.Cpu) {
			fmt.Printf("pc=%04x a=%02x x=%02x y=%02x s=%02x p=%02x\n",
				cp.PC, cp.A, cp.X, cp.Y, cp.S, byte(cp.P))
		}
	}

	if err := proc.Run(); err != nil {
		return errors.Wrap(err, "run")
	}

	fmt.Printf("halted: a=%02x x=%02x y=%02x s=%02x pc=%04x\n", proc.A, proc.X, proc.Y, proc.S, proc.PC)
	return nil
}

func disasmAction(c *cli.Context) error {
	program, err := loadFile(c)
	if err != nil {
		return err
	}

	bus := mem.NewBus()
	bus.LoadSnippet(program)

	count := c.Int("count")
	if count <= 0 {
		count = len(program)
	}

	for _, line := range disasm.Range(bus, mem.SnippetLoadAddr, count) {
		fmt.Println(line.String())
	}
	return nil
}

func debugAction(c *cli.Context) error {
	program, err := loadFile(c)
	if err != nil {
		return err
	}

	bus := mem.NewBus()
	proc := cpu.NewCpu(bus)
	return debug.Run(proc, program)
}

func main() {
	fileFlag := &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "path to a raw 6502 instruction snippet",
	}

	app := &cli.App{
		Name:  "go6502",
		Usage: "run, disassemble, or single-step a 6502 instruction snippet",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "execute the snippet until BRK",
				Flags: []cli.Flag{
					fileFlag,
					&cli.BoolFlag{Name: "trace", Usage: "print register state after every instruction"},
				},
				Action: runAction,
			},
			{
				Name:  "disasm",
				Usage: "disassemble the snippet without executing it",
				Flags: []cli.Flag{
					fileFlag,
					&cli.IntFlag{Name: "count", Usage: "number of instructions to print (default: one per byte)"},
				},
				Action: disasmAction,
			},
			{
				Name:   "debug",
				Usage:  "step the snippet interactively in a TUI",
				Flags:  []cli.Flag{fileFlag},
				Action: debugAction,
			},
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
