package cpu

import "github.com/pkg/errors"

// Fatal conditions the execution loop can hit. Per the error-handling
// design, these are programmer/integration errors, not transient
// faults: Run and Step abort and return the wrapped error rather than
// silently continuing, but CPU state remains inspectable afterward for
// post-mortem use.
var (
	ErrUnknownOpcode             = errors.New("cpu: unknown opcode")
	ErrUnsupportedAddressingMode = errors.New("cpu: addressing mode resolver invoked for Implied/Indirect outside JMP")
)
