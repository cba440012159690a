// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs emitted assembly on a simulated accumulator.
package emulator

import (
	"fmt"
	"io"
	"log"
)

// Emulator state. A single 64-bit accumulator and an instruction pointer.
type Emulator struct {
	Verbose bool     // If set, enables verbose logging.
	Program *Program // Reference to the currently loaded program.

	Rax   int64 // Accumulator.
	Ip    int   // Index of the next instruction.
	Ticks int   // Instructions executed since reset.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &Program{Label: map[string]int{}},
	}

	return
}

// Load replaces the current program with one read from input.
func (emu *Emulator) Load(input io.Reader) (err error) {
	ld := &Loader{Verbose: emu.Verbose}
	prog, err := ld.Load(input)
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// Reset the emulator state to the program entry.
func (emu *Emulator) Reset() (err error) {
	entry, ok := emu.Program.Label[Entry]
	if !ok {
		err = ErrEntryMissing
		return
	}

	if emu.Verbose {
		log.Printf("emulator: reset to %v (%d)", Entry, entry)
	}

	emu.Ip = entry
	emu.Rax = 0
	emu.Ticks = 0

	return
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	if emu.Ip < 0 || emu.Ip >= len(emu.Program.Instructions) {
		return 0
	}

	return emu.Program.Instructions[emu.Ip].LineNo
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.Ip < 0 || emu.Ip >= len(emu.Program.Instructions) {
		err = ErrIpEmpty
		return
	}

	inst := emu.Program.Instructions[emu.Ip]
	if emu.Verbose {
		log.Printf("%03d: %v", emu.Ip, inst)
	}

	emu.Ip++
	emu.Ticks++

	// Wrapping two's complement, as the hardware does.
	switch inst.Op {
	case OP_MOV:
		emu.Rax = inst.Immediate
	case OP_ADD:
		emu.Rax += inst.Immediate
	case OP_SUB:
		emu.Rax -= inst.Immediate
	case OP_RET:
		done = true
	default:
		err = ErrInstructionInvalid
	}

	return
}

// Run resets the emulator and executes until ret, returning rax.
func (emu *Emulator) Run() (rax int64, err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	rax = emu.Rax
	return
}

func (inst Instruction) String() string {
	switch inst.Op {
	case OP_RET:
		return "ret"
	case OP_MOV:
		return fmt.Sprintf("mov %s, %d", inst.Register, inst.Immediate)
	case OP_ADD:
		return fmt.Sprintf("add %s, %d", inst.Register, inst.Immediate)
	case OP_SUB:
		return fmt.Sprintf("sub %s, %d", inst.Register, inst.Immediate)
	}

	return fmt.Sprintf("op(%d)", int(inst.Op))
}
