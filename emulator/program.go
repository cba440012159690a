// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"
)

// Entry is the label execution starts from.
const Entry = "main"

// Op is an accumulator machine operation.
type Op int

const (
	OP_MOV = Op(iota)
	OP_ADD
	OP_SUB
	OP_RET
)

var opMap = map[string]Op{
	"mov": OP_MOV,
	"add": OP_ADD,
	"sub": OP_SUB,
	"ret": OP_RET,
}

// Instruction is a single decoded line of assembly.
type Instruction struct {
	LineNo    int    // Source line number.
	Op        Op     // Operation.
	Register  string // Destination register, empty for ret.
	Immediate int64  // Source immediate.
}

// Program is a loaded assembly listing.
type Program struct {
	Directives   []string       // Assembler directives, in order.
	Globals      []string       // Symbols declared by .global.
	Label        map[string]int // Map of labels to instruction indexes.
	Instructions []Instruction
}

// Loader decodes assembly text produced by the emitter.
type Loader struct {
	Verbose bool // If set, verbosely logs each loaded line.
}

// immediate returns the value of a literal, in any Go integer base.
func immediate(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrImmediateInvalid(word)
	}
	return
}

func (prog *Program) directive(words []string) (err error) {
	switch words[0] {
	case ".intel_syntax":
		if len(words) > 2 || (len(words) == 2 && words[1] != "noprefix") {
			err = ErrDirectiveInvalid
			return
		}
	case ".global", ".globl":
		if len(words) < 2 {
			err = ErrOperandMissing
			return
		}
		prog.Globals = append(prog.Globals, words[1:]...)
	case ".text":
	default:
		err = ErrDirectiveInvalid
		return
	}

	prog.Directives = append(prog.Directives, strings.Join(words, " "))
	return
}

func (prog *Program) instruction(line string, lineno int) (err error) {
	mnemonic, rest, _ := strings.Cut(line, " ")

	op, ok := opMap[mnemonic]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	var operands []string
	if rest = strings.TrimSpace(rest); len(rest) != 0 {
		for _, operand := range strings.Split(rest, ",") {
			operands = append(operands, strings.TrimSpace(operand))
		}
	}

	inst := Instruction{LineNo: lineno, Op: op}

	switch op {
	case OP_RET:
		if len(operands) != 0 {
			err = ErrOperandExtra
			return
		}
	default:
		if len(operands) < 2 {
			err = ErrOperandMissing
			return
		}
		if len(operands) > 2 {
			err = ErrOperandExtra
			return
		}
		if operands[0] != "rax" {
			err = ErrRegisterInvalid
			return
		}
		inst.Register = operands[0]
		inst.Immediate, err = immediate(operands[1])
		if err != nil {
			return
		}
	}

	prog.Instructions = append(prog.Instructions, inst)
	return
}

// Load parses an input stream into a Program.
func (ld *Loader) Load(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{
		Label: map[string]int{},
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		if label, ok := strings.CutSuffix(line, ":"); ok {
			if _, dup := prog.Label[label]; dup {
				err = ErrLabelDuplicate
				return
			}
			prog.Label[label] = len(prog.Instructions)
			continue
		}

		if line[0] == '.' {
			words := slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })
			err = prog.directive(words)
			if err != nil {
				return
			}
			continue
		}

		err = prog.instruction(line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	line = ""
	if _, ok := prog.Label[Entry]; !ok {
		err = ErrEntryMissing
		return
	}

	return
}
