// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emitter generates x86-64 assembly from an addc token sequence
// in a single left-to-right pass.
package emitter

import (
	"fmt"
	"io"
	"log"

	"github.com/ezrec/addc/lexer"
	"github.com/ezrec/addc/token"
)

// Accumulator is the register holding the running result.
const Accumulator = "rax"

// Preamble is written before any token is consumed.
var Preamble = []string{
	".intel_syntax noprefix",
	".global main",
	"main:",
}

// Emitter writes one instruction per operator to Output.
type Emitter struct {
	Verbose bool      // If set, logs each emitted line.
	Output  io.Writer // Destination of the assembly text.
}

func (em *Emitter) line(format string, args ...any) (err error) {
	text := fmt.Sprintf(format, args...)
	if em.Verbose {
		log.Printf("emit: %v", text)
	}

	_, err = fmt.Fprintln(em.Output, text)
	return
}

func (em *Emitter) instruction(op string, value int64) error {
	return em.line("    %s %s, %d", op, Accumulator, value)
}

// Emit consumes tokens, which must match NUMBER (('+'|'-') NUMBER)*.
// Nothing further is written after the first error.
func (em *Emitter) Emit(tokens []token.Token) (err error) {
	for _, text := range Preamble {
		err = em.line("%s", text)
		if err != nil {
			return
		}
	}

	cur := token.NewCursor(tokens)

	value, err := cur.ExpectNumber()
	if err != nil {
		return
	}
	err = em.instruction("mov", value)
	if err != nil {
		return
	}

	for !cur.AtEOF() {
		op := "add"
		if !cur.TryConsume('+') {
			err = cur.Expect('-')
			if err != nil {
				return
			}
			op = "sub"
		}

		value, err = cur.ExpectNumber()
		if err != nil {
			return
		}
		err = em.instruction(op, value)
		if err != nil {
			return
		}
	}

	err = em.line("    ret")
	return
}

// Compile tokenizes input and emits its program to w.
func Compile(input string, w io.Writer) (err error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return
	}

	em := &Emitter{Output: w}
	err = em.Emit(tokens)
	return
}
