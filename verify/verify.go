// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package verify checks emitted programs against an independent
// evaluation of their source expression.
package verify

import (
	"fmt"
	"io"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/addc/emulator"
	"github.com/ezrec/addc/token"
)

// Register width bounds, as Starlark literals.
const (
	half    = "9223372036854775808"  // 2^63
	modulus = "18446744073709551616" // 2^64
)

// Source renders tokens as a canonical expression, validating the grammar
// the same way the emitter does.
func Source(tokens []token.Token) (expr string, err error) {
	var sb strings.Builder

	cur := token.NewCursor(tokens)
	value, err := cur.ExpectNumber()
	if err != nil {
		return
	}
	fmt.Fprintf(&sb, "%d", value)

	for !cur.AtEOF() {
		op := '+'
		if !cur.TryConsume('+') {
			err = cur.Expect('-')
			if err != nil {
				return
			}
			op = '-'
		}

		value, err = cur.ExpectNumber()
		if err != nil {
			return
		}
		fmt.Fprintf(&sb, " %c %d", op, value)
	}

	expr = sb.String()
	return
}

// eval runs expr as a Starlark expression and returns its int64 value.
func eval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "verify"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrNoResult
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrNoResult
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrOutOfRange
		return
	}

	return
}

// Expected evaluates tokens with Starlark, whose + and - are left
// associative over arbitrary precision integers.
func Expected(tokens []token.Token) (value int64, err error) {
	expr, err := Source(tokens)
	if err != nil {
		return
	}

	value, err = eval(expr)
	return
}

// Wrapped evaluates tokens like Expected, reducing the result modulo 2^64
// into the signed range as a 64-bit register holds it.
func Wrapped(tokens []token.Token) (value int64, err error) {
	expr, err := Source(tokens)
	if err != nil {
		return
	}

	value, err = eval("((" + expr + ") + " + half + ") % " + modulus + " - " + half)
	return
}

// Program runs the assembly in asm and compares rax with the wrapped
// reference value of tokens.
func Program(tokens []token.Token, asm io.Reader) (err error) {
	want, err := Wrapped(tokens)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	err = emu.Load(asm)
	if err != nil {
		return
	}

	got, err := emu.Run()
	if err != nil {
		return
	}

	if got != want {
		err = &ErrMismatch{Want: want, Got: got}
		return
	}

	return
}
