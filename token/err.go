// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package token

import (
	"errors"

	"github.com/ezrec/addc/translate"
)

var f = translate.From

var (
	ErrExpectNumber = errors.New(f("expected a number"))
)

// ErrExpected is returned when a specific operator was required.
type ErrExpected byte

func (err ErrExpected) Error() string {
	return f("expected '%c'", byte(err))
}

func (err ErrExpected) Is(target error) (ok bool) {
	op, ok := target.(ErrExpected)
	ok = ok && op == err
	return
}

// ErrParse indicates where in the input the token sequence stopped
// matching the grammar.
type ErrParse struct {
	Pos   int   // Byte offset of the offending token.
	Token Token // The offending token.
	Err   error
}

func (err *ErrParse) Error() string {
	return f("position %d: %v, found %v", err.Pos, err.Err, err.Token)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}
