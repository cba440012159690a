// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lexer

import (
	"errors"

	"github.com/ezrec/addc/translate"
)

var f = translate.From

var (
	ErrCharInvalid = errors.New(f("invalid token"))
	ErrNumberRange = errors.New(f("number out of range"))
)

// ErrLex reports the input character that could not be tokenized.
type ErrLex struct {
	Pos  int
	Char byte   // First offending character.
	Text string // Offending digit run, if the error is about a number.
	Err  error
}

func (err *ErrLex) Error() string {
	if len(err.Text) != 0 {
		return f("position %d '%v' %v", err.Pos, err.Text, err.Err)
	}
	return f("position %d '%c' %v", err.Pos, err.Char, err.Err)
}

func (err *ErrLex) Unwrap() error {
	return err.Err
}
