// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"

	"github.com/ezrec/addc/translate"
)

var f = translate.From

var (
	// Runtime errors
	ErrIpEmpty = errors.New(f("ip empty"))

	// Loader errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrDirectiveInvalid   = errors.New(f("directive invalid"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrEntryMissing       = errors.New(f("entry label missing"))
)

type ErrImmediateInvalid string

func (err ErrImmediateInvalid) Error() string {
	return f("'%v' is not an immediate", string(err))
}

// ErrSyntax indicates the location of a load error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
