// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package verify

import (
	"errors"

	"github.com/ezrec/addc/translate"
)

var f = translate.From

var (
	ErrOutOfRange = errors.New(f("result out of range"))
	ErrNoResult   = errors.New(f("expression has no integer result"))
)

// ErrMismatch reports a program whose result differs from the reference.
type ErrMismatch struct {
	Want int64
	Got  int64
}

func (err *ErrMismatch) Error() string {
	return f("rax is %v, expected %v", err.Got, err.Want)
}
