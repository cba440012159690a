// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"

	"github.com/ezrec/addc/emitter"
	"github.com/ezrec/addc/lexer"
	"github.com/ezrec/addc/translate"
	"github.com/ezrec/addc/verify"
)

var f = translate.From

var ErrUsage = errors.New(f("invalid number of arguments"))

// ErrFlag is a command line flag that could not be parsed.
type ErrFlag struct {
	Err error
}

func (err *ErrFlag) Error() string {
	return f("%v", err.Err)
}

func (err *ErrFlag) Is(target error) bool {
	return target == ErrUsage
}

func (err *ErrFlag) Unwrap() error {
	return err.Err
}

// Options controls a single compilation.
type Options struct {
	Verbose bool   // Log emitted lines.
	Check   bool   // Run the emitted program and compare with the reference.
	Output  string // Assembly output file, "-" for stdout.
}

// compile writes the program for expr to output.
func compile(opts Options, expr string, output io.Writer) (err error) {
	tokens, err := lexer.Tokenize(expr)
	if err != nil {
		return
	}

	listing := &bytes.Buffer{}
	if opts.Check {
		output = io.MultiWriter(output, listing)
	}

	em := &emitter.Emitter{Verbose: opts.Verbose, Output: output}
	err = em.Emit(tokens)
	if err != nil {
		return
	}

	if opts.Check {
		err = verify.Program(tokens, listing)
	}

	return
}

// isExpression returns true if a dash-prefixed argument reads as an
// expression rather than a flag name.
func isExpression(arg string) bool {
	name := strings.TrimLeft(arg, "-")
	if len(name) == 0 {
		return true
	}
	return !unicode.IsLetter(rune(name[0]))
}

// splitArgs separates flags from the positional arguments. Scanning stops
// at the first argument that is not a defined flag.
func splitArgs(fs *flag.FlagSet, args []string) (flags, rest []string) {
	for n := 0; n < len(args); n++ {
		arg := args[n]

		if arg == "--" && n+1 < len(args) {
			return args[:n], args[n+1:]
		}

		if len(arg) < 2 || arg[0] != '-' || isExpression(arg) {
			return args[:n], args[n:]
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		fl := fs.Lookup(name)
		if fl == nil {
			// Let flag parsing report it.
			return args[:n+1], args[n+1:]
		}

		bf, isBool := fl.Value.(interface{ IsBoolFlag() bool })
		if !hasValue && !(isBool && bf.IsBoolFlag()) {
			n++
		}
	}

	return args, nil
}

// run compiles the single expression in args, writing the program to
// stdout unless -o names a file.
func run(name string, args []string, stdout io.Writer) (err error) {
	var opts Options

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&opts.Verbose, "v", false, "Verbose mode")
	fs.BoolVar(&opts.Check, "check", false, "Emulate the output and compare with the expression value")
	fs.StringVar(&opts.Output, "o", "-", "Assembly output")

	flags, rest := splitArgs(fs, args)
	err = fs.Parse(flags)
	if err != nil {
		err = &ErrFlag{Err: err}
		return
	}
	rest = append(fs.Args(), rest...)

	if len(rest) != 1 {
		err = ErrUsage
		return
	}

	if opts.Output == "-" {
		err = compile(opts, rest[0], stdout)
		return
	}

	ouf, err := os.Create(opts.Output)
	if err != nil {
		return
	}

	err = compile(opts, rest[0], ouf)
	cerr := ouf.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(opts.Output)
		err = fmt.Errorf("%v: %w", opts.Output, err)
	}

	return
}

func main() {
	log.SetFlags(0)

	err := run(os.Args[0], os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
