// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package token defines the tokens of an addc expression and the cursor
// used to walk them.
package token

import (
	"fmt"
)

// Kind is the classification of a token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	RESERVED = Kind(0) // reserved
	NUMBER   = Kind(1) // number
	EOF      = Kind(2) // eof
)

// Token is a classified fragment of the input.
type Token struct {
	Kind  Kind   // Kind of token.
	Text  string // Operator character, or digit run of a number.
	Value int64  // If Kind == NUMBER, the parsed value.
	Pos   int    // Byte offset in the input.
}

// Reserved creates an operator token.
func Reserved(op byte, pos int) Token {
	return Token{Kind: RESERVED, Text: string(op), Pos: pos}
}

// Number creates a numeric literal token.
func Number(text string, value int64, pos int) Token {
	return Token{Kind: NUMBER, Text: text, Value: value, Pos: pos}
}

// End creates the end of input marker.
func End(pos int) Token {
	return Token{Kind: EOF, Pos: pos}
}

// Is returns true if the token is the reserved operator op.
func (tok Token) Is(op byte) bool {
	return tok.Kind == RESERVED && len(tok.Text) == 1 && tok.Text[0] == op
}

func (tok Token) String() string {
	switch tok.Kind {
	case RESERVED:
		return fmt.Sprintf("%v '%s'", tok.Kind, tok.Text)
	case NUMBER:
		return fmt.Sprintf("%v %d", tok.Kind, tok.Value)
	default:
		return tok.Kind.String()
	}
}
