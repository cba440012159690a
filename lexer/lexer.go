// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package lexer converts an expression string into tokens.
package lexer

import (
	"strconv"
	"unicode"

	"github.com/ezrec/addc/token"
)

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// number reads the digit run at p, returning its token and the position
// following it.
func number(input string, p int) (tok token.Token, next int, err error) {
	next = p
	for next < len(input) && isDigit(input[next]) {
		next++
	}

	text := input[p:next]
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		err = &ErrLex{Pos: p, Char: input[p], Text: text, Err: ErrNumberRange}
		return
	}

	tok = token.Number(text, value, p)
	return
}

// Tokenize scans input once, left to right. The resulting sequence always
// ends with a single token.EOF.
func Tokenize(input string) (tokens []token.Token, err error) {
	p := 0

	for p < len(input) {
		c := input[p]

		if c <= unicode.MaxASCII && unicode.IsSpace(rune(c)) {
			p++
			continue
		}

		if c == '+' || c == '-' {
			tokens = append(tokens, token.Reserved(c, p))
			p++
			continue
		}

		if isDigit(c) {
			var tok token.Token
			tok, p, err = number(input, p)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			continue
		}

		return nil, &ErrLex{Pos: p, Char: c, Err: ErrCharInvalid}
	}

	tokens = append(tokens, token.End(p))
	return
}
