// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package token

// Cursor is a forward-only position in a token sequence.
type Cursor struct {
	tokens []Token
	index  int
}

// NewCursor returns a cursor at the first token of tokens.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Index returns the index of the current token.
func (cur *Cursor) Index() int {
	return cur.index
}

// Peek returns the current token. An exhausted sequence reads as EOF.
func (cur *Cursor) Peek() Token {
	if cur.index >= len(cur.tokens) {
		pos := 0
		if len(cur.tokens) > 0 {
			last := cur.tokens[len(cur.tokens)-1]
			pos = last.Pos + len(last.Text)
		}
		return End(pos)
	}

	return cur.tokens[cur.index]
}

// AtEOF returns true if the current token is the end of input.
func (cur *Cursor) AtEOF() bool {
	return cur.Peek().Kind == EOF
}

func (cur *Cursor) advance() {
	if cur.index < len(cur.tokens) {
		cur.index++
	}
}

// TryConsume advances past the current token if it is the operator op.
func (cur *Cursor) TryConsume(op byte) bool {
	if !cur.Peek().Is(op) {
		return false
	}

	cur.advance()
	return true
}

// Expect advances past the current token, which must be the operator op.
func (cur *Cursor) Expect(op byte) (err error) {
	tok := cur.Peek()
	if !tok.Is(op) {
		err = &ErrParse{Pos: tok.Pos, Token: tok, Err: ErrExpected(op)}
		return
	}

	cur.advance()
	return
}

// ExpectNumber advances past the current token, which must be a number,
// and returns its value.
func (cur *Cursor) ExpectNumber() (value int64, err error) {
	tok := cur.Peek()
	if tok.Kind != NUMBER {
		err = &ErrParse{Pos: tok.Pos, Token: tok, Err: ErrExpectNumber}
		return
	}

	cur.advance()
	value = tok.Value
	return
}
