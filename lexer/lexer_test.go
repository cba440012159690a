package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/addc/token"
)

func kinds(tokens []token.Token) (list []token.Kind) {
	for _, tok := range tokens {
		list = append(list, tok.Kind)
	}
	return
}

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Tokenize("12+5-3")
	assert.NoError(err)

	expected := []token.Token{
		token.Number("12", 12, 0),
		token.Reserved('+', 2),
		token.Number("5", 5, 3),
		token.Reserved('-', 4),
		token.Number("3", 3, 5),
		token.End(6),
	}
	assert.Equal(expected, tokens)
}

func TestTokenizeWhitespace(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Tokenize(" \t12 +\n 5 -3\r\n")
	assert.NoError(err)
	assert.Equal([]token.Kind{
		token.NUMBER, token.RESERVED, token.NUMBER, token.RESERVED, token.NUMBER, token.EOF,
	}, kinds(tokens))
	assert.Equal(int64(12), tokens[0].Value)
	assert.Equal(2, tokens[0].Pos)
	assert.Equal(int64(5), tokens[2].Value)
	assert.Equal(int64(3), tokens[4].Value)
}

func TestTokenizeEmpty(t *testing.T) {
	assert := assert.New(t)

	for _, input := range []string{"", "   "} {
		tokens, err := Tokenize(input)
		assert.NoError(err)
		assert.Equal([]token.Token{token.End(len(input))}, tokens)
	}
}

func TestTokenizeLeadingZero(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Tokenize("007")
	assert.NoError(err)
	assert.Equal(token.Number("007", 7, 0), tokens[0])
}

func TestTokenizeGrammarFree(t *testing.T) {
	assert := assert.New(t)

	// The lexer does not check operator placement.
	tokens, err := Tokenize("++1 2-")
	assert.NoError(err)
	assert.Equal([]token.Kind{
		token.RESERVED, token.RESERVED, token.NUMBER, token.NUMBER, token.RESERVED, token.EOF,
	}, kinds(tokens))
}

func TestTokenizeInvalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		input string
		pos   int
		char  byte
	}){
		{"1*2", 1, '*'},
		{"a", 0, 'a'},
		{"1 + (2)", 4, '('},
		{"4/2", 1, '/'},
		{"1+2;", 3, ';'},
	}

	for _, entry := range table {
		tokens, err := Tokenize(entry.input)
		assert.Nil(tokens, entry.input)
		assert.True(errors.Is(err, ErrCharInvalid), entry.input)

		var lerr *ErrLex
		if assert.True(errors.As(err, &lerr), entry.input) {
			assert.Equal(entry.pos, lerr.Pos, entry.input)
			assert.Equal(entry.char, lerr.Char, entry.input)
			assert.Empty(lerr.Text, entry.input)
			assert.Contains(lerr.Error(), "'"+string(entry.char)+"'", entry.input)
		}
	}
}

func TestTokenizeRange(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Tokenize("9223372036854775807")
	assert.NoError(err)
	assert.Equal(int64(9223372036854775807), tokens[0].Value)

	tokens, err = Tokenize("1+99999999999999999999")
	assert.Nil(tokens)
	assert.True(errors.Is(err, ErrNumberRange))

	var lerr *ErrLex
	if assert.True(errors.As(err, &lerr)) {
		assert.Equal(2, lerr.Pos)
		assert.Equal(byte('9'), lerr.Char)
		assert.Equal("99999999999999999999", lerr.Text)
		assert.Contains(lerr.Error(), "'99999999999999999999'")
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	assert := assert.New(t)

	for _, input := range []string{"0", "1 + 2 - 3", "100-200+300"} {
		first, err := Tokenize(input)
		assert.NoError(err)
		second, err := Tokenize(input)
		assert.NoError(err)
		assert.Equal(first, second)
	}
}

func FuzzTokenize(f *testing.F) {
	f.Add("0")
	f.Add("12+5-3")
	f.Add(" 1 - 2 + 3 ")
	f.Add("1*2")

	f.Fuzz(func(t *testing.T, input string) {
		assert := assert.New(t)

		tokens, err := Tokenize(input)
		if err != nil {
			assert.Nil(tokens)
			var lerr *ErrLex
			assert.True(errors.As(err, &lerr))
			return
		}

		if assert.NotEmpty(tokens) {
			assert.Equal(token.EOF, tokens[len(tokens)-1].Kind)
		}
		for _, tok := range tokens[:len(tokens)-1] {
			assert.NotEqual(token.EOF, tok.Kind)
		}

		again, err := Tokenize(input)
		assert.NoError(err)
		assert.Equal(tokens, again)
	})
}
