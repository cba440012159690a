package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("expected a number", From("expected a number"))
	assert.Equal("unexpected character '*'", From("unexpected character '%c'", '*'))
}

func TestNewPrinter(t *testing.T) {
	assert := assert.New(t)

	p := NewPrinter()
	assert.NotNil(p)
	assert.Equal("line 7", p.Sprintf("line %d", 7))

	p = NewPrinter("fr-FR", Fallback)
	assert.Equal("ret", p.Sprintf("ret"))
}
