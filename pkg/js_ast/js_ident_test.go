package js_ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentifier(t *testing.T) {
	for _, name := range []string{"a", "_", "$", "a1", "$_$", "if", "let", "yield", "café", "π", "a\u200Cb", "\u2118"} {
		assert.True(t, IsIdentifier(name), "%q", name)
	}
	for _, name := range []string{"", "1a", "a b", "a-b", "a.b", "\u200C", "\U0001F600", "a\\u0061"} {
		assert.False(t, IsIdentifier(name), "%q", name)
	}
}

func TestIsIdentifierPart(t *testing.T) {
	assert.True(t, IsIdentifierPart('\\'))
	assert.True(t, IsIdentifierPart('9'))
	assert.False(t, IsIdentifierPart('('))
	assert.False(t, IsIdentifierStart('9'))
	assert.True(t, IsIdentifierContinue('\u0301'))
}
