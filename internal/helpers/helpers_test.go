package helpers

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 0, UTF16Len(""))
	assert.Equal(t, 3, UTF16Len("abc"))
	assert.Equal(t, 1, UTF16Len("é"))
	assert.Equal(t, 1, UTF16Len(" "))
	assert.Equal(t, 2, UTF16Len("\U0001F600"))

	// A lone surrogate encoded as WTF-8
	assert.Equal(t, 1, UTF16Len("\xED\xA0\x80"))

	// A truncated sequence
	assert.Equal(t, 2, UTF16Len("a\xE2\x80"))
}

func TestDecodeWTF8Rune(t *testing.T) {
	c, width := DecodeWTF8Rune("\xED\xA0\x80")
	assert.Equal(t, rune(0xD800), c)
	assert.Equal(t, 3, width)
	assert.True(t, IsSurrogate(c))

	c, width = DecodeWTF8Rune("\U0001F600")
	assert.Equal(t, rune(0x1F600), c)
	assert.Equal(t, 4, width)
	assert.False(t, IsSurrogate(c))

	// Overlong encodings are rejected
	c, width = DecodeWTF8Rune("\xC0\xAF")
	assert.Equal(t, utf8.RuneError, c)
	assert.Equal(t, 1, width)

	_, width = DecodeWTF8Rune("")
	assert.Equal(t, 0, width)
}

func TestTimer(t *testing.T) {
	timer := &Timer{}
	timer.Begin("Generate")
	fork := timer.Fork()
	fork.Begin("a.json")
	fork.End("a.json")
	timer.Join(fork)
	timer.End("Generate")

	assert.Regexp(t, `^Generate: \d+ms\n  a\.json: \d+ms$`, timer.Summary())
}

func TestNilTimer(t *testing.T) {
	var timer *Timer
	timer.Begin("x")
	timer.End("x")
	timer.Join(timer.Fork())
	assert.Nil(t, timer.Fork())
	assert.Equal(t, "", timer.Summary())
}

func TestPrettyPrintedStack(t *testing.T) {
	stack := PrettyPrintedStack()
	assert.Contains(t, stack, "helpers.TestPrettyPrintedStack")
	assert.NotContains(t, stack, "goroutine ")
}
