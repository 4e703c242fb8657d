package coderep

import (
	"strings"
	"unicode/utf8"

	"github.com/esgen/esgen/pkg/js_ast"
)

// A Listener is told about the byte offsets at which tokens land. This is all
// that location tracking needs to compute spans for the nodes being emitted.
type Listener interface {
	// Called just before the first byte of a significant token is written
	BeforeToken(offset int)

	// Called when a pending optional semicolon is resolved. "inserted" is false
	// when it was dropped because the next token was "}".
	OptionalSemicolon(inserted bool)

	// Called when a "." was inserted after an integer literal so that a
	// following member access isn't read as a decimal point
	NumberDotInserted()
}

// TokenStream accumulates tokens into the output. It decides the spacing
// between adjacent tokens so that they can't merge into different tokens,
// resolves optional semicolons against the token that follows them, and
// applies the current indentation after line breaks.
type TokenStream struct {
	js                 []byte
	indents            []string
	lastNumber         string
	listener           Listener
	lastCodePoint      rune
	optionalSemicolon  bool
	previousWasRegExp  bool
	partialHTMLComment bool
}

func NewTokenStream() *TokenStream {
	return &TokenStream{lastCodePoint: utf8.RuneError}
}

func (ts *TokenStream) SetListener(listener Listener) {
	ts.listener = listener
}

func (ts *TokenStream) Len() int {
	return len(ts.js)
}

func (ts *TokenStream) HasPendingSemicolon() bool {
	return ts.optionalSemicolon
}

// Reports whether the most recent token was a numeric literal and nothing has
// been written after it
func (ts *TokenStream) EndsWithNumber() bool {
	return ts.lastNumber != ""
}

// The pending semicolon at the end of the output is dropped since nothing
// follows it
func (ts *TokenStream) String() string {
	return string(ts.js)
}

func (ts *TokenStream) Put(text string) {
	ts.put(text, TokenPlain)
}

func (ts *TokenStream) PutRegExp(text string) {
	ts.put(text, TokenRegExp)
}

func (ts *TokenStream) PutRaw(text string) {
	ts.put(text, TokenRaw)
}

func (ts *TokenStream) PutNumber(value float64) {
	text := RenderNumber(value)
	ts.put(text, TokenPlain)
	ts.lastNumber = text
}

func (ts *TokenStream) PutOptionalSemicolon() {
	ts.optionalSemicolon = true
}

func (ts *TokenStream) PutLinebreak() {
	ts.flushSemicolon("\n")
	ts.js = append(ts.js, '\n')
	for _, indent := range ts.indents {
		ts.js = append(ts.js, indent...)
	}
	ts.lastCodePoint = '\n'
	ts.lastNumber = ""
	ts.previousWasRegExp = false
	ts.partialHTMLComment = false
}

func (ts *TokenStream) PushIndent(unit string) {
	ts.indents = append(ts.indents, unit)
}

func (ts *TokenStream) PopIndent() {
	ts.indents = ts.indents[:len(ts.indents)-1]
}

func (ts *TokenStream) flushSemicolon(next string) {
	if !ts.optionalSemicolon {
		return
	}
	ts.optionalSemicolon = false
	inserted := next != "}"
	if inserted {
		ts.js = append(ts.js, ';')
		ts.lastCodePoint = ';'
		ts.lastNumber = ""
		ts.previousWasRegExp = false
		ts.partialHTMLComment = false
	}
	if ts.listener != nil {
		ts.listener.OptionalSemicolon(inserted)
	}
}

func (ts *TokenStream) put(text string, kind TokenKind) {
	if len(text) == 0 {
		return
	}

	ts.flushSemicolon(text)

	// A single space is a formatting separator. It never needs separating
	// from its neighbors and isn't a token as far as listeners are concerned.
	if text == " " {
		ts.js = append(ts.js, ' ')
		ts.lastCodePoint = ' '
		ts.lastNumber = ""
		ts.previousWasRegExp = false
		ts.partialHTMLComment = false
		return
	}

	if kind != TokenRaw {
		if ts.lastNumber != "" && text == "." && !strings.ContainsAny(ts.lastNumber, ".ex") {
			// "1.toString()" is a syntax error so write "1..toString()" instead
			ts.js = append(ts.js, '.')
			if ts.listener != nil {
				ts.listener.NumberDotInserted()
			}
		} else if ts.needsSpace(text) {
			ts.js = append(ts.js, ' ')
		}
	}

	if ts.listener != nil {
		ts.listener.BeforeToken(len(ts.js))
	}

	partialHTMLComment := text == "!" && ts.lastCodePoint == '<'
	ts.js = append(ts.js, text...)
	ts.lastCodePoint, _ = utf8.DecodeLastRuneInString(text)
	ts.lastNumber = ""
	ts.previousWasRegExp = kind == TokenRegExp
	ts.partialHTMLComment = partialHTMLComment
}

// Reports whether the previous output and "text" would lex differently if
// they were written next to each other
func (ts *TokenStream) needsSpace(text string) bool {
	if len(ts.js) == 0 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(text)
	last := ts.lastCodePoint

	// "a in b" and "/x/g in b" but also "/x/ instanceof y"
	if (ts.previousWasRegExp || js_ast.IsIdentifierPart(last)) && js_ast.IsIdentifierPart(first) {
		return true
	}

	switch first {
	case '+', '-':
		// "a+ +b" and "a- --b"
		if last == first {
			return true
		}

	case '/':
		// "a/ /b/" would otherwise start a comment
		if last == '/' {
			return true
		}
	}

	// "a<! --b" would otherwise start an HTML comment
	if ts.partialHTMLComment && strings.HasPrefix(text, "--") {
		return true
	}

	return false
}
