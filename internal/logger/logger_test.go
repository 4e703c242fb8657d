package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLineAndColumn(t *testing.T) {
	contents := "ab\ncd\r\nef\rgh\u2028ij"

	tests := []struct {
		offset    int
		line      int
		column    int
		lineStart int
		lineEnd   int
	}{
		{0, 0, 0, 0, 2},
		{1, 0, 1, 0, 2},
		{4, 1, 1, 3, 5},
		{8, 2, 1, 7, 9},
		{10, 3, 0, 10, 12},
		{15, 4, 0, 15, 17},
		{100, 4, 2, 15, 17},
	}
	for _, tt := range tests {
		line, column, lineStart, lineEnd := computeLineAndColumn(contents, tt.offset)
		assert.Equal(t, tt.line, line, "line at offset %d", tt.offset)
		assert.Equal(t, tt.column, column, "column at offset %d", tt.offset)
		assert.Equal(t, tt.lineStart, lineStart, "line start at offset %d", tt.offset)
		assert.Equal(t, tt.lineEnd, lineEnd, "line end at offset %d", tt.offset)
	}
}

func TestMsgStringWithSource(t *testing.T) {
	source := &Source{PrettyPath: "tree.json", Contents: "{\n  \"type\": 5\n}"}
	msg := Msg{
		Kind:     Error,
		Text:     "expected a string",
		Location: LocationOrNil(source, Range{Loc: Loc{Start: 12}, Len: 1}),
	}

	text := msg.String(StderrOptions{IncludeSource: true}, TerminalInfo{})
	assert.Equal(t, "tree.json:2:10: error: expected a string\n  \"type\": 5\n          ^\n", text)

	text = msg.String(StderrOptions{}, TerminalInfo{})
	assert.Equal(t, "tree.json: error: expected a string\n", text)
}

func TestMsgStringWideCharacters(t *testing.T) {
	// Each of these ideographs takes two terminal cells
	source := &Source{PrettyPath: "a.yaml", Contents: "名前: [x]"}
	msg := Msg{
		Kind:     Warning,
		Text:     "unexpected list",
		Location: LocationOrNil(source, Range{Loc: Loc{Start: 8}, Len: 3}),
	}

	d := detailStruct(msg, TerminalInfo{})
	assert.Equal(t, "      ", d.Indent)
	assert.Equal(t, "~~~", d.Marker)
	assert.Equal(t, "[x]", d.SourceMarked)
}

func TestMsgStringWithoutLocation(t *testing.T) {
	assert.Equal(t, "error: no input files\n", Msg{Kind: Error, Text: "no input files"}.String(StderrOptions{}, TerminalInfo{}))
	assert.Equal(t, "wrote out/a.js\n", Msg{Kind: Info, Text: "wrote out/a.js"}.String(StderrOptions{}, TerminalInfo{}))
}

func TestDeferLog(t *testing.T) {
	log := NewDeferLog()
	b := &Source{PrettyPath: "b.json", Contents: "{}"}
	a := &Source{PrettyPath: "a.json", Contents: "{}"}

	log.AddWarning(b, Loc{Start: 1}, "second")
	require.False(t, log.HasErrors())
	log.AddError(a, Loc{Start: 0}, "first")
	log.AddInfo("progress")
	require.True(t, log.HasErrors())

	msgs := log.Done()
	require.Len(t, msgs, 3)
	assert.Equal(t, "progress", msgs[0].Text)
	assert.Equal(t, "first", msgs[1].Text)
	assert.Equal(t, "second", msgs[2].Text)
}

func TestParseLogLevel(t *testing.T) {
	level, ok := ParseLogLevel("warning")
	assert.True(t, ok)
	assert.Equal(t, LevelWarning, level)

	_, ok = ParseLogLevel("loud")
	assert.False(t, ok)
}

func TestRenderTabStops(t *testing.T) {
	assert.Equal(t, "a b", renderTabStops("a\tb", 2))
	assert.Equal(t, "ab  c", renderTabStops("ab\tc", 2))
	assert.Equal(t, "abc", renderTabStops("abc", 2))
}
