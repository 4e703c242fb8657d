package codegen

import (
	"github.com/esgen/esgen/internal/helpers"
	"github.com/esgen/esgen/pkg/coderep"
	"github.com/esgen/esgen/pkg/js_ast"
	"github.com/tidwall/btree"
)

type Location struct {
	// 1-based
	Line int

	// 0-based, in UTF-16 code units from the start of the line
	Column int

	// 0-based, in bytes from the start of the output
	Offset int
}

type Span struct {
	Start Location
	End   Location
}

// LocationMap maps the nodes of a generated tree to the part of the output
// that they produced. Nodes are keyed by identity.
type LocationMap struct {
	spans map[js_ast.Node]Span
	index *btree.BTreeG[locationEntry]
}

type locationEntry struct {
	node  js_ast.Node
	start int
	end   int

	// Nodes finish in post-order, so among nodes with the same span the one
	// with the lower ordinal is nested inside the others
	ord int
}

// Entries are ordered by start, then outer spans before inner ones
func locationEntryLess(a, b locationEntry) bool {
	if a.start != b.start {
		return a.start < b.start
	}
	if a.end != b.end {
		return a.end > b.end
	}
	return a.ord > b.ord
}

func (m *LocationMap) Get(node js_ast.Node) (Span, bool) {
	span, ok := m.spans[node]
	return span, ok
}

func (m *LocationMap) Len() int {
	return len(m.spans)
}

// Scan visits every node in output order, with enclosing nodes before the
// nodes they contain. Returning false stops the scan.
func (m *LocationMap) Scan(visit func(node js_ast.Node, span Span) bool) {
	m.index.Scan(func(entry locationEntry) bool {
		return visit(entry.node, m.spans[entry.node])
	})
}

// NodesAt returns the nodes whose span contains the given byte offset,
// innermost first
func (m *LocationMap) NodesAt(offset int) []js_ast.Node {
	var nodes []js_ast.Node
	pivot := locationEntry{start: offset, end: -1}
	m.index.Descend(pivot, func(entry locationEntry) bool {
		if offset < entry.end {
			nodes = append(nodes, entry.node)
		}
		return true
	})
	return nodes
}

type locationRecord struct {
	node  js_ast.Node
	start int
	end   int
}

// The tracker listens to the token stream and fixes up the offsets of the
// records that are still waiting on a token, a semicolon or a dot
type locationTracker struct {
	records       []*locationRecord
	pendingStarts []*locationRecord
	semiWaiters   []*locationRecord
	numberWaiters []*locationRecord
}

func (tr *locationTracker) BeforeToken(offset int) {
	for _, record := range tr.pendingStarts {
		record.start = offset
	}
	tr.pendingStarts = tr.pendingStarts[:0]
	tr.numberWaiters = tr.numberWaiters[:0]
}

func (tr *locationTracker) OptionalSemicolon(inserted bool) {
	if inserted {
		for _, record := range tr.semiWaiters {
			record.end++
		}
	}
	tr.semiWaiters = tr.semiWaiters[:0]
}

func (tr *locationTracker) NumberDotInserted() {
	for _, record := range tr.numberWaiters {
		record.end++
	}
}

// located records where its node's output starts and ends
type located struct {
	node    js_ast.Node
	inner   CodeRep
	tracker *locationTracker
}

var _ coderep.Wrapper = (*located)(nil)

func (l *located) Attributes() *coderep.Attrs {
	return l.inner.Attributes()
}

func (l *located) ForEach(visit func(CodeRep)) {
	visit(l.inner)
}

func (l *located) Unwrap() CodeRep {
	return l.inner
}

func (l *located) Rewrap(inner CodeRep) CodeRep {
	return &located{node: l.node, inner: inner, tracker: l.tracker}
}

func (l *located) Emit(ts *coderep.TokenStream, noIn bool) {
	tr := l.tracker
	record := &locationRecord{node: l.node, start: -1}
	tr.pendingStarts = append(tr.pendingStarts, record)

	l.inner.Emit(ts, noIn)

	// Nodes that emitted no tokens start where they end
	if record.start < 0 {
		record.start = ts.Len()
		tr.pendingStarts = tr.pendingStarts[:len(tr.pendingStarts)-1]
	}
	record.end = ts.Len()

	if ts.HasPendingSemicolon() && l.node.Kind().IsStatementLike() {
		tr.semiWaiters = append(tr.semiWaiters, record)
	}
	if ts.EndsWithNumber() {
		tr.numberWaiters = append(tr.numberWaiters, record)
	}
	tr.records = append(tr.records, record)
}

func (tr *locationTracker) wrap(node js_ast.Node, rep CodeRep) CodeRep {
	return &located{node: node, inner: rep, tracker: tr}
}

// Converts the byte offsets of every record into full locations
func (tr *locationTracker) finish(root js_ast.Node, text string) *LocationMap {
	lineStarts := computeLineStarts(text)
	locationOf := func(offset int) Location {
		// Binary search for the last line start at or before the offset
		lo, hi := 0, len(lineStarts)-1
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if lineStarts[mid] <= offset {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		return Location{
			Line:   lo + 1,
			Column: helpers.UTF16Len(text[lineStarts[lo]:offset]),
			Offset: offset,
		}
	}

	m := &LocationMap{
		spans: make(map[js_ast.Node]Span, len(tr.records)),
		index: btree.NewBTreeG(locationEntryLess),
	}
	entries := make(map[js_ast.Node]locationEntry, len(tr.records))
	for ord, record := range tr.records {
		entry := locationEntry{node: record.node, start: record.start, end: record.end, ord: ord}
		if record.node == root {
			entry.start, entry.end = 0, len(text)
		}

		// A node emitted more than once keeps its last span
		if old, ok := entries[record.node]; ok {
			m.index.Delete(old)
		}
		entries[record.node] = entry

		m.spans[record.node] = Span{Start: locationOf(entry.start), End: locationOf(entry.end)}
		m.index.Set(entry)
	}
	return m
}

func computeLineStarts(text string) []int {
	lineStarts := []int{0}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			lineStarts = append(lineStarts, i+1)

		case '\n':
			lineStarts = append(lineStarts, i+1)

		case 0xE2:
			// U+2028 and U+2029 are line terminators too
			if i+2 < len(text) && text[i+1] == 0x80 && (text[i+2] == 0xA8 || text[i+2] == 0xA9) {
				i += 2
				lineStarts = append(lineStarts, i+1)
			}
		}
	}
	return lineStarts
}
