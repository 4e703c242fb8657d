package codegen

import (
	"fmt"

	"github.com/esgen/esgen/pkg/coderep"
	"github.com/esgen/esgen/pkg/js_ast"
)

type Side uint8

const (
	Before Side = iota
	After
)

func (s Side) String() string {
	if s == Before {
		return "before"
	}
	return "after"
}

func ParseSide(text string) (Side, error) {
	switch text {
	case "before":
		return Before, nil
	case "after":
		return After, nil
	}
	return 0, fmt.Errorf("invalid side %q (expected \"before\" or \"after\")", text)
}

// Sep identifies one place where a separator may be inserted. "Field" is
// usually the token next to the separator ("=", "else", ",") or the name of
// the child it precedes ("body", "consequent"). "Op" distinguishes the
// operators of binary, assignment and unary expressions.
type Sep struct {
	Kind  js_ast.Kind
	Field string
	Side  Side
	Op    string
}

func (s Sep) String() string {
	if s.Op != "" {
		return fmt.Sprintf("%s.%s(%s) %s", s.Kind, s.Field, s.Op, s.Side)
	}
	return fmt.Sprintf("%s.%s %s", s.Kind, s.Field, s.Side)
}

type Space uint8

const (
	NoSpace Space = iota
	SingleSpace
	Newline
)

func (s Space) String() string {
	switch s {
	case SingleSpace:
		return "space"
	case Newline:
		return "newline"
	}
	return "none"
}

func ParseSpace(text string) (Space, error) {
	switch text {
	case "none":
		return NoSpace, nil
	case "space":
		return SingleSpace, nil
	case "newline":
		return Newline, nil
	}
	return 0, fmt.Errorf("invalid space %q (expected \"none\", \"space\", or \"newline\")", text)
}

type FormatOptions struct {
	// Defaults to two spaces
	Indent string

	// Overrides for the default separator table. A key without an operator
	// applies to every operator of that kind that isn't listed separately.
	Separators map[Sep]Space
}

// A line break after these keywords would insert a semicolon, and one before
// "=>" is a syntax error
func isRestricted(sep Sep) bool {
	if sep.Side == After {
		switch sep.Field {
		case "return", "throw", "break", "continue", "yield", "async":
			return true
		}
	}
	return sep.Side == Before && sep.Field == "=>"
}

var listKinds = []js_ast.Kind{
	js_ast.KindArrayAssignmentTarget,
	js_ast.KindArrayBinding,
	js_ast.KindArrayExpression,
	js_ast.KindCallExpression,
	js_ast.KindExportFrom,
	js_ast.KindExportLocals,
	js_ast.KindFormalParameters,
	js_ast.KindImport,
	js_ast.KindImportNamespace,
	js_ast.KindNewExpression,
	js_ast.KindObjectAssignmentTarget,
	js_ast.KindObjectBinding,
	js_ast.KindObjectExpression,
	js_ast.KindVariableDeclaration,
}

var inlineBraceKinds = []js_ast.Kind{
	js_ast.KindExportFrom,
	js_ast.KindExportLocals,
	js_ast.KindImport,
	js_ast.KindObjectAssignmentTarget,
	js_ast.KindObjectBinding,
	js_ast.KindObjectExpression,
}

func DefaultSeparators() map[Sep]Space {
	m := make(map[Sep]Space)
	both := func(kind js_ast.Kind, field string) {
		m[Sep{Kind: kind, Field: field, Side: Before}] = SingleSpace
		m[Sep{Kind: kind, Field: field, Side: After}] = SingleSpace
	}
	before := func(kind js_ast.Kind, field string) {
		m[Sep{Kind: kind, Field: field, Side: Before}] = SingleSpace
	}
	after := func(kind js_ast.Kind, field string) {
		m[Sep{Kind: kind, Field: field, Side: After}] = SingleSpace
	}

	// Operators
	both(js_ast.KindBinaryExpression, "operator")
	m[Sep{Kind: js_ast.KindBinaryExpression, Field: "operator", Side: Before, Op: ","}] = NoSpace
	both(js_ast.KindAssignmentExpression, "operator")
	both(js_ast.KindCompoundAssignmentExpression, "operator")
	both(js_ast.KindConditionalExpression, "?")
	both(js_ast.KindConditionalExpression, ":")
	both(js_ast.KindArrowExpression, "=>")
	after(js_ast.KindArrowExpression, "async")
	after(js_ast.KindMethod, "async")
	after(js_ast.KindYieldGeneratorExpression, "*")
	after(js_ast.KindFunctionDeclaration, "*")
	after(js_ast.KindFunctionExpression, "*")

	// Defaults and initializers
	for _, kind := range []js_ast.Kind{
		js_ast.KindAssignmentTargetPropertyIdentifier,
		js_ast.KindAssignmentTargetWithDefault,
		js_ast.KindBindingPropertyIdentifier,
		js_ast.KindBindingWithDefault,
		js_ast.KindVariableDeclarator,
	} {
		both(kind, "=")
	}

	// Lists
	for _, kind := range listKinds {
		after(kind, ",")
	}
	for _, kind := range inlineBraceKinds {
		after(kind, "{")
		before(kind, "}")
	}
	for _, kind := range []js_ast.Kind{
		js_ast.KindAssignmentTargetPropertyProperty,
		js_ast.KindBindingPropertyProperty,
		js_ast.KindDataProperty,
		js_ast.KindLabeledStatement,
	} {
		after(kind, ":")
	}

	// Keywords
	for kind, words := range map[js_ast.Kind][]string{
		js_ast.KindAwaitExpression:            {"await"},
		js_ast.KindBreakStatement:             {"break"},
		js_ast.KindCatchClause:                {"catch"},
		js_ast.KindContinueStatement:          {"continue"},
		js_ast.KindDoWhileStatement:           {"do"},
		js_ast.KindExport:                     {"export"},
		js_ast.KindExportAllFrom:              {"export"},
		js_ast.KindExportDefault:              {"export", "default"},
		js_ast.KindExportFrom:                 {"export"},
		js_ast.KindExportLocals:               {"export"},
		js_ast.KindForInStatement:             {"for"},
		js_ast.KindForOfStatement:             {"for"},
		js_ast.KindForStatement:               {"for"},
		js_ast.KindIfStatement:                {"if"},
		js_ast.KindImport:                     {"import"},
		js_ast.KindImportNamespace:            {"import", "*"},
		js_ast.KindReturnStatement:            {"return"},
		js_ast.KindSwitchCase:                 {"case"},
		js_ast.KindSwitchStatement:            {"switch"},
		js_ast.KindSwitchStatementWithDefault: {"switch"},
		js_ast.KindThrowStatement:             {"throw"},
		js_ast.KindTryCatchStatement:          {"try"},
		js_ast.KindTryFinallyStatement:        {"try"},
		js_ast.KindVariableDeclaration:        {"kind"},
		js_ast.KindWhileStatement:             {"while"},
		js_ast.KindWithStatement:              {"with"},
		js_ast.KindYieldExpression:            {"yield"},
	} {
		for _, word := range words {
			after(kind, word)
		}
	}
	for _, kind := range []js_ast.Kind{js_ast.KindImport, js_ast.KindImportNamespace, js_ast.KindExportAllFrom, js_ast.KindExportFrom} {
		both(kind, "from")
	}
	both(js_ast.KindForInStatement, "in")
	both(js_ast.KindForOfStatement, "of")
	both(js_ast.KindIfStatement, "else")
	both(js_ast.KindDoWhileStatement, "while")
	both(js_ast.KindTryFinallyStatement, "finally")
	before(js_ast.KindTryCatchStatement, "catch")
	before(js_ast.KindTryFinallyStatement, "catch")
	both(js_ast.KindClassDeclaration, "extends")
	both(js_ast.KindClassExpression, "extends")
	after(js_ast.KindForStatement, ";")

	// Bodies
	before(js_ast.KindIfStatement, "consequent")
	for _, kind := range []js_ast.Kind{
		js_ast.KindCatchClause,
		js_ast.KindClassDeclaration,
		js_ast.KindClassExpression,
		js_ast.KindForInStatement,
		js_ast.KindForOfStatement,
		js_ast.KindForStatement,
		js_ast.KindFunctionDeclaration,
		js_ast.KindFunctionExpression,
		js_ast.KindGetter,
		js_ast.KindMethod,
		js_ast.KindSetter,
		js_ast.KindSwitchStatement,
		js_ast.KindSwitchStatementWithDefault,
		js_ast.KindWhileStatement,
		js_ast.KindWithStatement,
	} {
		before(kind, "body")
	}

	return m
}

// NewFormatted returns an Extensible generator that indents block-like
// braces and puts every statement on its own line
func NewFormatted(options FormatOptions) *CodeGen {
	indent := options.Indent
	if indent == "" {
		indent = "  "
	}

	table := DefaultSeparators()
	for sep, space := range options.Separators {
		table[sep] = space
	}

	lookup := func(sep Sep) Space {
		space, ok := table[sep]
		if !ok && sep.Op != "" {
			generic := sep
			generic.Op = ""
			space = table[generic]
		}
		if space == Newline && isRestricted(sep) {
			space = SingleSpace
		}
		return space
	}

	return NewExtensible(Hooks{
		Separator: func(sep Sep) CodeRep {
			switch lookup(sep) {
			case SingleSpace:
				return coderep.NewToken(" ")
			case Newline:
				return coderep.NewLinebreak()
			}
			return coderep.NewEmpty()
		},

		Brace: func(kind js_ast.Kind, items []CodeRep) CodeRep {
			if len(items) == 0 {
				return coderep.NewBrace(coderep.NewEmpty())
			}
			return coderep.NewBrace(coderep.NewSeq(
				coderep.NewIndent(interleaveLinebreaks(items, false), indent),
				coderep.NewLinebreak(),
			))
		},

		Statements: func(kind js_ast.Kind, items []CodeRep) CodeRep {
			if len(items) == 0 {
				return coderep.NewEmpty()
			}
			switch kind {
			case js_ast.KindScript, js_ast.KindModule:
				return coderep.NewSeq(interleaveLinebreaks(items, true), coderep.NewLinebreak())

			case js_ast.KindSwitchCase, js_ast.KindSwitchDefault:
				return coderep.NewIndent(interleaveLinebreaks(items, false), indent)
			}
			return interleaveLinebreaks(items, true)
		},
	})
}

// Puts a Linebreak before each item, or only between items when "between"
// is set
func interleaveLinebreaks(items []CodeRep, between bool) CodeRep {
	lines := make([]CodeRep, 0, 2*len(items))
	for i, item := range items {
		if i > 0 || !between {
			lines = append(lines, coderep.NewLinebreak())
		}
		lines = append(lines, item)
	}
	return coderep.NewSeq(lines...)
}
