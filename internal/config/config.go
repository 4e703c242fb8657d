package config

// The command line tool can read its options from a YAML file:
//
//   style: formatted
//   indent: "\t"
//   locations: true
//   outdir: out
//   log-level: warning
//   inputs:
//     - "trees/**/*.json"
//   separators:
//     - {kind: BinaryExpression, field: operator, side: before, op: "+", space: none}
//     - {kind: IfStatement, field: consequent, side: before, space: newline}
//
// Flags given on the command line take precedence over the file.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/esgen/esgen/internal/logger"
	"github.com/esgen/esgen/pkg/codegen"
	"github.com/esgen/esgen/pkg/js_ast"
	"gopkg.in/yaml.v3"
)

type Style uint8

const (
	StyleMinimal Style = iota
	StyleFormatted
)

func (s Style) String() string {
	if s == StyleFormatted {
		return "formatted"
	}
	return "minimal"
}

func ParseStyle(text string) (Style, bool) {
	switch text {
	case "minimal":
		return StyleMinimal, true
	case "formatted":
		return StyleFormatted, true
	}
	return StyleMinimal, false
}

type Options struct {
	Style Style

	// Only used by the formatted style. Empty means two spaces.
	Indent string

	// Also write a "<name>.locations.json" file next to each output
	Locations bool

	OutDir   string
	LogLevel logger.LogLevel

	// Glob patterns, relative to the working directory
	Inputs []string

	Separators []SeparatorOverride
}

type SeparatorOverride struct {
	Sep   codegen.Sep
	Space codegen.Space

	// Where the override was written, for error messages
	Line   int
	Column int
}

// An error in the configuration file. Line and Column are 1-based and are
// zero when the position is unknown.
type Error struct {
	Line   int
	Column int
	Text   string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return e.Text
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Text)
}

type fileOptions struct {
	Style      string          `yaml:"style"`
	Indent     *string         `yaml:"indent"`
	Locations  *bool           `yaml:"locations"`
	OutDir     string          `yaml:"outdir"`
	LogLevel   string          `yaml:"log-level"`
	Inputs     []string        `yaml:"inputs"`
	Separators []separatorNode `yaml:"separators"`
}

type separatorNode struct {
	Kind  string `yaml:"kind"`
	Field string `yaml:"field"`
	Side  string `yaml:"side"`
	Op    string `yaml:"op"`
	Space string `yaml:"space"`

	line   int
	column int
}

func (s *separatorNode) UnmarshalYAML(value *yaml.Node) error {
	type plain separatorNode
	if err := value.Decode((*plain)(s)); err != nil {
		return err
	}
	s.line = value.Line
	s.column = value.Column
	return nil
}

// Parse reads a configuration file. Unknown keys are errors so that typos
// don't go unnoticed.
func Parse(contents []byte) (Options, error) {
	var file fileOptions
	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, yamlError(err)
	}

	var options Options
	if file.Style != "" {
		style, ok := ParseStyle(file.Style)
		if !ok {
			return Options{}, &Error{Text: fmt.Sprintf("invalid style %q (expected \"minimal\" or \"formatted\")", file.Style)}
		}
		options.Style = style
	}
	if file.Indent != nil {
		options.Indent = *file.Indent
	}
	if file.Locations != nil {
		options.Locations = *file.Locations
	}
	if file.LogLevel != "" {
		level, ok := logger.ParseLogLevel(file.LogLevel)
		if !ok {
			return Options{}, &Error{Text: fmt.Sprintf("invalid log level %q", file.LogLevel)}
		}
		options.LogLevel = level
	}
	options.OutDir = file.OutDir
	options.Inputs = file.Inputs

	for _, node := range file.Separators {
		override, err := node.resolve()
		if err != nil {
			return Options{}, err
		}
		options.Separators = append(options.Separators, override)
	}
	return options, nil
}

func (s separatorNode) resolve() (SeparatorOverride, error) {
	fail := func(format string, args ...interface{}) (SeparatorOverride, error) {
		return SeparatorOverride{}, &Error{Line: s.line, Column: s.column, Text: fmt.Sprintf(format, args...)}
	}

	kind, ok := js_ast.KindFromString(s.Kind)
	if !ok {
		return fail("unknown node kind %q", s.Kind)
	}
	if s.Field == "" {
		return fail("missing separator field")
	}
	side, err := codegen.ParseSide(s.Side)
	if err != nil {
		return fail("%s", err.Error())
	}
	space, err := codegen.ParseSpace(s.Space)
	if err != nil {
		return fail("%s", err.Error())
	}

	return SeparatorOverride{
		Sep:    codegen.Sep{Kind: kind, Field: s.Field, Side: side, Op: s.Op},
		Space:  space,
		Line:   s.line,
		Column: s.column,
	}, nil
}

// yaml.v3 reports problems as "yaml: line N: ..." text
func yamlError(err error) error {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		err = errors.New(typeErr.Errors[0])
	}
	text := strings.TrimPrefix(err.Error(), "yaml: ")
	if rest, ok := strings.CutPrefix(text, "line "); ok {
		if colon := strings.IndexByte(rest, ':'); colon > 0 {
			if line, convErr := strconv.Atoi(rest[:colon]); convErr == nil {
				return &Error{Line: line, Column: 1, Text: strings.TrimSpace(rest[colon+1:])}
			}
		}
	}
	return &Error{Text: text}
}

// Merge applies the options that were set on the command line on top of the
// ones from the file
func (o Options) Merge(flags Options, set map[string]bool) Options {
	if set["style"] {
		o.Style = flags.Style
	}
	if set["indent"] {
		o.Indent = flags.Indent
	}
	if set["locations"] {
		o.Locations = flags.Locations
	}
	if set["outdir"] {
		o.OutDir = flags.OutDir
	}
	if set["log-level"] {
		o.LogLevel = flags.LogLevel
	}
	if len(flags.Inputs) > 0 {
		o.Inputs = flags.Inputs
	}
	o.Separators = append(o.Separators, flags.Separators...)
	return o
}

func (o Options) FormatOptions() codegen.FormatOptions {
	format := codegen.FormatOptions{Indent: o.Indent}
	if len(o.Separators) > 0 {
		format.Separators = make(map[codegen.Sep]codegen.Space, len(o.Separators))
		for _, override := range o.Separators {
			format.Separators[override.Sep] = override.Space
		}
	}
	return format
}

// Generator returns the code generator for these options. Separator
// overrides only apply to the formatted style.
func (o Options) Generator() js_ast.Reducer[codegen.CodeRep] {
	if o.Style == StyleFormatted {
		return codegen.NewFormatted(o.FormatOptions())
	}
	return codegen.NewMinimal()
}
