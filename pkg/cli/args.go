package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/esgen/esgen/internal/config"
	"github.com/esgen/esgen/internal/logger"
	"github.com/esgen/esgen/pkg/codegen"
	"github.com/esgen/esgen/pkg/js_ast"
)

type stdinFormat uint8

const (
	stdinJSON stdinFormat = iota
	stdinYAML
)

type parsedArgs struct {
	options config.Options

	// Which options were given explicitly, so they can override the
	// configuration file
	set map[string]bool

	configFile  string
	color       logger.StderrColor
	errorLimit  int
	stdinFormat stdinFormat
}

func parseArgs(osArgs []string) (parsedArgs, error) {
	args := parsedArgs{
		set:        make(map[string]bool),
		errorLimit: 10,
	}
	options := &args.options

	for _, arg := range osArgs {
		switch {
		case arg == "--minify":
			options.Style = config.StyleMinimal
			args.set["style"] = true

		case arg == "--format":
			options.Style = config.StyleFormatted
			args.set["style"] = true

		case strings.HasPrefix(arg, "--style="):
			value := arg[len("--style="):]
			style, ok := config.ParseStyle(value)
			if !ok {
				return parsedArgs{}, fmt.Errorf("Invalid style: %q (valid: minimal, formatted)", value)
			}
			options.Style = style
			args.set["style"] = true

		case strings.HasPrefix(arg, "--indent="):
			value := arg[len("--indent="):]
			if value == "tab" {
				value = "\t"
			} else if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				value = strings.Repeat(" ", n)
			} else {
				return parsedArgs{}, fmt.Errorf("Invalid indent: %q (valid: tab or a number of spaces)", value)
			}
			options.Indent = value
			args.set["indent"] = true

		case arg == "--locations":
			options.Locations = true
			args.set["locations"] = true

		case strings.HasPrefix(arg, "--outdir="):
			options.OutDir = arg[len("--outdir="):]
			args.set["outdir"] = true

		case strings.HasPrefix(arg, "--config="):
			args.configFile = arg[len("--config="):]

		case strings.HasPrefix(arg, "--sep:"):
			override, err := parseSeparatorFlag(arg[len("--sep:"):])
			if err != nil {
				return parsedArgs{}, err
			}
			options.Separators = append(options.Separators, override)

		case strings.HasPrefix(arg, "--stdin-format="):
			value := arg[len("--stdin-format="):]
			switch value {
			case "json":
				args.stdinFormat = stdinJSON
			case "yaml":
				args.stdinFormat = stdinYAML
			default:
				return parsedArgs{}, fmt.Errorf("Invalid stdin format: %q (valid: json, yaml)", value)
			}

		case strings.HasPrefix(arg, "--color="):
			value := arg[len("--color="):]
			switch value {
			case "true":
				args.color = logger.ColorAlways
			case "false":
				args.color = logger.ColorNever
			default:
				return parsedArgs{}, fmt.Errorf("Invalid color: %q (valid: true, false)", value)
			}

		case strings.HasPrefix(arg, "--log-level="):
			value := arg[len("--log-level="):]
			level, ok := logger.ParseLogLevel(value)
			if !ok {
				return parsedArgs{}, fmt.Errorf("Invalid log level: %q (valid: verbose, info, warning, error, silent)", value)
			}
			options.LogLevel = level
			args.set["log-level"] = true

		case strings.HasPrefix(arg, "--error-limit="):
			value := arg[len("--error-limit="):]
			limit, err := strconv.Atoi(value)
			if err != nil || limit < 0 {
				return parsedArgs{}, fmt.Errorf("Invalid error limit: %q", value)
			}
			args.errorLimit = limit

		case strings.HasPrefix(arg, "-"):
			return parsedArgs{}, fmt.Errorf("Invalid flag: %q", arg)

		default:
			options.Inputs = append(options.Inputs, arg)
		}
	}

	return args, nil
}

// Parses "Kind.field.side=space" or "Kind.field(op).side=space", for example
// "BinaryExpression.operator(+).before=none"
func parseSeparatorFlag(text string) (config.SeparatorOverride, error) {
	fail := func() (config.SeparatorOverride, error) {
		return config.SeparatorOverride{}, fmt.Errorf(
			"Invalid separator: %q (expected Kind.field.side=space or Kind.field(op).side=space)", "--sep:"+text)
	}

	equals := strings.LastIndexByte(text, '=')
	if equals < 0 {
		return fail()
	}
	key, value := text[:equals], text[equals+1:]

	dot := strings.IndexByte(key, '.')
	lastDot := strings.LastIndexByte(key, '.')
	if dot < 0 || lastDot == dot {
		return fail()
	}
	kindText, field, sideText := key[:dot], key[dot+1:lastDot], key[lastDot+1:]

	var op string
	if open := strings.IndexByte(field, '('); open >= 0 {
		if !strings.HasSuffix(field, ")") {
			return fail()
		}
		field, op = field[:open], field[open+1:len(field)-1]
	}
	if field == "" {
		return fail()
	}

	kind, ok := js_ast.KindFromString(kindText)
	if !ok {
		return config.SeparatorOverride{}, fmt.Errorf("Unknown node kind: %q", kindText)
	}
	side, err := codegen.ParseSide(sideText)
	if err != nil {
		return config.SeparatorOverride{}, err
	}
	space, err := codegen.ParseSpace(value)
	if err != nil {
		return config.SeparatorOverride{}, err
	}

	return config.SeparatorOverride{
		Sep:   codegen.Sep{Kind: kind, Field: field, Side: side, Op: op},
		Space: space,
	}, nil
}
