package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/esgen/esgen/internal/logger"
	"github.com/esgen/esgen/pkg/cli"
)

const esgenVersion = "0.3.0"

const helpText = `
Usage:
  esgen [options] [inputs]

Reads syntax trees in the Shift AST format from JSON or YAML files and writes
the JavaScript they describe. Inputs may be file names or glob patterns such
as "trees/**/*.json". Without inputs, a tree is read from stdin.

Options:
  --style=...           Output style (minimal or formatted, default minimal)
  --minify              Same as --style=minimal
  --format              Same as --style=formatted
  --indent=...          Indentation for the formatted style (tab or a number
                        of spaces, default 2)
  --outdir=...          The output directory (required for multiple inputs)
  --locations           Also write a "<name>.locations.json" file with the
                        output span of every node
  --config=...          Read options from a YAML file (flags take precedence)
  --sep:K.F.S=V         Override one separator of the formatted style, where
                        K is a node kind, F a field (with an optional
                        operator, as in "operator(+)"), S is before or after,
                        and V is none, space, or newline

Advanced options:
  --version             Print the current version and exit (` + esgenVersion + `)
  --stdin-format=...    Format of the tree on stdin (json or yaml, default json)
  --color=...           Force use of color terminal escapes (true or false)
  --log-level=...       Disable logging (verbose, info, warning, error, silent)
  --error-limit=...     Maximum error count or 0 to disable (default 10)
  --cpuprofile=...      Write a CPU profile to this file
  --trace=...           Write a Go execution trace to this file

Examples:
  # Produces out/app.js and out/app.locations.json
  esgen app.json --outdir=out --locations

  # Pretty-print every tree below "trees" with tabs
  esgen "trees/**/*.yaml" --outdir=out --style=formatted --indent=tab

  # Provide input via stdin, get output via stdout
  esgen --format < tree.json > out.js
`

func main() {
	osArgs := os.Args[1:]
	traceFile := ""
	cpuprofileFile := ""

	// Do an initial scan over the argument list
	argsEnd := 0
	for _, arg := range osArgs {
		switch {
		// Show help if a common help flag is provided
		case arg == "-h", arg == "-help", arg == "--help", arg == "/?":
			fmt.Fprintf(os.Stderr, "%s\n", helpText)
			os.Exit(0)

		// Special-case the version flag here
		case arg == "--version":
			fmt.Fprintf(os.Stderr, "%s\n", esgenVersion)
			os.Exit(0)

		case strings.HasPrefix(arg, "--trace="):
			traceFile = arg[len("--trace="):]

		case strings.HasPrefix(arg, "--cpuprofile="):
			cpuprofileFile = arg[len("--cpuprofile="):]

		default:
			// Strip any arguments that were handled above
			osArgs[argsEnd] = arg
			argsEnd++
		}
	}
	osArgs = osArgs[:argsEnd]

	// Print help text when there are no arguments and nothing is piped in
	if len(osArgs) == 0 && logger.GetTerminalInfo(os.Stdin).IsTTY {
		fmt.Fprintf(os.Stderr, "%s\n", helpText)
		os.Exit(0)
	}

	// Capture the defer statements below so the profiles are flushed first
	exitCode := 1
	func() {
		// To view a trace, use "go tool trace [file]"
		if traceFile != "" {
			done := createTraceFile(osArgs, traceFile)
			if done == nil {
				return
			}
			defer done()
		}

		// To view a CPU profile, use "go tool pprof [file]"
		if cpuprofileFile != "" {
			done := createCpuprofileFile(osArgs, cpuprofileFile)
			if done == nil {
				return
			}
			defer done()
		}

		exitCode = cli.Run(osArgs)
	}()

	os.Exit(exitCode)
}
