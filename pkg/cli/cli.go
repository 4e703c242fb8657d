// Package cli implements the "esgen" command. It reads syntax trees stored as
// JSON or YAML and writes the JavaScript they describe.
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/esgen/esgen/internal/config"
	"github.com/esgen/esgen/internal/helpers"
	"github.com/esgen/esgen/internal/logger"
	"github.com/esgen/esgen/pkg/codegen"
	"github.com/esgen/esgen/pkg/js_ast"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

func Run(osArgs []string) int {
	return run(osArgs, os.Stdin, os.Stdout)
}

func run(osArgs []string, stdin io.Reader, stdout io.Writer) int {
	args, err := parseArgs(osArgs)
	if err != nil {
		logger.PrintErrorToStderr(osArgs, err.Error())
		return 1
	}

	options := args.options
	if args.configFile != "" {
		fileOptions, ok := loadConfig(osArgs, args.configFile)
		if !ok {
			return 1
		}
		options = fileOptions.Merge(args.options, args.set)
	}
	if options.LogLevel == logger.LevelNone {
		options.LogLevel = logger.LevelInfo
	}

	log := logger.NewStderrLog(logger.StderrOptions{
		IncludeSource: true,
		ErrorLimit:    args.errorLimit,
		Color:         args.color,
		LogLevel:      options.LogLevel,
	})

	var timer *helpers.Timer
	if options.LogLevel <= logger.LevelVerbose {
		timer = &helpers.Timer{}
	}

	if len(options.Inputs) == 0 {
		generateStdin(log, options, args.stdinFormat, stdin, stdout)
	} else {
		generateFiles(log, options, timer, stdout)
	}

	timer.Log(log)
	hasErrors := log.HasErrors()
	log.Done()
	if hasErrors {
		return 1
	}
	return 0
}

func loadConfig(osArgs []string, path string) (config.Options, bool) {
	contents, err := os.ReadFile(path)
	if err != nil {
		logger.PrintErrorToStderr(osArgs, fmt.Sprintf("Could not read config file: %s", err.Error()))
		return config.Options{}, false
	}

	options, err := config.Parse(contents)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) && configErr.Line > 0 {
			source := logger.Source{PrettyPath: path, Contents: string(contents)}
			loc := logger.Loc{Start: int32(offsetOfLine(source.Contents, configErr.Line, configErr.Column))}
			logger.PrintMessageToStderr(osArgs, logger.Msg{
				Kind:     logger.Error,
				Text:     configErr.Text,
				Location: logger.LocationOrNil(&source, logger.Range{Loc: loc}),
			})
		} else {
			logger.PrintErrorToStderr(osArgs, fmt.Sprintf("%s: %s", path, err.Error()))
		}
		return config.Options{}, false
	}
	return options, true
}

// Converts a 1-based line and column into a byte offset
func offsetOfLine(contents string, line int, column int) int {
	offset := 0
	for line > 1 {
		newline := strings.IndexByte(contents[offset:], '\n')
		if newline < 0 {
			return len(contents)
		}
		offset += newline + 1
		line--
	}
	if column > 1 {
		offset += column - 1
	}
	if offset > len(contents) {
		offset = len(contents)
	}
	return offset
}

func generateStdin(log logger.Log, options config.Options, format stdinFormat, stdin io.Reader, stdout io.Writer) {
	if options.Locations && options.OutDir == "" {
		log.AddError(nil, logger.Loc{}, "Cannot use \"--locations\" without \"--outdir\" when reading from stdin")
		return
	}

	contents, err := io.ReadAll(stdin)
	if err != nil {
		log.AddError(nil, logger.Loc{}, fmt.Sprintf("Could not read from stdin: %s", err.Error()))
		return
	}

	path := "<stdin>.json"
	if format == stdinYAML {
		path = "<stdin>.yaml"
	}
	source := logger.Source{PrettyPath: "<stdin>", Contents: string(contents)}
	output, ok := generateSource(log, options, &source, path)
	if !ok {
		return
	}

	if options.OutDir != "" {
		writeOutput(log, options, "stdin", output)
		return
	}
	if _, err := io.WriteString(stdout, output.js); err != nil {
		log.AddError(nil, logger.Loc{}, fmt.Sprintf("Failed to write to stdout: %s", err.Error()))
	}
}

func generateFiles(log logger.Log, options config.Options, timer *helpers.Timer, stdout io.Writer) {
	timer.Begin("Expand inputs")
	paths := expandInputs(log, options.Inputs)
	timer.End("Expand inputs")
	if log.HasErrors() {
		return
	}

	// Without an output directory the result goes to stdout, which only makes
	// sense for a single input
	if options.OutDir == "" && (len(paths) != 1 || options.Locations) {
		if options.Locations {
			log.AddError(nil, logger.Loc{}, "Must use \"--outdir\" with \"--locations\"")
		} else {
			log.AddError(nil, logger.Loc{}, fmt.Sprintf("Must use \"--outdir\" when there are %d input files", len(paths)))
		}
		return
	}

	outputs := make([]generatedFile, len(paths))
	results := make([]bool, len(paths))

	timer.Begin("Generate")
	group := errgroup.Group{}
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			fileTimer := timer.Fork()
			fileTimer.Begin(path)
			defer func() {
				fileTimer.End(path)
				timer.Join(fileTimer)
			}()

			contents, err := os.ReadFile(path)
			if err != nil {
				log.AddError(nil, logger.Loc{}, fmt.Sprintf("Could not read %q: %s", path, err.Error()))
				return nil
			}
			source := logger.Source{PrettyPath: filepath.ToSlash(path), Contents: string(contents)}
			outputs[i], results[i] = generateSource(log, options, &source, path)
			return nil
		})
	}
	group.Wait()
	timer.End("Generate")

	if options.OutDir == "" {
		if results[0] {
			if _, err := io.WriteString(stdout, outputs[0].js); err != nil {
				log.AddError(nil, logger.Loc{}, fmt.Sprintf("Failed to write to stdout: %s", err.Error()))
			}
		}
		return
	}

	timer.Begin("Write outputs")
	names := outputNames(paths)
	for i, output := range outputs {
		if results[i] {
			writeOutput(log, options, names[i], output)
		}
	}
	timer.End("Write outputs")

	if !log.HasErrors() {
		log.AddInfo(fmt.Sprintf("Wrote %d files to %s", len(paths), options.OutDir))
	}
}

// Each argument is either a file or a doublestar glob pattern. The result is
// sorted and free of duplicates.
func expandInputs(log logger.Log, patterns []string) []string {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			log.AddError(nil, logger.Loc{}, fmt.Sprintf("Invalid input pattern %q: %s", pattern, err.Error()))
			continue
		}
		if len(matches) == 0 {
			log.AddError(nil, logger.Loc{}, fmt.Sprintf("Could not find any input files matching %q", pattern))
			continue
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}

	sort.Strings(paths)
	return paths
}

// Output files are named after their input without the extension. Inputs
// with the same base name keep their directory structure.
func outputNames(paths []string) []string {
	names := make([]string, len(paths))
	counts := make(map[string]int)
	for i, path := range paths {
		names[i] = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		counts[names[i]]++
	}
	for i, path := range paths {
		if counts[names[i]] > 1 {
			names[i] = strings.TrimSuffix(filepath.Clean(path), filepath.Ext(path))
			names[i] = strings.TrimLeft(filepath.ToSlash(names[i]), "./")
		}
	}
	return names
}

type generatedFile struct {
	js        string
	locations []byte
}

func generateSource(log logger.Log, options config.Options, source *logger.Source, path string) (generatedFile, bool) {
	root, ok := decodeSource(log, source, path)
	if !ok {
		return generatedFile{}, false
	}

	gen := options.Generator()
	if !options.Locations {
		js, err := codegen.Generate(root, gen)
		if err != nil {
			log.AddError(nil, logger.Loc{}, fmt.Sprintf("%s: %s", source.PrettyPath, err.Error()))
			return generatedFile{}, false
		}
		return generatedFile{js: js}, true
	}

	js, locations, err := codegen.GenerateWithLocation(root, gen)
	if err != nil {
		log.AddError(nil, logger.Loc{}, fmt.Sprintf("%s: %s", source.PrettyPath, err.Error()))
		return generatedFile{}, false
	}
	return generatedFile{js: js, locations: locationsJSON(locations)}, true
}

func decodeSource(log logger.Log, source *logger.Source, path string) (js_ast.Node, bool) {
	var root js_ast.Node
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var value interface{}
		if yamlErr := yaml.Unmarshal([]byte(source.Contents), &value); yamlErr != nil {
			reportYAMLError(log, source, yamlErr)
			return nil, false
		}
		root, err = js_ast.FromValue(value)

	case ".json":
		root, err = js_ast.ParseJSON([]byte(source.Contents))
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			log.AddError(source, logger.Loc{Start: int32(syntaxErr.Offset)}, syntaxErr.Error())
			return nil, false
		}

	default:
		log.AddError(nil, logger.Loc{}, fmt.Sprintf("%s: Unsupported file extension %q (expected .json, .yaml, or .yml)",
			source.PrettyPath, filepath.Ext(path)))
		return nil, false
	}

	if err != nil {
		log.AddError(nil, logger.Loc{}, fmt.Sprintf("%s: %s", source.PrettyPath, err.Error()))
		return nil, false
	}
	return root, true
}

// yaml.v3 only reports line numbers, and only as part of the message
func reportYAMLError(log logger.Log, source *logger.Source, err error) {
	text := strings.TrimPrefix(err.Error(), "yaml: ")
	if rest, ok := strings.CutPrefix(text, "line "); ok {
		if colon := strings.IndexByte(rest, ':'); colon > 0 {
			if line, convErr := strconv.Atoi(rest[:colon]); convErr == nil {
				loc := logger.Loc{Start: int32(offsetOfLine(source.Contents, line, 1))}
				log.AddError(source, loc, strings.TrimSpace(rest[colon+1:]))
				return
			}
		}
	}
	log.AddError(nil, logger.Loc{}, fmt.Sprintf("%s: %s", source.PrettyPath, text))
}

type locationJSON struct {
	Kind  string       `json:"kind"`
	Start positionJSON `json:"start"`
	End   positionJSON `json:"end"`
}

type positionJSON struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// Nodes are listed in output order with enclosing nodes first
func locationsJSON(locations *codegen.LocationMap) []byte {
	entries := make([]locationJSON, 0, locations.Len())
	locations.Scan(func(node js_ast.Node, span codegen.Span) bool {
		entries = append(entries, locationJSON{
			Kind:  node.Kind().String(),
			Start: positionJSON{Line: span.Start.Line, Column: span.Start.Column, Offset: span.Start.Offset},
			End:   positionJSON{Line: span.End.Line, Column: span.End.Column, Offset: span.End.Offset},
		})
		return true
	})

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetIndent("", "  ")
	encoder.Encode(entries)
	return buffer.Bytes()
}

func writeOutput(log logger.Log, options config.Options, name string, output generatedFile) {
	jsPath := filepath.Join(options.OutDir, filepath.FromSlash(name)+".js")
	if err := os.MkdirAll(filepath.Dir(jsPath), 0755); err != nil {
		log.AddError(nil, logger.Loc{}, fmt.Sprintf("Failed to create output directory: %s", err.Error()))
		return
	}
	if err := os.WriteFile(jsPath, []byte(output.js), 0644); err != nil {
		log.AddError(nil, logger.Loc{}, fmt.Sprintf("Failed to write to output file: %s", err.Error()))
		return
	}

	if output.locations != nil {
		locationsPath := filepath.Join(options.OutDir, filepath.FromSlash(name)+".locations.json")
		if err := os.WriteFile(locationsPath, output.locations, 0644); err != nil {
			log.AddError(nil, logger.Loc{}, fmt.Sprintf("Failed to write to output file: %s", err.Error()))
		}
	}
}
