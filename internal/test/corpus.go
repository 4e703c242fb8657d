package test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

// A Corpus is a table-driven test whose table lives in the file system. Each
// file with the given extension under Root is a test case, and each of its
// expected outputs lives next to it in a file with an extra extension (so the
// case "if.yaml" has its minimal output in "if.yaml.min.js").
//
// Setting the environment variable named by Refresh to a glob rewrites the
// expected outputs of every case whose name matches the glob instead of
// comparing against them.
type Corpus struct {
	// Relative to the directory of the test file that calls Run
	Root string

	Refresh string

	// Without the leading dot
	Extension string

	// A missing output file is treated as expecting the empty string
	Outputs []string

	// Returns one string per element of Outputs
	Test func(t *testing.T, name string, text string) []string
}

func (c Corpus) Run(t *testing.T) {
	t.Helper()
	testDir := callerDir()
	root := filepath.Join(testDir, c.Root)

	names, err := doublestar.Glob(os.DirFS(root), "**/*."+c.Extension)
	if err != nil {
		t.Fatalf("corpus: cannot search %q: %v", root, err)
	}
	if len(names) == 0 {
		t.Fatalf("corpus: no *.%s files found in %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpus: invalid glob %s=%q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpus: refreshing expected outputs because %s=%s", c.Refresh, refresh)
	}

	for _, name := range names {
		name := name
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(root, filepath.FromSlash(name))
			bytes, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpus: cannot read %q: %v", path, err)
			}

			results := c.Test(t, name, string(bytes))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpus: expected %d outputs but got %d", len(c.Outputs), len(results))
			}

			shouldRefresh := refresh != "" && doublestar.MatchUnvalidated(refresh, name)
			for i, extension := range c.Outputs {
				outputPath := path + "." + extension

				if shouldRefresh {
					if results[i] == "" {
						if err := os.Remove(outputPath); err != nil && !errors.Is(err, os.ErrNotExist) {
							t.Errorf("corpus: cannot delete %q: %v", outputPath, err)
						}
					} else if err := os.WriteFile(outputPath, []byte(results[i]), 0644); err != nil {
						t.Errorf("corpus: cannot write %q: %v", outputPath, err)
					}
					continue
				}

				expected, err := os.ReadFile(outputPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpus: cannot read %q: %v", outputPath, err)
					continue
				}
				if results[i] != string(expected) {
					t.Errorf("output mismatch for %q:\n%s", outputPath, UnifiedDiff(string(expected), results[i]))
				}
			}
		})
	}
}

func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("corpus: could not determine the test file's directory")
	}
	return filepath.Dir(file)
}
