package codegen

import (
	"testing"

	"github.com/esgen/esgen/internal/test"
	"github.com/esgen/esgen/pkg/js_ast"
	"gopkg.in/yaml.v3"
)

// Run with ESGEN_REFRESH='**' to rewrite the expected outputs
func TestCorpus(t *testing.T) {
	test.Corpus{
		Root:      "testdata/corpus",
		Refresh:   "ESGEN_REFRESH",
		Extension: "yaml",
		Outputs:   []string{"min.js", "fmt.js"},
		Test: func(t *testing.T, name string, text string) []string {
			var value interface{}
			if err := yaml.Unmarshal([]byte(text), &value); err != nil {
				t.Fatal(err)
			}
			root, err := js_ast.FromValue(value)
			if err != nil {
				t.Fatal(err)
			}

			minimal, err := Generate(root, nil)
			if err != nil {
				t.Fatal(err)
			}
			formatted, err := Generate(root, NewFormatted(FormatOptions{}))
			if err != nil {
				t.Fatal(err)
			}

			// Tracking locations must not change the output
			tracked, _, err := GenerateWithLocation(root, nil)
			if err != nil {
				t.Fatal(err)
			}
			test.AssertEqualWithDiff(t, tracked, minimal)

			return []string{minimal, formatted}
		},
	}.Run(t)
}
