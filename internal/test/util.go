package test

import (
	"os"
	"testing"

	"github.com/esgen/esgen/internal/logger"
)

func AssertEqual(t *testing.T, observed interface{}, expected interface{}) {
	t.Helper()
	if observed != expected {
		t.Fatalf("%s != %s", observed, expected)
	}
}

func AssertEqualWithDiff(t *testing.T, observed string, expected string) {
	t.Helper()
	if observed != expected {
		stderr := logger.GetTerminalInfo(os.Stderr)
		t.Fatal("\n" + Diff(expected, observed, stderr.UseColorEscapes))
	}
}
