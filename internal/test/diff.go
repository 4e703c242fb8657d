package test

import (
	"fmt"
	"strings"

	"github.com/esgen/esgen/internal/logger"
	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders a line-by-line diff from "old" to "new". Unchanged lines are
// dimmed, removed lines are prefixed with "-" and added lines with "+".
func Diff(old string, new string, color bool) string {
	a := strings.Split(old, "\n")
	b := strings.Split(new, "\n")
	var result []string

	line := func(prefix string, text string, c string) {
		if color {
			result = append(result, fmt.Sprintf("%s%s%s%s", c, prefix, text, logger.TerminalColors.Reset))
		} else {
			result = append(result, prefix+text)
		}
	}

	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'e':
			for _, text := range a[op.I1:op.I2] {
				line(" ", text, logger.TerminalColors.Dim)
			}
		case 'd':
			for _, text := range a[op.I1:op.I2] {
				line("-", text, logger.TerminalColors.Red)
			}
		case 'i':
			for _, text := range b[op.J1:op.J2] {
				line("+", text, logger.TerminalColors.Green)
			}
		case 'r':
			for _, text := range a[op.I1:op.I2] {
				line("-", text, logger.TerminalColors.Red)
			}
			for _, text := range b[op.J1:op.J2] {
				line("+", text, logger.TerminalColors.Green)
			}
		}
	}

	return strings.Join(result, "\n")
}

// UnifiedDiff is like Diff but only shows a few lines of context around each
// change, which keeps failures in large golden files readable
func UnifiedDiff(want string, got string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
