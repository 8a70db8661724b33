// Package linediff computes unified line diffs of rendered flash plans.
package linediff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const contextLines = 3

// Adapter implements ports.DiffPort using go-difflib.
type Adapter struct{}

// New creates a new line diff adapter.
func New() *Adapter {
	return &Adapter{}
}

// ComputeDiff returns a unified diff of base and head, or an empty string
// if they are identical.
func (a *Adapter) ComputeDiff(baseName, headName string, base, head []byte) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(base)),
		B:        difflib.SplitLines(string(head)),
		FromFile: baseName,
		ToFile:   headName,
		Context:  contextLines,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		// Only returned on write failures, which a strings.Builder never has.
		return ""
	}
	return strings.TrimSpace(out)
}
