// Package entrydiff computes partition-level diffs between scatter files.
package entrydiff

import (
	"fmt"
	"strings"

	"github.com/nathantilsley/scatter-flash/internal/flash/domain"
)

// Adapter implements ports.DiffPort by comparing the accepted flash plans
// of two scatter files rather than their text.
type Adapter struct {
	scanner *domain.Scanner
}

// New creates a new entry diff adapter that extracts plans with scanner.
func New(scanner *domain.Scanner) *Adapter {
	return &Adapter{scanner: scanner}
}

// ComputeDiff extracts both plans and lists partition changes, one per line:
//
//	+ dtbo: dtbo.img
//	- cache: cache.img
//	~ boot: boot.img -> boot-v2.img
//
// Returns an empty string if the plans are identical.
func (a *Adapter) ComputeDiff(baseName, headName string, base, head []byte) string {
	changes := domain.CompareEntries(
		a.scanner.Extract(string(base)),
		a.scanner.Extract(string(head)),
	)
	if len(changes) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n", baseName)
	fmt.Fprintf(&sb, "+++ %s\n\n", headName)
	sb.WriteString(FormatChanges(changes))
	return strings.TrimSpace(sb.String())
}

// FormatChanges renders changes one per line.
func FormatChanges(changes []domain.EntryChange) string {
	var sb strings.Builder
	for _, c := range changes {
		switch c.Kind {
		case domain.ChangeAdded:
			fmt.Fprintf(&sb, "+ %s: %s\n", c.PartitionName, c.NewFile)
		case domain.ChangeRemoved:
			fmt.Fprintf(&sb, "- %s: %s\n", c.PartitionName, c.OldFile)
		case domain.ChangeFile:
			fmt.Fprintf(&sb, "~ %s: %s -> %s\n", c.PartitionName, c.OldFile, c.NewFile)
		}
	}
	return sb.String()
}
