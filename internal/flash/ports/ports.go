// Package ports declares the interfaces the flash service depends on.
package ports

import (
	"context"

	"github.com/nathantilsley/scatter-flash/internal/flash/domain"
)

// ScatterSource reads the raw text of a scatter file.
type ScatterSource interface {
	ReadScatter(ctx context.Context, ref domain.SourceRef) ([]byte, error)
}

// TreeLister lists every file path in a repository at a ref.
type TreeLister interface {
	ListFiles(ctx context.Context, owner, repo, ref string) ([]string, error)
}

// DiffPort compares two documents and returns a human-readable diff, or an
// empty string when they are equivalent.
type DiffPort interface {
	ComputeDiff(baseName, headName string, base, head []byte) string
}
