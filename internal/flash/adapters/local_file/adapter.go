// Package localfile reads scatter files from disk or standard input.
package localfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/nathantilsley/scatter-flash/internal/flash/domain"
)

// Adapter implements ports.ScatterSource for local paths and stdin.
type Adapter struct {
	stdin io.Reader
}

// New creates a local file adapter reading "-" from os.Stdin.
func New() *Adapter {
	return &Adapter{stdin: os.Stdin}
}

// NewWithStdin creates a local file adapter reading "-" from r.
func NewWithStdin(r io.Reader) *Adapter {
	return &Adapter{stdin: r}
}

// ReadScatter reads the whole file into memory.
func (a *Adapter) ReadScatter(_ context.Context, ref domain.SourceRef) ([]byte, error) {
	switch ref.Kind {
	case domain.SourceStdin:
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	case domain.SourceLocal:
	default:
		return nil, fmt.Errorf("local file adapter cannot read %s", ref)
	}

	//nolint:gosec // G304: Reading a user-supplied scatter file is the point
	data, err := os.ReadFile(ref.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", ref.Path, domain.NewNotFoundError(ref.Path, ""))
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ref.Path, err)
	}
	return data, nil
}
