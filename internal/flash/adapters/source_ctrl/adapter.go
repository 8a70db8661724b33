// Package sourcectrl provides scatter file fetching from GitHub repositories.
package sourcectrl

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gogithub "github.com/google/go-github/v68/github"

	"github.com/nathantilsley/scatter-flash/internal/flash/domain"
)

// Adapter implements ports.ScatterSource by reading file contents through
// the GitHub contents API.
type Adapter struct {
	client *gogithub.Client
}

// New creates a new source control adapter.
func New(client *gogithub.Client) *Adapter {
	return &Adapter{client: client}
}

// ReadScatter fetches the file at ref.Path from ref.Owner/ref.Repo at ref.Ref.
// An empty ref reads from the default branch.
func (a *Adapter) ReadScatter(ctx context.Context, ref domain.SourceRef) ([]byte, error) {
	if ref.Kind != domain.SourceGitHub {
		return nil, fmt.Errorf("source control adapter cannot read %s", ref)
	}

	file, _, resp, err := a.client.Repositories.GetContents(
		ctx,
		ref.Owner,
		ref.Repo,
		ref.Path,
		&gogithub.RepositoryContentGetOptions{
			Ref: ref.Ref,
		},
	)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewNotFoundError(ref.Owner+"/"+ref.Repo+"/"+ref.Path, ref.Ref)
	}
	if err != nil {
		return nil, fmt.Errorf("getting contents of %s: %w", ref, err)
	}
	if file == nil {
		return nil, errors.New("path is a directory, not a scatter file: " + ref.Path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decoding contents of %s: %w", ref, err)
	}
	return []byte(content), nil
}
