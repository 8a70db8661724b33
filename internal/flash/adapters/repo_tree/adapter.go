// Package repotree lists the files of a GitHub repository.
package repotree

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v68/github"
)

// Adapter implements ports.TreeLister with the git trees API.
type Adapter struct {
	client *github.Client
}

// New creates a new repository tree adapter.
func New(client *github.Client) *Adapter {
	return &Adapter{client: client}
}

// ListFiles returns the path of every blob in owner/repo at ref. An empty ref
// lists the default branch.
func (a *Adapter) ListFiles(ctx context.Context, owner, repo, ref string) ([]string, error) {
	client := a.client

	if ref == "" {
		r, _, err := client.Repositories.Get(ctx, owner, repo)
		if err != nil {
			return nil, fmt.Errorf("getting repository: %w", err)
		}
		ref = r.GetDefaultBranch()
	}

	tree, _, err := client.Git.GetTree(ctx, owner, repo, ref, true)
	if err != nil {
		return nil, fmt.Errorf("getting tree at %s: %w", ref, err)
	}
	if tree.GetTruncated() {
		slog.Warn("repository tree truncated, listing is incomplete", "owner", owner, "repo", repo, "ref", ref)
	}

	var files []string
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		files = append(files, entry.GetPath())
	}
	return files, nil
}
