package domain

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// GitHubPrefix marks a source reference that lives in a GitHub repository.
const GitHubPrefix = "gh:"

// SourceKind tells where a scatter file is read from.
type SourceKind int

const (
	SourceLocal  SourceKind = iota // File on disk
	SourceStdin                    // Standard input
	SourceGitHub                   // File in a GitHub repository
)

// SourceRef locates a scatter file.
type SourceRef struct {
	Kind  SourceKind
	Owner string
	Repo  string
	Ref   string // Empty means the repository default branch
	Path  string
}

// String renders the reference in the form ParseSourceRef accepts.
func (r SourceRef) String() string {
	switch r.Kind {
	case SourceStdin:
		return "-"
	case SourceGitHub:
		s := GitHubPrefix + r.Owner + "/" + r.Repo
		if r.Ref != "" {
			s += "@" + r.Ref
		}
		if r.Path != "" {
			s += ":" + r.Path
		}
		return s
	}
	return r.Path
}

// ParseSourceRef parses a scatter file location. Accepted forms:
//   - path/to/MT6781_Android_scatter.xml
//   - - (standard input)
//   - gh:owner/repo:path/to/file.xml
//   - gh:owner/repo@ref:path/to/file.xml
func ParseSourceRef(s string) (SourceRef, error) {
	switch {
	case s == "":
		return SourceRef{}, errors.New("empty scatter source")
	case s == "-":
		return SourceRef{Kind: SourceStdin}, nil
	case strings.HasPrefix(s, GitHubPrefix):
		return parseGitHubRef(strings.TrimPrefix(s, GitHubPrefix), true)
	}
	return SourceRef{Kind: SourceLocal, Path: s}, nil
}

// ParseRepoRef parses gh:owner/repo[@ref], the repository part of a GitHub
// source reference. A trailing :path is accepted and kept.
func ParseRepoRef(s string) (SourceRef, error) {
	if !strings.HasPrefix(s, GitHubPrefix) {
		return SourceRef{}, fmt.Errorf("invalid repository %q, expected: gh:owner/repo[@ref]", s)
	}
	return parseGitHubRef(strings.TrimPrefix(s, GitHubPrefix), false)
}

func parseGitHubRef(s string, requirePath bool) (SourceRef, error) {
	repoPart, filePath, hasPath := strings.Cut(s, ":")
	if requirePath && (!hasPath || filePath == "") {
		return SourceRef{}, fmt.Errorf(
			"invalid GitHub source %q, expected: gh:owner/repo[@ref]:path",
			GitHubPrefix+s,
		)
	}

	ownerRepo, ref, hasRef := strings.Cut(repoPart, "@")
	if hasRef && ref == "" {
		return SourceRef{}, fmt.Errorf("invalid GitHub source %q: empty ref", GitHubPrefix+s)
	}

	parts := strings.Split(ownerRepo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return SourceRef{}, fmt.Errorf("invalid GitHub source %q: expected owner/repo", GitHubPrefix+s)
	}

	return SourceRef{
		Kind:  SourceGitHub,
		Owner: parts[0],
		Repo:  parts[1],
		Ref:   ref,
		Path:  strings.TrimPrefix(filePath, "/"),
	}, nil
}

// ScatterSuffix is the file name suffix MediaTek tooling gives scatter files.
const ScatterSuffix = "_scatter.xml"

// FilterScatterFiles returns the unique paths that look like scatter files,
// preserving order.
func FilterScatterFiles(files []string) []string {
	seen := make(map[string]struct{})
	var scatter []string
	for _, f := range files {
		if !strings.HasSuffix(strings.ToLower(path.Base(f)), ScatterSuffix) {
			continue
		}
		if _, ok := seen[f]; !ok {
			seen[f] = struct{}{}
			scatter = append(scatter, f)
		}
	}
	return scatter
}
