// Package app wires scatter sources, the extractor and the renderer into
// the operations the CLI exposes.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nathantilsley/scatter-flash/internal/flash/domain"
	"github.com/nathantilsley/scatter-flash/internal/flash/ports"
)

// ErrNoGitHub is returned for GitHub references when no GitHub source is wired.
var ErrNoGitHub = errors.New("github sources are not configured")

// Service builds and compares flash plans.
type Service struct {
	local        ports.ScatterSource
	github       ports.ScatterSource // nil when GitHub access is not configured
	tree         ports.TreeLister    // nil when GitHub access is not configured
	scanner      *domain.Scanner
	renderer     domain.Renderer
	unifiedDiff  ports.DiffPort
	semanticDiff ports.DiffPort
	logger       *slog.Logger
}

// Options holds the collaborators of a Service. GitHub and Tree may be nil.
type Options struct {
	Local        ports.ScatterSource
	GitHub       ports.ScatterSource
	Tree         ports.TreeLister
	Scanner      *domain.Scanner
	Renderer     domain.Renderer
	UnifiedDiff  ports.DiffPort
	SemanticDiff ports.DiffPort
	Logger       *slog.Logger
}

// New creates a Service.
func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		local:        opts.Local,
		github:       opts.GitHub,
		tree:         opts.Tree,
		scanner:      opts.Scanner,
		renderer:     opts.Renderer,
		unifiedDiff:  opts.UnifiedDiff,
		semanticDiff: opts.SemanticDiff,
		logger:       logger,
	}
}

func (s *Service) read(ctx context.Context, ref domain.SourceRef) ([]byte, error) {
	src := s.local
	if ref.Kind == domain.SourceGitHub {
		if s.github == nil {
			return nil, ErrNoGitHub
		}
		src = s.github
	}

	data, err := src.ReadScatter(ctx, ref)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("read scatter file", "source", ref.String(), "bytes", len(data))
	return data, nil
}

// Plan reads the scatter file at ref and returns its accepted entries.
func (s *Service) Plan(ctx context.Context, ref domain.SourceRef) ([]domain.PartitionEntry, error) {
	data, err := s.read(ctx, ref)
	if err != nil {
		return nil, err
	}
	entries := s.scanner.Extract(string(data))
	s.logger.Debug("extracted flash plan", "source", ref.String(), "partitions", domain.PartitionNames(entries))
	return entries, nil
}

// Render writes the fastboot commands for the scatter file at ref to w.
func (s *Service) Render(ctx context.Context, ref domain.SourceRef, w io.Writer) error {
	entries, err := s.Plan(ctx, ref)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		s.logger.Warn("no partitions found", "source", ref.String())
	}
	return s.renderer.Print(w, entries)
}

// Diff compares the flash plans of two scatter files.
func (s *Service) Diff(ctx context.Context, base, head domain.SourceRef) (domain.PlanDiff, error) {
	result := domain.PlanDiff{
		BaseLabel: planLabel(base),
		HeadLabel: planLabel(head),
	}

	baseData, err := s.read(ctx, base)
	if err != nil {
		return s.failed(result, "base", err)
	}
	headData, err := s.read(ctx, head)
	if err != nil {
		return s.failed(result, "head", err)
	}

	baseEntries := s.scanner.Extract(string(baseData))
	headEntries := s.scanner.Extract(string(headData))
	result.Changes = domain.CompareEntries(baseEntries, headEntries)

	if s.unifiedDiff != nil {
		result.UnifiedDiff = s.unifiedDiff.ComputeDiff(
			result.BaseLabel,
			result.HeadLabel,
			s.renderedPlan(baseEntries),
			s.renderedPlan(headEntries),
		)
	}
	if s.semanticDiff != nil {
		result.SemanticDiff = s.semanticDiff.ComputeDiff(result.BaseLabel, result.HeadLabel, baseData, headData)
	}

	added, removed, changed := domain.CountByKind(result.Changes)
	if len(result.Changes) == 0 && result.UnifiedDiff == "" {
		result.Status = domain.StatusUnchanged
		result.Summary = "No changes detected."
	} else {
		result.Status = domain.StatusChanged
		result.Summary = fmt.Sprintf(
			"%d partition(s) added, %d removed, %d with a different image.",
			added, removed, changed,
		)
	}
	return result, nil
}

func (s *Service) failed(result domain.PlanDiff, side string, err error) (domain.PlanDiff, error) {
	result.Status = domain.StatusError
	result.Summary = fmt.Sprintf("reading %s: %v", side, err)
	return result, fmt.Errorf("reading %s: %w", side, err)
}

func (s *Service) renderedPlan(entries []domain.PartitionEntry) []byte {
	lines := s.renderer.Render(entries)
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

func planLabel(ref domain.SourceRef) string {
	if ref.Kind == domain.SourceGitHub {
		return domain.FormatPlanLabel(ref.Owner+"/"+ref.Repo+"/"+ref.Path, ref.Ref)
	}
	return domain.FormatPlanLabel(ref.String(), "")
}

// ListScatterFiles returns the scatter files in owner/repo at ref.
func (s *Service) ListScatterFiles(ctx context.Context, owner, repo, ref string) ([]string, error) {
	if s.tree == nil {
		return nil, ErrNoGitHub
	}
	files, err := s.tree.ListFiles(ctx, owner, repo, ref)
	if err != nil {
		return nil, fmt.Errorf("listing %s/%s: %w", owner, repo, err)
	}
	scatter := domain.FilterScatterFiles(files)
	s.logger.Debug("listed repository", "files", len(files), "scatter_files", len(scatter))
	return scatter, nil
}
