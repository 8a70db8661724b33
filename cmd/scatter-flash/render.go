package main

import (
	"context"
	"errors"

	filewatch "github.com/nathantilsley/scatter-flash/internal/flash/adapters/file_watch"
	"github.com/nathantilsley/scatter-flash/internal/flash/domain"
)

func (c *cli) runRender(ctx context.Context, source string) error {
	ref, err := domain.ParseSourceRef(source)
	if err != nil {
		return err
	}
	svc, err := c.service()
	if err != nil {
		return err
	}
	return svc.Render(ctx, ref, c.stdout)
}

// runWatch renders once, then again after every change until ctx is done.
// Errors after the first render are logged so a half-saved file does not
// end the session.
func (c *cli) runWatch(ctx context.Context, source string) error {
	ref, err := domain.ParseSourceRef(source)
	if err != nil {
		return err
	}
	if ref.Kind != domain.SourceLocal {
		return errors.New("--watch needs a local scatter file")
	}
	svc, err := c.service()
	if err != nil {
		return err
	}
	if err := svc.Render(ctx, ref, c.stdout); err != nil {
		return err
	}

	watcher := filewatch.New(c.cfg.Watch.Debounce, c.logger)
	return watcher.Watch(ctx, ref.Path, func() {
		c.logger.Info("scatter file changed, re-rendering", "path", ref.Path)
		if err := svc.Render(ctx, ref, c.stdout); err != nil {
			c.logger.Error("render failed", "error", err)
		}
	})
}
