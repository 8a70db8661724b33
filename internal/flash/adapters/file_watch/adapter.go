// Package filewatch re-triggers work when a scatter file changes on disk.
package filewatch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Adapter watches a single file through its parent directory, so editors
// that replace the file on save are still seen.
type Adapter struct {
	debounce time.Duration
	logger   *slog.Logger
}

// New creates a watcher that waits debounce after the last event before
// calling back.
func New(debounce time.Duration, logger *slog.Logger) *Adapter {
	return &Adapter{debounce: debounce, logger: logger}
}

// Watch blocks until ctx is cancelled, calling onChange once per burst of
// writes to path.
func (a *Adapter) Watch(ctx context.Context, path string, onChange func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			a.logger.Warn("failed to close watcher", "error", err)
		}
	}()

	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	a.logger.Debug("watching scatter file", "path", target)

	timer := time.NewTimer(a.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			a.logger.Debug("scatter file changed", "op", ev.Op.String())
			timer.Reset(a.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watch error", "error", err)

		case <-timer.C:
			onChange()
		}
	}
}
