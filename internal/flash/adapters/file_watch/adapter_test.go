package filewatch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestAdapter_Watch(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "MT6781_Android_scatter.xml")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(target, []byte("v1"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	adapter := New(10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	go func() {
		done <- adapter.Watch(ctx, target, func() { calls.Add(1) })
	}()

	// The watch is registered asynchronously; keep writing until it is seen.
	deadline := time.Now().Add(5 * time.Second)
	for calls.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("onChange was not called after writing the scatter file")
		}
		if err := os.WriteFile(other, []byte("ignored"), 0o600); err != nil {
			t.Fatalf("writing other file: %v", err)
		}
		if err := os.WriteFile(target, []byte("v2"), 0o600); err != nil {
			t.Fatalf("writing scatter file: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch() did not return after cancel")
	}
}

func TestAdapter_Watch_MissingDirectory(t *testing.T) {
	adapter := New(time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	missing := filepath.Join(t.TempDir(), "gone", "scatter.xml")
	if err := adapter.Watch(context.Background(), missing, func() {}); err == nil {
		t.Fatal("Watch() expected error for missing directory")
	}
}
