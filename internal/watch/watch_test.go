package watch

// Notes:
// - Run tests touch the watched file repeatedly until a rebuild is observed,
//   because fsnotify registration happens inside Run and early writes may be
//   missed.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("no files", func(t *testing.T) {
		t.Parallel()

		if _, err := New(t.TempDir(), nil); !errors.Is(err, ErrNoFiles) {
			t.Errorf("New() error = %v, want ErrNoFiles", err)
		}
	})

	t.Run("options applied", func(t *testing.T) {
		t.Parallel()

		w, err := New(t.TempDir(), []string{"index.html"}, WithDebounce(50*time.Millisecond), WithDebounce(0))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if w.debounce != 50*time.Millisecond {
			t.Errorf("debounce = %v, want 50ms (non-positive ignored)", w.debounce)
		}
	})
}

func TestWatcher_Relevant(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := New(dir, []string{"index.html", "logo_v2.png"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"input write", fsnotify.Event{Name: filepath.Join(dir, "index.html"), Op: fsnotify.Write}, true},
		{"asset create", fsnotify.Event{Name: filepath.Join(dir, "logo_v2.png"), Op: fsnotify.Create}, true},
		{"asset removed", fsnotify.Event{Name: filepath.Join(dir, "logo_v2.png"), Op: fsnotify.Remove}, true},
		{"input renamed", fsnotify.Event{Name: filepath.Join(dir, "index.html"), Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: filepath.Join(dir, "index.html"), Op: fsnotify.Chmod}, false},
		{"output write", fsnotify.Event{Name: filepath.Join(dir, "index_bundled.html"), Op: fsnotify.Write}, false},
		{"temp file", fsnotify.Event{Name: filepath.Join(dir, ".index_bundled.html.tmp-1"), Op: fsnotify.Create}, false},
	}

	for _, tt := range tests {
		if got := w.relevant(tt.ev); got != tt.want {
			t.Errorf("%s: relevant() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "index.html")
	if err := os.WriteFile(input, []byte("<html></html>"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	w, err := New(dir, []string{"index.html"}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rebuilds atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			rebuilds.Add(1)
			return nil
		})
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for rebuilds.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("no rebuild after writing the watched file")
		case <-tick.C:
			if err := os.WriteFile(input, []byte("<html>changed</html>"), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil on cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestWatcher_Run_RebuildErrorReported(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	asset := filepath.Join(dir, "logo_v2.png")

	var reported atomic.Int32
	w, err := New(dir, []string{"logo_v2.png"},
		WithDebounce(20*time.Millisecond),
		WithErrorHandler(func(error) { reported.Add(1) }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error { return errors.New("boom") })
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for reported.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("rebuild error was not reported")
		case <-tick.C:
			if err := os.WriteFile(asset, []byte{0x89}, 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
}

func TestWatcher_Run_MissingDir(t *testing.T) {
	t.Parallel()

	w, err := New(filepath.Join(t.TempDir(), "missing"), []string{"index.html"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Run(context.Background(), func(context.Context) error { return nil }); err == nil {
		t.Error("Run() = nil, want error for missing directory")
	}
}
