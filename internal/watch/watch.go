// Package watch re-runs a bundling pass when its source files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups bursts of events (editors often write a file
// several times on save) into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// ErrNoFiles indicates a watcher was created with nothing to watch.
var ErrNoFiles = errors.New("watch: no files to watch")

// Watcher calls a function whenever one of a fixed set of files in a
// directory is created, written, renamed or removed.
type Watcher struct {
	dir      string
	names    map[string]bool
	debounce time.Duration
	onError  func(error)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period required before a rebuild fires.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler receives watcher and rebuild errors. Watching continues.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) {
		if fn != nil {
			w.onError = fn
		}
	}
}

// New creates a Watcher for the named files inside dir. Names are base
// names; events for any other file in dir, including the bundle output,
// are ignored.
func New(dir string, names []string, opts ...Option) (*Watcher, error) {
	if len(names) == 0 {
		return nil, ErrNoFiles
	}
	w := &Watcher{
		dir:      dir,
		names:    make(map[string]bool, len(names)),
		debounce: DefaultDebounce,
		onError:  func(error) {},
	}
	for _, n := range names {
		w.names[filepath.Base(n)] = true
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run blocks until ctx is done, calling rebuild after each debounced burst
// of relevant events. Rebuilds run on the calling goroutine, one at a time.
// Returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context, rebuild func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	// Watch the directory, not the files: editors that save by rename
	// would otherwise detach a per-file watch.
	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.onError(err)
		case <-timer.C:
			if err := rebuild(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				w.onError(err)
			}
		}
	}
}

// relevant reports whether ev concerns a watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !w.names[filepath.Base(ev.Name)] {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) ||
		ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}
