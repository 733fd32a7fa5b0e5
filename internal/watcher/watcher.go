// File: internal/watcher/watcher.go
//
// Package watcher reloads spec snapshots when their documents change on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/xkilldash9x/gridspec/internal/config"
	"github.com/xkilldash9x/gridspec/internal/profile"
)

// Watcher publishes the latest valid snapshot. Readers call Current and never block.
// A reload that fails keeps the previous snapshot in place.
type Watcher struct {
	logger    *zap.Logger
	loader    *profile.Loader
	debouncer *Debouncer

	current  atomic.Pointer[profile.Snapshot]
	onReload func(*profile.Snapshot)

	// paths are the cleaned document paths; events for any other file are ignored.
	paths map[string]struct{}
	fire  chan struct{}
	done  chan struct{}
}

// New creates a Watcher serving initial until the first successful reload.
func New(loader *profile.Loader, initial *profile.Snapshot, cfg config.WatchConfig, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Watcher{
		logger:    logger.Named("watcher"),
		loader:    loader,
		debouncer: NewDebouncer(cfg.Debounce),
		paths:     make(map[string]struct{}),
		fire:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	for _, p := range loader.Paths() {
		w.paths[filepath.Clean(p)] = struct{}{}
	}
	w.current.Store(initial)
	return w
}

// OnReload registers fn to run after every successful reload. It must be called before
// Start and fn runs on the watcher goroutine.
func (w *Watcher) OnReload(fn func(*profile.Snapshot)) { w.onReload = fn }

// Current returns the latest valid snapshot.
func (w *Watcher) Current() *profile.Snapshot { return w.current.Load() }

// Done is closed once the watcher goroutine has exited.
func (w *Watcher) Done() <-chan struct{} { return w.done }

// Start watches the directories holding the spec documents until ctx is cancelled.
// Directories are watched rather than files so editors that replace files on save are
// still seen.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	dirs := make(map[string]struct{})
	for p := range w.paths {
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	w.logger.Info("Watching spec documents", zap.Int("files", len(w.paths)), zap.Duration("debounce", w.debouncer.Duration()))
	go w.loop(ctx, fsw)
	return nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer close(w.done)
	defer fsw.Close()
	defer w.debouncer.Cancel()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping spec watcher.")
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Spec document changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			w.debouncer.Trigger(func() {
				select {
				case w.fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("File watcher error", zap.Error(err))

		case <-w.fire:
			w.Reload(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if _, ok := w.paths[filepath.Clean(event.Name)]; !ok {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// Reload loads a new snapshot and publishes it. On failure the current snapshot stays and
// the error is returned.
func (w *Watcher) Reload(ctx context.Context) error {
	snap, err := w.loader.Load(ctx)
	if err != nil {
		previous := "none"
		if cur := w.current.Load(); cur != nil {
			previous = cur.ID.String()
		}
		w.logger.Error("Spec reload failed; keeping previous snapshot", zap.Error(err), zap.String("snapshot_id", previous))
		return err
	}

	w.current.Store(snap)
	w.logger.Info("Published spec snapshot", zap.String("snapshot_id", snap.ID.String()))
	if w.onReload != nil {
		w.onReload(snap)
	}
	return nil
}
