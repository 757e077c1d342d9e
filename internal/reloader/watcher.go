// Package reloader watches the site configuration for changes and triggers
// a development reload after the writes settle.
package reloader

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/overlaygo/internal/ctxlog"
)

// DefaultDebounce is the quiet period after the last change before a reload.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls onChange once per burst of changes to the watched files.
// onChange runs on the watcher goroutine, so two reloads never overlap.
type Watcher struct {
	paths    []string
	ext      string
	debounce time.Duration
	onChange func(ctx context.Context) error
	ready    chan struct{}
}

// New creates a watcher for the .hcl files under paths. A path may be a
// file or a directory.
func New(onChange func(ctx context.Context) error, paths ...string) *Watcher {
	return &Watcher{
		paths:    paths,
		ext:      ".hcl",
		debounce: DefaultDebounce,
		onChange: onChange,
		ready:    make(chan struct{}),
	}
}

// WithDebounce sets the debounce duration.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Ready is closed once every path is being watched.
func (w *Watcher) Ready() <-chan struct{} { return w.ready }

// Watch blocks until ctx is cancelled. A failing onChange is logged and
// watching continues.
func (w *Watcher) Watch(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	files := make(map[string]bool)
	var dirs []string
	for _, path := range w.paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		info, err := os.Stat(abs)
		switch {
		case err != nil:
			return err
		case info.IsDir():
			if err := addTree(fsw, abs); err != nil {
				return err
			}
			dirs = append(dirs, abs)
		default:
			// Watch the directory so editors that replace the file are seen.
			if err := fsw.Add(filepath.Dir(abs)); err != nil {
				return err
			}
			files[abs] = true
		}
	}
	close(w.ready)
	logger.Info("Watching configuration for changes.", "paths", w.paths, "debounce", w.debounce.String())

	relevant := func(name string) bool {
		if files[name] {
			return true
		}
		if !strings.HasSuffix(name, w.ext) {
			return false
		}
		for _, d := range dirs {
			if strings.HasPrefix(name, d+string(filepath.Separator)) {
				return true
			}
		}
		return false
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && len(dirs) > 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(fsw, event.Name); err != nil {
						logger.Warn("Failed to watch new directory.", "path", event.Name, "error", err)
					}
					continue
				}
			}
			if !relevant(event.Name) || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) {
				continue
			}
			logger.Debug("Configuration change detected.", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.onChange(ctx); err != nil {
				logger.Warn("Reload after configuration change failed.", "error", err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error.", "error", err)

		case <-ctx.Done():
			logger.Debug("Configuration watcher stopped.")
			return nil
		}
	}
}

func addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
}
