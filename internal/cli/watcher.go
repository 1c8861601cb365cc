package cli

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/toyz/autointerface/internal/errors"
	"github.com/toyz/autointerface/internal/utils"
)

// defaultDebounce collapses the burst of events editors produce for a single save
const defaultDebounce = 200 * time.Millisecond

// Watcher reports changes to a fixed set of manifest files. It watches the parent
// directories so editors that save by renaming a temporary file are still seen.
type Watcher struct {
	watcher     *fsnotify.Watcher
	files       map[string]struct{}
	debounce    time.Duration
	diagnostics *utils.DiagnosticSystem
}

// NewWatcher starts watching the given files
func NewWatcher(paths []string, diagnostics *utils.DiagnosticSystem) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapFileSystemError("watch", "manifests", err)
	}

	w := &Watcher{
		watcher:     fw,
		files:       make(map[string]struct{}),
		debounce:    defaultDebounce,
		diagnostics: diagnostics,
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		clean := filepath.Clean(p)
		w.files[clean] = struct{}{}
		dirs[filepath.Dir(clean)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.WrapFileSystemError("watch", dir, err)
		}
	}

	return w, nil
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run calls onChange with the sorted set of changed manifests after each debounced burst
// of events, until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) {
	w.loop(ctx, w.watcher.Events, w.watcher.Errors, onChange)
}

func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, onChange func(paths []string)) {
	pending := make(map[string]struct{})
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			path, relevant := w.relevant(event)
			if !relevant {
				continue
			}
			w.diagnostics.Debug("Detected %s on %s", event.Op, path)
			pending[path] = struct{}{}
			fire = time.After(w.debounce)

		case err, ok := <-errs:
			if !ok {
				return
			}
			w.diagnostics.Warn("Watcher error: %v", err)

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			pending = make(map[string]struct{})
			onChange(changed)
		}
	}
}

// relevant reports whether the event writes or creates one of the watched files
func (w *Watcher) relevant(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return "", false
	}
	path := filepath.Clean(event.Name)
	_, ok := w.files[path]
	return path, ok
}

// Watch renders every manifest once, then re-renders changed manifests until ctx is done.
// Render failures are reported and do not stop watching.
func (g *Generator) Watch(ctx context.Context) error {
	if err := g.config.Validate(); err != nil {
		return err
	}

	w, err := NewWatcher(g.config.Manifests, g.diagnostics)
	if err != nil {
		return err
	}
	defer w.Close()

	g.summary = GenerationSummary{}
	if err := g.RenderAll(g.config.Manifests); err != nil {
		g.diagnostics.Warn("Initial render had failures; watching for fixes")
	}
	g.diagnostics.Info("Watching %d manifest(s) for changes", len(g.config.Manifests))

	w.Run(ctx, g.rerender)
	return nil
}

// rerender renders the changed manifests. The summary describes the latest render only.
func (g *Generator) rerender(paths []string) {
	g.summary = GenerationSummary{}
	g.diagnostics.Info("Re-rendering %d changed manifest(s)", len(paths))
	if err := g.RenderAll(paths); err != nil {
		g.diagnostics.Warn("Re-render had failures")
	}
}
