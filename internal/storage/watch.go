package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"minuteclock/internal/ui/preferences"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings whenever the file changes on disk and passes
// them to onChange when they differ from the last known values. The watch
// ends when ctx is cancelled; the returned channel is closed once it has.
func (store *Store) Watch(ctx context.Context, onChange func(preferences.Settings)) (<-chan struct{}, error) {
	dir := filepath.Dir(store.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create settings watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory instead.
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch config directory: %w", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != store.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				store.reload(onChange)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				store.logger.Warn("settings watcher", "error", err)
			}
		}
	}()
	return done, nil
}

func (store *Store) reload(onChange func(preferences.Settings)) {
	settings, err := store.readFile()
	if err != nil {
		store.logger.Warn("reload settings", "path", store.path, "error", err)
		return
	}
	store.applyEnvOverrides(&settings)

	store.mu.Lock()
	changed := settings != store.last
	store.last = settings
	store.mu.Unlock()

	if !changed {
		return
	}
	store.logger.Info("settings changed on disk", "path", store.path)
	if onChange != nil {
		onChange(settings)
	}
}
