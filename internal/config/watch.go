package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config at path whenever it is written or replaced and
// passes the result to fn, until ctx is done. A config that fails to load is
// reported to fn as an error and the previous one should stay in use.
//
// The parent directory is watched rather than the file so that editors which
// save by renaming a temp file over the original are still noticed.
func Watch(ctx context.Context, path string, fn func(*Config, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("config changed", "path", path, "op", ev.Op.String())
			fn(Load(path))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("config watcher", "path", path, "error", err)
		}
	}
}
