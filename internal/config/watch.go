package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"softraster/internal/logx"
)

// Watch reloads path whenever it is written and hands the resolved result to
// onChange. A file that fails to load or validate is logged and skipped, so
// the caller keeps its previous config. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, flags Flags, onChange func(Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer w.Close()

	// Editors often replace the file, so watch the directory and filter.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("config: watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			cfg, err := Load(path)
			if err == nil {
				cfg.Resolve(flags)
				err = cfg.Validate()
			}
			if err != nil {
				logx.Logger().Warn("config reload rejected", "path", path, "err", err)
				continue
			}
			logx.Logger().Info("config reloaded", "path", path)
			onChange(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logx.Logger().Warn("config watcher error", "err", err)
		}
	}
}
