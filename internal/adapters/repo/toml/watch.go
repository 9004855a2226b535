package toml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

type fileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// Watch calls onChange whenever the session file is created, rewritten or
// removed, until ctx is done. The parent directory is watched rather than the
// file itself because writes replace the file by rename.
func (r *Repository) Watch(ctx context.Context, onChange func()) error {
	w, err := r.startWatcher()
	if err != nil {
		return err
	}

	return w.run(ctx, onChange)
}

func (r *Repository) startWatcher() (*fileWatcher, error) {
	dir := filepath.Dir(r.sessionPath)
	if err := os.MkdirAll(dir, sessionDirMode); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create session watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch session directory: %w", err)
	}

	return &fileWatcher{path: r.sessionPath, watcher: watcher}, nil
}

func (w *fileWatcher) run(ctx context.Context, onChange func()) error {
	defer func() { _ = w.watcher.Close() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch session file: %w", err)
		}
	}
}
