package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/saadjs/fitlife-cli/internal/store"
)

var watchedFiles = map[string]bool{
	store.MealsFile: true,
	store.StepsFile: true,
	store.WaterFile: true,
}

// WatchLogs calls onChange after every write, create, rename or removal of a
// record log in dir. It blocks until ctx is done.
func WatchLogs(ctx context.Context, dir string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create log watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	// Watch the directory so logs created after startup are seen too.
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Debug().Str("dir", dir).Msg("Watching record logs")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watchedFiles[filepath.Base(ev.Name)] || ev.Op == fsnotify.Chmod {
				continue
			}
			log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("Record log changed")
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Log watcher error")
		}
	}
}
