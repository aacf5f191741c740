package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/acdc/foundation/core/error"
)

// WatchFile calls onChange after path is written or recreated. Events
// closer together than debounce are coalesced into one call. The parent
// directory is watched so that editors replacing the file are noticed.
// WatchFile blocks until ctx is cancelled.
func WatchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return mdwerror.Wrap(err, "failed to resolve watched path").
			WithCode(mdwerror.CodeIO).
			WithOperation("config.WatchFile").
			WithDetail("path", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeIO).
			WithOperation("config.WatchFile")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeIO).
			WithOperation("config.WatchFile").
			WithDetail("path", filepath.Dir(target))
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
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != target {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return mdwerror.Wrap(err, "file watcher failed").
				WithCode(mdwerror.CodeIO).
				WithOperation("config.WatchFile").
				WithDetail("path", target)
		}
	}
}

// Watch reloads the configuration file at path whenever it changes and
// passes the result to onChange. A file that fails to load or validate is
// reported through err and the previous configuration stays in effect.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(cfg *Config, err error)) error {
	return WatchFile(ctx, path, debounce, func() {
		onChange(Load(path))
	})
}
