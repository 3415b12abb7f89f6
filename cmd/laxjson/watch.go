// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// watch reprocesses each of the named files whenever it changes, until ctx
// ends. Errors from processing are logged and do not stop the watch.
func (r *runner) watch(ctx context.Context, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer w.Close()

	// Watch the directories containing the files rather than the files, so
	// that replacing a file by rename is still observed.
	watched := make(map[string]string) // cleaned path to argument
	dirs := make(map[string]bool)
	for _, path := range paths {
		clean := filepath.Clean(path)
		watched[clean] = path
		dir := filepath.Dir(clean)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return errors.Wrapf(err, "watch directory %q", dir)
		}
		dirs[dir] = true
	}
	log.Noticef("watching %d files", len(watched))

	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			path, ok := watched[filepath.Clean(ev.Name)]
			if !ok || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Debugf("%s: %v", path, ev.Op)
			if err := r.processFile(path); err != nil {
				log.Errorf("%v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warningf("watch: %v", err)
		}
	}
}
