package main

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// watchAndRun re-runs fn for an input whenever it changes. The parent
// directories are watched rather than the files themselves, so editors
// that replace files on save keep triggering. Translation failures are
// logged, not fatal; the loop runs until the process is killed.
func watchAndRun(paths []string, fn func(string) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not create watcher")
	}
	defer watcher.Close()

	targets := map[string]string{}
	dirs := map[string]bool{}
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.Wrap(err, "could not resolve "+path)
		}
		targets[abs] = path

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			return errors.Wrap(err, "could not watch "+dir)
		}
	}

	log.Printf("watching %d files", len(targets))
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			path, ok := targets[ev.Name]
			if !ok {
				continue
			}
			if err := fn(path); err != nil {
				log.Printf("%s: %v", path, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("watch error:", err)
		}
	}
}
