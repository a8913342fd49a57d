package main

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/compositor/render"
)

// watchOptions posts the debug flags of path to ch whenever the file is
// written. The directory is watched so editors that replace the file by
// renaming are seen too.
func watchOptions(ctx context.Context, path string, ch *render.Channel) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				opts, err := render.LoadOptions(abs)
				if err != nil {
					log.Printf("Options reload: %v", err)
					continue
				}
				if err := ch.Send(ctx, render.SetDebugFlags{Flags: opts.DebugFlags}); err != nil {
					return
				}
				log.Printf("Debug flags now %v", opts.DebugFlags)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Options watch: %v", err)
			}
		}
	}()
	return w, nil
}
