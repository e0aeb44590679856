// Package watcher signals when a record file changes so the CLI can re-run
// the recompute pass. Only the command layer uses it; the engine itself
// never watches anything.
package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/go-timeline-core/internal/util"
)

// FileWatcher emits the path on its Events channel whenever the watched
// file is written or created.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	events  chan string
}

// NewFileWatcher watches a single file. The parent directory is registered
// because editors commonly replace files by rename, which would drop a
// direct file watch.
func NewFileWatcher(path string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		target:  abs,
		events:  make(chan string, 16),
	}
	go fw.processEvents()
	return fw, nil
}

// Events returns the change notification channel.
func (fw *FileWatcher) Events() <-chan string {
	return fw.events
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				close(fw.events)
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != fw.target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				select {
				case fw.events <- abs:
				default:
					// A recompute is already pending; drop the duplicate.
				}
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				close(fw.events)
				return
			}
			util.LogWarnf("Watcher error: %v", err)
		}
	}
}

// Close stops watching and releases the underlying notifier.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
