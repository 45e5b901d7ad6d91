// Package watch reloads calendar files when they change on disk.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// FileWatcher invokes onChange for every watched calendar file that is
// written or recreated, debouncing rapid editor save sequences.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	onChange func(string)
	mu       sync.RWMutex
	done     chan struct{}
}

// New starts watching in the background. The caller owns the returned
// watcher and must Close it.
func New(onChange func(string)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher:  watcher,
		files:    make(map[string]struct{}),
		onChange: onChange,
		done:     make(chan struct{}),
	}

	go fw.watch()
	return fw, nil
}

// Add registers a calendar file for change notifications.
func (fw *FileWatcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, exists := fw.files[absPath]; exists {
		return nil
	}

	if err := fw.watcher.Add(absPath); err != nil {
		return err
	}

	fw.files[absPath] = struct{}{}
	return nil
}

// Remove stops watching a file.
func (fw *FileWatcher) Remove(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, exists := fw.files[absPath]; !exists {
		return nil
	}

	if err := fw.watcher.Remove(absPath); err != nil {
		return err
	}

	delete(fw.files, absPath)
	return nil
}

func (fw *FileWatcher) watch() {
	debounce := make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if timer, exists := debounce[event.Name]; exists {
				timer.Stop()
			}
			debounce[event.Name] = time.AfterFunc(debounceDelay, func() {
				fw.mu.RLock()
				_, watching := fw.files[event.Name]
				fw.mu.RUnlock()
				if watching && fw.onChange != nil {
					fw.onChange(event.Name)
				}
			})

		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Keep watching; a transient error on one file should not
			// stop reloads for the others.

		case <-fw.done:
			return
		}
	}
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	close(fw.done)
	return fw.watcher.Close()
}
