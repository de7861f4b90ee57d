package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk. Valid results are
// delivered on Updates; parse and validation failures on Errors. Hosts drain
// Updates between ticks so a swap never lands mid-tick.
type Watcher struct {
	Updates chan *File
	Errors  chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches path. The parent directory is watched so editors that
// replace the file on save are still picked up.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	watcher := &Watcher{
		Updates: make(chan *File, 1),
		Errors:  make(chan error, 1),
		path:    abs,
		watcher: w,
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Latest returns the newest pending reload without blocking.
func (w *Watcher) Latest() (*File, bool) {
	var latest *File
	for {
		select {
		case f := <-w.Updates:
			latest = f
		default:
			return latest, latest != nil
		}
	}
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(cfg, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send replaces any undelivered value so a slow host only sees the newest state.
func (w *Watcher) send(cfg *File, err error) {
	ch := w.Updates
	if err != nil {
		select {
		case w.Errors <- err:
		default:
		}
		return
	}
	for {
		select {
		case ch <- cfg:
			return
		case <-ch:
		case <-w.closeCh:
			return
		}
	}
}
