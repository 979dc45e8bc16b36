package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors configuration files and reports changes, debounced so
// an editor's write-rename dance produces a single event.
type Watcher struct {
	fsw       *fsnotify.Watcher
	paths     map[string]struct{}
	events    chan string
	done      chan struct{}
	closeOnce sync.Once
	debounce  time.Duration
}

// NewWatcher creates a watcher for the given files. Paths that do not
// exist yet are watched through their parent directory. An empty path
// list is allowed and produces a watcher that never fires.
func NewWatcher(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		paths:    make(map[string]struct{}),
		events:   make(chan string, 1),
		done:     make(chan struct{}),
		debounce: 250 * time.Millisecond,
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		w.paths[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		// Watching the directory catches atomic-rename saves.
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	go w.loop()
	return w, nil
}

// Events returns the channel delivering changed file paths.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Close stops the watcher and closes the events channel. Safe to call
// more than once and from multiple goroutines.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
	})
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.events)

	var (
		timer   *time.Timer
		pending string
		fire    <-chan time.Time
	)

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, watched := w.paths[abs]; !watched {
				continue
			}
			pending = abs
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.events <- pending:
			default:
				// Consumer is behind; drop rather than block the loop.
			}

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
