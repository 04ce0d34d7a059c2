package prefabs

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to spec and alert files in the watched paths.
// A file is reported once it has been quiet for the debounce window, so a
// truncate followed by a write yields a single event for the written file.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, p := range paths {
		if err := w.Add(p); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	d := newDebouncer(debounceWindow)
	timer := time.NewTimer(debounceWindow)
	timer.Stop()
	schedule := func(now time.Time) {
		if next, ok := d.next(); ok {
			timer.Reset(next.Sub(now))
		}
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevantOp(event.Op) || !Watched(event.Name) {
				continue
			}
			now := time.Now()
			d.touch(event.Name, now)
			schedule(now)
		case <-timer.C:
			now := time.Now()
			for _, name := range d.due(now) {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			schedule(now)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func relevantOp(op fsnotify.Op) bool {
	return op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// Watched reports whether path has an extension the watcher forwards.
func Watched(path string) bool {
	return isSpecFile(path) || isAlertFile(path)
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isAlertFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".txt"
}

// debouncer holds a deadline per file; every event pushes the deadline back.
type debouncer struct {
	window  time.Duration
	pending map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, pending: map[string]time.Time{}}
}

func (d *debouncer) touch(name string, now time.Time) {
	d.pending[name] = now.Add(d.window)
}

// due removes and returns the files whose deadline has passed, sorted by name.
func (d *debouncer) due(now time.Time) []string {
	var names []string
	for name, deadline := range d.pending {
		if !now.Before(deadline) {
			names = append(names, name)
			delete(d.pending, name)
		}
	}
	sort.Strings(names)
	return names
}

// next returns the earliest pending deadline.
func (d *debouncer) next() (time.Time, bool) {
	var earliest time.Time
	for _, deadline := range d.pending {
		if earliest.IsZero() || deadline.Before(earliest) {
			earliest = deadline
		}
	}
	return earliest, !earliest.IsZero()
}
