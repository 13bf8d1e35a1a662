package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Change names a table or script file that was written on disk.
type Change struct {
	Path   string
	Script bool
}

// Watcher reports edits to the on-disk prefab directory. It runs its own goroutine;
// the simulation only sees changes through Poll, between steps.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchPrefabs watches the default on-disk table and script directories.
func WatchPrefabs() (*Watcher, error) {
	return NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll returns every change reported since the last call without blocking.
func (w *Watcher) Poll() ([]Change, error) {
	if w == nil {
		return nil, nil
	}
	var out []Change
	for {
		select {
		case c := <-w.Events:
			out = append(out, c)
		case err := <-w.Errors:
			return out, err
		default:
			return out, nil
		}
	}
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			spec, script := isSpecFile(event.Name), isScriptFile(event.Name)
			if !spec && !script {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- Change{Path: event.Name, Script: script}:
			case <-w.closeCh:
				return
			}
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

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
