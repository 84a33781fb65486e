package watcher

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports debounced changes of individual files.
//
// fsnotify watches the parent directory of every file, so a model that does
// not exist yet, or an annotation sidecar that an editor replaces by rename,
// is still picked up. Events for other files in the same directory are
// dropped.
type FileWatcher struct {
	fsw      *fsnotify.Watcher
	logger   *log.Logger
	debounce time.Duration

	mu      sync.Mutex
	targets map[string]func(string) // absolute file path -> callback
	dirs    map[string]int          // watched directory -> number of targets
	pending map[string]*time.Timer
	closed  bool
}

// NewFileWatcher creates a watcher that waits debounce after the last event
// of a file before reporting it
func NewFileWatcher(debounce time.Duration, logger *log.Logger) (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &FileWatcher{
		fsw:      fsw,
		logger:   logger,
		debounce: debounce,
		targets:  make(map[string]func(string)),
		dirs:     make(map[string]int),
		pending:  make(map[string]*time.Timer),
	}, nil
}

// Watch adds files to the watch set. callback runs on a timer goroutine
// with the absolute path of the changed file. Watching a file twice only
// replaces its callback.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		path, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if _, ok := fw.targets[path]; !ok {
			if err := fw.addDir(filepath.Dir(path)); err != nil {
				return err
			}
			fw.logger.Debug("watching", "file", path)
		}
		fw.targets[path] = callback
	}
	return nil
}

func (fw *FileWatcher) addDir(dir string) error {
	if fw.dirs[dir] == 0 {
		if err := fw.fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	fw.dirs[dir]++
	return nil
}

// Start processes file system events on a new goroutine until Close
func (fw *FileWatcher) Start() {
	go fw.loop()
}

func (fw *FileWatcher) loop() {
	for {
		select {
		case event, ok := <-fw.fsw.Events:
			if !ok {
				return
			}
			// editors save by writing in place or by creating a replacement
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.schedule(filepath.Clean(event.Name))
			}
		case err, ok := <-fw.fsw.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("watcher error", "err", err)
		}
	}
}

// schedule (re)starts the debounce timer of path
func (fw *FileWatcher) schedule(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, ok := fw.targets[path]
	if !ok || fw.closed {
		return
	}
	if t, ok := fw.pending[path]; ok {
		t.Stop()
	}
	fw.pending[path] = time.AfterFunc(fw.debounce, func() {
		fw.mu.Lock()
		delete(fw.pending, path)
		closed := fw.closed
		fw.mu.Unlock()
		if !closed {
			callback(path)
		}
	})
}

// Close stops all pending callbacks and the underlying watcher
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	fw.closed = true
	for path, t := range fw.pending {
		t.Stop()
		delete(fw.pending, path)
	}
	fw.mu.Unlock()
	return fw.fsw.Close()
}

// Changes collects changed paths reported from watcher goroutines so a
// single-threaded render loop can pick them up between frames
type Changes struct {
	mu    sync.Mutex
	paths map[string]bool
}

// Add records a changed path. It is safe for concurrent use.
func (c *Changes) Add(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paths == nil {
		c.paths = make(map[string]bool)
	}
	c.paths[path] = true
}

// Drain returns the changed paths in sorted order and resets the set
func (c *Changes) Drain() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.paths) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.paths))
	for p := range c.paths {
		out = append(out, p)
	}
	c.paths = nil
	sort.Strings(out)
	return out
}
