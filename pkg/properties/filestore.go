package properties

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"liblog/pkg/logging"
)

// DefaultWatchInterval is the fallback polling interval when fsnotify is not
// available.
const DefaultWatchInterval = 5 * time.Second

// DefaultDebounceInterval is the time to wait after the last file change
// before reloading, so editors that write in several steps trigger one reload.
const DefaultDebounceInterval = 200 * time.Millisecond

// FileStore keeps a Store in sync with a YAML file of string properties.
// Properties change at runtime by editing the file; the store reloads on
// change via fsnotify, falling back to modification-time polling when
// fsnotify is unavailable.
type FileStore struct {
	*Store

	path          string
	watchInterval time.Duration

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	stopCh    chan struct{}
	running   bool

	lastModTime time.Time

	debounceMu    sync.Mutex
	debounceTimer *time.Timer
}

// NewFileStore loads path into a fresh store. A missing file is not an
// error: the store starts empty and fills in when the file appears.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{
		Store:         NewStore(),
		path:          path,
		watchInterval: DefaultWatchInterval,
	}
	if err := fs.Reload(); err != nil {
		return nil, err
	}
	return fs, nil
}

// Reload re-reads the backing file and replaces the property set.
func (fs *FileStore) Reload() error {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			fs.Replace(nil)
			return nil
		}
		return fmt.Errorf("read properties %s: %w", fs.path, err)
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parse properties %s: %w", fs.path, err)
	}
	fs.Replace(values)
	return nil
}

// Start begins watching the backing file for changes.
func (fs *FileStore) Start() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.running {
		return nil
	}
	fs.stopCh = make(chan struct{})
	fs.running = true

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Warn("Properties", "fsnotify not available, falling back to polling: %v", err)
		go fs.pollForChanges()
		return nil
	}

	// Watch the directory, not the file: editors replace files by rename and
	// a direct file watch would go stale after the first save.
	if err := watcher.Add(filepath.Dir(fs.path)); err != nil {
		logging.Warn("Properties", "failed to watch %s, falling back to polling: %v", filepath.Dir(fs.path), err)
		watcher.Close()
		go fs.pollForChanges()
		return nil
	}

	fs.fsWatcher = watcher
	go fs.processEvents(watcher.Events, watcher.Errors)

	logging.Debug("Properties", "watching %s", fs.path)
	return nil
}

// processEvents handles fsnotify events. The channels are parameters so Stop
// closing the watcher cannot race the loop.
func (fs *FileStore) processEvents(eventsCh <-chan fsnotify.Event, errorsCh <-chan error) {
	for {
		select {
		case <-fs.stopCh:
			return
		case event, ok := <-eventsCh:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(fs.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fs.debouncedReload()
		case err, ok := <-errorsCh:
			if !ok {
				return
			}
			logging.Error("Properties", err, "fsnotify error")
		}
	}
}

// debouncedReload coalesces rapid successive change events into one reload.
func (fs *FileStore) debouncedReload() {
	fs.debounceMu.Lock()
	defer fs.debounceMu.Unlock()

	if fs.debounceTimer != nil {
		fs.debounceTimer.Stop()
	}
	fs.debounceTimer = time.AfterFunc(DefaultDebounceInterval, func() {
		if err := fs.Reload(); err != nil {
			logging.Error("Properties", err, "reload failed")
		}
	})
}

// pollForChanges is the fallback when fsnotify cannot be used.
func (fs *FileStore) pollForChanges() {
	ticker := time.NewTicker(fs.watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-fs.stopCh:
			return
		case <-ticker.C:
			info, err := os.Stat(fs.path)
			if err != nil {
				continue
			}
			if info.ModTime().After(fs.lastModTime) {
				fs.lastModTime = info.ModTime()
				if err := fs.Reload(); err != nil {
					logging.Error("Properties", err, "reload failed")
				}
			}
		}
	}
}

// Stop ends the watch. The store keeps its last loaded values.
func (fs *FileStore) Stop() {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.running {
		return
	}
	close(fs.stopCh)
	fs.running = false

	if fs.fsWatcher != nil {
		if err := fs.fsWatcher.Close(); err != nil {
			logging.Warn("Properties", "error closing fsnotify watcher: %v", err)
		}
		fs.fsWatcher = nil
	}

	fs.debounceMu.Lock()
	if fs.debounceTimer != nil {
		fs.debounceTimer.Stop()
		fs.debounceTimer = nil
	}
	fs.debounceMu.Unlock()
}

// Path returns the backing file path.
func (fs *FileStore) Path() string {
	return fs.path
}
