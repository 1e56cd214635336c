package app

import (
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// DiskWatcher raises a flag when the edited file changes on disk
// underneath the session. The editor polls the flag between
// keystrokes; nothing here touches the screen.
//
// The watch is on the file's directory, not the file itself, so
// writers that replace the file (rename over it, remove and recreate)
// are seen too.
type DiskWatcher struct {
	watcher *fsnotify.Watcher
	base    string
	changed atomic.Bool
	closeCh chan struct{}
	wg      sync.WaitGroup
	logger  *Logger
}

// NewDiskWatcher starts watching the directory holding path.
func NewDiskWatcher(path string, logger *Logger) (*DiskWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &DiskWatcher{
		watcher: fw,
		base:    filepath.Base(abs),
		closeCh: make(chan struct{}),
		logger:  logger.WithComponent("watcher"),
	}
	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

func (w *DiskWatcher) processLoop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error: %v", err)
		}
	}
}

func (w *DiskWatcher) handle(ev fsnotify.Event) {
	if filepath.Base(ev.Name) != w.base {
		return
	}
	if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) ||
		ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename) {
		w.changed.Store(true)
		w.logger.Debug("%s: %s", ev.Name, ev.Op)
	}
}

// Changed reports whether the file changed since the last call and
// clears the flag.
func (w *DiskWatcher) Changed() bool {
	return w.changed.Swap(false)
}

// Notice adapts Changed to the editor's notice poll.
func (w *DiskWatcher) Notice() (string, bool) {
	if w.Changed() {
		return "file changed on disk", true
	}
	return "", false
}

// Close stops the watcher and waits for its goroutine.
func (w *DiskWatcher) Close() {
	close(w.closeCh)
	w.wg.Wait()
	_ = w.watcher.Close()
}
