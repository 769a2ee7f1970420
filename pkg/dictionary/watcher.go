package dictionary

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a dictionary file and invokes a reload callback after
// writes have settled. The callback runs on the watcher goroutine; callers
// are responsible for swapping the rebuilt index under their own lock.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	reload    func()

	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher creates a watcher for a single dictionary file. The file's
// directory is watched since editors commonly replace files on save.
func NewWatcher(path string, debounce time.Duration, reload func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		path:      abs,
		debounce:  debounce,
		reload:    reload,
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching. Reloads fire once per burst of writes.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.wg.Add(1)
	go w.loop()
	log.Debugf("Watching dictionary file %s", w.path)
	return nil
}

// Stop shuts the watcher down and waits for the loop to exit.
func (w *Watcher) Stop() error {
	close(w.done)
	w.wg.Wait()
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			log.Debugf("Dictionary file changed, reloading: %s", w.path)
			w.reload()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("Dictionary watcher error: %v", err)
		}
	}
}
