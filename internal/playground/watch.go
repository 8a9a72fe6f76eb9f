package playground

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/grindlemire/go-autosize/internal/debug"
)

// debounce is how long the file must be quiet before it is reloaded, so a
// save that arrives as several writes is read once, after the last one.
const debounce = 100 * time.Millisecond

// ConfigWatcher reloads a config file whenever it changes on disk.
// Successful reloads arrive on Configs, failures on Errors.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Configs chan Config
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchConfig starts watching path. The containing directory is watched so
// editors that replace the file on save are handled.
func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	cw := &ConfigWatcher{
		watcher: w,
		path:    abs,
		Configs: make(chan Config, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Close stops the watcher. Configs and Errors are closed once the
// watching goroutine has exited.
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
		<-cw.done
	})
	return err
}

func (cw *ConfigWatcher) run() {
	defer func() {
		close(cw.Configs)
		close(cw.Errors)
		close(cw.done)
	}()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			debug.Log("playground: reloading %s", cw.path)
			cfg, err := Load(cw.path)
			if err != nil {
				cw.send(nil, err)
				continue
			}
			cw.send(&cfg, nil)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.send(nil, err)
		case <-cw.closeCh:
			return
		}
	}
}

func (cw *ConfigWatcher) send(cfg *Config, err error) {
	if cfg != nil {
		select {
		case cw.Configs <- *cfg:
		case <-cw.closeCh:
		}
		return
	}
	select {
	case cw.Errors <- err:
	case <-cw.closeCh:
	}
}
