package source

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/mesh-intelligence/smarttable/internal/logging"
	"github.com/mesh-intelligence/smarttable/pkg/types"
)

// Watcher reloads a File whenever it is written or replaced and signals
// the change on Changes. Reload failures go to Errors. Signals do not
// queue: a burst of writes coalesces into one pending signal.
type Watcher struct {
	file    *File
	target  string
	fs      *fsnotify.Watcher
	changes chan struct{}
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewWatcher starts watching file. The file's directory is watched so that
// atomic replacements (write to temp, rename over) are seen.
func NewWatcher(file *File) (*Watcher, error) {
	target, err := filepath.Abs(file.Path())
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", file.Path(), err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	w := &Watcher{
		file:    file,
		target:  target,
		fs:      fsw,
		changes: make(chan struct{}, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Changes receives a value after each successful reload.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors receives reload and watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := w.file.Reload(); err != nil {
				w.sendError(err)
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		logging.Warn("dropping watcher error", "path", w.target, "err", err)
	}
}

// SyncOnChange calls Sync on every table after each change the watcher
// signals, until ctx is done or the watcher is closed. Tables are only
// touched from the calling goroutine. Returns ctx.Err() on cancellation.
func SyncOnChange(ctx context.Context, w *Watcher, tables ...types.Table) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case <-w.changes:
			for _, t := range tables {
				t.Sync()
			}
		case err := <-w.errors:
			logging.Warn("source reload failed", "path", w.target, "err", err)
		}
	}
}
