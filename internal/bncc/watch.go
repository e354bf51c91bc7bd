package bncc

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"elotools/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs a conversion whenever the source document changes.
// Rapid saves are batched: onChange runs once the file has been quiet for
// the debounce window. Runs never overlap.
type Watcher struct {
	source   string
	debounce time.Duration
	onChange func() error
	watcher  *fsnotify.Watcher
	runs     atomic.Int64
}

// NewWatcher watches the directory holding source. Editors that save by
// rename replace the file's inode, so the file itself is not watched.
func NewWatcher(source string, debounce time.Duration, onChange func() error) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(source)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{
		source:   filepath.Clean(source),
		debounce: debounce,
		onChange: onChange,
		watcher:  fw,
	}, nil
}

// Runs reports how many times onChange has run.
func (w *Watcher) Runs() int {
	return int(w.runs.Load())
}

// Run converts once, then again after every settled change, until ctx is done.
// Conversion errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	log := logging.Get(logging.CategoryWatch)

	w.fire()
	log.Info("watching %s", w.source)

	var timer *time.Timer
	var settled <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.source {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("%s event for %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			settled = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error: %v", err)

		case <-settled:
			settled = nil
			w.fire()
		}
	}
}

func (w *Watcher) fire() {
	w.runs.Add(1)
	if err := w.onChange(); err != nil {
		logging.Get(logging.CategoryWatch).Error("conversion failed: %v", err)
	}
}
