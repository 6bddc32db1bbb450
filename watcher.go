package pickit

import (
	"context"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// BatchWatcher re-validates the contents of a directory whenever it
// changes. Each relevant filesystem event triggers a fresh gather of the
// directory's immediate children followed by a validation pass; the
// resulting report is delivered on Reports.
//
// Reports has a buffer of one and keeps only the latest report: if the
// consumer lags, intermediate reports are replaced, not queued. Watch
// errors are delivered on Errors. Close tears the watcher down and closes
// both channels.
type BatchWatcher struct {
	dir       string
	validator *BatchValidator
	selector  FileSelector

	watcher *fsnotify.Watcher
	reports chan *BatchReport
	errs    chan error

	done      chan struct{}
	closeOnce sync.Once
}

// WatchDir starts watching dir, validating its immediate children with v
// on every change. A nil selector gathers everything.
func WatchDir(dir string, v *BatchValidator, selector FileSelector) (*BatchWatcher, error) {
	if v == nil {
		return nil, ErrNilValidator
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	bw := &BatchWatcher{
		dir:       dir,
		validator: v,
		selector:  selector,
		watcher:   w,
		reports:   make(chan *BatchReport, 1),
		errs:      make(chan error, 1),
		done:      make(chan struct{}),
	}

	go bw.loop()

	return bw, nil
}

// Reports returns the channel on which validation reports are delivered.
func (w *BatchWatcher) Reports() <-chan *BatchReport {
	return w.reports
}

// Errors returns the channel on which watch errors are delivered.
func (w *BatchWatcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching and closes the report and error channels.
// It is safe to call Close more than once.
func (w *BatchWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *BatchWatcher) loop() {
	defer close(w.reports)
	defer close(w.errs)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.revalidate()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.deliverError(err)
		}
	}
}

func (w *BatchWatcher) revalidate() {
	files, err := GatherDir(context.Background(), w.dir, w.selector, false)
	if err != nil {
		w.deliverError(err)
		return
	}

	report := w.validator.Report(files)

	// Latest report wins: drop a stale unconsumed report before delivering.
	select {
	case <-w.reports:
	default:
	}
	select {
	case w.reports <- report:
	case <-w.done:
	}
}

func (w *BatchWatcher) deliverError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
