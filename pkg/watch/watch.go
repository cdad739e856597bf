// Package watch monitors a directory tree of SL source files and
// re-invokes a callback, debounced, whenever one changes. It knows
// nothing about transpilation itself — cmd/tstl wires the callback to
// the cache.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/GlassBricks/TypeScriptToLua/pkg/errors"
	"github.com/GlassBricks/TypeScriptToLua/pkg/log"
)

// Watcher debounces fsnotify events on a directory tree and invokes
// onChange once per settled burst of writes to a matching file.
type Watcher struct {
	fsw            *fsnotify.Watcher
	suffix         string
	debouncePeriod time.Duration
	onChange       func(path string)

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a Watcher rooted at dir, watching every subdirectory for
// writes to files ending in suffix (e.g. ".ts"). onChange is called,
// at most once per debouncePeriod per file, after the burst settles.
func New(dir, suffix string, debouncePeriod time.Duration, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	w := &Watcher{
		fsw:            fsw,
		suffix:         suffix,
		debouncePeriod: debouncePeriod,
		onChange:       onChange,
		pending:        make(map[string]*time.Timer),
	}

	if err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fsw.Add(path)
		}
		return nil
	}); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "walking %s", dir)
	}

	return w, nil
}

// Run blocks, dispatching debounced change events until Stop is
// called (which closes the underlying fsnotify watcher and unblocks
// the event channels).
func (w *Watcher) Run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, w.suffix) {
				continue
			}
			w.schedule(event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, exists := w.pending[path]; exists {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debouncePeriod, func() {
		w.onChange(path)
	})
}

// Stop closes the underlying fsnotify watcher, unblocking Run.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}
