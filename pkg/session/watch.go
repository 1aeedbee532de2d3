package session

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Watcher re-imports the active CSV when it changes on disk. It watches the
// file's directory rather than the file itself so editors that replace the
// file on save (write temp, rename over) keep triggering events.
type Watcher struct {
	log      zerolog.Logger
	fsw      *fsnotify.Watcher
	limiter  *rate.Limiter
	onChange func(path string)

	mu      sync.Mutex
	target  string // absolute path currently followed, "" for none
	dir     string
	pending *time.Timer // deferred reload for events inside the holdoff

	done chan struct{}
}

// NewWatcher starts the event loop. holdoff caps reloads to one per interval;
// events landing inside the window defer a single trailing reload, so the
// last write of an editor's save burst is always re-imported. onChange is
// called from a watcher goroutine; the UI wraps it to hop threads.
func NewWatcher(log zerolog.Logger, holdoff time.Duration, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	limit := rate.Inf
	if holdoff > 0 {
		limit = rate.Every(holdoff)
	}

	w := &Watcher{
		log:      log.With().Str("component", "watcher").Logger(),
		fsw:      fsw,
		limiter:  rate.NewLimiter(limit, 1),
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Follow switches the watcher to the given file. An empty path stops
// following without closing the watcher.
func (w *Watcher) Follow(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dir != "" {
		// Ignore removal errors; the directory may already be gone.
		_ = w.fsw.Remove(w.dir)
		w.dir = ""
		w.target = ""
	}
	if path == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := w.fsw.Add(dir); err != nil {
		return err
	}
	w.dir = dir
	w.target = abs
	w.log.Debug().Str("path", abs).Msg("following file")
	return nil
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.mu.Unlock()
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.target == "" || filepath.Clean(event.Name) != w.target {
		return
	}
	if w.pending != nil {
		// A reload is already queued; when it fires it reads the file, so it
		// picks up this write's content too.
		return
	}

	// Reserve rather than Allow: an event inside the holdoff window schedules
	// one reload at the window's edge instead of being dropped, so the final
	// write of a save burst is never lost.
	path := w.target
	delay := w.limiter.Reserve().Delay()
	w.pending = time.AfterFunc(delay, func() { w.fireReload(path) })
}

func (w *Watcher) fireReload(path string) {
	w.mu.Lock()
	w.pending = nil
	target := w.target
	w.mu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}
	if path != target {
		return // Follow moved on while the reload was queued
	}

	w.log.Info().Str("path", path).Msg("file changed, reloading")
	w.onChange(path)
}
