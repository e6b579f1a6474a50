package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Change reports that a watched file was written, created, removed or renamed.
type Change struct {
	Path      string
	Op        fsnotify.Op
	Timestamp int64 // Unix timestamp
}

// WatchConfig configures a Watch.
type WatchConfig struct {
	// Dirs are the directories to watch (non-recursive).
	Dirs []string
	// Patterns are doublestar patterns matched against the full event path.
	// An event is delivered if it matches any pattern. Empty means everything.
	Patterns []string
	// Debounce coalesces bursts of events on the same path. Defaults to 100ms.
	Debounce time.Duration
	Logger   *slog.Logger
	// ErrorHandler receives watcher errors. They are logged regardless.
	ErrorHandler func(error)
}

// Watch observes the configured directories until ctx is cancelled.
// The returned channel is closed once the watch loop exits.
func Watch(ctx context.Context, cfg WatchConfig) (<-chan Change, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 100 * time.Millisecond
	}
	for _, p := range cfg.Patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return nil, fmt.Errorf("invalid watch pattern %q", p)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	for _, dir := range cfg.Dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	w := &watchWorker{
		cfg:       cfg,
		watcher:   watcher,
		out:       make(chan Change),
		debouncer: newDebouncer(cfg.Debounce),
	}

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		cfg.Logger.Error("watcher stopped", "error", err)
		if cfg.ErrorHandler != nil {
			cfg.ErrorHandler(err)
		}
	}))
	return w.out, nil
}

type watchWorker struct {
	cfg       WatchConfig
	watcher   *fsnotify.Watcher
	out       chan Change
	debouncer *debouncer
}

// run is the main event loop.
func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			// Stack only when debugging, to keep normal logs quiet.
			if w.cfg.Logger.Enabled(ctx, slog.LevelDebug) {
				w.cfg.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			}
		}
	}()
	defer close(w.out)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Wait for in-flight timers before the deferred close of out.
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.cfg.Logger.Error("fsnotify error", "error", wErr)
			if w.cfg.ErrorHandler != nil {
				w.cfg.ErrorHandler(wErr)
			}
		}
	}
}

func (w *watchWorker) processEvent(ctx context.Context, event fsnotify.Event) {
	w.cfg.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	if !Matches(w.cfg.Patterns, event.Name) {
		return
	}

	change := Change{Path: event.Name, Op: event.Op, Timestamp: time.Now().Unix()}
	w.debouncer.add(change, func(c Change) {
		defer func() {
			// out may already be closed if the loop exited on an error.
			_ = recover()
		}()
		select {
		case w.out <- c:
		case <-ctx.Done():
		}
	})
}

// Matches reports whether path matches any of patterns. No patterns match
// everything.
func Matches(patterns []string, path string) bool {
	if len(patterns) == 0 {
		return true
	}
	slashed := filepath.ToSlash(path)
	for _, p := range patterns {
		if ok, _ := doublestar.Match(filepath.ToSlash(p), slashed); ok {
			return true
		}
	}
	return false
}

// debouncer delivers the last change per path once the path has been quiet
// for delay.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, timers: make(map[string]*time.Timer)}
}

func (d *debouncer) add(c Change, fire func(Change)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if t, ok := d.timers[c.Path]; ok && t.Stop() {
		// The stopped timer will never run; release its slot.
		d.wg.Done()
	}
	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.timers[c.Path] == t {
			delete(d.timers, c.Path)
		}
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			fire(c)
		}
	})
	d.timers[c.Path] = t
}

// stopAndWait cancels pending timers and waits for running ones.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, path)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
