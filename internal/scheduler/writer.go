package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/logger"
)

// DefaultWriteTimeout bounds a single flush to the key-value store.
const DefaultWriteTimeout = 5 * time.Second

// Persister writes records to the key-value store. Failures are handled
// (logged and swallowed) by the implementation.
type Persister interface {
	SaveShortcuts(ctx context.Context, shortcuts []domain.Shortcut)
	SaveSettings(ctx context.Context, settings domain.Settings)
}

// Writer persists store snapshots on a background goroutine so mutations
// never wait on storage. Only the latest pending snapshot of each record is
// written; older ones are dropped.
type Writer struct {
	persister Persister
	logger    logger.Logger
	timeout   time.Duration

	mu        sync.Mutex
	shortcuts []domain.Shortcut
	dirtySC   bool
	settings  domain.Settings
	dirtySet  bool
	started   bool

	trigger  chan struct{}
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewWriter creates a new writer
func NewWriter(p Persister, log logger.Logger, timeout time.Duration) *Writer {
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	return &Writer{
		persister: p,
		logger:    log,
		timeout:   timeout,
		trigger:   make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// SaveShortcuts queues a snapshot of the collection.
func (w *Writer) SaveShortcuts(shortcuts []domain.Shortcut) {
	w.mu.Lock()
	w.shortcuts = shortcuts
	w.dirtySC = true
	w.mu.Unlock()
	w.signal()
}

// SaveSettings queues a snapshot of the settings.
func (w *Writer) SaveSettings(settings domain.Settings) {
	w.mu.Lock()
	w.settings = settings
	w.dirtySet = true
	w.mu.Unlock()
	w.signal()
}

func (w *Writer) signal() {
	select {
	case w.trigger <- struct{}{}:
	default:
		// a flush is already queued and will pick up the latest snapshot
	}
}

// Start begins the background write loop. Calling it again is a no-op.
func (w *Writer) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil
	}
	w.started = true
	w.mu.Unlock()

	go func() {
		defer close(w.done)
		for {
			select {
			case <-w.trigger:
				w.flush(ctx)
			case <-w.stopCh:
				w.flush(context.WithoutCancel(ctx))
				return
			case <-ctx.Done():
				w.flush(context.WithoutCancel(ctx))
				return
			}
		}
	}()

	return nil
}

// Stop drains pending snapshots and waits for the loop to exit.
func (w *Writer) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)

		w.mu.Lock()
		started := w.started
		w.mu.Unlock()

		if started {
			<-w.done
		}
		// snapshots queued after the loop exited (ctx cancelled first)
		w.flush(context.Background())
	})
}

// flush writes whatever is pending. Only the loop (or Stop, when the loop
// never started) calls it, so writes keep snapshot order.
func (w *Writer) flush(ctx context.Context) {
	w.mu.Lock()
	shortcuts, dirtySC := w.shortcuts, w.dirtySC
	settings, dirtySet := w.settings, w.dirtySet
	w.shortcuts, w.dirtySC, w.dirtySet = nil, false, false
	w.mu.Unlock()

	if !dirtySC && !dirtySet {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if dirtySC {
		w.persister.SaveShortcuts(ctx, shortcuts)
	}
	if dirtySet {
		w.persister.SaveSettings(ctx, settings)
	}

	w.logger.Debug("flushed pending records",
		logger.Bool("shortcuts", dirtySC),
		logger.Bool("settings", dirtySet))
}
