package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is emitted by Watch when a slot on disk is rewritten, for example
// when another process saves an event while the interactive UI is open.
type Change struct {
	Slot string
}

// Watcher is implemented by stores that can stream change notifications.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Change, error)
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid losing notifications. The channel is closed
// once ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Change, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	// The slot layout is flat, so a single watch on the base path sees
	// every rewrite.
	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	changes := make(chan Change, 16)

	go func() {
		defer close(changes)
		defer closeWatcher()

		send := func(c Change) {
			select {
			case changes <- c:
			default:
				// Drop when the consumer is behind; the next refresh reads
				// the whole slot anyway.
			}
		}

		throttle := newChangeThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full refresh to keep clients
				// in sync even when the change cannot be classified.
				throttle.Enqueue(Change{}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if slot := slotForPath(evt.Name); slot != "" {
					throttle.Enqueue(Change{Slot: slot}, send)
				}
			}
		}
	}()

	return changes, nil
}

// slotForPath maps a filesystem path back to the slot it stores.
func slotForPath(path string) string {
	switch filepath.Base(path) {
	case eventsSlot, feedbackSlot, usersSlot, tokenSlot:
		return filepath.Base(path)
	}
	return ""
}

// changeThrottle coalesces rapid notifications so consumers redraw once per
// burst of filesystem activity instead of on every single write.
type changeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *changeThrottle) Enqueue(c Change, send func(Change)) {
	t.mu.Lock()
	t.pending[c.Slot] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) flush(send func(Change)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for slot := range pending {
		send(Change{Slot: slot})
	}
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
