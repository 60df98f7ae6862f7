package store

import (
	"context"
	"testing"
	"time"

	"github.com/kotanikosei/Emo/pkg/event"
)

func TestWatchEmitsSlotChanges(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, ok := p.(Watcher)
	if !ok {
		t.Fatalf("diskv store should support watching")
	}
	ch, err := w.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	e := event.New("2024-02-14", time.Now())
	e.Title = "歯医者"
	if err := p.SaveEvents([]event.Event{e}); err != nil {
		t.Fatalf("save events: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case c := <-ch:
			if c.Slot == "" || c.Slot == eventsSlot {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for a change notification")
		}
	}
}
