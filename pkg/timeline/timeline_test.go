package timeline

import (
	"errors"
	"testing"
	"time"

	"github.com/kotanikosei/Emo/pkg/event"
)

func timed(start, end string) event.Event {
	return event.Event{
		ID:        "t",
		Date:      "2024-02-14",
		Title:     "x",
		Mood:      event.NoMood,
		IsAllDay:  false,
		StartTime: start,
		EndTime:   end,
	}
}

func TestPlaceDefaultDuration(t *testing.T) {
	// 09:00 with no end renders at 540px with the default 60px height.
	box, err := Place(timed("09:00", ""))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if box.Top != 540 {
		t.Fatalf("expected top 540, got %d", box.Top)
	}
	if box.Height != 60 {
		t.Fatalf("expected default height 60, got %d", box.Height)
	}
}

func TestPlaceExplicitDuration(t *testing.T) {
	box, err := Place(timed("13:15", "15:45"))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if box.Top != 13*60+15 {
		t.Fatalf("expected top %d, got %d", 13*60+15, box.Top)
	}
	if box.Height != 150 {
		t.Fatalf("expected height 150, got %d", box.Height)
	}
	if box.Bottom() != 15*60+45 {
		t.Fatalf("expected bottom %d, got %d", 15*60+45, box.Bottom())
	}
}

func TestPlaceClampsShortEvents(t *testing.T) {
	box, err := Place(timed("09:00", "09:10"))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if box.Height != MinHeight {
		t.Fatalf("expected clamped height %d, got %d", MinHeight, box.Height)
	}
}

func TestPlaceRejectsAllDay(t *testing.T) {
	e := event.Event{ID: "a", Date: "2024-02-14", Title: "x", Mood: event.NoMood, IsAllDay: true}
	if _, err := Place(e); !errors.Is(err, ErrAllDay) {
		t.Fatalf("expected ErrAllDay, got %v", err)
	}
}

func TestNowOffset(t *testing.T) {
	now := time.Date(2024, time.February, 14, 9, 30, 45, 0, time.Local)
	if got := NowOffset(now); got != 570 {
		t.Fatalf("expected 570, got %d", got)
	}
	midnight := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.Local)
	if got := NowOffset(midnight); got != 0 {
		t.Fatalf("expected 0 at midnight, got %d", got)
	}
}
