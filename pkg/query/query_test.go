package query

import (
	"testing"

	"github.com/kotanikosei/Emo/pkg/event"
)

func ev(id, date, title, memo string, created int64) event.Event {
	return event.Event{
		ID:        id,
		Date:      date,
		Title:     title,
		Memo:      memo,
		Mood:      event.NoMood,
		IsAllDay:  true,
		CreatedAt: created,
	}
}

func timed(id, date, title, start, end string, created int64) event.Event {
	e := ev(id, date, title, "", created)
	e.IsAllDay = false
	e.StartTime = start
	e.EndTime = end
	return e
}

func TestByDate(t *testing.T) {
	events := []event.Event{
		ev("a", "2024-02-14", "A", "", 1),
		ev("b", "2024-02-15", "B", "", 2),
		ev("c", "2024-02-14", "C", "", 3),
	}
	got := ByDate(events, "2024-02-14")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestByMonthComparesParsedValues(t *testing.T) {
	events := []event.Event{
		ev("feb", "2024-02-29", "leap", "", 1),
		ev("mar", "2024-03-01", "spring", "", 2),
		ev("dec", "2023-12-31", "eve", "", 3),
		ev("bad", "not-a-date", "junk", "", 4),
	}

	feb := ByMonth(events, 2024, 1)
	if len(feb) != 1 || feb[0].ID != "feb" {
		t.Fatalf("expected only the February event, got %+v", feb)
	}
	if got := ByMonth(events, 2023, 11); len(got) != 1 || got[0].ID != "dec" {
		t.Fatalf("expected only the December event, got %+v", got)
	}
}

func TestSearch(t *testing.T) {
	events := []event.Event{
		ev("old", "2024-02-01", "歯医者", "", 100),
		ev("new", "2024-02-02", "Dentist follow-up", "", 300),
		ev("memo", "2024-02-03", "予定", "dentistに電話する", 200),
	}

	if got := Search(events, ""); len(got) != 0 {
		t.Fatalf("empty query must match nothing, got %d", len(got))
	}
	if got := Search(events, "   "); len(got) != 0 {
		t.Fatalf("blank query must match nothing, got %d", len(got))
	}

	got := Search(events, "DENTIST")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches across title and memo, got %d", len(got))
	}
	if got[0].ID != "new" || got[1].ID != "memo" {
		t.Fatalf("expected newest-first order, got %q then %q", got[0].ID, got[1].ID)
	}
}

func TestMoodTallyCoversAllMoods(t *testing.T) {
	events := []event.Event{
		ev("a", "2024-02-01", "A", "", 1),
		ev("b", "2024-02-02", "B", "", 2),
		ev("c", "2024-03-01", "C", "", 3),
	}
	events[0].Mood = event.Joy
	events[1].Mood = event.Joy
	events[2].Mood = event.Sad // outside the month

	tally := MoodTally(events, 2024, 1)
	if len(tally) != len(event.Moods()) {
		t.Fatalf("tally should cover all %d moods, got %d entries", len(event.Moods()), len(tally))
	}
	if tally[event.Joy] != 2 {
		t.Fatalf("expected 2 joy events, got %d", tally[event.Joy])
	}
	for _, m := range []event.Mood{event.Fun, event.Sad, event.Angry, event.Surprise} {
		if tally[m] != 0 {
			t.Fatalf("expected zero count for %s, got %d", m, tally[m])
		}
	}
}

func TestSplitAllDay(t *testing.T) {
	events := []event.Event{
		timed("late", "2024-02-14", "dinner", "19:00", "20:00", 1),
		ev("band", "2024-02-14", "holiday", "", 2),
		timed("early", "2024-02-14", "standup", "09:30", "", 3),
	}
	allDay, timedEvents := SplitAllDay(events)
	if len(allDay) != 1 || allDay[0].ID != "band" {
		t.Fatalf("unexpected all-day band: %+v", allDay)
	}
	if len(timedEvents) != 2 || timedEvents[0].ID != "early" || timedEvents[1].ID != "late" {
		t.Fatalf("timed events not sorted by start: %+v", timedEvents)
	}
}

func TestSortForList(t *testing.T) {
	events := []event.Event{
		timed("b2", "2024-02-15", "lunch", "12:00", "", 1),
		timed("a2", "2024-02-14", "dinner", "19:00", "", 2),
		ev("b1", "2024-02-15", "holiday", "", 3),
		timed("a1", "2024-02-14", "standup", "09:30", "", 4),
	}
	got := SortForList(events)
	// Within Feb 14 the timed events order by start; Feb 15's all-day entry
	// precedes its timed one.
	want := []string{"a1", "a2", "b1", "b2"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s (full order %v)", i, id, got[i].ID, ids(got))
		}
	}
}

func ids(events []event.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
