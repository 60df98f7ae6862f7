// Package query derives the per-view subsets of the event collection. Every
// function is pure: it filters or orders the slice it is handed and leaves
// the store untouched.
package query

import (
	"sort"
	"strings"

	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/event"
)

// ByDate returns the events on an exact YYYY-MM-DD day.
func ByDate(events []event.Event, date string) []event.Event {
	out := make([]event.Event, 0)
	for _, e := range events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// ByMonth returns the events falling inside the zero-based month. The year
// and month are compared as parsed values rather than as a "YYYY-MM" string
// prefix, so a record whose date drifted out of the zero-padded form still
// lands in the right month (or is skipped when unparsable, instead of
// silently matching the wrong prefix).
func ByMonth(events []event.Event, year, month int) []event.Event {
	out := make([]event.Event, 0)
	for _, e := range events {
		d, err := dates.ParseYMD(e.Date)
		if err != nil {
			continue
		}
		if y, m := dates.YearMonth(d); y == year && m == month {
			out = append(out, e)
		}
	}
	return out
}

// Search returns case-insensitive substring matches against title or memo,
// newest first. An empty or blank query matches nothing: search is not
// "show all" until the user types.
func Search(events []event.Event, q string) []event.Event {
	if strings.TrimSpace(q) == "" {
		return []event.Event{}
	}
	needle := strings.ToLower(q)
	out := make([]event.Event, 0)
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.Memo), needle) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

// MoodTally counts the month's events per mood. Every selectable mood has an
// entry, zero or not; display layers omit the zeros.
func MoodTally(events []event.Event, year, month int) map[event.Mood]int {
	tally := make(map[event.Mood]int, len(event.Moods()))
	for _, m := range event.Moods() {
		tally[m] = 0
	}
	for _, e := range ByMonth(events, year, month) {
		if _, ok := tally[e.Mood]; ok {
			tally[e.Mood]++
		}
	}
	return tally
}

// SplitAllDay partitions a day's events into the all-day band and the timed
// timeline, keeping the timed half ordered by start time.
func SplitAllDay(events []event.Event) (allDay, timed []event.Event) {
	allDay = make([]event.Event, 0)
	timed = make([]event.Event, 0)
	for _, e := range events {
		if e.IsAllDay {
			allDay = append(allDay, e)
		} else {
			timed = append(timed, e)
		}
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].StartTime < timed[j].StartTime
	})
	return allDay, timed
}

// SortForList orders events for the list view: date ascending, all-day
// entries ahead of timed ones within a day, then start time ascending.
// The fixed-width zero-padded formats make the string comparisons correct.
func SortForList(events []event.Event) []event.Event {
	out := make([]event.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.IsAllDay != b.IsAllDay {
			return a.IsAllDay
		}
		return a.StartTime < b.StartTime
	})
	return out
}
