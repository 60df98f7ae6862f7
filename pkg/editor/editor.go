// Package editor holds the save-time rules for event drafts: validation,
// the all-day promotion, time defaults, and the single-mood toggle.
package editor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/event"
)

// ErrEmpty rejects drafts with neither a title nor a memo.
var ErrEmpty = errors.New("editor: title and memo are both empty")

// DefaultDurationMinutes is assumed when a timed draft has no end time.
const DefaultDurationMinutes = 60

// MinDurationMinutes is the floor applied when the entered end precedes
// start + 30 minutes.
const MinDurationMinutes = 30

// Draft is the editable form state for one event, bound to a target date.
// A zero ID means the save creates a new record.
type Draft struct {
	ID        string
	Date      string
	Title     string
	Memo      string
	Mood      event.Mood
	IsAllDay  bool
	StartTime string
	EndTime   string
	CreatedAt int64
}

// FromEvent loads an existing record into a draft for editing.
func FromEvent(e event.Event) Draft {
	return Draft{
		ID:        e.ID,
		Date:      e.Date,
		Title:     e.Title,
		Memo:      e.Memo,
		Mood:      e.Mood,
		IsAllDay:  e.IsAllDay,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		CreatedAt: e.CreatedAt,
	}
}

// ToggleMood applies the single-mood selection rule: picking the current
// mood clears it, picking another replaces it. An event never carries more
// than one mood.
func (d *Draft) ToggleMood(m event.Mood) {
	if d.Mood == m {
		d.Mood = event.NoMood
		return
	}
	d.Mood = m
}

// Build normalizes the draft and produces the record to store.
//
// Normalization: a draft left timed but with both time fields blank is saved
// all-day — a time-free event is never stored as "timed with no time". A
// timed draft keeps its blank end time; the default duration is applied at
// render. An end time earlier than start+30m is rewritten to the floor.
func (d Draft) Build(now time.Time) (event.Event, error) {
	title := strings.TrimSpace(d.Title)
	memo := strings.TrimSpace(d.Memo)
	if title == "" && memo == "" {
		return event.Event{}, ErrEmpty
	}
	if _, err := dates.ParseYMD(d.Date); err != nil {
		return event.Event{}, fmt.Errorf("editor: bad date %q: %w", d.Date, err)
	}
	mood := d.Mood
	if mood == "" {
		mood = event.NoMood
	}
	if !mood.Valid() {
		return event.Event{}, fmt.Errorf("editor: unknown mood %q", d.Mood)
	}

	e := event.Event{
		ID:        d.ID,
		Date:      d.Date,
		Title:     title,
		Memo:      memo,
		Mood:      mood,
		IsAllDay:  d.IsAllDay,
		CreatedAt: d.CreatedAt,
	}
	if e.ID == "" {
		fresh := event.New(d.Date, now)
		e.ID = fresh.ID
		e.CreatedAt = fresh.CreatedAt
	}

	start := strings.TrimSpace(d.StartTime)
	end := strings.TrimSpace(d.EndTime)
	if !e.IsAllDay && start == "" && end == "" {
		e.IsAllDay = true
	}
	if e.IsAllDay {
		return e, e.Validate()
	}

	if start == "" {
		// Only an end time was entered; anchor the event to it.
		start, end = end, ""
	}
	startMin, err := dates.ParseHM(start)
	if err != nil {
		return event.Event{}, err
	}
	e.StartTime = start
	if end != "" {
		endMin, err := dates.ParseHM(end)
		if err != nil {
			return event.Event{}, err
		}
		if endMin < startMin+MinDurationMinutes {
			endMin = startMin + MinDurationMinutes
			if endMin > 24*60-1 {
				endMin = 24*60 - 1
			}
		}
		e.EndTime = dates.FormatHM(endMin)
	}
	return e, e.Validate()
}
