// Package event defines the calendar event record and its mood tag.
package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Layouts for the two textual time fields. Dates are zero-padded ISO days,
// times are zero-padded 24h clock values, so lexicographic comparison agrees
// with chronological comparison for both.
const (
	LayoutDate = "2006-01-02"
	LayoutTime = "15:04"
)

// Event is the sole persisted record of the calendar.
//
// The JSON shape matches the browser build of the app, so an exported
// localStorage dump loads unchanged.
type Event struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Title     string `json:"title"`
	Memo      string `json:"memo"`
	Mood      Mood   `json:"mood"`
	IsAllDay  bool   `json:"isAllDay"`
	StartTime string `json:"startTime,omitempty"` // HH:MM, timed events only
	EndTime   string `json:"endTime,omitempty"`   // HH:MM, timed events only
	CreatedAt int64  `json:"createdAt"`           // epoch millis
}

// New creates an event for the given day with a fresh id and creation stamp.
func New(date string, now time.Time) Event {
	return Event{
		ID:        uuid.NewString(),
		Date:      date,
		Mood:      NoMood,
		IsAllDay:  true,
		CreatedAt: now.UnixMilli(),
	}
}

// Day parses the event date.
func (e Event) Day() (time.Time, error) {
	return time.Parse(LayoutDate, e.Date)
}

// Created returns the creation stamp as a time.
func (e Event) Created() time.Time {
	return time.UnixMilli(e.CreatedAt)
}

// Validate checks the record invariants. Stored events always pass; drafts
// go through the editor which normalizes before validating.
func (e Event) Validate() error {
	if e.ID == "" {
		return errors.New("event: missing id")
	}
	if _, err := time.Parse(LayoutDate, e.Date); err != nil {
		return fmt.Errorf("event: bad date %q: %w", e.Date, err)
	}
	if e.Title == "" && e.Memo == "" {
		return errors.New("event: title and memo are both empty")
	}
	if !e.Mood.Valid() {
		return fmt.Errorf("event: unknown mood %q", e.Mood)
	}
	if e.IsAllDay {
		if e.StartTime != "" || e.EndTime != "" {
			return errors.New("event: all-day event carries time fields")
		}
		return nil
	}
	if e.StartTime == "" {
		return errors.New("event: timed event without a start time")
	}
	if _, err := time.Parse(LayoutTime, e.StartTime); err != nil {
		return fmt.Errorf("event: bad start time %q: %w", e.StartTime, err)
	}
	if e.EndTime != "" {
		if _, err := time.Parse(LayoutTime, e.EndTime); err != nil {
			return fmt.Errorf("event: bad end time %q: %w", e.EndTime, err)
		}
	}
	return nil
}

// Display returns the title, falling back to the memo for title-less records.
func (e Event) Display() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Memo
}

func (e Event) String() string {
	when := e.Date
	if !e.IsAllDay {
		when = fmt.Sprintf("%s %s", e.Date, e.StartTime)
	}
	if e.Mood == NoMood {
		return fmt.Sprintf("%s  %s", when, e.Display())
	}
	return fmt.Sprintf("%s  %s %s", when, e.Mood.Emoji(), e.Display())
}
