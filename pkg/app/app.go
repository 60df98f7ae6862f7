// Package app provides the high-level operations shared by the CLI commands
// and the TUI. It wraps persistence, the query layer, and the editor rules so
// both surfaces behave identically.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/editor"
	"github.com/kotanikosei/Emo/pkg/event"
	"github.com/kotanikosei/Emo/pkg/feedback"
	"github.com/kotanikosei/Emo/pkg/query"
	"github.com/kotanikosei/Emo/pkg/store"
	"github.com/kotanikosei/Emo/pkg/user"
)

// Service provides high-level operations for events, feedback, and the user
// roster.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// Events returns the full collection.
func (s *Service) Events(ctx context.Context) ([]event.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Events(ctx), nil
}

// Day returns the events on one YYYY-MM-DD day.
func (s *Service) Day(ctx context.Context, date string) ([]event.Event, error) {
	all, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	return query.ByDate(all, date), nil
}

// Week returns the 7 days of the week containing d alongside each day's
// events, keyed by position in the Sunday-start span.
func (s *Service) Week(ctx context.Context, d time.Time) ([]time.Time, [][]event.Event, error) {
	all, err := s.Events(ctx)
	if err != nil {
		return nil, nil, err
	}
	days := dates.WeekOf(d)
	perDay := make([][]event.Event, len(days))
	for i, day := range days {
		perDay[i] = query.ByDate(all, dates.FormatYMD(day))
	}
	return days, perDay, nil
}

// Month returns the events inside the zero-based month.
func (s *Service) Month(ctx context.Context, year, month int) ([]event.Event, error) {
	all, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	return query.ByMonth(all, year, month), nil
}

// Search returns full-text matches, newest first.
func (s *Service) Search(ctx context.Context, q string) ([]event.Event, error) {
	all, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	return query.Search(all, q), nil
}

// MoodTally counts the month's events per mood.
func (s *Service) MoodTally(ctx context.Context, year, month int) (map[event.Mood]int, error) {
	all, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	return query.MoodTally(all, year, month), nil
}

// Find returns the event with the given id.
func (s *Service) Find(ctx context.Context, id string) (event.Event, error) {
	all, err := s.Events(ctx)
	if err != nil {
		return event.Event{}, err
	}
	for _, e := range all {
		if e.ID == id {
			return e, nil
		}
	}
	return event.Event{}, fmt.Errorf("app: event %s not found", id)
}

// Save normalizes the draft and stores the result, replacing the record in
// place when the draft carries an id and appending otherwise. The whole
// collection is rewritten on every mutation.
func (s *Service) Save(ctx context.Context, d editor.Draft) (event.Event, error) {
	if s.Persistence == nil {
		return event.Event{}, errNoPersistence
	}
	e, err := d.Build(time.Now())
	if err != nil {
		return event.Event{}, err
	}
	all := s.Persistence.Events(ctx)
	replaced := false
	for i := range all {
		if all[i].ID == e.ID {
			all[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, e)
	}
	if err := s.Persistence.SaveEvents(all); err != nil {
		return event.Event{}, err
	}
	return e, nil
}

// Delete removes the event with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	all := s.Persistence.Events(ctx)
	kept := make([]event.Event, 0, len(all))
	for _, e := range all {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(all) {
		return fmt.Errorf("app: event %s not found", id)
	}
	return s.Persistence.SaveEvents(kept)
}

// SubmitFeedback persists a submission. At least one of good/improve must be
// non-empty.
func (s *Service) SubmitFeedback(ctx context.Context, good, improve string) (feedback.Feedback, error) {
	if s.Persistence == nil {
		return feedback.Feedback{}, errNoPersistence
	}
	if good == "" && improve == "" {
		return feedback.Feedback{}, errors.New("app: feedback is empty")
	}
	f := feedback.New(good, improve, time.Now())
	if err := s.Persistence.AppendFeedback(ctx, f); err != nil {
		return feedback.Feedback{}, err
	}
	return f, nil
}

// Users returns the admin roster.
func (s *Service) Users(ctx context.Context) ([]user.User, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Users(ctx), nil
}

// AddUser appends a roster record, deriving the id and avatar initial.
func (s *Service) AddUser(ctx context.Context, name, email, password string) (user.User, error) {
	if s.Persistence == nil {
		return user.User{}, errNoPersistence
	}
	if name == "" || email == "" {
		return user.User{}, errors.New("app: user name and email required")
	}
	roster := s.Persistence.Users(ctx)
	next := 1
	for _, u := range roster {
		if u.Email == email {
			return user.User{}, fmt.Errorf("app: user %s already exists", email)
		}
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	u := user.User{
		ID:       next,
		Name:     name,
		Initial:  user.Initial(name),
		Email:    email,
		Password: password,
		Status:   user.StatusActive,
	}
	roster = append(roster, u)
	if err := s.Persistence.SaveUsers(roster); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// SetUserStatus flips a roster record between active and suspended.
func (s *Service) SetUserStatus(ctx context.Context, id int, status string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if status != user.StatusActive && status != user.StatusSuspended {
		return fmt.Errorf("app: unknown status %q", status)
	}
	roster := s.Persistence.Users(ctx)
	for i := range roster {
		if roster[i].ID == id {
			roster[i].Status = status
			return s.Persistence.SaveUsers(roster)
		}
	}
	return fmt.Errorf("app: user %d not found", id)
}

// RemoveUser deletes a roster record.
func (s *Service) RemoveUser(ctx context.Context, id int) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	roster := s.Persistence.Users(ctx)
	kept := make([]user.User, 0, len(roster))
	for _, u := range roster {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(roster) {
		return fmt.Errorf("app: user %d not found", id)
	}
	return s.Persistence.SaveUsers(kept)
}
